package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrompt(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"single line untouched", "list 10 meme stocks", "list 10 meme stocks"},
		{"double spaces kept", "rank by buzz  then  squeeze risk", "rank by buzz  then  squeeze risk"},
		{"tabs kept", "Ticker\tMove\tCatalyst", "Ticker\tMove\tCatalyst"},
		{"newline becomes one space", "first line\nsecond line", "first line second line"},
		{"crlf and indentation folded", "first line\r\n  second line", "first line second line"},
		{"blank lines folded", "first\n\n\nsecond", "first second"},
		{"trailing newline trimmed", "prompt text\n", "prompt text"},
		{"surrounding whitespace trimmed", "  prompt  \n", "prompt"},
		{"empty stays empty", "\n \n", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizePrompt(tc.in))
		})
	}
}
