package main

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/Water6446/Meme-Stock-Tracker/internal/viewer"
)

// The decorative dog. Not reachable from any numbered menu entry; typing
// "cookie" at the main menu opens it.
//
//go:embed dog.txt
var dogArt string

func (ui *MenuUI) showEasterEgg() {
	art := strings.TrimRight(dogArt, "\n")
	if art == "" {
		fmt.Println("\nOops! The easter egg went missing.")
		ui.pause()
		return
	}

	if err := (viewer.Pager{}).Show("Cookie", art); err != nil {
		fmt.Printf("\nNo window for Cookie here (%v). Have the ASCII version:\n\n%s\n", err, art)
		ui.pause()
	}
}
