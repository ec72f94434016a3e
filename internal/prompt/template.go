// Package prompt renders the stored prompt template for a given report date.
package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

// PlaceholderDate is the only placeholder the template may reference.
const PlaceholderDate = "today_date"

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Render substitutes every {today_date} occurrence in template with date.
// A template that references any other placeholder is a configuration error
// the operator must fix through the prompt editor, so it is reported rather
// than silently passed through. Templates without placeholders come back
// unchanged.
func Render(template, date string) (string, error) {
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		if m[1] != PlaceholderDate {
			return "", fmt.Errorf("prompt template references unknown placeholder {%s}", m[1])
		}
	}
	return strings.ReplaceAll(template, "{"+PlaceholderDate+"}", date), nil
}
