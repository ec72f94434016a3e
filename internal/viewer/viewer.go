// Package viewer renders a finished report in a blocking, read-only pager.
// The pager is a capability: environments without a terminal degrade to a
// printed notice instead of crashing, and the report file is already on
// disk either way.
package viewer

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrNoDisplay reports that the environment cannot host the pager.
var ErrNoDisplay = errors.New("no interactive display available")

// Renderer shows a titled block of read-only text and blocks until the user
// dismisses it.
type Renderer interface {
	Show(title, body string) error
}

// Pager renders text in a fullscreen scrollable viewport. Show blocks until
// the user closes it with q or esc.
type Pager struct{}

func (Pager) Show(title, body string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoDisplay
	}

	p := tea.NewProgram(newPagerModel(title, body), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}
	return nil
}

// Noop is the renderer for unattended runs. It points the user at the saved
// file instead of opening a window.
type Noop struct{}

func (Noop) Show(title, _ string) error {
	fmt.Printf("%s saved; window suppressed in unattended mode.\n", title)
	return nil
}
