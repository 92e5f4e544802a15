// Package markdown renders agent responses for the terminal with glamour
package markdown

import (
	"strings"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	termenv "github.com/muesli/termenv"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Renderer renders markdown as ANSI text. A nil renderer, or one which
// failed to render, returns the text unchanged.
type Renderer struct {
	r *glamour.TermRenderer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	minWidth = 20
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a renderer which wraps at the given width. The style follows
// the terminal background, so call it before reading from the terminal.
func New(width int) (*Renderer, error) {
	style := "dark"
	if !termenv.HasDarkBackground() {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(max(width, minWidth)),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{r: r}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render returns the rendered text without the surrounding blank lines
func (m *Renderer) Render(text string) string {
	if m == nil || m.r == nil {
		return text
	}
	out, err := m.r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
