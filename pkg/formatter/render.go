// Package formatter presents style-guide documents: it renders the Markdown
// for the terminal and outlines its sections for summaries.
package formatter

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultStyle is the glamour style used when none is configured.
const DefaultStyle = "dark"

// Renderer renders Markdown for a terminal of a given width. It keeps the
// underlying glamour renderer until the width changes.
type Renderer struct {
	style string
	width int
	tr    *glamour.TermRenderer
}

// NewRenderer returns a Renderer for a glamour standard style name such as
// "dark", "light", "notty" or "ascii".
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = DefaultStyle
	}
	return &Renderer{style: style}
}

// Render returns doc rendered to fit width columns.
func (r *Renderer) Render(doc string, width int) (string, error) {
	if width < 20 {
		width = 20
	}

	if r.tr == nil || r.width != width {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("create markdown renderer: %w", err)
		}
		r.tr, r.width = tr, width
	}

	out, err := r.tr.Render(doc)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
