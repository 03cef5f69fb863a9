package docs

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const DefaultStyle = "dark"

// Renderer turns page markdown into terminal output at a fixed wrap width.
type Renderer struct {
	style string
	width int
	term  *glamour.TermRenderer
}

// NewRenderer builds a renderer for the named glamour style.
func NewRenderer(style string, width int) (*Renderer, error) {
	if style == "" {
		style = DefaultStyle
	}
	if width < 10 {
		width = 10
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("glamour renderer: %w", err)
	}
	return &Renderer{style: style, width: width, term: term}, nil
}

// Width is the wrap width the renderer was built for.
func (r *Renderer) Width() int {
	return r.width
}

// Resize returns a renderer for width, reusing r when unchanged.
func (r *Renderer) Resize(width int) (*Renderer, error) {
	if r != nil && r.width == width {
		return r, nil
	}
	style := DefaultStyle
	if r != nil {
		style = r.style
	}
	return NewRenderer(style, width)
}

// Render converts markdown to styled text.
func (r *Renderer) Render(src []byte) (string, error) {
	out, err := r.term.RenderBytes(src)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return string(out), nil
}
