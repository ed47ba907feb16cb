package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour,
// used for the built-in puzzle format guide.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Detect light/dark background
		glamour.WithWordWrap(100),
	)

	return func(markdown string) (string, error) {
		if err != nil {
			// Fall back to the raw markdown when the terminal renderer
			// cannot be built.
			return markdown, nil
		}
		return r.Render(markdown)
	}
}
