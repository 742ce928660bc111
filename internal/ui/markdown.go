package ui

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders a markdown document for the terminal. On renderer
// failure the raw markdown is returned so the report is never lost.
func RenderMarkdown(markdown string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return markdown
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
