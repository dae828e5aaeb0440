package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/fseof/export"
)

// theme holds the styles of one output stream.
type theme struct {
	title   lipgloss.Style
	success lipgloss.Style
	hint    lipgloss.Style
	err     lipgloss.Style
}

// newTheme builds the export palette on r, so styles degrade to plain text
// when r's writer is not a terminal.
func newTheme(r *lipgloss.Renderer) theme {
	th := export.DefaultTheme
	return theme{
		title:   r.NewStyle().Foreground(th.Title).Bold(true),
		success: r.NewStyle().Foreground(th.Target).Bold(true),
		hint:    r.NewStyle().Foreground(th.Hint).Italic(true),
		err:     r.NewStyle().Foreground(th.Error).Bold(true),
	}
}
