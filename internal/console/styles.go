package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for emphasised console lines.
type Styles struct {
	enabled   bool
	title     lipgloss.Style
	highlight lipgloss.Style
}

// NewStyles builds styles bound to the given output. When enabled is false
// text passes through untouched, which keeps piped output and tests clean.
func NewStyles(out io.Writer, enabled bool) Styles {
	r := lipgloss.NewRenderer(out)
	return Styles{
		enabled: enabled,
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		highlight: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11")),
	}
}

// Title renders a heading.
func (s Styles) Title(text string) string {
	if !s.enabled {
		return text
	}
	return s.title.Render(text)
}

// Highlight renders an emphasised line (round winner, final result).
func (s Styles) Highlight(text string) string {
	if !s.enabled {
		return text
	}
	return s.highlight.Render(text)
}
