package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme resolves Emphasis values to terminal styles for one output.
type Theme struct {
	styles map[Emphasis]lipgloss.Style
	header lipgloss.Style
	border lipgloss.Style
	cell   lipgloss.Style
}

// NewTheme builds a Theme for w. With noColor, or when w is not a color
// terminal, output carries no escape sequences.
func NewTheme(w io.Writer, noColor bool) *Theme {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Theme{
		styles: map[Emphasis]lipgloss.Style{
			Plain: r.NewStyle(),
			Warn:  r.NewStyle().Foreground(lipgloss.Color("214")),
			Error: r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			Up:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
			Down:  r.NewStyle().Foreground(lipgloss.Color("201")),
		},
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1),
		border: r.NewStyle().Foreground(lipgloss.Color("240")),
		cell:   r.NewStyle().Padding(0, 1),
	}
}

// Paint renders s with the style for e.
func (t *Theme) Paint(e Emphasis, s string) string {
	style, ok := t.styles[e]
	if !ok {
		return s
	}
	return style.Render(s)
}
