package report

import "github.com/charmbracelet/lipgloss"

// Color palette, terminal-friendly.
var (
	ColorPrimary   = lipgloss.Color("63")  // Purple
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("196") // Red
	ColorBorder    = lipgloss.Color("238") // Dark gray
	ColorHighlight = lipgloss.Color("229") // Yellow
)

// theme holds styles bound to the printer's renderer, so color is only
// emitted when the destination is a terminal.
type theme struct {
	title   lipgloss.Style
	err     lipgloss.Style
	success lipgloss.Style
	header  lipgloss.Style
	border  lipgloss.Style
	cell    lipgloss.Style
}

func newTheme(r *lipgloss.Renderer) theme {
	return theme{
		title:   r.NewStyle().Foreground(ColorPrimary).Bold(true),
		err:     r.NewStyle().Foreground(ColorError).Bold(true),
		success: r.NewStyle().Foreground(ColorSuccess).Bold(true),
		header:  r.NewStyle().Foreground(ColorHighlight).Bold(true).Padding(0, 1),
		border:  r.NewStyle().Foreground(ColorBorder),
		cell:    r.NewStyle().Padding(0, 1),
	}
}
