package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the browse view.
type Styles struct {
	Header   lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	URL      lipgloss.Style
	Category lipgloss.Style
	Video    lipgloss.Style
	Status   lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		URL: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true),
		Category: lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")),
		Video: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("150")),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
	}
}
