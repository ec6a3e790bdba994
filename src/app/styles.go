// styles.go - Lipgloss styles for the root application chrome.

package app

import "github.com/charmbracelet/lipgloss"

// Styles contains all styling for the application frame.
type Styles struct {
	// Container styles
	headerStyle lipgloss.Style
	footerStyle lipgloss.Style
	sepStyle    lipgloss.Style

	// Status styles
	statusStyle lipgloss.Style
	errorStyle  lipgloss.Style
	helpStyle   lipgloss.Style
	loadStyle   lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() *Styles {
	return &Styles{
		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 1),

		footerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1),

		sepStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Padding(0, 1),

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true),

		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true),

		loadStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Italic(true),
	}
}
