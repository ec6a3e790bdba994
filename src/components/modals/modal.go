// modal.go - Shared modal plumbing. A modal captures all keyboard input
// while open; the root app model owns at most one at a time and closes it
// through the CloseSelf callback.

package modals

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CloseSelfFunc is called by a modal to remove itself from the app.
type CloseSelfFunc func()

// Modal is the interface every dialog implements.
type Modal interface {
	// Update handles a message while the modal is open and may emit a
	// follow-up command (e.g. a prompt submitting a network call).
	Update(msg tea.Msg) tea.Cmd
	// ViewRegion renders the modal centered in the given region.
	ViewRegion(regionWidth, regionHeight int) string
}

// boxStyle is the shared dialog frame (matches the pane borders).
var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("245")).
	Padding(1, 4).
	Align(lipgloss.Center)

var titleStyle = lipgloss.NewStyle().Bold(true)

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)

// place centers a rendered box inside the modal region.
func place(regionWidth, regionHeight int, box string) string {
	return lipgloss.Place(regionWidth, regionHeight, lipgloss.Center, lipgloss.Center, box)
}
