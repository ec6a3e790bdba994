// alert.go - AlertModal displays a blocking error/notice with a single
// dismiss action. Used for case-creation and document-upload failures.

package modals

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AlertModal is a blocking message box dismissed with enter or esc.
type AlertModal struct {
	Message   string
	CloseSelf CloseSelfFunc
}

// NewAlertModal creates an alert with the given message.
func NewAlertModal(message string, closeSelf CloseSelfFunc) *AlertModal {
	return &AlertModal{Message: message, CloseSelf: closeSelf}
}

// Update dismisses the alert on enter or esc; everything else is
// swallowed while the alert is open.
func (m *AlertModal) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc":
			if m.CloseSelf != nil {
				m.CloseSelf()
			}
		}
	}
	return nil
}

// ViewRegion renders the alert centered in the region.
func (m *AlertModal) ViewRegion(regionWidth, regionHeight int) string {
	msg := titleStyle.Foreground(lipgloss.Color("9")).Render(m.Message)
	hint := hintStyle.Render("enter to dismiss")
	return place(regionWidth, regionHeight, boxStyle.Render(msg+"\n\n"+hint))
}
