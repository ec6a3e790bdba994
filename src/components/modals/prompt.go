// prompt.go - PromptModal collects a single line of text (the new case
// name). Submitting a blank value closes the prompt silently with no
// follow-up command, per the create contract.

package modals

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptModal is a one-line text input dialog.
type PromptModal struct {
	Title     string
	input     textinput.Model
	CloseSelf CloseSelfFunc
	// OnSubmit is invoked with the trimmed, non-blank value and may
	// return a command (e.g. the create-case request).
	OnSubmit func(value string) tea.Cmd
}

// NewPromptModal creates a focused prompt with the given title and
// placeholder.
func NewPromptModal(title, placeholder string, closeSelf CloseSelfFunc, onSubmit func(string) tea.Cmd) *PromptModal {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 120
	in.Width = 40
	in.Focus()
	return &PromptModal{
		Title:     title,
		input:     in,
		CloseSelf: closeSelf,
		OnSubmit:  onSubmit,
	}
}

// Update feeds keys to the text input; enter submits, esc cancels.
func (m *PromptModal) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if m.CloseSelf != nil {
				m.CloseSelf()
			}
			if value == "" {
				// Blank input aborts silently: no request, no error.
				return nil
			}
			if m.OnSubmit != nil {
				return m.OnSubmit(value)
			}
			return nil
		case "esc":
			if m.CloseSelf != nil {
				m.CloseSelf()
			}
			return nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// Value returns the current input text (used by tests).
func (m *PromptModal) Value() string {
	return m.input.Value()
}

// SetValue replaces the current input text.
func (m *PromptModal) SetValue(v string) {
	m.input.SetValue(v)
}

// ViewRegion renders the prompt centered in the region.
func (m *PromptModal) ViewRegion(regionWidth, regionHeight int) string {
	title := titleStyle.Render(m.Title)
	hint := hintStyle.Render("enter to submit, esc to cancel")
	content := title + "\n\n" + m.input.View() + "\n\n" + hint
	return place(regionWidth, regionHeight, boxStyle.Render(content))
}
