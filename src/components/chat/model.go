// model.go - Chat pane for the selected case. Implements the send state
// machine (idle -> sending -> idle): a submitted message is appended
// optimistically before the request leaves, and the completion merge is
// built from the history captured at call time so a reply can never
// clobber appends that happened while the request was in flight.

package chat

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"legalaid/src/api"
	"legalaid/src/models"
	"legalaid/src/store"
)

// responseMsg carries the outcome of a send request back into the update
// loop, along with the history snapshot the completion merge is based on.
type responseMsg struct {
	caseID  string
	base    []models.ChatMessage
	userMsg models.ChatMessage
	agent   models.ChatMessage
	err     error
}

// Model is the chat pane.
type Model struct {
	Store  *store.CaseStore
	Client *api.Client

	input   textinput.Model
	Sending bool
	Focused bool
	Width   int
	Height  int
	scroll  int // lines scrolled up from the bottom of the history

	// Overridable for tests.
	now   func() time.Time
	newID func() string

	titleStyle lipgloss.Style
	userStyle  lipgloss.Style
	agentStyle lipgloss.Style
	bodyStyle  lipgloss.Style
	emptyStyle lipgloss.Style
	busyStyle  lipgloss.Style
}

// New creates a chat pane bound to the shared store and service client.
func New(s *store.CaseStore, client *api.Client) *Model {
	in := textinput.New()
	in.Placeholder = "Ask a question about your case..."
	in.CharLimit = 2000
	return &Model{
		Store:  s,
		Client: client,
		input:  in,
		Width:  60,
		Height: 20,
		now:    time.Now,
		newID:  uuid.NewString,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1),
		userStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		agentStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")),
		bodyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		emptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Padding(0, 1),
		busyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Italic(true),
	}
}

// SetSize updates the pane dimensions on terminal resize.
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.input.Width = maxInt(10, width-6)
}

// SetFocus focuses or blurs the compose input.
func (m *Model) SetFocus(focused bool) {
	m.Focused = focused
	if focused {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// Update handles keys while focused and send completions regardless of
// focus. While a send is in flight the compose input and submit action
// are disabled; only one send can be in flight at a time.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case responseMsg:
		m.finishSend(msg)
		return nil
	case tea.KeyMsg:
		if !m.Focused {
			return nil
		}
		switch msg.String() {
		case "enter":
			if m.Sending {
				return nil
			}
			return m.submit()
		case "pgup":
			m.scroll += 5
			return nil
		case "pgdown":
			m.scroll -= 5
			if m.scroll < 0 {
				m.scroll = 0
			}
			return nil
		}
		if m.Sending {
			return nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

// submit performs the optimistic phase of a send: append the provisional
// user message, clear the input, flip to sending, and fire the request.
// Blank or whitespace-only input is a no-op.
func (m *Model) submit() tea.Cmd {
	sel := m.Store.Selected()
	if sel == nil {
		return nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}

	// History as it exists at call time; the completion merge extends
	// this snapshot, not whatever the store holds later.
	base := slices.Clone(sel.ChatHistory)

	userMsg := models.ChatMessage{
		ID:        m.newID(),
		Sender:    models.SenderUser,
		Content:   text,
		Timestamp: m.now(),
	}

	optimistic := append(slices.Clone(base), userMsg)
	m.Store.Merge(sel.ID, models.CasePatch{ChatHistory: &optimistic})

	m.input.Reset()
	m.Sending = true
	m.scroll = 0

	return m.sendCmd(sel.ID, text, base, userMsg)
}

// sendCmd issues the chat request off the update loop.
func (m *Model) sendCmd(caseID, text string, base []models.ChatMessage, userMsg models.ChatMessage) tea.Cmd {
	return func() tea.Msg {
		agent, err := m.Client.SendChat(caseID, text)
		return responseMsg{
			caseID:  caseID,
			base:    base,
			userMsg: userMsg,
			agent:   agent,
			err:     err,
		}
	}
}

// finishSend merges the outcome into the store. Success appends the user
// message and the real agent reply; failure appends the user message and
// a synthetic agent-sender error message instead. Either way the unit
// returns to idle.
func (m *Model) finishSend(r responseMsg) {
	agent := r.agent
	if r.err != nil {
		agent = models.ChatMessage{
			ID:        m.newID(),
			Sender:    models.SenderAgent,
			Content:   "Sorry, I couldn't reach the assistant: " + r.err.Error(),
			Timestamp: m.now(),
		}
	}

	history := append(slices.Clone(r.base), r.userMsg, agent)
	m.Store.Merge(r.caseID, models.CasePatch{ChatHistory: &history})
	m.Sending = false
}

// View renders the conversation and the compose input.
func (m *Model) View() string {
	var b strings.Builder

	sel := m.Store.Selected()

	title := "Case Chat"
	if sel != nil {
		title = "Case Chat — " + sel.Name
	}
	if m.Focused {
		title += " *"
	}
	b.WriteString(m.titleStyle.Render(title) + "\n\n")

	if sel == nil {
		b.WriteString(m.emptyStyle.Render("Select a case from the sidebar or create a new one to get started."))
		return lipgloss.NewStyle().Width(m.Width).Height(m.Height).Render(b.String())
	}

	b.WriteString(m.renderHistory(sel.ChatHistory))

	if m.Sending {
		b.WriteString(m.busyStyle.Render("Agent is thinking...") + "\n")
	}

	b.WriteString("\n" + m.input.View())

	return lipgloss.NewStyle().Width(m.Width).Height(m.Height).Render(b.String())
}

// renderHistory lays out the conversation, keeping the tail visible minus
// any manual scroll offset.
func (m *Model) renderHistory(history []models.ChatMessage) string {
	if len(history) == 0 {
		return m.emptyStyle.Render("No messages yet. Say hello to your case assistant.") + "\n"
	}

	wrap := lipgloss.NewStyle().Width(maxInt(20, m.Width-4))
	var lines []string
	for _, msg := range history {
		label := m.agentStyle.Render("Agent")
		if msg.Sender == models.SenderUser {
			label = m.userStyle.Render("You")
		}
		body := wrap.Render(m.bodyStyle.Render(msg.Content))
		lines = append(lines, label+"\n"+body)
	}

	joined := strings.Join(lines, "\n")
	all := strings.Split(joined, "\n")

	// Reserve rows for title, busy line and input.
	visible := maxInt(3, m.Height-6)
	end := len(all) - m.scroll
	if end > len(all) {
		end = len(all)
	}
	if end < visible {
		end = minInt(visible, len(all))
	}
	start := maxInt(0, end-visible)

	return strings.Join(all[start:end], "\n") + "\n"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
