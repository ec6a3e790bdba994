// app.go - Root application model composing the three panes (case list,
// chat, documents) around the shared CaseStore. The root model owns the
// initial load, the modal lifecycle (new-case prompt, blocking alerts),
// focus cycling, and the full-screen connectivity error state.

package app

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"legalaid/src/api"
	"legalaid/src/components/chat"
	"legalaid/src/components/documents"
	"legalaid/src/components/modals"
	"legalaid/src/components/sidebar"
	"legalaid/src/models"
	"legalaid/src/store"
	"legalaid/src/types"
)

// focusArea identifies which pane receives keyboard input.
type focusArea int

const (
	focusSidebar focusArea = iota
	focusChat
	focusDocuments
)

// casesLoadedMsg delivers the initial case list.
type casesLoadedMsg struct {
	cases []models.Case
}

// loadFailedMsg marks the initial load as failed. Terminal for this run:
// the whole view becomes an error screen with no retry.
type loadFailedMsg struct {
	err error
}

// caseCreatedMsg delivers a successfully created case.
type caseCreatedMsg struct {
	created models.Case
}

// createFailedMsg reports a failed case creation.
type createFailedMsg struct {
	err error
}

// Model is the root Bubble Tea model.
type Model struct {
	Store  *store.CaseStore
	Client *api.Client

	sidebar *sidebar.Model
	chat    *chat.Model
	docs    *documents.Model
	modal   modals.Modal

	focus   focusArea
	loading bool
	loadErr error
	status  string
	width   int
	height  int

	styles *Styles
	logger *slog.Logger
}

// New creates the root model and wires every pane to the shared store.
func New(client *api.Client, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	s := store.NewCaseStore()

	m := &Model{
		Store:   s,
		Client:  client,
		sidebar: sidebar.New(s),
		chat:    chat.New(s, client),
		docs:    documents.New(s, client),
		focus:   focusChat,
		loading: true,
		width:   100,
		height:  30,
		styles:  NewStyles(),
		logger:  logger,
	}
	m.applyFocus()
	return m
}

// Init kicks off the initial case list load.
func (m *Model) Init() tea.Cmd {
	return m.loadCasesCmd()
}

// loadCasesCmd fetches all cases from the Remote Case Service.
func (m *Model) loadCasesCmd() tea.Cmd {
	return func() tea.Msg {
		cases, err := m.Client.ListCases()
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return casesLoadedMsg{cases: cases}
	}
}

// createCaseCmd posts a new case with the given (non-blank) name.
func (m *Model) createCaseCmd(name string) tea.Cmd {
	return func() tea.Msg {
		created, err := m.Client.CreateCase(name)
		if err != nil {
			return createFailedMsg{err: err}
		}
		return caseCreatedMsg{created: created}
	}
}

// Update routes messages: modal first (it captures all keys while open),
// then app-level state changes, then the focused pane. Completion
// messages from in-flight sends/uploads reach their pane regardless of
// focus, so operations of different kinds may interleave.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case casesLoadedMsg:
		m.loading = false
		m.Store.Replace(msg.cases)
		m.logger.Info("loaded cases", "count", len(msg.cases))
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.loadErr = msg.err
		m.logger.Error("initial load failed", "error", msg.err)
		return m, nil

	case caseCreatedMsg:
		m.Store.Add(msg.created)
		m.status = "Case '" + msg.created.Name + "' created!"
		return m, nil

	case createFailedMsg:
		m.openAlert("Failed to create case: " + msg.err.Error())
		return m, nil

	case types.AlertMsg:
		m.openAlert(msg.Message)
		return m, nil

	case types.StatusMsg:
		m.status = msg.Message
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Non-key messages (send/upload completions, input blinks) go to the
	// async panes unconditionally.
	return m, tea.Batch(m.chat.Update(msg), m.docs.Update(msg))
}

// handleKey dispatches keyboard input.
func (m *Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The fatal load error screen only quits.
	if m.loadErr != nil {
		if key.String() == "q" || key.String() == "esc" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.modal != nil {
		return m, m.modal.Update(key)
	}

	switch key.String() {
	case "tab":
		m.cycleFocus()
		return m, nil
	case "n":
		if m.focus == focusSidebar {
			m.openNewCasePrompt()
			return m, nil
		}
	}

	switch m.focus {
	case focusSidebar:
		return m, m.sidebar.Update(key)
	case focusChat:
		return m, m.chat.Update(key)
	case focusDocuments:
		return m, m.docs.Update(key)
	}
	return m, nil
}

// cycleFocus moves keyboard focus sidebar -> chat -> documents -> sidebar.
func (m *Model) cycleFocus() {
	switch m.focus {
	case focusSidebar:
		m.focus = focusChat
	case focusChat:
		m.focus = focusDocuments
	default:
		m.focus = focusSidebar
	}
	m.applyFocus()
}

// applyFocus pushes the focus flag down to each pane.
func (m *Model) applyFocus() {
	m.sidebar.Focused = m.focus == focusSidebar
	m.chat.SetFocus(m.focus == focusChat)
	m.docs.SetFocus(m.focus == focusDocuments)
}

// openNewCasePrompt shows the create-case dialog. A blank name closes the
// prompt without issuing a request.
func (m *Model) openNewCasePrompt() {
	m.modal = modals.NewPromptModal(
		"Create New Case",
		"New case name",
		func() { m.modal = nil },
		func(name string) tea.Cmd { return m.createCaseCmd(name) },
	)
}

// openAlert shows a blocking alert dialog.
func (m *Model) openAlert(message string) {
	m.modal = modals.NewAlertModal(message, func() { m.modal = nil })
}

// resize distributes the terminal area between the panes. The chat pane
// gets roughly twice the documents pane's width, matching the original
// two-to-one detail split.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	sidebarWidth := maxInt(20, width/5)
	docsWidth := maxInt(24, width/4)
	chatWidth := maxInt(30, width-sidebarWidth-docsWidth-2)
	paneHeight := maxInt(5, height-4)

	m.sidebar.SetSize(sidebarWidth, paneHeight)
	m.chat.SetSize(chatWidth, paneHeight)
	m.docs.SetSize(docsWidth, paneHeight)
}

// View renders the application.
func (m *Model) View() string {
	if m.width < 40 || m.height < 10 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Align(lipgloss.Center, lipgloss.Center).
			Width(m.width).
			Height(m.height).
			Render("Terminal too small for application")
	}

	if m.loadErr != nil {
		return m.renderLoadError()
	}

	header := m.styles.headerStyle.Width(m.width).Render("Legal Case Assistant")

	var content string
	switch {
	case m.loading:
		content = lipgloss.Place(m.width, m.height-3, lipgloss.Center, lipgloss.Center,
			m.styles.loadStyle.Render("Loading cases..."))
	case m.modal != nil:
		content = m.modal.ViewRegion(m.width, m.height-3)
	default:
		sep := m.styles.sepStyle.Render(strings.TrimRight(strings.Repeat("│\n", maxInt(1, m.height-4)), "\n"))
		content = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.sidebar.View(),
			sep,
			m.chat.View(),
			sep,
			m.docs.View(),
		)
	}

	return header + "\n" + content + "\n" + m.renderFooter()
}

// renderLoadError is the terminal state for a failed initial load: the
// connecting address and the raw error, no retry.
func (m *Model) renderLoadError() string {
	body := m.styles.errorStyle.Render("Error connecting to backend at "+m.Client.BaseURL()) +
		"\n\n" + m.styles.loadStyle.Render(m.loadErr.Error()) +
		"\n\n" + m.styles.helpStyle.Render("q to quit")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// renderFooter shows key help and the transient status message.
func (m *Model) renderFooter() string {
	help := "tab: switch pane | n: new case (in case list) | enter: send/upload | ctrl+c: quit"
	line := m.styles.footerStyle.Render(help)
	if m.status != "" {
		line += m.styles.statusStyle.Render(m.status)
	}
	return line
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
