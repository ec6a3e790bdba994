// model.go - Sidebar pane listing all cases. The sidebar owns no case data:
// it renders straight from the shared CaseStore and moves the selection
// through Store.Select. Creating a case is triggered here ("n") but the
// prompt modal itself is owned by the root app model.

package sidebar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"legalaid/src/store"
)

// Model is the case list pane.
type Model struct {
	Store   *store.CaseStore
	Width   int
	Height  int
	Focused bool

	titleStyle    lipgloss.Style
	itemStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	emptyStyle    lipgloss.Style
}

// New creates a sidebar bound to the shared store.
func New(s *store.CaseStore) *Model {
	return &Model{
		Store:  s,
		Width:  28,
		Height: 20,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1),
		itemStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		selectedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 1),
		emptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Padding(0, 1),
	}
}

// SetSize updates the pane dimensions on terminal resize.
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

// Update handles key navigation while the sidebar is focused. Moving the
// cursor selects immediately; selection is a pure state change with no
// network call.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.Focused {
		return nil
	}

	cases := m.Store.Cases()
	if len(cases) == 0 {
		return nil
	}
	idx := m.selectedIndex()

	switch key.String() {
	case "up", "k":
		if idx > 0 {
			m.Store.Select(cases[idx-1].ID)
		}
	case "down", "j":
		if idx < len(cases)-1 {
			m.Store.Select(cases[idx+1].ID)
		}
	}
	return nil
}

// selectedIndex resolves the store's selection to a list position (0 when
// nothing matches, so navigation starts from the top).
func (m *Model) selectedIndex() int {
	for i, c := range m.Store.Cases() {
		if c.ID == m.Store.SelectedID() {
			return i
		}
	}
	return 0
}

// View renders the case list with the selected case highlighted.
func (m *Model) View() string {
	var b strings.Builder

	title := "Your Cases"
	if m.Focused {
		title = "Your Cases *"
	}
	b.WriteString(m.titleStyle.Render(title) + "\n")
	b.WriteString(m.itemStyle.Render(strings.Repeat("─", maxInt(1, m.Width-2))) + "\n")

	cases := m.Store.Cases()
	if len(cases) == 0 {
		b.WriteString(m.emptyStyle.Render("No cases found.") + "\n")
	}
	for _, c := range cases {
		label := truncate(c.Name, m.Width-4)
		if c.ID == m.Store.SelectedID() {
			b.WriteString(m.selectedStyle.Render("> "+label) + "\n")
		} else {
			b.WriteString(m.itemStyle.Render("  "+label) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.emptyStyle.Render("[n] new case") + "\n")

	return lipgloss.NewStyle().
		Width(m.Width).
		Height(m.Height).
		Render(b.String())
}

// truncate shortens a label to fit the sidebar width.
func truncate(s string, width int) string {
	if width <= 1 || len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
