// model.go - Documents pane: lists the selected case's documents and owns
// the upload flow (idle -> uploading -> idle). The upload response alone is
// not trusted for chat synchronization: the backend appends a confirmation
// chat message as a side effect that is only visible through a fresh case
// list read, so a successful upload is followed by a full re-fetch and a
// whole-record merge.

package documents

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"legalaid/src/api"
	"legalaid/src/models"
	"legalaid/src/store"
	"legalaid/src/types"
)

// uploadResultMsg carries the outcome of an upload attempt, including the
// refreshed full case record on success.
type uploadResultMsg struct {
	caseID    string
	fileName  string
	refreshed *models.Case
	err       error
}

// Model is the documents pane.
type Model struct {
	Store  *store.CaseStore
	Client *api.Client

	input     textinput.Model
	Uploading bool
	Focused   bool
	Width     int
	Height    int

	titleStyle   lipgloss.Style
	docNameStyle lipgloss.Style
	metaStyle    lipgloss.Style
	bodyStyle    lipgloss.Style
	emptyStyle   lipgloss.Style
	busyStyle    lipgloss.Style
}

// New creates a documents pane bound to the shared store and service
// client.
func New(s *store.CaseStore, client *api.Client) *Model {
	in := textinput.New()
	in.Placeholder = "Path to a document (PNG, JPG)..."
	in.CharLimit = 500
	return &Model{
		Store:  s,
		Client: client,
		input:  in,
		Width:  36,
		Height: 20,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1),
		docNameStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),
		metaStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
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

// SetFocus focuses or blurs the file-path input.
func (m *Model) SetFocus(focused bool) {
	m.Focused = focused
	if focused {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// Update handles keys while focused and upload completions regardless of
// focus. The upload control is disabled while an upload is in flight.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case uploadResultMsg:
		return m.finishUpload(msg)
	case tea.KeyMsg:
		if !m.Focused || m.Uploading {
			return nil
		}
		if msg.String() == "enter" {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

// submit starts an upload for the entered path. An empty path means no
// file was chosen: nothing happens and no request is issued.
func (m *Model) submit() tea.Cmd {
	sel := m.Store.Selected()
	if sel == nil {
		return nil
	}
	path := strings.TrimSpace(m.input.Value())
	if path == "" {
		return nil
	}

	m.Uploading = true
	return m.uploadCmd(sel.ID, path)
}

// uploadCmd posts the file, then re-fetches the case list so the merge can
// carry the backend's confirmation chat message along with the new
// document. A failure in either step commits nothing.
func (m *Model) uploadCmd(caseID, path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := m.Client.UploadDocument(caseID, path)
		if err != nil {
			return uploadResultMsg{caseID: caseID, fileName: path, err: err}
		}

		cases, err := m.Client.ListCases()
		if err != nil {
			return uploadResultMsg{caseID: caseID, fileName: doc.Name, err: err}
		}
		for i := range cases {
			if cases[i].ID == caseID {
				return uploadResultMsg{caseID: caseID, fileName: doc.Name, refreshed: &cases[i]}
			}
		}
		return uploadResultMsg{
			caseID:   caseID,
			fileName: doc.Name,
			err:      &models.NotFoundError{Message: "case " + caseID + " missing from refreshed case list"},
		}
	}
}

// finishUpload returns the unit to idle and resets the path input so the
// same file can be re-selected, on success and failure alike. Success
// merges the refreshed full record; failure raises a blocking alert.
func (m *Model) finishUpload(r uploadResultMsg) tea.Cmd {
	m.Uploading = false
	m.input.Reset()

	if r.err != nil {
		err := r.err
		return func() tea.Msg {
			return types.AlertMsg{Message: "Failed to upload document: " + err.Error()}
		}
	}

	m.Store.Merge(r.caseID, models.PatchFrom(*r.refreshed))
	name := r.fileName
	return func() tea.Msg {
		return types.StatusMsg{Message: "Uploaded " + name}
	}
}

// View renders the upload input and the document list.
func (m *Model) View() string {
	var b strings.Builder

	title := "Documents & Info"
	if m.Focused {
		title += " *"
	}
	b.WriteString(m.titleStyle.Render(title) + "\n\n")

	sel := m.Store.Selected()
	if sel == nil {
		b.WriteString(m.emptyStyle.Render("No case selected."))
		return lipgloss.NewStyle().Width(m.Width).Height(m.Height).Render(b.String())
	}

	b.WriteString(m.input.View() + "\n")
	if m.Uploading {
		b.WriteString(m.busyStyle.Render("Uploading and analyzing...") + "\n")
	}
	b.WriteString("\n")

	if len(sel.Documents) == 0 {
		b.WriteString(m.emptyStyle.Render("No documents have been uploaded for this case yet."))
	} else {
		for _, doc := range sel.Documents {
			b.WriteString(m.renderDocument(doc))
		}
	}

	return lipgloss.NewStyle().Width(m.Width).Height(m.Height).Render(b.String())
}

// renderDocument shows one document's name, upload date, AI summary, and
// any extracted fields.
func (m *Model) renderDocument(doc models.Document) string {
	wrap := lipgloss.NewStyle().Width(maxInt(20, m.Width-4))

	var b strings.Builder
	b.WriteString(m.docNameStyle.Render(doc.Name) + "\n")
	if !doc.UploadDate.IsZero() {
		b.WriteString(m.metaStyle.Render("Uploaded "+doc.UploadDate.Format("2006-01-02")) + "\n")
	}
	if doc.Summary != "" {
		b.WriteString(wrap.Render(m.bodyStyle.Render(doc.Summary)) + "\n")
	}
	if len(doc.ExtractedData) > 0 {
		keys := make([]string, 0, len(doc.ExtractedData))
		for k := range doc.ExtractedData {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(m.metaStyle.Render(fmt.Sprintf("  %s: %v", k, doc.ExtractedData[k])) + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
