package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalaid/src/api"
	"legalaid/src/components/modals"
	"legalaid/src/models"
	"legalaid/src/types"
)

func newTestApp(t *testing.T, handler http.Handler) *Model {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	m := New(api.NewClient(server.URL, nil), nil)
	m.resize(100, 30)
	return m
}

func listHandler(cases []models.Case, requests *atomic.Int32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			requests.Add(1)
		}
		_ = json.NewEncoder(w).Encode(cases)
	})
}

func TestInitialLoadSelectsFirstCase(t *testing.T) {
	m := newTestApp(t, listHandler([]models.Case{
		{ID: "c1", Name: "Parking Ticket on Elm St."},
		{ID: "c2", Name: "Lease Dispute"},
	}, nil))

	cmd := m.Init()
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.False(t, m.loading)
	assert.Equal(t, "c1", m.Store.SelectedID())
	assert.Len(t, m.Store.Cases(), 2)
}

func TestInitialLoadFailureIsTerminal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // unreachable host

	m := New(api.NewClient(server.URL, nil), nil)
	m.resize(100, 30)

	m.Update(m.Init()())

	require.Error(t, m.loadErr)

	// Full-screen error with the connecting address and the raw error,
	// no retry offered.
	view := m.View()
	assert.Contains(t, view, "Error connecting to backend at")
	assert.Contains(t, view, server.URL)
}

func TestCreateCaseFlow(t *testing.T) {
	m := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode([]models.Case{{ID: "c1", Name: "Existing"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/cases":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(models.Case{ID: "c9", Name: body["name"]})
		}
	}))
	m.Update(m.Init()())

	m.focus = focusSidebar
	m.applyFocus()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.NotNil(t, m.modal)

	prompt, ok := m.modal.(*modals.PromptModal)
	require.True(t, ok)
	prompt.SetValue("Eviction Notice")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.modal)
	require.NotNil(t, cmd)

	m.Update(cmd())

	// The created case is appended and selected; no list re-fetch.
	require.Len(t, m.Store.Cases(), 2)
	assert.Equal(t, "c9", m.Store.SelectedID())
	assert.Equal(t, "Eviction Notice", m.Store.Selected().Name)
	assert.Contains(t, m.status, "created")
}

func TestBlankCaseNameAbortsSilently(t *testing.T) {
	var requests atomic.Int32
	m := newTestApp(t, listHandler([]models.Case{{ID: "c1", Name: "Existing"}}, &requests))
	m.Update(m.Init()())
	require.EqualValues(t, 1, requests.Load())

	m.focus = focusSidebar
	m.applyFocus()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.NotNil(t, m.modal)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Prompt closes, nothing is sent, nothing changes.
	assert.Nil(t, m.modal)
	assert.Nil(t, cmd)
	assert.Len(t, m.Store.Cases(), 1)
	assert.EqualValues(t, 1, requests.Load())
}

func TestCreateFailureOpensAlert(t *testing.T) {
	m := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode([]models.Case{})
	}))
	m.Update(m.Init()())

	cmd := m.createCaseCmd("Doomed Case")
	m.Update(cmd())

	require.NotNil(t, m.modal)
	_, ok := m.modal.(*modals.AlertModal)
	assert.True(t, ok)
	assert.Empty(t, m.Store.Cases())
}

func TestAlertMsgOpensAndDismisses(t *testing.T) {
	m := newTestApp(t, listHandler(nil, nil))

	m.Update(types.AlertMsg{Message: "Failed to upload document: boom"})
	require.NotNil(t, m.modal)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.modal)
}

func TestTabCyclesFocus(t *testing.T) {
	m := newTestApp(t, listHandler(nil, nil))

	assert.Equal(t, focusChat, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusDocuments, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusSidebar, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusChat, m.focus)
}

func TestEmptyStateRendering(t *testing.T) {
	m := newTestApp(t, listHandler([]models.Case{}, nil))
	m.Update(m.Init()())

	view := m.View()
	assert.Contains(t, view, "No cases found.")
	assert.Contains(t, view, "Select a case from the sidebar")
}
