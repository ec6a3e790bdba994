package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalaid/src/models"
)

func TestListCasesDecodesNestedRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/cases", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": "c1",
				"name": "Parking Ticket on Elm St.",
				"created_at": "2025-06-01T10:00:00Z",
				"chat_history": [
					{"id": "m1", "sender": "agent", "content": "Hello!", "timestamp": "2025-06-01T10:00:01Z"}
				],
				"documents": [
					{"id": "d1", "name": "parking_ticket.pdf", "upload_date": "2025-06-01T10:05:00Z",
					 "summary": "A parking violation.", "extracted_data": {"fine_amount": 75}}
				]
			}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	cases, err := client.ListCases()
	require.NoError(t, err)
	require.Len(t, cases, 1)

	c := cases[0]
	assert.Equal(t, "c1", c.ID)
	require.Len(t, c.ChatHistory, 1)
	assert.Equal(t, models.SenderAgent, c.ChatHistory[0].Sender)
	require.Len(t, c.Documents, 1)
	assert.Equal(t, "parking_ticket.pdf", c.Documents[0].Name)
	assert.EqualValues(t, 75, c.Documents[0].ExtractedData["fine_amount"])
}

func TestCreateCasePostsName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cases", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Lease Dispute", body["name"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Case{ID: "c2", Name: "Lease Dispute"})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	created, err := client.CreateCase("Lease Dispute")
	require.NoError(t, err)
	assert.Equal(t, "c2", created.ID)
}

func TestSendChatPostsMessageToCaseEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cases/c1/chat", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Hello", body["message"])

		_ = json.NewEncoder(w).Encode(models.ChatMessage{
			ID: "a1", Sender: models.SenderAgent, Content: "Hi, how can I help?",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	reply, err := client.SendChat("c1", "Hello")
	require.NoError(t, err)
	assert.Equal(t, models.SenderAgent, reply.Sender)
	assert.Equal(t, "Hi, how can I help?", reply.Content)
}

func TestUploadDocumentSendsMultipartFileField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contract.pdf")
	require.NoError(t, os.WriteFile(path, []byte("fake pdf bytes"), 0o644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cases/c1/documents", r.URL.Path)

		// The service contract names the form field "file".
		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "contract.pdf", header.Filename)

		_ = json.NewEncoder(w).Encode(models.Document{ID: "d2", Name: "contract.pdf"})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	doc, err := client.UploadDocument("c1", path)
	require.NoError(t, err)
	assert.Equal(t, "d2", doc.ID)
}

func TestUploadDocumentMissingFile(t *testing.T) {
	client := NewClient("http://localhost:0", nil)
	_, err := client.UploadDocument("c1", filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)

	var reqErr *models.RequestError
	assert.ErrorAs(t, err, &reqErr)
}

func TestNonSuccessStatusesCollapseUniformly(t *testing.T) {
	// Every non-2xx is the same generic failure; bodies are ignored.
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"detail": "structured error the client never reads"}`))
		}))

		client := NewClient(server.URL, nil)

		_, err := client.ListCases()
		require.Error(t, err, "status %d", status)
		var reqErr *models.RequestError
		assert.ErrorAs(t, err, &reqErr)

		_, err = client.SendChat("c1", "Hello")
		require.Error(t, err, "status %d", status)

		server.Close()
	}
}

func TestTransportFailureIsRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately unreachable

	client := NewClient(server.URL, nil)
	_, err := client.ListCases()
	require.Error(t, err)

	var reqErr *models.RequestError
	assert.ErrorAs(t, err, &reqErr)
}
