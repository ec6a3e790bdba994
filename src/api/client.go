// client.go - HTTP client for the Remote Case Service. The service owns all
// business logic (case storage, agent responses, document summarization);
// this client only moves JSON and multipart bodies across the wire.
//
// Error model per the service contract: any transport failure or non-2xx
// status is a uniform RequestError. No retries, no timeouts, no structured
// error schema.

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"legalaid/src/models"
)

// Client talks to the Remote Case Service.
type Client struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

// NewClient creates a client for the service at baseURL. The underlying
// http.Client carries no timeout: a hung request stays in flight until the
// server answers, which the UI surfaces as a stuck busy indicator.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		client:  &http.Client{},
		baseURL: baseURL,
		logger:  logger,
	}
}

// BaseURL returns the configured service address, used by the full-screen
// connectivity error view.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListCases fetches every case, with nested chat history and documents.
func (c *Client) ListCases() ([]models.Case, error) {
	url := c.baseURL + "/api/cases"
	resp, err := c.client.Get(url)
	if err != nil {
		c.logger.Error("list cases request failed", "url", url, "error", err)
		return nil, &models.RequestError{Message: "failed to fetch cases", Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var cases []models.Case
	if err := json.NewDecoder(resp.Body).Decode(&cases); err != nil {
		return nil, &models.RequestError{Message: "failed to decode case list", Err: err}
	}
	c.logger.Info("fetched cases", "count", len(cases))
	return cases, nil
}

// CreateCase creates a new case with the given name and returns the
// created record (the backend seeds it with a greeting message).
func (c *Client) CreateCase(name string) (models.Case, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return models.Case{}, &models.RequestError{Message: "failed to encode case name", Err: err}
	}

	url := c.baseURL + "/api/cases"
	resp, err := c.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		c.logger.Error("create case request failed", "url", url, "error", err)
		return models.Case{}, &models.RequestError{Message: "failed to create case", Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return models.Case{}, err
	}

	var created models.Case
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return models.Case{}, &models.RequestError{Message: "failed to decode created case", Err: err}
	}
	c.logger.Info("created case", "id", created.ID, "name", created.Name)
	return created, nil
}

// SendChat posts a user message to the case's chat endpoint and returns
// the agent's reply message.
func (c *Client) SendChat(caseID, message string) (models.ChatMessage, error) {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return models.ChatMessage{}, &models.RequestError{Message: "failed to encode chat message", Err: err}
	}

	url := fmt.Sprintf("%s/api/cases/%s/chat", c.baseURL, caseID)
	resp, err := c.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		c.logger.Error("chat request failed", "case", caseID, "error", err)
		return models.ChatMessage{}, &models.RequestError{Message: "failed to send message", Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return models.ChatMessage{}, err
	}

	var reply models.ChatMessage
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return models.ChatMessage{}, &models.RequestError{Message: "failed to decode agent reply", Err: err}
	}
	return reply, nil
}

// UploadDocument posts the file at path to the case's documents endpoint
// as multipart form data under the field name "file". The returned
// Document does not include chat-history side effects; callers must
// re-fetch the case list to observe the backend's confirmation message.
func (c *Client) UploadDocument(caseID, path string) (models.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Document{}, &models.RequestError{Message: "failed to open file", Err: err}
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return models.Document{}, &models.RequestError{Message: "failed to build upload form", Err: err}
	}
	if _, err := io.Copy(part, f); err != nil {
		return models.Document{}, &models.RequestError{Message: "failed to read file", Err: err}
	}
	if err := w.Close(); err != nil {
		return models.Document{}, &models.RequestError{Message: "failed to finalize upload form", Err: err}
	}

	url := fmt.Sprintf("%s/api/cases/%s/documents", c.baseURL, caseID)
	resp, err := c.client.Post(url, w.FormDataContentType(), &buf)
	if err != nil {
		c.logger.Error("upload request failed", "case", caseID, "file", path, "error", err)
		return models.Document{}, &models.RequestError{Message: "failed to upload document", Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return models.Document{}, err
	}

	var doc models.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return models.Document{}, &models.RequestError{Message: "failed to decode uploaded document", Err: err}
	}
	c.logger.Info("uploaded document", "case", caseID, "document", doc.ID, "name", doc.Name)
	return doc, nil
}

// checkStatus collapses every non-2xx response into a uniform failure; the
// service's error bodies are not consumed.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &models.RequestError{Message: fmt.Sprintf("request failed with status %s", resp.Status)}
}
