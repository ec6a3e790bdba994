// case.go - Domain types shared across the app, mirroring the Remote Case
// Service's JSON wire format (cases with nested chat_history and documents).

package models

import "time"

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

// ChatMessage is one turn in a case's conversation. Messages are immutable
// once created and only ever appended to a case's history.
type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Document holds an uploaded file's metadata plus the backend-generated
// summary. ExtractedData is free-form JSON produced by the backend's
// document parser; the client carries it opaquely.
type Document struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	UploadDate    time.Time      `json:"upload_date"`
	Summary       string         `json:"summary"`
	ExtractedData map[string]any `json:"extracted_data,omitempty"`
}

// Case is a client matter: an opaque identifier, a display name, the
// conversation so far (insertion order = conversation order), and the
// documents uploaded to it.
type Case struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	CreatedAt   time.Time     `json:"created_at"`
	ChatHistory []ChatMessage `json:"chat_history"`
	Documents   []Document    `json:"documents"`
}

// CasePatch is a partial update to a Case. Nil fields are absent from the
// patch and leave the corresponding Case field untouched.
type CasePatch struct {
	Name        *string
	CreatedAt   *time.Time
	ChatHistory *[]ChatMessage
	Documents   *[]Document
}

// Apply merges the patch into the case, preserving fields the patch does
// not carry.
func (c *Case) Apply(p CasePatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.CreatedAt != nil {
		c.CreatedAt = *p.CreatedAt
	}
	if p.ChatHistory != nil {
		c.ChatHistory = *p.ChatHistory
	}
	if p.Documents != nil {
		c.Documents = *p.Documents
	}
}

// PatchFrom builds a patch carrying every field of the given case, used to
// merge a freshly fetched full record into the store.
func PatchFrom(c Case) CasePatch {
	return CasePatch{
		Name:        &c.Name,
		CreatedAt:   &c.CreatedAt,
		ChatHistory: &c.ChatHistory,
		Documents:   &c.Documents,
	}
}
