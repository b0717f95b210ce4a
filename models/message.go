package models

// Message is a single board entry exchanged with the API.
//
// A message is immutable from the client's point of view: there is no edit or
// delete operation, and the client never fabricates one locally. Every
// Message held in client state was received verbatim from the server.
type Message struct {
	// ID is the server-assigned identifier. Zero (and omitted from JSON)
	// until the server has persisted the record.
	ID int64 `json:"id,omitempty"`

	// Content is the message body. Required; must be non-empty after
	// trimming whitespace.
	Content string `json:"content"`

	// Sender is the display name of the author.
	Sender string `json:"sender"`

	// Timestamp is the creation time in ISO-8601 (RFC 3339) form.
	// The client fills it at submit time when absent.
	Timestamp string `json:"timestamp,omitempty"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
