package models

import (
	"encoding/json"
	"fmt"
)

// MessageStatus is the delivery state assigned by the backend.
type MessageStatus string

const (
	StatusPending MessageStatus = "pending"
	StatusSent    MessageStatus = "sent"
	StatusFailed  MessageStatus = "failed"
)

// MessageStatuses lists every valid status, in the order the history filters show them.
var MessageStatuses = []MessageStatus{StatusSent, StatusPending, StatusFailed}

// Valid reports whether s is one of the known statuses.
func (s MessageStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSent, StatusFailed:
		return true
	}
	return false
}

func (s *MessageStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("message status: %w", err)
	}
	status := MessageStatus(raw)
	if !status.Valid() {
		return fmt.Errorf("unknown message status %q", raw)
	}
	*s = status
	return nil
}

// Message represents an SMS as recorded by the backend.
type Message struct {
	ID           string        `json:"id"`
	Content      string        `json:"content"`
	ContactID    string        `json:"contact_id"`
	ContactName  string        `json:"contact_name,omitempty"`
	ContactPhone string        `json:"contact_phone,omitempty"`
	Status       MessageStatus `json:"status"`
	CreatedAt    string        `json:"created_at"`
}

// MessagePage is one page of the message history.
type MessagePage struct {
	Items []Message `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Pages int       `json:"pages"`
}

// SendMessageRequest is the body posted to create a message.
type SendMessageRequest struct {
	Content   string `json:"content"`
	ContactID string `json:"contact_id"`
}
