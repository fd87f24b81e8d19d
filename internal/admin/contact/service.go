package contact

import (
	"context"
	"errors"
	"time"
)

// Service manages the customer contact inbox.
type Service interface {
	// Messages returns the inbox.
	Messages(ctx context.Context, token string) ([]Message, error)
	// SetStatus marks a message read or unread.
	SetStatus(ctx context.Context, token string, messageID int, status Status) error
	// Delete removes a message.
	Delete(ctx context.Context, token string, messageID int) error
}

// ErrMessageNotFound is returned when the backend has no message with the
// requested id.
var ErrMessageNotFound = errors.New("contact: message not found")

// ErrUnknownStatus is returned for a status outside the read/unread enum.
var ErrUnknownStatus = errors.New("contact: unknown status")

// Status is a message's triage state.
type Status string

const (
	// StatusUnread marks a message awaiting triage.
	StatusUnread Status = "unread"
	// StatusRead marks a handled message.
	StatusRead Status = "read"
)

// Valid reports whether the status is part of the enum.
func (s Status) Valid() bool {
	return s == StatusUnread || s == StatusRead
}

// Message is one contact form submission.
type Message struct {
	ID        int       `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
