package contact

import (
	"context"
	"sync"
	"time"
)

// StaticService keeps an in-memory inbox for local development.
type StaticService struct {
	mu       sync.Mutex
	messages []Message
}

// NewStaticService seeds the development inbox.
func NewStaticService() *StaticService {
	return &StaticService{
		messages: []Message{
			{
				ID:        1,
				FullName:  "Meera Iyer",
				Email:     "meera.iyer@example.com",
				Message:   "My order 5011 arrived with a damaged pump. Can it be replaced?",
				Status:    StatusUnread,
				CreatedAt: time.Date(2025, time.August, 28, 11, 42, 0, 0, time.UTC),
			},
			{
				ID:        2,
				FullName:  "Arjun Nair",
				Email:     "arjun.nair@example.com",
				Message:   "Do you ship to Port Blair?",
				Status:    StatusRead,
				CreatedAt: time.Date(2025, time.August, 26, 9, 5, 0, 0, time.UTC),
			},
		},
	}
}

// Messages implements Service.
func (s *StaticService) Messages(ctx context.Context, token string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

// SetStatus implements Service.
func (s *StaticService) SetStatus(ctx context.Context, token string, messageID int, status Status) error {
	if !status.Valid() {
		return ErrUnknownStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.messages {
		if m.ID == messageID {
			s.messages[i].Status = status
			return nil
		}
	}
	return ErrMessageNotFound
}

// Delete implements Service.
func (s *StaticService) Delete(ctx context.Context, token string, messageID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.messages {
		if m.ID == messageID {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return nil
		}
	}
	return ErrMessageNotFound
}
