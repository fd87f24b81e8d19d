package contact

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"nainikaessentials.in/admin/internal/admin/backend"
)

// HTTPService manages the contact inbox through the commerce backend.
type HTTPService struct {
	client *backend.Client
}

// NewHTTPService builds the service against the backend base URL.
func NewHTTPService(baseURL string, httpClient backend.HTTPClient) (*HTTPService, error) {
	client, err := backend.NewClient(baseURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("contact: new http service: %w", err)
	}
	return &HTTPService{client: client}, nil
}

// Messages implements Service.
func (s *HTTPService) Messages(ctx context.Context, token string) ([]Message, error) {
	req, err := s.client.NewRequest(ctx, http.MethodGet, "/contact/messages", nil, token)
	if err != nil {
		return nil, fmt.Errorf("contact: list messages: %w", err)
	}
	var messages []Message
	if err := s.client.DecodeJSON(req, &messages, http.StatusOK); err != nil {
		return nil, fmt.Errorf("contact: list messages: %w", err)
	}
	return messages, nil
}

// SetStatus implements Service.
func (s *HTTPService) SetStatus(ctx context.Context, token string, messageID int, status Status) error {
	if !status.Valid() {
		return ErrUnknownStatus
	}
	endpoint := "/contact/messages/" + strconv.Itoa(messageID) + "/status"
	payload := struct {
		Status Status `json:"status"`
	}{Status: status}
	req, err := s.client.NewJSONRequest(ctx, http.MethodPut, endpoint, payload, token)
	if err != nil {
		return fmt.Errorf("contact: set status: %w", err)
	}
	if err := s.client.DecodeJSON(req, nil, http.StatusOK); err != nil {
		return fmt.Errorf("contact: set status: %w", mapNotFound(err))
	}
	return nil
}

// Delete implements Service.
func (s *HTTPService) Delete(ctx context.Context, token string, messageID int) error {
	endpoint := "/contact/messages/" + strconv.Itoa(messageID)
	req, err := s.client.NewRequest(ctx, http.MethodDelete, endpoint, nil, token)
	if err != nil {
		return fmt.Errorf("contact: delete message: %w", err)
	}
	if err := s.client.DecodeJSON(req, nil, http.StatusOK, http.StatusNoContent); err != nil {
		return fmt.Errorf("contact: delete message: %w", mapNotFound(err))
	}
	return nil
}

func mapNotFound(err error) error {
	var backendErr *backend.Error
	if errors.As(err, &backendErr) && backendErr.StatusCode == http.StatusNotFound {
		return ErrMessageNotFound
	}
	return err
}
