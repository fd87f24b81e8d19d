package bestseller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"nainikaessentials.in/admin/internal/admin/backend"
)

// HTTPService manages featured entries through the commerce backend.
type HTTPService struct {
	client *backend.Client
}

// NewHTTPService builds the service against the backend base URL.
func NewHTTPService(baseURL string, httpClient backend.HTTPClient) (*HTTPService, error) {
	client, err := backend.NewClient(baseURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("bestseller: new http service: %w", err)
	}
	return &HTTPService{client: client}, nil
}

// Entries implements Service.
func (s *HTTPService) Entries(ctx context.Context, token string) ([]Entry, error) {
	req, err := s.client.NewRequest(ctx, http.MethodGet, "/bestseller/all", nil, token)
	if err != nil {
		return nil, fmt.Errorf("bestseller: list entries: %w", err)
	}
	var entries []Entry
	if err := s.client.DecodeJSON(req, &entries, http.StatusOK); err != nil {
		return nil, fmt.Errorf("bestseller: list entries: %w", err)
	}
	return entries, nil
}

// Entry implements Service.
func (s *HTTPService) Entry(ctx context.Context, token string, entryID int) (Entry, error) {
	endpoint := "/bestseller/" + strconv.Itoa(entryID)
	req, err := s.client.NewRequest(ctx, http.MethodGet, endpoint, nil, token)
	if err != nil {
		return Entry{}, fmt.Errorf("bestseller: get entry: %w", err)
	}
	var entry Entry
	if err := s.client.DecodeJSON(req, &entry, http.StatusOK); err != nil {
		return Entry{}, fmt.Errorf("bestseller: get entry: %w", mapNotFound(err))
	}
	return entry, nil
}

// Create implements Service.
func (s *HTTPService) Create(ctx context.Context, token string, input EntryInput) (Entry, error) {
	req, err := s.entryRequest(ctx, http.MethodPost, "/bestseller/add", input, token)
	if err != nil {
		return Entry{}, fmt.Errorf("bestseller: create entry: %w", err)
	}
	var created Entry
	if err := s.client.DecodeJSON(req, &created, http.StatusOK, http.StatusCreated); err != nil {
		return Entry{}, fmt.Errorf("bestseller: create entry: %w", err)
	}
	return created, nil
}

// Update implements Service.
func (s *HTTPService) Update(ctx context.Context, token string, entryID int, input EntryInput) (Entry, error) {
	endpoint := "/bestseller/update/" + strconv.Itoa(entryID)
	req, err := s.entryRequest(ctx, http.MethodPut, endpoint, input, token)
	if err != nil {
		return Entry{}, fmt.Errorf("bestseller: update entry: %w", err)
	}
	var updated Entry
	if err := s.client.DecodeJSON(req, &updated, http.StatusOK); err != nil {
		return Entry{}, fmt.Errorf("bestseller: update entry: %w", mapNotFound(err))
	}
	return updated, nil
}

// Delete implements Service.
func (s *HTTPService) Delete(ctx context.Context, token string, entryID int) error {
	endpoint := "/bestseller/delete/" + strconv.Itoa(entryID)
	req, err := s.client.NewRequest(ctx, http.MethodDelete, endpoint, nil, token)
	if err != nil {
		return fmt.Errorf("bestseller: delete entry: %w", err)
	}
	if err := s.client.DecodeJSON(req, nil, http.StatusOK, http.StatusNoContent); err != nil {
		return fmt.Errorf("bestseller: delete entry: %w", mapNotFound(err))
	}
	return nil
}

// entryRequest always encodes as multipart; the backend's upload middleware
// parses the same form whether or not images are attached.
func (s *HTTPService) entryRequest(ctx context.Context, method, endpoint string, input EntryInput, token string) (*http.Request, error) {
	if !input.Type.Valid() {
		return nil, ErrUnknownRail
	}
	variants, err := json.Marshal(input.Variants)
	if err != nil {
		return nil, fmt.Errorf("encode variants: %w", err)
	}
	fields := map[string]string{
		"name":        input.Name,
		"category":    input.Category,
		"description": input.Description,
		"variants":    string(variants),
		"type":        string(input.Type),
	}
	var files []backend.FilePart
	if input.MainImage != nil {
		files = append(files, backend.FilePart{
			Field:    "mainImage",
			Filename: input.MainImage.Filename,
			Content:  input.MainImage.Reader,
		})
	}
	for _, thumb := range input.Thumbnails {
		files = append(files, backend.FilePart{
			Field:    "thumbnails",
			Filename: thumb.Filename,
			Content:  thumb.Reader,
		})
	}
	return s.client.NewMultipartRequest(ctx, method, endpoint, fields, files, token)
}

func mapNotFound(err error) error {
	var backendErr *backend.Error
	if errors.As(err, &backendErr) && backendErr.StatusCode == http.StatusNotFound {
		return ErrEntryNotFound
	}
	return err
}
