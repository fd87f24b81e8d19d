package cod

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"nainikaessentials.in/admin/internal/admin/backend"
)

// HTTPService manages COD charges through the commerce backend.
type HTTPService struct {
	client *backend.Client
}

// NewHTTPService builds the service against the backend base URL.
func NewHTTPService(baseURL string, httpClient backend.HTTPClient) (*HTTPService, error) {
	client, err := backend.NewClient(baseURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("cod: new http service: %w", err)
	}
	return &HTTPService{client: client}, nil
}

type chargePayload struct {
	Amount float64 `json:"cod_charge"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Charges implements Service.
func (s *HTTPService) Charges(ctx context.Context, token string) ([]Charge, error) {
	req, err := s.client.NewRequest(ctx, http.MethodGet, "/cod/all", nil, token)
	if err != nil {
		return nil, fmt.Errorf("cod: list charges: %w", err)
	}
	var charges []Charge
	if err := s.client.DecodeJSON(req, &charges, http.StatusOK); err != nil {
		return nil, fmt.Errorf("cod: list charges: %w", err)
	}
	return charges, nil
}

// Add implements Service.
func (s *HTTPService) Add(ctx context.Context, token string, amount float64) (string, error) {
	req, err := s.client.NewJSONRequest(ctx, http.MethodPost, "/cod/add", chargePayload{Amount: amount}, token)
	if err != nil {
		return "", fmt.Errorf("cod: add charge: %w", err)
	}
	var resp messageResponse
	if err := s.client.DecodeJSON(req, &resp, http.StatusOK, http.StatusCreated); err != nil {
		return "", fmt.Errorf("cod: add charge: %w", err)
	}
	return resp.Message, nil
}

// Update implements Service.
func (s *HTTPService) Update(ctx context.Context, token string, chargeID int, amount float64) (string, error) {
	endpoint := "/cod/update/" + strconv.Itoa(chargeID)
	req, err := s.client.NewJSONRequest(ctx, http.MethodPut, endpoint, chargePayload{Amount: amount}, token)
	if err != nil {
		return "", fmt.Errorf("cod: update charge: %w", err)
	}
	var resp messageResponse
	if err := s.client.DecodeJSON(req, &resp, http.StatusOK); err != nil {
		return "", fmt.Errorf("cod: update charge: %w", mapNotFound(err))
	}
	return resp.Message, nil
}

// Delete implements Service.
func (s *HTTPService) Delete(ctx context.Context, token string, chargeID int) (string, error) {
	endpoint := "/cod/delete/" + strconv.Itoa(chargeID)
	req, err := s.client.NewRequest(ctx, http.MethodDelete, endpoint, nil, token)
	if err != nil {
		return "", fmt.Errorf("cod: delete charge: %w", err)
	}
	var resp messageResponse
	if err := s.client.DecodeJSON(req, &resp, http.StatusOK); err != nil {
		return "", fmt.Errorf("cod: delete charge: %w", mapNotFound(err))
	}
	return resp.Message, nil
}

func mapNotFound(err error) error {
	var backendErr *backend.Error
	if errors.As(err, &backendErr) && backendErr.StatusCode == http.StatusNotFound {
		return ErrChargeNotFound
	}
	return err
}
