package orders

import (
	"context"
	"fmt"
	"net/http"

	"nainikaessentials.in/admin/internal/admin/backend"
)

// HTTPService implements Service against the store backend's REST endpoints.
type HTTPService struct {
	client *backend.Client
}

// NewHTTPService constructs a Service that talks to the orders API.
func NewHTTPService(baseURL string, client backend.HTTPClient) (*HTTPService, error) {
	c, err := backend.NewClient(baseURL, client)
	if err != nil {
		return nil, fmt.Errorf("orders: %w", err)
	}
	return &HTTPService{client: c}, nil
}

// List fetches the full order collection.
func (s *HTTPService) List(ctx context.Context, token string) ([]Order, error) {
	req, err := s.client.NewRequest(ctx, http.MethodGet, "/orders/", nil, token)
	if err != nil {
		return nil, err
	}
	var all []Order
	if err := s.client.DecodeJSON(req, &all); err != nil {
		return nil, fmt.Errorf("orders: list: %w", err)
	}
	return all, nil
}

// Ship creates a shipment and returns the backend's updated order object.
func (s *HTTPService) Ship(ctx context.Context, token string, orderID int) (Order, error) {
	endpoint := fmt.Sprintf("/orders/%d/ship", orderID)
	req, err := s.client.NewRequest(ctx, http.MethodPost, endpoint, nil, token)
	if err != nil {
		return Order{}, err
	}
	var updated Order
	if err := s.client.DecodeJSON(req, &updated, http.StatusOK, http.StatusCreated); err != nil {
		return Order{}, fmt.Errorf("orders: ship %d: %w", orderID, err)
	}
	return updated, nil
}

// RequestReturn files a return request for a line item and returns the
// backend's updated order.
func (s *HTTPService) RequestReturn(ctx context.Context, token string, orderID, productID int) (Order, error) {
	endpoint := fmt.Sprintf("/orders/%d/return-request", orderID)
	body := map[string]int{"productId": productID}
	req, err := s.client.NewJSONRequest(ctx, http.MethodPost, endpoint, body, token)
	if err != nil {
		return Order{}, err
	}
	var updated Order
	if err := s.client.DecodeJSON(req, &updated); err != nil {
		return Order{}, fmt.Errorf("orders: return request %d: %w", orderID, err)
	}
	return updated, nil
}

// ResolveReturn submits an approve/reject decision. The backend acknowledges
// with a bare {message}; reconciliation of local state is the caller's job.
func (s *HTTPService) ResolveReturn(ctx context.Context, token string, orderID int, decision ReturnDecision) (string, error) {
	endpoint := fmt.Sprintf("/orders/admin/returns/%d", orderID)
	body := map[string]string{"action": string(decision)}
	req, err := s.client.NewJSONRequest(ctx, http.MethodPost, endpoint, body, token)
	if err != nil {
		return "", err
	}
	var ack struct {
		Message string `json:"message"`
	}
	if err := s.client.DecodeJSON(req, &ack); err != nil {
		return "", fmt.Errorf("orders: resolve return %d: %w", orderID, err)
	}
	return ack.Message, nil
}
