package sales

import (
	"context"
	"fmt"
	"net/http"

	"nainikaessentials.in/admin/internal/admin/backend"
)

// HTTPService reads the sales report from the commerce backend.
type HTTPService struct {
	client *backend.Client
}

// NewHTTPService builds the service against the backend base URL.
func NewHTTPService(baseURL string, httpClient backend.HTTPClient) (*HTTPService, error) {
	client, err := backend.NewClient(baseURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("sales: new http service: %w", err)
	}
	return &HTTPService{client: client}, nil
}

// Report implements Service.
func (s *HTTPService) Report(ctx context.Context, token string) (Report, error) {
	req, err := s.client.NewRequest(ctx, http.MethodGet, "/orders/sales", nil, token)
	if err != nil {
		return Report{}, fmt.Errorf("sales: report: %w", err)
	}
	var report Report
	if err := s.client.DecodeJSON(req, &report, http.StatusOK); err != nil {
		return Report{}, fmt.Errorf("sales: report: %w", err)
	}
	return report.Normalize(), nil
}
