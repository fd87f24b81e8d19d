package coupons

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"nainikaessentials.in/admin/internal/admin/backend"
)

// HTTPService manages coupons through the commerce backend.
type HTTPService struct {
	client *backend.Client
}

// NewHTTPService builds the service against the backend base URL.
func NewHTTPService(baseURL string, httpClient backend.HTTPClient) (*HTTPService, error) {
	client, err := backend.NewClient(baseURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("coupons: new http service: %w", err)
	}
	return &HTTPService{client: client}, nil
}

// Coupons implements Service.
func (s *HTTPService) Coupons(ctx context.Context, token string) ([]Coupon, error) {
	req, err := s.client.NewRequest(ctx, http.MethodGet, "/coupons", nil, token)
	if err != nil {
		return nil, fmt.Errorf("coupons: list: %w", err)
	}
	var coupons []Coupon
	if err := s.client.DecodeJSON(req, &coupons, http.StatusOK); err != nil {
		return nil, fmt.Errorf("coupons: list: %w", err)
	}
	return coupons, nil
}

// Create implements Service. Validation failures surface before any request
// is sent.
func (s *HTTPService) Create(ctx context.Context, token string, input CouponInput) (Coupon, error) {
	if err := input.Validate(); err != nil {
		return Coupon{}, err
	}
	req, err := s.client.NewJSONRequest(ctx, http.MethodPost, "/coupons/add", input, token)
	if err != nil {
		return Coupon{}, fmt.Errorf("coupons: create: %w", err)
	}
	var created Coupon
	if err := s.client.DecodeJSON(req, &created, http.StatusOK, http.StatusCreated); err != nil {
		return Coupon{}, fmt.Errorf("coupons: create: %w", err)
	}
	return created, nil
}

// Delete implements Service.
func (s *HTTPService) Delete(ctx context.Context, token string, couponID int) error {
	endpoint := "/coupons/" + strconv.Itoa(couponID)
	req, err := s.client.NewRequest(ctx, http.MethodDelete, endpoint, nil, token)
	if err != nil {
		return fmt.Errorf("coupons: delete: %w", err)
	}
	if err := s.client.DecodeJSON(req, nil, http.StatusOK, http.StatusNoContent); err != nil {
		var backendErr *backend.Error
		if errors.As(err, &backendErr) && backendErr.StatusCode == http.StatusNotFound {
			return ErrCouponNotFound
		}
		return fmt.Errorf("coupons: delete: %w", err)
	}
	return nil
}
