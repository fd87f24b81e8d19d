package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"nainikaessentials.in/admin/internal/admin/backend"
)

// HTTPService manages the catalog through the commerce backend.
type HTTPService struct {
	client *backend.Client
}

// NewHTTPService builds the service against the backend base URL.
func NewHTTPService(baseURL string, httpClient backend.HTTPClient) (*HTTPService, error) {
	client, err := backend.NewClient(baseURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("catalog: new http service: %w", err)
	}
	return &HTTPService{client: client}, nil
}

// Products implements Service.
func (s *HTTPService) Products(ctx context.Context, token string) ([]Product, error) {
	req, err := s.client.NewRequest(ctx, http.MethodGet, "/products/all", nil, token)
	if err != nil {
		return nil, fmt.Errorf("catalog: list products: %w", err)
	}
	var products []Product
	if err := s.client.DecodeJSON(req, &products, http.StatusOK); err != nil {
		return nil, fmt.Errorf("catalog: list products: %w", err)
	}
	return products, nil
}

// Create implements Service.
func (s *HTTPService) Create(ctx context.Context, token string, input ProductInput) (Product, error) {
	req, err := s.productRequest(ctx, http.MethodPost, "/products/add", input, token)
	if err != nil {
		return Product{}, fmt.Errorf("catalog: create product: %w", err)
	}
	var created Product
	if err := s.client.DecodeJSON(req, &created, http.StatusOK, http.StatusCreated); err != nil {
		return Product{}, fmt.Errorf("catalog: create product: %w", err)
	}
	return created, nil
}

// Update implements Service.
func (s *HTTPService) Update(ctx context.Context, token string, productID int, input ProductInput) (Product, error) {
	endpoint := "/products/update/" + strconv.Itoa(productID)
	req, err := s.productRequest(ctx, http.MethodPut, endpoint, input, token)
	if err != nil {
		return Product{}, fmt.Errorf("catalog: update product: %w", err)
	}
	var updated Product
	if err := s.client.DecodeJSON(req, &updated, http.StatusOK); err != nil {
		return Product{}, fmt.Errorf("catalog: update product: %w", mapNotFound(err))
	}
	return updated, nil
}

// Delete implements Service.
func (s *HTTPService) Delete(ctx context.Context, token string, productID int) error {
	endpoint := "/products/delete/" + strconv.Itoa(productID)
	req, err := s.client.NewRequest(ctx, http.MethodDelete, endpoint, nil, token)
	if err != nil {
		return fmt.Errorf("catalog: delete product: %w", err)
	}
	if err := s.client.DecodeJSON(req, nil, http.StatusOK, http.StatusNoContent); err != nil {
		return fmt.Errorf("catalog: delete product: %w", mapNotFound(err))
	}
	return nil
}

// productRequest encodes the input as multipart when images are attached and
// as JSON otherwise, matching what the backend's upload middleware expects.
func (s *HTTPService) productRequest(ctx context.Context, method, endpoint string, input ProductInput, token string) (*http.Request, error) {
	if input.MainImage == nil && len(input.Thumbnails) == 0 {
		payload := map[string]any{
			"name":           input.Name,
			"category":       input.Category,
			"variants":       input.Variants,
			"discount":       input.Discount,
			"description":    input.Description,
			"productDetails": input.ProductDetails,
		}
		return s.client.NewJSONRequest(ctx, method, endpoint, payload, token)
	}

	variants, err := json.Marshal(input.Variants)
	if err != nil {
		return nil, fmt.Errorf("encode variants: %w", err)
	}
	details, err := json.Marshal(input.ProductDetails)
	if err != nil {
		return nil, fmt.Errorf("encode product details: %w", err)
	}
	fields := map[string]string{
		"name":           input.Name,
		"category":       input.Category,
		"variants":       string(variants),
		"discount":       strconv.FormatFloat(input.Discount, 'f', -1, 64),
		"description":    input.Description,
		"productDetails": string(details),
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
		return ErrProductNotFound
	}
	return err
}
