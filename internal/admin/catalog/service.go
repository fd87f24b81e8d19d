package catalog

import (
	"context"
	"errors"
	"io"
	"math"
)

// Service manages the product catalog against the commerce backend.
type Service interface {
	// Products returns the full catalog.
	Products(ctx context.Context, token string) ([]Product, error)
	// Create adds a product; images are optional.
	Create(ctx context.Context, token string, input ProductInput) (Product, error)
	// Update replaces a product's editable fields.
	Update(ctx context.Context, token string, productID int, input ProductInput) (Product, error)
	// Delete removes a product.
	Delete(ctx context.Context, token string, productID int) error
}

// ErrProductNotFound is returned when the backend has no product with the
// requested id.
var ErrProductNotFound = errors.New("catalog: product not found")

// Variant is one purchasable size/color combination.
type Variant struct {
	Size  string  `json:"size"`
	Color string  `json:"color"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Product is a catalog entry as the backend returns it.
type Product struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	MainImage      string            `json:"mainImage"`
	Thumbnails     []string          `json:"thumbnails"`
	Variants       []Variant         `json:"variants"`
	Discount       float64           `json:"discount"`
	Description    string            `json:"description"`
	ProductDetails map[string]string `json:"productDetails"`
}

// FinalPrice applies the product discount to a variant price, rounded to the
// nearest rupee.
func (p Product) FinalPrice(v Variant) int {
	return int(math.Round(v.Price - v.Price*p.Discount/100))
}

// Image is an upload attached to a create or update request.
type Image struct {
	Filename string
	Reader   io.Reader
}

// ProductInput carries the editable fields of a product.
type ProductInput struct {
	Name           string
	Category       string
	Variants       []Variant
	Discount       float64
	Description    string
	ProductDetails map[string]string
	MainImage      *Image
	Thumbnails     []Image
}

// Categories returns the unique category names in first-seen order.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	var out []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
