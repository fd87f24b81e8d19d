package sales

import (
	"context"
	"encoding/json"
	"fmt"
)

// Service exposes the sales and stock report for the admin console.
type Service interface {
	// Report returns best/worst sellers and the per-product stock breakdown.
	Report(ctx context.Context, token string) (Report, error)
}

// Stock thresholds for the alert classification, in units of the lowest
// variant's remaining stock.
const (
	criticalStockThreshold = 5
	lowStockThreshold      = 20
)

// StockLevel buckets a product's scarcest variant.
type StockLevel string

const (
	// StockUnknown means no variant data could be decoded.
	StockUnknown StockLevel = "Unknown"
	// StockCritical means the scarcest variant is nearly sold out.
	StockCritical StockLevel = "Critical"
	// StockLow means stock is running down and worth reordering.
	StockLow StockLevel = "Low"
	// StockGood means no action is needed.
	StockGood StockLevel = "Good"
)

// Variant is one size/color/price/stock combination of a product.
type Variant struct {
	Size  string  `json:"size"`
	Color string  `json:"color"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// VariantList decodes the backend's polymorphic variants field: sometimes a
// JSON array, sometimes that same array serialized into a string, sometimes
// garbage. Anything undecodable degrades to nil so one corrupt product never
// breaks the report.
type VariantList []Variant

// UnmarshalJSON implements json.Unmarshaler.
func (v *VariantList) UnmarshalJSON(data []byte) error {
	var direct []Variant
	if err := json.Unmarshal(data, &direct); err == nil {
		*v = direct
		return nil
	}
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		var nested []Variant
		if err := json.Unmarshal([]byte(encoded), &nested); err == nil {
			*v = nested
			return nil
		}
	}
	*v = nil
	return nil
}

// Product is one row of the report's product table.
type Product struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Category  string      `json:"category"`
	TotalSold int         `json:"totalSold"`
	Variants  VariantList `json:"variants"`
}

// StockStatus is the derived classification for a product.
type StockStatus struct {
	Level    StockLevel
	MinStock int
}

// Label renders the status the way the report table shows it.
func (s StockStatus) Label() string {
	if s.Level == StockUnknown {
		return string(StockUnknown)
	}
	return fmt.Sprintf("%s (%d left)", s.Level, s.MinStock)
}

// StockStatus classifies the product by its scarcest variant: ≤5 Critical,
// ≤20 Low, otherwise Good. Products without decodable variants are Unknown.
func (p Product) StockStatus() StockStatus {
	if len(p.Variants) == 0 {
		return StockStatus{Level: StockUnknown}
	}
	min := p.Variants[0].Stock
	for _, variant := range p.Variants[1:] {
		if variant.Stock < min {
			min = variant.Stock
		}
	}
	switch {
	case min <= criticalStockThreshold:
		return StockStatus{Level: StockCritical, MinStock: min}
	case min <= lowStockThreshold:
		return StockStatus{Level: StockLow, MinStock: min}
	default:
		return StockStatus{Level: StockGood, MinStock: min}
	}
}

// Report is the sales endpoint's payload.
type Report struct {
	HighestSelling *Product  `json:"highestSelling"`
	LowestSelling  *Product  `json:"lowestSelling"`
	AllProducts    []Product `json:"allProducts"`
}

// Normalize fills HighestSelling/LowestSelling from AllProducts when the
// backend omits them, by totalSold with first-encountered winning ties.
func (r Report) Normalize() Report {
	if len(r.AllProducts) == 0 {
		return r
	}
	if r.HighestSelling == nil {
		best := r.AllProducts[0]
		for _, p := range r.AllProducts[1:] {
			if p.TotalSold > best.TotalSold {
				best = p
			}
		}
		r.HighestSelling = &best
	}
	if r.LowestSelling == nil {
		worst := r.AllProducts[0]
		for _, p := range r.AllProducts[1:] {
			if p.TotalSold < worst.TotalSold {
				worst = p
			}
		}
		r.LowestSelling = &worst
	}
	return r
}
