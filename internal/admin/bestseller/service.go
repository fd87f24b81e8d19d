package bestseller

import (
	"context"
	"errors"
	"io"
)

// Service manages the storefront's featured product rails.
type Service interface {
	// Entries returns every featured entry.
	Entries(ctx context.Context, token string) ([]Entry, error)
	// Entry returns one entry for the edit form.
	Entry(ctx context.Context, token string, entryID int) (Entry, error)
	// Create adds an entry.
	Create(ctx context.Context, token string, input EntryInput) (Entry, error)
	// Update replaces an entry's editable fields.
	Update(ctx context.Context, token string, entryID int, input EntryInput) (Entry, error)
	// Delete removes an entry.
	Delete(ctx context.Context, token string, entryID int) error
}

// ErrEntryNotFound is returned when the backend has no entry with the
// requested id.
var ErrEntryNotFound = errors.New("bestseller: entry not found")

// ErrUnknownRail is returned for a rail outside the enum.
var ErrUnknownRail = errors.New("bestseller: unknown rail type")

// Rail is which storefront carousel an entry belongs to.
type Rail string

const (
	// RailBestseller is the top sellers carousel.
	RailBestseller Rail = "bestseller"
	// RailNewLaunch is the new launches carousel.
	RailNewLaunch Rail = "newlaunch"
)

// Valid reports whether the rail is part of the enum.
func (r Rail) Valid() bool {
	return r == RailBestseller || r == RailNewLaunch
}

// Variant is one size/color/price/stock combination of a featured product.
type Variant struct {
	Size  string  `json:"size"`
	Color string  `json:"color"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Entry is one featured product as the backend returns it.
type Entry struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Type        Rail      `json:"type"`
	MainImage   string    `json:"mainImage"`
	Thumbnails  []string  `json:"thumbnails"`
	Variants    []Variant `json:"variants"`
}

// Image is an upload attached to a create or update request.
type Image struct {
	Filename string
	Reader   io.Reader
}

// EntryInput carries the editable fields of a featured entry.
type EntryInput struct {
	Name        string
	Category    string
	Description string
	Type        Rail
	Variants    []Variant
	MainImage   *Image
	Thumbnails  []Image
}
