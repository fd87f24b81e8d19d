package bestseller

import (
	"context"
	"sync"
)

// StaticService keeps in-memory featured entries for local development.
type StaticService struct {
	mu      sync.Mutex
	nextID  int
	entries []Entry
}

// NewStaticService seeds both storefront rails.
func NewStaticService() *StaticService {
	return &StaticService{
		nextID: 3,
		entries: []Entry{
			{
				ID:        1,
				Name:      "Kumkumadi Face Oil",
				Category:  "Skincare",
				Type:      RailBestseller,
				MainImage: "/static/img/kumkumadi-oil.jpg",
				Variants:  []Variant{{Size: "30ml", Price: 899, Stock: 42}},
			},
			{
				ID:        2,
				Name:      "Saffron Night Cream",
				Category:  "Skincare",
				Type:      RailNewLaunch,
				MainImage: "/static/img/saffron-cream.jpg",
				Variants:  []Variant{{Size: "50g", Price: 1199, Stock: 25}},
			},
		},
	}
}

// Entries implements Service.
func (s *StaticService) Entries(ctx context.Context, token string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Entry implements Service.
func (s *StaticService) Entry(ctx context.Context, token string, entryID int) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == entryID {
			return e, nil
		}
	}
	return Entry{}, ErrEntryNotFound
}

// Create implements Service.
func (s *StaticService) Create(ctx context.Context, token string, input EntryInput) (Entry, error) {
	if !input.Type.Valid() {
		return Entry{}, ErrUnknownRail
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	created := entryFromInput(s.nextID, input)
	s.nextID++
	s.entries = append(s.entries, created)
	return created, nil
}

// Update implements Service.
func (s *StaticService) Update(ctx context.Context, token string, entryID int, input EntryInput) (Entry, error) {
	if !input.Type.Valid() {
		return Entry{}, ErrUnknownRail
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID != entryID {
			continue
		}
		updated := entryFromInput(entryID, input)
		if input.MainImage == nil {
			updated.MainImage = e.MainImage
		}
		if len(input.Thumbnails) == 0 {
			updated.Thumbnails = e.Thumbnails
		}
		s.entries[i] = updated
		return updated, nil
	}
	return Entry{}, ErrEntryNotFound
}

// Delete implements Service.
func (s *StaticService) Delete(ctx context.Context, token string, entryID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == entryID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

func entryFromInput(id int, input EntryInput) Entry {
	e := Entry{
		ID:          id,
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Type:        input.Type,
	}
	e.Variants = make([]Variant, len(input.Variants))
	copy(e.Variants, input.Variants)
	if input.MainImage != nil {
		e.MainImage = "/static/img/uploads/" + input.MainImage.Filename
	}
	for _, thumb := range input.Thumbnails {
		e.Thumbnails = append(e.Thumbnails, "/static/img/uploads/"+thumb.Filename)
	}
	return e
}
