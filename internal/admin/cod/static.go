package cod

import (
	"context"
	"sync"
)

// StaticService keeps in-memory COD charge rows for local development.
type StaticService struct {
	mu      sync.Mutex
	nextID  int
	charges []Charge
}

// NewStaticService seeds one configured charge row.
func NewStaticService() *StaticService {
	return &StaticService{
		nextID:  2,
		charges: []Charge{{ID: 1, Amount: 49}},
	}
}

// Charges implements Service.
func (s *StaticService) Charges(ctx context.Context, token string) ([]Charge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Charge, len(s.charges))
	copy(out, s.charges)
	return out, nil
}

// Add implements Service.
func (s *StaticService) Add(ctx context.Context, token string, amount float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.charges = append(s.charges, Charge{ID: s.nextID, Amount: amount})
	s.nextID++
	return "COD charge added", nil
}

// Update implements Service.
func (s *StaticService) Update(ctx context.Context, token string, chargeID int, amount float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.charges {
		if c.ID == chargeID {
			s.charges[i].Amount = amount
			return "COD charge updated", nil
		}
	}
	return "", ErrChargeNotFound
}

// Delete implements Service.
func (s *StaticService) Delete(ctx context.Context, token string, chargeID int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.charges {
		if c.ID == chargeID {
			s.charges = append(s.charges[:i], s.charges[i+1:]...)
			return "COD charge deleted", nil
		}
	}
	return "", ErrChargeNotFound
}
