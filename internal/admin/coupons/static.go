package coupons

import (
	"context"
	"sync"
)

// StaticService keeps an in-memory coupon list for local development.
type StaticService struct {
	mu      sync.Mutex
	nextID  int
	coupons []Coupon
}

// NewStaticService seeds the development coupon list.
func NewStaticService() *StaticService {
	return &StaticService{
		nextID: 3,
		coupons: []Coupon{
			{
				ID:                   1,
				Code:                 "WELCOME10",
				DiscountType:         DiscountPercentage,
				DiscountValue:        10,
				ApplicableCategories: []string{"Skincare"},
			},
			{
				ID:            2,
				Code:          "FLAT100",
				DiscountType:  DiscountFixed,
				DiscountValue: 100,
			},
		},
	}
}

// Coupons implements Service.
func (s *StaticService) Coupons(ctx context.Context, token string) ([]Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Coupon, len(s.coupons))
	copy(out, s.coupons)
	return out, nil
}

// Create implements Service.
func (s *StaticService) Create(ctx context.Context, token string, input CouponInput) (Coupon, error) {
	if err := input.Validate(); err != nil {
		return Coupon{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	created := Coupon{
		ID:                   s.nextID,
		Code:                 input.Code,
		DiscountType:         input.DiscountType,
		DiscountValue:        input.DiscountValue,
		ApplicableProducts:   input.ApplicableProducts,
		ApplicableCategories: input.ApplicableCategories,
	}
	s.nextID++
	s.coupons = append(s.coupons, created)
	return created, nil
}

// Delete implements Service.
func (s *StaticService) Delete(ctx context.Context, token string, couponID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.coupons {
		if c.ID == couponID {
			s.coupons = append(s.coupons[:i], s.coupons[i+1:]...)
			return nil
		}
	}
	return ErrCouponNotFound
}
