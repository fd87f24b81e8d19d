package coupons

import (
	"context"
	"errors"
	"strings"
)

// Service manages discount coupons against the commerce backend.
type Service interface {
	// Coupons returns all coupons.
	Coupons(ctx context.Context, token string) ([]Coupon, error)
	// Create validates and adds a coupon.
	Create(ctx context.Context, token string, input CouponInput) (Coupon, error)
	// Delete removes a coupon.
	Delete(ctx context.Context, token string, couponID int) error
}

// ErrCouponNotFound is returned when the backend has no coupon with the
// requested id.
var ErrCouponNotFound = errors.New("coupons: coupon not found")

// DiscountType is how a coupon's value applies to the cart.
type DiscountType string

const (
	// DiscountPercentage takes a percent off the matched items.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed takes a fixed rupee amount off.
	DiscountFixed DiscountType = "fixed"
)

// Coupon is a discount code as the backend returns it.
type Coupon struct {
	ID                   int          `json:"id"`
	Code                 string       `json:"code"`
	DiscountType         DiscountType `json:"discountType"`
	DiscountValue        float64      `json:"discountValue"`
	ApplicableProducts   []int        `json:"applicableProducts"`
	ApplicableCategories []string     `json:"applicableCategories"`
}

// CouponInput carries the fields of a new coupon.
type CouponInput struct {
	Code                 string       `json:"code"`
	DiscountType         DiscountType `json:"discountType"`
	DiscountValue        float64      `json:"discountValue"`
	ApplicableProducts   []int        `json:"applicableProducts"`
	ApplicableCategories []string     `json:"applicableCategories"`
}

// ValidationError indicates validation issues with a coupon submission.
type ValidationError struct {
	Message     string
	FieldErrors map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e == nil {
		return "invalid coupon"
	}
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "invalid coupon"
	}
	return msg
}

// Validate checks the input before any network call.
func (in CouponInput) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(in.Code) == "" {
		fields["code"] = "coupon code is required"
	}
	if in.DiscountValue <= 0 {
		fields["discountValue"] = "discount value must be greater than zero"
	}
	switch in.DiscountType {
	case DiscountPercentage, DiscountFixed:
	default:
		fields["discountType"] = "discount type must be percentage or fixed"
	}
	if len(fields) > 0 {
		return &ValidationError{Message: "invalid coupon", FieldErrors: fields}
	}
	return nil
}
