package cod

import (
	"context"
	"errors"
)

// Service manages the cash-on-delivery charge settings.
type Service interface {
	// Charges returns the configured charge rows. The console only shows
	// the first two.
	Charges(ctx context.Context, token string) ([]Charge, error)
	// Add creates a new charge row.
	Add(ctx context.Context, token string, amount float64) (string, error)
	// Update changes an existing row's amount.
	Update(ctx context.Context, token string, chargeID int, amount float64) (string, error)
	// Delete removes a row.
	Delete(ctx context.Context, token string, chargeID int) (string, error)
}

// ErrChargeNotFound is returned when the backend has no charge row with the
// requested id.
var ErrChargeNotFound = errors.New("cod: charge not found")

// maxVisibleCharges caps how many rows the console works with.
const maxVisibleCharges = 2

// Charge is one cash-on-delivery charge row.
type Charge struct {
	ID     int     `json:"id"`
	Amount float64 `json:"cod_charge"`
}

// Visible trims the backend's rows to the console's display limit.
func Visible(charges []Charge) []Charge {
	if len(charges) <= maxVisibleCharges {
		return charges
	}
	return charges[:maxVisibleCharges]
}

// Save upserts the charge: it updates the first existing row when any exist
// and adds a new one otherwise.
func Save(ctx context.Context, svc Service, token string, existing []Charge, amount float64) (string, error) {
	if len(existing) > 0 {
		return svc.Update(ctx, token, existing[0].ID, amount)
	}
	return svc.Add(ctx, token, amount)
}
