// Package invoice turns an order's line items into a printable invoice. The
// transform is pure and synchronous: no network call, no persisted side
// effect.
package invoice

import (
	"nainikaessentials.in/admin/internal/admin/orders"
)

// TaxRate is the GST fraction applied on top of the subtotal.
const TaxRate = 0.18

// Line is one invoice row.
type Line struct {
	ProductName string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// Invoice is the computed document model.
type Invoice struct {
	OrderID  int
	Customer orders.ShippingAddr
	Lines    []Line
	Subtotal float64
	Tax      float64
	Total    float64
}

// Compute builds the invoice for an order. An order without line items yields
// an all-zero invoice rather than an error. The shipping address is decoded
// best-effort; a malformed address leaves the customer block empty, which
// only degrades the letterhead, never the totals.
func Compute(o orders.Order) Invoice {
	inv := Invoice{OrderID: o.OrderID}
	if addr, err := o.Address(); err == nil {
		inv.Customer = addr
	}

	for _, item := range o.Items {
		lineTotal := float64(item.Price) * float64(item.Quantity)
		inv.Lines = append(inv.Lines, Line{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   float64(item.Price),
			LineTotal:   lineTotal,
		})
		inv.Subtotal += lineTotal
	}

	inv.Tax = inv.Subtotal * TaxRate
	inv.Total = inv.Subtotal + inv.Tax
	return inv
}
