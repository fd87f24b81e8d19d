// Package dashboardview builds the landing page's metric cards from the
// order aggregates.
package dashboardview

import (
	"nainikaessentials.in/admin/internal/admin/orders"
	"nainikaessentials.in/admin/internal/admin/views/helpers"
)

// Card is one headline metric. Filter names the card toggle it drives; the
// always-on cards leave it empty.
type Card struct {
	Label  string            `json:"label"`
	Value  string            `json:"value"`
	Filter orders.CardFilter `json:"filter,omitempty"`
}

// Cards builds the four headline cards from an order summary.
func Cards(s orders.Summary) []Card {
	return []Card{
		{Label: "Total Orders", Value: helpers.Count(s.TotalOrders)},
		{Label: "Total Revenue", Value: helpers.Rupees(s.TotalRevenue)},
		{Label: "Pending Orders", Value: helpers.Count(s.PendingOrders), Filter: orders.CardPending},
		{Label: "COD Orders", Value: helpers.Count(s.CODOrders), Filter: orders.CardCOD},
	}
}
