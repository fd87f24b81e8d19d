package orders

import (
	"strconv"
	"strings"
)

// CardFilter is the dashboard stat-card filter. Selecting a card narrows the
// table to that slice; selecting it again (or one of the always-on cards)
// clears the filter. Three states, not a boolean.
type CardFilter string

const (
	// CardNone shows every order.
	CardNone CardFilter = ""
	// CardPending shows orders with status Pending.
	CardPending CardFilter = "pending"
	// CardCOD shows cash-on-delivery orders.
	CardCOD CardFilter = "cod"
)

// Toggle returns the filter state after the given card is selected.
func (f CardFilter) Toggle(card CardFilter) CardFilter {
	if card == f {
		return CardNone
	}
	switch card {
	case CardPending, CardCOD:
		return card
	default:
		return CardNone
	}
}

// Matches reports whether the order belongs to the filtered slice.
func (f CardFilter) Matches(o Order) bool {
	switch f {
	case CardPending:
		return o.OrderStatus == StatusPending
	case CardCOD:
		return o.PaymentMethod == PaymentCOD
	default:
		return true
	}
}

// Filter returns the orders whose stringified order id, user id, payment
// method, or order status contains the query, case-insensitively. An empty
// query returns the input slice unchanged, preserving backend order. The
// predicate is pure; it is re-evaluated on every keystroke and refresh.
func Filter(all []Order, query string) []Order {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}
	matched := make([]Order, 0, len(all))
	for _, o := range all {
		if matchesQuery(o, q) {
			matched = append(matched, o)
		}
	}
	return matched
}

// FilterWith composes the free-text query with a card filter (logical AND).
func FilterWith(all []Order, query string, card CardFilter) []Order {
	filtered := Filter(all, query)
	if card == CardNone {
		return filtered
	}
	matched := make([]Order, 0, len(filtered))
	for _, o := range filtered {
		if card.Matches(o) {
			matched = append(matched, o)
		}
	}
	return matched
}

func matchesQuery(o Order, q string) bool {
	if strings.Contains(strconv.Itoa(o.OrderID), q) {
		return true
	}
	if strings.Contains(strconv.Itoa(o.UserID), q) {
		return true
	}
	if strings.Contains(strings.ToLower(o.PaymentMethod), q) {
		return true
	}
	return strings.Contains(strings.ToLower(string(o.OrderStatus)), q)
}

// Summary aggregates the stat-card metrics for the current order collection.
type Summary struct {
	TotalOrders   int
	TotalRevenue  float64
	PendingOrders int
	CODOrders     int
}

// Summarize computes the dashboard metrics in a single pass. Corrupt totals
// decode to zero upstream (see Amount), so revenue stays finite.
func Summarize(all []Order) Summary {
	var s Summary
	s.TotalOrders = len(all)
	for _, o := range all {
		s.TotalRevenue += float64(o.TotalAmount)
		if o.OrderStatus == StatusPending {
			s.PendingOrders++
		}
		if o.PaymentMethod == PaymentCOD {
			s.CODOrders++
		}
	}
	return s
}
