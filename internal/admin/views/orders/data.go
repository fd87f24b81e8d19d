// Package ordersview builds the display models for the order management
// table: one row per order with formatted money and dates, and the action
// cell each workflow state permits.
package ordersview

import (
	"nainikaessentials.in/admin/internal/admin/orders"
	"nainikaessentials.in/admin/internal/admin/views/helpers"
)

// ShippingActionKind discriminates the shipping cell.
type ShippingActionKind string

const (
	// ShippingActionShip renders the "Mark as Shipped" button.
	ShippingActionShip ShippingActionKind = "ship"
	// ShippingActionStatus renders a status badge with tracking details.
	ShippingActionStatus ShippingActionKind = "status"
)

// ShippingAction is the shipping cell of one row.
type ShippingAction struct {
	Kind           ShippingActionKind `json:"kind"`
	Label          string             `json:"label"`
	TrackingNumber string             `json:"trackingNumber,omitempty"`
	Courier        string             `json:"courier,omitempty"`
}

// ReturnActionKind discriminates the returns cell.
type ReturnActionKind string

const (
	// ReturnActionNone renders an empty cell.
	ReturnActionNone ReturnActionKind = "none"
	// ReturnActionDecide renders approve and reject buttons.
	ReturnActionDecide ReturnActionKind = "decide"
	// ReturnActionLabel renders the resolved decision.
	ReturnActionLabel ReturnActionKind = "label"
)

// ReturnAction is the returns cell of one row.
type ReturnAction struct {
	Kind  ReturnActionKind `json:"kind"`
	Label string           `json:"label,omitempty"`
}

// Row is one order in the management table.
type Row struct {
	OrderID       int            `json:"orderId"`
	Customer      string         `json:"customer"`
	Placed        string         `json:"placed"`
	Amount        string         `json:"amount"`
	PaymentMethod string         `json:"paymentMethod"`
	OrderStatus   string         `json:"orderStatus"`
	Shipping      ShippingAction `json:"shipping"`
	Return        ReturnAction   `json:"return"`
	AddressError  string         `json:"addressError,omitempty"`
}

// Rows builds the table for the given orders. A malformed shipping address
// flags its own row and never drops the others.
func Rows(list []orders.Order) []Row {
	rows := make([]Row, 0, len(list))
	for _, o := range list {
		rows = append(rows, buildRow(o))
	}
	return rows
}

func buildRow(o orders.Order) Row {
	row := Row{
		OrderID:       o.OrderID,
		Placed:        helpers.Date(o.CreatedAt, ""),
		Amount:        helpers.Rupees(float64(o.TotalAmount)),
		PaymentMethod: o.PaymentMethod,
		OrderStatus:   string(o.OrderStatus),
		Shipping:      shippingAction(o),
		Return:        returnAction(o),
	}
	addr, err := o.Address()
	if err != nil {
		row.AddressError = "shipping address unavailable"
	} else {
		row.Customer = addr.Name
	}
	return row
}

func shippingAction(o orders.Order) ShippingAction {
	switch o.ShippingStatus {
	case orders.ShippingShipped, orders.ShippingDelivered:
		return ShippingAction{
			Kind:           ShippingActionStatus,
			Label:          string(o.ShippingStatus),
			TrackingNumber: o.TrackingNumber,
			Courier:        o.CourierService,
		}
	default:
		return ShippingAction{Kind: ShippingActionShip, Label: "Mark as Shipped"}
	}
}

func returnAction(o orders.Order) ReturnAction {
	switch o.ReturnState() {
	case orders.ReturnRequested:
		return ReturnAction{Kind: ReturnActionDecide, Label: "Return requested"}
	case orders.ReturnApproved:
		return ReturnAction{Kind: ReturnActionLabel, Label: "Return approved"}
	case orders.ReturnRejected:
		return ReturnAction{Kind: ReturnActionLabel, Label: "Return rejected"}
	default:
		return ReturnAction{Kind: ReturnActionNone}
	}
}
