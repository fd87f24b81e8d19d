package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Service exposes the order operations the admin console performs against the
// remote backend. All mutations are remote-first: local state is only updated
// after the backend acknowledges the change.
type Service interface {
	// List returns the full order collection in the backend's response order.
	List(ctx context.Context, token string) ([]Order, error)

	// Ship creates a shipment for the order and returns the backend's
	// authoritative updated order object.
	Ship(ctx context.Context, token string, orderID int) (Order, error)

	// RequestReturn files a return request for a line item on behalf of the
	// customer and returns the updated order. The admin console consumes
	// Requested state; this operation exists for support tooling.
	RequestReturn(ctx context.Context, token string, orderID, productID int) (Order, error)

	// ResolveReturn approves or rejects a pending return request and returns
	// the backend's acknowledgement message.
	ResolveReturn(ctx context.Context, token string, orderID int, action ReturnDecision) (string, error)
}

// OrderStatus is the server-owned business lifecycle state of an order.
type OrderStatus string

const (
	// StatusPending indicates the order has not been fulfilled yet.
	StatusPending OrderStatus = "Pending"
	// StatusCompleted indicates the order has been fulfilled.
	StatusCompleted OrderStatus = "Completed"
)

// ShippingStatus tracks the fulfilment leg of an order. Orders stay in
// NotShipped until a shipment record exists on the backend.
type ShippingStatus string

const (
	// ShippingNotShipped means no shipment has been created.
	ShippingNotShipped ShippingStatus = "NotShipped"
	// ShippingShipped means a shipment exists and is in transit.
	ShippingShipped ShippingStatus = "Shipped"
	// ShippingDelivered means the shipment reached the customer.
	ShippingDelivered ShippingStatus = "Delivered"
)

// ReturnStatus tracks the return leg of a line item.
type ReturnStatus string

const (
	// ReturnNotRequested means no return has been filed.
	ReturnNotRequested ReturnStatus = "NotRequested"
	// ReturnRequested means the customer filed a return awaiting a decision.
	ReturnRequested ReturnStatus = "Requested"
	// ReturnApproved is a terminal state set by an admin approval.
	ReturnApproved ReturnStatus = "Approved"
	// ReturnRejected is a terminal state set by an admin rejection.
	ReturnRejected ReturnStatus = "Rejected"
)

// ReturnDecision is the admin action applied to a pending return request.
type ReturnDecision string

const (
	// DecisionApprove accepts the return.
	DecisionApprove ReturnDecision = "approve"
	// DecisionReject declines the return.
	DecisionReject ReturnDecision = "reject"
)

// Status returns the terminal return status the decision resolves to.
func (d ReturnDecision) Status() ReturnStatus {
	if d == DecisionApprove {
		return ReturnApproved
	}
	return ReturnRejected
}

// PaymentCOD is the payment method tag for cash-on-delivery orders.
const PaymentCOD = "cod"

var (
	// ErrOrderNotFound is returned when an order id does not exist locally.
	ErrOrderNotFound = errors.New("order not found")
	// ErrAlreadyShipped is returned when a ship action targets an order that
	// already has a shipment.
	ErrAlreadyShipped = errors.New("order already shipped")
	// ErrReturnNotRequested is returned when a return decision targets an
	// order without a pending return request.
	ErrReturnNotRequested = errors.New("no pending return request")
	// ErrUnknownDecision is returned for a return decision outside approve/reject.
	ErrUnknownDecision = errors.New("unknown return decision")
)

// Amount is a currency value decoded leniently: JSON numbers and numeric
// strings parse normally, anything else coerces to zero so that one corrupt
// total never poisons revenue aggregates with NaN.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*a = 0
		return nil
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		*a = Amount(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*a = Amount(v)
			return nil
		}
	}
	*a = 0
	return nil
}

// Item is one purchased line of an order.
type Item struct {
	ProductID    int          `json:"product_id"`
	ProductName  string       `json:"product_name"`
	ProductImage string       `json:"product_image"`
	Quantity     int          `json:"quantity"`
	Size         string       `json:"size"`
	Color        string       `json:"color"`
	Price        Amount       `json:"price"`
	ReturnStatus ReturnStatus `json:"return_status"`
	ReturnReason string       `json:"return_reason,omitempty"`
}

// Order is one customer purchase as returned by the backend.
type Order struct {
	OrderID        int            `json:"order_id"`
	UserID         int            `json:"user_id"`
	CreatedAt      time.Time      `json:"created_at"`
	PaymentMethod  string         `json:"payment_method"`
	TotalAmount    Amount         `json:"total_amount"`
	OrderStatus    OrderStatus    `json:"order_status"`
	ShippingStatus ShippingStatus `json:"shipping_status"`
	TrackingNumber string         `json:"tracking_number,omitempty"`
	CourierService string         `json:"courier_service,omitempty"`

	// ShippingAddress is a JSON document serialized into a string by the
	// backend. Decode it with Address; a malformed document is an error for
	// this order only, never for the surrounding collection.
	ShippingAddress string `json:"shipping_address"`

	Items []Item `json:"items"`
}

// ShippingAddr is the decoded structured delivery address.
type ShippingAddr struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Address decodes the serialized shipping address.
func (o Order) Address() (ShippingAddr, error) {
	var addr ShippingAddr
	raw := strings.TrimSpace(o.ShippingAddress)
	if raw == "" {
		return addr, fmt.Errorf("order %d: shipping address is empty", o.OrderID)
	}
	if err := json.Unmarshal([]byte(raw), &addr); err != nil {
		return addr, fmt.Errorf("order %d: decode shipping address: %w", o.OrderID, err)
	}
	return addr, nil
}

// Shipped reports whether a shipment exists for the order. The zero value of
// ShippingStatus counts as NotShipped.
func (o Order) Shipped() bool {
	return o.ShippingStatus == ShippingShipped || o.ShippingStatus == ShippingDelivered
}

// ReturnState reports the return status the console treats as representative
// for the whole order. The backend tracks returns per line item, but the
// console keys its return actions off the first item.
func (o Order) ReturnState() ReturnStatus {
	if len(o.Items) == 0 || o.Items[0].ReturnStatus == "" {
		return ReturnNotRequested
	}
	return o.Items[0].ReturnStatus
}
