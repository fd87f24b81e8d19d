package ordersview_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nainikaessentials.in/admin/internal/admin/orders"
	ordersview "nainikaessentials.in/admin/internal/admin/views/orders"
)

func sampleOrder() orders.Order {
	return orders.Order{
		OrderID:         5012,
		UserID:          88,
		CreatedAt:       time.Date(2025, time.August, 30, 10, 0, 0, 0, time.UTC),
		PaymentMethod:   orders.PaymentCOD,
		TotalAmount:     1248,
		OrderStatus:     orders.StatusPending,
		ShippingStatus:  orders.ShippingNotShipped,
		ShippingAddress: `{"name":"Ananya Sharma","phone":"9812098120","street":"14 MG Road","city":"Bengaluru","state":"Karnataka","pincode":"560001"}`,
		Items:           []orders.Item{{ProductID: 101, Quantity: 1, Price: 1248}},
	}
}

func TestRowsAwaitingShipmentGetsShipButton(t *testing.T) {
	t.Parallel()

	rows := ordersview.Rows([]orders.Order{sampleOrder()})
	require.Len(t, rows, 1)

	row := rows[0]
	require.Equal(t, 5012, row.OrderID)
	require.Equal(t, "Ananya Sharma", row.Customer)
	require.Equal(t, "₹1,248", row.Amount)
	require.Equal(t, ordersview.ShippingActionShip, row.Shipping.Kind)
	require.Equal(t, "Mark as Shipped", row.Shipping.Label)
	require.Equal(t, ordersview.ReturnActionNone, row.Return.Kind)
}

func TestRowsShippedOrderShowsTracking(t *testing.T) {
	t.Parallel()

	o := sampleOrder()
	o.ShippingStatus = orders.ShippingShipped
	o.TrackingNumber = "NE00005012IN"
	o.CourierService = "Delhivery"

	row := ordersview.Rows([]orders.Order{o})[0]
	require.Equal(t, ordersview.ShippingActionStatus, row.Shipping.Kind)
	require.Equal(t, "Shipped", row.Shipping.Label)
	require.Equal(t, "NE00005012IN", row.Shipping.TrackingNumber)
	require.Equal(t, "Delhivery", row.Shipping.Courier)
}

func TestRowsReturnStates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status orders.ReturnStatus
		kind   ordersview.ReturnActionKind
		label  string
	}{
		{name: "requested", status: orders.ReturnRequested, kind: ordersview.ReturnActionDecide, label: "Return requested"},
		{name: "approved", status: orders.ReturnApproved, kind: ordersview.ReturnActionLabel, label: "Return approved"},
		{name: "rejected", status: orders.ReturnRejected, kind: ordersview.ReturnActionLabel, label: "Return rejected"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			o := sampleOrder()
			o.Items[0].ReturnStatus = tc.status
			row := ordersview.Rows([]orders.Order{o})[0]
			require.Equal(t, tc.kind, row.Return.Kind)
			require.Equal(t, tc.label, row.Return.Label)
		})
	}
}

func TestRowsMalformedAddressFlagsOnlyItsRow(t *testing.T) {
	t.Parallel()

	bad := sampleOrder()
	bad.OrderID = 5013
	bad.ShippingAddress = "{corrupt"

	rows := ordersview.Rows([]orders.Order{sampleOrder(), bad})
	require.Len(t, rows, 2)
	require.Equal(t, "Ananya Sharma", rows[0].Customer)
	require.Empty(t, rows[0].AddressError)
	require.Empty(t, rows[1].Customer)
	require.Equal(t, "shipping address unavailable", rows[1].AddressError)
}
