package orders

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleOrders() []Order {
	return []Order{
		{OrderID: 101, UserID: 7, PaymentMethod: "cod", TotalAmount: 500, OrderStatus: StatusPending},
		{OrderID: 102, UserID: 88, PaymentMethod: "razorpay", TotalAmount: 1250, OrderStatus: StatusCompleted},
		{OrderID: 203, UserID: 7, PaymentMethod: "razorpay", TotalAmount: 300, OrderStatus: StatusPending},
		{OrderID: 310, UserID: 42, PaymentMethod: "cod", TotalAmount: 999, OrderStatus: StatusCompleted},
	}
}

func TestFilterEmptyQueryReturnsAllInOrder(t *testing.T) {
	t.Parallel()

	all := sampleOrders()
	got := Filter(all, "")
	require.Equal(t, all, got)

	got = Filter(all, "   ")
	require.Equal(t, all, got)
}

func TestFilterMatchesStringifiedFields(t *testing.T) {
	t.Parallel()

	all := sampleOrders()

	byID := Filter(all, "102")
	require.Len(t, byID, 1)
	require.Equal(t, 102, byID[0].OrderID)

	byUser := Filter(all, "7")
	for _, o := range byUser {
		matched := strings.Contains(strconv.Itoa(o.OrderID), "7") ||
			strings.Contains(strconv.Itoa(o.UserID), "7")
		require.True(t, matched, "order %d should contain the query", o.OrderID)
	}

	byPayment := Filter(all, "COD")
	require.Len(t, byPayment, 2)

	byStatus := Filter(all, "pending")
	require.Len(t, byStatus, 2)
}

func TestFilterReturnsSubsetPreservingOrder(t *testing.T) {
	t.Parallel()

	all := sampleOrders()
	got := Filter(all, "razorpay")
	require.Len(t, got, 2)
	require.Equal(t, 102, got[0].OrderID)
	require.Equal(t, 203, got[1].OrderID)
}

func TestFilterWithComposesCardFilter(t *testing.T) {
	t.Parallel()

	all := sampleOrders()

	pendingCOD := FilterWith(all, "cod", CardPending)
	require.Len(t, pendingCOD, 1)
	require.Equal(t, 101, pendingCOD[0].OrderID)

	codOnly := FilterWith(all, "", CardCOD)
	require.Len(t, codOnly, 2)
}

func TestCardFilterToggleIsThreeState(t *testing.T) {
	t.Parallel()

	f := CardNone
	f = f.Toggle(CardPending)
	require.Equal(t, CardPending, f)

	// Selecting the active card again clears the filter.
	f = f.Toggle(CardPending)
	require.Equal(t, CardNone, f)

	f = f.Toggle(CardCOD)
	require.Equal(t, CardCOD, f)
	f = f.Toggle(CardPending)
	require.Equal(t, CardPending, f)

	// The always-on cards reset to no filter.
	f = f.Toggle(CardNone)
	require.Equal(t, CardNone, f)
}

func TestSummarizeSinglePass(t *testing.T) {
	t.Parallel()

	s := Summarize(sampleOrders())
	require.Equal(t, 4, s.TotalOrders)
	require.InDelta(t, 3049, s.TotalRevenue, 0.001)
	require.Equal(t, 2, s.PendingOrders)
	require.Equal(t, 2, s.CODOrders)

	require.Equal(t, Summary{}, Summarize(nil))
}

func TestAmountCoercesNonNumericToZero(t *testing.T) {
	t.Parallel()

	var collection []Order
	payload := `[
		{"order_id":1,"total_amount":100},
		{"order_id":2,"total_amount":"bad"},
		{"order_id":3,"total_amount":"250.50"},
		{"order_id":4,"total_amount":null}
	]`
	require.NoError(t, json.Unmarshal([]byte(payload), &collection))

	s := Summarize(collection)
	require.InDelta(t, 350.50, s.TotalRevenue, 0.001)
}

func TestAddressDecodeIsIsolatedPerOrder(t *testing.T) {
	t.Parallel()

	good := Order{
		OrderID: 1,
		ShippingAddress: `{"name":"Ananya Sharma","phone":"9876501234","street":"14 MG Road",` +
			`"city":"Bengaluru","state":"Karnataka","pincode":"560001"}`,
	}
	bad := Order{OrderID: 2, ShippingAddress: `{"name":"Ravi`}

	addr, err := good.Address()
	require.NoError(t, err)
	require.Equal(t, "Bengaluru", addr.City)
	require.Equal(t, "560001", addr.Pincode)

	_, err = bad.Address()
	require.Error(t, err)
	require.Contains(t, err.Error(), "order 2")

	// The good order is unaffected by its neighbour's corruption.
	_, err = good.Address()
	require.NoError(t, err)
}

func TestReturnStateUsesFirstItem(t *testing.T) {
	t.Parallel()

	o := Order{Items: []Item{
		{ReturnStatus: ReturnRequested},
		{ReturnStatus: ReturnNotRequested},
	}}
	require.Equal(t, ReturnRequested, o.ReturnState())

	require.Equal(t, ReturnNotRequested, Order{}.ReturnState())
	require.Equal(t, ReturnNotRequested, Order{Items: []Item{{}}}.ReturnState())
}
