package dashboardview_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nainikaessentials.in/admin/internal/admin/orders"
	dashboardview "nainikaessentials.in/admin/internal/admin/views/dashboard"
)

func TestCards(t *testing.T) {
	t.Parallel()

	cards := dashboardview.Cards(orders.Summary{
		TotalOrders:   42,
		TotalRevenue:  125000.50,
		PendingOrders: 7,
		CODOrders:     12,
	})
	require.Len(t, cards, 4)

	require.Equal(t, "Total Orders", cards[0].Label)
	require.Equal(t, "42", cards[0].Value)
	require.Equal(t, orders.CardNone, cards[0].Filter)

	require.Equal(t, "Total Revenue", cards[1].Label)
	require.Equal(t, "₹1,25,000.50", cards[1].Value)
	require.Equal(t, orders.CardNone, cards[1].Filter)

	require.Equal(t, "Pending Orders", cards[2].Label)
	require.Equal(t, "7", cards[2].Value)
	require.Equal(t, orders.CardPending, cards[2].Filter)

	require.Equal(t, "COD Orders", cards[3].Label)
	require.Equal(t, "12", cards[3].Value)
	require.Equal(t, orders.CardCOD, cards[3].Filter)
}
