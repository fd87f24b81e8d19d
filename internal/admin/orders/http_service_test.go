package orders_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nainikaessentials.in/admin/internal/admin/orders"
)

func TestHTTPServiceList(t *testing.T) {
	t.Parallel()

	var receivedAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		receivedAuth = r.Header.Get("Authorization")

		all := []orders.Order{
			{
				OrderID:        42,
				UserID:         9,
				CreatedAt:      time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
				PaymentMethod:  "cod",
				TotalAmount:    1499,
				OrderStatus:    orders.StatusPending,
				ShippingStatus: orders.ShippingNotShipped,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(all)
	}))
	t.Cleanup(ts.Close)

	svc, err := orders.NewHTTPService(ts.URL, ts.Client())
	require.NoError(t, err)

	all, err := svc.List(context.Background(), "test-token")
	require.NoError(t, err)
	require.Equal(t, "Bearer test-token", receivedAuth)
	require.Len(t, all, 1)
	require.Equal(t, 42, all[0].OrderID)
	require.Equal(t, orders.Amount(1499), all[0].TotalAmount)
}

func TestHTTPServiceShipReturnsAuthoritativeOrder(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/42/ship", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		updated := orders.Order{
			OrderID:        42,
			ShippingStatus: orders.ShippingShipped,
			TrackingNumber: "NE00004211IN",
			CourierService: "Delhivery",
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(updated)
	}))
	t.Cleanup(ts.Close)

	svc, err := orders.NewHTTPService(ts.URL, ts.Client())
	require.NoError(t, err)

	updated, err := svc.Ship(context.Background(), "token", 42)
	require.NoError(t, err)
	require.Equal(t, orders.ShippingShipped, updated.ShippingStatus)
	require.Equal(t, "NE00004211IN", updated.TrackingNumber)
}

func TestHTTPServiceResolveReturnSendsActionTag(t *testing.T) {
	t.Parallel()

	var body map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/admin/returns/42", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		defer r.Body.Close()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Return approved"})
	}))
	t.Cleanup(ts.Close)

	svc, err := orders.NewHTTPService(ts.URL, ts.Client())
	require.NoError(t, err)

	msg, err := svc.ResolveReturn(context.Background(), "token", 42, orders.DecisionApprove)
	require.NoError(t, err)
	require.Equal(t, "Return approved", msg)
	require.Equal(t, "approve", body["action"])
}

func TestHTTPServiceSurfacesBackendErrorVerbatim(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "return already resolved"})
	}))
	t.Cleanup(ts.Close)

	svc, err := orders.NewHTTPService(ts.URL, ts.Client())
	require.NoError(t, err)

	_, err = svc.ResolveReturn(context.Background(), "token", 42, orders.DecisionReject)
	require.Error(t, err)
	require.Contains(t, err.Error(), "return already resolved")
}

func TestHTTPServiceRejectsEmptyBaseURL(t *testing.T) {
	t.Parallel()

	_, err := orders.NewHTTPService("  ", nil)
	require.Error(t, err)
}
