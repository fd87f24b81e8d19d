package contact_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"nainikaessentials.in/admin/internal/admin/contact"
)

func TestStatusValid(t *testing.T) {
	t.Parallel()

	require.True(t, contact.StatusRead.Valid())
	require.True(t, contact.StatusUnread.Valid())
	require.False(t, contact.Status("archived").Valid())
}

func TestStaticServiceLifecycle(t *testing.T) {
	t.Parallel()

	svc := contact.NewStaticService()
	ctx := context.Background()

	messages, err := svc.Messages(ctx, "")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Equal(t, contact.StatusUnread, messages[0].Status)

	require.NoError(t, svc.SetStatus(ctx, "", 1, contact.StatusRead))
	messages, err = svc.Messages(ctx, "")
	require.NoError(t, err)
	require.Equal(t, contact.StatusRead, messages[0].Status)

	require.ErrorIs(t, svc.SetStatus(ctx, "", 1, contact.Status("archived")), contact.ErrUnknownStatus)
	require.ErrorIs(t, svc.SetStatus(ctx, "", 99, contact.StatusRead), contact.ErrMessageNotFound)

	require.NoError(t, svc.Delete(ctx, "", 2))
	require.ErrorIs(t, svc.Delete(ctx, "", 2), contact.ErrMessageNotFound)
}

func TestHTTPServiceSetStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/contact/messages/4/status", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "read", payload["status"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "status updated"}`))
	}))
	t.Cleanup(srv.Close)

	svc, err := contact.NewHTTPService(srv.URL, srv.Client())
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(context.Background(), "token-1", 4, contact.StatusRead))
	require.ErrorIs(t, svc.SetStatus(context.Background(), "token-1", 4, contact.Status("junk")), contact.ErrUnknownStatus)
}

func TestHTTPServiceMessagesAndDelete(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/contact/messages":
			_, _ = w.Write([]byte(`[
				{"id": 1, "full_name": "Meera Iyer", "email": "meera.iyer@example.com", "message": "hello", "status": "unread", "created_at": "2025-08-28T11:42:00Z"}
			]`))
		case r.Method == http.MethodDelete && r.URL.Path == "/contact/messages/9":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "message not found"}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	t.Cleanup(srv.Close)

	svc, err := contact.NewHTTPService(srv.URL, srv.Client())
	require.NoError(t, err)

	messages, err := svc.Messages(context.Background(), "token-1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, "Meera Iyer", messages[0].FullName)
	require.Equal(t, contact.StatusUnread, messages[0].Status)

	require.ErrorIs(t, svc.Delete(context.Background(), "token-1", 9), contact.ErrMessageNotFound)
}
