package bestseller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"nainikaessentials.in/admin/internal/admin/bestseller"
)

func TestRailValid(t *testing.T) {
	t.Parallel()

	require.True(t, bestseller.RailBestseller.Valid())
	require.True(t, bestseller.RailNewLaunch.Valid())
	require.False(t, bestseller.Rail("clearance").Valid())
}

func TestStaticServiceLifecycle(t *testing.T) {
	t.Parallel()

	svc := bestseller.NewStaticService()
	ctx := context.Background()

	entries, err := svc.Entries(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entry, err := svc.Entry(ctx, "", 2)
	require.NoError(t, err)
	require.Equal(t, bestseller.RailNewLaunch, entry.Type)

	created, err := svc.Create(ctx, "", bestseller.EntryInput{
		Name: "Vitamin C Serum",
		Type: bestseller.RailNewLaunch,
	})
	require.NoError(t, err)
	require.Equal(t, 3, created.ID)

	_, err = svc.Create(ctx, "", bestseller.EntryInput{Name: "Bad", Type: "clearance"})
	require.ErrorIs(t, err, bestseller.ErrUnknownRail)

	updated, err := svc.Update(ctx, "", 3, bestseller.EntryInput{
		Name: "Vitamin C Serum 10%",
		Type: bestseller.RailBestseller,
	})
	require.NoError(t, err)
	require.Equal(t, bestseller.RailBestseller, updated.Type)

	require.NoError(t, svc.Delete(ctx, "", 3))
	require.ErrorIs(t, svc.Delete(ctx, "", 3), bestseller.ErrEntryNotFound)
	_, err = svc.Entry(ctx, "", 3)
	require.ErrorIs(t, err, bestseller.ErrEntryNotFound)
}

func TestHTTPServiceCreateEncodesMultipart(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/bestseller/add", r.URL.Path)
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		require.Equal(t, "Saffron Night Cream", r.FormValue("name"))
		require.Equal(t, "newlaunch", r.FormValue("type"))
		var variants []bestseller.Variant
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("variants")), &variants))
		require.Len(t, variants, 1)

		_, header, err := r.FormFile("mainImage")
		require.NoError(t, err)
		require.Equal(t, "saffron.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 5, "name": "Saffron Night Cream", "type": "newlaunch"}`))
	}))
	t.Cleanup(srv.Close)

	svc, err := bestseller.NewHTTPService(srv.URL, srv.Client())
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), "token-1", bestseller.EntryInput{
		Name:      "Saffron Night Cream",
		Type:      bestseller.RailNewLaunch,
		Variants:  []bestseller.Variant{{Size: "50g", Price: 1199, Stock: 25}},
		MainImage: &bestseller.Image{Filename: "saffron.jpg", Reader: strings.NewReader("jpeg")},
	})
	require.NoError(t, err)
	require.Equal(t, 5, created.ID)
}

func TestHTTPServiceRejectsUnknownRail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the backend")
	}))
	t.Cleanup(srv.Close)

	svc, err := bestseller.NewHTTPService(srv.URL, srv.Client())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "token-1", bestseller.EntryInput{Name: "Bad", Type: "clearance"})
	require.ErrorIs(t, err, bestseller.ErrUnknownRail)
}

func TestHTTPServiceEntryNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bestseller/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "not found"}`))
	}))
	t.Cleanup(srv.Close)

	svc, err := bestseller.NewHTTPService(srv.URL, srv.Client())
	require.NoError(t, err)

	_, err = svc.Entry(context.Background(), "token-1", 42)
	require.ErrorIs(t, err, bestseller.ErrEntryNotFound)
}
