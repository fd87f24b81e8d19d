package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// failingService rejects every remote call so dispatcher rollback behaviour
// can be observed.
type failingService struct {
	err error
}

func (f *failingService) List(context.Context, string) ([]Order, error) { return nil, f.err }
func (f *failingService) Ship(context.Context, string, int) (Order, error) {
	return Order{}, f.err
}
func (f *failingService) RequestReturn(context.Context, string, int, int) (Order, error) {
	return Order{}, f.err
}
func (f *failingService) ResolveReturn(context.Context, string, int, ReturnDecision) (string, error) {
	return "", f.err
}

func seededDispatcher(t *testing.T, svc Service) *Dispatcher {
	t.Helper()
	d := NewDispatcher(svc, NewStore())
	_, err := d.Refresh(context.Background(), "")
	require.NoError(t, err)
	return d
}

func TestDispatcherShipReplacesSingleRecord(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	d := seededDispatcher(t, svc)
	before := d.Store().Orders()

	updated, err := d.Ship(context.Background(), "", 5012)
	require.NoError(t, err)
	require.Equal(t, ShippingShipped, updated.ShippingStatus)
	require.NotEmpty(t, updated.TrackingNumber)

	// The shipped record equals the service's returned object field-for-field.
	cached, ok := d.Store().Get(5012)
	require.True(t, ok)
	require.Equal(t, updated, cached)

	// Every other record is untouched.
	after := d.Store().Orders()
	require.Equal(t, len(before), len(after))
	for i := range before {
		if before[i].OrderID == 5012 {
			continue
		}
		require.Equal(t, before[i], after[i])
	}
}

func TestDispatcherShipPreconditions(t *testing.T) {
	t.Parallel()

	d := seededDispatcher(t, NewStaticService())

	_, err := d.Ship(context.Background(), "", 5009)
	require.ErrorIs(t, err, ErrAlreadyShipped)

	_, err = d.Ship(context.Background(), "", 99999)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDispatcherShipFailureLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	static := NewStaticService()
	d := seededDispatcher(t, static)
	before := d.Store().Orders()

	// Swap in a failing service after seeding.
	remoteErr := errors.New("backend unavailable")
	d.svc = &failingService{err: remoteErr}

	_, err := d.Ship(context.Background(), "", 5012)
	require.ErrorIs(t, err, remoteErr)
	require.Equal(t, before, d.Store().Orders())
}

func TestDispatcherResolveReturnStampsAllItems(t *testing.T) {
	t.Parallel()

	d := seededDispatcher(t, NewStaticService())

	msg, err := d.ResolveReturn(context.Background(), "", 5009, DecisionApprove)
	require.NoError(t, err)
	require.NotEmpty(t, msg)

	cached, ok := d.Store().Get(5009)
	require.True(t, ok)
	for _, item := range cached.Items {
		require.Equal(t, ReturnApproved, item.ReturnStatus)
	}

	// Terminal states accept no further decisions.
	_, err = d.ResolveReturn(context.Background(), "", 5009, DecisionReject)
	require.ErrorIs(t, err, ErrReturnNotRequested)
}

func TestDispatcherResolveReturnReject(t *testing.T) {
	t.Parallel()

	d := seededDispatcher(t, NewStaticService())

	_, err := d.ResolveReturn(context.Background(), "", 5009, DecisionReject)
	require.NoError(t, err)

	cached, _ := d.Store().Get(5009)
	for _, item := range cached.Items {
		require.Equal(t, ReturnRejected, item.ReturnStatus)
	}
}

func TestDispatcherResolveReturnFailureLeavesItemsUnchanged(t *testing.T) {
	t.Parallel()

	d := seededDispatcher(t, NewStaticService())
	remoteErr := errors.New("returns service down")
	d.svc = &failingService{err: remoteErr}

	_, err := d.ResolveReturn(context.Background(), "", 5009, DecisionApprove)
	require.ErrorIs(t, err, remoteErr)

	cached, _ := d.Store().Get(5009)
	for _, item := range cached.Items {
		require.Equal(t, ReturnRequested, item.ReturnStatus)
	}
}

func TestDispatcherResolveReturnGuards(t *testing.T) {
	t.Parallel()

	d := seededDispatcher(t, NewStaticService())

	_, err := d.ResolveReturn(context.Background(), "", 5009, ReturnDecision("escalate"))
	require.ErrorIs(t, err, ErrUnknownDecision)

	// No pending request on this order.
	_, err = d.ResolveReturn(context.Background(), "", 5012, DecisionApprove)
	require.ErrorIs(t, err, ErrReturnNotRequested)
}

func TestStoreSetAllCopiesInput(t *testing.T) {
	t.Parallel()

	store := NewStore()
	input := []Order{{OrderID: 1}, {OrderID: 2}}
	store.SetAll(input)

	input[0].OrderID = 999
	got := store.Orders()
	require.Equal(t, 1, got[0].OrderID)

	// Mutating the returned copy does not leak into the store either.
	got[1].OrderID = 777
	again := store.Orders()
	require.Equal(t, 2, again[1].OrderID)
}
