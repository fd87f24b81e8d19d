package orders

import (
	"context"
	"sync"
)

// Store is the console's in-memory order cache. It is refreshed wholesale
// from the backend and mutated only through the Dispatcher, so view code
// always reads a consistent snapshot. Nothing here survives a restart.
type Store struct {
	mu     sync.RWMutex
	orders []Order
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// SetAll replaces the cached collection with a fresh backend snapshot.
func (s *Store) SetAll(all []Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders[:0:0], all...)
}

// Orders returns a copy of the cached collection in backend order.
func (s *Store) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Order(nil), s.orders...)
}

// Get returns the cached order with the given id.
func (s *Store) Get(orderID int) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.OrderID == orderID {
			return o, true
		}
	}
	return Order{}, false
}

// Replace swaps the single matching record for the given order, leaving every
// other record untouched. It reports whether a record was replaced.
func (s *Store) Replace(updated Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderID == updated.OrderID {
			s.orders[i] = updated
			return true
		}
	}
	return false
}

// SetReturnStatus stamps the status onto every line item of the order. The
// backend models returns per item but acknowledges admin decisions with a
// bare message, so the console applies the decision order-wide itself.
func (s *Store) SetReturnStatus(orderID int, status ReturnStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderID != orderID {
			continue
		}
		items := append([]Item(nil), s.orders[i].Items...)
		for j := range items {
			items[j].ReturnStatus = status
		}
		s.orders[i].Items = items
		return true
	}
	return false
}

// Dispatcher routes admin actions to the backend and reconciles the local
// store with the outcome. A failed remote call leaves the store untouched.
// Concurrent actions on the same order are not serialized; a double-fired
// ship issues two remote calls, which the backend is expected to reject.
type Dispatcher struct {
	svc   Service
	store *Store
}

// NewDispatcher wires a dispatcher over the given service and store.
func NewDispatcher(svc Service, store *Store) *Dispatcher {
	if store == nil {
		store = NewStore()
	}
	return &Dispatcher{svc: svc, store: store}
}

// Store exposes the managed order cache for read-side view code.
func (d *Dispatcher) Store() *Store {
	return d.store
}

// Refresh re-fetches the full collection and replaces the cache.
func (d *Dispatcher) Refresh(ctx context.Context, token string) ([]Order, error) {
	all, err := d.svc.List(ctx, token)
	if err != nil {
		return nil, err
	}
	d.store.SetAll(all)
	return all, nil
}

// Ship transitions NotShipped → Shipped for the order. On success the cached
// record is replaced with the backend's returned object field-for-field, so
// server-computed values (tracking number, courier) never drift.
func (d *Dispatcher) Ship(ctx context.Context, token string, orderID int) (Order, error) {
	current, ok := d.store.Get(orderID)
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	if current.Shipped() {
		return Order{}, ErrAlreadyShipped
	}

	updated, err := d.svc.Ship(ctx, token, orderID)
	if err != nil {
		return Order{}, err
	}
	d.store.Replace(updated)
	return updated, nil
}

// RequestReturn files a return for one of the order's line items. On success
// the cached record is replaced with the backend's returned object.
func (d *Dispatcher) RequestReturn(ctx context.Context, token string, orderID, productID int) (Order, error) {
	if _, ok := d.store.Get(orderID); !ok {
		return Order{}, ErrOrderNotFound
	}

	updated, err := d.svc.RequestReturn(ctx, token, orderID, productID)
	if err != nil {
		return Order{}, err
	}
	d.store.Replace(updated)
	return updated, nil
}

// ResolveReturn applies an approve/reject decision to the order's pending
// return request. The backend answers with a message rather than an updated
// order, so on success the store optimistically stamps the terminal status
// onto every item. On failure the backend's message is surfaced verbatim and
// no local state changes.
func (d *Dispatcher) ResolveReturn(ctx context.Context, token string, orderID int, decision ReturnDecision) (string, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return "", ErrUnknownDecision
	}
	current, ok := d.store.Get(orderID)
	if !ok {
		return "", ErrOrderNotFound
	}
	if current.ReturnState() != ReturnRequested {
		return "", ErrReturnNotRequested
	}

	message, err := d.svc.ResolveReturn(ctx, token, orderID, decision)
	if err != nil {
		return "", err
	}
	d.store.SetReturnStatus(orderID, decision.Status())
	return message, nil
}
