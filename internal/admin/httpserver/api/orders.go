package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"nainikaessentials.in/admin/internal/admin/httpserver/middleware"
	"nainikaessentials.in/admin/internal/admin/invoice"
	"nainikaessentials.in/admin/internal/admin/orders"
	dashboardview "nainikaessentials.in/admin/internal/admin/views/dashboard"
	ordersview "nainikaessentials.in/admin/internal/admin/views/orders"
)

// OrdersHandler serves the order management endpoints.
type OrdersHandler struct {
	dispatcher *orders.Dispatcher
}

// NewOrdersHandler builds the handler over the given dispatcher.
func NewOrdersHandler(dispatcher *orders.Dispatcher) *OrdersHandler {
	return &OrdersHandler{dispatcher: dispatcher}
}

// Mount registers the order routes.
func (h *OrdersHandler) Mount(r chi.Router) {
	r.Get("/orders", h.list)
	r.Post("/orders/{orderID}/ship", h.ship)
	r.Post("/orders/{orderID}/return-request", h.requestReturn)
	r.Post("/orders/{orderID}/return", h.resolveReturn)
	r.Get("/orders/{orderID}/invoice", h.invoiceDocument)
}

type ordersPage struct {
	Cards  []dashboardview.Card `json:"cards"`
	Rows   []ordersview.Row     `json:"rows"`
	Query  string               `json:"query"`
	Filter orders.CardFilter    `json:"filter"`
	Error  string               `json:"error,omitempty"`
}

// list refreshes the cache from the backend, then applies the free-text
// query and card filter. A refresh failure falls back to the cached
// collection so the table never goes blank; the failure is logged and
// carried in the payload so the operator knows the data is stale.
func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())
	staleErr := ""
	all, err := h.dispatcher.Refresh(r.Context(), token)
	if err != nil {
		stale := h.dispatcher.Store().Orders()
		if len(stale) == 0 {
			respondServiceError(w, err)
			return
		}
		log.Printf("orders: refresh: %v", err)
		all = stale
		staleErr = err.Error()
	}

	query := r.URL.Query().Get("q")
	card := orders.CardFilter(r.URL.Query().Get("filter"))
	visible := orders.FilterWith(all, query, card)

	respondJSON(w, http.StatusOK, ordersPage{
		Cards:  dashboardview.Cards(orders.Summarize(all)),
		Rows:   ordersview.Rows(visible),
		Query:  query,
		Filter: card,
		Error:  staleErr,
	})
}

func (h *OrdersHandler) ship(w http.ResponseWriter, r *http.Request) {
	orderID, ok := urlInt(r, "orderID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	token := middleware.TokenFromContext(r.Context())
	updated, err := h.dispatcher.Ship(r.Context(), token, orderID)
	if err != nil {
		h.respondOrderError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *OrdersHandler) requestReturn(w http.ResponseWriter, r *http.Request) {
	orderID, ok := urlInt(r, "orderID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var body struct {
		ProductID int `json:"productId"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	token := middleware.TokenFromContext(r.Context())
	updated, err := h.dispatcher.RequestReturn(r.Context(), token, orderID, body.ProductID)
	if err != nil {
		h.respondOrderError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *OrdersHandler) resolveReturn(w http.ResponseWriter, r *http.Request) {
	orderID, ok := urlInt(r, "orderID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var body struct {
		Action orders.ReturnDecision `json:"action"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	token := middleware.TokenFromContext(r.Context())
	message, err := h.dispatcher.ResolveReturn(r.Context(), token, orderID, body.Action)
	if err != nil {
		h.respondOrderError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// invoiceDocument renders the printable invoice for a cached order.
func (h *OrdersHandler) invoiceDocument(w http.ResponseWriter, r *http.Request) {
	orderID, ok := urlInt(r, "orderID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, ok := h.dispatcher.Store().Get(orderID)
	if !ok {
		respondError(w, http.StatusNotFound, orders.ErrOrderNotFound.Error())
		return
	}
	templ.Handler(invoice.Document(invoice.Compute(order))).ServeHTTP(w, r)
}

func (h *OrdersHandler) respondOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orders.ErrAlreadyShipped),
		errors.Is(err, orders.ErrReturnNotRequested),
		errors.Is(err, orders.ErrUnknownDecision):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondServiceError(w, err)
	}
}
