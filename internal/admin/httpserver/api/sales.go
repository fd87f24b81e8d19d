package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"nainikaessentials.in/admin/internal/admin/catalog"
	"nainikaessentials.in/admin/internal/admin/httpserver/middleware"
	"nainikaessentials.in/admin/internal/admin/sales"
	salesview "nainikaessentials.in/admin/internal/admin/views/sales"
)

// SalesHandler serves the sales report and live stock snapshot.
type SalesHandler struct {
	svc     sales.Service
	watcher *catalog.StockWatcher
}

// NewSalesHandler builds the handler. The watcher is optional.
func NewSalesHandler(svc sales.Service, watcher *catalog.StockWatcher) *SalesHandler {
	return &SalesHandler{svc: svc, watcher: watcher}
}

// Mount registers the sales routes.
func (h *SalesHandler) Mount(r chi.Router) {
	r.Get("/sales", h.report)
	r.Get("/sales/stock-changes", h.stockChanges)
}

func (h *SalesHandler) report(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())
	report, err := h.svc.Report(r.Context(), token)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, salesview.Build(report))
}

// stockChanges drains the stock movement the watcher has accumulated since
// the last call. Polling stays with the watcher goroutine.
func (h *SalesHandler) stockChanges(w http.ResponseWriter, r *http.Request) {
	if h.watcher == nil {
		respondJSON(w, http.StatusOK, []catalog.StockChange{})
		return
	}
	changes := h.watcher.Drain()
	if changes == nil {
		changes = []catalog.StockChange{}
	}
	respondJSON(w, http.StatusOK, changes)
}
