package testutil

import (
	"net/http/httptest"
	"testing"

	"nainikaessentials.in/admin/internal/admin/bestseller"
	"nainikaessentials.in/admin/internal/admin/catalog"
	"nainikaessentials.in/admin/internal/admin/cod"
	"nainikaessentials.in/admin/internal/admin/contact"
	"nainikaessentials.in/admin/internal/admin/coupons"
	"nainikaessentials.in/admin/internal/admin/httpserver"
	"nainikaessentials.in/admin/internal/admin/httpserver/middleware"
	adminorders "nainikaessentials.in/admin/internal/admin/orders"
	"nainikaessentials.in/admin/internal/admin/sales"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithAuthenticator overrides the authenticator used by the admin server.
func WithAuthenticator(auth middleware.Authenticator) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Authenticator = auth
	}
}

// WithBasePath sets a custom base path for the admin routes.
func WithBasePath(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BasePath = path
	}
}

// WithOrdersService wires a custom orders service implementation.
func WithOrdersService(service adminorders.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.OrdersService = service
	}
}

// WithSalesService wires a custom sales service implementation.
func WithSalesService(service sales.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.SalesService = service
	}
}

// WithCatalogService wires a custom catalog service implementation.
func WithCatalogService(service catalog.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.CatalogService = service
	}
}

// WithCouponsService wires a custom coupons service implementation.
func WithCouponsService(service coupons.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.CouponsService = service
	}
}

// WithCODService wires a custom COD charge service implementation.
func WithCODService(service cod.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.CODService = service
	}
}

// WithContactService wires a custom contact inbox service implementation.
func WithContactService(service contact.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.ContactService = service
	}
}

// WithBestsellerService wires a custom featured rails service implementation.
func WithBestsellerService(service bestseller.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BestsellerService = service
	}
}

// NewServer constructs an httptest server running the admin HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:           ":0",
		BasePath:          "/admin",
		CSRFCookieName:    "csrf_token",
		CSRFHeaderName:    "X-CSRF-Token",
		Authenticator:     middleware.DefaultAuthenticator(),
		OrdersService:     adminorders.NewStaticService(),
		SalesService:      sales.NewStaticService(),
		CatalogService:    catalog.NewStaticService(),
		CouponsService:    coupons.NewStaticService(),
		CODService:        cod.NewStaticService(),
		ContactService:    contact.NewStaticService(),
		BestsellerService: bestseller.NewStaticService(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	srv := httpserver.New(cfg)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
