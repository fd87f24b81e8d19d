package httpserver

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"nainikaessentials.in/admin/internal/admin/bestseller"
	"nainikaessentials.in/admin/internal/admin/catalog"
	"nainikaessentials.in/admin/internal/admin/cod"
	"nainikaessentials.in/admin/internal/admin/contact"
	"nainikaessentials.in/admin/internal/admin/coupons"
	"nainikaessentials.in/admin/internal/admin/httpserver/api"
	custommw "nainikaessentials.in/admin/internal/admin/httpserver/middleware"
	"nainikaessentials.in/admin/internal/admin/orders"
	"nainikaessentials.in/admin/internal/admin/sales"
	"nainikaessentials.in/admin/public"
)

// Config holds runtime options for the admin HTTP server.
type Config struct {
	Address          string
	BasePath         string
	Authenticator    custommw.Authenticator
	CSRFCookieName   string
	CSRFCookiePath   string
	CSRFCookieSecure bool
	CSRFHeaderName   string

	OrdersService     orders.Service
	SalesService      sales.Service
	CatalogService    catalog.Service
	CouponsService    coupons.Service
	CODService        cod.Service
	ContactService    contact.Service
	BestsellerService bestseller.Service

	// StockWatcher is optional; when set the sales endpoints expose its
	// accumulated stock movement.
	StockWatcher *catalog.StockWatcher
}

// New constructs the HTTP server with the middleware stack, embedded assets,
// and the console API mounted under the base path.
func New(cfg Config) *http.Server {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))

	staticContent, err := public.StaticFS()
	if err != nil {
		log.Fatalf("embed static: %v", err)
	}
	router.Handle("/public/static/*", http.StripPrefix("/public/static/", http.FileServer(http.FS(staticContent))))

	basePath := normalizeBasePath(cfg.BasePath)

	authenticator := cfg.Authenticator
	if authenticator == nil {
		authenticator = custommw.DefaultAuthenticator()
	}

	csrfCfg := custommw.CSRFConfig{
		CookieName: cfg.CSRFCookieName,
		CookiePath: firstNonEmpty(cfg.CSRFCookiePath, basePath),
		HeaderName: cfg.CSRFHeaderName,
		Secure:     cfg.CSRFCookieSecure,
	}

	dispatcher := orders.NewDispatcher(defaultOrdersService(cfg.OrdersService), nil)

	handlers := []interface{ Mount(chi.Router) }{
		api.NewOrdersHandler(dispatcher),
		api.NewSalesHandler(defaultSalesService(cfg.SalesService), cfg.StockWatcher),
		api.NewCatalogHandler(defaultCatalogService(cfg.CatalogService)),
		api.NewCouponsHandler(defaultCouponsService(cfg.CouponsService)),
		api.NewCODHandler(defaultCODService(cfg.CODService)),
		api.NewContactHandler(defaultContactService(cfg.ContactService)),
		api.NewBestsellerHandler(defaultBestsellerService(cfg.BestsellerService)),
	}

	router.Route(joinBase(basePath, "/api"), func(r chi.Router) {
		r.Use(custommw.RequestInfoMiddleware(basePath))
		r.Use(custommw.Auth(authenticator))
		r.Use(custommw.CSRF(csrfCfg))
		for _, h := range handlers {
			h.Mount(r)
		}
	})

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func defaultOrdersService(svc orders.Service) orders.Service {
	if svc != nil {
		return svc
	}
	return orders.NewStaticService()
}

func defaultSalesService(svc sales.Service) sales.Service {
	if svc != nil {
		return svc
	}
	return sales.NewStaticService()
}

func defaultCatalogService(svc catalog.Service) catalog.Service {
	if svc != nil {
		return svc
	}
	return catalog.NewStaticService()
}

func defaultCouponsService(svc coupons.Service) coupons.Service {
	if svc != nil {
		return svc
	}
	return coupons.NewStaticService()
}

func defaultCODService(svc cod.Service) cod.Service {
	if svc != nil {
		return svc
	}
	return cod.NewStaticService()
}

func defaultContactService(svc contact.Service) contact.Service {
	if svc != nil {
		return svc
	}
	return contact.NewStaticService()
}

func defaultBestsellerService(svc bestseller.Service) bestseller.Service {
	if svc != nil {
		return svc
	}
	return bestseller.NewStaticService()
}

func normalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/admin"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		return "/"
	}
	return p
}

func joinBase(base, suffix string) string {
	if base == "/" {
		return suffix
	}
	return base + suffix
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
