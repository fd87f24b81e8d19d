package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"

	"nainikaessentials.in/admin/internal/admin/bestseller"
	"nainikaessentials.in/admin/internal/admin/catalog"
	"nainikaessentials.in/admin/internal/admin/cod"
	"nainikaessentials.in/admin/internal/admin/contact"
	"nainikaessentials.in/admin/internal/admin/coupons"
	"nainikaessentials.in/admin/internal/admin/httpserver"
	"nainikaessentials.in/admin/internal/admin/httpserver/middleware"
	"nainikaessentials.in/admin/internal/admin/orders"
	"nainikaessentials.in/admin/internal/admin/sales"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	rootCtx := context.Background()

	cfg := httpserver.Config{
		Address:       getEnv("ADMIN_HTTP_ADDR", ":8080"),
		BasePath:      getEnv("ADMIN_BASE_PATH", "/admin"),
		Authenticator: buildAuthenticator(rootCtx),
	}

	var watcherSvc catalog.Service
	backendURL := os.Getenv("BACKEND_API_URL")
	if backendURL == "" {
		log.Printf("BACKEND_API_URL not set; serving built-in sample data")
	} else {
		wireBackendServices(&cfg, backendURL)
		watcherSvc = cfg.CatalogService
	}
	if watcherSvc == nil {
		watcherSvc = catalog.NewStaticService()
		cfg.CatalogService = watcherSvc
	}

	watcher := catalog.NewStockWatcher(catalog.WatcherConfig{
		Service:  watcherSvc,
		Interval: stockPollInterval(),
		OnChange: logStockChanges,
	})
	cfg.StockWatcher = watcher

	srv := httpserver.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go watcher.Run(ctx)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	log.Printf("admin server listening on %s (base path %s)", cfg.Address, cfg.BasePath)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		cancel()
		stop()
		os.Exit(1)
	}
}

func wireBackendServices(cfg *httpserver.Config, baseURL string) {
	ordersSvc, err := orders.NewHTTPService(baseURL, nil)
	if err != nil {
		log.Fatalf("orders service: %v", err)
	}
	salesSvc, err := sales.NewHTTPService(baseURL, nil)
	if err != nil {
		log.Fatalf("sales service: %v", err)
	}
	catalogSvc, err := catalog.NewHTTPService(baseURL, nil)
	if err != nil {
		log.Fatalf("catalog service: %v", err)
	}
	couponsSvc, err := coupons.NewHTTPService(baseURL, nil)
	if err != nil {
		log.Fatalf("coupons service: %v", err)
	}
	codSvc, err := cod.NewHTTPService(baseURL, nil)
	if err != nil {
		log.Fatalf("cod service: %v", err)
	}
	contactSvc, err := contact.NewHTTPService(baseURL, nil)
	if err != nil {
		log.Fatalf("contact service: %v", err)
	}
	bestsellerSvc, err := bestseller.NewHTTPService(baseURL, nil)
	if err != nil {
		log.Fatalf("bestseller service: %v", err)
	}

	cfg.OrdersService = ordersSvc
	cfg.SalesService = salesSvc
	cfg.CatalogService = catalogSvc
	cfg.CouponsService = couponsSvc
	cfg.CODService = codSvc
	cfg.ContactService = contactSvc
	cfg.BestsellerService = bestsellerSvc

	log.Printf("backend services wired (api=%s)", baseURL)
}

func stockPollInterval() time.Duration {
	raw := os.Getenv("STOCK_POLL_INTERVAL")
	if raw == "" {
		return 0
	}
	interval, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid STOCK_POLL_INTERVAL %q: %v", raw, err)
		return 0
	}
	return interval
}

func logStockChanges(changes []catalog.StockChange) {
	for _, c := range changes {
		log.Printf("stock change: product=%d (%s %s%s) %d -> %d",
			c.ProductID, c.ProductName, c.Size, colorSuffix(c.Color), c.From, c.To)
	}
}

func colorSuffix(color string) string {
	if color == "" {
		return ""
	}
	return " " + color
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func buildAuthenticator(ctx context.Context) middleware.Authenticator {
	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Printf("FIREBASE_PROJECT_ID not set; using passthrough authenticator")
		return nil
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: projectID,
	})
	if err != nil {
		log.Printf("failed to initialise Firebase app: %v", err)
		return nil
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Printf("failed to initialise Firebase auth client: %v", err)
		return nil
	}

	log.Printf("Firebase authenticator enabled (project=%s)", projectID)
	return middleware.NewFirebaseAuthenticator(client)
}
