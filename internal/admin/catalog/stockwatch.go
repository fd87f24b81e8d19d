package catalog

import (
	"context"
	"log"
	"sync"
	"time"
)

const defaultPollInterval = 15 * time.Second

// StockChange records one variant's stock moving between two polls.
type StockChange struct {
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	From        int    `json:"from"`
	To          int    `json:"to"`
}

// WatcherConfig tunes the stock watcher.
type WatcherConfig struct {
	Service  Service
	Interval time.Duration
	// Token supplies the backend credential for each poll. Optional.
	Token func() string
	// OnChange receives the diff of every poll that detected movement.
	OnChange func([]StockChange)
}

// StockWatcher polls the catalog and reports per-variant stock movement
// against its last snapshot.
type StockWatcher struct {
	svc      Service
	interval time.Duration
	token    func() string
	onChange func([]StockChange)

	// pollMu serializes whole polls (fetch plus diff) so a slow fetch
	// can never overwrite a newer snapshot.
	pollMu sync.Mutex

	mu       sync.RWMutex
	seeded   bool
	snapshot map[variantKey]int
	pending  []StockChange
}

type variantKey struct {
	productID int
	size      string
	color     string
}

// NewStockWatcher builds a watcher; Interval defaults to 15 seconds.
func NewStockWatcher(cfg WatcherConfig) *StockWatcher {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	token := cfg.Token
	if token == nil {
		token = func() string { return "" }
	}
	return &StockWatcher{
		svc:      cfg.Service,
		interval: interval,
		token:    token,
		onChange: cfg.OnChange,
		snapshot: make(map[variantKey]int),
	}
}

// Run polls until the context is cancelled. Failed polls are logged and the
// previous snapshot kept.
func (w *StockWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	if _, err := w.Poll(ctx); err != nil {
		log.Printf("stock watcher: poll: %v", err)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			changes, err := w.Poll(ctx)
			if err != nil {
				log.Printf("stock watcher: poll: %v", err)
				continue
			}
			if len(changes) > 0 && w.onChange != nil {
				w.onChange(changes)
			}
		}
	}
}

// Poll fetches the catalog once and returns the stock movement since the last
// successful poll. The first successful poll seeds the snapshot and reports
// nothing. Detected movement is also queued for Drain.
func (w *StockWatcher) Poll(ctx context.Context) ([]StockChange, error) {
	w.pollMu.Lock()
	defer w.pollMu.Unlock()

	products, err := w.svc.Products(ctx, w.token())
	if err != nil {
		return nil, err
	}

	next := make(map[variantKey]int)
	var changes []StockChange
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range products {
		for _, v := range p.Variants {
			key := variantKey{productID: p.ID, size: v.Size, color: v.Color}
			next[key] = v.Stock
			if !w.seeded {
				continue
			}
			prev, known := w.snapshot[key]
			if known && prev != v.Stock {
				changes = append(changes, StockChange{
					ProductID:   p.ID,
					ProductName: p.Name,
					Size:        v.Size,
					Color:       v.Color,
					From:        prev,
					To:          v.Stock,
				})
			}
		}
	}
	w.snapshot = next
	w.seeded = true
	w.pending = append(w.pending, changes...)
	return changes, nil
}

// Drain returns every change queued since the last Drain and clears the
// queue. It never polls; the Run goroutine is the sole poll owner.
func (w *StockWatcher) Drain() []StockChange {
	w.mu.Lock()
	defer w.mu.Unlock()
	drained := w.pending
	w.pending = nil
	return drained
}

// Stock reports the last observed stock for a variant.
func (w *StockWatcher) Stock(productID int, size, color string) (int, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	stock, ok := w.snapshot[variantKey{productID: productID, size: size, color: color}]
	return stock, ok
}
