package app

import (
	"context"
	"fmt"
	"time"

	"github.com/pwnwatch-hq/pwnwatch/internal/config"
	"github.com/pwnwatch-hq/pwnwatch/internal/logger"
	"github.com/pwnwatch-hq/pwnwatch/internal/storage"
	"github.com/pwnwatch-hq/pwnwatch/internal/watcher"
	"github.com/pwnwatch-hq/pwnwatch/pkg/hibp"
	"github.com/pwnwatch-hq/pwnwatch/pkg/publishers"
	"github.com/pwnwatch-hq/pwnwatch/pkg/watchlist"
)

// Watchdog is the polling runtime. It manages the check loop, coordinating
// between the watchlist, the query client, and alert publishers, and owns the
// alert ledger lifecycle.
type Watchdog struct {
	cfg           *config.Config
	fanout        *publishers.Fanout
	watchService  *watcher.Service
	checkInterval time.Duration
	log           logger.Logger
	store         storage.Store
}

// NewWatchdog builds a watchdog runtime from config files.
func NewWatchdog(ctx context.Context, cfg *config.Config, log logger.Logger) (*Watchdog, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if err := watchlist.LoadWatchlist(cfg.WatchlistFile); err != nil {
		return nil, fmt.Errorf("load watchlist: %w", err)
	}
	watches := watchlist.Watches()
	watchIDs := make([]string, 0, len(watches))
	for _, w := range watches {
		watchIDs = append(watchIDs, w.ID)
	}
	log.InfoObj("watchlist loaded", "watchlist_meta", map[string]any{
		"count": len(watchIDs),
		"ids":   watchIDs,
	})

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}

	enabledPublishers := publisherReg.Enabled()
	if len(enabledPublishers) == 0 {
		return nil, fmt.Errorf("no publishers configured")
	}

	pubRegistry := publishers.DefaultRegistry()
	pubClients, err := publishers.BuildAll(ctx, pubRegistry, enabledPublishers, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	fanout := publishers.NewFanout(pubClients)
	publisherSummaries := make([]map[string]string, 0, len(enabledPublishers))
	for _, pubCfg := range enabledPublishers {
		publisherSummaries = append(publisherSummaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(publisherSummaries),
		"publishers": publisherSummaries,
	})

	storeOpts := storage.Options{
		AlertTTL:        cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	}
	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"alert_ttl_seconds":        int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	clientOpts := []hibp.Option{hibp.WithTimeout(cfg.HTTPTimeout)}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, hibp.WithBaseURL(cfg.BaseURL))
	}
	client := hibp.New(cfg.UserAgent, clientOpts...)

	watchService := watcher.NewService(client, fanout, store)

	return &Watchdog{
		cfg:           cfg,
		fanout:        fanout,
		watchService:  watchService,
		checkInterval: cfg.CheckInterval,
		log:           log,
		store:         store,
	}, nil
}

// Run starts the check loop until the context is cancelled.
func (w *Watchdog) Run(ctx context.Context) error {
	if w == nil || w.watchService == nil {
		return fmt.Errorf("watchdog is not initialized")
	}
	defer w.closeStore()

	watches := watchlist.Watches()
	if len(watches) == 0 {
		w.log.WarnObj("no watches configured; watchdog idle", "watchlist_file", w.cfg.WatchlistFile)
		<-ctx.Done()
		return ctx.Err()
	}

	w.log.InfoObj("watchdog loop starting", "watchdog_state", map[string]any{
		"watches_count":    len(watches),
		"publishers_count": w.fanout.Size(),
		"check_interval":   w.checkInterval.String(),
	})

	if err := w.runOnce(ctx, watches); err != nil {
		w.log.ErrorObj("initial check failed", "error", err)
	}

	ticker := time.NewTicker(w.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.InfoObj("watchdog loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := w.runOnce(ctx, watches); err != nil {
				w.log.ErrorObj("scheduled check failed", "error", err)
			}
		}
	}
}

// runOnce performs a single check pass across all watches.
func (w *Watchdog) runOnce(ctx context.Context, watches []watchlist.Watch) error {
	start := time.Now()
	w.log.InfoObj("check pass started", "check_meta", map[string]any{
		"watches_count": len(watches),
		"started_at":    start.UTC(),
	})
	if err := w.watchService.Run(ctx, watches); err != nil {
		return err
	}
	w.log.InfoObj("check pass completed", "check_meta", map[string]any{
		"watches_count": len(watches),
		"elapsed_ms":    time.Since(start).Milliseconds(),
	})
	return nil
}

// closeStore safely closes the alert ledger, logging any errors encountered.
func (w *Watchdog) closeStore() {
	if w == nil || w.store == nil {
		return
	}
	if err := w.store.Close(); err != nil {
		w.log.ErrorObj("storage close failed", "error", err)
	}
}
