package watcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pwnwatch-hq/pwnwatch/internal/logger"
	"github.com/pwnwatch-hq/pwnwatch/pkg/watchlist"
)

// Service coordinates breach checks across the whole watchlist.
type Service struct {
	processor *WatchProcessor
}

// NewService wires a watcher around the query client, alert sink, and ledger.
func NewService(source BreachSource, sink AlertSink, ledger AlertLedger) *Service {
	return &Service{
		processor: NewWatchProcessor(source, sink, ledger),
	}
}

// Run executes one check pass over all configured watches.
func (s *Service) Run(ctx context.Context, watches []watchlist.Watch) error {
	if s == nil || s.processor == nil {
		return fmt.Errorf("watcher service is not initialized")
	}

	if len(watches) == 0 {
		return fmt.Errorf("no watches configured")
	}

	errs := s.runAll(ctx, watches)
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func (s *Service) runAll(ctx context.Context, watches []watchlist.Watch) []error {
	errs := make([]error, 0, len(watches))

	for i, w := range watches {
		select {
		case <-ctx.Done():
			return errs
		default:
		}

		if err := s.processor.Process(ctx, w); err != nil {
			errs = append(errs, err)
			logger.ErrorObj("watch check failed", "watch_error", map[string]any{
				"watch_id": w.ID,
				"error":    err.Error(),
			})
		}

		// Stay inside the service's rate limit between account lookups.
		if delay := w.CheckDelay(); delay > 0 && i < len(watches)-1 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return errs
			case <-timer.C:
			}
		}
	}

	return errs
}
