package watcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pwnwatch-hq/pwnwatch/internal/domain"
	"github.com/pwnwatch-hq/pwnwatch/internal/logger"
	"github.com/pwnwatch-hq/pwnwatch/pkg/hibp"
	"github.com/pwnwatch-hq/pwnwatch/pkg/publishers"
	"github.com/pwnwatch-hq/pwnwatch/pkg/watchlist"
)

// WatchProcessor runs the check pipeline for a single watch entry: look the
// account up, keep what the ledger has not alerted on, enrich, publish, mark.
type WatchProcessor struct {
	source BreachSource
	sink   AlertSink
	ledger AlertLedger
}

// NewWatchProcessor builds a processor over the given collaborators.
func NewWatchProcessor(source BreachSource, sink AlertSink, ledger AlertLedger) *WatchProcessor {
	return &WatchProcessor{
		source: source,
		sink:   sink,
		ledger: ledger,
	}
}

// Process checks one watch for new breaches, and for new pastes when the
// watch opts in.
func (p *WatchProcessor) Process(ctx context.Context, w watchlist.Watch) error {
	var errs []error

	if err := p.checkBreaches(ctx, w); err != nil {
		errs = append(errs, fmt.Errorf("breach check for watch %s: %w", w.ID, err))
	}

	if w.Pastes {
		if err := p.checkPastes(ctx, w); err != nil {
			errs = append(errs, fmt.Errorf("paste check for watch %s: %w", w.ID, err))
		}
	}

	return errors.Join(errs...)
}

func (p *WatchProcessor) checkBreaches(ctx context.Context, w watchlist.Watch) error {
	// Names-only lookup keeps the poll cheap; full records are fetched one
	// by one only for breaches that are actually new.
	breaches, err := p.source.AccountBreaches(ctx, hibp.AccountBreachesParams{
		Account:  w.Account,
		Domain:   w.Domain,
		Truncate: true,
	})
	if err != nil {
		if notPwned(err) {
			return nil
		}
		return err
	}

	fresh := p.filterNewBreaches(w, breaches)
	if len(fresh) == 0 {
		return nil
	}

	var errs []error
	for i, b := range fresh {
		select {
		case <-ctx.Done():
			return errors.Join(append(errs, ctx.Err())...)
		default:
		}

		evt := publishers.NewBreachEvent(w.ID, w.Account, p.enrich(ctx, w, b))
		if _, err := p.sink.Publish(ctx, evt); err != nil {
			errs = append(errs, fmt.Errorf("publish breach %s: %w", b.Name, err))
			continue
		}
		if err := p.ledger.MarkAlert(evt.ID); err != nil {
			errs = append(errs, fmt.Errorf("mark breach %s: %w", b.Name, err))
		}

		if delay := w.CheckDelay(); delay > 0 && i < len(fresh)-1 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return errors.Join(errs...)
			case <-timer.C:
			}
		}
	}

	logger.InfoObj("watch breach check completed", "watch_result", map[string]any{
		"watch_id":    w.ID,
		"new_alerts":  len(fresh),
		"total_known": len(breaches),
	})
	return errors.Join(errs...)
}

func (p *WatchProcessor) checkPastes(ctx context.Context, w watchlist.Watch) error {
	pastes, err := p.source.AccountPastes(ctx, w.Account)
	if err != nil {
		if notPwned(err) {
			return nil
		}
		return err
	}

	fresh := p.filterNewPastes(w, pastes)
	var errs []error
	for _, paste := range fresh {
		evt := publishers.NewPasteEvent(w.ID, w.Account, paste)
		if _, err := p.sink.Publish(ctx, evt); err != nil {
			errs = append(errs, fmt.Errorf("publish paste %s: %w", paste.Key(), err))
			continue
		}
		if err := p.ledger.MarkAlert(evt.ID); err != nil {
			errs = append(errs, fmt.Errorf("mark paste %s: %w", paste.Key(), err))
		}
	}
	return errors.Join(errs...)
}

// filterNewBreaches drops breaches the ledger already alerted on. A ledger
// lookup failure keeps the breach in the batch: a duplicate alert beats a
// silently dropped one.
func (p *WatchProcessor) filterNewBreaches(w watchlist.Watch, breaches []domain.Breach) []domain.Breach {
	if p.ledger == nil {
		return breaches
	}

	out := make([]domain.Breach, 0, len(breaches))
	for _, b := range breaches {
		seen, err := p.ledger.SeenAlert(publishers.BreachAlertID(w.Account, b.Name))
		if err != nil {
			logger.WarnObj("alert ledger lookup failed", "ledger_error", map[string]any{
				"watch_id": w.ID,
				"breach":   b.Name,
				"error":    err.Error(),
			})
			out = append(out, b)
			continue
		}
		if !seen {
			out = append(out, b)
		}
	}
	return out
}

func (p *WatchProcessor) filterNewPastes(w watchlist.Watch, pastes []domain.Paste) []domain.Paste {
	if p.ledger == nil {
		return pastes
	}

	out := make([]domain.Paste, 0, len(pastes))
	for _, paste := range pastes {
		seen, err := p.ledger.SeenAlert(publishers.PasteAlertID(w.Account, paste.Key()))
		if err != nil {
			logger.WarnObj("alert ledger lookup failed", "ledger_error", map[string]any{
				"watch_id": w.ID,
				"paste":    paste.Key(),
				"error":    err.Error(),
			})
			out = append(out, paste)
			continue
		}
		if !seen {
			out = append(out, paste)
		}
	}
	return out
}

// enrich swaps a names-only breach record for the full one. Enrichment is
// best effort: on any failure the truncated record is alerted as is.
func (p *WatchProcessor) enrich(ctx context.Context, w watchlist.Watch, b domain.Breach) domain.Breach {
	full, err := p.source.BreachByName(ctx, b.Name)
	if err != nil || len(full) == 0 {
		fields := map[string]any{
			"watch_id": w.ID,
			"breach":   b.Name,
		}
		if err != nil {
			fields["error"] = err.Error()
		}
		logger.WarnObj("breach enrichment failed", "enrich_error", fields)
		return b
	}
	return full[0]
}

// notPwned reports whether err is the service's 404 answer, which on account
// lookups means "in no breach" rather than a failure.
func notPwned(err error) bool {
	var serr *hibp.StatusError
	return errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound
}
