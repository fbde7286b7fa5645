package watcher

import (
	"context"

	"github.com/pwnwatch-hq/pwnwatch/internal/domain"
	"github.com/pwnwatch-hq/pwnwatch/pkg/hibp"
	"github.com/pwnwatch-hq/pwnwatch/pkg/publishers"
)

// BreachSource is the slice of the query client the watcher consumes.
type BreachSource interface {
	AccountBreaches(ctx context.Context, p hibp.AccountBreachesParams) ([]domain.Breach, error)
	BreachByName(ctx context.Context, name string) ([]domain.Breach, error)
	AccountPastes(ctx context.Context, account string) ([]domain.Paste, error)
}

// AlertSink publishes alert events downstream.
type AlertSink interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// AlertLedger tracks which alerts have already been sent.
type AlertLedger interface {
	SeenAlert(id string) (bool, error)
	MarkAlert(id string) error
}
