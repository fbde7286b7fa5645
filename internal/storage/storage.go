package storage

import (
	"fmt"
	"strings"
	"time"
)

// Package storage tracks which alerts the watchdog has already sent, so a
// breach that stays in an account's history forever is not re-announced on
// every poll.

// Store is the alert ledger.
type Store interface {
	Close() error
	SeenAlert(id string) (bool, error)
	MarkAlert(id string) error
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	AlertTTL        time.Duration
	CleanupInterval time.Duration
}

const (
	// Expired entries re-alert, which doubles as a periodic reminder that
	// the exposure is still out there.
	defaultAlertTTL        = 90 * 24 * time.Hour
	defaultCleanupInterval = 24 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.AlertTTL <= 0 {
		opts.AlertTTL = defaultAlertTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error                   { return nil }
func (noopStore) SeenAlert(string) (bool, error) { return false, nil }
func (noopStore) MarkAlert(string) error         { return nil }
