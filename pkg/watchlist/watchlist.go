// Package watchlist holds the accounts the watchdog polls, loaded from a
// YAML or JSON registry file.
package watchlist

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pwnwatch-hq/pwnwatch/internal/regfile"
)

// Watch is one monitored account.
type Watch struct {
	ID      string `json:"id" yaml:"id"`
	Account string `json:"account" yaml:"account"`
	// Domain narrows breach checks to one site. Empty means all breaches.
	Domain string `json:"domain" yaml:"domain"`
	// Pastes additionally checks the paste lookup for this account.
	Pastes       bool `json:"pastes" yaml:"pastes"`
	CheckDelayMs int  `json:"check_delay_ms" yaml:"check_delay_ms"`
}

// The service throttles unauthenticated consumers to one lookup every 1.5
// seconds, so that is the floor between checks.
const defaultCheckDelayMs = 1500

type registry struct {
	Watches []Watch `json:"watches" yaml:"watches"`
}

var (
	regMu      sync.RWMutex
	currentReg registry
	watchIdx   map[string]Watch
)

// LoadWatchlist replaces the in-memory watchlist with the contents of the
// file at path. Entries are normalized and checked before anything is
// swapped in, so a bad file leaves the previous watchlist intact.
func LoadWatchlist(path string) error {
	var reg registry
	if err := regfile.Load(path, &reg); err != nil {
		return fmt.Errorf("load watchlist: %w", err)
	}
	if len(reg.Watches) == 0 {
		return errors.New("watchlist file contains no watches entries")
	}

	idx := make(map[string]Watch, len(reg.Watches))
	for i, w := range reg.Watches {
		w = w.normalized()
		if err := w.validate(); err != nil {
			return fmt.Errorf("watch[%d]: %w", i, err)
		}
		if _, dup := idx[w.ID]; dup {
			return fmt.Errorf("duplicate watch id %q", w.ID)
		}
		reg.Watches[i] = w
		idx[w.ID] = w
	}

	regMu.Lock()
	currentReg = reg
	watchIdx = idx
	regMu.Unlock()

	return nil
}

// Watches returns a copy of the currently loaded watchlist.
func Watches() []Watch {
	regMu.RLock()
	defer regMu.RUnlock()

	if len(currentReg.Watches) == 0 {
		return nil
	}
	out := make([]Watch, len(currentReg.Watches))
	copy(out, currentReg.Watches)
	return out
}

// WatchByID returns the watch entry for the given id, if loaded.
func WatchByID(id string) (Watch, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Watch{}, false
	}

	regMu.RLock()
	defer regMu.RUnlock()

	w, ok := watchIdx[id]
	return w, ok
}

func (w Watch) normalized() Watch {
	w.ID = strings.TrimSpace(w.ID)
	w.Account = strings.TrimSpace(w.Account)
	w.Domain = strings.TrimSpace(w.Domain)
	if w.CheckDelayMs <= 0 {
		w.CheckDelayMs = defaultCheckDelayMs
	}
	return w
}

func (w Watch) validate() error {
	if w.ID == "" {
		return errors.New("id is required")
	}
	if w.Account == "" {
		return fmt.Errorf("account is required for watch %q", w.ID)
	}
	return nil
}

// CheckDelay returns the throttle duration applied between lookups made on
// behalf of this watch.
func (w Watch) CheckDelay() time.Duration {
	if w.CheckDelayMs <= 0 {
		return defaultCheckDelayMs * time.Millisecond
	}
	return time.Duration(w.CheckDelayMs) * time.Millisecond
}
