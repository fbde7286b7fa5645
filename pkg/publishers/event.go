package publishers

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pwnwatch-hq/pwnwatch/internal/domain"
	"github.com/pwnwatch-hq/pwnwatch/internal/render"
)

// Alert kinds carried in Event.Kind.
const (
	KindBreach = "breach"
	KindPaste  = "paste"
)

// Event is the alert payload published downstream when a watched account
// shows up somewhere new. Exactly one of Breach or Paste is set, matching
// Kind.
type Event struct {
	ID      string         `json:"id"`
	WatchID string         `json:"watch_id"`
	Account string         `json:"account"`
	Kind    string         `json:"kind"`
	Summary string         `json:"summary"`
	Breach  *domain.Breach `json:"breach,omitempty"`
	Paste   *domain.Paste  `json:"paste,omitempty"`
	FoundAt time.Time      `json:"found_at"`
}

// NewBreachEvent constructs the alert for a breach newly seen on a watch.
func NewBreachEvent(watchID, account string, breach domain.Breach) Event {
	return Event{
		ID:      alertID(KindBreach, account, breach.Name),
		WatchID: watchID,
		Account: account,
		Kind:    KindBreach,
		Summary: render.BreachSummary(breach),
		Breach:  &breach,
		FoundAt: time.Now().UTC(),
	}
}

// NewPasteEvent constructs the alert for a paste newly seen on a watch.
func NewPasteEvent(watchID, account string, paste domain.Paste) Event {
	return Event{
		ID:      alertID(KindPaste, account, paste.Key()),
		WatchID: watchID,
		Account: account,
		Kind:    KindPaste,
		Summary: render.PasteSummary(paste),
		Paste:   &paste,
		FoundAt: time.Now().UTC(),
	}
}

// BreachAlertID returns the dedup identifier a breach alert would carry,
// without constructing the event.
func BreachAlertID(account, breachName string) string {
	return alertID(KindBreach, account, breachName)
}

// PasteAlertID returns the dedup identifier a paste alert would carry.
func PasteAlertID(account, pasteKey string) string {
	return alertID(KindPaste, account, pasteKey)
}

// alertID derives the stable dedup identifier for an alert. The same
// account/breach (or account/paste) pair always hashes to the same ID, which
// is what keeps repeat polls from re-alerting.
func alertID(kind, account, key string) string {
	sum := sha1.Sum([]byte(kind + "|" + account + "|" + key))
	return hex.EncodeToString(sum[:])
}

// payload renders the event as the JSON body the queue, topic, and webhook
// sinks all deliver.
func (e Event) payload() ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal alert %s: %w", e.ID, err)
	}
	return body, nil
}

// routingAttributes is the metadata sinks expose outside the payload so
// consumers can filter alerts without decoding the body.
func (e Event) routingAttributes() map[string]string {
	return map[string]string{
		"watch_id": e.WatchID,
		"kind":     e.Kind,
	}
}
