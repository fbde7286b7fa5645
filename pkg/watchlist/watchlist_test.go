package watchlist

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWatchlistYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "watchlist.yaml")
	content := `
watches:
  - id: team-inbox
    account: team@example.com
    domain: adobe.com
    pastes: true
    check_delay_ms: 2000
`
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write watchlist file: %v", err)
	}

	if err := LoadWatchlist(file); err != nil {
		t.Fatalf("LoadWatchlist returned error: %v", err)
	}

	watches := Watches()
	if len(watches) != 1 {
		t.Fatalf("expected 1 watch, got %d", len(watches))
	}

	w, ok := WatchByID("team-inbox")
	if !ok {
		t.Fatalf("expected watch id team-inbox to be loaded")
	}
	if w.Account != "team@example.com" {
		t.Fatalf("unexpected account: %s", w.Account)
	}
	if w.Domain != "adobe.com" {
		t.Fatalf("unexpected domain: %s", w.Domain)
	}
	if !w.Pastes {
		t.Fatalf("expected pastes checks to be enabled")
	}
	if w.CheckDelay() != 2*time.Second {
		t.Fatalf("unexpected check delay: %v", w.CheckDelay())
	}
}

func TestLoadWatchlistJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "watchlist.json")
	content := `{"watches":[{"id":"solo","account":"solo@example.com"}]}`
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write watchlist file: %v", err)
	}

	if err := LoadWatchlist(file); err != nil {
		t.Fatalf("LoadWatchlist returned error: %v", err)
	}

	w, ok := WatchByID("solo")
	if !ok {
		t.Fatalf("expected watch id solo to be loaded")
	}
	if w.CheckDelay() != 1500*time.Millisecond {
		t.Fatalf("expected default check delay, got %v", w.CheckDelay())
	}
}

func TestLoadWatchlistDuplicateID(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "watchlist.yaml")
	content := `
watches:
  - id: duplicate
    account: one@example.com
  - id: duplicate
    account: two@example.com
`
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write watchlist file: %v", err)
	}

	if err := LoadWatchlist(file); err == nil {
		t.Fatalf("expected duplicate watch error, got nil")
	}
}

func TestLoadWatchlistMissingAccount(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "watchlist.yaml")
	content := `
watches:
  - id: broken
`
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write watchlist file: %v", err)
	}

	if err := LoadWatchlist(file); err == nil {
		t.Fatalf("expected validation error, got nil")
	}
}
