package storage

import (
	"testing"
	"time"
)

func TestBoltStoreMarksAndExpiresAlerts(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		AlertTTL:        1 * time.Second,
		CleanupInterval: 1 * time.Second,
	}

	storeRaw, err := openBolt(dir+"/alerts.db", opts)
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	store := storeRaw.(*boltStore)
	defer store.Close()

	seen, err := store.SeenAlert("breach:foo@example.com:Adobe")
	if err != nil || seen {
		t.Fatalf("expected unseen alert, seen=%v err=%v", seen, err)
	}

	if err := store.MarkAlert("breach:foo@example.com:Adobe"); err != nil {
		t.Fatalf("MarkAlert: %v", err)
	}

	seen, err = store.SeenAlert("breach:foo@example.com:Adobe")
	if err != nil || !seen {
		t.Fatalf("expected alert marked as seen, got seen=%v err=%v", seen, err)
	}

	// Fast-forward cleanup cadence and trigger expiry.
	store.lastCleanup.Store(time.Now().Add(-2 * time.Second).Unix())
	time.Sleep(1100 * time.Millisecond)

	seen, err = store.SeenAlert("breach:foo@example.com:Adobe")
	if err != nil {
		t.Fatalf("SeenAlert after expiry: %v", err)
	}
	if seen {
		t.Fatalf("expected entry to expire and be removed")
	}
}

func TestNewStoreSupportsNoop(t *testing.T) {
	store, err := NewStore("none", "", Options{})
	if err != nil {
		t.Fatalf("NewStore none: %v", err)
	}
	if err := store.MarkAlert("x"); err != nil {
		t.Fatalf("noop store MarkAlert: %v", err)
	}
}

func TestNewStoreRejectsUnknownType(t *testing.T) {
	if _, err := NewStore("redis", "", Options{}); err == nil {
		t.Fatalf("expected error for unsupported storage type")
	}
}
