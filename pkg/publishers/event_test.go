package publishers

import (
	"testing"

	"github.com/pwnwatch-hq/pwnwatch/internal/domain"
)

func TestNewBreachEventStableID(t *testing.T) {
	breach := domain.Breach{Name: "Adobe"}

	first := NewBreachEvent("w1", "foo@example.com", breach)
	second := NewBreachEvent("w1", "foo@example.com", breach)

	if first.ID == "" {
		t.Fatalf("expected non-empty event ID")
	}
	if first.ID != second.ID {
		t.Fatalf("same breach should hash to same ID: %s vs %s", first.ID, second.ID)
	}
	if first.Kind != KindBreach {
		t.Fatalf("Kind = %q, want %q", first.Kind, KindBreach)
	}
	if first.Breach == nil || first.Breach.Name != "Adobe" {
		t.Fatalf("Breach payload missing: %+v", first)
	}
	if first.Paste != nil {
		t.Fatalf("breach event should not carry a paste")
	}
	if first.Summary != "Adobe" {
		t.Fatalf("Summary = %q, want Adobe", first.Summary)
	}
	if first.FoundAt.IsZero() {
		t.Fatalf("FoundAt should be set")
	}
}

func TestBreachAndPasteEventsDiffer(t *testing.T) {
	breachEvt := NewBreachEvent("w1", "foo@example.com", domain.Breach{Name: "X"})
	pasteEvt := NewPasteEvent("w1", "foo@example.com", domain.Paste{Source: "X", ID: "X", EmailCount: 1})

	if breachEvt.ID == pasteEvt.ID {
		t.Fatalf("breach and paste alerts must not collide")
	}
	if pasteEvt.Kind != KindPaste {
		t.Fatalf("Kind = %q, want %q", pasteEvt.Kind, KindPaste)
	}
	if pasteEvt.Paste == nil || pasteEvt.Paste.Key() != "X:X" {
		t.Fatalf("Paste payload missing: %+v", pasteEvt)
	}
}

func TestEventIDVariesByAccount(t *testing.T) {
	breach := domain.Breach{Name: "Adobe"}
	one := NewBreachEvent("w1", "one@example.com", breach)
	two := NewBreachEvent("w1", "two@example.com", breach)
	if one.ID == two.ID {
		t.Fatalf("different accounts must hash differently")
	}
}
