package staticmarket

import (
	"math/rand"
	"testing"

	"gildworks/internal/domain/tycoon"
)

func TestRegeneratePoolSize(t *testing.T) {
	m := NewMarket(rand.New(rand.NewSource(1)))

	m.Regenerate(1, 0)
	if got, want := len(m.AvailableWorkers()), 3; got != want {
		t.Fatalf("early pool size mismatch: got=%d want=%d", got, want)
	}

	m.Regenerate(100, 0)
	if got, want := len(m.AvailableWorkers()), 8; got != want {
		t.Fatalf("pool size cap mismatch: got=%d want=%d", got, want)
	}
}

func TestRegenerateQualityScalesWithResets(t *testing.T) {
	m := NewMarket(rand.New(rand.NewSource(1)))
	m.Regenerate(1, 10)

	for _, w := range m.AvailableWorkers() {
		if w.Tier != tycoon.TierMaster {
			t.Fatalf("ten resets should yield master candidates, got tier %d", w.Tier)
		}
		if w.ID == "" || w.Name == "" {
			t.Fatalf("candidate missing identity: %+v", w)
		}
		if w.Talent < 0.85 || w.Talent > 1.15 {
			t.Fatalf("talent out of range: %v", w.Talent)
		}
	}
}

func TestRemove(t *testing.T) {
	m := NewMarket(rand.New(rand.NewSource(1)))
	m.Regenerate(1, 0)
	pool := m.AvailableWorkers()

	w, ok := m.Remove(pool[0].ID)
	if !ok || w.ID != pool[0].ID {
		t.Fatalf("remove failed for %q", pool[0].ID)
	}
	if got, want := len(m.AvailableWorkers()), len(pool)-1; got != want {
		t.Fatalf("pool size after remove mismatch: got=%d want=%d", got, want)
	}
	if _, ok := m.Remove(pool[0].ID); ok {
		t.Fatalf("double remove should fail")
	}
}

func TestRestoreReturnsClaimedCandidate(t *testing.T) {
	m := NewMarket(rand.New(rand.NewSource(1)))
	m.Regenerate(1, 0)
	pool := m.AvailableWorkers()

	w, ok := m.Remove(pool[0].ID)
	if !ok {
		t.Fatalf("remove failed for %q", pool[0].ID)
	}

	m.Restore(w)
	if got, want := len(m.AvailableWorkers()), len(pool); got != want {
		t.Fatalf("pool size after restore mismatch: got=%d want=%d", got, want)
	}
	if _, ok := m.Remove(w.ID); !ok {
		t.Fatalf("restored candidate %q not claimable", w.ID)
	}

	m.Restore(w)
	m.Restore(w)
	if got, want := len(m.AvailableWorkers()), len(pool); got != want {
		t.Fatalf("double restore must not duplicate: got=%d want=%d", got, want)
	}
}
