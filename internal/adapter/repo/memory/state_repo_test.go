package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"gildworks/internal/app/ports"
	"gildworks/internal/domain/tycoon"
)

var repoNow = time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)

func TestLoadMissingStateReturnsNotFound(t *testing.T) {
	repo := NewGameStateRepo(NewStore())
	if _, err := repo.Load(context.Background()); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveWithVersionRoundTrip(t *testing.T) {
	repo := NewGameStateRepo(NewStore())
	state := tycoon.NewGameState(repoNow)
	state.Version = 2

	if err := repo.SaveWithVersion(context.Background(), state, 0); err != nil {
		t.Fatalf("initial save failed: %v", err)
	}
	loaded, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Version != 2 || loaded.Gold != state.Gold {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}

	// Loaded state is a copy; mutating it must not touch the store.
	loaded.Gold = 0
	again, _ := repo.Load(context.Background())
	if again.Gold != state.Gold {
		t.Fatalf("store leaked a shared reference")
	}
}

func TestSaveWithVersionDetectsConflict(t *testing.T) {
	repo := NewGameStateRepo(NewStore())
	state := tycoon.NewGameState(repoNow)
	state.Version = 2
	if err := repo.SaveWithVersion(context.Background(), state, 0); err != nil {
		t.Fatalf("initial save failed: %v", err)
	}

	state.Version = 3
	if err := repo.SaveWithVersion(context.Background(), state, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict on stale version, got %v", err)
	}
	if err := repo.SaveWithVersion(context.Background(), state, 2); err != nil {
		t.Fatalf("save with matching version failed: %v", err)
	}
}

func TestEventListNewestFirstWithLimit(t *testing.T) {
	repo := NewEventRepo(NewStore())
	events := []tycoon.DomainEvent{
		{Type: "first", OccurredAt: repoNow},
		{Type: "second", OccurredAt: repoNow.Add(time.Second)},
		{Type: "third", OccurredAt: repoNow.Add(2 * time.Second)},
	}
	if err := repo.Append(context.Background(), events); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	out, err := repo.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(out) != 2 || out[0].Type != "third" || out[1].Type != "second" {
		t.Fatalf("newest-first list mismatch: %+v", out)
	}

	all, _ := repo.List(context.Background(), 0)
	if len(all) != 3 {
		t.Fatalf("unlimited list mismatch: got=%d want=3", len(all))
	}
}
