package ports

import (
	"context"

	"gildworks/internal/domain/tycoon"
)

// GameStateRepository persists the single long-lived simulation state.
// Saves are optimistic: a stale expectedVersion yields ErrConflict.
type GameStateRepository interface {
	Load(ctx context.Context) (*tycoon.GameState, error)
	SaveWithVersion(ctx context.Context, state *tycoon.GameState, expectedVersion int64) error
}

type EventRepository interface {
	Append(ctx context.Context, events []tycoon.DomainEvent) error
	List(ctx context.Context, limit int) ([]tycoon.DomainEvent, error)
}

// WorkerMarket is the hiring pool. Remove atomically claims a
// candidate; Restore returns a claimed candidate after a failed hire.
// Regenerate refreshes candidates, scaling quality with player
// progress and prestige resets.
type WorkerMarket interface {
	AvailableWorkers() []*tycoon.Worker
	Remove(id string) (*tycoon.Worker, bool)
	Restore(w *tycoon.Worker)
	Regenerate(playerLevel, prestigeCount int)
}
