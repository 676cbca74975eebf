package memory

import (
	"context"

	"gildworks/internal/app/ports"
	"gildworks/internal/domain/tycoon"
)

type GameStateRepo struct {
	store *Store
}

func NewGameStateRepo(store *Store) GameStateRepo {
	return GameStateRepo{store: store}
}

func (r GameStateRepo) Load(_ context.Context) (*tycoon.GameState, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.state == nil {
		return nil, ports.ErrNotFound
	}
	return r.store.state.Clone(), nil
}

func (r GameStateRepo) SaveWithVersion(_ context.Context, state *tycoon.GameState, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.state == nil {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.state = state.Clone()
		return nil
	}
	if r.store.state.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.state = state.Clone()
	return nil
}
