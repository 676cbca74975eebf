package memory

import (
	"sync"

	"gildworks/internal/domain/tycoon"
)

type Store struct {
	mu     sync.RWMutex
	state  *tycoon.GameState
	events []tycoon.DomainEvent
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SeedState(state *tycoon.GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Clone()
}
