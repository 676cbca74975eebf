package tycoon

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NewGameState seeds a fresh run: a starter carpentry workshop with
// one novice on the floor and enough gold to make early choices.
func NewGameState(now time.Time) *GameState {
	starter := &Workshop{
		ID:      uuid.NewString(),
		Name:    "Old Carpentry",
		Craft:   CraftCarpentry,
		Level:   1,
		Starter: true,
	}
	worker := &Worker{
		ID:          uuid.NewString(),
		Name:        "Tam",
		Tier:        TierNovice,
		Talent:      1.0,
		Personality: PersonalitySteady,
		Mood:        MoodMax,
		Level:       1,
		Status:      StatusWorking,
	}
	worker.AssignedWorkshop = starter.ID
	starter.Workers = []*Worker{worker}

	return &GameState{
		Gold:         MoneyFromInt(1_000),
		PlayerLevel:  1,
		Reputation:   10,
		Workshops:    []*Workshop{starter},
		Research:     ResearchState{Completed: map[string]bool{}},
		Structures:   map[string]int{},
		Settings:     map[string]string{},
		Prestige:     PrestigeData{Multiplier: 1.0, ShopItems: map[string]bool{}},
		LastPlayedAt: now,
		Version:      1,
	}
}

// Clone deep-copies the state through its JSON form. Used by the
// engine for snapshots and asynchronous saves; persisted state must
// round-trip losslessly through this same encoding.
func (s *GameState) Clone() *GameState {
	b, err := json.Marshal(s)
	if err != nil {
		return nil
	}
	var out GameState
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return &out
}
