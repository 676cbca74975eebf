package prestige

import (
	"time"

	"gildworks/internal/app/engine"
	"gildworks/internal/domain/tycoon"
)

type UseCase struct {
	Engine *engine.Engine
	Now    func() time.Time
}

type PreviewResponse struct {
	Eligible            bool    `json:"eligible"`
	CurrentMultiplier   float64 `json:"current_multiplier"`
	PotentialMultiplier float64 `json:"potential_multiplier"`
	Resets              int     `json:"resets"`
}

func (u UseCase) Preview() PreviewResponse {
	snap := u.Engine.Snapshot()
	return PreviewResponse{
		Eligible:            tycoon.PrestigeEligible(snap),
		CurrentMultiplier:   snap.Prestige.Multiplier,
		PotentialMultiplier: tycoon.PotentialMultiplier(snap),
		Resets:              snap.Prestige.Resets,
	}
}

type PerformResponse struct {
	Multiplier float64 `json:"multiplier"`
	Resets     int     `json:"resets"`
}

func (u UseCase) Perform() (PerformResponse, error) {
	now := time.Now()
	if u.Now != nil {
		now = u.Now()
	}
	var out PerformResponse
	err := u.Engine.Do("prestige", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
		events, err := tycoon.PerformPrestige(s, now)
		if err != nil {
			return nil, err
		}
		out = PerformResponse{Multiplier: s.Prestige.Multiplier, Resets: s.Prestige.Resets}
		return events, nil
	})
	if err != nil {
		return PerformResponse{}, err
	}
	return out, nil
}
