package tycoon

import (
	"math"
	"time"
)

func PrestigeEligible(s *GameState) bool {
	return s.PlayerLevel >= PrestigeMinLevel
}

// PotentialMultiplier grows with the square root of lifetime earnings
// and is strictly additive across resets: it can never decrease.
func PotentialMultiplier(s *GameState) float64 {
	current := s.Prestige.Multiplier
	if current < 1 {
		current = 1
	}
	gain := math.Sqrt(s.LifetimeEarned.Float()/PrestigeEarnedUnit) * PrestigeMultiplierStep
	v := current + gain
	if v > PrestigeMultiplierCap {
		v = PrestigeMultiplierCap
	}
	return math.Round(v*1000) / 1000
}

// PerformPrestige runs the selective reset. Lifetime earnings survive
// (they seed every future multiplier), as do achievements, premium
// entitlement, settings, shop purchases, artifacts and the tutorial
// flag. Everything run-scoped is wiped; the starter workshop returns
// at level 1 with an empty roster.
func PerformPrestige(s *GameState, now time.Time) ([]DomainEvent, error) {
	if !PrestigeEligible(s) {
		return nil, ErrNotEligible
	}

	newMultiplier := PotentialMultiplier(s)
	s.Prestige.Multiplier = newMultiplier
	s.Prestige.Resets++

	s.PlayerLevel = 1
	s.PlayerXP = 0
	s.LifetimeSpent = 0
	s.Gold = PrestigeStartingGold

	var starter *Workshop
	for _, ws := range s.Workshops {
		if ws.Starter {
			starter = ws
			break
		}
	}
	if starter == nil && len(s.Workshops) > 0 {
		starter = s.Workshops[0]
	}
	if starter != nil {
		starter.Level = 1
		starter.Workers = nil
		starter.LifetimeEarned = 0
		starter.CompletedOrders = 0
		starter.ExtraSlots = 0
		s.Workshops = []*Workshop{starter}
	} else {
		s.Workshops = nil
	}

	s.Research = ResearchState{Completed: map[string]bool{}}
	s.Structures = map[string]int{}
	s.Orders = nil
	s.Deliveries = nil
	s.ActiveEvent = nil
	s.LastAppliedEventID = ""
	s.SpeedBoostUntil = time.Time{}
	s.RushBoostUntil = time.Time{}
	s.Stats = Statistics{}

	return []DomainEvent{newEvent(EventPrestigePerformed, now, map[string]any{
		"multiplier": newMultiplier,
		"resets":     s.Prestige.Resets,
	})}, nil
}
