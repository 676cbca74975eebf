package tycoon

import "time"

// OfflineResult is the lump-sum grant for real-world absence.
type OfflineResult struct {
	Amount    Money         `json:"amount"`
	Effective time.Duration `json:"effective"`
	Capped    bool          `json:"capped"`
}

// OfflineWindow is the elapsed-time cap tier for this state: a base
// window, extended by a one-time ad grant, larger again for premium.
func OfflineWindow(s *GameState) time.Duration {
	switch {
	case s.Premium:
		return OfflinePremiumWindow
	case s.AdOfflineExtension:
		return OfflineAdWindow
	default:
		return OfflineBaseWindow
	}
}

// ComputeOfflineGain integrates the live net-income rate, floored at
// zero so offline play never loses money, over the capped absence
// window. The rate is the one in force at the moment of leaving: the
// season, and any world event active then, apply to the whole window
// even if the event would have expired partway through the absence.
// Pure: no state mutation.
func ComputeOfflineGain(s *GameState, now time.Time) OfflineResult {
	if s.LastPlayedAt.After(now) {
		// Clock rolled back; grant nothing.
		return OfflineResult{}
	}
	elapsed := now.Sub(s.LastPlayedAt)
	if elapsed < OfflineMinSeconds*time.Second {
		return OfflineResult{}
	}

	window := OfflineWindow(s)
	capped := elapsed > window
	if capped {
		elapsed = window
	}

	fx := AggregateEffects(s, s.LastPlayedAt)
	gross, costs, _ := incomeRates(s, s.LastPlayedAt, fx)
	rate := gross - costs
	if rate < 0 {
		rate = 0
	}
	// incomeRates above ran at LastPlayedAt, so the season multiplier
	// is the one of the month the player left in.
	amount := MoneyFromFloat(rate * elapsed.Seconds())
	return OfflineResult{Amount: amount, Effective: elapsed, Capped: capped}
}

// ApplyOfflineGain grants the computed amount, decays reputation once
// per full day of absence, and advances LastPlayedAt so the same
// window is never granted twice. Worker mood and fatigue are left
// untouched: absence produces only the aggregate grant.
func ApplyOfflineGain(s *GameState, now time.Time) (OfflineResult, []DomainEvent) {
	res := ComputeOfflineGain(s, now)
	if res.Effective <= 0 {
		if now.After(s.LastPlayedAt) {
			s.LastPlayedAt = now
		}
		return res, nil
	}

	s.AddGold(res.Amount)
	days := int(now.Sub(s.LastPlayedAt).Hours() / 24)
	if days > 0 {
		s.Reputation -= days * ReputationDecayPerOfflineDay
		if s.Reputation < 0 {
			s.Reputation = 0
		}
	}
	s.LastPlayedAt = now
	s.Stats.OfflineGrants++

	return res, []DomainEvent{newEvent(EventOfflineGranted, now, map[string]any{
		"amount":            res.Amount.Float(),
		"effective_seconds": int64(res.Effective.Seconds()),
		"capped":            res.Capped,
	})}
}
