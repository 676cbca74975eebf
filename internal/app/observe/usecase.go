package observe

import (
	"time"

	"gildworks/internal/app/engine"
	"gildworks/internal/domain/tycoon"
)

type UseCase struct {
	Engine *engine.Engine
	Now    func() time.Time
}

type Response struct {
	State       *tycoon.GameState `json:"state"`
	Effects     tycoon.EffectSet  `json:"effects"`
	Season      tycoon.Season     `json:"season"`
	SeasonBonus float64           `json:"season_bonus"`
}

// Execute returns a consistent snapshot plus the derived values the
// presentation layer would otherwise recompute.
func (u UseCase) Execute() Response {
	now := time.Now()
	if u.Now != nil {
		now = u.Now()
	}
	snap := u.Engine.Snapshot()
	return Response{
		State:       snap,
		Effects:     tycoon.AggregateEffects(snap, now),
		Season:      tycoon.SeasonOf(now.Month()),
		SeasonBonus: tycoon.SeasonMultiplier(now.Month()),
	}
}
