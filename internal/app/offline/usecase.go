package offline

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
	Amount           tycoon.Money `json:"amount"`
	EffectiveSeconds int64        `json:"effective_seconds"`
	Capped           bool         `json:"capped"`
}

// Claim reconciles real-world absence into one lump grant. Safe to
// call on every resume: short or negative elapsed windows grant zero.
func (u UseCase) Claim() (Response, error) {
	now := time.Now()
	if u.Now != nil {
		now = u.Now()
	}
	var res tycoon.OfflineResult
	err := u.Engine.Do("offline_claim", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
		var events []tycoon.DomainEvent
		res, events = tycoon.ApplyOfflineGain(s, now)
		return events, nil
	})
	if err != nil {
		return Response{}, err
	}
	return Response{
		Amount:           res.Amount,
		EffectiveSeconds: int64(res.Effective.Seconds()),
		Capped:           res.Capped,
	}, nil
}
