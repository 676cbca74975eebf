package commands

import (
	"errors"
	"strings"
	"time"

	"gildworks/internal/app/engine"
	"gildworks/internal/app/ports"
	"gildworks/internal/domain/tycoon"
)

var ErrInvalidRequest = errors.New("invalid command request")

// UseCase routes player commands through the engine's exclusive
// region. Every failure is a typed reason the transport maps to a
// response code.
type UseCase struct {
	Engine *engine.Engine
	Market ports.WorkerMarket
	Now    func() time.Time
}

type HireRequest struct {
	WorkshopID  string `json:"workshop_id"`
	CandidateID string `json:"candidate_id"`
}

func (u UseCase) Hire(req HireRequest) error {
	req.WorkshopID = strings.TrimSpace(req.WorkshopID)
	req.CandidateID = strings.TrimSpace(req.CandidateID)
	if req.WorkshopID == "" || req.CandidateID == "" {
		return ErrInvalidRequest
	}

	// Claim the candidate before entering the exclusive region: Remove
	// is the atomic reservation, so concurrent hires for the same
	// candidate resolve to exactly one winner.
	candidate, ok := u.Market.Remove(req.CandidateID)
	if !ok {
		return tycoon.ErrUnknownWorker
	}

	err := u.Engine.Do("hire", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
		return nil, s.HireWorker(req.WorkshopID, candidate)
	})
	if err != nil {
		u.Market.Restore(candidate)
	}
	return err
}

func (u UseCase) Fire(workerID string) error {
	if strings.TrimSpace(workerID) == "" {
		return ErrInvalidRequest
	}
	return u.Engine.Do("fire", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
		return nil, s.FireWorker(workerID)
	})
}

type RestRequest struct {
	WorkerID string `json:"worker_id"`
	Stop     bool   `json:"stop"`
}

func (u UseCase) Rest(req RestRequest) error {
	if strings.TrimSpace(req.WorkerID) == "" {
		return ErrInvalidRequest
	}
	return u.Engine.Do("rest", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
		if req.Stop {
			return nil, s.StopRest(req.WorkerID)
		}
		return nil, s.StartRest(req.WorkerID)
	})
}

type TrainRequest struct {
	WorkerID string `json:"worker_id"`
	Kind     string `json:"kind"`
	Stop     bool   `json:"stop"`
}

func (u UseCase) Train(req TrainRequest) error {
	if strings.TrimSpace(req.WorkerID) == "" {
		return ErrInvalidRequest
	}
	return u.Engine.Do("train", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
		if req.Stop {
			return nil, s.StopTraining(req.WorkerID)
		}
		return nil, s.StartTraining(req.WorkerID, tycoon.TrainingKind(req.Kind))
	})
}

type TransferRequest struct {
	WorkerID   string `json:"worker_id"`
	WorkshopID string `json:"workshop_id"`
}

func (u UseCase) Transfer(req TransferRequest) error {
	if strings.TrimSpace(req.WorkerID) == "" || strings.TrimSpace(req.WorkshopID) == "" {
		return ErrInvalidRequest
	}
	return u.Engine.Do("transfer", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
		return nil, s.TransferWorker(req.WorkerID, req.WorkshopID)
	})
}

func (u UseCase) Upgrade(workshopID string) error {
	if strings.TrimSpace(workshopID) == "" {
		return ErrInvalidRequest
	}
	return u.Engine.Do("upgrade", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
		return nil, s.UpgradeWorkshop(workshopID)
	})
}

func (u UseCase) Research(nodeID string) error {
	if strings.TrimSpace(nodeID) == "" {
		return ErrInvalidRequest
	}
	return u.Engine.Do("research", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
		return nil, s.StartResearch(nodeID)
	})
}

func (u UseCase) BuyShopItem(itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return ErrInvalidRequest
	}
	return u.Engine.Do("shop", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
		return nil, s.BuyShopItem(itemID)
	})
}

func (u UseCase) Build(structureID string) error {
	if strings.TrimSpace(structureID) == "" {
		return ErrInvalidRequest
	}
	return u.Engine.Do("build", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
		return nil, s.BuildStructure(structureID)
	})
}

type BoostRequest struct {
	Kind string `json:"kind"` // "speed" or "rush"
}

const (
	boostDuration    = 10 * time.Minute
	boostCrystalCost = 20
)

func (u UseCase) Boost(req BoostRequest) error {
	now := u.nowFn()()
	switch req.Kind {
	case "speed":
		return u.Engine.Do("boost", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
			return nil, s.ActivateSpeedBoost(now, boostDuration, boostCrystalCost)
		})
	case "rush":
		return u.Engine.Do("boost", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
			return nil, s.ActivateRushBoost(now, boostDuration, boostCrystalCost)
		})
	default:
		return ErrInvalidRequest
	}
}

func (u UseCase) CompleteOrder(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrInvalidRequest
	}
	now := u.nowFn()()
	return u.Engine.Do("complete_order", func(s *tycoon.GameState) ([]tycoon.DomainEvent, error) {
		return nil, s.CompleteOrder(orderID, now)
	})
}

// RefreshMarket regenerates the hiring pool from current progress.
func (u UseCase) RefreshMarket() {
	snap := u.Engine.Snapshot()
	u.Market.Regenerate(snap.PlayerLevel, snap.Prestige.Resets)
}

func (u UseCase) nowFn() func() time.Time {
	if u.Now != nil {
		return u.Now
	}
	return time.Now
}
