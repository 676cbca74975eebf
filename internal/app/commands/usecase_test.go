package commands

import (
	"sync"
	"testing"
	"time"

	"gildworks/internal/app/engine"
	"gildworks/internal/domain/tycoon"
)

var cmdNow = time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)

type fakeMarket struct {
	mu          sync.Mutex
	pool        []*tycoon.Worker
	removed     []string
	restored    []string
	regenLevel  int
	regenResets int
}

func (m *fakeMarket) AvailableWorkers() []*tycoon.Worker {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*tycoon.Worker, len(m.pool))
	copy(out, m.pool)
	return out
}

func (m *fakeMarket) Remove(id string) (*tycoon.Worker, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, w := range m.pool {
		if w.ID == id {
			m.pool = append(m.pool[:i], m.pool[i+1:]...)
			m.removed = append(m.removed, id)
			return w, true
		}
	}
	return nil, false
}

func (m *fakeMarket) Restore(w *tycoon.Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pool = append(m.pool, w)
	m.restored = append(m.restored, w.ID)
}

func (m *fakeMarket) Regenerate(playerLevel, prestigeCount int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regenLevel = playerLevel
	m.regenResets = prestigeCount
}

func newTestUseCase(t *testing.T) (UseCase, *engine.Engine, *fakeMarket, *tycoon.GameState) {
	t.Helper()
	state := tycoon.NewGameState(cmdNow)
	eng := engine.New(engine.Config{State: state, Now: func() time.Time { return cmdNow }})
	market := &fakeMarket{pool: []*tycoon.Worker{{
		ID: "cand-1", Name: "Wren", Tier: tycoon.TierNovice,
		Talent: 1.0, Personality: tycoon.PersonalitySteady,
		Mood: 90, Level: 1, Status: tycoon.StatusWorking,
	}}}
	return UseCase{Engine: eng, Market: market, Now: func() time.Time { return cmdNow }}, eng, market, state
}

func TestHireConsumesMarketCandidate(t *testing.T) {
	uc, eng, market, state := newTestUseCase(t)
	wsID := state.Workshops[0].ID

	if err := uc.Hire(HireRequest{WorkshopID: wsID, CandidateID: "cand-1"}); err != nil {
		t.Fatalf("hire failed: %v", err)
	}
	if len(market.removed) != 1 || market.removed[0] != "cand-1" {
		t.Fatalf("candidate not removed from market: %+v", market.removed)
	}
	snap := eng.Snapshot()
	if got, want := len(snap.Workshops[0].Workers), 2; got != want {
		t.Fatalf("roster size mismatch: got=%d want=%d", got, want)
	}
}

func TestHireUnknownCandidate(t *testing.T) {
	uc, _, market, state := newTestUseCase(t)

	err := uc.Hire(HireRequest{WorkshopID: state.Workshops[0].ID, CandidateID: "ghost"})
	if err != tycoon.ErrUnknownWorker {
		t.Fatalf("expected ErrUnknownWorker, got %v", err)
	}
	if len(market.removed) != 0 {
		t.Fatalf("failed hire must not touch the market")
	}
}

func TestHireFailureKeepsCandidateListed(t *testing.T) {
	uc, _, market, state := newTestUseCase(t)
	state.Gold = 0

	err := uc.Hire(HireRequest{WorkshopID: state.Workshops[0].ID, CandidateID: "cand-1"})
	if err != tycoon.ErrInsufficientGold {
		t.Fatalf("expected ErrInsufficientGold, got %v", err)
	}
	if len(market.pool) != 1 {
		t.Fatalf("candidate must stay listed after a failed hire")
	}
	if len(market.restored) != 1 || market.restored[0] != "cand-1" {
		t.Fatalf("candidate not restored to the pool: %+v", market.restored)
	}
}

func TestConcurrentHireSingleWinner(t *testing.T) {
	uc, eng, _, state := newTestUseCase(t)
	wsID := state.Workshops[0].ID

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = uc.Hire(HireRequest{WorkshopID: wsID, CandidateID: "cand-1"})
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch err {
		case nil:
			won++
		case tycoon.ErrUnknownWorker:
			lost++
		default:
			t.Fatalf("unexpected hire error: %v", err)
		}
	}
	if won != 1 || lost != 1 {
		t.Fatalf("winner count mismatch: won=%d lost=%d", won, lost)
	}

	seen := 0
	for _, ws := range eng.Snapshot().Workshops {
		for _, w := range ws.Workers {
			if w.ID == "cand-1" {
				seen++
			}
		}
	}
	if seen != 1 {
		t.Fatalf("candidate roster count mismatch: got=%d want=1", seen)
	}
}

func TestRequestValidation(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	if err := uc.Hire(HireRequest{}); err != ErrInvalidRequest {
		t.Fatalf("empty hire: got %v", err)
	}
	if err := uc.Fire("  "); err != ErrInvalidRequest {
		t.Fatalf("blank fire: got %v", err)
	}
	if err := uc.Rest(RestRequest{}); err != ErrInvalidRequest {
		t.Fatalf("empty rest: got %v", err)
	}
	if err := uc.Boost(BoostRequest{Kind: "warp"}); err != ErrInvalidRequest {
		t.Fatalf("unknown boost kind: got %v", err)
	}
}

func TestTrainRoundTrip(t *testing.T) {
	uc, eng, _, state := newTestUseCase(t)
	workerID := state.Workshops[0].Workers[0].ID

	if err := uc.Train(TrainRequest{WorkerID: workerID, Kind: "endurance"}); err != nil {
		t.Fatalf("train failed: %v", err)
	}
	if got := eng.Snapshot().Workshops[0].Workers[0].Status; got != tycoon.StatusTraining {
		t.Fatalf("status mismatch: got=%v", got)
	}
	if err := uc.Train(TrainRequest{WorkerID: workerID, Stop: true}); err != nil {
		t.Fatalf("stop train failed: %v", err)
	}
	if got := eng.Snapshot().Workshops[0].Workers[0].Status; got != tycoon.StatusWorking {
		t.Fatalf("status after stop mismatch: got=%v", got)
	}
}

func TestBoostSpendsCrystals(t *testing.T) {
	uc, eng, _, state := newTestUseCase(t)
	state.Crystals = 25

	if err := uc.Boost(BoostRequest{Kind: "speed"}); err != nil {
		t.Fatalf("boost failed: %v", err)
	}
	snap := eng.Snapshot()
	if got, want := snap.Crystals, int64(5); got != want {
		t.Fatalf("crystal balance mismatch: got=%d want=%d", got, want)
	}
	if !snap.SpeedBoostActive(cmdNow) {
		t.Fatalf("speed boost not active")
	}

	if err := uc.Boost(BoostRequest{Kind: "rush"}); err != tycoon.ErrInsufficientCrystals {
		t.Fatalf("expected ErrInsufficientCrystals, got %v", err)
	}
}

func TestRefreshMarketUsesCurrentProgress(t *testing.T) {
	uc, _, market, state := newTestUseCase(t)
	state.PlayerLevel = 12
	state.Prestige.Resets = 3

	uc.RefreshMarket()
	if market.regenLevel != 12 || market.regenResets != 3 {
		t.Fatalf("regenerate args mismatch: level=%d resets=%d", market.regenLevel, market.regenResets)
	}
}
