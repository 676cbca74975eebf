package prestige

import (
	"testing"
	"time"

	"gildworks/internal/app/engine"
	"gildworks/internal/domain/tycoon"
)

var prestigeNow = time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)

func newTestUseCase(state *tycoon.GameState) (UseCase, *engine.Engine) {
	eng := engine.New(engine.Config{State: state, Now: func() time.Time { return prestigeNow }})
	return UseCase{Engine: eng, Now: func() time.Time { return prestigeNow }}, eng
}

func TestPreviewFreshState(t *testing.T) {
	uc, _ := newTestUseCase(tycoon.NewGameState(prestigeNow))

	preview := uc.Preview()
	if preview.Eligible {
		t.Fatalf("fresh state must not be eligible")
	}
	if got, want := preview.CurrentMultiplier, 1.0; got != want {
		t.Fatalf("current multiplier mismatch: got=%v want=%v", got, want)
	}
	if preview.Resets != 0 {
		t.Fatalf("resets mismatch: got=%d", preview.Resets)
	}
}

func TestPerformRejectsIneligible(t *testing.T) {
	uc, _ := newTestUseCase(tycoon.NewGameState(prestigeNow))

	if _, err := uc.Perform(); err != tycoon.ErrNotEligible {
		t.Fatalf("expected ErrNotEligible, got %v", err)
	}
}

func TestPerformResetsRun(t *testing.T) {
	state := tycoon.NewGameState(prestigeNow)
	state.PlayerLevel = 25
	state.LifetimeEarned = tycoon.MoneyFromInt(10_000_000)
	uc, eng := newTestUseCase(state)

	resp, err := uc.Perform()
	if err != nil {
		t.Fatalf("perform failed: %v", err)
	}
	if got, want := resp.Multiplier, 1.316; got != want {
		t.Fatalf("multiplier mismatch: got=%v want=%v", got, want)
	}
	if got, want := resp.Resets, 1; got != want {
		t.Fatalf("resets mismatch: got=%d want=%d", got, want)
	}

	snap := eng.Snapshot()
	if got, want := snap.Gold, tycoon.PrestigeStartingGold; got != want {
		t.Fatalf("post-reset gold mismatch: got=%v want=%v", got, want)
	}
	if snap.PlayerLevel != 1 {
		t.Fatalf("player level not reset: got=%d", snap.PlayerLevel)
	}
}
