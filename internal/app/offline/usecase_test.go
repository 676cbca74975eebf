package offline

import (
	"testing"
	"time"

	"gildworks/internal/app/engine"
	"gildworks/internal/domain/tycoon"
)

func TestClaimGrantsOnceForAbsence(t *testing.T) {
	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	state := tycoon.NewGameState(now.Add(-2 * time.Hour))
	eng := engine.New(engine.Config{State: state, Now: func() time.Time { return now }})
	uc := UseCase{Engine: eng, Now: func() time.Time { return now }}

	res, err := uc.Claim()
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if res.Amount <= 0 {
		t.Fatalf("expected a grant, got %v", res.Amount)
	}
	if got, want := res.EffectiveSeconds, int64(7200); got != want {
		t.Fatalf("effective seconds mismatch: got=%d want=%d", got, want)
	}
	if res.Capped {
		t.Fatalf("2h inside the 4h window must not be capped")
	}

	res, err = uc.Claim()
	if err != nil {
		t.Fatalf("second claim failed: %v", err)
	}
	if res.Amount != 0 || res.EffectiveSeconds != 0 {
		t.Fatalf("second claim must grant nothing: %+v", res)
	}
}

func TestClaimShortAbsenceGrantsNothing(t *testing.T) {
	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	state := tycoon.NewGameState(now.Add(-30 * time.Second))
	eng := engine.New(engine.Config{State: state, Now: func() time.Time { return now }})
	uc := UseCase{Engine: eng, Now: func() time.Time { return now }}

	res, err := uc.Claim()
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if res.Amount != 0 {
		t.Fatalf("sub-minute claim must grant nothing: %+v", res)
	}
}
