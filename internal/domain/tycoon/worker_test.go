package tycoon

import (
	"testing"
	"time"
)

func testStateWithWorker(t *testing.T) (*GameState, *Workshop, *Worker) {
	t.Helper()
	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	s := NewGameState(now)
	ws := s.Workshops[0]
	return s, ws, ws.Workers[0]
}

func TestEffectiveEfficiency(t *testing.T) {
	_, ws, w := testStateWithWorker(t)

	if got := EffectiveEfficiency(w, ws); !almostEqual(got, 1.0) {
		t.Fatalf("fresh novice efficiency mismatch: got=%v want=1.0", got)
	}

	w.Specialization = ws.Craft
	if got := EffectiveEfficiency(w, ws); !almostEqual(got, 1.15) {
		t.Fatalf("specialization bonus mismatch: got=%v want=1.15", got)
	}
	w.Specialization = ""

	w.Mood = 40
	if got := EffectiveEfficiency(w, ws); !almostEqual(got, 0.75) {
		t.Fatalf("mood 40 efficiency mismatch: got=%v want=0.75", got)
	}
	w.Mood = MoodMax

	w.Fatigue = 50
	if got := EffectiveEfficiency(w, ws); !almostEqual(got, 0.75) {
		t.Fatalf("fatigue 50 efficiency mismatch: got=%v want=0.75", got)
	}
	w.Fatigue = 0

	w.Status = StatusResting
	if got := EffectiveEfficiency(w, ws); got != 0 {
		t.Fatalf("resting worker must contribute zero, got=%v", got)
	}
}

func TestRestRecoversFatigueAndReturnsToWork(t *testing.T) {
	s, ws, w := testStateWithWorker(t)
	w.Status = StatusResting
	w.AssignedWorkshop = ""
	w.Fatigue = FatigueMax

	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	quit, _ := AdvanceWorker(s, ws, w, RestRecoveryHours, now, EffectSet{})
	if quit {
		t.Fatalf("unexpected quit")
	}
	if w.Fatigue != 0 {
		t.Fatalf("fatigue not fully recovered: got=%v", w.Fatigue)
	}
	if w.Status != StatusWorking {
		t.Fatalf("worker should auto-return to work, got=%v", w.Status)
	}
	if w.AssignedWorkshop != ws.ID {
		t.Fatalf("assignment not restored: got=%q", w.AssignedWorkshop)
	}
}

func TestRestSpeedEffectShortensRecovery(t *testing.T) {
	s, ws, w := testStateWithWorker(t)
	w.Status = StatusResting
	w.Fatigue = FatigueMax

	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	AdvanceWorker(s, ws, w, 2, now, EffectSet{RestSpeed: 0.20})
	// 30 per hour instead of 25.
	if !almostEqual(w.Fatigue, 40) {
		t.Fatalf("boosted recovery mismatch: got=%v want=40", w.Fatigue)
	}
	if w.Status != StatusResting {
		t.Fatalf("worker should still be resting, got=%v", w.Status)
	}
}

func TestEnduranceTrainingCapsAndStops(t *testing.T) {
	s, ws, w := testStateWithWorker(t)
	s.Gold = MoneyFromInt(2_000)
	w.Status = StatusTraining
	w.Training = TrainEndurance
	w.AssignedWorkshop = ""

	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	AdvanceWorker(s, ws, w, 10, now, EffectSet{})

	if !almostEqual(w.EnduranceBonus, TrainingBonusCap) {
		t.Fatalf("endurance bonus mismatch: got=%v want=%v", w.EnduranceBonus, TrainingBonusCap)
	}
	if w.Status != StatusWorking || w.Training != "" {
		t.Fatalf("training should auto-stop at cap: status=%v training=%q", w.Status, w.Training)
	}
	if got, want := s.Gold, MoneyFromInt(800); got != want {
		t.Fatalf("training cost mismatch: got=%v want=%v", got, want)
	}
}

func TestTrainingStopsWhenBroke(t *testing.T) {
	s, ws, w := testStateWithWorker(t)
	s.Gold = 0
	w.Status = StatusTraining
	w.Training = TrainEfficiency

	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	AdvanceWorker(s, ws, w, 1, now, EffectSet{})

	if w.Status != StatusWorking || w.Training != "" {
		t.Fatalf("unaffordable training should stop: status=%v training=%q", w.Status, w.Training)
	}
	if w.XP != 0 {
		t.Fatalf("no progress should accrue when unpaid, got xp=%v", w.XP)
	}
}

func TestEfficiencyTrainingLevelsUp(t *testing.T) {
	s, ws, w := testStateWithWorker(t)
	w.Status = StatusTraining
	w.Training = TrainEfficiency

	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	_, events := AdvanceWorker(s, ws, w, 3, now, EffectSet{})

	if got, want := w.Level, 2; got != want {
		t.Fatalf("level mismatch: got=%d want=%d", got, want)
	}
	if !almostEqual(w.XP, 20) {
		t.Fatalf("carryover xp mismatch: got=%v want=20", w.XP)
	}
	found := false
	for _, ev := range events {
		if ev.Type == EventWorkerLevelUp {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected level-up event, got %+v", events)
	}
}

func TestLevelCappedAtTierMax(t *testing.T) {
	s, ws, w := testStateWithWorker(t)
	w.Level = 5 // novice max
	w.XP = 10_000

	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	AdvanceWorker(s, ws, w, 1, now, EffectSet{})
	if got, want := w.Level, 5; got != want {
		t.Fatalf("level should stay at tier max: got=%d want=%d", got, want)
	}
}

func TestFullFatigueForcesRest(t *testing.T) {
	s, ws, w := testStateWithWorker(t)
	w.Fatigue = 99.9

	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	AdvanceWorker(s, ws, w, 1, now, EffectSet{})

	if w.Status != StatusResting {
		t.Fatalf("exhausted worker should be forced to rest, got=%v", w.Status)
	}
	if w.AssignedWorkshop != "" {
		t.Fatalf("forced rest should clear assignment, got=%q", w.AssignedWorkshop)
	}
}

func TestMoodWarningFiresOnceAtThreshold(t *testing.T) {
	s, ws, w := testStateWithWorker(t)
	w.Mood = 30.5

	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	_, events := AdvanceWorker(s, ws, w, 1, now, EffectSet{})
	warned := 0
	for _, ev := range events {
		if ev.Type == EventWorkerMoodWarning {
			warned++
		}
	}
	if warned != 1 {
		t.Fatalf("expected one mood warning, got %d", warned)
	}

	_, events = AdvanceWorker(s, ws, w, 1, now.Add(time.Hour), EffectSet{})
	for _, ev := range events {
		if ev.Type == EventWorkerMoodWarning {
			t.Fatalf("warning must not repeat below threshold")
		}
	}
}

func TestQuitAfterGracePeriod(t *testing.T) {
	s, ws, w := testStateWithWorker(t)
	w.Mood = 10

	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	quit, _ := AdvanceWorker(s, ws, w, 1.0/3600, now, EffectSet{})
	if quit {
		t.Fatalf("worker must not quit before the grace period")
	}
	if w.QuitDeadline == nil {
		t.Fatalf("expected quit deadline to be set")
	}

	later := now.Add(24*time.Hour + time.Second)
	quit, events := AdvanceWorker(s, ws, w, 1.0/3600, later, EffectSet{})
	if !quit {
		t.Fatalf("worker should quit after the grace period")
	}
	found := false
	for _, ev := range events {
		if ev.Type == EventWorkerQuit {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected quit event, got %+v", events)
	}
}

func TestMoodRecoveryClearsQuitDeadline(t *testing.T) {
	s, ws, w := testStateWithWorker(t)
	w.Mood = 10

	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	AdvanceWorker(s, ws, w, 1.0/3600, now, EffectSet{})
	if w.QuitDeadline == nil {
		t.Fatalf("expected quit deadline to be set")
	}

	w.Mood = 50
	quit, _ := AdvanceWorker(s, ws, w, 1.0/3600, now.Add(time.Second), EffectSet{})
	if quit {
		t.Fatalf("recovered worker must not quit")
	}
	if w.QuitDeadline != nil {
		t.Fatalf("recovery should clear the quit deadline")
	}
}
