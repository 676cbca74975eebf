package tycoon

import "time"

// EffectiveEfficiency is the income weight of a worker inside its
// workshop: base efficiency (tier, level, talent) scaled by mood and
// fatigue factors, specialization match and personality, floored at
// zero. Workers who are resting or training contribute nothing.
func EffectiveEfficiency(w *Worker, ws *Workshop) float64 {
	if w.Status != StatusWorking {
		return 0
	}
	def, ok := tierDefs[w.Tier]
	if !ok {
		return 0
	}
	base := def.BaseEfficiency * (1 + LevelEfficiencyStep*float64(w.Level-1)) * w.Talent

	moodFactor := 1.0
	if w.Mood < MoodFullFactorThreshold {
		moodFactor = MoodMinFactor + (w.Mood/MoodFullFactorThreshold)*(1-MoodMinFactor)
	}
	fatigueFactor := 1 - (w.Fatigue/FatigueMax)*(1-FatigueMinFactor)

	eff := base * moodFactor * fatigueFactor
	if w.Specialization != "" && ws != nil && w.Specialization == ws.Craft {
		eff *= 1 + SpecializationBonus
	}
	if p, ok := personalityDefs[w.Personality]; ok {
		eff *= p.EfficiencyMult
	}
	if eff < 0 {
		return 0
	}
	return eff
}

// AdvanceWorker moves one worker forward by dtHours of real time.
// Returns whether the worker quit (caller removes them from the
// roster) and any lifecycle events.
func AdvanceWorker(s *GameState, ws *Workshop, w *Worker, dtHours float64, now time.Time, fx EffectSet) (quit bool, events []DomainEvent) {
	if dtHours <= 0 {
		return false, nil
	}
	moodBefore := w.Mood

	switch w.Status {
	case StatusResting:
		events = append(events, advanceResting(ws, w, dtHours, fx)...)
	case StatusTraining:
		events = append(events, advanceTraining(s, w, dtHours, now, fx)...)
	default:
		events = append(events, advanceWorking(w, dtHours, now, fx)...)
	}

	if moodBefore >= MoodWarnThreshold && w.Mood < MoodWarnThreshold {
		events = append(events, newEvent(EventWorkerMoodWarning, now, map[string]any{
			"worker_id": w.ID,
			"mood":      w.Mood,
		}))
	}

	// Quit rule runs every tick regardless of status.
	if w.Mood < QuitMoodThreshold {
		if w.QuitDeadline == nil {
			deadline := now.Add(time.Duration(QuitGraceHours * float64(time.Hour)))
			w.QuitDeadline = &deadline
		} else if now.After(*w.QuitDeadline) {
			events = append(events, newEvent(EventWorkerQuit, now, map[string]any{
				"worker_id": w.ID,
				"name":      w.Name,
			}))
			return true, events
		}
	} else {
		w.QuitDeadline = nil
	}
	return false, events
}

func advanceResting(ws *Workshop, w *Worker, dtHours float64, fx EffectSet) []DomainEvent {
	rate := (FatigueMax / RestRecoveryHours) * (1 + fx.RestSpeed)
	w.Fatigue -= rate * dtHours
	w.Mood = clamp(w.Mood+RestMoodGainPerHour*dtHours, 0, MoodMax)
	if w.Fatigue <= 0 {
		w.Fatigue = 0
		w.Status = StatusWorking
		if ws != nil {
			w.AssignedWorkshop = ws.ID
		}
	}
	return nil
}

func advanceTraining(s *GameState, w *Worker, dtHours float64, now time.Time, fx EffectSet) []DomainEvent {
	cost := MoneyFromFloat(TrainingCostPerHour * dtHours)
	if !s.SpendGold(cost) {
		// Training must stay affordable; broke players stop training.
		stopTraining(s, w)
		return nil
	}

	var events []DomainEvent
	speed := 1 + fx.TrainingSpeed
	switch w.Training {
	case TrainEndurance:
		w.EnduranceBonus += TrainingBonusPerHour * speed * dtHours
		if w.EnduranceBonus >= TrainingBonusCap {
			w.EnduranceBonus = TrainingBonusCap
			stopTraining(s, w)
		}
	case TrainMorale:
		w.MoraleBonus += TrainingBonusPerHour * speed * dtHours
		if w.MoraleBonus >= TrainingBonusCap {
			w.MoraleBonus = TrainingBonusCap
			stopTraining(s, w)
		}
	default:
		w.XP += TrainingXPPerHour * speed * dtHours
		events = append(events, levelUps(w, now)...)
	}

	gainWeight := 1.0
	if p, ok := personalityDefs[w.Personality]; ok {
		gainWeight = p.FatigueWeight
	}
	w.Fatigue = clamp(w.Fatigue+BaseFatigueGainPerHour*gainWeight*(1-w.EnduranceBonus)*TrainingFatigueFactor*dtHours, 0, FatigueMax)
	if w.Fatigue >= FatigueMax {
		forceRest(w)
	}
	return events
}

func advanceWorking(w *Worker, dtHours float64, now time.Time, fx EffectSet) []DomainEvent {
	p, ok := personalityDefs[w.Personality]
	if !ok {
		p = personalityDefs[PersonalitySteady]
	}

	// Net mood drift may be positive when passive recovery outweighs
	// the personality-weighted decay.
	decay := BaseMoodDecayPerHour*p.MoodDecayWeight*(1-w.MoraleBonus) - fx.PassiveMoodRecovery
	w.Mood = clamp(w.Mood-decay*dtHours, 0, MoodMax)

	w.Fatigue = clamp(w.Fatigue+BaseFatigueGainPerHour*p.FatigueWeight*(1-w.EnduranceBonus)*dtHours, 0, FatigueMax)

	w.XP += TrainingXPPerHour * WorkingXPFraction * dtHours
	events := levelUps(w, now)

	if w.Fatigue >= FatigueMax {
		forceRest(w)
	}
	return events
}

func levelUps(w *Worker, now time.Time) []DomainEvent {
	def, ok := tierDefs[w.Tier]
	if !ok {
		return nil
	}
	var events []DomainEvent
	for w.Level < def.MaxLevel && w.XP >= xpForLevel(w.Level) {
		w.XP -= xpForLevel(w.Level)
		w.Level++
		events = append(events, newEvent(EventWorkerLevelUp, now, map[string]any{
			"worker_id": w.ID,
			"level":     w.Level,
		}))
	}
	return events
}

func xpForLevel(level int) float64 {
	return XPPerLevel * float64(level)
}

func forceRest(w *Worker) {
	w.Status = StatusResting
	w.Training = ""
	w.AssignedWorkshop = ""
}

func stopTraining(s *GameState, w *Worker) {
	w.Status = StatusWorking
	w.Training = ""
	if ws, _ := s.FindWorker(w.ID); ws != nil {
		w.AssignedWorkshop = ws.ID
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
