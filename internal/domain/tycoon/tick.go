package tycoon

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// TickResult carries what one simulated second produced.
type TickResult struct {
	Gross         Money
	Costs         Money
	Net           Money
	Applied       Money
	Balance       Money
	SaveRequested bool
	Events        []DomainEvent
}

// TickService advances the whole simulation by one tick. The step
// order below is load-bearing: later steps consume earlier outputs.
type TickService struct {
	Rand *rand.Rand
}

func (t TickService) Tick(s *GameState, now time.Time) TickResult {
	s.Stats.TicksRun++
	var events []DomainEvent

	// Expired events are cleared by the first tick that observes them,
	// before any multiplier is read.
	if s.ActiveEvent != nil && !s.ActiveEvent.ActiveAt(now) {
		events = append(events, newEvent(EventWorldEventEnded, now, map[string]any{
			"event_id": s.ActiveEvent.ID,
			"type":     string(s.ActiveEvent.Type),
		}))
		s.LastEventEndedAt = now
		s.ActiveEvent = nil
	}

	// Modifier aggregation through running costs.
	fx := AggregateEffects(s, now)
	for _, ws := range s.Workshops {
		ws.ExtraSlots = fx.ExtraWorkerSlots
	}
	grossRate, costRate, shares := incomeRates(s, now, fx)

	// One-shot side effects, at most once per event instance.
	if ev := s.ActiveEvent; ev != nil && s.LastAppliedEventID != ev.ID {
		applyEventOneShots(s, ev)
		s.LastAppliedEventID = ev.ID
	}

	// Net, then boost doublers on positive income only.
	netRate := grossRate - costRate
	net := MoneyFromFloat(netRate * TickSeconds)
	if net > 0 && s.SpeedBoostActive(now) {
		net = net.MulFloat(2)
	}
	if net > 0 && s.RushBoostActive(now) {
		net = net.MulFloat(2 + fx.RushBonus)
	}

	// The protected balance apply.
	applied := s.ApplyNet(net)

	// Statistics-only lifetime attribution.
	if applied > 0 {
		distributeEarnings(s, applied, shares)
	}

	// Worker lifecycle at dt = one second.
	const dtHours = float64(TickSeconds) / 3600.0
	for _, ws := range s.Workshops {
		kept := ws.Workers[:0]
		for _, w := range ws.Workers {
			quit, evs := AdvanceWorker(s, ws, w, dtHours, now, fx)
			events = append(events, evs...)
			if quit {
				s.Stats.WorkersQuit++
				continue
			}
			kept = append(kept, w)
		}
		ws.Workers = kept
	}

	// Independent timers.
	events = append(events, t.advanceTimers(s, now)...)

	// Slow-cadence event roll.
	if s.Stats.TicksRun%TicksPerEventRoll == 0 {
		events = append(events, t.rollWorldEvent(s, now)...)
	}

	// Offer rotation and expiry purge.
	if s.Stats.TicksRun%TicksPerOfferRotation == 0 {
		events = append(events, t.rotateOrders(s, now, fx)...)
	}

	s.LastPlayedAt = now

	res := TickResult{
		Gross:         MoneyFromFloat(grossRate * TickSeconds),
		Costs:         MoneyFromFloat(costRate * TickSeconds),
		Net:           net,
		Applied:       applied,
		Balance:       s.Gold,
		SaveRequested: s.Stats.TicksRun%TicksPerSave == 0,
	}
	events = append(events, newEvent(EventTickCompleted, now, map[string]any{
		"net":     res.Net.Float(),
		"balance": res.Balance.Float(),
		"tick":    s.Stats.TicksRun,
	}))
	res.Events = events
	return res
}

// incomeRates computes gross and cost rates per second from an
// already-aggregated EffectSet. Offline reconciliation integrates the
// exact same formula over the absence window. The returned shares map
// workshop index to its fraction of gross, for lifetime-stat
// attribution only.
func incomeRates(s *GameState, now time.Time, fx EffectSet) (gross, costs float64, shares []float64) {
	shares = make([]float64, len(s.Workshops))

	// Base production scaled by the capped prestige multiplier.
	prestige := s.Prestige.Multiplier
	if prestige < 1 {
		prestige = 1
	}
	if prestige > PrestigeMultiplierCap {
		prestige = PrestigeMultiplierCap
	}
	for i, ws := range s.Workshops {
		perWorker := BaseIncomePerWorker * (1 + IncomePerLevelStep*float64(ws.Level-1))
		var effSum float64
		for _, w := range ws.Workers {
			effSum += EffectiveEfficiency(w, ws)
		}
		shares[i] = perWorker * effSum
		gross += shares[i]
	}
	gross *= prestige

	// Shop income bonus first, then the capped research bonus.
	gross *= 1 + fx.IncomeBonus
	gross *= 1 + math.Min(fx.EfficiencyBonus, EfficiencyBonusCap)

	// Active event multiplier, then the season of `now`.
	if ev := s.ActiveEvent; ev != nil && ev.ActiveAt(now) {
		gross *= ev.IncomeMultiplier
		// Persistent tax-style skim, applied every tick.
		gross *= 1 - ev.TaxRate
	}
	gross *= SeasonMultiplier(now.Month())

	// Collectible artifact passive bonus.
	gross *= 1 + artifactBonus(s.Artifacts)

	// Running costs with the combined 50%-capped reduction.
	for _, ws := range s.Workshops {
		hourly := WorkshopUpkeepPerHour * float64(ws.Level)
		for _, w := range ws.Workers {
			if def, ok := tierDefs[w.Tier]; ok {
				hourly += def.WagePerHour
			}
		}
		costs += hourly / 3600.0
	}
	reduction := fx.CostReduction + fx.WageReduction + fx.StorageCostReduction/2
	if reduction > CostReductionCap {
		reduction = CostReductionCap
	}
	costs *= 1 - reduction
	if ev := s.ActiveEvent; ev != nil && ev.ActiveAt(now) {
		costs *= ev.CostMultiplier
	}

	if gross > 0 {
		raw := 0.0
		for _, sh := range shares {
			raw += sh
		}
		if raw > 0 {
			for i := range shares {
				shares[i] /= raw
			}
		}
	}
	return gross, costs, shares
}

func artifactBonus(artifacts []string) float64 {
	var bonus float64
	for _, id := range artifacts {
		bonus += artifactDefs[id]
	}
	return bonus
}

func applyEventOneShots(s *GameState, ev *WorldEvent) {
	if ev.MoodPenalty != 0 {
		for _, ws := range s.Workshops {
			if ev.AffectedWorkshop != "" && ws.ID != ev.AffectedWorkshop {
				continue
			}
			for _, w := range ws.Workers {
				w.Mood = clamp(w.Mood-ev.MoodPenalty, 0, MoodMax)
			}
		}
	}
	s.Reputation += ev.ReputationDelta
	if s.Reputation < 0 {
		s.Reputation = 0
	}
}

func distributeEarnings(s *GameState, applied Money, shares []float64) {
	for i, ws := range s.Workshops {
		if i >= len(shares) || shares[i] <= 0 {
			continue
		}
		wsShare := applied.MulFloat(shares[i])
		ws.LifetimeEarned += wsShare

		var effSum float64
		for _, w := range ws.Workers {
			effSum += EffectiveEfficiency(w, ws)
		}
		if effSum <= 0 {
			continue
		}
		for _, w := range ws.Workers {
			eff := EffectiveEfficiency(w, ws)
			if eff > 0 {
				w.LifetimeEarned += wsShare.MulFloat(eff / effSum)
			}
		}
	}
}

func (t TickService) advanceTimers(s *GameState, now time.Time) []DomainEvent {
	var events []DomainEvent

	if ar := s.Research.Active; ar != nil {
		ar.RemainingSeconds--
		if ar.RemainingSeconds <= 0 {
			if s.Research.Completed == nil {
				s.Research.Completed = map[string]bool{}
			}
			s.Research.Completed[ar.NodeID] = true
			events = append(events, newEvent(EventResearchCompleted, now, map[string]any{
				"node_id": ar.NodeID,
			}))
			s.Research.Active = nil
		}
	}

	kept := s.Deliveries[:0]
	for _, d := range s.Deliveries {
		if now.Before(d.ArrivesAt) {
			kept = append(kept, d)
			continue
		}
		s.AddGold(d.Gold)
		events = append(events, newEvent(EventDeliveryArrived, now, map[string]any{
			"delivery_id": d.ID,
			"gold":        d.Gold.Float(),
		}))
	}
	s.Deliveries = kept
	return events
}

func (t TickService) rollWorldEvent(s *GameState, now time.Time) []DomainEvent {
	if s.ActiveEvent != nil || t.Rand == nil {
		return nil
	}

	// Both odds and pacing improve with prestige resets.
	minInterval := EventMinIntervalBase - time.Duration(s.Prestige.Resets)*EventMinIntervalPerReset
	if minInterval < EventMinIntervalFloor {
		minInterval = EventMinIntervalFloor
	}
	if !s.LastEventEndedAt.IsZero() && now.Sub(s.LastEventEndedAt) < minInterval {
		return nil
	}
	chance := EventBaseChance + EventChancePerReset*float64(s.Prestige.Resets)
	if chance > EventChanceCap {
		chance = EventChanceCap
	}
	if t.Rand.Float64() >= chance {
		return nil
	}

	ev := t.newWorldEvent(now)
	s.ActiveEvent = &ev
	return []DomainEvent{newEvent(EventWorldEventStarted, now, map[string]any{
		"event_id": ev.ID,
		"type":     string(ev.Type),
	})}
}

func (t TickService) newWorldEvent(now time.Time) WorldEvent {
	total := 0
	for _, def := range worldEventDefs {
		total += def.Weight
	}
	pick := t.Rand.Intn(total)
	var chosen WorldEventType
	for _, evType := range []WorldEventType{WorldEventFestival, WorldEventInspiration, WorldEventSupplyShortage, WorldEventTaxAudit} {
		pick -= worldEventDefs[evType].Weight
		if pick < 0 {
			chosen = evType
			break
		}
	}
	def := worldEventDefs[chosen]
	return WorldEvent{
		ID:               uuid.NewString(),
		Type:             chosen,
		StartedAt:        now,
		Duration:         def.Duration,
		Effects:          def.Effects,
		IncomeMultiplier: def.IncomeMultiplier,
		CostMultiplier:   def.CostMultiplier,
		TaxRate:          def.TaxRate,
		MoodPenalty:      def.MoodPenalty,
		ReputationDelta:  def.ReputationDelta,
	}
}

func (t TickService) rotateOrders(s *GameState, now time.Time, fx EffectSet) []DomainEvent {
	var events []DomainEvent

	kept := s.Orders[:0]
	for _, o := range s.Orders {
		if now.Before(o.ExpiresAt) {
			kept = append(kept, o)
			continue
		}
		events = append(events, newEvent(EventOrderExpired, now, map[string]any{
			"order_id": o.ID,
		}))
	}
	s.Orders = kept

	if t.Rand == nil {
		return events
	}
	crafts := []CraftType{CraftCarpentry, CraftSmithing, CraftTailoring, CraftAlchemy}
	for len(s.Orders) < MaxOpenOrders {
		reward := MoneyFromFloat(float64(200+t.Rand.Intn(800)) * (1 + fx.RewardMultiplier))
		order := Order{
			ID:        uuid.NewString(),
			Craft:     crafts[t.Rand.Intn(len(crafts))],
			Reward:    reward,
			ExpiresAt: now.Add(OrderLifetime),
		}
		if fx.UnlockCrystalOrders && t.Rand.Intn(4) == 0 {
			order.CrystalReward = int64(1 + t.Rand.Intn(5))
		}
		s.Orders = append(s.Orders, order)
	}
	return events
}
