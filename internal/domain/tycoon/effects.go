package tycoon

import "time"

// EffectSet is the aggregated modifier bundle from all bonus sources.
// Additive fields are raw sums; documented caps (efficiency +50%,
// combined cost/wage reduction 50%) are applied at the point of use so
// the raw sums stay inspectable.
type EffectSet struct {
	EfficiencyBonus      float64 `json:"efficiency_bonus"`
	CostReduction        float64 `json:"cost_reduction"`
	WageReduction        float64 `json:"wage_reduction"`
	StorageCostReduction float64 `json:"storage_cost_reduction"`
	ExtraWorkerSlots     int     `json:"extra_worker_slots"`
	RewardMultiplier     float64 `json:"reward_multiplier"`
	TrainingSpeed        float64 `json:"training_speed"`
	IncomeBonus          float64 `json:"income_bonus"`
	RestSpeed            float64 `json:"rest_speed"`
	PassiveMoodRecovery  float64 `json:"passive_mood_recovery"`
	RushBonus            float64 `json:"rush_bonus"`

	UnlockCrystalOrders bool `json:"unlock_crystal_orders"`
}

func (e EffectSet) Add(o EffectSet) EffectSet {
	return EffectSet{
		EfficiencyBonus:      e.EfficiencyBonus + o.EfficiencyBonus,
		CostReduction:        e.CostReduction + o.CostReduction,
		WageReduction:        e.WageReduction + o.WageReduction,
		StorageCostReduction: e.StorageCostReduction + o.StorageCostReduction,
		ExtraWorkerSlots:     e.ExtraWorkerSlots + o.ExtraWorkerSlots,
		RewardMultiplier:     e.RewardMultiplier + o.RewardMultiplier,
		TrainingSpeed:        e.TrainingSpeed + o.TrainingSpeed,
		IncomeBonus:          e.IncomeBonus + o.IncomeBonus,
		RestSpeed:            e.RestSpeed + o.RestSpeed,
		PassiveMoodRecovery:  e.PassiveMoodRecovery + o.PassiveMoodRecovery,
		RushBonus:            e.RushBonus + o.RushBonus,
		UnlockCrystalOrders:  e.UnlockCrystalOrders || o.UnlockCrystalOrders,
	}
}

// EffectSource is any bonus contributor folded into the aggregate.
type EffectSource interface {
	Contribute(EffectSet) EffectSet
}

type researchSource struct{ id string }

func (r researchSource) Contribute(fx EffectSet) EffectSet {
	def, ok := researchDefs[r.id]
	if !ok {
		return fx
	}
	return fx.Add(def.Effects)
}

type shopSource struct{ id string }

func (s shopSource) Contribute(fx EffectSet) EffectSet {
	def, ok := shopItemDefs[s.id]
	if !ok {
		return fx
	}
	return fx.Add(def.Effects)
}

type structureSource struct {
	id   string
	tier int
}

func (s structureSource) Contribute(fx EffectSet) EffectSet {
	def, ok := structureDefs[s.id]
	if !ok || s.tier < 1 {
		return fx
	}
	tier := s.tier
	if tier > def.MaxTier {
		tier = def.MaxTier
	}
	for i := 0; i < tier; i++ {
		fx = fx.Add(def.EffectsPerTier)
	}
	return fx
}

type eventSource struct {
	event *WorldEvent
	now   time.Time
}

func (e eventSource) Contribute(fx EffectSet) EffectSet {
	if e.event == nil || !e.event.ActiveAt(e.now) {
		return fx
	}
	return fx.Add(e.event.Effects)
}

// AggregateEffects folds every bonus source into one net EffectSet.
// Pure function of the state: unknown ids contribute zero, nothing is
// capped here, and calling it twice yields identical results.
func AggregateEffects(s *GameState, now time.Time) EffectSet {
	sources := make([]EffectSource, 0,
		len(s.Research.Completed)+len(s.Prestige.ShopItems)+len(s.Structures)+1)
	for id, done := range s.Research.Completed {
		if done {
			sources = append(sources, researchSource{id: id})
		}
	}
	for id, owned := range s.Prestige.ShopItems {
		if owned {
			sources = append(sources, shopSource{id: id})
		}
	}
	for id, tier := range s.Structures {
		sources = append(sources, structureSource{id: id, tier: tier})
	}
	sources = append(sources, eventSource{event: s.ActiveEvent, now: now})

	var fx EffectSet
	for _, src := range sources {
		fx = src.Contribute(fx)
	}
	return fx
}
