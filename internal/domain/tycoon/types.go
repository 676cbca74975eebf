package tycoon

import "time"

type CraftType string

const (
	CraftCarpentry CraftType = "carpentry"
	CraftSmithing  CraftType = "smithing"
	CraftTailoring CraftType = "tailoring"
	CraftAlchemy   CraftType = "alchemy"
)

type WorkerTier int

const (
	TierNovice WorkerTier = iota + 1
	TierApprentice
	TierJourneyman
	TierMaster
)

type Personality string

const (
	PersonalitySteady   Personality = "steady"
	PersonalityCheerful Personality = "cheerful"
	PersonalityGrumpy   Personality = "grumpy"
	PersonalityDiligent Personality = "diligent"
	PersonalityRestless Personality = "restless"
)

type WorkerStatus string

const (
	StatusWorking  WorkerStatus = "working"
	StatusResting  WorkerStatus = "resting"
	StatusTraining WorkerStatus = "training"
)

type TrainingKind string

const (
	TrainEfficiency TrainingKind = "efficiency"
	TrainEndurance  TrainingKind = "endurance"
	TrainMorale     TrainingKind = "morale"
)

type Worker struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Tier             WorkerTier   `json:"tier"`
	Talent           float64      `json:"talent"`
	Personality      Personality  `json:"personality"`
	Specialization   CraftType    `json:"specialization,omitempty"`
	AssignedWorkshop string       `json:"assigned_workshop,omitempty"`
	Mood             float64      `json:"mood"`
	Fatigue          float64      `json:"fatigue"`
	Level            int          `json:"level"`
	XP               float64      `json:"xp"`
	EnduranceBonus   float64      `json:"endurance_bonus"`
	MoraleBonus      float64      `json:"morale_bonus"`
	Status           WorkerStatus `json:"status"`
	Training         TrainingKind `json:"training,omitempty"`
	QuitDeadline     *time.Time   `json:"quit_deadline,omitempty"`
	LifetimeEarned   Money        `json:"lifetime_earned"`
}

type Workshop struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Craft           CraftType `json:"craft"`
	Level           int       `json:"level"`
	Workers         []*Worker `json:"workers"`
	ExtraSlots      int       `json:"extra_slots"`
	LifetimeEarned  Money     `json:"lifetime_earned"`
	CompletedOrders int64     `json:"completed_orders"`
	Starter         bool      `json:"starter"`
}

// Capacity is the roster bound: grows with level plus any extra-slot
// effect propagated by the tick engine.
func (w *Workshop) Capacity() int {
	return WorkshopBaseCapacity + w.Level + w.ExtraSlots
}

func (w *Workshop) WorkingCount() int {
	n := 0
	for _, wk := range w.Workers {
		if wk.Status == StatusWorking {
			n++
		}
	}
	return n
}

type WorldEventType string

const (
	WorldEventFestival       WorldEventType = "festival"
	WorldEventTaxAudit       WorldEventType = "tax_audit"
	WorldEventSupplyShortage WorldEventType = "supply_shortage"
	WorldEventInspiration    WorldEventType = "inspiration"
)

type WorldEvent struct {
	ID               string         `json:"id"`
	Type             WorldEventType `json:"type"`
	StartedAt        time.Time      `json:"started_at"`
	Duration         time.Duration  `json:"duration"`
	Effects          EffectSet      `json:"effects"`
	IncomeMultiplier float64        `json:"income_multiplier"`
	CostMultiplier   float64        `json:"cost_multiplier"`
	TaxRate          float64        `json:"tax_rate"`
	MoodPenalty      float64        `json:"mood_penalty"`
	ReputationDelta  int            `json:"reputation_delta"`
	AffectedWorkshop string         `json:"affected_workshop,omitempty"`
}

func (e WorldEvent) ActiveAt(now time.Time) bool {
	return !now.Before(e.StartedAt) && now.Before(e.StartedAt.Add(e.Duration))
}

type ActiveResearch struct {
	NodeID           string `json:"node_id"`
	RemainingSeconds int64  `json:"remaining_seconds"`
}

type ResearchState struct {
	Completed map[string]bool `json:"completed"`
	Active    *ActiveResearch `json:"active,omitempty"`
}

type Order struct {
	ID            string    `json:"id"`
	Craft         CraftType `json:"craft"`
	Reward        Money     `json:"reward"`
	CrystalReward int64     `json:"crystal_reward"`
	ExpiresAt     time.Time `json:"expires_at"`
}

type Delivery struct {
	ID        string    `json:"id"`
	Gold      Money     `json:"gold"`
	ArrivesAt time.Time `json:"arrives_at"`
}

type PrestigeData struct {
	Multiplier float64         `json:"multiplier"`
	Resets     int             `json:"resets"`
	ShopItems  map[string]bool `json:"shop_items"`
}

type Statistics struct {
	TicksRun         int64 `json:"ticks_run"`
	SessionSeconds   int64 `json:"session_seconds"`
	TotalPlaySeconds int64 `json:"total_play_seconds"`
	OfflineGrants    int64 `json:"offline_grants"`
	WorkersQuit      int64 `json:"workers_quit"`
	OrdersCompleted  int64 `json:"orders_completed"`
}

// GameState is the root aggregate. One instance per process, owned by
// the engine behind an exclusive lock; everything below is plain data.
type GameState struct {
	Gold           Money `json:"gold"`
	Crystals       int64 `json:"crystals"`
	LifetimeEarned Money `json:"lifetime_earned"`
	LifetimeSpent  Money `json:"lifetime_spent"`

	PlayerLevel int     `json:"player_level"`
	PlayerXP    float64 `json:"player_xp"`
	Reputation  int     `json:"reputation"`

	Workshops  []*Workshop    `json:"workshops"`
	Research   ResearchState  `json:"research"`
	Structures map[string]int `json:"structures"`
	Artifacts  []string       `json:"artifacts"`

	ActiveEvent        *WorldEvent `json:"active_event,omitempty"`
	LastAppliedEventID string      `json:"last_applied_event_id,omitempty"`
	LastEventEndedAt   time.Time   `json:"last_event_ended_at"`

	SpeedBoostUntil time.Time `json:"speed_boost_until"`
	RushBoostUntil  time.Time `json:"rush_boost_until"`

	AdOfflineExtension bool `json:"ad_offline_extension"`
	Premium            bool `json:"premium"`
	TutorialDone       bool `json:"tutorial_done"`

	Achievements []string          `json:"achievements"`
	Settings     map[string]string `json:"settings"`

	Orders     []Order    `json:"orders"`
	Deliveries []Delivery `json:"deliveries"`

	Prestige PrestigeData `json:"prestige"`
	Stats    Statistics   `json:"stats"`

	LastPlayedAt time.Time `json:"last_played_at"`
	LastSavedAt  time.Time `json:"last_saved_at"`

	Version int64 `json:"version"`
}

func (s *GameState) FindWorkshop(id string) *Workshop {
	for _, ws := range s.Workshops {
		if ws.ID == id {
			return ws
		}
	}
	return nil
}

func (s *GameState) FindWorker(id string) (*Workshop, *Worker) {
	for _, ws := range s.Workshops {
		for _, w := range ws.Workers {
			if w.ID == id {
				return ws, w
			}
		}
	}
	return nil, nil
}

// AddGold credits earned income and tracks the lifetime total that
// prestige is computed from.
func (s *GameState) AddGold(amount Money) {
	if amount <= 0 {
		return
	}
	s.Gold += amount
	s.LifetimeEarned += amount
}

// SpendGold debits gold if affordable. Insufficient funds is a normal
// outcome, never an error.
func (s *GameState) SpendGold(amount Money) bool {
	if amount < 0 || s.Gold < amount {
		return false
	}
	s.Gold -= amount
	s.LifetimeSpent += amount
	return true
}

func (s *GameState) AddCrystals(amount int64) {
	if amount > 0 {
		s.Crystals += amount
	}
}

func (s *GameState) SpendCrystals(amount int64) bool {
	if amount < 0 || s.Crystals < amount {
		return false
	}
	s.Crystals -= amount
	return true
}

// ApplyNet applies a tick's net income. Positive nets are credited in
// full; negative nets deduct at most the current balance, so passive
// costs can drain gold to exactly zero but never below.
func (s *GameState) ApplyNet(net Money) Money {
	if net >= 0 {
		s.AddGold(net)
		return net
	}
	loss := -net
	if loss > s.Gold {
		loss = s.Gold
	}
	s.Gold -= loss
	return -loss
}

func (s *GameState) SpeedBoostActive(now time.Time) bool {
	return now.Before(s.SpeedBoostUntil)
}

func (s *GameState) RushBoostActive(now time.Time) bool {
	return now.Before(s.RushBoostUntil)
}
