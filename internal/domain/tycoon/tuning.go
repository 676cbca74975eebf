package tycoon

import "time"

const (
	// One tick simulates one second of play.
	TickSeconds = 1

	TicksPerSave          = 30
	TicksPerEventRoll     = 300
	TicksPerOfferRotation = 600

	WorkshopBaseCapacity = 2
	WorkshopMaxLevel     = 10

	// Gold per working worker per second at workshop level 1, before
	// efficiency and modifiers.
	BaseIncomePerWorker = 5.0
	IncomePerLevelStep  = 0.25

	WorkshopUpkeepPerHour = 40.0

	EfficiencyBonusCap    = 0.50
	CostReductionCap      = 0.50
	PrestigeMultiplierCap = 20.0

	MoodMax    = 100.0
	FatigueMax = 100.0

	MoodFullFactorThreshold = 80.0
	MoodMinFactor           = 0.5
	FatigueMinFactor        = 0.5

	MoodWarnThreshold = 30.0
	QuitMoodThreshold = 20.0
	QuitGraceHours    = 24.0

	// Full fatigue recovery while resting takes 4 real hours.
	RestRecoveryHours   = 4.0
	RestMoodGainPerHour = 2.0

	BaseMoodDecayPerHour   = 1.5
	BaseFatigueGainPerHour = 2.0
	TrainingFatigueFactor  = 0.5

	TrainingCostPerHour  = 120.0
	TrainingXPPerHour    = 40.0
	WorkingXPFraction    = 0.10
	TrainingBonusPerHour = 0.05
	TrainingBonusCap     = 0.5

	XPPerLevel          = 100.0
	LevelEfficiencyStep = 0.05

	SpecializationBonus = 0.15

	OfflineMinSeconds = 60

	PrestigeMinLevel       = 20
	PrestigeEarnedUnit     = 1_000_000.0
	PrestigeMultiplierStep = 0.10

	EventBaseChance     = 0.10
	EventChancePerReset = 0.02
	EventChanceCap      = 0.50

	ReputationDecayPerOfflineDay = 1

	MaxOpenOrders = 3
)

var (
	OfflineBaseWindow    = 4 * time.Hour
	OfflineAdWindow      = 8 * time.Hour
	OfflinePremiumWindow = 24 * time.Hour

	EventMinIntervalBase     = 10 * time.Minute
	EventMinIntervalPerReset = 30 * time.Second
	EventMinIntervalFloor    = 3 * time.Minute

	OrderLifetime    = 30 * time.Minute
	DeliveryLeadTime = 10 * time.Minute
)

var PrestigeStartingGold = MoneyFromInt(500)
