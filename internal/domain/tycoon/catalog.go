package tycoon

import "time"

type tierDef struct {
	Name           string
	WagePerHour    float64
	BaseEfficiency float64
	MaxLevel       int
	HireCost       Money
}

var tierDefs = map[WorkerTier]tierDef{
	TierNovice:     {Name: "novice", WagePerHour: 10, BaseEfficiency: 1.0, MaxLevel: 5, HireCost: MoneyFromInt(200)},
	TierApprentice: {Name: "apprentice", WagePerHour: 22, BaseEfficiency: 1.4, MaxLevel: 8, HireCost: MoneyFromInt(800)},
	TierJourneyman: {Name: "journeyman", WagePerHour: 45, BaseEfficiency: 1.9, MaxLevel: 12, HireCost: MoneyFromInt(3_000)},
	TierMaster:     {Name: "master", WagePerHour: 90, BaseEfficiency: 2.6, MaxLevel: 15, HireCost: MoneyFromInt(12_000)},
}

type personalityDef struct {
	MoodDecayWeight float64
	FatigueWeight   float64
	EfficiencyMult  float64
}

var personalityDefs = map[Personality]personalityDef{
	PersonalitySteady:   {MoodDecayWeight: 1.0, FatigueWeight: 1.0, EfficiencyMult: 1.0},
	PersonalityCheerful: {MoodDecayWeight: 0.6, FatigueWeight: 1.0, EfficiencyMult: 0.95},
	PersonalityGrumpy:   {MoodDecayWeight: 1.5, FatigueWeight: 0.9, EfficiencyMult: 1.05},
	PersonalityDiligent: {MoodDecayWeight: 1.1, FatigueWeight: 1.3, EfficiencyMult: 1.15},
	PersonalityRestless: {MoodDecayWeight: 0.9, FatigueWeight: 1.4, EfficiencyMult: 1.0},
}

type ResearchDef struct {
	Name            string
	Cost            Money
	DurationSeconds int64
	Effects         EffectSet
}

var researchDefs = map[string]ResearchDef{
	"ergonomics": {
		Name: "Ergonomics", Cost: MoneyFromInt(2_000), DurationSeconds: 600,
		Effects: EffectSet{EfficiencyBonus: 0.10},
	},
	"bookkeeping": {
		Name: "Bookkeeping", Cost: MoneyFromInt(3_500), DurationSeconds: 900,
		Effects: EffectSet{CostReduction: 0.10},
	},
	"guild_contracts": {
		Name: "Guild Contracts", Cost: MoneyFromInt(5_000), DurationSeconds: 1_200,
		Effects: EffectSet{WageReduction: 0.10, RewardMultiplier: 0.10},
	},
	"master_classes": {
		Name: "Master Classes", Cost: MoneyFromInt(8_000), DurationSeconds: 1_800,
		Effects: EffectSet{TrainingSpeed: 0.25},
	},
	"assembly_lines": {
		Name: "Assembly Lines", Cost: MoneyFromInt(15_000), DurationSeconds: 3_600,
		Effects: EffectSet{EfficiencyBonus: 0.15, ExtraWorkerSlots: 1},
	},
}

type ShopItemDef struct {
	Name        string
	CrystalCost int64
	Effects     EffectSet
}

// Prestige-shop items are bought with crystals and survive resets.
var shopItemDefs = map[string]ShopItemDef{
	"golden_ledger":   {Name: "Golden Ledger", CrystalCost: 50, Effects: EffectSet{IncomeBonus: 0.10}},
	"silver_whistle":  {Name: "Silver Whistle", CrystalCost: 40, Effects: EffectSet{PassiveMoodRecovery: 0.5}},
	"union_charter":   {Name: "Union Charter", CrystalCost: 80, Effects: EffectSet{WageReduction: 0.10}},
	"rush_permit":     {Name: "Rush Permit", CrystalCost: 120, Effects: EffectSet{RushBonus: 0.5}},
	"crystal_charter": {Name: "Crystal Charter", CrystalCost: 150, Effects: EffectSet{UnlockCrystalOrders: true}},
}

type StructureDef struct {
	Name           string
	MaxTier        int
	BaseCost       Money
	EffectsPerTier EffectSet
	Storage        bool
}

// A structure's contribution scales linearly with its built tier.
// Storage-type cost reduction is only half-weighted by the tick engine.
var structureDefs = map[string]StructureDef{
	"dormitory":  {Name: "Dormitory", MaxTier: 3, BaseCost: MoneyFromInt(4_000), EffectsPerTier: EffectSet{RestSpeed: 0.20}},
	"storehouse": {Name: "Storehouse", MaxTier: 3, BaseCost: MoneyFromInt(6_000), EffectsPerTier: EffectSet{StorageCostReduction: 0.10}, Storage: true},
	"guildhall":  {Name: "Guildhall", MaxTier: 2, BaseCost: MoneyFromInt(10_000), EffectsPerTier: EffectSet{ExtraWorkerSlots: 1}},
	"academy":    {Name: "Academy", MaxTier: 2, BaseCost: MoneyFromInt(8_000), EffectsPerTier: EffectSet{TrainingSpeed: 0.15}},
}

// Collectible artifacts grant a passive multiplicative income bonus.
var artifactDefs = map[string]float64{
	"ancient_hammer": 0.05,
	"gilded_spindle": 0.05,
	"alchemists_eye": 0.08,
	"founders_seal":  0.10,
}

type worldEventDef struct {
	Weight           int
	Duration         time.Duration
	IncomeMultiplier float64
	CostMultiplier   float64
	TaxRate          float64
	MoodPenalty      float64
	ReputationDelta  int
	Effects          EffectSet
}

var worldEventDefs = map[WorldEventType]worldEventDef{
	WorldEventFestival: {
		Weight: 4, Duration: 10 * time.Minute,
		IncomeMultiplier: 1.5, CostMultiplier: 1.0,
	},
	WorldEventInspiration: {
		Weight: 3, Duration: 5 * time.Minute,
		IncomeMultiplier: 1.25, CostMultiplier: 1.0,
		Effects: EffectSet{TrainingSpeed: 0.50},
	},
	WorldEventSupplyShortage: {
		Weight: 2, Duration: 8 * time.Minute,
		IncomeMultiplier: 0.8, CostMultiplier: 1.4,
		MoodPenalty: 5, ReputationDelta: -1,
	},
	WorldEventTaxAudit: {
		Weight: 1, Duration: 6 * time.Minute,
		IncomeMultiplier: 1.0, CostMultiplier: 1.0,
		TaxRate: 0.15, ReputationDelta: -2,
	},
}

// TierDef exposes catalog data the market and presentation layers need.
func TierDef(t WorkerTier) (name string, hireCost Money, ok bool) {
	def, found := tierDefs[t]
	if !found {
		return "", 0, false
	}
	return def.Name, def.HireCost, true
}

func ResearchCatalog() map[string]ResearchDef { return researchDefs }

func ShopCatalog() map[string]ShopItemDef { return shopItemDefs }

func WorkshopUpgradeCost(level int) Money {
	base := 1_000.0
	cost := base
	for i := 1; i < level; i++ {
		cost *= 2.2
	}
	return MoneyFromFloat(cost)
}

func StructureCost(id string, tier int) (Money, bool) {
	def, ok := structureDefs[id]
	if !ok || tier < 1 || tier > def.MaxTier {
		return 0, false
	}
	return def.BaseCost.MulFloat(float64(tier)), true
}
