package tycoon

import "time"

// Player commands that mutate workers, workshops and purchases. Each
// returns a sentinel error for the failure reason; callers treat these
// as outcomes, not faults.

func (s *GameState) HireWorker(workshopID string, w *Worker) error {
	ws := s.FindWorkshop(workshopID)
	if ws == nil {
		return ErrUnknownWorkshop
	}
	if len(ws.Workers) >= ws.Capacity() {
		return ErrRosterFull
	}
	def, ok := tierDefs[w.Tier]
	if !ok {
		return ErrUnknownWorker
	}
	if !s.SpendGold(def.HireCost) {
		return ErrInsufficientGold
	}
	w.Status = StatusWorking
	w.AssignedWorkshop = ws.ID
	ws.Workers = append(ws.Workers, w)
	return nil
}

func (s *GameState) FireWorker(workerID string) error {
	ws, w := s.FindWorker(workerID)
	if w == nil {
		return ErrUnknownWorker
	}
	removeWorker(ws, workerID)
	return nil
}

func (s *GameState) TransferWorker(workerID, toWorkshopID string) error {
	from, w := s.FindWorker(workerID)
	if w == nil {
		return ErrUnknownWorker
	}
	to := s.FindWorkshop(toWorkshopID)
	if to == nil {
		return ErrUnknownWorkshop
	}
	if to == from {
		return nil
	}
	if len(to.Workers) >= to.Capacity() {
		return ErrRosterFull
	}
	removeWorker(from, workerID)
	to.Workers = append(to.Workers, w)
	if w.Status == StatusWorking {
		w.AssignedWorkshop = to.ID
	}
	return nil
}

func (s *GameState) StartRest(workerID string) error {
	_, w := s.FindWorker(workerID)
	if w == nil {
		return ErrUnknownWorker
	}
	if w.Status != StatusWorking {
		return ErrInvalidTransition
	}
	w.Status = StatusResting
	w.AssignedWorkshop = ""
	return nil
}

func (s *GameState) StopRest(workerID string) error {
	ws, w := s.FindWorker(workerID)
	if w == nil {
		return ErrUnknownWorker
	}
	if w.Status != StatusResting {
		return ErrInvalidTransition
	}
	w.Status = StatusWorking
	w.AssignedWorkshop = ws.ID
	return nil
}

func (s *GameState) StartTraining(workerID string, kind TrainingKind) error {
	_, w := s.FindWorker(workerID)
	if w == nil {
		return ErrUnknownWorker
	}
	if w.Status != StatusWorking {
		return ErrInvalidTransition
	}
	switch kind {
	case TrainEfficiency, TrainEndurance, TrainMorale:
	default:
		return ErrInvalidTransition
	}
	w.Status = StatusTraining
	w.Training = kind
	w.AssignedWorkshop = ""
	return nil
}

func (s *GameState) StopTraining(workerID string) error {
	ws, w := s.FindWorker(workerID)
	if w == nil {
		return ErrUnknownWorker
	}
	if w.Status != StatusTraining {
		return ErrInvalidTransition
	}
	w.Status = StatusWorking
	w.Training = ""
	w.AssignedWorkshop = ws.ID
	return nil
}

func (s *GameState) UpgradeWorkshop(workshopID string) error {
	ws := s.FindWorkshop(workshopID)
	if ws == nil {
		return ErrUnknownWorkshop
	}
	if ws.Level >= WorkshopMaxLevel {
		return ErrMaxLevel
	}
	if !s.SpendGold(WorkshopUpgradeCost(ws.Level + 1)) {
		return ErrInsufficientGold
	}
	ws.Level++
	return nil
}

func (s *GameState) StartResearch(nodeID string) error {
	def, ok := researchDefs[nodeID]
	if !ok {
		return ErrUnknownResearch
	}
	if s.Research.Completed[nodeID] {
		return ErrResearchDone
	}
	if s.Research.Active != nil {
		return ErrResearchBusy
	}
	if !s.SpendGold(def.Cost) {
		return ErrInsufficientGold
	}
	s.Research.Active = &ActiveResearch{NodeID: nodeID, RemainingSeconds: def.DurationSeconds}
	return nil
}

func (s *GameState) BuyShopItem(itemID string) error {
	def, ok := shopItemDefs[itemID]
	if !ok {
		return ErrUnknownShopItem
	}
	if s.Prestige.ShopItems[itemID] {
		return ErrAlreadyOwned
	}
	if !s.SpendCrystals(def.CrystalCost) {
		return ErrInsufficientCrystals
	}
	if s.Prestige.ShopItems == nil {
		s.Prestige.ShopItems = map[string]bool{}
	}
	s.Prestige.ShopItems[itemID] = true
	return nil
}

func (s *GameState) BuildStructure(structureID string) error {
	def, ok := structureDefs[structureID]
	if !ok {
		return ErrUnknownStructure
	}
	current := s.Structures[structureID]
	if current >= def.MaxTier {
		return ErrMaxTier
	}
	cost, _ := StructureCost(structureID, current+1)
	if !s.SpendGold(cost) {
		return ErrInsufficientGold
	}
	if s.Structures == nil {
		s.Structures = map[string]int{}
	}
	s.Structures[structureID] = current + 1
	return nil
}

func (s *GameState) ActivateSpeedBoost(now time.Time, d time.Duration, crystalCost int64) error {
	if !s.SpendCrystals(crystalCost) {
		return ErrInsufficientCrystals
	}
	s.SpeedBoostUntil = laterOf(s.SpeedBoostUntil, now).Add(d)
	return nil
}

func (s *GameState) ActivateRushBoost(now time.Time, d time.Duration, crystalCost int64) error {
	if !s.SpendCrystals(crystalCost) {
		return ErrInsufficientCrystals
	}
	s.RushBoostUntil = laterOf(s.RushBoostUntil, now).Add(d)
	return nil
}

// CompleteOrder redeems an open order against a workshop of the
// matching craft. The reward was priced at creation time, so modifier
// changes between then and redemption do not re-price it.
func (s *GameState) CompleteOrder(orderID string, now time.Time) error {
	for i, o := range s.Orders {
		if o.ID != orderID {
			continue
		}
		if now.After(o.ExpiresAt) {
			return ErrUnknownOrder
		}
		s.AddGold(o.Reward)
		s.AddCrystals(o.CrystalReward)
		s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
		s.Stats.OrdersCompleted++
		for _, ws := range s.Workshops {
			if ws.Craft == o.Craft {
				ws.CompletedOrders++
				break
			}
		}
		return nil
	}
	return ErrUnknownOrder
}

func removeWorker(ws *Workshop, workerID string) {
	if ws == nil {
		return
	}
	for i, w := range ws.Workers {
		if w.ID == workerID {
			ws.Workers = append(ws.Workers[:i], ws.Workers[i+1:]...)
			return
		}
	}
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
