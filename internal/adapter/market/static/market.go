package staticmarket

import (
	"math/rand"
	"sync"

	"gildworks/internal/domain/tycoon"

	"github.com/google/uuid"
)

var candidateNames = []string{
	"Wren", "Odo", "Mirla", "Casp", "Ilde", "Torv", "Nessa", "Brin",
	"Halvar", "Petra", "Joska", "Ymir", "Selda", "Ruan", "Greta",
}

var crafts = []tycoon.CraftType{
	tycoon.CraftCarpentry, tycoon.CraftSmithing, tycoon.CraftTailoring, tycoon.CraftAlchemy,
}

var personalities = []tycoon.Personality{
	tycoon.PersonalitySteady, tycoon.PersonalityCheerful, tycoon.PersonalityGrumpy,
	tycoon.PersonalityDiligent, tycoon.PersonalityRestless,
}

// Market is the in-process hiring pool. Candidate quality scales with
// player level and prestige resets.
type Market struct {
	mu   sync.Mutex
	rng  *rand.Rand
	pool []*tycoon.Worker
}

func NewMarket(rng *rand.Rand) *Market {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Market{rng: rng}
}

func (m *Market) AvailableWorkers() []*tycoon.Worker {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*tycoon.Worker, len(m.pool))
	copy(out, m.pool)
	return out
}

func (m *Market) Remove(id string) (*tycoon.Worker, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, w := range m.pool {
		if w.ID == id {
			m.pool = append(m.pool[:i], m.pool[i+1:]...)
			return w, true
		}
	}
	return nil, false
}

func (m *Market) Restore(w *tycoon.Worker) {
	if w == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.pool {
		if p.ID == w.ID {
			return
		}
	}
	m.pool = append(m.pool, w)
}

func (m *Market) Regenerate(playerLevel, prestigeCount int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	size := 3 + playerLevel/5
	if size > 8 {
		size = 8
	}
	m.pool = m.pool[:0]
	for i := 0; i < size; i++ {
		m.pool = append(m.pool, m.generate(playerLevel, prestigeCount))
	}
}

func (m *Market) generate(playerLevel, prestigeCount int) *tycoon.Worker {
	// Higher progress shifts the tier distribution upward.
	weight := m.rng.Intn(10) + playerLevel/5 + prestigeCount*2
	tier := tycoon.TierNovice
	switch {
	case weight >= 16:
		tier = tycoon.TierMaster
	case weight >= 12:
		tier = tycoon.TierJourneyman
	case weight >= 8:
		tier = tycoon.TierApprentice
	}

	w := &tycoon.Worker{
		ID:          uuid.NewString(),
		Name:        candidateNames[m.rng.Intn(len(candidateNames))],
		Tier:        tier,
		Talent:      0.85 + m.rng.Float64()*0.3,
		Personality: personalities[m.rng.Intn(len(personalities))],
		Mood:        70 + m.rng.Float64()*30,
		Level:       1,
		Status:      tycoon.StatusWorking,
	}
	if m.rng.Intn(3) == 0 {
		w.Specialization = crafts[m.rng.Intn(len(crafts))]
	}
	return w
}
