package engine

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"gildworks/internal/app/ports"
	"gildworks/internal/domain/tycoon"
)

// Listener receives domain events synchronously, in-process. A
// panicking listener is recovered and never aborts a tick.
type Listener func(tycoon.DomainEvent)

type Config struct {
	State *tycoon.GameState
	// PersistedVersion is the version of the row the state was loaded
	// from, or zero for a fresh state.
	PersistedVersion int64
	Interval         time.Duration
	StateRepo        ports.GameStateRepository
	EventRepo        ports.EventRepository
	Metrics          ports.EngineMetrics
	Rand             *rand.Rand
	Now              func() time.Time
}

// Engine owns the game state for the process lifetime. The tick
// driver and every externally-reachable mutation share one mutex, so
// concurrent afford/spend pairs can never race into a negative
// balance. Nothing inside a tick blocks: saves are fire-and-forget.
type Engine struct {
	mu        sync.Mutex
	state     *tycoon.GameState
	svc       tycoon.TickService
	interval  time.Duration
	stateRepo ports.GameStateRepository
	eventRepo ports.EventRepository
	metrics   ports.EngineMetrics
	now       func() time.Time

	listeners []Listener

	sessionStart time.Time
	paused       bool

	persistedMu      sync.Mutex
	persistedVersion int64

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func New(cfg Config) *Engine {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		state:            cfg.State,
		sessionStart:     cfg.Now(),
		svc:              tycoon.TickService{Rand: cfg.Rand},
		interval:         cfg.Interval,
		stateRepo:        cfg.StateRepo,
		eventRepo:        cfg.EventRepo,
		metrics:          cfg.Metrics,
		now:              cfg.Now,
		persistedVersion: cfg.PersistedVersion,
		stopCh:           make(chan struct{}),
	}
}

// Start launches the tick driver goroutine.
func (e *Engine) Start() {
	e.mu.Lock()
	e.sessionStart = e.now()
	e.mu.Unlock()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-e.stopCh:
				return
			case <-ticker.C:
				e.RunTick()
			}
		}
	}()
}

// RunTick executes one tick immediately. The driver calls it on its
// cadence; tests call it directly.
func (e *Engine) RunTick() {
	e.mu.Lock()
	if e.paused {
		e.mu.Unlock()
		return
	}
	now := e.now()
	res := e.svc.Tick(e.state, now)
	e.state.Stats.SessionSeconds = int64(now.Sub(e.sessionStart).Seconds())
	for i := range res.Events {
		if res.Events[i].Type == tycoon.EventTickCompleted {
			res.Events[i].Payload["session_seconds"] = e.state.Stats.SessionSeconds
		}
	}
	listeners := e.snapshotListeners()
	e.mu.Unlock()

	if e.metrics != nil {
		e.metrics.RecordTick(res.Applied)
		e.metrics.RecordEvents(res.Events)
	}
	e.emit(listeners, res.Events)

	if res.SaveRequested {
		go e.save(context.Background())
	}
}

// Do runs a named mutating command under the engine lock and emits
// whatever events it produced.
func (e *Engine) Do(name string, fn func(*tycoon.GameState) ([]tycoon.DomainEvent, error)) error {
	e.mu.Lock()
	events, err := fn(e.state)
	listeners := e.snapshotListeners()
	e.mu.Unlock()

	if e.metrics != nil {
		e.metrics.RecordCommand(name, err)
	}
	if err != nil {
		return err
	}
	if e.metrics != nil && len(events) > 0 {
		e.metrics.RecordEvents(events)
	}
	e.emit(listeners, events)
	return nil
}

// Snapshot returns a deep copy of the current state for readers.
func (e *Engine) Snapshot() *tycoon.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

func (e *Engine) Subscribe(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// Pause stops ticking and flushes the session counter. Paused time is
// excluded from play-time statistics and never counted as absence.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.paused {
		return
	}
	now := e.now()
	e.state.Stats.TotalPlaySeconds += int64(now.Sub(e.sessionStart).Seconds())
	e.state.Stats.SessionSeconds = 0
	e.state.LastPlayedAt = now
	e.paused = true
}

func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.paused {
		return
	}
	now := e.now()
	e.sessionStart = now
	// Pause is not absence: offline reconciliation must only ever see
	// the window between a genuine stop and a resume.
	e.state.LastPlayedAt = now
	e.paused = false
}

// Stop is terminal for the process lifetime: it halts the driver,
// flushes session time and performs one final synchronous save.
func (e *Engine) Stop(ctx context.Context) error {
	e.stopOnce.Do(func() { close(e.stopCh) })
	e.wg.Wait()

	e.mu.Lock()
	if !e.paused {
		now := e.now()
		e.state.Stats.TotalPlaySeconds += int64(now.Sub(e.sessionStart).Seconds())
		e.state.LastPlayedAt = now
	}
	e.mu.Unlock()

	return e.save(ctx)
}

func (e *Engine) save(ctx context.Context) error {
	if e.stateRepo == nil {
		return nil
	}
	e.persistedMu.Lock()
	defer e.persistedMu.Unlock()

	e.mu.Lock()
	e.state.Version++
	e.state.LastSavedAt = e.now()
	snap := e.state.Clone()
	e.mu.Unlock()

	if err := e.stateRepo.SaveWithVersion(ctx, snap, e.persistedVersion); err != nil {
		// Keep simulating; the next cadence retries.
		log.Printf("engine: save failed: %v", err)
		return err
	}
	e.persistedVersion = snap.Version
	return nil
}

func (e *Engine) snapshotListeners() []Listener {
	out := make([]Listener, len(e.listeners))
	copy(out, e.listeners)
	return out
}

func (e *Engine) emit(listeners []Listener, events []tycoon.DomainEvent) {
	if len(events) == 0 {
		return
	}
	if e.eventRepo != nil {
		go func(evs []tycoon.DomainEvent) {
			if err := e.eventRepo.Append(context.Background(), evs); err != nil {
				log.Printf("engine: event append failed: %v", err)
			}
		}(events)
	}
	for _, l := range listeners {
		for _, ev := range events {
			deliver(l, ev)
		}
	}
}

func deliver(l Listener, ev tycoon.DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine: listener panic: %v", r)
		}
	}()
	l(ev)
}
