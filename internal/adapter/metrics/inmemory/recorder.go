package inmemory

import (
	"sync"

	"gildworks/internal/domain/tycoon"
)

type Snapshot struct {
	TicksTotal      uint64            `json:"ticks_total"`
	NetApplied      float64           `json:"net_applied"`
	CommandTotal    uint64            `json:"command_total"`
	CommandFailures uint64            `json:"command_failures"`
	ByCommand       map[string]uint64 `json:"by_command"`
	EventsByType    map[string]uint64 `json:"events_by_type"`
}

type Recorder struct {
	mu              sync.Mutex
	ticks           uint64
	netApplied      tycoon.Money
	commandTotal    uint64
	commandFailures uint64
	byCommand       map[string]uint64
	eventsByType    map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byCommand:    map[string]uint64{},
		eventsByType: map[string]uint64{},
	}
}

func (r *Recorder) RecordTick(net tycoon.Money) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
	r.netApplied += net
}

func (r *Recorder) RecordCommand(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commandTotal++
	r.byCommand[name]++
	if err != nil {
		r.commandFailures++
	}
}

func (r *Recorder) RecordEvents(events []tycoon.DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ev := range events {
		r.eventsByType[ev.Type]++
	}
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		TicksTotal:      r.ticks,
		NetApplied:      r.netApplied.Float(),
		CommandTotal:    r.commandTotal,
		CommandFailures: r.commandFailures,
		ByCommand:       make(map[string]uint64, len(r.byCommand)),
		EventsByType:    make(map[string]uint64, len(r.eventsByType)),
	}
	for k, v := range r.byCommand {
		out.ByCommand[k] = v
	}
	for k, v := range r.eventsByType {
		out.EventsByType[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
