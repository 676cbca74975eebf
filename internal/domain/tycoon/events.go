package tycoon

import "time"

// DomainEvent is the typed notification emitted by the engine and
// domain services. Delivery is synchronous, in-process, best-effort.
type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventGameCreated       = "game_created"
	EventTickCompleted     = "tick_completed"
	EventWorkerMoodWarning = "worker_mood_warning"
	EventWorkerQuit        = "worker_quit"
	EventWorkerLevelUp     = "worker_level_up"
	EventWorldEventStarted = "world_event_started"
	EventWorldEventEnded   = "world_event_ended"
	EventOrderExpired      = "order_expired"
	EventDeliveryArrived   = "delivery_arrived"
	EventResearchCompleted = "research_completed"
	EventOfflineGranted    = "offline_granted"
	EventPrestigePerformed = "prestige_performed"
)

func newEvent(eventType string, at time.Time, payload map[string]any) DomainEvent {
	if payload == nil {
		payload = map[string]any{}
	}
	return DomainEvent{Type: eventType, OccurredAt: at, Payload: payload}
}
