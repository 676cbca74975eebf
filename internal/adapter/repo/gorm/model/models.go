package model

import "time"

// GameState stores the whole aggregate as a JSONB payload; the
// simulation is a single document, not a relational graph. Version
// backs the optimistic save protocol.
type GameState struct {
	ID        int64  `gorm:"primaryKey"`
	SaveKey   string `gorm:"uniqueIndex;size:64"`
	Payload   []byte `gorm:"type:jsonb"`
	Version   int64
	UpdatedAt time.Time
}

func (GameState) TableName() string { return "game_states" }

type DomainEvent struct {
	ID         int64  `gorm:"primaryKey"`
	Type       string `gorm:"index;size:64"`
	OccurredAt time.Time
	Payload    []byte `gorm:"type:jsonb"`
}

func (DomainEvent) TableName() string { return "domain_events" }
