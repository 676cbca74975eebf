package ports

import "gildworks/internal/domain/tycoon"

type EngineMetrics interface {
	RecordTick(net tycoon.Money)
	RecordCommand(name string, err error)
	RecordEvents(events []tycoon.DomainEvent)
}
