package eventlog

import "time"

type ShipmentEventDB struct {
	ID         int64
	ShipmentID int64
	OldStatus  *string
	NewStatus  string
	ActorType  string
	ActorID    int64
	EventAt    time.Time
}
