package eventlog

import (
	"github.com/AlekSi/pointer"

	"engine/internal/entities"
)

func ToDomain(e *ShipmentEventDB) *entities.ShipmentEvent {
	if e == nil {
		return nil
	}
	event := &entities.ShipmentEvent{
		ID:         e.ID,
		ShipmentID: e.ShipmentID,
		NewStatus:  entities.ShipmentStatusType(e.NewStatus),
		ActorType:  entities.ActorType(e.ActorType),
		ActorID:    e.ActorID,
		EventAt:    e.EventAt,
	}
	if e.OldStatus != nil {
		event.OldStatus = pointer.To(entities.ShipmentStatusType(*e.OldStatus))
	}
	return event
}

func ToDomainList(events []ShipmentEventDB) []entities.ShipmentEvent {
	result := make([]entities.ShipmentEvent, 0, len(events))
	for i := range events {
		result = append(result, *ToDomain(&events[i]))
	}
	return result
}
