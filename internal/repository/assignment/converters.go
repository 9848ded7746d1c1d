package assignment

import (
	"github.com/AlekSi/pointer"

	"engine/internal/entities"
)

func ToDriverDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:              d.ID,
		Name:            d.Name,
		Phone:           d.Phone,
		MaxActiveOrders: d.MaxActiveOrders,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func ToDomain(a *AssignmentDB) *entities.DriverAssignment {
	if a == nil {
		return nil
	}
	return &entities.DriverAssignment{
		ID:         a.ID,
		ShipmentID: a.ShipmentID,
		DriverID:   a.DriverID,
		Leg:        entities.AssignmentLegType(a.Leg),
		Status:     entities.AssignmentStatusType(a.Status),
		IsActive:   a.IsActive,
		AssignedAt: a.AssignedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func FromDomainModify(m *entities.DriverAssignmentModify) *AssignmentModifyDB {
	if m == nil {
		return nil
	}
	modifyDB := &AssignmentModifyDB{}

	if m.ID != nil {
		modifyDB.ID = m.ID
	}
	if m.ShipmentID != nil {
		modifyDB.ShipmentID = m.ShipmentID
	}
	if m.DriverID != nil {
		modifyDB.DriverID = m.DriverID
	}
	if m.Leg != nil {
		modifyDB.Leg = pointer.To(m.Leg.String())
	}
	if m.Status != nil {
		modifyDB.Status = pointer.To(m.Status.String())
	}
	if m.IsActive != nil {
		modifyDB.IsActive = m.IsActive
	}

	return modifyDB
}
