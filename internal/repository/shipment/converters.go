package shipment

import (
	"github.com/AlekSi/pointer"

	"engine/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	shipment := &entities.Shipment{
		ID:                s.ID,
		Code:              s.Code,
		SenderName:        s.SenderName,
		SenderPhone:       s.SenderPhone,
		SenderAddress:     s.SenderAddress,
		ReceiverName:      s.ReceiverName,
		ReceiverPhone:     s.ReceiverPhone,
		ReceiverAddress:   s.ReceiverAddress,
		WeightKg:          s.WeightKg,
		VolumeM3:          s.VolumeM3,
		RouteScope:        s.RouteScope,
		Status:            entities.ShipmentStatusType(s.Status),
		AssignedBranchID:  s.AssignedBranchID,
		AssignedVehicleID: s.AssignedVehicleID,
		QuotedPriceCents:  s.QuotedPriceCents,
		AssignedAt:        s.AssignedAt,
		DeliveredAt:       s.DeliveredAt,
		ClosedAt:          s.ClosedAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	if s.PreIssueStatus != nil {
		shipment.PreIssueStatus = pointer.To(entities.ShipmentStatusType(*s.PreIssueStatus))
	}
	return shipment
}

func FromDomainModify(m *entities.ShipmentModify) *ShipmentModifyDB {
	if m == nil {
		return nil
	}
	modifyDB := &ShipmentModifyDB{}

	if m.ID != nil {
		modifyDB.ID = m.ID
	}
	if m.Status != nil {
		modifyDB.Status = pointer.To(m.Status.String())
	}
	if m.PreIssueStatus != nil {
		modifyDB.PreIssueStatus = pointer.To(m.PreIssueStatus.String())
	}
	if m.AssignedBranchID != nil {
		modifyDB.AssignedBranchID = m.AssignedBranchID
	}
	if m.AssignedVehicleID != nil {
		modifyDB.AssignedVehicleID = m.AssignedVehicleID
	}
	if m.QuotedPriceCents != nil {
		modifyDB.QuotedPriceCents = m.QuotedPriceCents
	}
	if m.AssignedAt != nil {
		modifyDB.AssignedAt = m.AssignedAt
	}
	if m.DeliveredAt != nil {
		modifyDB.DeliveredAt = m.DeliveredAt
	}
	if m.ClosedAt != nil {
		modifyDB.ClosedAt = m.ClosedAt
	}

	return modifyDB
}
