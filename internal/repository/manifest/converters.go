package manifest

import (
	"engine/internal/entities"
)

func ToDomain(m *ManifestDB) *entities.TransitManifest {
	if m == nil {
		return nil
	}
	return &entities.TransitManifest{
		ID:             m.ID,
		OriginBranchID: m.OriginBranchID,
		DestBranchID:   m.DestBranchID,
		VehicleID:      m.VehicleID,
		DriverID:       m.DriverID,
		Status:         entities.ManifestStatusType(m.Status),
		DepartedAt:     m.DepartedAt,
		ArrivedAt:      m.ArrivedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToItemDomain(i *ItemDB) *entities.TransitManifestItem {
	if i == nil {
		return nil
	}
	return &entities.TransitManifestItem{
		ID:         i.ID,
		ManifestID: i.ManifestID,
		ShipmentID: i.ShipmentID,
		Status:     entities.ManifestItemStatusType(i.Status),
		AddedAt:    i.AddedAt,
		RemovedAt:  i.RemovedAt,
	}
}
