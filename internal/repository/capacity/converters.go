package capacity

import (
	"engine/internal/entities"
)

func ToVehicleDomain(v *VehicleDB) *entities.Vehicle {
	if v == nil {
		return nil
	}
	return &entities.Vehicle{
		ID:          v.ID,
		PlateNumber: v.PlateNumber,
		MaxLoadKg:   v.MaxLoadKg,
		MaxVolumeM3: v.MaxVolumeM3,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func ToLoadDomain(l *LoadTrackingDB) *entities.VehicleLoadTracking {
	if l == nil {
		return nil
	}
	return &entities.VehicleLoadTracking{
		VehicleID:         l.VehicleID,
		CurrentLoadKg:     l.CurrentLoadKg,
		CurrentVolumeM3:   l.CurrentVolumeM3,
		CurrentOrderCount: l.CurrentOrderCount,
		UpdatedAt:         l.UpdatedAt,
	}
}

func ToReservationDomain(r *ReservationDB) *entities.CapacityReservation {
	if r == nil {
		return nil
	}
	return &entities.CapacityReservation{
		ID:         r.ID,
		VehicleID:  r.VehicleID,
		ShipmentID: r.ShipmentID,
		LoadKg:     r.LoadKg,
		VolumeM3:   r.VolumeM3,
		Status:     entities.ReservationStatusType(r.Status),
		CreatedAt:  r.CreatedAt,
		ReleasedAt: r.ReleasedAt,
	}
}
