package capacity

import "time"

type VehicleDB struct {
	ID          int64
	PlateNumber string
	MaxLoadKg   float64
	MaxVolumeM3 float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type LoadTrackingDB struct {
	VehicleID         int64
	CurrentLoadKg     float64
	CurrentVolumeM3   float64
	CurrentOrderCount int64
	UpdatedAt         time.Time
}

type ReservationDB struct {
	ID         int64
	VehicleID  int64
	ShipmentID int64
	LoadKg     float64
	VolumeM3   float64
	Status     string
	CreatedAt  time.Time
	ReleasedAt *time.Time
}
