package entities

import "time"

type Vehicle struct {
	ID          int64
	PlateNumber string
	MaxLoadKg   float64
	MaxVolumeM3 float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VehicleLoadTracking хранит живые счётчики загрузки машины. Счётчики никогда
// не вычисляются сканом отправок: все привязки и отвязки проходят через
// CapacityTracker, который и держит их согласованными.
type VehicleLoadTracking struct {
	VehicleID         int64
	CurrentLoadKg     float64
	CurrentVolumeM3   float64
	CurrentOrderCount int64
	UpdatedAt         time.Time
}

type ReservationStatusType string

const (
	ReservationReserved ReservationStatusType = "RESERVED"
	ReservationReleased ReservationStatusType = "RELEASED"
)

func (s ReservationStatusType) String() string {
	return string(s)
}

// CapacityReservation — учётная запись, уменьшающая остаток грузоподъёмности
// машины. Повторный release уже снятой брони — no-op.
type CapacityReservation struct {
	ID         int64
	VehicleID  int64
	ShipmentID int64
	LoadKg     float64
	VolumeM3   float64
	Status     ReservationStatusType
	CreatedAt  time.Time
	ReleasedAt *time.Time
}
