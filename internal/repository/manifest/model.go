package manifest

import "time"

type ManifestDB struct {
	ID             int64
	OriginBranchID int64
	DestBranchID   int64
	VehicleID      int64
	DriverID       int64
	Status         string
	DepartedAt     *time.Time
	ArrivedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ItemDB struct {
	ID         int64
	ManifestID int64
	ShipmentID int64
	Status     string
	AddedAt    time.Time
	RemovedAt  *time.Time
}
