package entities

import "time"

type ManifestStatusType string

const (
	ManifestOpen     ManifestStatusType = "OPEN"
	ManifestLoaded   ManifestStatusType = "LOADED"
	ManifestDeparted ManifestStatusType = "DEPARTED"
	ManifestArrived  ManifestStatusType = "ARRIVED"
	ManifestClosed   ManifestStatusType = "CLOSED"
)

func (s ManifestStatusType) String() string {
	return string(s)
}

// TransitManifest — партия отправок, которую одна машина везёт между двумя
// филиалами.
type TransitManifest struct {
	ID             int64
	OriginBranchID int64
	DestBranchID   int64
	VehicleID      int64
	DriverID       int64
	Status         ManifestStatusType
	DepartedAt     *time.Time
	ArrivedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ManifestItemStatusType string

const (
	ManifestItemAdded     ManifestItemStatusType = "ADDED"
	ManifestItemRemoved   ManifestItemStatusType = "REMOVED"
	ManifestItemDelivered ManifestItemStatusType = "DELIVERED"
)

func (s ManifestItemStatusType) String() string {
	return string(s)
}

// TransitManifestItem: отправка может быть активным (не removed) элементом
// максимум одного открытого манифеста.
type TransitManifestItem struct {
	ID         int64
	ManifestID int64
	ShipmentID int64
	Status     ManifestItemStatusType
	AddedAt    time.Time
	RemovedAt  *time.Time
}
