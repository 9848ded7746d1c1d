package shipment

import "time"

type ShipmentDB struct {
	ID                int64
	Code              string
	SenderName        string
	SenderPhone       string
	SenderAddress     string
	ReceiverName      string
	ReceiverPhone     string
	ReceiverAddress   string
	WeightKg          float64
	VolumeM3          float64
	RouteScope        string
	Status            string
	PreIssueStatus    *string
	AssignedBranchID  *int64
	AssignedVehicleID *int64
	QuotedPriceCents  *int64
	AssignedAt        *time.Time
	DeliveredAt       *time.Time
	ClosedAt          *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ShipmentModifyDB struct {
	ID                *int64
	Status            *string
	PreIssueStatus    *string
	AssignedBranchID  *int64
	AssignedVehicleID *int64
	QuotedPriceCents  *int64
	AssignedAt        *time.Time
	DeliveredAt       *time.Time
	ClosedAt          *time.Time
}
