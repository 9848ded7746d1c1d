package entities

import "time"

type Driver struct {
	ID              int64
	Name            string
	Phone           string
	MaxActiveOrders int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AssignmentLegType string

const (
	PickupLeg   AssignmentLegType = "PICKUP"
	DeliveryLeg AssignmentLegType = "DELIVERY"
)

func (t AssignmentLegType) String() string {
	return string(t)
}

type AssignmentStatusType string

const (
	AssignmentAssigned   AssignmentStatusType = "ASSIGNED"
	AssignmentAccepted   AssignmentStatusType = "ACCEPTED"
	AssignmentInProgress AssignmentStatusType = "IN_PROGRESS"
	AssignmentCompleted  AssignmentStatusType = "COMPLETED"
	AssignmentCancelled  AssignmentStatusType = "CANCELLED"
)

func (s AssignmentStatusType) String() string {
	return string(s)
}

func (s AssignmentStatusType) IsTerminal() bool {
	return s == AssignmentCompleted || s == AssignmentCancelled
}

// DriverAssignment связывает водителя с отправкой на одно плечо (забор или
// доставка). На пару (shipment, leg) может быть активна максимум одна строка;
// переназначение деактивирует старую строку, а не удаляет её.
type DriverAssignment struct {
	ID         int64
	ShipmentID int64
	DriverID   int64
	Leg        AssignmentLegType
	Status     AssignmentStatusType
	IsActive   bool
	AssignedAt time.Time
	UpdatedAt  time.Time
}

type DriverAssignmentModify struct {
	ID         *int64
	ShipmentID *int64
	DriverID   *int64
	Leg        *AssignmentLegType
	Status     *AssignmentStatusType
	IsActive   *bool
}

type DriverAssignmentHistory struct {
	ID           int64
	AssignmentID int64
	ShipmentID   int64
	Leg          AssignmentLegType
	OldDriverID  int64
	NewDriverID  int64
	OldStatus    AssignmentStatusType
	NewStatus    AssignmentStatusType
	ActorType    ActorType
	ActorID      int64
	ChangedAt    time.Time
}
