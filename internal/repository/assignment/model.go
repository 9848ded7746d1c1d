package assignment

import "time"

type DriverDB struct {
	ID              int64
	Name            string
	Phone           string
	MaxActiveOrders int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AssignmentDB struct {
	ID         int64
	ShipmentID int64
	DriverID   int64
	Leg        string
	Status     string
	IsActive   bool
	AssignedAt time.Time
	UpdatedAt  time.Time
}

type AssignmentModifyDB struct {
	ID         *int64
	ShipmentID *int64
	DriverID   *int64
	Leg        *string
	Status     *string
	IsActive   *bool
}
