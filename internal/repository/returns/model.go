package returns

import "time"

type ReturnOrderDB struct {
	ID                 int64
	OriginalShipmentID int64
	ReturnShipmentID   *int64
	ReasonCode         string
	CreatedAt          time.Time
}

type HoldDB struct {
	ID               int64
	ReturnOrderID    int64
	HoldStartAt      time.Time
	HoldUntilAt      time.Time
	CustomerPickupAt *time.Time
	FinalAction      *string
	DecidedAt        *time.Time
}
