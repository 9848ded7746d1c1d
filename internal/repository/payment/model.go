package payment

import "time"

type IntentDB struct {
	ID                      int64
	ShipmentID              int64
	Method                  string
	AmountCents             int64
	Status                  string
	ExpiresAt               *time.Time
	FallbackPaymentIntentID *int64
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

type IntentModifyDB struct {
	ID                      *int64
	ShipmentID              *int64
	Method                  *string
	AmountCents             *int64
	Status                  *string
	ExpiresAt               *time.Time
	FallbackPaymentIntentID *int64
}
