package entities

import "time"

type PaymentMethodType string

const (
	PaymentOnline PaymentMethodType = "online"
	PaymentCash   PaymentMethodType = "cash"
)

func (t PaymentMethodType) String() string {
	return string(t)
}

type PaymentIntentStatusType string

const (
	IntentPending   PaymentIntentStatusType = "PENDING"
	IntentConfirmed PaymentIntentStatusType = "CONFIRMED"
	IntentFailed    PaymentIntentStatusType = "FAILED"
	IntentExpired   PaymentIntentStatusType = "EXPIRED"
	IntentCancelled PaymentIntentStatusType = "CANCELLED"
)

func (s PaymentIntentStatusType) String() string {
	return string(s)
}

func (s PaymentIntentStatusType) IsTerminal() bool {
	switch s {
	case IntentConfirmed, IntentFailed, IntentExpired, IntentCancelled:
		return true
	default:
		return false
	}
}

// PaymentIntent — одна попытка списания за отправку. У отправки может быть
// много интентов, но максимум один нетерминальный. Просроченный онлайн-интент
// порождает кэш-интент, который ссылается на него через
// FallbackPaymentIntentID; цепочка обязана быть ацикличной.
type PaymentIntent struct {
	ID                      int64
	ShipmentID              int64
	Method                  PaymentMethodType
	AmountCents             int64
	Status                  PaymentIntentStatusType
	ExpiresAt               *time.Time
	FallbackPaymentIntentID *int64
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

type PaymentIntentModify struct {
	ID                      *int64
	ShipmentID              *int64
	Method                  *PaymentMethodType
	AmountCents             *int64
	Status                  *PaymentIntentStatusType
	ExpiresAt               *time.Time
	FallbackPaymentIntentID *int64
}

type PaymentEvent struct {
	ID         int64
	IntentID   int64
	OldStatus  *PaymentIntentStatusType
	NewStatus  PaymentIntentStatusType
	Reason     string
	RawPayload []byte
	EventAt    time.Time
}
