package entities

import "time"

type ReturnOrder struct {
	ID                 int64
	OriginalShipmentID int64
	ReturnShipmentID   *int64
	ReasonCode         string
	CreatedAt          time.Time
}

type ReturnFinalActionType string

const (
	ReturnToOrigin  ReturnFinalActionType = "RETURNED_TO_ORIGIN"
	ReturnDispose   ReturnFinalActionType = "DISPOSED"
	ReturnRedeliver ReturnFinalActionType = "REDELIVERED"
)

func (t ReturnFinalActionType) String() string {
	return string(t)
}

func (t ReturnFinalActionType) IsKnown() bool {
	switch t {
	case ReturnToOrigin, ReturnDispose, ReturnRedeliver:
		return true
	default:
		return false
	}
}

// ReturnPolicyHold — окно ожидания, в течение которого решается судьба
// невостребованной отправки. Decide допустим после истечения окна либо после
// явного события раннего самовывоза.
type ReturnPolicyHold struct {
	ID               int64
	ReturnOrderID    int64
	HoldStartAt      time.Time
	HoldUntilAt      time.Time
	CustomerPickupAt *time.Time
	FinalAction      *ReturnFinalActionType
	DecidedAt        *time.Time
}
