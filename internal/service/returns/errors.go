package returns

import "errors"

var (
	ErrInvalidShipmentID  = errors.New("invalid shipment id")
	ErrInvalidReturnOrder = errors.New("invalid return order id")
	ErrInvalidReasonCode  = errors.New("invalid reason code")
	ErrInvalidFinalAction = errors.New("invalid final action")

	ErrReturnOrderNotFound = errors.New("return order not found")
	ErrHoldNotFound        = errors.New("policy hold not found")

	ErrHoldAlreadyStarted = errors.New("policy hold already started")
	ErrHoldNotElapsed     = errors.New("hold window has not elapsed")
	ErrAlreadyDecided     = errors.New("final action already decided")

	ErrConflict = errors.New("concurrent write conflict")
)
