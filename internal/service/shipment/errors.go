package shipment

import "errors"

var (
	ErrInvalidShipmentID = errors.New("invalid shipment id")
	ErrUnknownStatus     = errors.New("unknown shipment status")
	ErrShipmentNotFound  = errors.New("shipment not found")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrBranchRequired    = errors.New("branch id required for transition")
	ErrRouteScopeInvalid = errors.New("route scope failed validation")

	ErrPickupNotAccepted   = errors.New("no accepted pickup assignment")
	ErrDeliveryNotAccepted = errors.New("no accepted delivery assignment")
	ErrCapacityNotReserved = errors.New("no committed capacity reservation")
	ErrNotManifested       = errors.New("shipment is not on an open manifest")
	ErrPaymentNotConfirmed = errors.New("no confirmed payment intent")
	ErrPrematureClose      = errors.New("shipment has open sub-entities")
	ErrIssueNotResolved    = errors.New("issue admin task is not resolved")

	// ErrConflict — транзиентная коллизия конкурентной записи. Возвращается
	// после одного внутреннего повтора.
	ErrConflict = errors.New("concurrent write conflict")
)
