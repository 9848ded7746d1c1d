package capacity

import "errors"

var (
	ErrInvalidVehicleID  = errors.New("invalid vehicle id")
	ErrInvalidShipmentID = errors.New("invalid shipment id")
	ErrInvalidQuantities = errors.New("load and volume must be positive")

	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrReservationNotFound = errors.New("reservation not found")

	ErrCapacityExceeded = errors.New("vehicle capacity exceeded")
	ErrAlreadyReserved  = errors.New("shipment already reserved on another vehicle")

	ErrConflict = errors.New("concurrent write conflict")
)
