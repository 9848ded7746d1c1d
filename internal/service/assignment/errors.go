package assignment

import "errors"

var (
	ErrInvalidShipmentID = errors.New("invalid shipment id")
	ErrInvalidDriverID   = errors.New("invalid driver id")
	ErrInvalidLeg        = errors.New("invalid assignment leg")

	ErrDriverNotFound     = errors.New("driver not found")
	ErrAssignmentNotFound = errors.New("assignment not found")

	ErrDriverAtCapacity    = errors.New("driver at max active orders")
	ErrAssignmentExists    = errors.New("active assignment already exists")
	ErrInvalidStatusChange = errors.New("invalid assignment status change")
	ErrAssignmentTerminal  = errors.New("assignment already terminal")

	ErrConflict = errors.New("concurrent write conflict")
)
