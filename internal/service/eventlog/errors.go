package eventlog

import "errors"

var (
	ErrInvalidShipmentID = errors.New("invalid shipment id")
	ErrInvalidBranchID   = errors.New("invalid branch id")
	ErrInvalidAttemptNo  = errors.New("invalid attempt number")
	ErrUnknownCallType   = errors.New("unknown call type")
	ErrUnknownRole       = errors.New("unknown warehouse role")
	ErrUnknownScanType   = errors.New("unknown scan type")
)
