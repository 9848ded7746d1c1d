package payment

import "errors"

var (
	ErrInvalidShipmentID = errors.New("invalid shipment id")
	ErrInvalidIntentID   = errors.New("invalid intent id")
	ErrInvalidMethod     = errors.New("invalid payment method")
	ErrInvalidAmount     = errors.New("amount must be positive")

	ErrIntentNotFound = errors.New("payment intent not found")

	ErrIntentAlreadyOpen = errors.New("non-terminal intent already open for shipment")
	ErrIntentTerminal    = errors.New("intent already terminal")
	ErrNotExpirable      = errors.New("intent is not an expirable online intent")
	ErrNotYetExpired     = errors.New("intent expiry time has not elapsed")
	ErrFallbackCycle     = errors.New("fallback chain cycle detected")

	ErrConflict = errors.New("concurrent write conflict")
)
