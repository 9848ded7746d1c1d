package manifest

import "errors"

var (
	ErrInvalidManifestID = errors.New("invalid manifest id")
	ErrInvalidShipmentID = errors.New("invalid shipment id")
	ErrInvalidBranches   = errors.New("origin and destination branches must differ")

	ErrManifestNotFound = errors.New("manifest not found")
	ErrItemNotFound     = errors.New("manifest item not found")

	ErrAlreadyManifested   = errors.New("shipment already on another open manifest")
	ErrManifestNotOpen     = errors.New("manifest does not accept items")
	ErrEmptyManifest       = errors.New("manifest has no active items")
	ErrInvalidManifestMove = errors.New("invalid manifest status change")

	ErrConflict = errors.New("concurrent write conflict")
)
