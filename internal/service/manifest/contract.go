//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=manifest_test
package manifest

import (
	"context"
	"time"

	"engine/internal/entities"
)

type Repository interface {
	CreateManifest(ctx context.Context, manifest entities.TransitManifest) (*entities.TransitManifest, error)
	GetManifestForUpdate(ctx context.Context, id int64) (*entities.TransitManifest, error)
	UpdateManifestStatus(ctx context.Context, id int64, status entities.ManifestStatusType, departedAt, arrivedAt *time.Time) (*entities.TransitManifest, error)

	// GetActiveItemByShipment ищет не-removed строку на незакрытом манифесте.
	GetActiveItemByShipment(ctx context.Context, shipmentID int64) (*entities.TransitManifestItem, error)
	CreateItem(ctx context.Context, item entities.TransitManifestItem) (*entities.TransitManifestItem, error)
	MarkItemRemoved(ctx context.Context, itemID int64) error
	// MarkItemsDelivered переводит все ADDED строки манифеста в DELIVERED,
	// освобождая отправки для членства в следующем манифесте.
	MarkItemsDelivered(ctx context.Context, manifestID int64) error
	CountActiveItems(ctx context.Context, manifestID int64) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
