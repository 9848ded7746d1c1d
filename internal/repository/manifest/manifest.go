package manifest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"engine/internal/entities"
	"engine/internal/repository"
	"engine/internal/service/manifest"
)

const (
	manifestColumns = `id, origin_branch_id, dest_branch_id, vehicle_id, driver_id,
		status, departed_at, arrived_at, created_at, updated_at`
	itemColumns = `id, manifest_id, shipment_id, status, added_at, removed_at`
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateManifest(ctx context.Context, manifestEntity entities.TransitManifest) (*entities.TransitManifest, error) {
	query := `
		INSERT INTO transit_manifests (origin_branch_id, dest_branch_id, vehicle_id, driver_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + manifestColumns

	manifestDB, err := scanManifest(r.querier.QueryRow(
		ctx,
		query,
		manifestEntity.OriginBranchID,
		manifestEntity.DestBranchID,
		manifestEntity.VehicleID,
		manifestEntity.DriverID,
		manifestEntity.Status.String(),
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected manifest repository create error: %w", err)
	}

	return ToDomain(manifestDB), nil
}

func (r *Repository) GetManifestForUpdate(ctx context.Context, id int64) (*entities.TransitManifest, error) {
	query := `SELECT ` + manifestColumns + ` FROM transit_manifests WHERE id = $1 FOR UPDATE`

	manifestDB, err := scanManifest(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, manifest.ErrManifestNotFound
		}
		return nil, fmt.Errorf("unexpected manifest repository get error: %w", err)
	}

	return ToDomain(manifestDB), nil
}

func (r *Repository) UpdateManifestStatus(ctx context.Context, id int64, status entities.ManifestStatusType, departedAt, arrivedAt *time.Time) (*entities.TransitManifest, error) {
	query := `
		UPDATE transit_manifests
		SET status = $2,
			departed_at = COALESCE($3, departed_at),
			arrived_at = COALESCE($4, arrived_at),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + manifestColumns

	manifestDB, err := scanManifest(r.querier.QueryRow(ctx, query, id, status.String(), departedAt, arrivedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, manifest.ErrManifestNotFound
		}
		return nil, fmt.Errorf("unexpected manifest repository update status error: %w", err)
	}

	return ToDomain(manifestDB), nil
}

func (r *Repository) GetActiveItemByShipment(ctx context.Context, shipmentID int64) (*entities.TransitManifestItem, error) {
	query := `
		SELECT i.id, i.manifest_id, i.shipment_id, i.status, i.added_at, i.removed_at
		FROM transit_manifest_items i
		JOIN transit_manifests m ON m.id = i.manifest_id
		WHERE i.shipment_id = $1 AND i.status = 'ADDED' AND m.status != 'CLOSED'
	`

	itemDB, err := scanItem(r.querier.QueryRow(ctx, query, shipmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, manifest.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected manifest repository get item error: %w", err)
	}

	return ToItemDomain(itemDB), nil
}

func (r *Repository) CreateItem(ctx context.Context, item entities.TransitManifestItem) (*entities.TransitManifestItem, error) {
	query := `
		INSERT INTO transit_manifest_items (manifest_id, shipment_id, status)
		VALUES ($1, $2, $3)
		RETURNING ` + itemColumns

	itemDB, err := scanItem(r.querier.QueryRow(
		ctx,
		query,
		item.ManifestID,
		item.ShipmentID,
		item.Status.String(),
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, manifest.ErrAlreadyManifested
		}
		return nil, fmt.Errorf("unexpected manifest repository create item error: %w", err)
	}

	return ToItemDomain(itemDB), nil
}

func (r *Repository) MarkItemRemoved(ctx context.Context, itemID int64) error {
	query := `
		UPDATE transit_manifest_items
		SET status = 'REMOVED', removed_at = NOW()
		WHERE id = $1 AND status = 'ADDED'
	`

	result, err := r.querier.Exec(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("unexpected manifest repository mark removed error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return manifest.ErrItemNotFound
	}

	return nil
}

func (r *Repository) MarkItemsDelivered(ctx context.Context, manifestID int64) error {
	query := `
		UPDATE transit_manifest_items
		SET status = 'DELIVERED'
		WHERE manifest_id = $1 AND status = 'ADDED'
	`

	_, err := r.querier.Exec(ctx, query, manifestID)
	if err != nil {
		return fmt.Errorf("unexpected manifest repository mark delivered error: %w", err)
	}

	return nil
}

func (r *Repository) CountActiveItems(ctx context.Context, manifestID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM transit_manifest_items
		WHERE manifest_id = $1 AND status = 'ADDED'
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, manifestID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected manifest repository count items error: %w", err)
	}

	return count, nil
}

func scanManifest(row pgx.Row) (*ManifestDB, error) {
	var manifestDB ManifestDB
	err := row.Scan(
		&manifestDB.ID,
		&manifestDB.OriginBranchID,
		&manifestDB.DestBranchID,
		&manifestDB.VehicleID,
		&manifestDB.DriverID,
		&manifestDB.Status,
		&manifestDB.DepartedAt,
		&manifestDB.ArrivedAt,
		&manifestDB.CreatedAt,
		&manifestDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &manifestDB, nil
}

func scanItem(row pgx.Row) (*ItemDB, error) {
	var itemDB ItemDB
	err := row.Scan(
		&itemDB.ID,
		&itemDB.ManifestID,
		&itemDB.ShipmentID,
		&itemDB.Status,
		&itemDB.AddedAt,
		&itemDB.RemovedAt,
	)
	if err != nil {
		return nil, err
	}
	return &itemDB, nil
}
