package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"engine/internal/entities"
	"engine/internal/repository"
	"engine/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, code, sender_name, sender_phone, sender_address,
		receiver_name, receiver_phone, receiver_address,
		weight_kg, volume_m3, route_scope, status, pre_issue_status,
		assigned_branch_id, assigned_vehicle_id, quoted_price_cents,
		assigned_at, delivered_at, closed_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentEntity entities.Shipment) (*entities.Shipment, error) {
	query := `
		INSERT INTO shipments (code, sender_name, sender_phone, sender_address,
			receiver_name, receiver_phone, receiver_address,
			weight_kg, volume_m3, route_scope, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + shipmentColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		shipmentEntity.Code,
		shipmentEntity.SenderName,
		shipmentEntity.SenderPhone,
		shipmentEntity.SenderAddress,
		shipmentEntity.ReceiverName,
		shipmentEntity.ReceiverPhone,
		shipmentEntity.ReceiverAddress,
		shipmentEntity.WeightKg,
		shipmentEntity.VolumeM3,
		shipmentEntity.RouteScope,
		shipmentEntity.Status.String(),
	)

	shipmentDB, err := scanShipment(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrConflict
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(shipmentDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *Repository) getOne(ctx context.Context, query string, id int64) (*entities.Shipment, error) {
	shipmentDB, err := scanShipment(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}
	return ToDomain(shipmentDB), nil
}

func (r *Repository) Update(ctx context.Context, modify entities.ShipmentModify) (*entities.Shipment, error) {
	modifyDB := FromDomainModify(&modify)

	builder := qb.
		Update("shipments")

	if modifyDB.Status != nil {
		builder = builder.Set("status", modifyDB.Status)
	}
	if modifyDB.PreIssueStatus != nil {
		// пустая строка — сигнал обнулить колонку
		if *modifyDB.PreIssueStatus == "" {
			builder = builder.Set("pre_issue_status", nil)
		} else {
			builder = builder.Set("pre_issue_status", modifyDB.PreIssueStatus)
		}
	}
	if modifyDB.AssignedBranchID != nil {
		builder = builder.Set("assigned_branch_id", modifyDB.AssignedBranchID)
	}
	if modifyDB.AssignedVehicleID != nil {
		builder = builder.Set("assigned_vehicle_id", modifyDB.AssignedVehicleID)
	}
	if modifyDB.QuotedPriceCents != nil {
		builder = builder.Set("quoted_price_cents", modifyDB.QuotedPriceCents)
	}
	if modifyDB.AssignedAt != nil {
		builder = builder.Set("assigned_at", modifyDB.AssignedAt)
	}
	if modifyDB.DeliveredAt != nil {
		builder = builder.Set("delivered_at", modifyDB.DeliveredAt)
	}
	if modifyDB.ClosedAt != nil {
		builder = builder.Set("closed_at", modifyDB.ClosedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": modifyDB.ID}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	shipmentDB, err := scanShipment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrConflict
		}
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(shipmentDB), nil
}

func (r *Repository) ListStatusBackfillChunk(ctx context.Context, afterID int64, limit int64) ([]shipment.BackfillRow, error) {
	query := `
		SELECT id, status
		FROM shipments
		WHERE id > $1
		ORDER BY id
		LIMIT $2
	`

	rows, err := r.querier.Query(ctx, query, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository backfill chunk error: %w", err)
	}
	defer rows.Close()

	chunk := make([]shipment.BackfillRow, 0, limit)
	for rows.Next() {
		var row shipment.BackfillRow
		if err := rows.Scan(&row.ID, &row.RawStatus); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository backfill chunk error: %w", err)
		}
		chunk = append(chunk, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository backfill chunk error: %w", err)
	}

	return chunk, nil
}

func (r *Repository) UpdateStatusRaw(ctx context.Context, id int64, status entities.ShipmentStatusType) error {
	query := `
		UPDATE shipments
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, status.String())
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update status error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func scanShipment(row pgx.Row) (*ShipmentDB, error) {
	var shipmentDB ShipmentDB
	err := row.Scan(
		&shipmentDB.ID,
		&shipmentDB.Code,
		&shipmentDB.SenderName,
		&shipmentDB.SenderPhone,
		&shipmentDB.SenderAddress,
		&shipmentDB.ReceiverName,
		&shipmentDB.ReceiverPhone,
		&shipmentDB.ReceiverAddress,
		&shipmentDB.WeightKg,
		&shipmentDB.VolumeM3,
		&shipmentDB.RouteScope,
		&shipmentDB.Status,
		&shipmentDB.PreIssueStatus,
		&shipmentDB.AssignedBranchID,
		&shipmentDB.AssignedVehicleID,
		&shipmentDB.QuotedPriceCents,
		&shipmentDB.AssignedAt,
		&shipmentDB.DeliveredAt,
		&shipmentDB.ClosedAt,
		&shipmentDB.CreatedAt,
		&shipmentDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shipmentDB, nil
}
