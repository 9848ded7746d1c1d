package eventlog

import (
	"context"
	"fmt"

	"engine/internal/entities"
	"engine/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateShipmentEvent(ctx context.Context, event entities.ShipmentEvent) (*entities.ShipmentEvent, error) {
	query := `
		INSERT INTO shipment_events (shipment_id, old_status, new_status, actor_type, actor_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, shipment_id, old_status, new_status, actor_type, actor_id, event_at
	`

	var oldStatus *string
	if event.OldStatus != nil {
		value := event.OldStatus.String()
		oldStatus = &value
	}

	var eventDB ShipmentEventDB
	err := r.querier.QueryRow(
		ctx,
		query,
		event.ShipmentID,
		oldStatus,
		event.NewStatus.String(),
		event.ActorType.String(),
		event.ActorID,
	).Scan(
		&eventDB.ID,
		&eventDB.ShipmentID,
		&eventDB.OldStatus,
		&eventDB.NewStatus,
		&eventDB.ActorType,
		&eventDB.ActorID,
		&eventDB.EventAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected eventlog repository create event error: %w", err)
	}

	return ToDomain(&eventDB), nil
}

// InsertCallLog полагается на уникальный индекс (shipment_id, call_type,
// attempt_no): дубликат не вставляется и возвращает false.
func (r *Repository) InsertCallLog(ctx context.Context, log entities.CallLog) (bool, error) {
	query := `
		INSERT INTO call_logs (shipment_id, call_type, attempt_no, outcome)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (shipment_id, call_type, attempt_no) DO NOTHING
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		log.ShipmentID,
		log.CallType.String(),
		log.AttemptNo,
		log.Outcome,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return false, nil
		}
		return false, fmt.Errorf("unexpected eventlog repository insert call log error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) InsertWarehouseScan(ctx context.Context, scan entities.WarehouseScan) (bool, error) {
	query := `
		INSERT INTO warehouse_scans (shipment_id, branch_id, warehouse_role, scan_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (shipment_id, branch_id, warehouse_role, scan_type) DO NOTHING
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		scan.ShipmentID,
		scan.BranchID,
		string(scan.WarehouseRole),
		string(scan.ScanType),
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return false, nil
		}
		return false, fmt.Errorf("unexpected eventlog repository insert scan error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) ListShipmentEvents(ctx context.Context, shipmentID int64) ([]entities.ShipmentEvent, error) {
	query := `
		SELECT id, shipment_id, old_status, new_status, actor_type, actor_id, event_at
		FROM shipment_events
		WHERE shipment_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected eventlog repository list events error: %w", err)
	}
	defer rows.Close()

	events := make([]ShipmentEventDB, 0, 8)
	for rows.Next() {
		var eventDB ShipmentEventDB
		err := rows.Scan(
			&eventDB.ID,
			&eventDB.ShipmentID,
			&eventDB.OldStatus,
			&eventDB.NewStatus,
			&eventDB.ActorType,
			&eventDB.ActorID,
			&eventDB.EventAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected eventlog repository list events error: %w", err)
		}
		events = append(events, eventDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected eventlog repository list events error: %w", err)
	}

	return ToDomainList(events), nil
}

func (r *Repository) CountFailedCalls(ctx context.Context, shipmentID int64, callType entities.CallLogType) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM call_logs
		WHERE shipment_id = $1 AND call_type = $2 AND outcome = 'no_answer'
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, shipmentID, callType.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected eventlog repository count failed calls error: %w", err)
	}

	return count, nil
}
