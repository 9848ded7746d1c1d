package returns

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"engine/internal/entities"
	"engine/internal/repository"
	"engine/internal/service/returns"
)

const holdColumns = `id, return_order_id, hold_start_at, hold_until_at,
		customer_pickup_at, final_action, decided_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateReturnOrder(ctx context.Context, order entities.ReturnOrder) (*entities.ReturnOrder, error) {
	query := `
		INSERT INTO return_orders (original_shipment_id, return_shipment_id, reason_code)
		VALUES ($1, $2, $3)
		RETURNING id, original_shipment_id, return_shipment_id, reason_code, created_at
	`

	var orderDB ReturnOrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		order.OriginalShipmentID,
		order.ReturnShipmentID,
		order.ReasonCode,
	).Scan(
		&orderDB.ID,
		&orderDB.OriginalShipmentID,
		&orderDB.ReturnShipmentID,
		&orderDB.ReasonCode,
		&orderDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, returns.ErrConflict
		}
		return nil, fmt.Errorf("unexpected returns repository create order error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) GetReturnOrder(ctx context.Context, id int64) (*entities.ReturnOrder, error) {
	query := `
		SELECT id, original_shipment_id, return_shipment_id, reason_code, created_at
		FROM return_orders
		WHERE id = $1
	`

	var orderDB ReturnOrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&orderDB.ID,
		&orderDB.OriginalShipmentID,
		&orderDB.ReturnShipmentID,
		&orderDB.ReasonCode,
		&orderDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, returns.ErrReturnOrderNotFound
		}
		return nil, fmt.Errorf("unexpected returns repository get order error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) CreateHold(ctx context.Context, hold entities.ReturnPolicyHold) (*entities.ReturnPolicyHold, error) {
	query := `
		INSERT INTO return_policy_holds (return_order_id, hold_start_at, hold_until_at)
		VALUES ($1, $2, $3)
		RETURNING ` + holdColumns

	holdDB, err := scanHold(r.querier.QueryRow(
		ctx,
		query,
		hold.ReturnOrderID,
		hold.HoldStartAt,
		hold.HoldUntilAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, returns.ErrHoldAlreadyStarted
		}
		return nil, fmt.Errorf("unexpected returns repository create hold error: %w", err)
	}

	return ToHoldDomain(holdDB), nil
}

func (r *Repository) GetHoldForUpdate(ctx context.Context, returnOrderID int64) (*entities.ReturnPolicyHold, error) {
	query := `
		SELECT ` + holdColumns + `
		FROM return_policy_holds
		WHERE return_order_id = $1
		FOR UPDATE
	`

	holdDB, err := scanHold(r.querier.QueryRow(ctx, query, returnOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, returns.ErrHoldNotFound
		}
		return nil, fmt.Errorf("unexpected returns repository get hold error: %w", err)
	}

	return ToHoldDomain(holdDB), nil
}

func (r *Repository) SetCustomerPickup(ctx context.Context, holdID int64, pickupAt time.Time) error {
	query := `
		UPDATE return_policy_holds
		SET customer_pickup_at = $2
		WHERE id = $1 AND customer_pickup_at IS NULL
	`

	if _, err := r.querier.Exec(ctx, query, holdID, pickupAt); err != nil {
		return fmt.Errorf("unexpected returns repository set pickup error: %w", err)
	}

	return nil
}

func (r *Repository) SetFinalAction(ctx context.Context, holdID int64, action entities.ReturnFinalActionType, decidedAt time.Time) error {
	query := `
		UPDATE return_policy_holds
		SET final_action = $2, decided_at = $3
		WHERE id = $1 AND decided_at IS NULL
	`

	result, err := r.querier.Exec(ctx, query, holdID, action.String(), decidedAt)
	if err != nil {
		return fmt.Errorf("unexpected returns repository set final action error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return returns.ErrAlreadyDecided
	}

	return nil
}

func (r *Repository) ListExpiredUndecided(ctx context.Context, now time.Time, limit int64) ([]int64, error) {
	query := `
		SELECT return_order_id
		FROM return_policy_holds
		WHERE decided_at IS NULL AND hold_until_at <= $1
		ORDER BY hold_until_at
		LIMIT $2
	`

	rows, err := r.querier.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected returns repository list expired error: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, limit)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected returns repository list expired error: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected returns repository list expired error: %w", err)
	}

	return ids, nil
}

func scanHold(row pgx.Row) (*HoldDB, error) {
	var holdDB HoldDB
	err := row.Scan(
		&holdDB.ID,
		&holdDB.ReturnOrderID,
		&holdDB.HoldStartAt,
		&holdDB.HoldUntilAt,
		&holdDB.CustomerPickupAt,
		&holdDB.FinalAction,
		&holdDB.DecidedAt,
	)
	if err != nil {
		return nil, err
	}
	return &holdDB, nil
}
