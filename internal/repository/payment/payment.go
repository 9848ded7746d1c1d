package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"engine/internal/entities"
	"engine/internal/repository"
	"engine/internal/service/payment"
)

const intentColumns = `id, shipment_id, method, amount_cents, status,
		expires_at, fallback_payment_intent_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, modify entities.PaymentIntentModify) (*entities.PaymentIntent, error) {
	modifyDB := FromDomainModify(&modify)

	query := `
		INSERT INTO payment_intents
			(shipment_id, method, amount_cents, status, expires_at, fallback_payment_intent_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + intentColumns

	intentDB, err := scanIntent(r.querier.QueryRow(
		ctx,
		query,
		modifyDB.ShipmentID,
		modifyDB.Method,
		modifyDB.AmountCents,
		modifyDB.Status,
		modifyDB.ExpiresAt,
		modifyDB.FallbackPaymentIntentID,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, payment.ErrIntentAlreadyOpen
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(intentDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetOpenByShipment(ctx context.Context, shipmentID int64) (*entities.PaymentIntent, error) {
	query := `
		SELECT ` + intentColumns + `
		FROM payment_intents
		WHERE shipment_id = $1 AND status = 'PENDING'
	`
	return r.getOne(ctx, query, shipmentID)
}

func (r *Repository) GetFallbackFor(ctx context.Context, intentID int64) (*entities.PaymentIntent, error) {
	query := `
		SELECT ` + intentColumns + `
		FROM payment_intents
		WHERE fallback_payment_intent_id = $1
	`
	return r.getOne(ctx, query, intentID)
}

func (r *Repository) getOne(ctx context.Context, query string, arg int64) (*entities.PaymentIntent, error) {
	intentDB, err := scanIntent(r.querier.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrIntentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository get error: %w", err)
	}
	return ToDomain(intentDB), nil
}

// UpdateStatus — условный переход: строка меняется только из статуса from.
// Если строка есть, но статус уже другой — ErrIntentTerminal.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to entities.PaymentIntentStatusType) (*entities.PaymentIntent, error) {
	query := `
		UPDATE payment_intents
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + intentColumns

	intentDB, err := scanIntent(r.querier.QueryRow(ctx, query, id, from.String(), to.String()))
	if err == nil {
		return ToDomain(intentDB), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected payment repository update status error: %w", err)
	}

	var exists bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM payment_intents WHERE id = $1)`
	if err := r.querier.QueryRow(ctx, checkQuery, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("unexpected payment repository update status error: %w", err)
	}
	if !exists {
		return nil, payment.ErrIntentNotFound
	}
	return nil, payment.ErrIntentTerminal
}

func (r *Repository) AppendEvent(ctx context.Context, event entities.PaymentEvent) error {
	query := `
		INSERT INTO payment_events (intent_id, old_status, new_status, reason, raw_payload)
		VALUES ($1, $2, $3, $4, $5)
	`

	var oldStatus *string
	if event.OldStatus != nil {
		value := event.OldStatus.String()
		oldStatus = &value
	}

	_, err := r.querier.Exec(
		ctx,
		query,
		event.IntentID,
		oldStatus,
		event.NewStatus.String(),
		event.Reason,
		event.RawPayload,
	)
	if err != nil {
		return fmt.Errorf("unexpected payment repository append event error: %w", err)
	}

	return nil
}

func (r *Repository) HasConfirmedByShipment(ctx context.Context, shipmentID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM payment_intents
			WHERE shipment_id = $1 AND status = 'CONFIRMED'
		)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, shipmentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected payment repository has confirmed error: %w", err)
	}

	return exists, nil
}

func (r *Repository) ListDueOnlineIntentIDs(ctx context.Context, now time.Time, limit int64) ([]int64, error) {
	query := `
		SELECT id
		FROM payment_intents
		WHERE method = 'online' AND status = 'PENDING' AND expires_at <= $1
		ORDER BY expires_at
		LIMIT $2
	`

	rows, err := r.querier.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list due error: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, limit)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected payment repository list due error: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected payment repository list due error: %w", err)
	}

	return ids, nil
}

func scanIntent(row pgx.Row) (*IntentDB, error) {
	var intentDB IntentDB
	err := row.Scan(
		&intentDB.ID,
		&intentDB.ShipmentID,
		&intentDB.Method,
		&intentDB.AmountCents,
		&intentDB.Status,
		&intentDB.ExpiresAt,
		&intentDB.FallbackPaymentIntentID,
		&intentDB.CreatedAt,
		&intentDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &intentDB, nil
}
