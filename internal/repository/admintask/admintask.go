package admintask

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"engine/internal/entities"
	"engine/internal/service/admintask"
)

const taskColumns = `id, kind, ref_type, ref_id, note, status, created_at, resolved_at, resolved_by`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, task entities.AdminTask) (*entities.AdminTask, error) {
	query := `
		INSERT INTO admin_tasks (kind, ref_type, ref_id, note, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + taskColumns

	taskDB, err := scanTask(r.querier.QueryRow(
		ctx,
		query,
		task.Kind.String(),
		task.RefType,
		task.RefID,
		task.Note,
		task.Status.String(),
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected admintask repository create error: %w", err)
	}

	return ToDomain(taskDB), nil
}

func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*entities.AdminTask, error) {
	query := `SELECT ` + taskColumns + ` FROM admin_tasks WHERE id = $1 FOR UPDATE`

	taskDB, err := scanTask(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, admintask.ErrTaskNotFound
		}
		return nil, fmt.Errorf("unexpected admintask repository get error: %w", err)
	}

	return ToDomain(taskDB), nil
}

func (r *Repository) MarkResolved(ctx context.Context, id int64, resolvedBy int64, resolvedAt time.Time) error {
	query := `
		UPDATE admin_tasks
		SET status = 'RESOLVED', resolved_by = $2, resolved_at = $3
		WHERE id = $1 AND status = 'OPEN'
	`

	result, err := r.querier.Exec(ctx, query, id, resolvedBy, resolvedAt)
	if err != nil {
		return fmt.Errorf("unexpected admintask repository mark resolved error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return admintask.ErrAlreadyResolved
	}

	return nil
}

func (r *Repository) HasOpenFor(ctx context.Context, refType string, refID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM admin_tasks
			WHERE ref_type = $1 AND ref_id = $2 AND status = 'OPEN'
		)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, refType, refID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected admintask repository has open error: %w", err)
	}

	return exists, nil
}

func (r *Repository) HasResolvedFor(ctx context.Context, refType string, refID int64, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM admin_tasks
			WHERE ref_type = $1 AND ref_id = $2 AND status = 'RESOLVED' AND resolved_at >= $3
		)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, refType, refID, since).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected admintask repository has resolved error: %w", err)
	}

	return exists, nil
}

func (r *Repository) ListOpen(ctx context.Context, kind *entities.AdminTaskKindType, limit int64) ([]entities.AdminTask, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM admin_tasks
		WHERE status = 'OPEN' AND ($1::TEXT IS NULL OR kind = $1)
		ORDER BY created_at
		LIMIT $2
	`

	var kindArg *string
	if kind != nil {
		value := kind.String()
		kindArg = &value
	}

	rows, err := r.querier.Query(ctx, query, kindArg, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected admintask repository list open error: %w", err)
	}
	defer rows.Close()

	tasks := make([]TaskDB, 0, limit)
	for rows.Next() {
		var taskDB TaskDB
		err := rows.Scan(
			&taskDB.ID,
			&taskDB.Kind,
			&taskDB.RefType,
			&taskDB.RefID,
			&taskDB.Note,
			&taskDB.Status,
			&taskDB.CreatedAt,
			&taskDB.ResolvedAt,
			&taskDB.ResolvedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected admintask repository list open error: %w", err)
		}
		tasks = append(tasks, taskDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected admintask repository list open error: %w", err)
	}

	return ToDomainList(tasks), nil
}

func scanTask(row pgx.Row) (*TaskDB, error) {
	var taskDB TaskDB
	err := row.Scan(
		&taskDB.ID,
		&taskDB.Kind,
		&taskDB.RefType,
		&taskDB.RefID,
		&taskDB.Note,
		&taskDB.Status,
		&taskDB.CreatedAt,
		&taskDB.ResolvedAt,
		&taskDB.ResolvedBy,
	)
	if err != nil {
		return nil, err
	}
	return &taskDB, nil
}
