package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"engine/internal/entities"
	"engine/internal/repository"
	"engine/internal/service/assignment"
)

const assignmentColumns = `id, shipment_id, driver_id, leg, status, is_active, assigned_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetDriverForUpdate(ctx context.Context, driverID int64) (*entities.Driver, error) {
	query := `
		SELECT id, name, phone, max_active_orders, created_at, updated_at
		FROM drivers
		WHERE id = $1
		FOR UPDATE
	`

	var driverDB DriverDB
	err := r.querier.QueryRow(ctx, query, driverID).Scan(
		&driverDB.ID,
		&driverDB.Name,
		&driverDB.Phone,
		&driverDB.MaxActiveOrders,
		&driverDB.CreatedAt,
		&driverDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get driver error: %w", err)
	}

	return ToDriverDomain(&driverDB), nil
}

func (r *Repository) CountActiveByDriver(ctx context.Context, driverID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM driver_assignments
		WHERE driver_id = $1 AND is_active AND status NOT IN ('COMPLETED', 'CANCELLED')
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, driverID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository count active error: %w", err)
	}

	return count, nil
}

func (r *Repository) GetActiveByShipmentAndLeg(ctx context.Context, shipmentID int64, leg entities.AssignmentLegType) (*entities.DriverAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM driver_assignments
		WHERE shipment_id = $1 AND leg = $2 AND is_active
	`

	assignmentDB, err := scanAssignment(r.querier.QueryRow(ctx, query, shipmentID, leg.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get active error: %w", err)
	}

	return ToDomain(assignmentDB), nil
}

func (r *Repository) Create(ctx context.Context, modify entities.DriverAssignmentModify) (*entities.DriverAssignment, error) {
	modifyDB := FromDomainModify(&modify)

	query := `
		INSERT INTO driver_assignments (shipment_id, driver_id, leg, status, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + assignmentColumns

	assignmentDB, err := scanAssignment(r.querier.QueryRow(
		ctx,
		query,
		modifyDB.ShipmentID,
		modifyDB.DriverID,
		modifyDB.Leg,
		modifyDB.Status,
		modifyDB.IsActive,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrAssignmentExists
		}
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return ToDomain(assignmentDB), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.AssignmentStatusType, deactivate bool) (*entities.DriverAssignment, error) {
	query := `
		UPDATE driver_assignments
		SET status = $2,
			is_active = is_active AND NOT $3,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + assignmentColumns

	assignmentDB, err := scanAssignment(r.querier.QueryRow(ctx, query, id, status.String(), deactivate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository update status error: %w", err)
	}

	return ToDomain(assignmentDB), nil
}

func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	query := `
		UPDATE driver_assignments
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected assignment repository deactivate error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

func (r *Repository) CreateHistory(ctx context.Context, history entities.DriverAssignmentHistory) error {
	query := `
		INSERT INTO driver_assignment_history
			(assignment_id, shipment_id, leg, old_driver_id, new_driver_id,
			 old_status, new_status, actor_type, actor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		history.AssignmentID,
		history.ShipmentID,
		history.Leg.String(),
		history.OldDriverID,
		history.NewDriverID,
		history.OldStatus.String(),
		history.NewStatus.String(),
		history.ActorType.String(),
		history.ActorID,
	)
	if err != nil {
		return fmt.Errorf("unexpected assignment repository create history error: %w", err)
	}

	return nil
}

func (r *Repository) CountOpenByShipment(ctx context.Context, shipmentID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM driver_assignments
		WHERE shipment_id = $1 AND status NOT IN ('COMPLETED', 'CANCELLED')
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, shipmentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository count open error: %w", err)
	}

	return count, nil
}

func scanAssignment(row pgx.Row) (*AssignmentDB, error) {
	var assignmentDB AssignmentDB
	err := row.Scan(
		&assignmentDB.ID,
		&assignmentDB.ShipmentID,
		&assignmentDB.DriverID,
		&assignmentDB.Leg,
		&assignmentDB.Status,
		&assignmentDB.IsActive,
		&assignmentDB.AssignedAt,
		&assignmentDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &assignmentDB, nil
}
