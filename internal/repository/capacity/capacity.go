package capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"engine/internal/entities"
	"engine/internal/repository"
	"engine/internal/service/capacity"
)

const reservationColumns = `id, vehicle_id, shipment_id, load_kg, volume_m3, status, created_at, released_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetVehicle(ctx context.Context, vehicleID int64) (*entities.Vehicle, error) {
	query := `
		SELECT id, plate_number, max_load_kg, max_volume_m3, created_at, updated_at
		FROM vehicles
		WHERE id = $1
	`

	var vehicleDB VehicleDB
	err := r.querier.QueryRow(ctx, query, vehicleID).Scan(
		&vehicleDB.ID,
		&vehicleDB.PlateNumber,
		&vehicleDB.MaxLoadKg,
		&vehicleDB.MaxVolumeM3,
		&vehicleDB.CreatedAt,
		&vehicleDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, capacity.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("unexpected capacity repository get vehicle error: %w", err)
	}

	return ToVehicleDomain(&vehicleDB), nil
}

func (r *Repository) GetLoadForUpdate(ctx context.Context, vehicleID int64) (*entities.VehicleLoadTracking, error) {
	query := `
		SELECT vehicle_id, current_load_kg, current_volume_m3, current_order_count, updated_at
		FROM vehicle_load_tracking
		WHERE vehicle_id = $1
		FOR UPDATE
	`

	var loadDB LoadTrackingDB
	err := r.querier.QueryRow(ctx, query, vehicleID).Scan(
		&loadDB.VehicleID,
		&loadDB.CurrentLoadKg,
		&loadDB.CurrentVolumeM3,
		&loadDB.CurrentOrderCount,
		&loadDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, capacity.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("unexpected capacity repository get load error: %w", err)
	}

	return ToLoadDomain(&loadDB), nil
}

func (r *Repository) ApplyLoadDelta(ctx context.Context, vehicleID int64, loadKg, volumeM3 float64, orderDelta int64) error {
	query := `
		UPDATE vehicle_load_tracking
		SET current_load_kg = current_load_kg + $2,
			current_volume_m3 = current_volume_m3 + $3,
			current_order_count = current_order_count + $4,
			updated_at = NOW()
		WHERE vehicle_id = $1
	`

	result, err := r.querier.Exec(ctx, query, vehicleID, loadKg, volumeM3, orderDelta)
	if err != nil {
		return fmt.Errorf("unexpected capacity repository apply delta error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return capacity.ErrVehicleNotFound
	}

	return nil
}

func (r *Repository) CreateReservation(ctx context.Context, reservation entities.CapacityReservation) (*entities.CapacityReservation, error) {
	query := `
		INSERT INTO capacity_reservations (vehicle_id, shipment_id, load_kg, volume_m3, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + reservationColumns

	reservationDB, err := scanReservation(r.querier.QueryRow(
		ctx,
		query,
		reservation.VehicleID,
		reservation.ShipmentID,
		reservation.LoadKg,
		reservation.VolumeM3,
		reservation.Status.String(),
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, capacity.ErrAlreadyReserved
		}
		return nil, fmt.Errorf("unexpected capacity repository create reservation error: %w", err)
	}

	return ToReservationDomain(reservationDB), nil
}

func (r *Repository) GetReservationByID(ctx context.Context, id int64) (*entities.CapacityReservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM capacity_reservations WHERE id = $1`

	reservationDB, err := scanReservation(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, capacity.ErrReservationNotFound
		}
		return nil, fmt.Errorf("unexpected capacity repository get reservation error: %w", err)
	}

	return ToReservationDomain(reservationDB), nil
}

func (r *Repository) GetActiveByShipment(ctx context.Context, shipmentID int64) (*entities.CapacityReservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM capacity_reservations
		WHERE shipment_id = $1 AND status = 'RESERVED'
	`

	reservationDB, err := scanReservation(r.querier.QueryRow(ctx, query, shipmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, capacity.ErrReservationNotFound
		}
		return nil, fmt.Errorf("unexpected capacity repository get active error: %w", err)
	}

	return ToReservationDomain(reservationDB), nil
}

func (r *Repository) MarkReleased(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE capacity_reservations
		SET status = 'RELEASED', released_at = NOW()
		WHERE id = $1 AND status = 'RESERVED'
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected capacity repository mark released error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) ListVehicleIDs(ctx context.Context) ([]int64, error) {
	query := `SELECT id FROM vehicles ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected capacity repository list vehicles error: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 8)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected capacity repository list vehicles error: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected capacity repository list vehicles error: %w", err)
	}

	return ids, nil
}

func (r *Repository) SumActiveReservations(ctx context.Context, vehicleID int64) (loadKg, volumeM3 float64, count int64, err error) {
	query := `
		SELECT COALESCE(SUM(load_kg), 0), COALESCE(SUM(volume_m3), 0), COUNT(*)
		FROM capacity_reservations
		WHERE vehicle_id = $1 AND status = 'RESERVED'
	`

	err = r.querier.QueryRow(ctx, query, vehicleID).Scan(&loadKg, &volumeM3, &count)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("unexpected capacity repository sum reservations error: %w", err)
	}

	return loadKg, volumeM3, count, nil
}

func scanReservation(row pgx.Row) (*ReservationDB, error) {
	var reservationDB ReservationDB
	err := row.Scan(
		&reservationDB.ID,
		&reservationDB.VehicleID,
		&reservationDB.ShipmentID,
		&reservationDB.LoadKg,
		&reservationDB.VolumeM3,
		&reservationDB.Status,
		&reservationDB.CreatedAt,
		&reservationDB.ReleasedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reservationDB, nil
}
