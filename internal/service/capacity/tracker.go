package capacity

import (
	"context"
	"errors"
	"fmt"

	"engine/internal/entities"
	"engine/internal/repository"
)

// Tracker — единственная точка, через которую меняются счётчики загрузки
// машины. Никто другой не пишет в vehicle_load_tracking; именно поэтому
// счётчикам можно верить, не пересчитывая отправки сканом.
type Tracker struct {
	repository Repository
	adminTasks AdminTasks
	txManager  TxManager
	retrier    Retrier
}

func New(repository Repository, adminTasks AdminTasks, txManager TxManager, retrier Retrier) *Tracker {
	return &Tracker{
		repository: repository,
		adminTasks: adminTasks,
		txManager:  txManager,
		retrier:    retrier,
	}
}

// Reserve атомарно читает счётчики, считает перспективные суммы и либо
// отклоняет бронь, либо прибавляет счётчики в той же транзакции. Повторный
// вызов для той же отправки на той же машине возвращает существующую бронь.
func (t *Tracker) Reserve(
	ctx context.Context,
	vehicleID int64,
	shipmentID int64,
	loadKg, volumeM3 float64,
) (*entities.CapacityReservation, error) {
	if vehicleID <= 0 {
		return nil, ErrInvalidVehicleID
	}
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}
	if loadKg <= 0 || volumeM3 <= 0 {
		return nil, ErrInvalidQuantities
	}

	var reservation *entities.CapacityReservation
	err := t.withConflictRetry(ctx, func(ctx context.Context) error {
		existing, err := t.activeOrNil(ctx, shipmentID)
		if err != nil {
			return err
		}
		if existing != nil {
			if existing.VehicleID == vehicleID {
				reservation = existing
				return nil
			}
			return ErrAlreadyReserved
		}

		vehicle, err := t.repository.GetVehicle(ctx, vehicleID)
		if err != nil {
			return fmt.Errorf("get vehicle: %w", err)
		}

		load, err := t.repository.GetLoadForUpdate(ctx, vehicleID)
		if err != nil {
			return fmt.Errorf("lock load counters: %w", err)
		}

		if load.CurrentLoadKg+loadKg > vehicle.MaxLoadKg ||
			load.CurrentVolumeM3+volumeM3 > vehicle.MaxVolumeM3 {
			return ErrCapacityExceeded
		}

		reservation, err = t.repository.CreateReservation(ctx, entities.CapacityReservation{
			VehicleID:  vehicleID,
			ShipmentID: shipmentID,
			LoadKg:     loadKg,
			VolumeM3:   volumeM3,
			Status:     entities.ReservationReserved,
		})
		if err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}

		if err := t.repository.ApplyLoadDelta(ctx, vehicleID, loadKg, volumeM3, 1); err != nil {
			return fmt.Errorf("apply load delta: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// Release идемпотентен: снятие уже снятой брони — no-op, а не ошибка.
// Это защищает от повторных колбэков отмены.
func (t *Tracker) Release(ctx context.Context, reservationID int64) error {
	if reservationID <= 0 {
		return ErrReservationNotFound
	}

	return t.withConflictRetry(ctx, func(ctx context.Context) error {
		reservation, err := t.repository.GetReservationByID(ctx, reservationID)
		if err != nil {
			return fmt.Errorf("get reservation: %w", err)
		}
		return t.release(ctx, reservation)
	})
}

// ReleaseByShipment снимает активную бронь отправки, если она есть.
func (t *Tracker) ReleaseByShipment(ctx context.Context, shipmentID int64) error {
	if shipmentID <= 0 {
		return ErrInvalidShipmentID
	}

	return t.withConflictRetry(ctx, func(ctx context.Context) error {
		reservation, err := t.activeOrNil(ctx, shipmentID)
		if err != nil {
			return err
		}
		if reservation == nil {
			return nil
		}
		return t.release(ctx, reservation)
	})
}

func (t *Tracker) release(ctx context.Context, reservation *entities.CapacityReservation) error {
	if reservation.Status == entities.ReservationReleased {
		return nil
	}

	// Блокируем счётчики до пометки брони, порядок захвата одинаков с Reserve.
	if _, err := t.repository.GetLoadForUpdate(ctx, reservation.VehicleID); err != nil {
		return fmt.Errorf("lock load counters: %w", err)
	}

	released, err := t.repository.MarkReleased(ctx, reservation.ID)
	if err != nil {
		return fmt.Errorf("mark released: %w", err)
	}
	if !released {
		return nil
	}

	err = t.repository.ApplyLoadDelta(ctx,
		reservation.VehicleID,
		-reservation.LoadKg,
		-reservation.VolumeM3,
		-1,
	)
	if err != nil {
		return fmt.Errorf("apply load delta: %w", err)
	}
	return nil
}

// ActiveReservation возвращает nil без ошибки, если активной брони нет.
func (t *Tracker) ActiveReservation(ctx context.Context, shipmentID int64) (*entities.CapacityReservation, error) {
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}
	return t.activeOrNil(ctx, shipmentID)
}

// Reconcile сверяет счётчики каждой машины с суммой её активных броней.
// Расхождение — сигнал о баге, поэтому счётчики не правятся молча: открывается
// AdminTask, причину разбирает человек. Возвращает число найденных расхождений.
func (t *Tracker) Reconcile(ctx context.Context) (int64, error) {
	vehicleIDs, err := t.repository.ListVehicleIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list vehicles: %w", err)
	}

	var mismatches int64
	for _, vehicleID := range vehicleIDs {
		err := t.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
			load, err := t.repository.GetLoadForUpdate(ctx, vehicleID)
			if err != nil {
				return fmt.Errorf("lock load counters: %w", err)
			}
			sumLoad, sumVolume, count, err := t.repository.SumActiveReservations(ctx, vehicleID)
			if err != nil {
				return fmt.Errorf("sum reservations: %w", err)
			}

			if load.CurrentLoadKg == sumLoad &&
				load.CurrentVolumeM3 == sumVolume &&
				load.CurrentOrderCount == count {
				return nil
			}

			alreadyFlagged, err := t.adminTasks.HasOpenFor(ctx, "vehicle", vehicleID)
			if err != nil {
				return fmt.Errorf("check open admin task: %w", err)
			}
			if !alreadyFlagged {
				note := fmt.Sprintf(
					"tracked load %.3fkg/%.4fm3/%d orders, active reservations sum %.3fkg/%.4fm3/%d orders",
					load.CurrentLoadKg, load.CurrentVolumeM3, load.CurrentOrderCount,
					sumLoad, sumVolume, count,
				)
				if _, err := t.adminTasks.Open(ctx, entities.AdminTaskLoadMismatch, "vehicle", vehicleID, note); err != nil {
					return fmt.Errorf("open admin task: %w", err)
				}
			}
			mismatches++
			return nil
		})
		if err != nil {
			return mismatches, err
		}
	}
	return mismatches, nil
}

func (t *Tracker) activeOrNil(ctx context.Context, shipmentID int64) (*entities.CapacityReservation, error) {
	reservation, err := t.repository.GetActiveByShipment(ctx, shipmentID)
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active reservation: %w", err)
	}
	return reservation, nil
}

func (t *Tracker) withConflictRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	err := t.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return t.txManager.Do(ctx, fn)
	})
	if err != nil && repository.IsRetryableConflict(err) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
