package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"engine/internal/entities"
	"engine/internal/repository"

	"github.com/AlekSi/pointer"
)

// Coordinator владеет машиной состояний назначения водителя на плечо забора
// или доставки. Инвариант: на пару (shipment, leg) максимум одна активная
// строка; переназначение деактивирует старую строку и пишет историю, а не
// удаляет её.
type Coordinator struct {
	repository Repository
	capacity   CapacityService
	txManager  TxManager
	retrier    Retrier
}

func New(repository Repository, capacity CapacityService, txManager TxManager, retrier Retrier) *Coordinator {
	return &Coordinator{
		repository: repository,
		capacity:   capacity,
		txManager:  txManager,
		retrier:    retrier,
	}
}

func (c *Coordinator) Assign(
	ctx context.Context,
	shipmentID int64,
	leg entities.AssignmentLegType,
	driverID int64,
) (*entities.DriverAssignment, error) {
	if err := validateKey(shipmentID, leg); err != nil {
		return nil, err
	}
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	var created *entities.DriverAssignment
	err := c.withConflictRetry(ctx, func(ctx context.Context) error {
		driver, err := c.repository.GetDriverForUpdate(ctx, driverID)
		if err != nil {
			return fmt.Errorf("lock driver: %w", err)
		}

		activeCount, err := c.repository.CountActiveByDriver(ctx, driverID)
		if err != nil {
			return fmt.Errorf("count driver assignments: %w", err)
		}
		if activeCount >= driver.MaxActiveOrders {
			return ErrDriverAtCapacity
		}

		existing, err := c.activeOrNil(ctx, shipmentID, leg)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAssignmentExists
		}

		created, err = c.repository.Create(ctx, entities.DriverAssignmentModify{
			ShipmentID: &shipmentID,
			DriverID:   &driverID,
			Leg:        &leg,
			Status:     pointer.To(entities.AssignmentAssigned),
			IsActive:   pointer.To(true),
		})
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Coordinator) Accept(ctx context.Context, shipmentID int64, leg entities.AssignmentLegType) (*entities.DriverAssignment, error) {
	return c.progress(ctx, shipmentID, leg, entities.AssignmentAccepted)
}

func (c *Coordinator) Start(ctx context.Context, shipmentID int64, leg entities.AssignmentLegType) (*entities.DriverAssignment, error) {
	return c.progress(ctx, shipmentID, leg, entities.AssignmentInProgress)
}

func (c *Coordinator) Complete(ctx context.Context, shipmentID int64, leg entities.AssignmentLegType) (*entities.DriverAssignment, error) {
	return c.progress(ctx, shipmentID, leg, entities.AssignmentCompleted)
}

// Cancel переводит назначение в CANCELLED из любого нетерминального статуса и
// снимает бронь вместимости, если она была. Снятие идемпотентно, поэтому
// повторный колбэк отмены безопасен.
func (c *Coordinator) Cancel(ctx context.Context, shipmentID int64, leg entities.AssignmentLegType) (*entities.DriverAssignment, error) {
	if err := validateKey(shipmentID, leg); err != nil {
		return nil, err
	}

	var cancelled *entities.DriverAssignment
	err := c.withConflictRetry(ctx, func(ctx context.Context) error {
		assignment, err := c.repository.GetActiveByShipmentAndLeg(ctx, shipmentID, leg)
		if err != nil {
			return fmt.Errorf("get active assignment: %w", err)
		}
		if assignment.Status.IsTerminal() {
			return ErrAssignmentTerminal
		}

		cancelled, err = c.repository.UpdateStatus(ctx, assignment.ID, entities.AssignmentCancelled, true)
		if err != nil {
			return fmt.Errorf("cancel assignment: %w", err)
		}

		if leg == entities.PickupLeg {
			if err := c.capacity.ReleaseByShipment(ctx, shipmentID); err != nil {
				return fmt.Errorf("release capacity: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// Reassign атомарно деактивирует текущую строку, создаёт новую и пишет одну
// запись истории со старым и новым водителем: окна, где обе строки активны
// или обе неактивны, не существует.
func (c *Coordinator) Reassign(
	ctx context.Context,
	shipmentID int64,
	leg entities.AssignmentLegType,
	newDriverID int64,
	actor entities.Actor,
) (*entities.DriverAssignment, error) {
	if err := validateKey(shipmentID, leg); err != nil {
		return nil, err
	}
	if newDriverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	var replacement *entities.DriverAssignment
	err := c.withConflictRetry(ctx, func(ctx context.Context) error {
		current, err := c.repository.GetActiveByShipmentAndLeg(ctx, shipmentID, leg)
		if err != nil {
			return fmt.Errorf("get active assignment: %w", err)
		}
		if current.Status.IsTerminal() {
			return ErrAssignmentTerminal
		}

		driver, err := c.repository.GetDriverForUpdate(ctx, newDriverID)
		if err != nil {
			return fmt.Errorf("lock new driver: %w", err)
		}
		activeCount, err := c.repository.CountActiveByDriver(ctx, newDriverID)
		if err != nil {
			return fmt.Errorf("count driver assignments: %w", err)
		}
		if activeCount >= driver.MaxActiveOrders {
			return ErrDriverAtCapacity
		}

		if err := c.repository.Deactivate(ctx, current.ID); err != nil {
			return fmt.Errorf("deactivate assignment: %w", err)
		}

		replacement, err = c.repository.Create(ctx, entities.DriverAssignmentModify{
			ShipmentID: &shipmentID,
			DriverID:   &newDriverID,
			Leg:        &leg,
			Status:     pointer.To(entities.AssignmentAssigned),
			IsActive:   pointer.To(true),
		})
		if err != nil {
			return fmt.Errorf("create replacement assignment: %w", err)
		}

		err = c.repository.CreateHistory(ctx, entities.DriverAssignmentHistory{
			AssignmentID: replacement.ID,
			ShipmentID:   shipmentID,
			Leg:          leg,
			OldDriverID:  current.DriverID,
			NewDriverID:  newDriverID,
			OldStatus:    current.Status,
			NewStatus:    entities.AssignmentAssigned,
			ActorType:    actor.Type,
			ActorID:      actor.ID,
			ChangedAt:    time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create assignment history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return replacement, nil
}

// ActiveAssignment возвращает nil без ошибки, если активной строки нет.
func (c *Coordinator) ActiveAssignment(ctx context.Context, shipmentID int64, leg entities.AssignmentLegType) (*entities.DriverAssignment, error) {
	if err := validateKey(shipmentID, leg); err != nil {
		return nil, err
	}
	return c.activeOrNil(ctx, shipmentID, leg)
}

func (c *Coordinator) HasOpenAssignments(ctx context.Context, shipmentID int64) (bool, error) {
	if shipmentID <= 0 {
		return false, ErrInvalidShipmentID
	}
	count, err := c.repository.CountOpenByShipment(ctx, shipmentID)
	if err != nil {
		return false, fmt.Errorf("count open assignments: %w", err)
	}
	return count > 0, nil
}

var assignmentStatusPredecessor = map[entities.AssignmentStatusType]entities.AssignmentStatusType{
	entities.AssignmentAccepted:   entities.AssignmentAssigned,
	entities.AssignmentInProgress: entities.AssignmentAccepted,
	entities.AssignmentCompleted:  entities.AssignmentInProgress,
}

func (c *Coordinator) progress(
	ctx context.Context,
	shipmentID int64,
	leg entities.AssignmentLegType,
	target entities.AssignmentStatusType,
) (*entities.DriverAssignment, error) {
	if err := validateKey(shipmentID, leg); err != nil {
		return nil, err
	}

	var updated *entities.DriverAssignment
	err := c.withConflictRetry(ctx, func(ctx context.Context) error {
		assignment, err := c.repository.GetActiveByShipmentAndLeg(ctx, shipmentID, leg)
		if err != nil {
			return fmt.Errorf("get active assignment: %w", err)
		}
		if assignment.Status != assignmentStatusPredecessor[target] {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusChange, assignment.Status, target)
		}

		// Терминальная строка перестаёт быть активной в том же апдейте.
		updated, err = c.repository.UpdateStatus(ctx, assignment.ID, target, target.IsTerminal())
		if err != nil {
			return fmt.Errorf("update assignment status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Coordinator) activeOrNil(ctx context.Context, shipmentID int64, leg entities.AssignmentLegType) (*entities.DriverAssignment, error) {
	assignment, err := c.repository.GetActiveByShipmentAndLeg(ctx, shipmentID, leg)
	if err != nil {
		if errors.Is(err, ErrAssignmentNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active assignment: %w", err)
	}
	return assignment, nil
}

func (c *Coordinator) withConflictRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	err := c.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return c.txManager.Do(ctx, fn)
	})
	if err != nil && (repository.IsRetryableConflict(err) || repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation)) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

func validateKey(shipmentID int64, leg entities.AssignmentLegType) error {
	if shipmentID <= 0 {
		return ErrInvalidShipmentID
	}
	if leg != entities.PickupLeg && leg != entities.DeliveryLeg {
		return ErrInvalidLeg
	}
	return nil
}
