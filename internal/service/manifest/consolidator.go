package manifest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"engine/internal/entities"
	"engine/internal/repository"
)

// Consolidator группирует отправки в транзитные манифесты для межфилиальной
// перевозки и ведёт членство add/remove. Отправка может быть активным
// элементом максимум одного незакрытого манифеста.
type Consolidator struct {
	repository Repository
	txManager  TxManager
	retrier    Retrier
}

func New(repository Repository, txManager TxManager, retrier Retrier) *Consolidator {
	return &Consolidator{
		repository: repository,
		txManager:  txManager,
		retrier:    retrier,
	}
}

var manifestSuccessor = map[entities.ManifestStatusType]entities.ManifestStatusType{
	entities.ManifestOpen:     entities.ManifestLoaded,
	entities.ManifestLoaded:   entities.ManifestDeparted,
	entities.ManifestDeparted: entities.ManifestArrived,
	entities.ManifestArrived:  entities.ManifestClosed,
}

func (c *Consolidator) OpenManifest(
	ctx context.Context,
	originBranchID, destBranchID, vehicleID, driverID int64,
) (*entities.TransitManifest, error) {
	if originBranchID <= 0 || destBranchID <= 0 || originBranchID == destBranchID {
		return nil, ErrInvalidBranches
	}

	var created *entities.TransitManifest
	err := c.withConflictRetry(ctx, func(ctx context.Context) error {
		manifest, err := c.repository.CreateManifest(ctx, entities.TransitManifest{
			OriginBranchID: originBranchID,
			DestBranchID:   destBranchID,
			VehicleID:      vehicleID,
			DriverID:       driverID,
			Status:         entities.ManifestOpen,
		})
		if err != nil {
			return fmt.Errorf("create manifest: %w", err)
		}
		created = manifest
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// AddItem добавляет отправку в манифест. Повторное добавление в тот же
// манифест возвращает существующую строку; активная строка на другом
// незакрытом манифесте — ErrAlreadyManifested.
func (c *Consolidator) AddItem(ctx context.Context, manifestID, shipmentID int64) (*entities.TransitManifestItem, error) {
	if manifestID <= 0 {
		return nil, ErrInvalidManifestID
	}
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}

	var item *entities.TransitManifestItem
	err := c.withConflictRetry(ctx, func(ctx context.Context) error {
		manifest, err := c.repository.GetManifestForUpdate(ctx, manifestID)
		if err != nil {
			return fmt.Errorf("lock manifest: %w", err)
		}
		if manifest.Status != entities.ManifestOpen && manifest.Status != entities.ManifestLoaded {
			return ErrManifestNotOpen
		}

		existing, err := c.activeItemOrNil(ctx, shipmentID)
		if err != nil {
			return err
		}
		if existing != nil {
			if existing.ManifestID == manifestID {
				item = existing
				return nil
			}
			return ErrAlreadyManifested
		}

		item, err = c.repository.CreateItem(ctx, entities.TransitManifestItem{
			ManifestID: manifestID,
			ShipmentID: shipmentID,
			Status:     entities.ManifestItemAdded,
		})
		if err != nil {
			return fmt.Errorf("create manifest item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (c *Consolidator) RemoveItem(ctx context.Context, manifestID, shipmentID int64) error {
	if manifestID <= 0 {
		return ErrInvalidManifestID
	}
	if shipmentID <= 0 {
		return ErrInvalidShipmentID
	}

	return c.withConflictRetry(ctx, func(ctx context.Context) error {
		manifest, err := c.repository.GetManifestForUpdate(ctx, manifestID)
		if err != nil {
			return fmt.Errorf("lock manifest: %w", err)
		}
		if manifest.Status == entities.ManifestDeparted || manifest.Status == entities.ManifestArrived {
			return ErrManifestNotOpen
		}

		item, err := c.activeItemOrNil(ctx, shipmentID)
		if err != nil {
			return err
		}
		if item == nil || item.ManifestID != manifestID {
			return ErrItemNotFound
		}

		if err := c.repository.MarkItemRemoved(ctx, item.ID); err != nil {
			return fmt.Errorf("mark item removed: %w", err)
		}
		return nil
	})
}

// TransitionManifest двигает манифест по цепочке
// OPEN → LOADED → DEPARTED → ARRIVED → CLOSED. DEPARTED требует хотя бы один
// активный элемент; CLOSED достижим только из ARRIVED.
func (c *Consolidator) TransitionManifest(
	ctx context.Context,
	manifestID int64,
	target entities.ManifestStatusType,
) (*entities.TransitManifest, error) {
	if manifestID <= 0 {
		return nil, ErrInvalidManifestID
	}

	var updated *entities.TransitManifest
	err := c.withConflictRetry(ctx, func(ctx context.Context) error {
		manifest, err := c.repository.GetManifestForUpdate(ctx, manifestID)
		if err != nil {
			return fmt.Errorf("lock manifest: %w", err)
		}
		if manifestSuccessor[manifest.Status] != target {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidManifestMove, manifest.Status, target)
		}

		now := time.Now().UTC()
		var departedAt, arrivedAt *time.Time

		switch target {
		case entities.ManifestDeparted:
			activeItems, err := c.repository.CountActiveItems(ctx, manifestID)
			if err != nil {
				return fmt.Errorf("count active items: %w", err)
			}
			if activeItems == 0 {
				return ErrEmptyManifest
			}
			departedAt = &now
		case entities.ManifestArrived:
			arrivedAt = &now
		case entities.ManifestClosed:
			// Частичный уникальный индекс держит ADDED строки; без перевода
			// их в DELIVERED отправка не смогла бы войти в следующий манифест.
			if err := c.repository.MarkItemsDelivered(ctx, manifestID); err != nil {
				return fmt.Errorf("mark items delivered: %w", err)
			}
		}

		updated, err = c.repository.UpdateManifestStatus(ctx, manifestID, target, departedAt, arrivedAt)
		if err != nil {
			return fmt.Errorf("update manifest status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ActiveItem возвращает nil без ошибки, если отправка не лежит ни в одном
// незакрытом манифесте.
func (c *Consolidator) ActiveItem(ctx context.Context, shipmentID int64) (*entities.TransitManifestItem, error) {
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}
	return c.activeItemOrNil(ctx, shipmentID)
}

func (c *Consolidator) activeItemOrNil(ctx context.Context, shipmentID int64) (*entities.TransitManifestItem, error) {
	item, err := c.repository.GetActiveItemByShipment(ctx, shipmentID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active item: %w", err)
	}
	return item, nil
}

func (c *Consolidator) withConflictRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	err := c.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return c.txManager.Do(ctx, fn)
	})
	if err != nil && (repository.IsRetryableConflict(err) || repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation)) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
