package returns

import (
	"context"
	"fmt"
	"strings"
	"time"

	"engine/internal/entities"
	"engine/internal/repository"
	"engine/internal/service/shipment"
)

// Manager владеет созданием возвратного заказа, отсчётом policy-hold на
// филиале отправителя и финальным решением: вернуть отправителю,
// утилизировать или повторно доставить.
type Manager struct {
	repository Repository
	shipments  ShipmentService
	holdPolicy HoldPolicy
	adminTasks AdminTasks
	txManager  TxManager
	retrier    Retrier
}

func New(
	repository Repository,
	shipments ShipmentService,
	holdPolicy HoldPolicy,
	adminTasks AdminTasks,
	txManager TxManager,
	retrier Retrier,
) *Manager {
	return &Manager{
		repository: repository,
		shipments:  shipments,
		holdPolicy: holdPolicy,
		adminTasks: adminTasks,
		txManager:  txManager,
		retrier:    retrier,
	}
}

// finalActionTarget связывает решение по возврату с целевым статусом
// отправки.
var finalActionTarget = map[entities.ReturnFinalActionType]entities.ShipmentStatusType{
	entities.ReturnToOrigin:  entities.ShipmentReturnCompleted,
	entities.ReturnDispose:   entities.ShipmentDisposed,
	entities.ReturnRedeliver: entities.ShipmentOutForDelivery,
}

// OpenReturn создаёт возвратный заказ и в той же транзакции переводит
// исходную отправку в RETURN_CREATED.
func (m *Manager) OpenReturn(
	ctx context.Context,
	originalShipmentID int64,
	reasonCode string,
	actor entities.Actor,
) (*entities.ReturnOrder, error) {
	if originalShipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}
	if strings.TrimSpace(reasonCode) == "" {
		return nil, ErrInvalidReasonCode
	}

	var created *entities.ReturnOrder
	err := m.withConflictRetry(ctx, func(ctx context.Context) error {
		order, err := m.repository.CreateReturnOrder(ctx, entities.ReturnOrder{
			OriginalShipmentID: originalShipmentID,
			ReasonCode:         reasonCode,
		})
		if err != nil {
			return fmt.Errorf("create return order: %w", err)
		}

		_, err = m.shipments.Transition(ctx, originalShipmentID, entities.ShipmentReturnCreated, actor, shipment.TransitionPayload{})
		if err != nil {
			return fmt.Errorf("transition shipment to return: %w", err)
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// StartHold открывает окно ожидания; его длительность берётся из политики по
// коду причины в момент старта.
func (m *Manager) StartHold(ctx context.Context, returnOrderID int64) (*entities.ReturnPolicyHold, error) {
	if returnOrderID <= 0 {
		return nil, ErrInvalidReturnOrder
	}

	var hold *entities.ReturnPolicyHold
	err := m.withConflictRetry(ctx, func(ctx context.Context) error {
		order, err := m.repository.GetReturnOrder(ctx, returnOrderID)
		if err != nil {
			return fmt.Errorf("get return order: %w", err)
		}

		now := time.Now().UTC()
		hold, err = m.repository.CreateHold(ctx, entities.ReturnPolicyHold{
			ReturnOrderID: order.ID,
			HoldStartAt:   now,
			HoldUntilAt:   now.Add(m.holdPolicy.HoldDuration(order.ReasonCode)),
		})
		if err != nil {
			return fmt.Errorf("create policy hold: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hold, nil
}

// RecordCustomerPickup фиксирует ранний самовывоз: после него Decide законен
// до истечения окна.
func (m *Manager) RecordCustomerPickup(ctx context.Context, returnOrderID int64) error {
	if returnOrderID <= 0 {
		return ErrInvalidReturnOrder
	}

	return m.withConflictRetry(ctx, func(ctx context.Context) error {
		hold, err := m.repository.GetHoldForUpdate(ctx, returnOrderID)
		if err != nil {
			return fmt.Errorf("lock policy hold: %w", err)
		}
		if hold.FinalAction != nil {
			return ErrAlreadyDecided
		}
		if hold.CustomerPickupAt != nil {
			return nil
		}
		if err := m.repository.SetCustomerPickup(ctx, hold.ID, time.Now().UTC()); err != nil {
			return fmt.Errorf("set customer pickup: %w", err)
		}
		return nil
	})
}

// Decide терминально фиксирует судьбу возврата. Законен только после
// hold_until_at либо после события раннего самовывоза; решение двигает
// связанную отправку в соответствующий статус.
func (m *Manager) Decide(
	ctx context.Context,
	returnOrderID int64,
	finalAction entities.ReturnFinalActionType,
	actor entities.Actor,
) error {
	if returnOrderID <= 0 {
		return ErrInvalidReturnOrder
	}
	if !finalAction.IsKnown() {
		return ErrInvalidFinalAction
	}

	return m.withConflictRetry(ctx, func(ctx context.Context) error {
		hold, err := m.repository.GetHoldForUpdate(ctx, returnOrderID)
		if err != nil {
			return fmt.Errorf("lock policy hold: %w", err)
		}
		if hold.FinalAction != nil {
			return ErrAlreadyDecided
		}
		if time.Now().UTC().Before(hold.HoldUntilAt) && hold.CustomerPickupAt == nil {
			return ErrHoldNotElapsed
		}

		order, err := m.repository.GetReturnOrder(ctx, returnOrderID)
		if err != nil {
			return fmt.Errorf("get return order: %w", err)
		}

		if err := m.repository.SetFinalAction(ctx, hold.ID, finalAction, time.Now().UTC()); err != nil {
			return fmt.Errorf("set final action: %w", err)
		}

		_, err = m.shipments.Transition(ctx, order.OriginalShipmentID, finalActionTarget[finalAction], actor, shipment.TransitionPayload{})
		if err != nil {
			return fmt.Errorf("transition shipment on decision: %w", err)
		}
		return nil
	})
}

// FlagExpiredHolds помечает просроченные нерешённые окна задачами для
// оператора. Возвращает число новых задач.
func (m *Manager) FlagExpiredHolds(ctx context.Context, limit int64) (int64, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("invalid limit %d", limit)
	}

	var orderIDs []int64
	err := m.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		ids, err := m.repository.ListExpiredUndecided(ctx, time.Now().UTC(), limit)
		if err != nil {
			return fmt.Errorf("list expired holds: %w", err)
		}
		orderIDs = ids
		return nil
	})
	if err != nil {
		return 0, err
	}

	var flagged int64
	for _, orderID := range orderIDs {
		err := m.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
			open, err := m.adminTasks.HasOpenFor(ctx, "return_order", orderID)
			if err != nil {
				return fmt.Errorf("check open admin task: %w", err)
			}
			if open {
				return nil
			}
			_, err = m.adminTasks.Open(ctx, entities.AdminTaskReturnDecisionDue,
				"return_order", orderID, "policy hold expired without decision")
			if err != nil {
				return fmt.Errorf("open admin task: %w", err)
			}
			flagged++
			return nil
		})
		if err != nil {
			return flagged, err
		}
	}
	return flagged, nil
}

func (m *Manager) withConflictRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	err := m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.txManager.Do(ctx, fn)
	})
	if err != nil && repository.IsRetryableConflict(err) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
