package shipment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"engine/internal/entities"
	"engine/internal/repository"
	"engine/pkg/tx"
)

// Machine — оркестратор жизненного цикла отправки. Валидирует переход по
// таблице, открывает транзакцию, дергает смежные компоненты, атомарно
// сохраняет новый статус вместе с изменениями подсущностей и пишет событие
// аудита. Уведомления уходят только после коммита.
type Machine struct {
	repository  Repository
	eventLog    EventLog
	assignments Assignments
	payments    Payments
	manifests   Manifests
	capacity    Capacity
	adminTasks  AdminTasks
	routes      RouteResolver
	pricing     PricingService
	notifier    Notifier
	txManager   TxManager
	retrier     Retrier
}

func New(
	repo Repository,
	eventLog EventLog,
	assignments Assignments,
	payments Payments,
	manifests Manifests,
	capacity Capacity,
	adminTasks AdminTasks,
	routes RouteResolver,
	pricing PricingService,
	notifier Notifier,
	txManager TxManager,
	retrier Retrier,
) *Machine {
	return &Machine{
		repository:  repo,
		eventLog:    eventLog,
		assignments: assignments,
		payments:    payments,
		manifests:   manifests,
		capacity:    capacity,
		adminTasks:  adminTasks,
		routes:      routes,
		pricing:     pricing,
		notifier:    notifier,
		txManager:   txManager,
		retrier:     retrier,
	}
}

// NewShipment — параметры бронирования.
type NewShipment struct {
	Code            string
	SenderName      string
	SenderPhone     string
	SenderAddress   string
	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string
	WeightKg        float64
	VolumeM3        float64
	RouteScope      string
}

// TransitionPayload несёт опциональные данные перехода: выбранный филиал,
// машину, комментарий оператора.
type TransitionPayload struct {
	BranchID *int64
	Note     string
}

func (m *Machine) CreateShipment(ctx context.Context, params NewShipment, actor entities.Actor) (*entities.Shipment, error) {
	if strings.TrimSpace(params.Code) == "" {
		return nil, fmt.Errorf("%w: empty code", ErrInvalidShipmentID)
	}

	// Справочник географии — внешний вызов, поэтому до транзакции.
	if err := m.routes.ValidateRouteScope(ctx, params.RouteScope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRouteScopeInvalid, err)
	}

	var created *entities.Shipment
	err := m.withConflictRetry(ctx, func(ctx context.Context) error {
		shipment, err := m.repository.Create(ctx, entities.Shipment{
			Code:            params.Code,
			SenderName:      params.SenderName,
			SenderPhone:     params.SenderPhone,
			SenderAddress:   params.SenderAddress,
			ReceiverName:    params.ReceiverName,
			ReceiverPhone:   params.ReceiverPhone,
			ReceiverAddress: params.ReceiverAddress,
			WeightKg:        params.WeightKg,
			VolumeM3:        params.VolumeM3,
			RouteScope:      params.RouteScope,
			Status:          entities.ShipmentBooked,
		})
		if err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}

		err = m.eventLog.AppendShipmentEvent(ctx, entities.ShipmentEvent{
			ShipmentID: shipment.ID,
			NewStatus:  entities.ShipmentBooked,
			ActorType:  actor.Type,
			ActorID:    actor.ID,
			EventAt:    time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("append booked event: %w", err)
		}

		created = shipment
		tx.AfterCommit(ctx, func() {
			m.notifier.ShipmentStatusChanged(shipment.ID, "", entities.ShipmentBooked, actor)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (m *Machine) GetShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	if id <= 0 {
		return nil, ErrInvalidShipmentID
	}
	shipment, err := m.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return shipment, nil
}

// Transition применяет переход статуса. Вся валидация и побочные эффекты
// выполняются в одной сериализуемой транзакции со строчной блокировкой
// отправки; на конфликте сериализации переход повторяется один раз.
func (m *Machine) Transition(
	ctx context.Context,
	shipmentID int64,
	target entities.ShipmentStatusType,
	actor entities.Actor,
	payload TransitionPayload,
) (*entities.Shipment, error) {
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}
	if !target.IsKnown() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, target)
	}

	// Котировка — внешний вызов, внутри транзакции внешнего I/O нет.
	var quote *int64
	if target == entities.ShipmentPriceEstimated {
		shipment, err := m.repository.GetByID(ctx, shipmentID)
		if err != nil {
			return nil, fmt.Errorf("get shipment for quote: %w", err)
		}
		price, err := m.pricing.Quote(ctx, shipment.WeightKg, shipment.VolumeM3, shipment.RouteScope)
		if err != nil {
			return nil, fmt.Errorf("pricing quote: %w", err)
		}
		quote = &price
	}

	var oldStatus entities.ShipmentStatusType
	var updated *entities.Shipment

	err := m.withConflictRetry(ctx, func(ctx context.Context) error {
		shipment, err := m.repository.GetForUpdate(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("lock shipment: %w", err)
		}
		oldStatus = shipment.Status

		if !canTransition(shipment.Status, target, shipment.PreIssueStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, shipment.Status, target)
		}

		modify, err := m.applyEffects(ctx, shipment, target, actor, payload, quote)
		if err != nil {
			return err
		}

		updated, err = m.repository.Update(ctx, *modify)
		if err != nil {
			return fmt.Errorf("persist transition: %w", err)
		}

		err = m.eventLog.AppendShipmentEvent(ctx, entities.ShipmentEvent{
			ShipmentID: shipment.ID,
			OldStatus:  &oldStatus,
			NewStatus:  target,
			ActorType:  actor.Type,
			ActorID:    actor.ID,
			EventAt:    time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("append transition event: %w", err)
		}

		// Уведомление регистрируется внутри транзакции, но уходит только
		// после коммита самой внешней: вложенный переход (возврат,
		// удержание) не должен публиковать статус до фиксации всей цепочки.
		prev, next := oldStatus, target
		tx.AfterCommit(ctx, func() {
			m.notifier.ShipmentStatusChanged(shipment.ID, prev, next, actor)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// applyEffects выполняет декларативные побочные эффекты входа в target и
// собирает ShipmentModify. Вызывается строго внутри транзакции перехода.
func (m *Machine) applyEffects(
	ctx context.Context,
	shipment *entities.Shipment,
	target entities.ShipmentStatusType,
	actor entities.Actor,
	payload TransitionPayload,
	quote *int64,
) (*entities.ShipmentModify, error) {
	now := time.Now().UTC()
	modify := entities.ShipmentModify{
		ID:     &shipment.ID,
		Status: &target,
	}

	switch target {
	case entities.ShipmentPriceEstimated:
		modify.QuotedPriceCents = quote

	case entities.ShipmentBranchAssigned:
		if payload.BranchID == nil {
			return nil, ErrBranchRequired
		}
		modify.AssignedBranchID = payload.BranchID
		modify.AssignedAt = &now

	case entities.ShipmentOnTheWayPickup:
		assignment, err := m.assignments.ActiveAssignment(ctx, shipment.ID, entities.PickupLeg)
		if err != nil {
			return nil, fmt.Errorf("check pickup assignment: %w", err)
		}
		if assignment == nil || assignment.Status != entities.AssignmentAccepted {
			return nil, ErrPickupNotAccepted
		}
		if _, err := m.assignments.Start(ctx, shipment.ID, entities.PickupLeg); err != nil {
			return nil, fmt.Errorf("start pickup assignment: %w", err)
		}

	case entities.ShipmentPaymentConfirmed:
		confirmed, err := m.payments.HasConfirmedIntent(ctx, shipment.ID)
		if err != nil {
			return nil, fmt.Errorf("check payment intent: %w", err)
		}
		if !confirmed {
			return nil, ErrPaymentNotConfirmed
		}

	case entities.ShipmentPickupCompleted:
		reservation, err := m.capacity.ActiveReservation(ctx, shipment.ID)
		if err != nil {
			return nil, fmt.Errorf("check capacity reservation: %w", err)
		}
		if reservation == nil {
			return nil, ErrCapacityNotReserved
		}
		modify.AssignedVehicleID = &reservation.VehicleID
		if _, err := m.assignments.Complete(ctx, shipment.ID, entities.PickupLeg); err != nil {
			return nil, fmt.Errorf("complete pickup assignment: %w", err)
		}

	case entities.ShipmentInTransit:
		item, err := m.manifests.ActiveItem(ctx, shipment.ID)
		if err != nil {
			return nil, fmt.Errorf("check manifest membership: %w", err)
		}
		if item == nil {
			return nil, ErrNotManifested
		}

	case entities.ShipmentOutForDelivery:
		assignment, err := m.assignments.ActiveAssignment(ctx, shipment.ID, entities.DeliveryLeg)
		if err != nil {
			return nil, fmt.Errorf("check delivery assignment: %w", err)
		}
		if assignment == nil || assignment.Status != entities.AssignmentAccepted {
			return nil, ErrDeliveryNotAccepted
		}
		if _, err := m.assignments.Start(ctx, shipment.ID, entities.DeliveryLeg); err != nil {
			return nil, fmt.Errorf("start delivery assignment: %w", err)
		}

	case entities.ShipmentDeliveredSuccess:
		if _, err := m.assignments.Complete(ctx, shipment.ID, entities.DeliveryLeg); err != nil {
			return nil, fmt.Errorf("complete delivery assignment: %w", err)
		}
		if err := m.capacity.ReleaseByShipment(ctx, shipment.ID); err != nil {
			return nil, fmt.Errorf("release capacity: %w", err)
		}
		modify.DeliveredAt = &now

	case entities.ShipmentClosed:
		if err := m.guardClose(ctx, shipment.ID); err != nil {
			return nil, err
		}
		modify.ClosedAt = &now

	case entities.ShipmentIssue:
		preIssue := shipment.Status
		modify.PreIssueStatus = &preIssue
		note := payload.Note
		if note == "" {
			note = fmt.Sprintf("shipment %d entered ISSUE from %s", shipment.ID, shipment.Status)
		}
		_, err := m.adminTasks.Open(ctx, entities.AdminTaskShipmentIssue, "shipment", shipment.ID, note)
		if err != nil {
			return nil, fmt.Errorf("open issue admin task: %w", err)
		}
	}

	// Выход из ISSUE требует закрытой человеком задачи и сбрасывает
	// сохранённый pre-issue статус.
	if shipment.Status == entities.ShipmentIssue {
		resolved, err := m.adminTasks.HasResolvedFor(ctx, "shipment", shipment.ID, shipment.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("check issue resolution: %w", err)
		}
		if !resolved {
			return nil, ErrIssueNotResolved
		}
		var cleared entities.ShipmentStatusType
		modify.PreIssueStatus = &cleared
	}

	return &modify, nil
}

func (m *Machine) guardClose(ctx context.Context, shipmentID int64) error {
	hasOpen, err := m.assignments.HasOpenAssignments(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("check open assignments: %w", err)
	}
	if hasOpen {
		return fmt.Errorf("%w: active driver assignment", ErrPrematureClose)
	}

	openIntent, err := m.payments.HasOpenIntent(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("check open intents: %w", err)
	}
	if openIntent {
		return fmt.Errorf("%w: open payment intent", ErrPrematureClose)
	}

	item, err := m.manifests.ActiveItem(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("check manifest membership: %w", err)
	}
	if item != nil {
		return fmt.Errorf("%w: active manifest item", ErrPrematureClose)
	}
	return nil
}

func (m *Machine) withConflictRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	err := m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.txManager.Do(ctx, fn)
	})
	if err != nil && repository.IsRetryableConflict(err) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
