//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=returns_test
package returns

import (
	"context"
	"time"

	"engine/internal/entities"
	"engine/internal/service/shipment"
)

type Repository interface {
	CreateReturnOrder(ctx context.Context, order entities.ReturnOrder) (*entities.ReturnOrder, error)
	GetReturnOrder(ctx context.Context, id int64) (*entities.ReturnOrder, error)

	CreateHold(ctx context.Context, hold entities.ReturnPolicyHold) (*entities.ReturnPolicyHold, error)
	GetHoldForUpdate(ctx context.Context, returnOrderID int64) (*entities.ReturnPolicyHold, error)
	SetCustomerPickup(ctx context.Context, holdID int64, pickupAt time.Time) error
	SetFinalAction(ctx context.Context, holdID int64, action entities.ReturnFinalActionType, decidedAt time.Time) error

	// ListExpiredUndecided отдаёт идентификаторы return-order'ов, чьё окно
	// истекло без решения.
	ListExpiredUndecided(ctx context.Context, now time.Time, limit int64) ([]int64, error)
}

// ShipmentService — машина состояний отправки; финальное решение по возврату
// двигает связанную отправку.
type ShipmentService interface {
	Transition(ctx context.Context, shipmentID int64, target entities.ShipmentStatusType, actor entities.Actor, payload shipment.TransitionPayload) (*entities.Shipment, error)
}

// HoldPolicy отдаёт длительность окна ожидания для кода причины возврата.
type HoldPolicy interface {
	HoldDuration(reasonCode string) time.Duration
}

type AdminTasks interface {
	Open(ctx context.Context, kind entities.AdminTaskKindType, refType string, refID int64, note string) (*entities.AdminTask, error)
	HasOpenFor(ctx context.Context, refType string, refID int64) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
