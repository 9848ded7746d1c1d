//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"
	"time"

	"engine/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, modify entities.PaymentIntentModify) (*entities.PaymentIntent, error)
	GetByID(ctx context.Context, id int64) (*entities.PaymentIntent, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.PaymentIntent, error)
	GetOpenByShipment(ctx context.Context, shipmentID int64) (*entities.PaymentIntent, error)
	// GetFallbackFor возвращает интент, у которого fallback_payment_intent_id
	// указывает на данный.
	GetFallbackFor(ctx context.Context, intentID int64) (*entities.PaymentIntent, error)

	// UpdateStatus меняет статус только если текущий равен from; иначе
	// возвращает ErrIntentTerminal.
	UpdateStatus(ctx context.Context, id int64, from, to entities.PaymentIntentStatusType) (*entities.PaymentIntent, error)

	AppendEvent(ctx context.Context, event entities.PaymentEvent) error

	HasConfirmedByShipment(ctx context.Context, shipmentID int64) (bool, error)
	ListDueOnlineIntentIDs(ctx context.Context, now time.Time, limit int64) ([]int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
