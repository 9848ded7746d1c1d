package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"engine/internal/entities"
	"engine/internal/repository"

	"github.com/AlekSi/pointer"
)

// Цепочка fallback-интентов обязана обрываться за разумное число шагов:
// больше одного перехода online→cash на отправку в нормальном потоке не
// бывает, лимит с запасом.
const maxFallbackHops = 8

// Ledger владеет машиной состояний платёжного интента, включая цепочку
// online → fallback-to-cash по таймауту. На отправку одновременно открыт
// максимум один нетерминальный интент.
type Ledger struct {
	repository Repository
	txManager  TxManager
	retrier    Retrier
}

func New(repository Repository, txManager TxManager, retrier Retrier) *Ledger {
	return &Ledger{
		repository: repository,
		txManager:  txManager,
		retrier:    retrier,
	}
}

func (l *Ledger) Create(
	ctx context.Context,
	shipmentID int64,
	method entities.PaymentMethodType,
	amountCents int64,
	expiresAt *time.Time,
	rawPayload []byte,
) (*entities.PaymentIntent, error) {
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}
	if method != entities.PaymentOnline && method != entities.PaymentCash {
		return nil, ErrInvalidMethod
	}
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	var created *entities.PaymentIntent
	err := l.withConflictRetry(ctx, func(ctx context.Context) error {
		open, err := l.openOrNil(ctx, shipmentID)
		if err != nil {
			return err
		}
		if open != nil {
			return ErrIntentAlreadyOpen
		}

		created, err = l.repository.Create(ctx, entities.PaymentIntentModify{
			ShipmentID:  &shipmentID,
			Method:      &method,
			AmountCents: &amountCents,
			Status:      pointer.To(entities.IntentPending),
			ExpiresAt:   expiresAt,
		})
		if err != nil {
			return fmt.Errorf("create intent: %w", err)
		}

		return l.appendEvent(ctx, created.ID, nil, entities.IntentPending, "", rawPayload)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (l *Ledger) Confirm(ctx context.Context, intentID int64, rawPayload []byte) (*entities.PaymentIntent, error) {
	return l.settle(ctx, intentID, entities.IntentConfirmed, "", rawPayload)
}

func (l *Ledger) Fail(ctx context.Context, intentID int64, reason string, rawPayload []byte) (*entities.PaymentIntent, error) {
	if reason == "" {
		return nil, fmt.Errorf("empty failure reason")
	}
	return l.settle(ctx, intentID, entities.IntentFailed, reason, rawPayload)
}

// Expire переводит просроченный онлайн-интент в EXPIRED и в той же транзакции
// создаёт кэш-интент со ссылкой на просроченный. Повторный вызов — no-op,
// возвращающий уже созданный fallback.
func (l *Ledger) Expire(ctx context.Context, intentID int64, rawPayload []byte) (*entities.PaymentIntent, error) {
	if intentID <= 0 {
		return nil, ErrInvalidIntentID
	}

	var fallback *entities.PaymentIntent
	err := l.withConflictRetry(ctx, func(ctx context.Context) error {
		intent, err := l.repository.GetByIDForUpdate(ctx, intentID)
		if err != nil {
			return fmt.Errorf("lock intent: %w", err)
		}

		if intent.Status == entities.IntentExpired {
			existing, err := l.repository.GetFallbackFor(ctx, intent.ID)
			if err != nil {
				return fmt.Errorf("get existing fallback: %w", err)
			}
			fallback = existing
			return nil
		}

		if intent.Status.IsTerminal() {
			return ErrIntentTerminal
		}
		if intent.Method != entities.PaymentOnline || intent.ExpiresAt == nil {
			return ErrNotExpirable
		}
		if time.Now().UTC().Before(*intent.ExpiresAt) {
			return ErrNotYetExpired
		}

		if err := l.checkChainAcyclic(ctx, intent); err != nil {
			return err
		}

		expired, err := l.repository.UpdateStatus(ctx, intent.ID, entities.IntentPending, entities.IntentExpired)
		if err != nil {
			return fmt.Errorf("expire intent: %w", err)
		}
		if err := l.appendEvent(ctx, expired.ID, pointer.To(entities.IntentPending), entities.IntentExpired, "timeout", rawPayload); err != nil {
			return err
		}

		fallback, err = l.repository.Create(ctx, entities.PaymentIntentModify{
			ShipmentID:              &intent.ShipmentID,
			Method:                  pointer.To(entities.PaymentCash),
			AmountCents:             &intent.AmountCents,
			Status:                  pointer.To(entities.IntentPending),
			FallbackPaymentIntentID: &intent.ID,
		})
		if err != nil {
			return fmt.Errorf("create fallback intent: %w", err)
		}
		return l.appendEvent(ctx, fallback.ID, nil, entities.IntentPending, "fallback", rawPayload)
	})
	if err != nil {
		return nil, err
	}
	return fallback, nil
}

// ExpireDue прогоняет Expire по всем онлайн-интентам с истёкшим сроком.
// Каждый интент обрабатывается в собственной транзакции, повторный запуск
// безопасен. Возвращает число созданных fallback-интентов.
func (l *Ledger) ExpireDue(ctx context.Context, limit int64) (int64, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("invalid limit %d", limit)
	}

	var intentIDs []int64
	err := l.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		ids, err := l.repository.ListDueOnlineIntentIDs(ctx, time.Now().UTC(), limit)
		if err != nil {
			return fmt.Errorf("list due intents: %w", err)
		}
		intentIDs = ids
		return nil
	})
	if err != nil {
		return 0, err
	}

	var expired int64
	for _, id := range intentIDs {
		if _, err := l.Expire(ctx, id, nil); err != nil {
			// Интент могли успеть подтвердить между выборкой и блокировкой.
			if errors.Is(err, ErrIntentTerminal) || errors.Is(err, ErrNotYetExpired) {
				continue
			}
			return expired, fmt.Errorf("expire intent %d: %w", id, err)
		}
		expired++
	}
	return expired, nil
}

func (l *Ledger) HasConfirmedIntent(ctx context.Context, shipmentID int64) (bool, error) {
	if shipmentID <= 0 {
		return false, ErrInvalidShipmentID
	}
	confirmed, err := l.repository.HasConfirmedByShipment(ctx, shipmentID)
	if err != nil {
		return false, fmt.Errorf("check confirmed intent: %w", err)
	}
	return confirmed, nil
}

func (l *Ledger) HasOpenIntent(ctx context.Context, shipmentID int64) (bool, error) {
	if shipmentID <= 0 {
		return false, ErrInvalidShipmentID
	}
	open, err := l.openOrNil(ctx, shipmentID)
	if err != nil {
		return false, err
	}
	return open != nil, nil
}

func (l *Ledger) settle(
	ctx context.Context,
	intentID int64,
	target entities.PaymentIntentStatusType,
	reason string,
	rawPayload []byte,
) (*entities.PaymentIntent, error) {
	if intentID <= 0 {
		return nil, ErrInvalidIntentID
	}

	var settled *entities.PaymentIntent
	err := l.withConflictRetry(ctx, func(ctx context.Context) error {
		intent, err := l.repository.GetByIDForUpdate(ctx, intentID)
		if err != nil {
			return fmt.Errorf("lock intent: %w", err)
		}
		if intent.Status.IsTerminal() {
			return ErrIntentTerminal
		}

		settled, err = l.repository.UpdateStatus(ctx, intent.ID, entities.IntentPending, target)
		if err != nil {
			return fmt.Errorf("update intent status: %w", err)
		}
		return l.appendEvent(ctx, intent.ID, pointer.To(entities.IntentPending), target, reason, rawPayload)
	})
	if err != nil {
		return nil, err
	}
	return settled, nil
}

// checkChainAcyclic идёт по ссылкам fallback_payment_intent_id от данного
// интента и падает, если встречает повтор id или превышает лимит шагов.
func (l *Ledger) checkChainAcyclic(ctx context.Context, intent *entities.PaymentIntent) error {
	seen := map[int64]struct{}{intent.ID: {}}
	current := intent

	for hops := 0; current.FallbackPaymentIntentID != nil; hops++ {
		if hops >= maxFallbackHops {
			return fmt.Errorf("%w: chain longer than %d hops", ErrFallbackCycle, maxFallbackHops)
		}
		next, err := l.repository.GetByID(ctx, *current.FallbackPaymentIntentID)
		if err != nil {
			return fmt.Errorf("walk fallback chain: %w", err)
		}
		if _, ok := seen[next.ID]; ok {
			return fmt.Errorf("%w: intent %d revisited", ErrFallbackCycle, next.ID)
		}
		seen[next.ID] = struct{}{}
		current = next
	}
	return nil
}

func (l *Ledger) appendEvent(
	ctx context.Context,
	intentID int64,
	oldStatus *entities.PaymentIntentStatusType,
	newStatus entities.PaymentIntentStatusType,
	reason string,
	rawPayload []byte,
) error {
	err := l.repository.AppendEvent(ctx, entities.PaymentEvent{
		IntentID:   intentID,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		Reason:     reason,
		RawPayload: rawPayload,
		EventAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("append payment event: %w", err)
	}
	return nil
}

func (l *Ledger) openOrNil(ctx context.Context, shipmentID int64) (*entities.PaymentIntent, error) {
	intent, err := l.repository.GetOpenByShipment(ctx, shipmentID)
	if err != nil {
		if errors.Is(err, ErrIntentNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open intent: %w", err)
	}
	return intent, nil
}

func (l *Ledger) withConflictRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	err := l.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return l.txManager.Do(ctx, fn)
	})
	if err != nil && (repository.IsRetryableConflict(err) || repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation)) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
