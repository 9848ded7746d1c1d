package admintask

import (
	"context"
	"fmt"
	"time"

	"engine/internal/entities"
)

// Queue — очередь ручных задач. Задачи открывает любой компонент, когда
// автоматическое продвижение заблокировано; закрывает их только человек,
// движок никогда не резолвит задачу сам.
type Queue struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Queue {
	return &Queue{
		repository: repository,
		txManager:  txManager,
	}
}

func (q *Queue) Open(
	ctx context.Context,
	kind entities.AdminTaskKindType,
	refType string,
	refID int64,
	note string,
) (*entities.AdminTask, error) {
	switch kind {
	case entities.AdminTaskShipmentIssue,
		entities.AdminTaskCapacityExhausted,
		entities.AdminTaskPaymentFailed,
		entities.AdminTaskReturnDecisionDue,
		entities.AdminTaskLoadMismatch,
		entities.AdminTaskContactUnreachable:
	default:
		return nil, ErrUnknownKind
	}
	if refType == "" || refID <= 0 {
		return nil, ErrInvalidRef
	}

	task, err := q.repository.Create(ctx, entities.AdminTask{
		Kind:    kind,
		RefType: refType,
		RefID:   refID,
		Note:    note,
		Status:  entities.AdminTaskOpen,
	})
	if err != nil {
		return nil, fmt.Errorf("create admin task: %w", err)
	}
	return task, nil
}

// Resolve закрывает задачу от имени оператора. Системный актор закрывать
// задачи не может.
func (q *Queue) Resolve(ctx context.Context, id int64, actor entities.Actor) error {
	if id <= 0 {
		return ErrInvalidTaskID
	}
	if actor.Type == entities.ActorSystem || actor.ID <= 0 {
		return ErrHumanOnly
	}

	return q.txManager.Do(ctx, func(ctx context.Context) error {
		task, err := q.repository.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get admin task: %w", err)
		}
		if task.Status == entities.AdminTaskResolved {
			return ErrAlreadyResolved
		}

		if err := q.repository.MarkResolved(ctx, id, actor.ID, time.Now().UTC()); err != nil {
			return fmt.Errorf("mark resolved: %w", err)
		}
		return nil
	})
}

func (q *Queue) HasOpenFor(ctx context.Context, refType string, refID int64) (bool, error) {
	if refType == "" || refID <= 0 {
		return false, ErrInvalidRef
	}
	return q.repository.HasOpenFor(ctx, refType, refID)
}

// HasResolvedFor отвечает, была ли закрыта задача по сущности после момента
// since. На этом построен выход отправки из статуса ISSUE.
func (q *Queue) HasResolvedFor(ctx context.Context, refType string, refID int64, since time.Time) (bool, error) {
	if refType == "" || refID <= 0 {
		return false, ErrInvalidRef
	}
	return q.repository.HasResolvedFor(ctx, refType, refID, since)
}

func (q *Queue) ListOpen(ctx context.Context, kind *entities.AdminTaskKindType, limit int64) ([]entities.AdminTask, error) {
	if limit <= 0 {
		limit = 100
	}
	return q.repository.ListOpen(ctx, kind, limit)
}
