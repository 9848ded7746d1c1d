//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admintask_test
package admintask

import (
	"context"
	"time"

	"engine/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, task entities.AdminTask) (*entities.AdminTask, error)
	GetForUpdate(ctx context.Context, id int64) (*entities.AdminTask, error)
	MarkResolved(ctx context.Context, id int64, resolvedBy int64, resolvedAt time.Time) error

	HasOpenFor(ctx context.Context, refType string, refID int64) (bool, error)
	HasResolvedFor(ctx context.Context, refType string, refID int64, since time.Time) (bool, error)
	ListOpen(ctx context.Context, kind *entities.AdminTaskKindType, limit int64) ([]entities.AdminTask, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
