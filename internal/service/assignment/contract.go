//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"engine/internal/entities"
)

type Repository interface {
	// GetDriverForUpdate блокирует строку водителя: его набор активных
	// назначений — горячий ресурс, проверка лимита и вставка обязаны идти под
	// одной блокировкой.
	GetDriverForUpdate(ctx context.Context, driverID int64) (*entities.Driver, error)
	CountActiveByDriver(ctx context.Context, driverID int64) (int64, error)

	GetActiveByShipmentAndLeg(ctx context.Context, shipmentID int64, leg entities.AssignmentLegType) (*entities.DriverAssignment, error)
	Create(ctx context.Context, modify entities.DriverAssignmentModify) (*entities.DriverAssignment, error)
	UpdateStatus(ctx context.Context, id int64, status entities.AssignmentStatusType, deactivate bool) (*entities.DriverAssignment, error)
	Deactivate(ctx context.Context, id int64) error
	CreateHistory(ctx context.Context, history entities.DriverAssignmentHistory) error

	CountOpenByShipment(ctx context.Context, shipmentID int64) (int64, error)
}

// CapacityService снимает бронь вместимости при отмене назначения. Других
// путей к счётчикам машины у координатора нет.
type CapacityService interface {
	ReleaseByShipment(ctx context.Context, shipmentID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
