//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=capacity_test
package capacity

import (
	"context"

	"engine/internal/entities"
)

type Repository interface {
	GetVehicle(ctx context.Context, vehicleID int64) (*entities.Vehicle, error)
	// GetLoadForUpdate блокирует строку счётчиков: чтение и прибавка обязаны
	// быть атомарными.
	GetLoadForUpdate(ctx context.Context, vehicleID int64) (*entities.VehicleLoadTracking, error)
	ApplyLoadDelta(ctx context.Context, vehicleID int64, loadKg, volumeM3 float64, orderDelta int64) error

	CreateReservation(ctx context.Context, reservation entities.CapacityReservation) (*entities.CapacityReservation, error)
	GetReservationByID(ctx context.Context, id int64) (*entities.CapacityReservation, error)
	GetActiveByShipment(ctx context.Context, shipmentID int64) (*entities.CapacityReservation, error)
	// MarkReleased возвращает false, если бронь уже была снята.
	MarkReleased(ctx context.Context, id int64) (bool, error)

	ListVehicleIDs(ctx context.Context) ([]int64, error)
	SumActiveReservations(ctx context.Context, vehicleID int64) (loadKg, volumeM3 float64, count int64, err error)
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
