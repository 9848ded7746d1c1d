//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"engine/internal/entities"
)

type Repository interface {
	// GetForUpdate читает отправку с блокировкой строки (SELECT ... FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entities.Shipment, error)
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	Create(ctx context.Context, shipment entities.Shipment) (*entities.Shipment, error)
	Update(ctx context.Context, modify entities.ShipmentModify) (*entities.Shipment, error)

	// ListStatusBackfillChunk отдаёт очередной чанк строк с сырыми статусами,
	// отсортированный по id, начиная после afterID.
	ListStatusBackfillChunk(ctx context.Context, afterID int64, limit int64) ([]BackfillRow, error)
	UpdateStatusRaw(ctx context.Context, id int64, status entities.ShipmentStatusType) error
}

type BackfillRow struct {
	ID        int64
	RawStatus string
}

type EventLog interface {
	AppendShipmentEvent(ctx context.Context, event entities.ShipmentEvent) error
}

type Assignments interface {
	ActiveAssignment(ctx context.Context, shipmentID int64, leg entities.AssignmentLegType) (*entities.DriverAssignment, error)
	Start(ctx context.Context, shipmentID int64, leg entities.AssignmentLegType) (*entities.DriverAssignment, error)
	Complete(ctx context.Context, shipmentID int64, leg entities.AssignmentLegType) (*entities.DriverAssignment, error)
	HasOpenAssignments(ctx context.Context, shipmentID int64) (bool, error)
}

type Payments interface {
	HasConfirmedIntent(ctx context.Context, shipmentID int64) (bool, error)
	HasOpenIntent(ctx context.Context, shipmentID int64) (bool, error)
}

type Manifests interface {
	// ActiveItem возвращает nil без ошибки, если отправка не лежит ни в одном
	// открытом манифесте.
	ActiveItem(ctx context.Context, shipmentID int64) (*entities.TransitManifestItem, error)
}

type Capacity interface {
	// ActiveReservation возвращает nil без ошибки, если активной брони нет.
	ActiveReservation(ctx context.Context, shipmentID int64) (*entities.CapacityReservation, error)
	ReleaseByShipment(ctx context.Context, shipmentID int64) error
}

type AdminTasks interface {
	Open(ctx context.Context, kind entities.AdminTaskKindType, refType string, refID int64, note string) (*entities.AdminTask, error)
	HasResolvedFor(ctx context.Context, refType string, refID int64, since time.Time) (bool, error)
}

// RouteResolver — внешний справочник географии. Движок только валидирует
// route_scope, резолвинг провинций/районов живёт снаружи.
type RouteResolver interface {
	ValidateRouteScope(ctx context.Context, routeScope string) error
}

// PricingService считает котировку снаружи; движок хранит результат, но не
// формулу.
type PricingService interface {
	Quote(ctx context.Context, weightKg, volumeM3 float64, routeScope string) (int64, error)
}

// Notifier получает события "статус изменился" строго после коммита,
// fire-and-forget.
type Notifier interface {
	ShipmentStatusChanged(shipmentID int64, oldStatus, newStatus entities.ShipmentStatusType, actor entities.Actor)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
