//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=eventlog_test
package eventlog

import (
	"context"

	"engine/internal/entities"
)

type Repository interface {
	CreateShipmentEvent(ctx context.Context, event entities.ShipmentEvent) (*entities.ShipmentEvent, error)
	// InsertCallLog и InsertWarehouseScan возвращают false, если строка с тем же
	// натуральным ключом уже существует.
	InsertCallLog(ctx context.Context, log entities.CallLog) (bool, error)
	InsertWarehouseScan(ctx context.Context, scan entities.WarehouseScan) (bool, error)

	ListShipmentEvents(ctx context.Context, shipmentID int64) ([]entities.ShipmentEvent, error)
	CountFailedCalls(ctx context.Context, shipmentID int64, callType entities.CallLogType) (int64, error)
}

type AdminTasks interface {
	Open(ctx context.Context, kind entities.AdminTaskKindType, refType string, refID int64, note string) (*entities.AdminTask, error)
	HasOpenFor(ctx context.Context, refType string, refID int64) (bool, error)
}
