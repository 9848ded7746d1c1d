package entities

import "time"

// ShipmentEvent — запись аудита перехода статуса. Таблицы *_event append-only
// и неизменяемы: именно они, а не мутабельная колонка статуса, являются
// источником правды о том, что происходило с отправкой.
type ShipmentEvent struct {
	ID         int64
	ShipmentID int64
	OldStatus  *ShipmentStatusType
	NewStatus  ShipmentStatusType
	ActorType  ActorType
	ActorID    int64
	EventAt    time.Time
}

type CallLogType string

const (
	CallPickupContact   CallLogType = "pickup_contact"
	CallDeliveryContact CallLogType = "delivery_contact"
	CallReturnContact   CallLogType = "return_contact"
)

func (t CallLogType) String() string {
	return string(t)
}

// CallLog уникален по (shipment, call_type, attempt_no): повторная вставка
// того же звонка при ретрае — успешный no-op.
type CallLog struct {
	ID         int64
	ShipmentID int64
	CallType   CallLogType
	AttemptNo  int64
	Outcome    string
	EventAt    time.Time
}

type WarehouseRoleType string

const (
	WarehouseOrigin WarehouseRoleType = "origin"
	WarehouseDest   WarehouseRoleType = "dest"
)

type ScanType string

const (
	ScanInbound  ScanType = "inbound"
	ScanOutbound ScanType = "outbound"
)

// WarehouseScan уникален по (shipment, branch, warehouse_role, scan_type).
type WarehouseScan struct {
	ID            int64
	ShipmentID    int64
	BranchID      int64
	WarehouseRole WarehouseRoleType
	ScanType      ScanType
	EventAt       time.Time
}
