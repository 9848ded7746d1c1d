package entities

import (
	"time"
)

type Shipment struct {
	ID                int64
	Code              string
	SenderName        string
	SenderPhone       string
	SenderAddress     string
	ReceiverName      string
	ReceiverPhone     string
	ReceiverAddress   string
	WeightKg          float64
	VolumeM3          float64
	RouteScope        string
	Status            ShipmentStatusType
	PreIssueStatus    *ShipmentStatusType
	AssignedBranchID  *int64
	AssignedVehicleID *int64
	QuotedPriceCents  *int64
	AssignedAt        *time.Time
	DeliveredAt       *time.Time
	ClosedAt          *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ShipmentStatusType string

const (
	ShipmentBooked            ShipmentStatusType = "BOOKED"
	ShipmentPriceEstimated    ShipmentStatusType = "PRICE_ESTIMATED"
	ShipmentBranchAssigned    ShipmentStatusType = "BRANCH_ASSIGNED"
	ShipmentPickupScheduled   ShipmentStatusType = "PICKUP_SCHEDULED"
	ShipmentPickupRescheduled ShipmentStatusType = "PICKUP_RESCHEDULED"
	ShipmentOnTheWayPickup    ShipmentStatusType = "ON_THE_WAY_PICKUP"
	ShipmentVerifiedItem      ShipmentStatusType = "VERIFIED_ITEM"
	ShipmentAdjustItem        ShipmentStatusType = "ADJUST_ITEM"
	ShipmentConfirmedPrice    ShipmentStatusType = "CONFIRMED_PRICE"
	ShipmentAdjustedPrice     ShipmentStatusType = "ADJUSTED_PRICE"
	ShipmentPendingPayment    ShipmentStatusType = "PENDING_PAYMENT"
	ShipmentConfirmPayment    ShipmentStatusType = "CONFIRM_PAYMENT"
	ShipmentPaymentConfirmed  ShipmentStatusType = "PAYMENT_CONFIRMED"
	ShipmentPickupComplete    ShipmentStatusType = "PICKUP_COMPLETE"
	ShipmentPickupCompleted   ShipmentStatusType = "PICKUP_COMPLETED"
	ShipmentInOriginWarehouse ShipmentStatusType = "IN_ORIGIN_WAREHOUSE"
	ShipmentInTransit         ShipmentStatusType = "IN_TRANSIT"
	ShipmentInDestWarehouse   ShipmentStatusType = "IN_DEST_WAREHOUSE"
	ShipmentOutForDelivery    ShipmentStatusType = "OUT_FOR_DELIVERY"
	ShipmentDeliveryFailed    ShipmentStatusType = "DELIVERY_FAILED"
	ShipmentDeliveredSuccess  ShipmentStatusType = "DELIVERED_SUCCESS"
	ShipmentReturnCreated     ShipmentStatusType = "RETURN_CREATED"
	ShipmentReturnInTransit   ShipmentStatusType = "RETURN_IN_TRANSIT"
	ShipmentReturnedToOrigin  ShipmentStatusType = "RETURNED_TO_ORIGIN"
	ShipmentReturnCompleted   ShipmentStatusType = "RETURN_COMPLETED"
	ShipmentDisposed          ShipmentStatusType = "DISPOSED"
	ShipmentClosed            ShipmentStatusType = "CLOSED"
	ShipmentIssue             ShipmentStatusType = "ISSUE"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

// IsTerminal: закрытая отправка больше не меняет статус.
func (s ShipmentStatusType) IsTerminal() bool {
	return s == ShipmentClosed
}

func (s ShipmentStatusType) IsKnown() bool {
	_, ok := knownShipmentStatuses[s]
	return ok
}

var knownShipmentStatuses = map[ShipmentStatusType]struct{}{
	ShipmentBooked:            {},
	ShipmentPriceEstimated:    {},
	ShipmentBranchAssigned:    {},
	ShipmentPickupScheduled:   {},
	ShipmentPickupRescheduled: {},
	ShipmentOnTheWayPickup:    {},
	ShipmentVerifiedItem:      {},
	ShipmentAdjustItem:        {},
	ShipmentConfirmedPrice:    {},
	ShipmentAdjustedPrice:     {},
	ShipmentPendingPayment:    {},
	ShipmentConfirmPayment:    {},
	ShipmentPaymentConfirmed:  {},
	ShipmentPickupComplete:    {},
	ShipmentPickupCompleted:   {},
	ShipmentInOriginWarehouse: {},
	ShipmentInTransit:         {},
	ShipmentInDestWarehouse:   {},
	ShipmentOutForDelivery:    {},
	ShipmentDeliveryFailed:    {},
	ShipmentDeliveredSuccess:  {},
	ShipmentReturnCreated:     {},
	ShipmentReturnInTransit:   {},
	ShipmentReturnedToOrigin:  {},
	ShipmentReturnCompleted:   {},
	ShipmentDisposed:          {},
	ShipmentClosed:            {},
	ShipmentIssue:             {},
}

// legacyShipmentStatuses переводит устаревшие значения из старых строк БД в
// каноничные. Используется только на границе (бэкфилл), внутри машины
// состояний хождений по алиасам нет.
var legacyShipmentStatuses = map[string]ShipmentStatusType{
	"CREATED":          ShipmentBooked,
	"NEW":              ShipmentBooked,
	"PRICE_QUOTED":     ShipmentPriceEstimated,
	"ASSIGNED_BRANCH":  ShipmentBranchAssigned,
	"PICKUP_PLANNED":   ShipmentPickupScheduled,
	"PICKING_UP":       ShipmentOnTheWayPickup,
	"AT_WAREHOUSE":     ShipmentInOriginWarehouse,
	"TRANSITING":       ShipmentInTransit,
	"DELIVERING":       ShipmentOutForDelivery,
	"DELIVERED":        ShipmentDeliveredSuccess,
	"DELIVERY_SUCCESS": ShipmentDeliveredSuccess,
	"RETURNING":        ShipmentReturnInTransit,
	"DONE":             ShipmentClosed,
}

// CanonicalShipmentStatus принимает сырое значение статуса (из старой БД или
// внешнего вызова) и возвращает каноничный статус.
func CanonicalShipmentStatus(raw string) (ShipmentStatusType, bool) {
	status := ShipmentStatusType(raw)
	if status.IsKnown() {
		return status, true
	}
	if mapped, ok := legacyShipmentStatuses[raw]; ok {
		return mapped, true
	}
	return "", false
}

type ShipmentModify struct {
	ID                *int64
	Status            *ShipmentStatusType
	PreIssueStatus    *ShipmentStatusType
	AssignedBranchID  *int64
	AssignedVehicleID *int64
	QuotedPriceCents  *int64
	AssignedAt        *time.Time
	DeliveredAt       *time.Time
	ClosedAt          *time.Time
}

type ActorType string

const (
	ActorCustomer    ActorType = "customer"
	ActorBranchStaff ActorType = "branch_staff"
	ActorDriver      ActorType = "driver"
	ActorSystem      ActorType = "system"
)

func (t ActorType) String() string {
	return string(t)
}

// Actor описывает кто запросил переход статуса.
type Actor struct {
	Type ActorType
	ID   int64
}

var SystemActor = Actor{Type: ActorSystem}
