package eventlog

import (
	"context"
	"fmt"

	"engine/internal/entities"
)

// Порог неудачных дозвонов, после которого отправка уходит оператору.
const unreachableCallThreshold = 3

// Recorder пишет событийные таблицы. Таблицы append-only, а call_logs и
// warehouse_scans уникальны по натуральному ключу: повторная запись того же
// события при ретрае — успешный no-op.
type Recorder struct {
	repository Repository
	adminTasks AdminTasks
}

func New(repository Repository, adminTasks AdminTasks) *Recorder {
	return &Recorder{
		repository: repository,
		adminTasks: adminTasks,
	}
}

func (r *Recorder) AppendShipmentEvent(ctx context.Context, event entities.ShipmentEvent) error {
	if event.ShipmentID <= 0 {
		return ErrInvalidShipmentID
	}
	if _, err := r.repository.CreateShipmentEvent(ctx, event); err != nil {
		return fmt.Errorf("create shipment event: %w", err)
	}
	return nil
}

// RecordCall фиксирует попытку дозвона. Дубликат по (shipment, call_type,
// attempt_no) молча игнорируется. После третьей неудачной попытки открывается
// задача contact_unreachable, если её ещё нет.
func (r *Recorder) RecordCall(ctx context.Context, log entities.CallLog) error {
	if log.ShipmentID <= 0 {
		return ErrInvalidShipmentID
	}
	if log.AttemptNo <= 0 {
		return ErrInvalidAttemptNo
	}
	switch log.CallType {
	case entities.CallPickupContact, entities.CallDeliveryContact, entities.CallReturnContact:
	default:
		return ErrUnknownCallType
	}

	inserted, err := r.repository.InsertCallLog(ctx, log)
	if err != nil {
		return fmt.Errorf("insert call log: %w", err)
	}
	if !inserted || log.Outcome != "no_answer" {
		return nil
	}

	failed, err := r.repository.CountFailedCalls(ctx, log.ShipmentID, log.CallType)
	if err != nil {
		return fmt.Errorf("count failed calls: %w", err)
	}
	if failed < unreachableCallThreshold {
		return nil
	}

	flagged, err := r.adminTasks.HasOpenFor(ctx, "shipment", log.ShipmentID)
	if err != nil {
		return fmt.Errorf("check open admin task: %w", err)
	}
	if !flagged {
		note := fmt.Sprintf("%d failed %s calls", failed, log.CallType)
		if _, err := r.adminTasks.Open(ctx, entities.AdminTaskContactUnreachable, "shipment", log.ShipmentID, note); err != nil {
			return fmt.Errorf("open admin task: %w", err)
		}
	}
	return nil
}

// RecordScan фиксирует складской скан. Дубликат по (shipment, branch, role,
// scan_type) молча игнорируется.
func (r *Recorder) RecordScan(ctx context.Context, scan entities.WarehouseScan) error {
	if scan.ShipmentID <= 0 {
		return ErrInvalidShipmentID
	}
	if scan.BranchID <= 0 {
		return ErrInvalidBranchID
	}
	switch scan.WarehouseRole {
	case entities.WarehouseOrigin, entities.WarehouseDest:
	default:
		return ErrUnknownRole
	}
	switch scan.ScanType {
	case entities.ScanInbound, entities.ScanOutbound:
	default:
		return ErrUnknownScanType
	}

	if _, err := r.repository.InsertWarehouseScan(ctx, scan); err != nil {
		return fmt.Errorf("insert warehouse scan: %w", err)
	}
	return nil
}

// History возвращает события отправки в порядке записи.
func (r *Recorder) History(ctx context.Context, shipmentID int64) ([]entities.ShipmentEvent, error) {
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}
	events, err := r.repository.ListShipmentEvents(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list shipment events: %w", err)
	}
	return events, nil
}
