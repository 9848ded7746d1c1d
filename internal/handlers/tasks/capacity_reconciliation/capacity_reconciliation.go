package capacity_reconciliation

import (
	"context"
	"time"

	"engine/pkg/logger"
)

type Service interface {
	Reconcile(ctx context.Context) (int64, error)
}

type CapacityReconciliation struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewCapacityReconciliation(log logger.Logger, service Service, interval time.Duration) *CapacityReconciliation {
	return &CapacityReconciliation{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (c *CapacityReconciliation) TTL() time.Duration {
	return c.interval
}

func (c *CapacityReconciliation) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	mismatches, err := c.service.Reconcile(ctxWithTimeout)

	// расхождение счётчиков — повод для разбирательства, не для тихой правки
	if mismatches > 0 {
		c.log.With(
			logger.NewField("mismatched_vehicles", mismatches),
		).Warn("capacity reconciliation")
	}

	return err
}

func (c *CapacityReconciliation) Info() string {
	return "capacity reconciliation"
}
