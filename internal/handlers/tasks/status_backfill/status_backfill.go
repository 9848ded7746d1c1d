package status_backfill

import (
	"context"
	"time"

	"engine/pkg/logger"
)

type Service interface {
	BackfillLegacyStatuses(ctx context.Context, chunkSize int64) (int64, error)
}

type StatusBackfill struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	chunkSize int64
}

func NewStatusBackfill(log logger.Logger, service Service, interval time.Duration, chunkSize int64) *StatusBackfill {
	return &StatusBackfill{
		log:       log,
		service:   service,
		interval:  interval,
		chunkSize: chunkSize,
	}
}

func (s *StatusBackfill) TTL() time.Duration {
	return s.interval
}

func (s *StatusBackfill) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	updated, err := s.service.BackfillLegacyStatuses(ctxWithTimeout, s.chunkSize)

	if updated > 0 {
		s.log.With(
			logger.NewField("updated_shipments", updated),
		).Info("status backfill")
	}

	return err
}

func (s *StatusBackfill) Info() string {
	return "status backfill"
}
