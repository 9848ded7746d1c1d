package hold_expiry

import (
	"context"
	"time"

	"engine/pkg/logger"
)

type Service interface {
	FlagExpiredHolds(ctx context.Context, limit int64) (int64, error)
}

type HoldExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	batch    int64
}

func NewHoldExpiry(log logger.Logger, service Service, interval time.Duration, batch int64) *HoldExpiry {
	return &HoldExpiry{
		log:      log,
		service:  service,
		interval: interval,
		batch:    batch,
	}
}

func (h *HoldExpiry) TTL() time.Duration {
	return h.interval
}

func (h *HoldExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	flagged, err := h.service.FlagExpiredHolds(ctxWithTimeout, h.batch)

	if flagged > 0 {
		h.log.With(
			logger.NewField("flagged_holds", flagged),
		).Info("hold expiry")
	}

	return err
}

func (h *HoldExpiry) Info() string {
	return "hold expiry"
}
