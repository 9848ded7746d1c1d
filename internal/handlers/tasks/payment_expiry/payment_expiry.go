package payment_expiry

import (
	"context"
	"time"

	"engine/pkg/logger"
)

type Service interface {
	ExpireDue(ctx context.Context, limit int64) (int64, error)
}

type PaymentExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	batch    int64
}

func NewPaymentExpiry(log logger.Logger, service Service, interval time.Duration, batch int64) *PaymentExpiry {
	return &PaymentExpiry{
		log:      log,
		service:  service,
		interval: interval,
		batch:    batch,
	}
}

func (p *PaymentExpiry) TTL() time.Duration {
	return p.interval
}

func (p *PaymentExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	expired, err := p.service.ExpireDue(ctxWithTimeout, p.batch)

	if expired > 0 {
		p.log.With(
			logger.NewField("expired_intents", expired),
		).Info("payment expiry")
	}

	return err
}

func (p *PaymentExpiry) Info() string {
	return "payment expiry"
}
