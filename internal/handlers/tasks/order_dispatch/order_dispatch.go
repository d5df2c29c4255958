package order_dispatch

import (
	"context"
	"time"

	"gasline/pkg/logger"
)

type Service interface {
	ProcessPendingOrders(ctx context.Context) (int, error)
}

// OrderDispatch sweeps orders that are still pending, typically because no
// driver was available when they were created, and retries auto-assignment.
type OrderDispatch struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderDispatch(log logger.Logger, service Service, interval time.Duration) *OrderDispatch {
	return &OrderDispatch{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderDispatch) TTL() time.Duration {
	return o.interval
}

func (o *OrderDispatch) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	assigned, err := o.service.ProcessPendingOrders(ctxWithTimeout)

	if assigned > 0 {
		o.log.With(
			logger.NewField("assigned_orders", assigned),
		).Info("order dispatch sweep")
	}

	return err
}

func (o *OrderDispatch) Info() string {
	return "order dispatch sweep"
}
