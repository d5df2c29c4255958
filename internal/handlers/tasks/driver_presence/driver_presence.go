package driver_presence

import (
	"context"
	"time"

	"gasline/pkg/logger"
)

type Service interface {
	MarkStaleUnavailable(ctx context.Context, offlineAfter time.Duration) (int64, error)
}

// DriverPresence periodically takes drivers with a stale heartbeat out of the
// assignment pool.
type DriverPresence struct {
	log          logger.Logger
	service      Service
	interval     time.Duration
	offlineAfter time.Duration
}

func NewDriverPresence(log logger.Logger, service Service, interval, offlineAfter time.Duration) *DriverPresence {
	return &DriverPresence{
		log:          log,
		service:      service,
		interval:     interval,
		offlineAfter: offlineAfter,
	}
}

func (d *DriverPresence) TTL() time.Duration {
	return d.interval
}

func (d *DriverPresence) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	rowsAffected, err := d.service.MarkStaleUnavailable(ctxWithTimeout, d.offlineAfter)

	if rowsAffected > 0 {
		d.log.With(
			logger.NewField("stale_drivers", rowsAffected),
		).Info("driver presence sweep")
	}

	return err
}

func (d *DriverPresence) Info() string {
	return "driver presence sweep"
}
