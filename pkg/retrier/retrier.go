package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	MaxRetries      uint64
	Randomization   float64
	Multiplier      float64

	// ShouldRetry nil means every error is retried; otherwise only errors for
	// which the function returns true.
	ShouldRetry ShouldRetryFunc
}
