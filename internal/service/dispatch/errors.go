package dispatch

import "errors"

var (
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrNoDriverAvailable      = errors.New("no driver available")
	ErrDriverNotFound         = errors.New("driver not found")
	ErrDriverUnavailable      = errors.New("driver unavailable")
	ErrOrderNotPending        = errors.New("order is not pending assignment")
	ErrConcurrentModification = errors.New("order modified concurrently")
)
