//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"gasline/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)

	// ListPending returns the oldest pending orders first, bounded by limit.
	ListPending(ctx context.Context, limit uint64) ([]entities.Order, error)

	// Bind attaches the driver to a pending, unassigned order. A failed check
	// (the order is no longer pending or already carries a driver) surfaces as
	// ErrConcurrentModification.
	Bind(ctx context.Context, orderID, driverID int64, modify entities.OrderModify) (*entities.Order, error)
}

type DriverRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)

	// ListCandidates returns available drivers of active, unblocked users
	// together with their current active order count.
	ListCandidates(ctx context.Context) ([]entities.DriverCandidate, error)
}

type Scorer interface {
	Score(candidate entities.DriverCandidate, deliveryLat, deliveryLong float64) float64
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
