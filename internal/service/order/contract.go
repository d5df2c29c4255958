//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"gasline/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetActiveByCustomer(ctx context.Context, customerID int64) (*entities.Order, error)

	// UpdateStatus is a compare-and-set: the row is updated only while its
	// status is one of expected (and, when expectedDriverID is set, the order
	// is assigned to that driver). A failed check surfaces as
	// ErrConcurrentModification for the service to classify.
	UpdateStatus(ctx context.Context, id int64, expected []entities.OrderStatusType, expectedDriverID *int64, modify entities.OrderModify) (*entities.Order, error)
}

type DriverTrips interface {
	AddTrip(ctx context.Context, driverID int64) error
}

type POSPolicy interface {
	CanUsePOS(ctx context.Context, customerID int64) (bool, error)
}

// EventPublisher hands lifecycle events to the notification pipeline. Delivery
// failures are the publisher's problem; transitions never roll back on them.
type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
