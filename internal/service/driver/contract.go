//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"
	"time"

	"gasline/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, create entities.DriverCreate) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)
	GetAll(ctx context.Context) ([]entities.Driver, error)
	Update(ctx context.Context, modify entities.DriverModify) (*entities.Driver, error)
	IncrementTrips(ctx context.Context, id int64) error

	// MarkUnavailableBefore clears availability of drivers whose last
	// heartbeat is older than the deadline. Returns the number of rows hit.
	MarkUnavailableBefore(ctx context.Context, deadline time.Time) (int64, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
