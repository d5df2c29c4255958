//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_transition_post_test
package order_transition_post

import (
	"context"

	"gasline/internal/entities"
	"gasline/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Service covers the driver-side lifecycle transitions. They share one
// handler: same request shape, same error mapping, different service call.
type Service interface {
	AcceptOrder(ctx context.Context, orderID, driverID int64) (*entities.Order, error)
	PickUpOrder(ctx context.Context, orderID, driverID int64) (*entities.Order, error)
	MarkInTransit(ctx context.Context, orderID, driverID int64) (*entities.Order, error)
	DeliverOrder(ctx context.Context, orderID, driverID int64) (*entities.Order, error)
}
