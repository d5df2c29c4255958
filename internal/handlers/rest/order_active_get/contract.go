//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_active_get_test
package order_active_get

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

type Service interface {
	CheckActiveOrder(ctx context.Context, customerID int64) (*entities.ActiveOrderCheck, error)
}
