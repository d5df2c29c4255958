//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_confirm_post_test
package order_confirm_post

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
	ConfirmDelivery(ctx context.Context, orderID, customerID int64) (*entities.Order, error)
}
