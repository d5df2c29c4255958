//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pos_eligibility_get_test
package pos_eligibility_get

import (
	"context"

	"gasline/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CanUsePOS(ctx context.Context, customerID int64) (bool, error)
}
