//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"gasline/internal/entities"
)

type OrderRepository interface {
	CountOrders(ctx context.Context, filter entities.OrderCountFilter) (int64, error)

	// SetPaymentStatusByRef updates the payment status of the order carrying
	// the public reference. Unknown reference surfaces as ErrOrderNotFound.
	SetPaymentStatusByRef(ctx context.Context, orderRef string, status entities.PaymentStatusType) (*entities.Order, error)
}
