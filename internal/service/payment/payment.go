package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"

	"gasline/internal/entities"
)

// posFailureWindow is how far back failed POS attempts count against a
// customer's eligibility.
const posFailureWindow = 30 * 24 * time.Hour

type Service struct {
	orders OrderRepository
}

func New(orders OrderRepository) *Service {
	return &Service{orders: orders}
}

// CanUsePOS reports whether the customer may pay with a POS terminal on
// delivery: at least one completed POS payment ever and no failed POS payment
// within the last 30 days. Customers with no POS history are not eligible and
// start with a prepaid method.
func (s *Service) CanUsePOS(ctx context.Context, customerID int64) (bool, error) {
	if customerID <= 0 {
		return false, ErrMissingRequiredFields
	}

	successful, err := s.orders.CountOrders(ctx, entities.OrderCountFilter{
		CustomerID:    &customerID,
		PaymentMethod: pointer.To(entities.PaymentPOS),
		PaymentStatus: pointer.To(entities.PaymentCompleted),
	})
	if err != nil {
		return false, fmt.Errorf("count successful POS orders: %w", err)
	}
	if successful == 0 {
		return false, nil
	}

	windowStart := time.Now().UTC().Add(-posFailureWindow)
	failed, err := s.orders.CountOrders(ctx, entities.OrderCountFilter{
		CustomerID:    &customerID,
		PaymentMethod: pointer.To(entities.PaymentPOS),
		PaymentStatus: pointer.To(entities.PaymentFailed),
		CreatedAfter:  &windowStart,
	})
	if err != nil {
		return false, fmt.Errorf("count failed POS orders: %w", err)
	}

	return failed == 0, nil
}

// ProcessPaymentStatus applies a payment gateway callback to the order it
// references.
func (s *Service) ProcessPaymentStatus(ctx context.Context, orderRef string, status entities.PaymentStatusType) (*entities.Order, error) {
	if strings.TrimSpace(orderRef) == "" {
		return nil, ErrMissingRequiredFields
	}
	switch status {
	case entities.PaymentPending, entities.PaymentCompleted, entities.PaymentFailed:
	default:
		return nil, ErrInvalidPaymentStatus
	}

	updated, err := s.orders.SetPaymentStatusByRef(ctx, orderRef, status)
	if err != nil {
		return nil, err
	}
	return updated, nil
}
