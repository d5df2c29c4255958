package payment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
	ErrOrderNotFound         = errors.New("order not found")
)
