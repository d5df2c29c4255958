package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidCoordinates    = errors.New("invalid delivery coordinates")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidAmount         = errors.New("invalid amount")

	ErrActiveOrderExists = errors.New("customer already has an active order")
	ErrPOSNotEligible    = errors.New("customer is not eligible for POS payment")

	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidTransition      = errors.New("invalid order status transition")
	ErrDriverMismatch         = errors.New("caller is not the assigned driver")
	ErrConcurrentModification = errors.New("order was modified concurrently")
)
