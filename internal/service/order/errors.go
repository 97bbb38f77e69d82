package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrStatusMismatch        = errors.New("order status transition not allowed")
	ErrUndefinedStatus       = errors.New("undefined order status")
	ErrOrderNotFound         = errors.New("order not found")
	ErrConflict              = errors.New("resource already exists")
)
