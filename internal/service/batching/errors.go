package batching

import "errors"

var (
	ErrOrderNotReady    = errors.New("order is not ready for pickup")
	ErrNoAvailableRider = errors.New("no available rider for group")
	ErrEmptyGroup       = errors.New("empty order group")
	ErrNotBatchable     = errors.New("orders cannot be batched together")
	ErrInvalidConfig    = errors.New("invalid batching config")
)
