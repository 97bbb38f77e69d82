package assignment

import "errors"

var (
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidAssignmentID = errors.New("invalid assignment id")

	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrOrderAlreadyAssigned = errors.New("order already assigned")
	ErrInvalidTransition    = errors.New("invalid assignment status transition")
	ErrAssignmentNotActive  = errors.New("assignment is not active")
	ErrRiderNotFreed        = errors.New("rider was not freed")
)
