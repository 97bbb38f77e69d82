package rider

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidVehicle        = errors.New("invalid vehicle type")
	ErrInvalidCapacity       = errors.New("invalid capacity")
	ErrInvalidLocation       = errors.New("invalid location")

	ErrRiderNotFound    = errors.New("rider not found")
	ErrLocationNotFound = errors.New("rider location not found")
	ErrConflict         = errors.New("resource already exists")
)
