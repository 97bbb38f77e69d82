//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_pickup_post_test
package assignment_pickup_post

import (
	"context"

	"pharmago/internal/entities"
	"pharmago/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	PickupAssignment(ctx context.Context, assignmentID int64) (*entities.RiderAssignment, error)
}
