//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=batching_test
package batching

import (
	"context"
	"time"

	"pharmago/internal/entities"
)

type OrderRepository interface {
	GetUnassignedByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType, riderID *int64) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.RiderAssignment, error)
}

type RiderRepository interface {
	GetAvailableWithCapacity(ctx context.Context, minCapacity int) ([]entities.Rider, error)
}

type RiderService interface {
	UpdateRider(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error)
}

type RiderLocator interface {
	Location(ctx context.Context, riderID int64) (*entities.GeoPoint, error)
}

type DeadlineFactory interface {
	CalculateDeadline(vehicleType entities.RiderVehicleType, batchSize int, baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
