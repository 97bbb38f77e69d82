//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"pharmago/internal/entities"
	"pharmago/internal/service/batching"
)

type Repository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetByIDs(ctx context.Context, orderIDs []string) ([]entities.Order, error)
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType, riderID *int64) error
}

type AssignmentService interface {
	FreeRiderByOrderID(ctx context.Context, orderID string) error
}

type Dispatcher interface {
	DispatchPass(ctx context.Context) (*batching.DispatchResult, error)
}

type (
	ExecuteFn      func(ctx context.Context, orderID string) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
