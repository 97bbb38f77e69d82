//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_batch_post_test
package orders_batch_post

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

type OrderService interface {
	GetOrdersByIDs(ctx context.Context, orderIDs []string) ([]entities.Order, error)
}

type BatchingService interface {
	BatchOrders(ctx context.Context, orders []entities.Order) (*entities.BatchAssignment, error)
}
