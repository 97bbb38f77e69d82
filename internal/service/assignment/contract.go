//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"pharmago/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.RiderAssignment, error)
	GetActiveByOrderID(ctx context.Context, orderID string) (*entities.RiderAssignment, error)
	UpdateStatus(ctx context.Context, id int64, status entities.AssignmentStatusType) error

	// DetachOrder убирает заказ из его активного назначения и возвращает
	// назначение вместе с числом оставшихся в нём заказов.
	DetachOrder(ctx context.Context, orderID string) (*entities.RiderAssignment, int64, error)

	// CancelExpiredAssignments отменяет назначения с истёкшим дедлайном забора,
	// возвращает их заказы в пул и освобождает райдеров одним запросом.
	CancelExpiredAssignments(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	UpdateStatusByAssignment(ctx context.Context, assignmentID int64, status entities.OrderStatusType) (int64, error)

	// RevertToReadyByAssignment возвращает заказы назначения в ready_for_pickup
	// и снимает с них райдера.
	RevertToReadyByAssignment(ctx context.Context, assignmentID int64) (int64, error)
}

type RiderService interface {
	UpdateRider(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
