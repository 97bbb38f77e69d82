package order_handle

import (
	"context"
	"fmt"

	"pharmago/internal/entities"
	"pharmago/internal/service/order"
)

type StatusHandlerFactory struct {
	dispatcher        order.Dispatcher
	assignmentService order.AssignmentService
}

func NewStatusHandlerFactory(dispatcher order.Dispatcher, assignmentService order.AssignmentService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		dispatcher:        dispatcher,
		assignmentService: assignmentService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderReadyForPickup:
		return f.readyForPickupHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

// readyForPickupHandler запускает проход диспетчеризации: свежеготовый заказ
// попадёт в пул и будет сгруппирован вместе с остальными.
func (f *StatusHandlerFactory) readyForPickupHandler(ctx context.Context, orderID string) error {
	if _, err := f.dispatcher.DispatchPass(ctx); err != nil {
		return fmt.Errorf("dispatch after order %s became ready: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID string) error {
	err := f.assignmentService.FreeRiderByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("free rider for cancelled order %s: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, orderID string) error {
	err := f.assignmentService.FreeRiderByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("free rider for delivered order %s: %w", orderID, err)
	}
	return nil
}
