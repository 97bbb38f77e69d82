package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pharmago/internal/entities"
)

type Service struct {
	repository    Repository
	statusFactory HandlerFactory
}

func New(repository Repository, statusFactory HandlerFactory) *Service {
	return &Service{
		repository:    repository,
		statusFactory: statusFactory,
	}
}

func (s *Service) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || strings.TrimSpace(*orderModify.ID) == "" {
		return nil, ErrInvalidOrderID
	}
	if orderModify.PharmacyLocation == nil || orderModify.DeliveryLocation == nil {
		return nil, ErrMissingRequiredFields
	}

	order, err := s.repository.Create(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// GetOrdersByIDs загружает явно перечисленные заказы для ручного батчинга.
func (s *Service) GetOrdersByIDs(ctx context.Context, orderIDs []string) ([]entities.Order, error) {
	if len(orderIDs) == 0 {
		return nil, ErrMissingRequiredFields
	}
	for _, id := range orderIDs {
		if strings.TrimSpace(id) == "" {
			return nil, ErrInvalidOrderID
		}
	}

	orders, err := s.repository.GetByIDs(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	if len(orders) != len(orderIDs) {
		return nil, fmt.Errorf("%w: requested %d, found %d", ErrOrderNotFound, len(orderIDs), len(orders))
	}
	return orders, nil
}

// ProcessOrderStatusChange применяет событие смены статуса заказа: переход
// проверяется центральной таблицей, статус фиксируется в БД, затем выполняется
// побочное действие по новому статусу (диспетчеризация, освобождение райдера).
// Статусы без обработчика просто фиксируются.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, fmt.Errorf("order id and status are required")
	}

	order, err := s.repository.GetByID(ctx, *orderModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	newStatus := *orderModify.Status

	// события доставляются минимум один раз, повтор не ошибка
	if order.Status == newStatus {
		return order, nil
	}

	if !entities.CanTransitionOrder(order.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrStatusMismatch, order.Status, newStatus)
	}

	if err := s.repository.UpdateStatus(ctx, order.ID, newStatus, order.RiderID); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	order.Status = newStatus

	executeFn, err := s.statusFactory.GetHandler(newStatus)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order.ID); err != nil {
		return nil, err
	}

	return order, nil
}
