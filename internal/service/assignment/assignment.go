package assignment

import (
	"context"
	"errors"
	"fmt"

	"pharmago/internal/entities"
)

type Assignment struct {
	repository   Repository
	orderRepo    OrderRepository
	riderService RiderService
	txManager    TxManager
}

func New(
	repository Repository,
	orderRepo OrderRepository,
	riderService RiderService,
	txManager TxManager,
) *Assignment {
	return &Assignment{
		repository:   repository,
		orderRepo:    orderRepo,
		riderService: riderService,
		txManager:    txManager,
	}
}

// PickupAssignment фиксирует забор партии райдером: назначение переходит
// в in_progress, все заказы партии — в in_transit.
func (a *Assignment) PickupAssignment(ctx context.Context, assignmentID int64) (*entities.RiderAssignment, error) {
	return a.transition(ctx, assignmentID, entities.AssignmentInProgress, entities.OrderInTransit, nil)
}

// CompleteAssignment закрывает партию: назначение переходит в completed,
// заказы — в delivered, райдер освобождается.
func (a *Assignment) CompleteAssignment(ctx context.Context, assignmentID int64) (*entities.RiderAssignment, error) {
	freeRider := entities.RiderAvailable
	return a.transition(ctx, assignmentID, entities.AssignmentCompleted, entities.OrderDelivered, &freeRider)
}

// CancelAssignment отменяет активное назначение: заказы возвращаются в пул
// ready_for_pickup без райдера, райдер освобождается.
func (a *Assignment) CancelAssignment(ctx context.Context, assignmentID int64) (*entities.RiderAssignment, error) {
	if !isValidAssignmentID(assignmentID) {
		return nil, ErrInvalidAssignmentID
	}

	var cancelled *entities.RiderAssignment
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := a.repository.GetByID(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}

		if !entities.CanTransitionAssignment(current.Status, entities.AssignmentCancelled) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, entities.AssignmentCancelled)
		}

		if err := a.repository.UpdateStatus(ctx, assignmentID, entities.AssignmentCancelled); err != nil {
			return fmt.Errorf("update assignment status: %w", err)
		}

		if _, err := a.orderRepo.RevertToReadyByAssignment(ctx, assignmentID); err != nil {
			return fmt.Errorf("revert orders: %w", err)
		}

		if err := a.freeRider(ctx, current.RiderID); err != nil {
			return err
		}

		updated := *current
		updated.Status = entities.AssignmentCancelled
		cancelled = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// CleanupExpiredAssignments отменяет назначения с просроченным дедлайном
// забора. Возвращает число затронутых назначений.
func (a *Assignment) CleanupExpiredAssignments(ctx context.Context) (int64, error) {
	rowsAffected, err := a.repository.CancelExpiredAssignments(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("cleanup: %w", err)
	}

	return rowsAffected, nil
}

// FreeRiderByOrderID отцепляет отменённый заказ от его активного назначения.
// Если заказов в назначении не осталось, назначение отменяется и райдер
// освобождается.
func (a *Assignment) FreeRiderByOrderID(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	return a.txManager.Do(ctx, func(ctx context.Context) error {
		assignment, remaining, err := a.repository.DetachOrder(ctx, orderID)
		if err != nil {
			// заказ без активного назначения — освобождать нечего
			if errors.Is(err, ErrAssignmentNotFound) {
				return nil
			}
			return fmt.Errorf("detach order: %w", err)
		}

		if remaining > 0 {
			return nil
		}

		if err := a.repository.UpdateStatus(ctx, assignment.ID, entities.AssignmentCancelled); err != nil {
			return fmt.Errorf("update assignment status: %w", err)
		}

		return a.freeRider(ctx, assignment.RiderID)
	})
}

// GetAssignment отдаёт назначение по ID.
func (a *Assignment) GetAssignment(ctx context.Context, assignmentID int64) (*entities.RiderAssignment, error) {
	if !isValidAssignmentID(assignmentID) {
		return nil, ErrInvalidAssignmentID
	}

	assignment, err := a.repository.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment, nil
}

// transition — общий путь pickup/complete: проверка перехода назначения,
// смена статуса партии и заказов, опциональное освобождение райдера.
func (a *Assignment) transition(
	ctx context.Context,
	assignmentID int64,
	toAssignment entities.AssignmentStatusType,
	toOrder entities.OrderStatusType,
	riderStatus *entities.RiderStatusType,
) (*entities.RiderAssignment, error) {
	if !isValidAssignmentID(assignmentID) {
		return nil, ErrInvalidAssignmentID
	}

	var result *entities.RiderAssignment
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := a.repository.GetByID(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}

		if !entities.CanTransitionAssignment(current.Status, toAssignment) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, toAssignment)
		}

		// сначала заказы: терминальный статус назначения деактивирует
		// строки assignment_orders, по которым идёт обновление заказов
		if _, err := a.orderRepo.UpdateStatusByAssignment(ctx, assignmentID, toOrder); err != nil {
			return fmt.Errorf("update orders status: %w", err)
		}

		if err := a.repository.UpdateStatus(ctx, assignmentID, toAssignment); err != nil {
			return fmt.Errorf("update assignment status: %w", err)
		}

		if riderStatus != nil {
			statusCopy := *riderStatus
			riderModify := entities.RiderModify{
				ID:     &current.RiderID,
				Status: &statusCopy,
			}
			if _, err := a.riderService.UpdateRider(ctx, riderModify); err != nil {
				return fmt.Errorf("update rider status: %w", err)
			}
		}

		updated := *current
		updated.Status = toAssignment
		result = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (a *Assignment) freeRider(ctx context.Context, riderID int64) error {
	availableStatus := entities.RiderAvailable
	riderModify := entities.RiderModify{
		ID:     &riderID,
		Status: &availableStatus,
	}

	updatedRider, err := a.riderService.UpdateRider(ctx, riderModify)
	if err != nil {
		return fmt.Errorf("update rider status: %w", err)
	}
	if updatedRider.Status != availableStatus {
		return fmt.Errorf("%w: rider %d is %s", ErrRiderNotFreed, riderID, updatedRider.Status)
	}
	return nil
}
