package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"pharmago/internal/entities"
	"pharmago/internal/repository"
	"pharmago/internal/service/order"
)

const orderColumns = `id, status, pharmacy_lat, pharmacy_lng, delivery_lat, delivery_lng, ready_at, rider_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	query := `
		INSERT INTO orders (id, status, pharmacy_lat, pharmacy_lng, delivery_lat, delivery_lng, ready_at)
		VALUES ($1, COALESCE($2, 'pending'), $3, $4, $5, $6, COALESCE($7, NOW()))
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.ID,
		orderModifyModel.Status,
		orderModifyModel.PharmacyLat,
		orderModifyModel.PharmacyLng,
		orderModifyModel.DeliveryLat,
		orderModifyModel.DeliveryLng,
		orderModifyModel.ReadyAt,
	).Scan(
		&orderModel.ID,
		&orderModel.Status,
		&orderModel.PharmacyLat,
		&orderModel.PharmacyLng,
		&orderModel.DeliveryLat,
		&orderModel.DeliveryLng,
		&orderModel.ReadyAt,
		&orderModel.RiderID,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&orderModel.ID,
			&orderModel.Status,
			&orderModel.PharmacyLat,
			&orderModel.PharmacyLng,
			&orderModel.DeliveryLat,
			&orderModel.DeliveryLng,
			&orderModel.ReadyAt,
			&orderModel.RiderID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByIDs(ctx context.Context, orderIDs []string) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ANY($1) ORDER BY ready_at, id`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyids error: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// GetUnassignedByStatus отдаёт снимок пула для прохода диспетчеризации:
// заказы в заданном статусе без райдера, по возрастанию ready_at и id.
func (r *Repository) GetUnassignedByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1 AND rider_id IS NULL
		ORDER BY ready_at, id`

	rows, err := r.querier.Query(ctx, query, status.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get unassigned error: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType, riderID *int64) error {
	query := `
		UPDATE orders
		SET status = $2,
		    rider_id = $3,
		    updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, orderID, status.String(), riderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// UpdateStatusByAssignment переводит активные заказы назначения в новый статус
// одним запросом. Отцепленные строки (active = FALSE, например отменённый через
// Kafka заказ) не трогаем.
func (r *Repository) UpdateStatusByAssignment(ctx context.Context, assignmentID int64, status entities.OrderStatusType) (int64, error) {
	query := `
		UPDATE orders
		SET status = $2,
		    updated_at = NOW()
		WHERE id IN (
			SELECT order_id FROM assignment_orders WHERE assignment_id = $1 AND active
		)`

	result, err := r.querier.Exec(ctx, query, assignmentID, status.String())
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository update by assignment error: %w", err)
	}

	return result.RowsAffected(), nil
}

// RevertToReadyByAssignment возвращает заказы отменённого назначения в пул:
// статус ready_for_pickup, райдер снят. Доставленные заказы не трогаем.
func (r *Repository) RevertToReadyByAssignment(ctx context.Context, assignmentID int64) (int64, error) {
	query := `
		UPDATE orders
		SET status = 'ready_for_pickup',
		    rider_id = NULL,
		    updated_at = NOW()
		WHERE status IN ('assigned', 'in_transit')
		AND id IN (
			SELECT order_id FROM assignment_orders WHERE assignment_id = $1
		)`

	result, err := r.querier.Exec(ctx, query, assignmentID)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository revert error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanOrders(rows pgx.Rows) ([]entities.Order, error) {
	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.Status,
			&orderModel.PharmacyLat,
			&orderModel.PharmacyLng,
			&orderModel.DeliveryLat,
			&orderModel.DeliveryLng,
			&orderModel.ReadyAt,
			&orderModel.RiderID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return ToDomainList(orderModels), nil
}
