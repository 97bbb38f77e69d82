package assignment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"pharmago/internal/entities"
	"pharmago/internal/repository"
	"pharmago/internal/service/assignment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const assignmentColumns = `ra.id, ra.rider_id, ra.status, ra.assigned_at, ra.deadline, ra.created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет назначение и его заказы в порядке забора. Частичный
// уникальный индекс на активные назначения не даёт назначить заказ дважды.
func (r *Repository) Create(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.RiderAssignment, error) {
	assignmentModifyDB := FromDomainModify(&assignmentModify)

	query := `
		INSERT INTO rider_assignments (rider_id, status, assigned_at, deadline)
		VALUES ($1, $2, $3, $4)
		RETURNING id, rider_id, status, assigned_at, deadline, created_at
	`

	var assignmentDB AssignmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		assignmentModifyDB.RiderID,
		assignmentModifyDB.Status,
		assignmentModifyDB.AssignedAt,
		assignmentModifyDB.Deadline,
	).Scan(
		&assignmentDB.ID,
		&assignmentDB.RiderID,
		&assignmentDB.Status,
		&assignmentDB.AssignedAt,
		&assignmentDB.Deadline,
		&assignmentDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	builder := qb.Insert("assignment_orders").Columns("assignment_id", "order_id", "pickup_sequence")
	for i, orderID := range assignmentModifyDB.OrderIDs {
		builder = builder.Values(assignmentDB.ID, orderID, i+1)
	}

	insertQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, insertQuery, args...); err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrOrderAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected assignment repository create orders error: %w", err)
	}

	assignmentDB.OrderIDs = assignmentModifyDB.OrderIDs
	return ToDomain(&assignmentDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.RiderAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `,
			COALESCE(array_agg(ao.order_id ORDER BY ao.pickup_sequence) FILTER (WHERE ao.order_id IS NOT NULL), '{}')
		FROM rider_assignments ra
		LEFT JOIN assignment_orders ao ON ao.assignment_id = ra.id AND ao.active
		WHERE ra.id = $1
		GROUP BY ra.id
	`

	return r.scanOne(r.querier.QueryRow(ctx, query, id))
}

func (r *Repository) GetActiveByOrderID(ctx context.Context, orderID string) (*entities.RiderAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `,
			COALESCE(array_agg(ao.order_id ORDER BY ao.pickup_sequence) FILTER (WHERE ao.order_id IS NOT NULL), '{}')
		FROM rider_assignments ra
		JOIN assignment_orders target ON target.assignment_id = ra.id AND target.order_id = $1 AND target.active
		LEFT JOIN assignment_orders ao ON ao.assignment_id = ra.id AND ao.active
		WHERE ra.status IN ('pending_pickup', 'in_progress')
		GROUP BY ra.id
	`

	return r.scanOne(r.querier.QueryRow(ctx, query, orderID))
}

// UpdateStatus переводит назначение в новый статус. Для терминальных
// статусов снимает флаг active с заказов, освобождая их для повторной
// группировки.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.AssignmentStatusType) error {
	query := `
		WITH updated AS (
			UPDATE rider_assignments
			SET status = $2
			WHERE id = $1
			RETURNING id, status
		), deactivated AS (
			UPDATE assignment_orders
			SET active = FALSE
			WHERE assignment_id IN (
				SELECT id FROM updated WHERE status IN ('completed', 'cancelled')
			)
		)
		SELECT COUNT(*) FROM updated
	`

	var updated int64
	if err := r.querier.QueryRow(ctx, query, id, status.String()).Scan(&updated); err != nil {
		return fmt.Errorf("unexpected assignment repository update status error: %w", err)
	}

	if updated == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// DetachOrder убирает заказ из активного назначения и возвращает это
// назначение вместе с числом оставшихся заказов.
func (r *Repository) DetachOrder(ctx context.Context, orderID string) (*entities.RiderAssignment, int64, error) {
	query := `
		WITH target AS (
			SELECT ao.assignment_id
			FROM assignment_orders ao
			JOIN rider_assignments ra ON ra.id = ao.assignment_id
			WHERE ao.order_id = $1
			  AND ao.active
			  AND ra.status IN ('pending_pickup', 'in_progress')
		), removed AS (
			UPDATE assignment_orders
			SET active = FALSE
			WHERE order_id = $1
			  AND assignment_id IN (SELECT assignment_id FROM target)
		)
		SELECT ` + assignmentColumns + `,
			(SELECT COUNT(*) FROM assignment_orders ao
			 WHERE ao.assignment_id = ra.id AND ao.active AND ao.order_id != $1)
		FROM rider_assignments ra
		WHERE ra.id IN (SELECT assignment_id FROM target)
	`

	var assignmentDB AssignmentDB
	var remaining int64
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&assignmentDB.ID,
		&assignmentDB.RiderID,
		&assignmentDB.Status,
		&assignmentDB.AssignedAt,
		&assignmentDB.Deadline,
		&assignmentDB.CreatedAt,
		&remaining,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, assignment.ErrAssignmentNotFound
		}
		return nil, 0, fmt.Errorf("unexpected assignment repository detach error: %w", err)
	}

	return ToDomain(&assignmentDB), remaining, nil
}

// CancelExpiredAssignments одним запросом отменяет назначения с истёкшим
// дедлайном забора, возвращает их заказы в пул и освобождает райдеров.
func (r *Repository) CancelExpiredAssignments(ctx context.Context) (int64, error) {
	query := `
		WITH expired AS (
			UPDATE rider_assignments
			SET status = 'cancelled'
			WHERE status = 'pending_pickup'
			  AND deadline < NOW()
			RETURNING id, rider_id
		), freed_riders AS (
			UPDATE riders
			SET status = 'available',
			    updated_at = NOW()
			WHERE status = 'busy'
			  AND id IN (SELECT rider_id FROM expired)
		), reverted_orders AS (
			UPDATE orders
			SET status = 'ready_for_pickup',
			    rider_id = NULL,
			    updated_at = NOW()
			WHERE status = 'assigned'
			  AND id IN (
				SELECT order_id FROM assignment_orders
				WHERE assignment_id IN (SELECT id FROM expired) AND active
			  )
		), deactivated AS (
			UPDATE assignment_orders
			SET active = FALSE
			WHERE assignment_id IN (SELECT id FROM expired)
		)
		SELECT COUNT(*) FROM expired
	`

	var cancelled int64
	err := r.querier.QueryRow(ctx, query).Scan(&cancelled)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository cancel expired error: %w", err)
	}

	return cancelled, nil
}

func (r *Repository) scanOne(row pgx.Row) (*entities.RiderAssignment, error) {
	var assignmentDB AssignmentDB
	err := row.Scan(
		&assignmentDB.ID,
		&assignmentDB.RiderID,
		&assignmentDB.Status,
		&assignmentDB.AssignedAt,
		&assignmentDB.Deadline,
		&assignmentDB.CreatedAt,
		&assignmentDB.OrderIDs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository scan error: %w", err)
	}

	return ToDomain(&assignmentDB), nil
}
