package rider

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"pharmago/internal/entities"
	"pharmago/internal/repository"
	"pharmago/internal/service/rider"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, riderModifyEntity entities.RiderModify) (int64, error) {
	riderModifyModel := FromDomainModify(&riderModifyEntity)
	query := `INSERT INTO riders (name, phone, status, vehicle_type, capacity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		riderModifyModel.Name,
		riderModifyModel.Phone,
		riderModifyModel.Status,
		riderModifyModel.VehicleType,
		riderModifyModel.Capacity,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, rider.ErrConflict
		}
		return 0, fmt.Errorf("unexpected rider repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, riderModifyEntity entities.RiderModify) (*entities.Rider, error) {
	riderModifyModel := FromDomainModify(&riderModifyEntity)

	builder := qb.
		Update("riders")

	// опционнные поля
	if riderModifyModel.Name != nil {
		builder = builder.Set("name", riderModifyModel.Name)
	}
	if riderModifyModel.Phone != nil {
		builder = builder.Set("phone", riderModifyModel.Phone)
	}
	if riderModifyModel.Status != nil {
		builder = builder.Set("status", riderModifyModel.Status)
	}
	if riderModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", riderModifyModel.VehicleType)
	}
	if riderModifyModel.Capacity != nil {
		builder = builder.Set("capacity", riderModifyModel.Capacity)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"ID": riderModifyModel.ID}).
		Suffix("RETURNING ID, name, phone, status, vehicle_type, capacity, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	var riderModel RiderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&riderModel.ID,
			&riderModel.Name,
			&riderModel.Phone,
			&riderModel.Status,
			&riderModel.VehicleType,
			&riderModel.Capacity,
			&riderModel.CreatedAt,
			&riderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, rider.ErrConflict
		}

		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	return ToDomain(&riderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Rider, error) {
	query := `SELECT id, name, phone, status, vehicle_type, capacity, created_at, updated_at
		FROM riders
		WHERE id = $1`

	var riderModel RiderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&riderModel.ID,
			&riderModel.Name,
			&riderModel.Phone,
			&riderModel.Status,
			&riderModel.VehicleType,
			&riderModel.Capacity,
			&riderModel.CreatedAt,
			&riderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}

		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	return ToDomain(&riderModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Rider, error) {
	query := `
	SELECT id, name, phone, status, vehicle_type, capacity, created_at, updated_at
	FROM riders
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
	}
	defer rows.Close()

	riderModels := make([]RiderDB, 0, 8)
	for rows.Next() {
		var riderModel RiderDB
		err := rows.Scan(
			&riderModel.ID,
			&riderModel.Name,
			&riderModel.Phone,
			&riderModel.Status,
			&riderModel.VehicleType,
			&riderModel.Capacity,
			&riderModel.CreatedAt,
			&riderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
		}
		riderModels = append(riderModels, riderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getall error: %w", err)
	}

	return ToDomainList(riderModels), nil
}

// GetAvailableWithCapacity отдаёт свободных райдеров с вместимостью не меньше
// minCapacity, упорядоченных по id для детерминированного выбора.
func (r *Repository) GetAvailableWithCapacity(ctx context.Context, minCapacity int) ([]entities.Rider, error) {
	query := `
	SELECT id, name, phone, status, vehicle_type, capacity, created_at, updated_at
	FROM riders
	WHERE status = 'available' AND capacity >= $1
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query, minCapacity)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository get available error: %w", err)
	}
	defer rows.Close()

	riderModels := make([]RiderDB, 0, 8)
	for rows.Next() {
		var riderModel RiderDB
		err := rows.Scan(
			&riderModel.ID,
			&riderModel.Name,
			&riderModel.Phone,
			&riderModel.Status,
			&riderModel.VehicleType,
			&riderModel.Capacity,
			&riderModel.CreatedAt,
			&riderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected rider repository get available error: %w", err)
		}
		riderModels = append(riderModels, riderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository get available error: %w", err)
	}

	return ToDomainList(riderModels), nil
}
