//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"

	"pharmago/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, riderModifyEntity entities.RiderModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Rider, error)
	GetAll(ctx context.Context) ([]entities.Rider, error)
	GetAvailableWithCapacity(ctx context.Context, minCapacity int) ([]entities.Rider, error)
	Update(ctx context.Context, riderModifyEntity entities.RiderModify) (*entities.Rider, error)
}

type LocationStore interface {
	SetLocation(ctx context.Context, riderID int64, location entities.GeoPoint) error
	Location(ctx context.Context, riderID int64) (*entities.GeoPoint, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
