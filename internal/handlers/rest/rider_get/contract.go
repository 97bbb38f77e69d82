//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_get_test
package rider_get

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

type Service interface {
	GetRider(ctx context.Context, id int64) (*entities.Rider, error)
}
