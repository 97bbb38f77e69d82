//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_run_post_test
package dispatch_run_post

import (
	"context"

	"pharmago/internal/service/batching"
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
	DispatchPass(ctx context.Context) (*batching.DispatchResult, error)
}
