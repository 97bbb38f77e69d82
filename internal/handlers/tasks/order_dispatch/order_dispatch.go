package order_dispatch

import (
	"context"
	"time"

	"pharmago/internal/service/batching"
	"pharmago/pkg/logger"
)

type Service interface {
	DispatchPass(ctx context.Context) (*batching.DispatchResult, error)
}

// OrderDispatch периодически прогоняет пул готовых заказов через
// группировку и назначение. Worker сериализует вызовы Do, так что
// конкурентных проходов не бывает.
type OrderDispatch struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderDispatch(log logger.Logger, service Service, interval time.Duration) *OrderDispatch {
	return &OrderDispatch{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderDispatch) TTL() time.Duration {
	return o.interval
}

func (o *OrderDispatch) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	result, err := o.service.DispatchPass(ctxWithTimeout)
	if err != nil {
		return err
	}

	if len(result.Assignments) > 0 || result.UnassignedGroups > 0 || result.ExcludedOrders > 0 {
		o.log.With(
			logger.NewField("assignments", len(result.Assignments)),
			logger.NewField("unassigned_groups", result.UnassignedGroups),
			logger.NewField("excluded_orders", result.ExcludedOrders),
		).Info("order dispatch pass")
	}

	return nil
}

func (o *OrderDispatch) Info() string {
	return "order dispatch"
}
