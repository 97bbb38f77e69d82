package assignment_cleanup

import (
	"context"
	"time"

	"pharmago/pkg/logger"
)

type Service interface {
	CleanupExpiredAssignments(ctx context.Context) (int64, error)
}

type AssignmentCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewAssignmentCleanup(log logger.Logger, service Service, interval time.Duration) *AssignmentCleanup {
	return &AssignmentCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AssignmentCleanup) TTL() time.Duration {
	return a.interval
}

func (a *AssignmentCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	cancelled, err := a.service.CleanupExpiredAssignments(ctxWithTimeout)

	if cancelled > 0 {
		a.log.With(
			logger.NewField("expired_assignments", cancelled),
		).Info("assignment cleanup")
	}

	return err
}

func (a *AssignmentCleanup) Info() string {
	return "assignment cleanup"
}
