package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StatusReconciliationJob periodically asks the delivery provider for the
// current status of every order that has not reached a terminal state and
// overwrites the stored status with the provider's answer.
//
// The provider lookup is best-effort: an empty report leaves the stored
// status untouched.
type StatusReconciliationJob struct {
	repository ports.OrderRepository
	provider   ports.DeliveryProvider
	handler    commands.UpdateOrderStatusCommandHandler
	cron       *cron.Cron
	schedule   string
	logger     *slog.Logger
}

// NewStatusReconciliationJob creates a job that reconciles order statuses
// against the delivery provider on the given cron schedule.
func NewStatusReconciliationJob(
	repository ports.OrderRepository,
	provider ports.DeliveryProvider,
	handler commands.UpdateOrderStatusCommandHandler,
	schedule string,
	logger *slog.Logger,
) *StatusReconciliationJob {
	return &StatusReconciliationJob{
		repository: repository,
		provider:   provider,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		schedule:   schedule,
		logger:     logger.With("component", "status_reconciliation_job"),
	}
}

// Start schedules the reconciliation run.
func (j *StatusReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.reconcile(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status reconciliation job started",
		"schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *StatusReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status reconciliation job stopped")
}

// reconcile performs one reconciliation pass over all non-terminal orders.
// Per-order failures are logged and skipped so one bad lookup cannot stall
// the rest of the pass.
func (j *StatusReconciliationJob) reconcile(ctx context.Context) {
	orders, err := j.repository.GetAllInStatuses(ctx, order.New, order.Processing, order.Registered)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load orders for reconciliation", "error", err)
		return
	}

	for _, candidate := range orders {
		report, err := j.provider.OrderStatus(ctx, candidate.ID())
		if err != nil {
			j.logger.WarnContext(ctx, "Provider status lookup failed",
				"order_id", candidate.ID(), "error", err)
			continue
		}
		if report.IsEmpty() {
			continue
		}

		status := order.StatusFromProvider(report.Status)
		if status == candidate.Status() {
			continue
		}

		cmd, err := commands.NewUpdateOrderStatusCommand(candidate.ID(), string(status))
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build status update command",
				"order_id", candidate.ID(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Failed to persist reconciled status",
				"order_id", candidate.ID(), "status", status, "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Order status reconciled",
			"order_id", candidate.ID(), "status", status)
	}
}
