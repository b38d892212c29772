package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOrderStatsSchedule runs the report every five minutes. The expression
// has a leading seconds field.
const DefaultOrderStatsSchedule = "0 */5 * * * *"

// OrderStatsHandler computes the dashboard figures.
type OrderStatsHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.GetOrderStatsQueryResponse, error)
}

// StatsRecorder receives every successful snapshot.
type StatsRecorder interface {
	RecordOrderStats(pending, confirmed int64, revenue float64)
}

// OrderStatsReportJob periodically computes order statistics, logs them and
// publishes them as gauges.
type OrderStatsReportJob struct {
	handler  OrderStatsHandler
	recorder StatsRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsReportJob creates the job. An empty schedule falls back to
// DefaultOrderStatsSchedule.
func NewOrderStatsReportJob(
	handler OrderStatsHandler,
	recorder StatsRecorder,
	schedule string,
	logger *slog.Logger,
) *OrderStatsReportJob {
	if schedule == "" {
		schedule = DefaultOrderStatsSchedule
	}
	return &OrderStatsReportJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_stats_report_job"),
	}
}

// Start registers the report on the schedule and starts the scheduler.
func (j *OrderStatsReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order stats report failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *OrderStatsReportJob) Run(ctx context.Context) error {
	stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		return err
	}

	j.recorder.RecordOrderStats(stats.PendingOrders, stats.ConfirmedOrders,
		stats.ConfirmedRevenue.Decimal().InexactFloat64())

	top := make([]string, 0, len(stats.TopProducts))
	for _, p := range stats.TopProducts {
		top = append(top, p.ProductNumber)
	}

	j.logger.InfoContext(ctx, "Order stats",
		"total", stats.TotalOrders,
		"pending", stats.PendingOrders,
		"confirmed", stats.ConfirmedOrders,
		"confirmed_revenue", stats.ConfirmedRevenue.String(),
		"top_products", top,
	)
	return nil
}

// Stop stops the scheduler. A report already running is not waited for.
func (j *OrderStatsReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats report job stopped")
}
