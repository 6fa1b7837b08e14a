// Расписания в формате cron с секундами, см. config.Jobs
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const runTimeout = 30 * time.Second

var (
	reservationsCleared = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "postomat_service",
		Subsystem: "jobs",
		Name:      "reservations_cleared_total",
		Help:      "Total number of expired reservations cleared by the sweep.",
	})

	remindersSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "postomat_service",
		Subsystem: "jobs",
		Name:      "pickup_reminders_total",
		Help:      "Total number of pickup reminders sent.",
	})

	jobFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "postomat_service",
		Subsystem: "jobs",
		Name:      "failures_total",
		Help:      "Total number of failed job runs.",
	}, []string{"job"})
)

type Sweeper interface {
	ClearExpiredReservations(ctx context.Context) (int64, error)
	RemindUnclaimed(ctx context.Context) (int, error)
}

type ReservationSweepJob struct {
	sweeper Sweeper
	logger  *slog.Logger
}

func NewReservationSweepJob(sweeper Sweeper, logger *slog.Logger) *ReservationSweepJob {
	return &ReservationSweepJob{
		sweeper: sweeper,
		logger:  logger.With(slog.String("job", "reservation_sweep")),
	}
}

func (j *ReservationSweepJob) Name() string {
	return "reservation_sweep"
}

func (j *ReservationSweepJob) Run(ctx context.Context) {
	n, err := j.sweeper.ClearExpiredReservations(ctx)
	if err != nil {
		jobFailures.WithLabelValues(j.Name()).Inc()
		j.logger.Error("reservation sweep failed", slog.Any("error", err))
		return
	}
	reservationsCleared.Add(float64(n))
}

type PickupReminderJob struct {
	sweeper Sweeper
	logger  *slog.Logger
}

func NewPickupReminderJob(sweeper Sweeper, logger *slog.Logger) *PickupReminderJob {
	return &PickupReminderJob{
		sweeper: sweeper,
		logger:  logger.With(slog.String("job", "pickup_reminder")),
	}
}

func (j *PickupReminderJob) Name() string {
	return "pickup_reminder"
}

func (j *PickupReminderJob) Run(ctx context.Context) {
	sent, err := j.sweeper.RemindUnclaimed(ctx)
	if err != nil {
		jobFailures.WithLabelValues(j.Name()).Inc()
		j.logger.Error("pickup reminder failed", slog.Any("error", err))
		return
	}
	remindersSent.Add(float64(sent))
	if sent > 0 {
		j.logger.Info("pickup reminders sent", slog.Int("count", sent))
	}
}
