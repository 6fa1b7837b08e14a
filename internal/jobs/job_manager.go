package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/postomat-service/internal/config"

	"github.com/robfig/cron/v3"
)

type Job interface {
	Name() string
	Run(ctx context.Context)
}

type scheduledJob struct {
	schedule string
	job      Job
}

type JobManager struct {
	cron   *cron.Cron
	jobs   []scheduledJob
	logger *slog.Logger
}

func NewJobManager(sweeper Sweeper, cfg config.Jobs, logger *slog.Logger) *JobManager {
	return &JobManager{
		// Пропускаем запуск, если предыдущий ещё не завершился
		cron: cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		jobs: []scheduledJob{
			{schedule: cfg.SweepSchedule, job: NewReservationSweepJob(sweeper, logger)},
			{schedule: cfg.ReminderSchedule, job: NewPickupReminderJob(sweeper, logger)},
		},
		logger: logger.With(slog.String("component", "job_manager")),
	}
}

// Start не блокируется, с отменой ctx новые запуски не планируются
func (jm *JobManager) Start(ctx context.Context) error {
	for _, sj := range jm.jobs {
		job := sj.job
		_, err := jm.cron.AddFunc(sj.schedule, func() {
			runCtx, cancel := context.WithTimeout(ctx, runTimeout)
			defer cancel()
			job.Run(runCtx)
		})
		if err != nil {
			return fmt.Errorf("failed to schedule %s job: %w", job.Name(), err)
		}
	}

	jm.cron.Start()
	jm.logger.Info("jobs started", slog.Int("count", len(jm.jobs)))

	go func() {
		<-ctx.Done()
		jm.Close()
	}()
	return nil
}

// Close дожидается уже запущенных задач
func (jm *JobManager) Close() error {
	<-jm.cron.Stop().Done()
	jm.logger.Info("jobs stopped")
	return nil
}
