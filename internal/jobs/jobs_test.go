package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/postomat-service/internal/config"
	"github.com/SergeyBogomolovv/postomat-service/internal/jobs/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReservationSweepJob_Run(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		sweeper := mocks.NewMockSweeper(t)
		sweeper.EXPECT().ClearExpiredReservations(mock.Anything).Return(2, nil).Once()

		NewReservationSweepJob(sweeper, discardLogger()).Run(context.Background())
	})

	t.Run("Error is logged", func(t *testing.T) {
		sweeper := mocks.NewMockSweeper(t)
		sweeper.EXPECT().ClearExpiredReservations(mock.Anything).Return(0, errors.New("db error")).Once()

		NewReservationSweepJob(sweeper, discardLogger()).Run(context.Background())
	})
}

func TestPickupReminderJob_Run(t *testing.T) {
	sweeper := mocks.NewMockSweeper(t)
	sweeper.EXPECT().RemindUnclaimed(mock.Anything).Return(3, nil).Once()

	job := NewPickupReminderJob(sweeper, discardLogger())
	assert.Equal(t, "pickup_reminder", job.Name())
	job.Run(context.Background())
}

func TestJobManager_Start(t *testing.T) {
	t.Run("Invalid schedule", func(t *testing.T) {
		cfg := config.Jobs{SweepSchedule: "not a schedule", ReminderSchedule: "0 0 9 * * *"}
		jm := NewJobManager(mocks.NewMockSweeper(t), cfg, discardLogger())

		err := jm.Start(context.Background())
		assert.Error(t, err)
	})

	t.Run("Starts and stops", func(t *testing.T) {
		// Раз в год, чтобы задачи не сработали во время теста
		cfg := config.Jobs{SweepSchedule: "0 0 0 1 1 *", ReminderSchedule: "0 0 0 1 1 *"}
		jm := NewJobManager(mocks.NewMockSweeper(t), cfg, discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, jm.Start(ctx))
		assert.Len(t, jm.cron.Entries(), 2)
		require.NoError(t, jm.Close())
	})
}
