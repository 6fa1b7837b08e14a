package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/postomat-service/internal/clock"
	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
	"github.com/SergeyBogomolovv/postomat-service/internal/service"
	mocks "github.com/SergeyBogomolovv/postomat-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/postomat-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSlotService_ListSlotStates(t *testing.T) {
	type MockBehavior func(repo *mocks.MockLockerStore, cache *mocks.MockLockerCache)

	locker := entities.Locker{ID: lockerID, Address: "Lenina 1", Slots: slotsOf(lockerID, 2)}
	states := []entities.SlotState{
		{Slot: locker.Slots[0], Occupied: true, OccupantID: 7},
		{Slot: locker.Slots[1]},
	}
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantStates   []entities.SlotState
		wantErr      error
	}{
		{
			name: "Cache hit still reads occupancy",
			mockBehavior: func(repo *mocks.MockLockerStore, cache *mocks.MockLockerCache) {
				cache.EXPECT().Get(lockerID).Return(locker, true)
				repo.EXPECT().SlotStates(mock.Anything, lockerID, start).Return(states, nil)
			},
			wantStates: states,
		},
		{
			name: "Cache miss loads layout",
			mockBehavior: func(repo *mocks.MockLockerStore, cache *mocks.MockLockerCache) {
				cache.EXPECT().Get(lockerID).Return(entities.Locker{}, false)
				repo.EXPECT().GetLocker(mock.Anything, lockerID).Return(locker, nil)
				cache.EXPECT().Set(lockerID, locker).Return()
				repo.EXPECT().SlotStates(mock.Anything, lockerID, start).Return(states, nil)
			},
			wantStates: states,
		},
		{
			name: "Locker not found",
			mockBehavior: func(repo *mocks.MockLockerStore, cache *mocks.MockLockerCache) {
				cache.EXPECT().Get(lockerID).Return(entities.Locker{}, false)
				repo.EXPECT().GetLocker(mock.Anything, lockerID).Return(entities.Locker{}, entities.ErrLockerNotFound)
			},
			wantErr: entities.ErrLockerNotFound,
		},
		{
			name: "DB error",
			mockBehavior: func(repo *mocks.MockLockerStore, cache *mocks.MockLockerCache) {
				cache.EXPECT().Get(lockerID).Return(locker, true)
				repo.EXPECT().SlotStates(mock.Anything, lockerID, start).Return(nil, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockLockerStore(t)
			cache := mocks.NewMockLockerCache(t)
			txManager := txMocks.NewMockManager(t)
			tc.mockBehavior(repo, cache)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewSlotService(logger, txManager, repo, cache, clock.NewManual(start))

			gotLocker, gotStates, err := svc.ListSlotStates(context.Background(), lockerID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, locker, gotLocker)
			assert.Equal(t, tc.wantStates, gotStates)
		})
	}
}

func TestSlotService_CreateLocker(t *testing.T) {
	input := entities.Locker{
		Address: "Lenina 1",
		Slots:   []entities.Slot{{Size: entities.Dimensions{Width: 400, Height: 300, Length: 600}}},
	}
	created := input
	created.ID = lockerID
	created.Slots = slotsOf(lockerID, 1)

	t.Run("OK", func(t *testing.T) {
		repo := mocks.NewMockLockerStore(t)
		cache := mocks.NewMockLockerCache(t)
		txManager := txMocks.NewMockManager(t)

		txManager.EXPECT().Do(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			})
		repo.EXPECT().CreateLocker(mock.Anything, input).Return(created, nil)
		cache.EXPECT().Set(lockerID, created).Return()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc := service.NewSlotService(logger, txManager, repo, cache, clock.NewManual(start))

		got, err := svc.CreateLocker(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("Invalid slots", func(t *testing.T) {
		testCases := []entities.Locker{
			{Address: "no slots"},
			{Address: "flat slot", Slots: []entities.Slot{{Size: entities.Dimensions{Width: 400, Length: 600}}}},
		}
		for _, l := range testCases {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewSlotService(logger, txMocks.NewMockManager(t), mocks.NewMockLockerStore(t), mocks.NewMockLockerCache(t), clock.NewManual(start))

			_, err := svc.CreateLocker(context.Background(), l)
			assert.ErrorIs(t, err, entities.ErrInvalidLocker, l.Address)
		}
	})
}
