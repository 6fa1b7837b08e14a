package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/clock"
	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
	"github.com/SergeyBogomolovv/postomat-service/pkg/trm"
)

type LockerStore interface {
	CreateLocker(ctx context.Context, l entities.Locker) (entities.Locker, error)
	GetLocker(ctx context.Context, id int64) (entities.Locker, error)
	SlotStates(ctx context.Context, lockerID int64, now time.Time) ([]entities.SlotState, error)
}

// Раскладка ячеек после создания постамата не меняется
type LockerCache interface {
	Get(id int64) (entities.Locker, bool)
	Set(id int64, l entities.Locker)
}

type slotService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      LockerStore
	cache     LockerCache
	clock     clock.Clock
}

func NewSlotService(logger *slog.Logger, txManager trm.Manager, repo LockerStore, cache LockerCache, clk clock.Clock) *slotService {
	return &slotService{
		logger:    logger.With(slog.String("service", "slots")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		clock:     clk,
	}
}

// Кэшируется только раскладка, занятость читается всегда
func (s *slotService) ListSlotStates(ctx context.Context, lockerID int64) (entities.Locker, []entities.SlotState, error) {
	locker, err := s.GetLocker(ctx, lockerID)
	if err != nil {
		return entities.Locker{}, nil, err
	}

	states, err := s.repo.SlotStates(ctx, lockerID, s.clock.Now())
	if err != nil {
		s.logger.Error("failed to list slot states", slog.Int64("locker_id", lockerID), slog.Any("error", err))
		return entities.Locker{}, nil, fmt.Errorf("failed to list slot states: %w", err)
	}
	return locker, states, nil
}

func (s *slotService) GetLocker(ctx context.Context, id int64) (entities.Locker, error) {
	if locker, ok := s.cache.Get(id); ok {
		return locker, nil
	}

	locker, err := s.repo.GetLocker(ctx, id)
	if err != nil {
		return entities.Locker{}, err
	}
	s.cache.Set(id, locker)
	return locker, nil
}

func (s *slotService) CreateLocker(ctx context.Context, l entities.Locker) (entities.Locker, error) {
	if len(l.Slots) == 0 {
		return entities.Locker{}, fmt.Errorf("%w: no slots", entities.ErrInvalidLocker)
	}
	for _, slot := range l.Slots {
		if slot.Size.Unknown() {
			return entities.Locker{}, fmt.Errorf("%w: slot dimensions must be positive", entities.ErrInvalidLocker)
		}
	}

	var created entities.Locker
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.CreateLocker(ctx, l)
		return err
	})
	if err != nil {
		s.logger.Error("failed to create locker", slog.Any("error", err))
		return entities.Locker{}, fmt.Errorf("failed to create locker: %w", err)
	}

	s.cache.Set(created.ID, created)
	s.logger.Info("locker provisioned", slog.Int64("locker_id", created.ID), slog.Int("slots", len(created.Slots)))
	return created, nil
}
