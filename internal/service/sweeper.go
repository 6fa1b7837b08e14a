package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/clock"
	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
)

type SweepStore interface {
	ClearExpiredReservations(ctx context.Context, now time.Time) (int64, error)
	UnclaimedSince(ctx context.Context, before time.Time) ([]entities.Purchase, error)
}

type sweeperService struct {
	logger      *slog.Logger
	repo        SweepStore
	notifier    Notifier
	clock       clock.Clock
	remindAfter time.Duration
}

func NewSweeperService(logger *slog.Logger, repo SweepStore, notifier Notifier, clk clock.Clock, remindAfter time.Duration) *sweeperService {
	return &sweeperService{
		logger:      logger.With(slog.String("service", "sweeper")),
		repo:        repo,
		notifier:    notifier,
		clock:       clk,
		remindAfter: remindAfter,
	}
}

// Занятость и так не учитывает просроченные резервы, это только уборка
func (s *sweeperService) ClearExpiredReservations(ctx context.Context) (int64, error) {
	n, err := s.repo.ClearExpiredReservations(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to clear expired reservations: %w", err)
	}
	if n > 0 {
		s.logger.Info("expired reservations cleared", slog.Int64("count", n))
	}
	return n, nil
}

// Возвращает число доставленных напоминаний
func (s *sweeperService) RemindUnclaimed(ctx context.Context) (int, error) {
	now := s.clock.Now()
	purchases, err := s.repo.UnclaimedSince(ctx, now.Add(-s.remindAfter))
	if err != nil {
		return 0, fmt.Errorf("failed to find unclaimed purchases: %w", err)
	}

	sent := 0
	for _, p := range purchases {
		err := s.notifier.Notify(ctx, entities.Notification{
			Type:       entities.NotificationPickupReminder,
			PurchaseID: p.ID,
			UserID:     p.UserID,
			LockerID:   p.PostomatID,
			SlotID:     p.PostomatSlot,
			ClientQR:   p.ClientQR,
			At:         now,
		})
		if err != nil {
			s.logger.Warn("failed to send reminder", slog.Int64("purchase_id", p.ID), slog.Any("error", err))
			continue
		}
		sent++
	}
	return sent, nil
}
