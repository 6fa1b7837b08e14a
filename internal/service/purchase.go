package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/clock"
	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
	"github.com/SergeyBogomolovv/postomat-service/pkg/utils"

	"github.com/google/uuid"
)

type PurchaseStore interface {
	// Идемпотентна, т.к. используется ON CONFLICT DO NOTHING
	SavePurchase(ctx context.Context, p entities.Purchase) error
	GetPurchase(ctx context.Context, id int64) (entities.Purchase, error)
	AssignCourier(ctx context.Context, id, courierID int64, courierQR string) (entities.Purchase, error)
}

type purchaseService struct {
	logger    *slog.Logger
	repo      PurchaseStore
	notifier  Notifier
	clock     clock.Clock
	retry     utils.RetryConfig
	newSecret func() string
}

func NewPurchaseService(logger *slog.Logger, repo PurchaseStore, notifier Notifier, clk clock.Clock) *purchaseService {
	return &purchaseService{
		logger:   logger.With(slog.String("service", "purchase")),
		repo:     repo,
		notifier: notifier,
		clock:    clk,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
		newSecret: uuid.NewString,
	}
}

func (s *purchaseService) SavePurchase(ctx context.Context, p entities.Purchase) error {
	if p.UsesPostomat() && p.PostomatID == 0 {
		return fmt.Errorf("%w: postomat delivery without locker", entities.ErrInvalidPurchase)
	}
	if p.DateBuy.IsZero() {
		p.DateBuy = s.clock.Now()
	}

	fn := func(ctx context.Context) error {
		return s.repo.SavePurchase(ctx, p)
	}
	if err := utils.Retry(ctx, s.retry, fn, context.Canceled); err != nil {
		return fmt.Errorf("failed to save purchase: %w", err)
	}

	s.logger.Debug("purchase saved", slog.Int64("purchase_id", p.ID))
	return nil
}

func (s *purchaseService) AssignCourier(ctx context.Context, purchaseID, courierID int64) (entities.Purchase, error) {
	p, err := s.repo.GetPurchase(ctx, purchaseID)
	if err != nil {
		return entities.Purchase{}, err
	}
	if err := p.CanAssign(); err != nil {
		return entities.Purchase{}, err
	}

	assigned, err := s.repo.AssignCourier(ctx, purchaseID, courierID, s.newSecret())
	if errors.Is(err, entities.ErrTransitionRejected) {
		return entities.Purchase{}, entities.Precondition(entities.ReasonInvalidState)
	}
	if err != nil {
		s.logger.Error("failed to assign courier", slog.Int64("purchase_id", purchaseID), slog.Any("error", err))
		return entities.Purchase{}, fmt.Errorf("failed to assign courier: %w", err)
	}

	s.logger.Info("courier assigned", slog.Int64("purchase_id", purchaseID), slog.Int64("courier_id", courierID))
	n := entities.Notification{
		Type:       entities.NotificationCourierAssigned,
		PurchaseID: assigned.ID,
		UserID:     courierID,
		LockerID:   assigned.PostomatID,
		At:         s.clock.Now(),
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Warn("failed to send notification", slog.Int64("purchase_id", purchaseID), slog.Any("error", err))
	}
	return assigned, nil
}
