package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/clock"
	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
	"github.com/SergeyBogomolovv/postomat-service/pkg/trm"

	"github.com/google/uuid"
)

// Мутирующие методы возвращают entities.ErrTransitionRejected, если guard не совпал
type HandoffStore interface {
	FindByCourierQR(ctx context.Context, courierID int64, qr string) (entities.Purchase, error)
	FindByClientQR(ctx context.Context, userID int64, qr string) (entities.Purchase, error)
	GetCourierPurchase(ctx context.Context, id, courierID int64) (entities.Purchase, error)
	GetClientPurchase(ctx context.Context, id, userID int64) (entities.Purchase, error)

	ReserveSlot(ctx context.Context, id, courierID, slotID int64, until, now time.Time) (entities.Purchase, error)
	OpenDepositDoor(ctx context.Context, id, courierID int64, now time.Time) (entities.Purchase, error)
	ConfirmPlacement(ctx context.Context, id, courierID int64, clientQR string, now time.Time) (entities.Purchase, error)
	CloseDepositDoor(ctx context.Context, id, courierID int64) (entities.Purchase, error)

	OpenPickupDoor(ctx context.Context, id, userID int64) (entities.Purchase, error)
	ConfirmPickup(ctx context.Context, id, userID int64, now time.Time) (entities.Purchase, error)
	ClosePickupDoor(ctx context.Context, id, userID int64) (entities.Purchase, error)
}

type SlotStore interface {
	LockLocker(ctx context.Context, lockerID int64) error
	LockSlot(ctx context.Context, slotID int64) error
	SlotStates(ctx context.Context, lockerID int64, now time.Time) ([]entities.SlotState, error)
	SlotOccupied(ctx context.Context, slotID, exceptID int64) (bool, error)
}

type Notifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}

type handoffService struct {
	logger    *slog.Logger
	txManager trm.Manager
	purchases HandoffStore
	slots     SlotStore
	notifier  Notifier
	clock     clock.Clock
	rand      Randomizer
	newSecret func() string
}

type HandoffOption func(*handoffService)

func WithRandomizer(r Randomizer) HandoffOption {
	return func(s *handoffService) {
		s.rand = r
	}
}

func WithSecretGenerator(fn func() string) HandoffOption {
	return func(s *handoffService) {
		s.newSecret = fn
	}
}

func NewHandoffService(
	logger *slog.Logger,
	txManager trm.Manager,
	purchases HandoffStore,
	slots SlotStore,
	notifier Notifier,
	clk clock.Clock,
	opts ...HandoffOption,
) *handoffService {
	s := &handoffService{
		logger:    logger.With(slog.String("service", "handoff")),
		txManager: txManager,
		purchases: purchases,
		slots:     slots,
		notifier:  notifier,
		clock:     clk,
		rand:      globalRand{},
		newSecret: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Живой резерв возвращается как есть, повторный скан не переносит посылку
func (s *handoffService) CourierScan(ctx context.Context, courierID int64, qr string) (entities.Reservation, error) {
	p, err := s.purchases.FindByCourierQR(ctx, courierID, qr)
	if err != nil {
		return entities.Reservation{}, s.fail("courier scan", err)
	}
	if err := p.CanReserve(); err != nil {
		return entities.Reservation{}, err
	}

	now := s.clock.Now()
	if p.ReservationLive(now) {
		states, err := s.slots.SlotStates(ctx, p.PostomatID, now)
		if err != nil {
			return entities.Reservation{}, s.fail("courier scan", err)
		}
		return entities.Reservation{Purchase: p, Slots: states}, nil
	}

	var res entities.Reservation
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		res, err = s.reserve(ctx, p, now)
		return err
	})
	if err != nil {
		return entities.Reservation{}, s.fail("courier scan", err)
	}

	s.logger.Debug("slot reserved",
		slog.Int64("purchase_id", p.ID),
		slog.Int64("slot_id", res.Purchase.SlotReservedID),
		slog.Time("until", res.Purchase.SlotReservedUntil),
	)
	return res, nil
}

// reserve вызывается в транзакции
func (s *handoffService) reserve(ctx context.Context, p entities.Purchase, now time.Time) (entities.Reservation, error) {
	if err := s.slots.LockLocker(ctx, p.PostomatID); err != nil {
		return entities.Reservation{}, err
	}

	states, err := s.slots.SlotStates(ctx, p.PostomatID, now)
	if err != nil {
		return entities.Reservation{}, err
	}

	candidates := candidateSlots(states, p.Parcel)
	until := now.Add(entities.ReservationTTL)

	for len(candidates) > 0 {
		i := s.rand.IntN(len(candidates))
		slot := candidates[i]

		updated, err := s.purchases.ReserveSlot(ctx, p.ID, p.CourierID, slot.ID, until, now)
		if err == nil {
			return entities.Reservation{Purchase: updated, Slots: markReserved(states, updated)}, nil
		}
		if !errors.Is(err, entities.ErrTransitionRejected) {
			return entities.Reservation{}, err
		}

		// Ячейку заняли, либо заказ ушёл дальше
		current, err := s.purchases.GetCourierPurchase(ctx, p.ID, p.CourierID)
		if err != nil {
			return entities.Reservation{}, err
		}
		if err := current.CanReserve(); err != nil {
			return entities.Reservation{}, err
		}
		if current.ReservationLive(now) {
			return entities.Reservation{Purchase: current, Slots: markReserved(states, current)}, nil
		}
		candidates = slices.Delete(candidates, i, i+1)
	}

	return entities.Reservation{}, entities.ErrNoCapacity
}

func (s *handoffService) CourierOpen(ctx context.Context, courierID, purchaseID int64) (entities.Purchase, error) {
	p, err := s.purchases.GetCourierPurchase(ctx, purchaseID, courierID)
	if err != nil {
		return entities.Purchase{}, s.fail("courier open", err)
	}

	now := s.clock.Now()
	guard := func(p entities.Purchase) error { return p.CanOpenDeposit(now) }
	if err := guard(p); err != nil {
		return entities.Purchase{}, err
	}

	updated, err := s.purchases.OpenDepositDoor(ctx, p.ID, courierID, now)
	if errors.Is(err, entities.ErrTransitionRejected) {
		err = s.explain(ctx, func(ctx context.Context) (entities.Purchase, error) {
			return s.purchases.GetCourierPurchase(ctx, purchaseID, courierID)
		}, guard)
	}
	if err != nil {
		return entities.Purchase{}, s.fail("courier open", err)
	}

	s.logger.Debug("deposit door opened", slog.Int64("purchase_id", p.ID), slog.Int64("slot_id", updated.SlotReservedID))
	return updated, nil
}

func (s *handoffService) CourierPlace(ctx context.Context, courierID, purchaseID int64) (entities.Purchase, error) {
	p, err := s.purchases.GetCourierPurchase(ctx, purchaseID, courierID)
	if err != nil {
		return entities.Purchase{}, s.fail("courier place", err)
	}
	if err := p.CanPlace(); err != nil {
		return entities.Purchase{}, err
	}

	now := s.clock.Now()
	clientQR := s.newSecret()

	var placed entities.Purchase
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.slots.LockSlot(ctx, p.SlotReservedID); err != nil {
			return err
		}

		var err error
		placed, err = s.purchases.ConfirmPlacement(ctx, p.ID, courierID, clientQR, now)
		if !errors.Is(err, entities.ErrTransitionRejected) {
			return err
		}

		occupied, err := s.slots.SlotOccupied(ctx, p.SlotReservedID, p.ID)
		if err != nil {
			return err
		}
		if occupied {
			return entities.Precondition(entities.ReasonSlotOccupied)
		}
		return s.explain(ctx, func(ctx context.Context) (entities.Purchase, error) {
			return s.purchases.GetCourierPurchase(ctx, purchaseID, courierID)
		}, entities.Purchase.CanPlace)
	})
	if err != nil {
		return entities.Purchase{}, s.fail("courier place", err)
	}

	s.logger.Info("parcel placed", slog.Int64("purchase_id", placed.ID), slog.Int64("slot_id", placed.PostomatSlot))
	s.notify(ctx, entities.Notification{
		Type:       entities.NotificationParcelPlaced,
		PurchaseID: placed.ID,
		UserID:     placed.UserID,
		LockerID:   placed.PostomatID,
		SlotID:     placed.PostomatSlot,
		ClientQR:   placed.ClientQR,
		At:         now,
	})
	return placed, nil
}

func (s *handoffService) CourierClose(ctx context.Context, courierID, purchaseID int64) (entities.Purchase, error) {
	p, err := s.purchases.GetCourierPurchase(ctx, purchaseID, courierID)
	if err != nil {
		return entities.Purchase{}, s.fail("courier close", err)
	}
	if err := p.CanCloseDeposit(); err != nil {
		return entities.Purchase{}, err
	}

	updated, err := s.purchases.CloseDepositDoor(ctx, p.ID, courierID)
	if errors.Is(err, entities.ErrTransitionRejected) {
		err = s.explain(ctx, func(ctx context.Context) (entities.Purchase, error) {
			return s.purchases.GetCourierPurchase(ctx, purchaseID, courierID)
		}, entities.Purchase.CanCloseDeposit)
	}
	if err != nil {
		return entities.Purchase{}, s.fail("courier close", err)
	}

	s.logger.Debug("deposit door closed", slog.Int64("purchase_id", p.ID), slog.String("status", string(updated.Status)))
	return updated, nil
}

func (s *handoffService) ClientScan(ctx context.Context, userID int64, qr string) (entities.Purchase, error) {
	p, err := s.purchases.FindByClientQR(ctx, userID, qr)
	if err != nil {
		return entities.Purchase{}, s.fail("client scan", err)
	}
	if err := p.CanLocate(); err != nil {
		return entities.Purchase{}, err
	}
	return p, nil
}

func (s *handoffService) ClientOpen(ctx context.Context, userID, purchaseID int64) (entities.Purchase, error) {
	p, err := s.purchases.GetClientPurchase(ctx, purchaseID, userID)
	if err != nil {
		return entities.Purchase{}, s.fail("client open", err)
	}
	if err := p.CanOpenPickup(); err != nil {
		return entities.Purchase{}, err
	}

	updated, err := s.purchases.OpenPickupDoor(ctx, p.ID, userID)
	if errors.Is(err, entities.ErrTransitionRejected) {
		err = s.explain(ctx, func(ctx context.Context) (entities.Purchase, error) {
			return s.purchases.GetClientPurchase(ctx, purchaseID, userID)
		}, entities.Purchase.CanOpenPickup)
	}
	if err != nil {
		return entities.Purchase{}, s.fail("client open", err)
	}

	s.logger.Debug("pickup door opened", slog.Int64("purchase_id", p.ID), slog.Int64("slot_id", updated.PostomatSlot))
	return updated, nil
}

func (s *handoffService) ClientTake(ctx context.Context, userID, purchaseID int64) (entities.Purchase, error) {
	p, err := s.purchases.GetClientPurchase(ctx, purchaseID, userID)
	if err != nil {
		return entities.Purchase{}, s.fail("client take", err)
	}
	if err := p.CanTake(); err != nil {
		return entities.Purchase{}, err
	}

	now := s.clock.Now()
	taken, err := s.purchases.ConfirmPickup(ctx, p.ID, userID, now)
	if errors.Is(err, entities.ErrTransitionRejected) {
		err = s.explain(ctx, func(ctx context.Context) (entities.Purchase, error) {
			return s.purchases.GetClientPurchase(ctx, purchaseID, userID)
		}, entities.Purchase.CanTake)
	}
	if err != nil {
		return entities.Purchase{}, s.fail("client take", err)
	}

	s.logger.Info("parcel picked up", slog.Int64("purchase_id", taken.ID), slog.Int64("slot_id", taken.PostomatSlot))
	s.notify(ctx, entities.Notification{
		Type:       entities.NotificationParcelPickedUp,
		PurchaseID: taken.ID,
		UserID:     taken.UserID,
		LockerID:   taken.PostomatID,
		SlotID:     taken.PostomatSlot,
		At:         now,
	})
	return taken, nil
}

func (s *handoffService) ClientClose(ctx context.Context, userID, purchaseID int64) (entities.Purchase, error) {
	p, err := s.purchases.GetClientPurchase(ctx, purchaseID, userID)
	if err != nil {
		return entities.Purchase{}, s.fail("client close", err)
	}
	if err := p.CanClosePickup(); err != nil {
		return entities.Purchase{}, err
	}

	updated, err := s.purchases.ClosePickupDoor(ctx, p.ID, userID)
	if errors.Is(err, entities.ErrTransitionRejected) {
		err = s.explain(ctx, func(ctx context.Context) (entities.Purchase, error) {
			return s.purchases.GetClientPurchase(ctx, purchaseID, userID)
		}, entities.Purchase.CanClosePickup)
	}
	if err != nil {
		return entities.Purchase{}, s.fail("client close", err)
	}

	s.logger.Debug("pickup door closed", slog.Int64("purchase_id", p.ID), slog.String("status", string(updated.Status)))
	return updated, nil
}

// explain перепроверяет guard на свежем состоянии заказа
func (s *handoffService) explain(
	ctx context.Context,
	reload func(ctx context.Context) (entities.Purchase, error),
	guard func(entities.Purchase) error,
) error {
	p, err := reload(ctx)
	if err != nil {
		return err
	}
	if err := guard(p); err != nil {
		return err
	}
	return entities.Precondition(entities.ReasonInvalidState)
}

func (s *handoffService) notify(ctx context.Context, n entities.Notification) {
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Warn("failed to send notification",
			slog.String("type", string(n.Type)),
			slog.Int64("purchase_id", n.PurchaseID),
			slog.Any("error", err),
		)
	}
}

// Доменные ошибки возвращаются как есть
func (s *handoffService) fail(op string, err error) error {
	if isDomainError(err) {
		return err
	}
	s.logger.Error(op+" failed", slog.Any("error", err))
	return fmt.Errorf("%s: %w", op, err)
}

func isDomainError(err error) bool {
	return errors.Is(err, entities.ErrPurchaseNotFound) ||
		errors.Is(err, entities.ErrLockerNotFound) ||
		errors.Is(err, entities.ErrSlotNotFound) ||
		errors.Is(err, entities.ErrPreconditionFailed) ||
		errors.Is(err, entities.ErrNoCapacity)
}
