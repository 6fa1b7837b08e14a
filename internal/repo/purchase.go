package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var returningPurchase = "RETURNING " + strings.Join(purchaseColumns, ", ")

func (r *postgresRepo) SavePurchase(ctx context.Context, p entities.Purchase) error {
	query, args := r.qb.Insert("purchases").
		Columns(
			"id", "user_id", "product_id", "postomat_id",
			"delivery_method", "courier_mode",
			"parcel_width", "parcel_height", "parcel_length",
			"status", "date_buy",
		).
		Values(
			p.ID, p.UserID, p.ProductID, nullInt64(p.PostomatID),
			p.DeliveryMethod, nullString(string(p.CourierMode)),
			p.Parcel.Width, p.Parcel.Height, p.Parcel.Length,
			entities.StatusCreated, p.DateBuy,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save purchase: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetPurchase(ctx context.Context, id int64) (entities.Purchase, error) {
	return r.findPurchase(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) FindByCourierQR(ctx context.Context, courierID int64, qr string) (entities.Purchase, error) {
	return r.findPurchase(ctx, sq.Eq{"courier_id": courierID, "courier_qr": qr, "date_receive": nil})
}

func (r *postgresRepo) FindByClientQR(ctx context.Context, userID int64, qr string) (entities.Purchase, error) {
	return r.findPurchase(ctx, sq.Eq{"user_id": userID, "client_qr": qr, "date_receive": nil})
}

func (r *postgresRepo) GetCourierPurchase(ctx context.Context, id, courierID int64) (entities.Purchase, error) {
	return r.findPurchase(ctx, sq.Eq{"id": id, "courier_id": courierID, "date_receive": nil})
}

// Полученные заказы не отсекаются: после получения клиент ещё закрывает дверь
func (r *postgresRepo) GetClientPurchase(ctx context.Context, id, userID int64) (entities.Purchase, error) {
	return r.findPurchase(ctx, sq.Eq{"id": id, "user_id": userID})
}

func (r *postgresRepo) findPurchase(ctx context.Context, where sq.Eq) (entities.Purchase, error) {
	query, args := r.qb.Select(purchaseColumns...).
		From("purchases").
		Where(where).
		MustSql()

	var p Purchase
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Purchase{}, entities.ErrPurchaseNotFound
	}
	if err != nil {
		return entities.Purchase{}, fmt.Errorf("failed to get purchase: %w", err)
	}
	return PurchaseToEntity(p), nil
}

var eligible = sq.Or{
	sq.Eq{"delivery_method": entities.DeliveryPostomat},
	sq.Eq{"delivery_method": entities.DeliveryCourier, "courier_mode": entities.CourierModePostomat},
}

func (r *postgresRepo) AssignCourier(ctx context.Context, id, courierID int64, courierQR string) (entities.Purchase, error) {
	q := r.qb.Update("purchases").
		Set("courier_id", courierID).
		Set("courier_qr", sq.Expr("COALESCE(courier_qr, ?)", courierQR)).
		Set("status", entities.StatusCourierAssigned).
		Where(sq.Eq{
			"id":               id,
			"status":           entities.AssignableStatuses,
			"slot_reserved_id": nil,
			"postomat_slot":    nil,
		}).
		Where(eligible)

	return r.transition(ctx, q, "assign courier")
}

func (r *postgresRepo) ReserveSlot(ctx context.Context, id, courierID, slotID int64, until, now time.Time) (entities.Purchase, error) {
	q := r.qb.Update("purchases").
		Set("slot_reserved_id", slotID).
		Set("slot_reserved_until", until).
		Set("status", entities.StatusSlotReserved).
		Where(sq.Eq{
			"id":            id,
			"courier_id":    courierID,
			"status":        entities.ReservableStatuses,
			"postomat_slot": nil,
			"date_receive":  nil,
		}).
		Where(`NOT EXISTS (
			SELECT 1 FROM purchases o
			WHERE o.id <> purchases.id
			  AND ((o.slot_reserved_id = ? AND o.slot_reserved_until > ? AND o.postomat_slot IS NULL)
			    OR (o.postomat_slot = ? AND o.date_receive IS NULL)))`, slotID, now, slotID)

	return r.transition(ctx, q, "reserve slot")
}

func (r *postgresRepo) OpenDepositDoor(ctx context.Context, id, courierID int64, now time.Time) (entities.Purchase, error) {
	q := r.qb.Update("purchases").
		Set("door_opened", true).
		Set("status", entities.StatusDoorOpen).
		Where(sq.Eq{
			"id":            id,
			"courier_id":    courierID,
			"status":        entities.DepositOpenableStatuses,
			"postomat_slot": nil,
			"date_receive":  nil,
		}).
		Where(sq.NotEq{"slot_reserved_id": nil}).
		Where(sq.Gt{"slot_reserved_until": now})

	return r.transition(ctx, q, "open deposit door")
}

// Резерв становится занятостью, если ячейку не занял другой живой заказ
func (r *postgresRepo) ConfirmPlacement(ctx context.Context, id, courierID int64, clientQR string, now time.Time) (entities.Purchase, error) {
	q := r.qb.Update("purchases").
		Set("postomat_slot", sq.Expr("slot_reserved_id")).
		Set("date_send", sq.Expr("COALESCE(date_send, ?)", now)).
		Set("client_qr", clientQR).
		Set("courier_qr", nil).
		Set("status", entities.StatusPlaced).
		Where(sq.Eq{
			"id":            id,
			"courier_id":    courierID,
			"status":        entities.StatusDoorOpen,
			"door_opened":   true,
			"postomat_slot": nil,
			"date_receive":  nil,
		}).
		Where(sq.NotEq{"slot_reserved_id": nil}).
		Where(`NOT EXISTS (
			SELECT 1 FROM purchases o
			WHERE o.id <> purchases.id
			  AND o.postomat_slot = purchases.slot_reserved_id
			  AND o.date_receive IS NULL)`)

	p, err := r.transition(ctx, q, "confirm placement")
	if isUniqueViolation(err) {
		return entities.Purchase{}, entities.Precondition(entities.ReasonSlotOccupied)
	}
	return p, err
}

func (r *postgresRepo) CloseDepositDoor(ctx context.Context, id, courierID int64) (entities.Purchase, error) {
	q := r.qb.Update("purchases").
		Set("door_opened", false).
		Set("slot_reserved_id", nil).
		Set("slot_reserved_until", nil).
		Set("status", sq.Expr("CASE WHEN postomat_slot IS NOT NULL THEN ? ELSE ? END",
			entities.StatusReadyForPickup, entities.StatusCourierAssigned)).
		Where(sq.Eq{
			"id":           id,
			"courier_id":   courierID,
			"date_receive": nil,
		}).
		Where(sq.Or{
			sq.Eq{"status": []entities.Status{entities.StatusSlotReserved, entities.StatusDoorOpen}, "postomat_slot": nil},
			sq.Eq{"status": entities.StatusPlaced},
		})

	return r.transition(ctx, q, "close deposit door")
}

func (r *postgresRepo) OpenPickupDoor(ctx context.Context, id, userID int64) (entities.Purchase, error) {
	q := r.qb.Update("purchases").
		Set("door_opened", true).
		Set("slot_reserved_id", nil).
		Set("slot_reserved_until", nil).
		Set("status", entities.StatusDoorOpen).
		Where(sq.Eq{
			"id":           id,
			"user_id":      userID,
			"status":       entities.PickupOpenableStatuses,
			"date_receive": nil,
		}).
		Where(sq.NotEq{"postomat_slot": nil})

	return r.transition(ctx, q, "open pickup door")
}

func (r *postgresRepo) ConfirmPickup(ctx context.Context, id, userID int64, now time.Time) (entities.Purchase, error) {
	q := r.qb.Update("purchases").
		Set("date_receive", now).
		Set("client_qr", nil).
		Set("status", entities.StatusPickedUp).
		Where(sq.Eq{
			"id":           id,
			"user_id":      userID,
			"status":       entities.StatusDoorOpen,
			"door_opened":  true,
			"date_receive": nil,
		}).
		Where(sq.NotEq{"postomat_slot": nil})

	return r.transition(ctx, q, "confirm pickup")
}

func (r *postgresRepo) ClosePickupDoor(ctx context.Context, id, userID int64) (entities.Purchase, error) {
	q := r.qb.Update("purchases").
		Set("door_opened", false).
		Set("slot_reserved_id", nil).
		Set("slot_reserved_until", nil).
		Set("status", sq.Expr("CASE WHEN date_receive IS NOT NULL THEN ? ELSE ? END",
			entities.StatusPickedUp, entities.StatusReadyForPickup)).
		Where(sq.Eq{
			"id":      id,
			"user_id": userID,
			"status":  entities.PickupClosableStatuses,
		}).
		Where(sq.NotEq{"postomat_slot": nil})

	return r.transition(ctx, q, "close pickup door")
}

// Ноль строк - guard не прошёл
func (r *postgresRepo) transition(ctx context.Context, q sq.UpdateBuilder, op string) (entities.Purchase, error) {
	query, args := q.Suffix(returningPurchase).MustSql()

	var p Purchase
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Purchase{}, entities.ErrTransitionRejected
	}
	if err != nil {
		return entities.Purchase{}, fmt.Errorf("failed to %s: %w", op, err)
	}
	return PurchaseToEntity(p), nil
}

func (r *postgresRepo) ClearExpiredReservations(ctx context.Context, now time.Time) (int64, error) {
	query, args := r.qb.Update("purchases").
		Set("slot_reserved_id", nil).
		Set("slot_reserved_until", nil).
		Set("status", entities.StatusCourierAssigned).
		Where(sq.Eq{
			"status":        entities.StatusSlotReserved,
			"door_opened":   false,
			"postomat_slot": nil,
		}).
		Where(sq.NotEq{"slot_reserved_id": nil}).
		Where(sq.LtOrEq{"slot_reserved_until": now}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to clear expired reservations: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared reservations: %w", err)
	}
	return n, nil
}

func (r *postgresRepo) UnclaimedSince(ctx context.Context, before time.Time) ([]entities.Purchase, error) {
	query, args := r.qb.Select(purchaseColumns...).
		From("purchases").
		Where(sq.Eq{"date_receive": nil}).
		Where(sq.NotEq{"postomat_slot": nil}).
		Where(sq.Lt{"date_send": before}).
		OrderBy("date_send").
		MustSql()

	var rows []Purchase
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select unclaimed purchases: %w", err)
	}

	result := make([]entities.Purchase, 0, len(rows))
	for _, row := range rows {
		result = append(result, PurchaseToEntity(row))
	}
	return result, nil
}
