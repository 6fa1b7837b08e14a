package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateLocker(ctx context.Context, l entities.Locker) (entities.Locker, error) {
	query, args := r.qb.Insert("postomats").
		Columns("address", "latitude", "longitude").
		Values(l.Address, l.Latitude, l.Longitude).
		Suffix("RETURNING id, address, latitude, longitude").
		MustSql()

	var locker Locker
	if err := r.getContext(ctx, &locker, query, args...); err != nil {
		return entities.Locker{}, fmt.Errorf("failed to insert locker: %w", err)
	}

	if len(l.Slots) == 0 {
		return LockerToEntity(locker, nil), nil
	}

	q := r.qb.Insert("postomat_slots").
		Columns("postomat_id", "width", "height", "length").
		Suffix("RETURNING id, postomat_id, width, height, length")
	for _, s := range l.Slots {
		q = q.Values(locker.ID, s.Size.Width, s.Size.Height, s.Size.Length)
	}
	query, args = q.MustSql()

	var slots []Slot
	if err := r.selectContext(ctx, &slots, query, args...); err != nil {
		return entities.Locker{}, fmt.Errorf("failed to insert slots: %w", err)
	}
	return LockerToEntity(locker, slots), nil
}

func (r *postgresRepo) GetLocker(ctx context.Context, id int64) (entities.Locker, error) {
	query, args := r.qb.Select("id", "address", "latitude", "longitude").
		From("postomats").
		Where(sq.Eq{"id": id}).
		MustSql()

	var locker Locker
	err := r.getContext(ctx, &locker, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Locker{}, entities.ErrLockerNotFound
	}
	if err != nil {
		return entities.Locker{}, fmt.Errorf("failed to get locker: %w", err)
	}

	query, args = r.qb.Select("id", "postomat_id", "width", "height", "length").
		From("postomat_slots").
		Where(sq.Eq{"postomat_id": id}).
		OrderBy("id").
		MustSql()

	var slots []Slot
	if err := r.selectContext(ctx, &slots, query, args...); err != nil {
		return entities.Locker{}, fmt.Errorf("failed to get slots: %w", err)
	}
	return LockerToEntity(locker, slots), nil
}

// Блокировка до конца транзакции, выдача ячеек в постамате идёт по очереди
func (r *postgresRepo) LockLocker(ctx context.Context, id int64) error {
	query, args := r.qb.Select("id").
		From("postomats").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		MustSql()

	var lockedID int64
	err := r.getContext(ctx, &lockedID, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrLockerNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock locker: %w", err)
	}
	return nil
}

func (r *postgresRepo) LockSlot(ctx context.Context, id int64) error {
	query, args := r.qb.Select("id").
		From("postomat_slots").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		MustSql()

	var lockedID int64
	err := r.getContext(ctx, &lockedID, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrSlotNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock slot: %w", err)
	}
	return nil
}

// Просроченные резервы не учитываются
func (r *postgresRepo) SlotStates(ctx context.Context, lockerID int64, now time.Time) ([]entities.SlotState, error) {
	query, args := r.qb.Select(
		"s.id", "s.postomat_id", "s.width", "s.height", "s.length",
		"occ.id AS occupant_id", "res.until AS reserved_until",
	).
		From("postomat_slots s").
		LeftJoin(`LATERAL (
			SELECT p.id FROM purchases p
			WHERE p.postomat_slot = s.id AND p.date_receive IS NULL
			LIMIT 1) occ ON TRUE`).
		LeftJoin(`LATERAL (
			SELECT MAX(p.slot_reserved_until) AS until FROM purchases p
			WHERE p.slot_reserved_id = s.id AND p.slot_reserved_until > ? AND p.postomat_slot IS NULL) res ON TRUE`, now).
		Where(sq.Eq{"s.postomat_id": lockerID}).
		OrderBy("s.id").
		MustSql()

	var rows []SlotState
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select slot states: %w", err)
	}

	states := make([]entities.SlotState, 0, len(rows))
	for _, row := range rows {
		states = append(states, SlotStateToEntity(row))
	}
	return states, nil
}

func (r *postgresRepo) SlotOccupied(ctx context.Context, slotID, exceptID int64) (bool, error) {
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From("purchases").
		Where(sq.Eq{"postomat_slot": slotID, "date_receive": nil}).
		Where(sq.NotEq{"id": exceptID}).
		Suffix(")").
		MustSql()

	var occupied bool
	if err := r.getContext(ctx, &occupied, query, args...); err != nil {
		return false, fmt.Errorf("failed to check slot occupancy: %w", err)
	}
	return occupied, nil
}
