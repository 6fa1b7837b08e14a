package repo

import (
	"database/sql"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
)

var purchaseColumns = []string{
	"id", "user_id", "product_id", "courier_id", "postomat_id",
	"delivery_method", "courier_mode",
	"parcel_width", "parcel_height", "parcel_length",
	"courier_qr", "client_qr",
	"slot_reserved_id", "slot_reserved_until", "postomat_slot", "door_opened",
	"status", "date_buy", "date_send", "date_receive",
}

type Purchase struct {
	ID                int64          `db:"id"`
	UserID            int64          `db:"user_id"`
	ProductID         int64          `db:"product_id"`
	CourierID         sql.NullInt64  `db:"courier_id"`
	PostomatID        sql.NullInt64  `db:"postomat_id"`
	DeliveryMethod    string         `db:"delivery_method"`
	CourierMode       sql.NullString `db:"courier_mode"`
	ParcelWidth       int            `db:"parcel_width"`
	ParcelHeight      int            `db:"parcel_height"`
	ParcelLength      int            `db:"parcel_length"`
	CourierQR         sql.NullString `db:"courier_qr"`
	ClientQR          sql.NullString `db:"client_qr"`
	SlotReservedID    sql.NullInt64  `db:"slot_reserved_id"`
	SlotReservedUntil sql.NullTime   `db:"slot_reserved_until"`
	PostomatSlot      sql.NullInt64  `db:"postomat_slot"`
	DoorOpened        bool           `db:"door_opened"`
	Status            string         `db:"status"`
	DateBuy           sql.NullTime   `db:"date_buy"`
	DateSend          sql.NullTime   `db:"date_send"`
	DateReceive       sql.NullTime   `db:"date_receive"`
}

type Locker struct {
	ID        int64   `db:"id"`
	Address   string  `db:"address"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
}

type Slot struct {
	ID         int64 `db:"id"`
	PostomatID int64 `db:"postomat_id"`
	Width      int   `db:"width"`
	Height     int   `db:"height"`
	Length     int   `db:"length"`
}

type SlotState struct {
	Slot
	OccupantID    sql.NullInt64 `db:"occupant_id"`
	ReservedUntil sql.NullTime  `db:"reserved_until"`
}

func PurchaseToEntity(p Purchase) entities.Purchase {
	return entities.Purchase{
		ID:             p.ID,
		UserID:         p.UserID,
		ProductID:      p.ProductID,
		CourierID:      p.CourierID.Int64,
		PostomatID:     p.PostomatID.Int64,
		DeliveryMethod: entities.DeliveryMethod(p.DeliveryMethod),
		CourierMode:    entities.CourierMode(nullStringToString(p.CourierMode)),
		Parcel: entities.Dimensions{
			Width:  p.ParcelWidth,
			Height: p.ParcelHeight,
			Length: p.ParcelLength,
		},
		CourierQR:         nullStringToString(p.CourierQR),
		ClientQR:          nullStringToString(p.ClientQR),
		SlotReservedID:    p.SlotReservedID.Int64,
		SlotReservedUntil: p.SlotReservedUntil.Time,
		PostomatSlot:      p.PostomatSlot.Int64,
		DoorOpened:        p.DoorOpened,
		Status:            entities.Status(p.Status),
		DateBuy:           p.DateBuy.Time,
		DateSend:          p.DateSend.Time,
		DateReceive:       p.DateReceive.Time,
	}
}

func SlotToEntity(s Slot) entities.Slot {
	return entities.Slot{
		ID:       s.ID,
		LockerID: s.PostomatID,
		Size:     entities.Dimensions{Width: s.Width, Height: s.Height, Length: s.Length},
	}
}

func LockerToEntity(l Locker, slots []Slot) entities.Locker {
	locker := entities.Locker{
		ID:        l.ID,
		Address:   l.Address,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Slots:     make([]entities.Slot, 0, len(slots)),
	}
	for _, s := range slots {
		locker.Slots = append(locker.Slots, SlotToEntity(s))
	}
	return locker
}

func SlotStateToEntity(s SlotState) entities.SlotState {
	return entities.SlotState{
		Slot:          SlotToEntity(s.Slot),
		Occupied:      s.OccupantID.Valid,
		OccupantID:    s.OccupantID.Int64,
		ReservedUntil: s.ReservedUntil.Time,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(i int64) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: i, Valid: true}
}
