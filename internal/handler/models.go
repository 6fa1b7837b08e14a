package handler

import (
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
)

type ScanRequest struct {
	QR string `json:"qr" validate:"required,max=128"`
}

type PurchaseActionRequest struct {
	PurchaseID int64 `json:"purchaseId" validate:"required,gt=0"`
}

type AssignCourierRequest struct {
	CourierID int64 `json:"courierId" validate:"required,gt=0"`
}

type SlotSizeRequest struct {
	Width  int `json:"width" validate:"required,gt=0"`
	Height int `json:"height" validate:"required,gt=0"`
	Length int `json:"length" validate:"required,gt=0"`
}

type CreateLockerRequest struct {
	Address   string            `json:"address" validate:"required"`
	Latitude  float64           `json:"latitude" validate:"latitude"`
	Longitude float64           `json:"longitude" validate:"longitude"`
	Slots     []SlotSizeRequest `json:"slots" validate:"required,min=1,dive"`
}

func (r CreateLockerRequest) ToEntity() entities.Locker {
	l := entities.Locker{
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Slots:     make([]entities.Slot, 0, len(r.Slots)),
	}
	for _, s := range r.Slots {
		l.Slots = append(l.Slots, entities.Slot{Size: entities.Dimensions{Width: s.Width, Height: s.Height, Length: s.Length}})
	}
	return l
}

type SlotStateResponse struct {
	ID   int64 `json:"id"`
	Busy bool  `json:"busy"`
}

func slotStatesToJSON(states []entities.SlotState) []SlotStateResponse {
	res := make([]SlotStateResponse, 0, len(states))
	for _, s := range states {
		res = append(res, SlotStateResponse{ID: s.Slot.ID, Busy: s.Busy()})
	}
	return res
}

type CourierScanResponse struct {
	PurchaseID     int64               `json:"purchaseId"`
	Slots          []SlotStateResponse `json:"slots"`
	ReservedSlotID int64               `json:"reservedSlotId"`
	ReservedUntil  time.Time           `json:"reservedUntil"`
	Status         entities.Status     `json:"status"`
}

func reservationToJSON(r entities.Reservation) CourierScanResponse {
	return CourierScanResponse{
		PurchaseID:     r.Purchase.ID,
		Slots:          slotStatesToJSON(r.Slots),
		ReservedSlotID: r.Purchase.SlotReservedID,
		ReservedUntil:  r.Purchase.SlotReservedUntil,
		Status:         r.Purchase.Status,
	}
}

type DoorResponse struct {
	SlotID int64           `json:"slotId"`
	Status entities.Status `json:"status"`
}

type PlaceResponse struct {
	SlotID   int64           `json:"slotId"`
	ClientQR string          `json:"clientQr"`
	Status   entities.Status `json:"status"`
}

type StatusResponse struct {
	Status entities.Status `json:"status"`
}

type ClientScanResponse struct {
	PurchaseID int64           `json:"purchaseId"`
	SlotID     int64           `json:"slotId"`
	Status     entities.Status `json:"status"`
}

type SlotResponse struct {
	ID     int64 `json:"id"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Length int   `json:"length"`
}

type LockerResponse struct {
	ID        int64          `json:"id"`
	Address   string         `json:"address"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Slots     []SlotResponse `json:"slots,omitempty"`
}

func lockerToJSON(l entities.Locker, withSlots bool) LockerResponse {
	res := LockerResponse{ID: l.ID, Address: l.Address, Latitude: l.Latitude, Longitude: l.Longitude}
	if !withSlots {
		return res
	}
	res.Slots = make([]SlotResponse, 0, len(l.Slots))
	for _, s := range l.Slots {
		res.Slots = append(res.Slots, SlotResponse{ID: s.ID, Width: s.Size.Width, Height: s.Size.Height, Length: s.Size.Length})
	}
	return res
}

type SlotsResponse struct {
	Locker LockerResponse      `json:"locker"`
	Slots  []SlotStateResponse `json:"slots"`
}

type AssignCourierResponse struct {
	PurchaseID int64           `json:"purchaseId"`
	CourierQR  string          `json:"courierQr"`
	Status     entities.Status `json:"status"`
}

// Purchase событие оформления заказа из Kafka
type Purchase struct {
	ID             int64                   `json:"id" validate:"required,gt=0"`
	UserID         int64                   `json:"userId" validate:"required,gt=0"`
	ProductID      int64                   `json:"productId" validate:"required,gt=0"`
	PostomatID     int64                   `json:"postomatId" validate:"gte=0"`
	DeliveryMethod entities.DeliveryMethod `json:"deliveryMethod" validate:"required,oneof=BRANCH POSTOMAT COURIER"`
	CourierMode    entities.CourierMode    `json:"courierMode" validate:"omitempty,oneof=HOME POSTOMAT"`
	Parcel         Parcel                  `json:"parcel"`
	DateBuy        time.Time               `json:"dateBuy"`
}

// Габариты посылки в миллиметрах из карточки товара
type Parcel struct {
	Width  int `json:"width" validate:"gte=0"`
	Height int `json:"height" validate:"gte=0"`
	Length int `json:"length" validate:"gte=0"`
}

func PurchaseJSONToEntity(p Purchase) entities.Purchase {
	return entities.Purchase{
		ID:             p.ID,
		UserID:         p.UserID,
		ProductID:      p.ProductID,
		PostomatID:     p.PostomatID,
		DeliveryMethod: p.DeliveryMethod,
		CourierMode:    p.CourierMode,
		Parcel:         entities.Dimensions{Width: p.Parcel.Width, Height: p.Parcel.Height, Length: p.Parcel.Length},
		DateBuy:        p.DateBuy,
	}
}
