package entities

import (
	"slices"
	"time"
)

const ReservationTTL = 10 * time.Minute

type DeliveryMethod string

const (
	DeliveryBranch   DeliveryMethod = "BRANCH"
	DeliveryPostomat DeliveryMethod = "POSTOMAT"
	DeliveryCourier  DeliveryMethod = "COURIER"
)

type CourierMode string

const (
	CourierModeHome     CourierMode = "HOME"
	CourierModePostomat CourierMode = "POSTOMAT"
)

type Status string

const (
	StatusCreated         Status = "CREATED"
	StatusCourierAssigned Status = "COURIER_ASSIGNED"
	StatusSlotReserved    Status = "SLOT_RESERVED"
	StatusDoorOpen        Status = "DOOR_OPEN"
	StatusPlaced          Status = "PLACED"
	StatusReadyForPickup  Status = "READY_FOR_PICKUP"
	StatusPickedUp        Status = "PICKED_UP"
)

func (s Status) In(statuses ...Status) bool {
	return slices.Contains(statuses, s)
}

// Статусы, допустимые для каждого шага
var (
	AssignableStatuses      = []Status{StatusCreated, StatusCourierAssigned}
	ReservableStatuses      = []Status{StatusCourierAssigned, StatusSlotReserved}
	DepositOpenableStatuses = []Status{StatusSlotReserved, StatusDoorOpen}
	DepositClosableStatuses = []Status{StatusSlotReserved, StatusDoorOpen, StatusPlaced}
	PickupOpenableStatuses  = []Status{StatusPlaced, StatusReadyForPickup}
	PickupClosableStatuses  = []Status{StatusDoorOpen, StatusReadyForPickup, StatusPickedUp}
)

type Purchase struct {
	ID             int64
	UserID         int64
	ProductID      int64
	CourierID      int64
	PostomatID     int64
	DeliveryMethod DeliveryMethod
	CourierMode    CourierMode
	Parcel         Dimensions

	// Одноразовые, пустые после использования
	CourierQR string
	ClientQR  string

	SlotReservedID    int64
	SlotReservedUntil time.Time
	PostomatSlot      int64
	DoorOpened        bool

	Status Status

	DateBuy     time.Time
	DateSend    time.Time
	DateReceive time.Time
}

func (p Purchase) UsesPostomat() bool {
	switch p.DeliveryMethod {
	case DeliveryPostomat:
		return true
	case DeliveryCourier:
		return p.CourierMode == CourierModePostomat
	default:
		return false
	}
}

func (p Purchase) Placed() bool {
	return p.PostomatSlot != 0
}

func (p Purchase) Received() bool {
	return !p.DateReceive.IsZero()
}

func (p Purchase) HasReservation() bool {
	return p.SlotReservedID != 0
}

func (p Purchase) ReservationLive(now time.Time) bool {
	return p.HasReservation() && p.SlotReservedUntil.After(now)
}

func (p Purchase) CanAssign() error {
	if !p.UsesPostomat() {
		return Precondition(ReasonNotPostomat)
	}
	if !p.Status.In(AssignableStatuses...) || p.HasReservation() || p.Placed() {
		return Precondition(ReasonInvalidState)
	}
	return nil
}

func (p Purchase) CanReserve() error {
	if !p.UsesPostomat() {
		return Precondition(ReasonNotPostomat)
	}
	if p.Placed() {
		return Precondition(ReasonAlreadyPlaced)
	}
	if p.Received() || !p.Status.In(ReservableStatuses...) {
		return Precondition(ReasonInvalidState)
	}
	return nil
}

func (p Purchase) CanOpenDeposit(now time.Time) error {
	if p.Placed() {
		return Precondition(ReasonAlreadyPlaced)
	}
	if !p.HasReservation() {
		return Precondition(ReasonNoReservation)
	}
	if !p.ReservationLive(now) {
		return Precondition(ReasonReservationExpired)
	}
	if !p.Status.In(DepositOpenableStatuses...) {
		return Precondition(ReasonInvalidState)
	}
	return nil
}

func (p Purchase) CanPlace() error {
	if p.Placed() {
		return Precondition(ReasonAlreadyPlaced)
	}
	if !p.DoorOpened || p.Status != StatusDoorOpen {
		return Precondition(ReasonDoorNotOpen)
	}
	if !p.HasReservation() {
		return Precondition(ReasonNoReservation)
	}
	return nil
}

func (p Purchase) CanCloseDeposit() error {
	if p.Received() || !p.Status.In(DepositClosableStatuses...) {
		return Precondition(ReasonInvalidState)
	}
	// Открытая дверь над заложенной посылкой относится к выдаче
	if p.Status == StatusDoorOpen && p.Placed() {
		return Precondition(ReasonInvalidState)
	}
	return nil
}

// Закрытие без закладки снимает резерв
func (p Purchase) AfterDepositClose() Status {
	if p.Placed() {
		return StatusReadyForPickup
	}
	return StatusCourierAssigned
}

func (p Purchase) CanLocate() error {
	if !p.Placed() {
		return Precondition(ReasonNotPlaced)
	}
	return nil
}

func (p Purchase) CanOpenPickup() error {
	if !p.Placed() {
		return Precondition(ReasonNotPlaced)
	}
	if p.Received() || !p.Status.In(PickupOpenableStatuses...) {
		return Precondition(ReasonInvalidState)
	}
	return nil
}

func (p Purchase) CanTake() error {
	if !p.Placed() {
		return Precondition(ReasonNotPlaced)
	}
	if p.Received() {
		return Precondition(ReasonInvalidState)
	}
	if !p.DoorOpened || p.Status != StatusDoorOpen {
		return Precondition(ReasonDoorNotOpen)
	}
	return nil
}

func (p Purchase) CanClosePickup() error {
	if !p.Placed() {
		return Precondition(ReasonNotPlaced)
	}
	// PLACED ещё принадлежит курьеру, дверь закрывает он
	if !p.Status.In(PickupClosableStatuses...) {
		return Precondition(ReasonInvalidState)
	}
	return nil
}

func (p Purchase) AfterPickupClose() Status {
	if p.Received() {
		return StatusPickedUp
	}
	return StatusReadyForPickup
}

type Reservation struct {
	Purchase Purchase
	Slots    []SlotState
}
