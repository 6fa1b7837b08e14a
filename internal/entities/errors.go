package entities

import (
	"errors"
)

var (
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrLockerNotFound   = errors.New("locker not found")
	ErrSlotNotFound     = errors.New("slot not found")
	ErrInvalidPurchase  = errors.New("invalid purchase")
	ErrInvalidLocker    = errors.New("invalid locker")

	ErrUnauthorized = errors.New("missing or invalid caller identity")
	ErrForbidden    = errors.New("caller role not allowed")

	ErrNoCapacity         = errors.New("no free slot")
	ErrPreconditionFailed = errors.New("precondition failed")

	// Guarded update не затронул строк, наружу не отдаётся
	ErrTransitionRejected = errors.New("transition rejected")
)

type Reason string

const (
	ReasonReservationExpired Reason = "reservation_expired"
	ReasonNoReservation      Reason = "no_reservation"
	ReasonDoorNotOpen        Reason = "door_not_open"
	ReasonSlotOccupied       Reason = "slot_occupied"
	ReasonNotPlaced          Reason = "not_placed"
	ReasonAlreadyPlaced      Reason = "already_placed"
	ReasonNotPostomat        Reason = "not_postomat_delivery"
	ReasonInvalidState       Reason = "invalid_state"
)

type PreconditionError struct {
	Reason Reason
}

func Precondition(reason Reason) error {
	return &PreconditionError{Reason: reason}
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + string(e.Reason)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPreconditionFailed
}

func ReasonOf(err error) (Reason, bool) {
	var pe *PreconditionError
	if errors.As(err, &pe) {
		return pe.Reason, true
	}
	return "", false
}
