package entities

import (
	"slices"
	"time"
)

// Миллиметры, ноль - неизвестно
type Dimensions struct {
	Width  int
	Height int
	Length int
}

func (d Dimensions) Unknown() bool {
	return d.Width <= 0 || d.Height <= 0 || d.Length <= 0
}

// Коробку можно повернуть, стороны сравниваются отсортированными
func (d Dimensions) FitsInto(cell Dimensions) bool {
	if d.Unknown() {
		return true
	}
	box := []int{d.Width, d.Height, d.Length}
	space := []int{cell.Width, cell.Height, cell.Length}
	slices.Sort(box)
	slices.Sort(space)
	for i := range box {
		if box[i] > space[i] {
			return false
		}
	}
	return true
}

type Slot struct {
	ID       int64
	LockerID int64
	Size     Dimensions
}

type Locker struct {
	ID        int64
	Address   string
	Latitude  float64
	Longitude float64
	Slots     []Slot
}

type SlotState struct {
	Slot Slot

	// Заложенная и ещё не полученная посылка
	Occupied   bool
	OccupantID int64

	// Только живой резерв
	ReservedUntil time.Time
}

func (s SlotState) Busy() bool {
	return s.Occupied
}

func (s SlotState) Reserved() bool {
	return !s.ReservedUntil.IsZero()
}

func (s SlotState) Free() bool {
	return !s.Occupied && !s.Reserved()
}
