package service

import (
	"math/rand/v2"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
)

// Randomizer возвращает индекс в [0, n)
type Randomizer interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

func candidateSlots(states []entities.SlotState, parcel entities.Dimensions) []entities.Slot {
	candidates := make([]entities.Slot, 0, len(states))
	for _, st := range states {
		if st.Free() && parcel.FitsInto(st.Slot.Size) {
			candidates = append(candidates, st.Slot)
		}
	}
	return candidates
}

// markReserved отражает новый резерв в уже прочитанном снимке
func markReserved(states []entities.SlotState, p entities.Purchase) []entities.SlotState {
	for i := range states {
		if states[i].Slot.ID == p.SlotReservedID {
			states[i].ReservedUntil = p.SlotReservedUntil
		}
	}
	return states
}
