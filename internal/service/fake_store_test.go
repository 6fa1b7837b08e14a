package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
)

// fakeStore keeps purchases in memory and applies every guarded update
// atomically, the way a single-row UPDATE ... WHERE does.
type fakeStore struct {
	mu        sync.Mutex
	purchases map[int64]entities.Purchase
	slots     []entities.Slot
}

func newFakeStore(slots ...entities.Slot) *fakeStore {
	return &fakeStore{
		purchases: make(map[int64]entities.Purchase),
		slots:     slots,
	}
}

func (f *fakeStore) put(p entities.Purchase) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purchases[p.ID] = p
}

func (f *fakeStore) get(id int64) entities.Purchase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.purchases[id]
}

func (f *fakeStore) find(match func(p entities.Purchase) bool) (entities.Purchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.purchases {
		if match(p) {
			return p, nil
		}
	}
	return entities.Purchase{}, entities.ErrPurchaseNotFound
}

func (f *fakeStore) update(id int64, guard func(p entities.Purchase) bool, apply func(p *entities.Purchase)) (entities.Purchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.purchases[id]
	if !ok || !guard(p) {
		return entities.Purchase{}, entities.ErrTransitionRejected
	}
	apply(&p)
	f.purchases[id] = p
	return p, nil
}

// liveOccupant must be called with mu held.
func (f *fakeStore) liveOccupant(slotID, exceptID int64) bool {
	for _, o := range f.purchases {
		if o.ID != exceptID && o.PostomatSlot == slotID && !o.Received() {
			return true
		}
	}
	return false
}

// PurchaseStore

func (f *fakeStore) SavePurchase(_ context.Context, p entities.Purchase) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.purchases[p.ID]; !ok {
		p.Status = entities.StatusCreated
		f.purchases[p.ID] = p
	}
	return nil
}

func (f *fakeStore) GetPurchase(_ context.Context, id int64) (entities.Purchase, error) {
	return f.find(func(p entities.Purchase) bool { return p.ID == id })
}

func (f *fakeStore) AssignCourier(_ context.Context, id, courierID int64, courierQR string) (entities.Purchase, error) {
	return f.update(id, func(p entities.Purchase) bool {
		return p.UsesPostomat() && p.Status.In(entities.AssignableStatuses...) && !p.HasReservation() && !p.Placed()
	}, func(p *entities.Purchase) {
		p.CourierID = courierID
		if p.CourierQR == "" {
			p.CourierQR = courierQR
		}
		p.Status = entities.StatusCourierAssigned
	})
}

// HandoffStore

func (f *fakeStore) FindByCourierQR(_ context.Context, courierID int64, qr string) (entities.Purchase, error) {
	return f.find(func(p entities.Purchase) bool {
		return qr != "" && p.CourierID == courierID && p.CourierQR == qr && !p.Received()
	})
}

func (f *fakeStore) FindByClientQR(_ context.Context, userID int64, qr string) (entities.Purchase, error) {
	return f.find(func(p entities.Purchase) bool {
		return qr != "" && p.UserID == userID && p.ClientQR == qr && !p.Received()
	})
}

func (f *fakeStore) GetCourierPurchase(_ context.Context, id, courierID int64) (entities.Purchase, error) {
	return f.find(func(p entities.Purchase) bool {
		return p.ID == id && p.CourierID == courierID && !p.Received()
	})
}

func (f *fakeStore) GetClientPurchase(_ context.Context, id, userID int64) (entities.Purchase, error) {
	return f.find(func(p entities.Purchase) bool { return p.ID == id && p.UserID == userID })
}

func (f *fakeStore) ReserveSlot(_ context.Context, id, courierID, slotID int64, until, now time.Time) (entities.Purchase, error) {
	return f.update(id, func(p entities.Purchase) bool {
		if p.CourierID != courierID || !p.Status.In(entities.ReservableStatuses...) || p.Placed() || p.Received() {
			return false
		}
		for _, o := range f.purchases {
			if o.ID == id {
				continue
			}
			if o.SlotReservedID == slotID && o.SlotReservedUntil.After(now) && !o.Placed() {
				return false
			}
		}
		return !f.liveOccupant(slotID, id)
	}, func(p *entities.Purchase) {
		p.SlotReservedID = slotID
		p.SlotReservedUntil = until
		p.Status = entities.StatusSlotReserved
	})
}

func (f *fakeStore) OpenDepositDoor(_ context.Context, id, courierID int64, now time.Time) (entities.Purchase, error) {
	return f.update(id, func(p entities.Purchase) bool {
		return p.CourierID == courierID && p.Status.In(entities.DepositOpenableStatuses...) &&
			!p.Placed() && !p.Received() && p.ReservationLive(now)
	}, func(p *entities.Purchase) {
		p.DoorOpened = true
		p.Status = entities.StatusDoorOpen
	})
}

func (f *fakeStore) ConfirmPlacement(_ context.Context, id, courierID int64, clientQR string, now time.Time) (entities.Purchase, error) {
	return f.update(id, func(p entities.Purchase) bool {
		return p.CourierID == courierID && p.Status == entities.StatusDoorOpen && p.DoorOpened &&
			!p.Placed() && !p.Received() && p.HasReservation() && !f.liveOccupant(p.SlotReservedID, id)
	}, func(p *entities.Purchase) {
		p.PostomatSlot = p.SlotReservedID
		if p.DateSend.IsZero() {
			p.DateSend = now
		}
		p.ClientQR = clientQR
		p.CourierQR = ""
		p.Status = entities.StatusPlaced
	})
}

func (f *fakeStore) CloseDepositDoor(_ context.Context, id, courierID int64) (entities.Purchase, error) {
	return f.update(id, func(p entities.Purchase) bool {
		if p.CourierID != courierID || p.Received() {
			return false
		}
		depositing := p.Status.In(entities.StatusSlotReserved, entities.StatusDoorOpen) && !p.Placed()
		return depositing || p.Status == entities.StatusPlaced
	}, func(p *entities.Purchase) {
		p.DoorOpened = false
		p.SlotReservedID = 0
		p.SlotReservedUntil = time.Time{}
		if p.Placed() {
			p.Status = entities.StatusReadyForPickup
		} else {
			p.Status = entities.StatusCourierAssigned
		}
	})
}

func (f *fakeStore) OpenPickupDoor(_ context.Context, id, userID int64) (entities.Purchase, error) {
	return f.update(id, func(p entities.Purchase) bool {
		return p.UserID == userID && p.Status.In(entities.PickupOpenableStatuses...) && !p.Received() && p.Placed()
	}, func(p *entities.Purchase) {
		p.DoorOpened = true
		p.SlotReservedID = 0
		p.SlotReservedUntil = time.Time{}
		p.Status = entities.StatusDoorOpen
	})
}

func (f *fakeStore) ConfirmPickup(_ context.Context, id, userID int64, now time.Time) (entities.Purchase, error) {
	return f.update(id, func(p entities.Purchase) bool {
		return p.UserID == userID && p.Status == entities.StatusDoorOpen && p.DoorOpened && !p.Received() && p.Placed()
	}, func(p *entities.Purchase) {
		p.DateReceive = now
		p.ClientQR = ""
		p.Status = entities.StatusPickedUp
	})
}

func (f *fakeStore) ClosePickupDoor(_ context.Context, id, userID int64) (entities.Purchase, error) {
	return f.update(id, func(p entities.Purchase) bool {
		return p.UserID == userID && p.Placed() && p.Status.In(entities.PickupClosableStatuses...)
	}, func(p *entities.Purchase) {
		p.DoorOpened = false
		p.SlotReservedID = 0
		p.SlotReservedUntil = time.Time{}
		if p.Received() {
			p.Status = entities.StatusPickedUp
		} else {
			p.Status = entities.StatusReadyForPickup
		}
	})
}

// SlotStore

func (f *fakeStore) LockLocker(_ context.Context, lockerID int64) error {
	for _, s := range f.slots {
		if s.LockerID == lockerID {
			return nil
		}
	}
	return entities.ErrLockerNotFound
}

func (f *fakeStore) LockSlot(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.slots {
		if s.ID == id {
			return nil
		}
	}
	return entities.ErrSlotNotFound
}

func (f *fakeStore) dropSlots() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots = nil
}

func (f *fakeStore) SlotStates(_ context.Context, lockerID int64, now time.Time) ([]entities.SlotState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var states []entities.SlotState
	for _, s := range f.slots {
		if s.LockerID != lockerID {
			continue
		}
		st := entities.SlotState{Slot: s}
		for _, p := range f.purchases {
			if p.PostomatSlot == s.ID && !p.Received() {
				st.Occupied = true
				st.OccupantID = p.ID
			}
			if p.SlotReservedID == s.ID && p.SlotReservedUntil.After(now) && !p.Placed() &&
				p.SlotReservedUntil.After(st.ReservedUntil) {
				st.ReservedUntil = p.SlotReservedUntil
			}
		}
		states = append(states, st)
	}
	return states, nil
}

func (f *fakeStore) SlotOccupied(_ context.Context, slotID, exceptID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.liveOccupant(slotID, exceptID), nil
}

// recordingNotifier collects notifications, optionally failing every call.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []entities.Notification
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, msg entities.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.err
}

func (n *recordingNotifier) types() []entities.NotificationType {
	n.mu.Lock()
	defer n.mu.Unlock()
	types := make([]entities.NotificationType, 0, len(n.sent))
	for _, msg := range n.sent {
		types = append(types, msg.Type)
	}
	return types
}

type firstSlot struct{}

func (firstSlot) IntN(int) int { return 0 }

type lastSlot struct{}

func (lastSlot) IntN(n int) int { return n - 1 }
