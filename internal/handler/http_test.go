package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
	"github.com/SergeyBogomolovv/postomat-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/postomat-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/postomat-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testMocks struct {
	handoff  *mocks.MockHandoff
	slots    *mocks.MockSlotProvider
	assigner *mocks.MockCourierAssigner
}

func newRouter(t *testing.T) (chi.Router, testMocks) {
	m := testMocks{
		handoff:  mocks.NewMockHandoff(t),
		slots:    mocks.NewMockSlotProvider(t),
		assigner: mocks.NewMockCourierAssigner(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.handoff, m.slots, m.assigner)

	r := chi.NewRouter()
	h.Init(r)
	return r, m
}

func do(r http.Handler, method, target, body, userID, role string) (*http.Response, string) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
		req.Header.Set(middleware.HeaderUserRole, role)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()
	data, _ := io.ReadAll(res.Body)
	return res, string(data)
}

func TestHTTPHandler_CourierScan(t *testing.T) {
	until := time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC)
	reservation := entities.Reservation{
		Purchase: entities.Purchase{ID: 1, SlotReservedID: 5, SlotReservedUntil: until, Status: entities.StatusSlotReserved},
		Slots: []entities.SlotState{
			{Slot: entities.Slot{ID: 5}, ReservedUntil: until},
			{Slot: entities.Slot{ID: 6}, Occupied: true, OccupantID: 9},
		},
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m testMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"qr":"secret"}`,
			mockBehavior: func(m testMocks) {
				m.handoff.EXPECT().CourierScan(mock.Anything, int64(20), "secret").Return(reservation, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"reservedSlotId":5`,
		},
		{
			name:         "empty qr",
			body:         `{"qr":""}`,
			mockBehavior: func(m testMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid_request"`,
		},
		{
			name:         "malformed body",
			body:         `{"qr":`,
			mockBehavior: func(m testMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid_request"`,
		},
		{
			name: "not found",
			body: `{"qr":"wrong"}`,
			mockBehavior: func(m testMocks) {
				m.handoff.EXPECT().CourierScan(mock.Anything, int64(20), "wrong").
					Return(entities.Reservation{}, entities.ErrPurchaseNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"not_found"`,
		},
		{
			name: "no capacity",
			body: `{"qr":"secret"}`,
			mockBehavior: func(m testMocks) {
				m.handoff.EXPECT().CourierScan(mock.Anything, int64(20), "secret").
					Return(entities.Reservation{}, entities.ErrNoCapacity).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"no_capacity"`,
		},
		{
			name: "internal error",
			body: `{"qr":"secret"}`,
			mockBehavior: func(m testMocks) {
				m.handoff.EXPECT().CourierScan(mock.Anything, int64(20), "secret").
					Return(entities.Reservation{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal_error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newRouter(t)
			tc.mockBehavior(m)

			res, body := do(r, http.MethodPost, "/courier/scan", tc.body, "20", "courier")

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
			assert.NotContains(t, body, "db error")

			if tc.wantStatus == http.StatusOK {
				var resp handler.CourierScanResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, int64(1), resp.PurchaseID)
				assert.True(t, until.Equal(resp.ReservedUntil))
				assert.Equal(t, entities.StatusSlotReserved, resp.Status)
				require.Len(t, resp.Slots, 2)
				assert.False(t, resp.Slots[0].Busy)
				assert.True(t, resp.Slots[1].Busy)
			}
		})
	}
}

func TestHTTPHandler_PurchaseActions(t *testing.T) {
	placed := entities.Purchase{ID: 1, SlotReservedID: 5, PostomatSlot: 5, ClientQR: "client-secret", Status: entities.StatusPlaced}

	testCases := []struct {
		name         string
		target       string
		role         string
		mockBehavior func(m testMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "courier open",
			target: "/courier/open",
			role:   "courier",
			mockBehavior: func(m testMocks) {
				m.handoff.EXPECT().CourierOpen(mock.Anything, int64(20), int64(1)).
					Return(entities.Purchase{ID: 1, SlotReservedID: 5, Status: entities.StatusDoorOpen}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"slotId":5,"status":"DOOR_OPEN"}`,
		},
		{
			name:   "courier open expired",
			target: "/courier/open",
			role:   "courier",
			mockBehavior: func(m testMocks) {
				m.handoff.EXPECT().CourierOpen(mock.Anything, int64(20), int64(1)).
					Return(entities.Purchase{}, entities.Precondition(entities.ReasonReservationExpired)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"reservation_expired"`,
		},
		{
			name:   "courier place",
			target: "/courier/place",
			role:   "courier",
			mockBehavior: func(m testMocks) {
				m.handoff.EXPECT().CourierPlace(mock.Anything, int64(20), int64(1)).Return(placed, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"slotId":5,"clientQr":"client-secret","status":"PLACED"}`,
		},
		{
			name:   "courier place slot occupied",
			target: "/courier/place",
			role:   "courier",
			mockBehavior: func(m testMocks) {
				m.handoff.EXPECT().CourierPlace(mock.Anything, int64(20), int64(1)).
					Return(entities.Purchase{}, entities.Precondition(entities.ReasonSlotOccupied)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"slot_occupied"`,
		},
		{
			name:   "courier place slot removed",
			target: "/courier/place",
			role:   "courier",
			mockBehavior: func(m testMocks) {
				m.handoff.EXPECT().CourierPlace(mock.Anything, int64(20), int64(1)).
					Return(entities.Purchase{}, entities.ErrSlotNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"not_found"`,
		},
		{
			name:   "courier close",
			target: "/courier/close",
			role:   "courier",
			mockBehavior: func(m testMocks) {
				m.handoff.EXPECT().CourierClose(mock.Anything, int64(20), int64(1)).
					Return(entities.Purchase{Status: entities.StatusReadyForPickup}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"READY_FOR_PICKUP"}`,
		},
		{
			name:   "client open",
			target: "/client/open",
			role:   "client",
			mockBehavior: func(m testMocks) {
				m.handoff.EXPECT().ClientOpen(mock.Anything, int64(20), int64(1)).
					Return(entities.Purchase{PostomatSlot: 5, Status: entities.StatusDoorOpen}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"slotId":5,"status":"DOOR_OPEN"}`,
		},
		{
			name:   "client take door closed",
			target: "/client/take",
			role:   "client",
			mockBehavior: func(m testMocks) {
				m.handoff.EXPECT().ClientTake(mock.Anything, int64(20), int64(1)).
					Return(entities.Purchase{}, entities.Precondition(entities.ReasonDoorNotOpen)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"door_not_open"`,
		},
		{
			name:   "client close",
			target: "/client/close",
			role:   "client",
			mockBehavior: func(m testMocks) {
				m.handoff.EXPECT().ClientClose(mock.Anything, int64(20), int64(1)).
					Return(entities.Purchase{Status: entities.StatusPickedUp}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"PICKED_UP"}`,
		},
		{
			name:         "client calls courier route",
			target:       "/courier/place",
			role:         "client",
			mockBehavior: func(m testMocks) {},
			wantStatus:   http.StatusForbidden,
			wantBody:     `"forbidden"`,
		},
		{
			name:         "anonymous",
			target:       "/client/take",
			mockBehavior: func(m testMocks) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"unauthorized"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newRouter(t)
			tc.mockBehavior(m)

			userID := "20"
			if tc.role == "" {
				userID = ""
			}
			res, body := do(r, http.MethodPost, tc.target, `{"purchaseId":1}`, userID, tc.role)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_PurchaseActionValidation(t *testing.T) {
	r, _ := newRouter(t)

	res, body := do(r, http.MethodPost, "/courier/open", `{"purchaseId":0}`, "20", "courier")

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, `"PurchaseID":"required"`)
}

func TestHTTPHandler_ClientScan(t *testing.T) {
	t.Run("located", func(t *testing.T) {
		r, m := newRouter(t)
		m.handoff.EXPECT().ClientScan(mock.Anything, int64(10), "client-secret").
			Return(entities.Purchase{ID: 1, PostomatSlot: 5, Status: entities.StatusReadyForPickup}, nil).Once()

		res, body := do(r, http.MethodPost, "/client/scan", `{"qr":"client-secret"}`, "10", "client")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `{"purchaseId":1,"slotId":5,"status":"READY_FOR_PICKUP"}`, body)
	})

	t.Run("not placed", func(t *testing.T) {
		r, m := newRouter(t)
		m.handoff.EXPECT().ClientScan(mock.Anything, int64(10), "client-secret").
			Return(entities.Purchase{}, entities.Precondition(entities.ReasonNotPlaced)).Once()

		res, body := do(r, http.MethodPost, "/client/scan", `{"qr":"client-secret"}`, "10", "client")

		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Contains(t, body, `"not_placed"`)
	})
}

func TestHTTPHandler_ListSlots(t *testing.T) {
	locker := entities.Locker{ID: 3, Address: "Lenina 1", Slots: []entities.Slot{{ID: 5}, {ID: 6}}}
	states := []entities.SlotState{
		{Slot: entities.Slot{ID: 5}},
		{Slot: entities.Slot{ID: 6}, Occupied: true},
	}

	testCases := []struct {
		name         string
		query        string
		mockBehavior func(m testMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "success",
			query: "?locker_id=3",
			mockBehavior: func(m testMocks) {
				m.slots.EXPECT().ListSlotStates(mock.Anything, int64(3)).Return(locker, states, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"slots":[{"id":5,"busy":false},{"id":6,"busy":true}]`,
		},
		{
			name:         "missing locker id",
			mockBehavior: func(m testMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid_request"`,
		},
		{
			name:  "unknown locker",
			query: "?locker_id=4",
			mockBehavior: func(m testMocks) {
				m.slots.EXPECT().ListSlotStates(mock.Anything, int64(4)).
					Return(entities.Locker{}, nil, entities.ErrLockerNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"not_found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newRouter(t)
			tc.mockBehavior(m)

			res, body := do(r, http.MethodGet, "/slots"+tc.query, "", "10", "client")

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_AssignCourier(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, m := newRouter(t)
		m.assigner.EXPECT().AssignCourier(mock.Anything, int64(1), int64(20)).
			Return(entities.Purchase{ID: 1, CourierQR: "courier-secret", Status: entities.StatusCourierAssigned}, nil).Once()

		res, body := do(r, http.MethodPost, "/staff/purchases/1/assign", `{"courierId":20}`, "99", "staff")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `{"purchaseId":1,"courierQr":"courier-secret","status":"COURIER_ASSIGNED"}`, body)
	})

	t.Run("bad id", func(t *testing.T) {
		r, _ := newRouter(t)

		res, _ := do(r, http.MethodPost, "/staff/purchases/abc/assign", `{"courierId":20}`, "99", "staff")

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("home delivery", func(t *testing.T) {
		r, m := newRouter(t)
		m.assigner.EXPECT().AssignCourier(mock.Anything, int64(1), int64(20)).
			Return(entities.Purchase{}, entities.Precondition(entities.ReasonNotPostomat)).Once()

		res, body := do(r, http.MethodPost, "/staff/purchases/1/assign", `{"courierId":20}`, "99", "staff")

		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Contains(t, body, `"not_postomat_delivery"`)
	})
}

func TestHTTPHandler_CreateLocker(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, m := newRouter(t)
		m.slots.EXPECT().CreateLocker(mock.Anything, mock.MatchedBy(func(l entities.Locker) bool {
			return l.Address == "Lenina 1" && len(l.Slots) == 1 && l.Slots[0].Size.Width == 400
		})).Return(entities.Locker{ID: 3, Address: "Lenina 1", Slots: []entities.Slot{
			{ID: 5, LockerID: 3, Size: entities.Dimensions{Width: 400, Height: 100, Length: 600}},
		}}, nil).Once()

		body := `{"address":"Lenina 1","latitude":55.75,"longitude":37.61,"slots":[{"width":400,"height":100,"length":600}]}`
		res, resp := do(r, http.MethodPost, "/staff/lockers", body, "99", "staff")

		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Contains(t, resp, `"slots":[{"id":5,"width":400,"height":100,"length":600}]`)
	})

	t.Run("no slots", func(t *testing.T) {
		r, _ := newRouter(t)

		res, _ := do(r, http.MethodPost, "/staff/lockers", `{"address":"Lenina 1","slots":[]}`, "99", "staff")

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("courier forbidden", func(t *testing.T) {
		r, _ := newRouter(t)

		res, _ := do(r, http.MethodPost, "/staff/lockers", `{}`, "20", "courier")

		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})
}
