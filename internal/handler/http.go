package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
	"github.com/SergeyBogomolovv/postomat-service/internal/middleware"
	"github.com/SergeyBogomolovv/postomat-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handoff interface {
	CourierScan(ctx context.Context, courierID int64, qr string) (entities.Reservation, error)
	CourierOpen(ctx context.Context, courierID, purchaseID int64) (entities.Purchase, error)
	CourierPlace(ctx context.Context, courierID, purchaseID int64) (entities.Purchase, error)
	CourierClose(ctx context.Context, courierID, purchaseID int64) (entities.Purchase, error)

	ClientScan(ctx context.Context, userID int64, qr string) (entities.Purchase, error)
	ClientOpen(ctx context.Context, userID, purchaseID int64) (entities.Purchase, error)
	ClientTake(ctx context.Context, userID, purchaseID int64) (entities.Purchase, error)
	ClientClose(ctx context.Context, userID, purchaseID int64) (entities.Purchase, error)
}

type SlotProvider interface {
	ListSlotStates(ctx context.Context, lockerID int64) (entities.Locker, []entities.SlotState, error)
	CreateLocker(ctx context.Context, l entities.Locker) (entities.Locker, error)
}

type CourierAssigner interface {
	AssignCourier(ctx context.Context, purchaseID, courierID int64) (entities.Purchase, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	handoff  Handoff
	slots    SlotProvider
	assigner CourierAssigner
}

func NewHTTPHandler(logger *slog.Logger, handoff Handoff, slots SlotProvider, assigner CourierAssigner) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		handoff:  handoff,
		slots:    slots,
		assigner: assigner,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity)

		r.Get("/slots", h.ListSlots)

		r.Route("/courier", func(r chi.Router) {
			r.Use(middleware.RequireRole(entities.RoleCourier))
			r.Post("/scan", h.CourierScan)
			r.Post("/open", h.CourierOpen)
			r.Post("/place", h.CourierPlace)
			r.Post("/close", h.CourierClose)
		})

		r.Route("/client", func(r chi.Router) {
			r.Use(middleware.RequireRole(entities.RoleClient))
			r.Post("/scan", h.ClientScan)
			r.Post("/open", h.ClientOpen)
			r.Post("/take", h.ClientTake)
			r.Post("/close", h.ClientClose)
		})

		r.Route("/staff", func(r chi.Router) {
			r.Use(middleware.RequireRole(entities.RoleStaff))
			r.Post("/purchases/{id}/assign", h.AssignCourier)
			r.Post("/lockers", h.CreateLocker)
		})
	})
}

func observe(op string) func(outcome string) {
	start := time.Now()
	transitionsInProgress.Inc()
	return func(outcome string) {
		transitionsInProgress.Dec()
		transitionsTotal.WithLabelValues(op, outcome).Inc()
		transitionDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}

// decode читает и валидирует тело запроса, при ошибке сам пишет ответ.
func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", codeInvalidRequest, http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func callerID(r *http.Request) int64 {
	caller, _ := middleware.CallerFrom(r.Context())
	return caller.ID
}

type purchaseAction func(ctx context.Context, callerID, purchaseID int64) (entities.Purchase, error)

func (h *HTTPHandler) runAction(w http.ResponseWriter, r *http.Request, op string, action purchaseAction, respond func(entities.Purchase) any) {
	done := observe(op)

	var req PurchaseActionRequest
	if !h.decode(w, r, &req) {
		done(codeInvalidRequest)
		return
	}

	p, err := action(r.Context(), callerID(r), req.PurchaseID)
	if err != nil {
		done(h.writeServiceError(r.Context(), w, op, err))
		return
	}

	done("ok")
	utils.WriteJSON(w, respond(p), http.StatusOK)
}

// CourierScan резервирует ячейку по QR курьера.
// @Summary      Сканирование QR курьером
// @Description  Находит заказ по QR курьера и резервирует свободную ячейку на 10 минут. Повторное сканирование возвращает действующую резервацию
// @Tags         courier
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header    int          true  "Идентификатор курьера"
// @Param        X-User-Role  header    string       true  "Роль" Enums(courier)
// @Param        request      body      ScanRequest  true  "QR курьера"
// @Success      200  {object}  CourierScanResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Нет свободных ячеек или неверный этап"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /courier/scan [post]
func (h *HTTPHandler) CourierScan(w http.ResponseWriter, r *http.Request) {
	done := observe("courier_scan")

	var req ScanRequest
	if !h.decode(w, r, &req) {
		done(codeInvalidRequest)
		return
	}

	res, err := h.handoff.CourierScan(r.Context(), callerID(r), req.QR)
	if err != nil {
		done(h.writeServiceError(r.Context(), w, "courier_scan", err))
		return
	}

	done("ok")
	utils.WriteJSON(w, reservationToJSON(res), http.StatusOK)
}

// CourierOpen открывает зарезервированную ячейку для закладки.
// @Summary      Открыть ячейку (курьер)
// @Tags         courier
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header    int                    true  "Идентификатор курьера"
// @Param        X-User-Role  header    string                 true  "Роль" Enums(courier)
// @Param        request      body      PurchaseActionRequest  true  "Заказ"
// @Success      200  {object}  DoorResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Резервация истекла или отсутствует"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /courier/open [post]
func (h *HTTPHandler) CourierOpen(w http.ResponseWriter, r *http.Request) {
	h.runAction(w, r, "courier_open", h.handoff.CourierOpen, func(p entities.Purchase) any {
		return DoorResponse{SlotID: p.SlotReservedID, Status: p.Status}
	})
}

// CourierPlace подтверждает закладку посылки в ячейку.
// @Summary      Подтвердить закладку
// @Description  Закрепляет ячейку за заказом и выдаёт QR для получателя
// @Tags         courier
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header    int                    true  "Идентификатор курьера"
// @Param        X-User-Role  header    string                 true  "Роль" Enums(courier)
// @Param        request      body      PurchaseActionRequest  true  "Заказ"
// @Success      200  {object}  PlaceResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Дверь не открыта или ячейка занята"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /courier/place [post]
func (h *HTTPHandler) CourierPlace(w http.ResponseWriter, r *http.Request) {
	h.runAction(w, r, "courier_place", h.handoff.CourierPlace, func(p entities.Purchase) any {
		return PlaceResponse{SlotID: p.PostomatSlot, ClientQR: p.ClientQR, Status: p.Status}
	})
}

// CourierClose закрывает ячейку после закладки.
// @Summary      Закрыть ячейку (курьер)
// @Description  Без закладки освобождает резервацию
// @Tags         courier
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header    int                    true  "Идентификатор курьера"
// @Param        X-User-Role  header    string                 true  "Роль" Enums(courier)
// @Param        request      body      PurchaseActionRequest  true  "Заказ"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Неверный этап"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /courier/close [post]
func (h *HTTPHandler) CourierClose(w http.ResponseWriter, r *http.Request) {
	h.runAction(w, r, "courier_close", h.handoff.CourierClose, func(p entities.Purchase) any {
		return StatusResponse{Status: p.Status}
	})
}

// ClientScan находит ячейку с посылкой по QR получателя.
// @Summary      Сканирование QR клиентом
// @Tags         client
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header    int          true  "Идентификатор клиента"
// @Param        X-User-Role  header    string       true  "Роль" Enums(client)
// @Param        request      body      ScanRequest  true  "QR получателя"
// @Success      200  {object}  ClientScanResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Посылка ещё не заложена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /client/scan [post]
func (h *HTTPHandler) ClientScan(w http.ResponseWriter, r *http.Request) {
	done := observe("client_scan")

	var req ScanRequest
	if !h.decode(w, r, &req) {
		done(codeInvalidRequest)
		return
	}

	p, err := h.handoff.ClientScan(r.Context(), callerID(r), req.QR)
	if err != nil {
		done(h.writeServiceError(r.Context(), w, "client_scan", err))
		return
	}

	done("ok")
	utils.WriteJSON(w, ClientScanResponse{PurchaseID: p.ID, SlotID: p.PostomatSlot, Status: p.Status}, http.StatusOK)
}

// ClientOpen открывает ячейку для получения.
// @Summary      Открыть ячейку (клиент)
// @Tags         client
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header    int                    true  "Идентификатор клиента"
// @Param        X-User-Role  header    string                 true  "Роль" Enums(client)
// @Param        request      body      PurchaseActionRequest  true  "Заказ"
// @Success      200  {object}  DoorResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Неверный этап"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /client/open [post]
func (h *HTTPHandler) ClientOpen(w http.ResponseWriter, r *http.Request) {
	h.runAction(w, r, "client_open", h.handoff.ClientOpen, func(p entities.Purchase) any {
		return DoorResponse{SlotID: p.PostomatSlot, Status: p.Status}
	})
}

// ClientTake подтверждает получение посылки.
// @Summary      Забрать посылку
// @Tags         client
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header    int                    true  "Идентификатор клиента"
// @Param        X-User-Role  header    string                 true  "Роль" Enums(client)
// @Param        request      body      PurchaseActionRequest  true  "Заказ"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Дверь не открыта"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /client/take [post]
func (h *HTTPHandler) ClientTake(w http.ResponseWriter, r *http.Request) {
	h.runAction(w, r, "client_take", h.handoff.ClientTake, func(p entities.Purchase) any {
		return StatusResponse{Status: p.Status}
	})
}

// ClientClose закрывает ячейку после получения.
// @Summary      Закрыть ячейку (клиент)
// @Tags         client
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header    int                    true  "Идентификатор клиента"
// @Param        X-User-Role  header    string                 true  "Роль" Enums(client)
// @Param        request      body      PurchaseActionRequest  true  "Заказ"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Посылка не заложена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /client/close [post]
func (h *HTTPHandler) ClientClose(w http.ResponseWriter, r *http.Request) {
	h.runAction(w, r, "client_close", h.handoff.ClientClose, func(p entities.Purchase) any {
		return StatusResponse{Status: p.Status}
	})
}

// ListSlots возвращает занятость ячеек постамата.
// @Summary      Состояние ячеек
// @Description  Занятость считается на момент запроса, истёкшие резервации не учитываются
// @Tags         slots
// @Produce      json
// @Param        X-User-ID    header    int     true  "Идентификатор пользователя"
// @Param        X-User-Role  header    string  true  "Роль" Enums(client, courier, staff)
// @Param        locker_id    query     int     true  "Идентификатор постамата"
// @Success      200  {object}  SlotsResponse
// @Failure      400  {object}  utils.ErrorResponse "Неверный идентификатор"
// @Failure      404  {object}  utils.ErrorResponse "Постамат не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /slots [get]
func (h *HTTPHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	lockerID, err := strconv.ParseInt(r.URL.Query().Get("locker_id"), 10, 64)
	if err != nil || lockerID <= 0 {
		utils.WriteError(w, "invalid locker_id", codeInvalidRequest, http.StatusBadRequest)
		return
	}

	locker, states, err := h.slots.ListSlotStates(r.Context(), lockerID)
	if err != nil {
		h.writeServiceError(r.Context(), w, "list_slots", err)
		return
	}

	utils.WriteJSON(w, SlotsResponse{Locker: lockerToJSON(locker, false), Slots: slotStatesToJSON(states)}, http.StatusOK)
}

// AssignCourier назначает курьера на заказ.
// @Summary      Назначить курьера
// @Description  Выдаёт курьеру QR для закладки
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header    int                   true  "Идентификатор сотрудника"
// @Param        X-User-Role  header    string                true  "Роль" Enums(staff)
// @Param        id           path      int                   true  "Идентификатор заказа"
// @Param        request      body      AssignCourierRequest  true  "Курьер"
// @Success      200  {object}  AssignCourierResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Неверный этап"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /staff/purchases/{id}/assign [post]
func (h *HTTPHandler) AssignCourier(w http.ResponseWriter, r *http.Request) {
	done := observe("assign_courier")

	purchaseID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || purchaseID <= 0 {
		done(codeInvalidRequest)
		utils.WriteError(w, "invalid purchase id", codeInvalidRequest, http.StatusBadRequest)
		return
	}

	var req AssignCourierRequest
	if !h.decode(w, r, &req) {
		done(codeInvalidRequest)
		return
	}

	p, err := h.assigner.AssignCourier(r.Context(), purchaseID, req.CourierID)
	if err != nil {
		done(h.writeServiceError(r.Context(), w, "assign_courier", err))
		return
	}

	done("ok")
	utils.WriteJSON(w, AssignCourierResponse{PurchaseID: p.ID, CourierQR: p.CourierQR, Status: p.Status}, http.StatusOK)
}

// CreateLocker регистрирует постамат и его ячейки.
// @Summary      Добавить постамат
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header    int                  true  "Идентификатор сотрудника"
// @Param        X-User-Role  header    string               true  "Роль" Enums(staff)
// @Param        request      body      CreateLockerRequest  true  "Постамат"
// @Success      201  {object}  LockerResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /staff/lockers [post]
func (h *HTTPHandler) CreateLocker(w http.ResponseWriter, r *http.Request) {
	var req CreateLockerRequest
	if !h.decode(w, r, &req) {
		return
	}

	locker, err := h.slots.CreateLocker(r.Context(), req.ToEntity())
	if err != nil {
		h.writeServiceError(r.Context(), w, "create_locker", err)
		return
	}

	h.logger.InfoContext(r.Context(), "locker created", slog.Int64("lockerID", locker.ID), slog.Int("slots", len(locker.Slots)))
	utils.WriteJSON(w, lockerToJSON(locker, true), http.StatusCreated)
}
