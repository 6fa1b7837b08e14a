package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
	"github.com/SergeyBogomolovv/postomat-service/pkg/utils"
)

const (
	codeNotFound       = "not_found"
	codeNoCapacity     = "no_capacity"
	codeInvalidRequest = "invalid_request"
	codeInternal       = "internal_error"
)

func errorCode(err error) (string, int) {
	if reason, ok := entities.ReasonOf(err); ok {
		return string(reason), http.StatusConflict
	}
	switch {
	case errors.Is(err, entities.ErrPurchaseNotFound),
		errors.Is(err, entities.ErrLockerNotFound),
		errors.Is(err, entities.ErrSlotNotFound):
		return codeNotFound, http.StatusNotFound
	case errors.Is(err, entities.ErrNoCapacity):
		return codeNoCapacity, http.StatusConflict
	case errors.Is(err, entities.ErrInvalidLocker), errors.Is(err, entities.ErrInvalidPurchase):
		return codeInvalidRequest, http.StatusBadRequest
	default:
		return codeInternal, http.StatusInternalServerError
	}
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, op string, err error) string {
	code, status := errorCode(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "operation failed", slog.String("op", op), slog.Any("error", err))
		utils.WriteError(w, "internal server error", code, status)
		return code
	}
	utils.WriteError(w, err.Error(), code, status)
	return code
}
