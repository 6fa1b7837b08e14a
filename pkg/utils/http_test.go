package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, WriteError(w, "slot occupied", "slot_occupied", http.StatusConflict))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var res ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, ErrorResponse{Message: "slot occupied", Code: "slot_occupied"}, res)
}

func TestWriteValidationError(t *testing.T) {
	type body struct {
		QR string `validate:"required"`
	}
	err := validator.New().Struct(body{})

	w := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(w, err))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var res ValidationErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, "invalid_request", res.Code)
	assert.Equal(t, "required", res.Fields["QR"])
}
