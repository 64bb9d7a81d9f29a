package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	t.Run("maps known codes", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeValidation))
		assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
		assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeAlreadyExists))
		assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(ErrCodeInvalidState))
	})

	t.Run("defaults to internal server error", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("ERR_NO_SUCH_CODE"))
	})
}

func TestNormalizeErrorCode(t *testing.T) {
	t.Run("maps domain codes", func(t *testing.T) {
		assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("CUSTOMER_NOT_FOUND"))
		assert.Equal(t, ErrCodeValidationFormat, NormalizeErrorCode("INVALID_MONTH"))
		assert.Equal(t, ErrCodeAlreadyExists, NormalizeErrorCode("ALREADY_EXISTS"))
	})

	t.Run("passes through unknown codes", func(t *testing.T) {
		assert.Equal(t, "ERR_CUSTOM", NormalizeErrorCode("ERR_CUSTOM"))
	})
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Resource not found", "req-123")

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Resource not found", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
	assert.Empty(t, resp.Error.Details)
}

func TestNewDetailedErrorResponse(t *testing.T) {
	lines := []string{
		"Customer usage data is invalid. Check the contents of the uploaded file.",
		"Missing required columns: Total Labels.",
	}
	resp := NewDetailedErrorResponse(ErrCodeValidation, lines[0], "req-123", lines)

	assert.False(t, resp.Success)
	assert.Equal(t, lines, resp.Error.Details)
	assert.Equal(t, lines[0], resp.Error.Message)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a"}, 21, 1, 10)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(21), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
