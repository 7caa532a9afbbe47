package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	err := NewInvalidInput("bad query")
	assert.Equal(t, ErrCodeInvalidInput, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode)
	assert.Equal(t, "INVALID_INPUT: bad query", err.Error())
}

func TestAppError_Cause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewExternalService("upstream failed", cause)

	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)
}

func TestAppError_WithDetail(t *testing.T) {
	err := NewInternal("boom", nil).WithDetail("attempt", 3)
	assert.Equal(t, 3, err.Details["attempt"])
}

func TestAsAppError(t *testing.T) {
	appErr := NewQuotaExceeded("limit reached")
	wrapped := fmt.Errorf("handling request: %w", appErr)

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeQuotaExceeded, got.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusTooManyRequests, HTTPStatus(NewQuotaExceeded("limit")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewInvalidInput("bad")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(New(ErrCodeDatabaseQuery, "query failed", 0)))
}
