package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("DLQ_001", "Dead letter entry not found", http.StatusNotFound),
			expected: "[DLQ_001] Dead letter entry not found",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_NilUnwrap(t *testing.T) {
	appErr := New("VAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestErrorHTTPStatuses(t *testing.T) {
	tests := []struct {
		name   string
		appErr *AppError
		code   string
		status int
	}{
		{"invalid provider signature", ErrInvalidProviderSignature(), "SEC_001", http.StatusBadRequest},
		{"timestamp expired", ErrTimestampExpired(), "SEC_002", http.StatusBadRequest},
		{"invalid token", ErrInvalidToken(), "SEC_003", http.StatusUnauthorized},
		{"operator required", ErrOperatorRequired(), "SEC_004", http.StatusForbidden},
		{"delivery not found", ErrDeliveryNotFound(), "DLV_001", http.StatusNotFound},
		{"dead letter not found", ErrDeadLetterNotFound(), "DLQ_001", http.StatusNotFound},
		{"dead letter already handled", ErrDeadLetterAlreadyHandled(), "DLQ_002", http.StatusConflict},
		{"handler failure", ErrInboundHandlerFailure(fmt.Errorf("boom")), "ING_001", http.StatusInternalServerError},
		{"malformed inbound", ErrMalformedInboundEvent(), "ING_002", http.StatusBadRequest},
		{"rate limited", ErrRateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.appErr.Code)
			assert.Equal(t, tt.status, tt.appErr.HTTPStatus)
		})
	}
}
