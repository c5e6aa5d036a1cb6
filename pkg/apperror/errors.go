package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Inbound Security (SEC) ----

// ErrInvalidProviderSignature rejects a provider push whose signature does
// not verify. Rejected requests never reach the ingestion gate.
func ErrInvalidProviderSignature() *AppError {
	return New("SEC_001", "Invalid provider signature", http.StatusBadRequest)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_002", "Request timestamp outside accepted window", http.StatusBadRequest)
}

func ErrInvalidToken() *AppError {
	return New("SEC_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrOperatorRequired() *AppError {
	return New("SEC_004", "Operator role required", http.StatusForbidden)
}

// ---- Delivery Pipeline (DLV) ----

func ErrDeliveryNotFound() *AppError {
	return New("DLV_001", "Delivery job not found", http.StatusNotFound)
}

func ErrSubscriptionNotFound() *AppError {
	return New("DLV_002", "Subscription not found", http.StatusNotFound)
}

func ErrUnknownEventType(eventType string) *AppError {
	return New("DLV_003", fmt.Sprintf("Unknown event type %q", eventType), http.StatusBadRequest)
}

// ---- Dead Letters (DLQ) ----

func ErrDeadLetterNotFound() *AppError {
	return New("DLQ_001", "Dead letter entry not found", http.StatusNotFound)
}

// ErrDeadLetterAlreadyHandled signals that another operator resolved the
// entry first.
func ErrDeadLetterAlreadyHandled() *AppError {
	return New("DLQ_002", "Dead letter entry already handled", http.StatusConflict)
}

// ---- Inbound Ingestion (ING) ----

// ErrInboundHandlerFailure means the ledger row committed but the handler
// failed. The event is recorded as seen and requires manual replay.
func ErrInboundHandlerFailure(err error) *AppError {
	return Wrap("ING_001", "Inbound event handler failed", http.StatusInternalServerError, err)
}

func ErrMalformedInboundEvent() *AppError {
	return New("ING_002", "Malformed inbound event payload", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
