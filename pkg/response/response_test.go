package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-relay/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func TestOK(t *testing.T) {
	c, rec := setupContext()
	OK(c, gin.H{"status": "duplicate"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.RequestID)
	assert.NotEmpty(t, body.Timestamp)
}

func TestAccepted(t *testing.T) {
	c, rec := setupContext()
	Accepted(c, gin.H{"jobs_enqueued": 3})

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestError_AppError(t *testing.T) {
	c, rec := setupContext()
	Error(c, apperror.ErrDeadLetterNotFound())

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DLQ_001", body.ErrorCode)
}

func TestError_WrappedAppError(t *testing.T) {
	c, rec := setupContext()
	Error(c, fmt.Errorf("outer: %w", apperror.ErrRateLimitExceeded()))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestError_UnknownError(t *testing.T) {
	c, rec := setupContext()
	Error(c, fmt.Errorf("something broke"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SYS_000", body.ErrorCode)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestRequestID_FromContext(t *testing.T) {
	c, rec := setupContext()
	c.Set("request_id", "req-123")
	OK(c, nil)

	var body SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "req-123", body.RequestID)
}
