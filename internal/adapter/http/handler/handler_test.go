package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"event-relay/internal/adapter/http/dto"
	"event-relay/internal/adapter/http/middleware"
	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports"
	"event-relay/internal/core/ports/mocks"
	"event-relay/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Event Handler Tests ---

func TestEmitEvent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	dispatcher := mocks.NewMockDispatcher(ctrl)
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.Event) (int, error) {
			assert.Equal(t, "user.created", event.Type)
			assert.Equal(t, tenantID, event.TenantID)
			assert.JSONEq(t, `{"user_id": 42}`, string(event.Payload))
			return 3, nil
		})

	router := gin.New()
	router.POST("/api/v1/events", NewEventHandler(dispatcher).EmitEvent)

	w := postJSON(router, "/api/v1/events", dto.EmitEventRequest{
		Type:     "user.created",
		TenantID: tenantID.String(),
		Payload:  json.RawMessage(`{"user_id": 42}`),
	})

	assert.Equal(t, http.StatusAccepted, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["jobs_enqueued"])
	assert.NotEmpty(t, data["event_id"])
}

func TestEmitEvent_InvalidEventType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := gin.New()
	router.POST("/api/v1/events", NewEventHandler(mocks.NewMockDispatcher(ctrl)).EmitEvent)

	// Event types are dot-namespaced lowercase; "UserCreated" is not a
	// recognized event type shape.
	w := postJSON(router, "/api/v1/events", dto.EmitEventRequest{
		Type:     "UserCreated",
		TenantID: uuid.New().String(),
		Payload:  json.RawMessage(`{}`),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := envelope(t, w)
	assert.Equal(t, "DLV_003", body["error_code"])
}

func TestEmitEvent_MissingTypeIsValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := gin.New()
	router.POST("/api/v1/events", NewEventHandler(mocks.NewMockDispatcher(ctrl)).EmitEvent)

	w := postJSON(router, "/api/v1/events", dto.EmitEventRequest{
		TenantID: uuid.New().String(),
		Payload:  json.RawMessage(`{}`),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := envelope(t, w)
	assert.Equal(t, "VAL_001", body["error_code"])
}

func TestEmitEvent_DispatchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mocks.NewMockDispatcher(ctrl)
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(0, errors.New("connection refused"))

	router := gin.New()
	router.POST("/api/v1/events", NewEventHandler(dispatcher).EmitEvent)

	w := postJSON(router, "/api/v1/events", dto.EmitEventRequest{
		Type:     "user.created",
		TenantID: uuid.New().String(),
		Payload:  json.RawMessage(`{}`),
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Inbound Handler Tests ---

func setupInboundRouter(gate ports.IngestionGate) *gin.Engine {
	handlers := map[string]ports.InboundHandler{
		"billing": func(ctx context.Context, event domain.InboundEvent) error { return nil },
	}
	router := gin.New()
	router.POST("/api/v1/inbound/:provider", NewInboundHandler(gate, handlers, zerolog.Nop()).Receive)
	return router
}

func TestReceive_Processed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := mocks.NewMockIngestionGate(ctrl)
	gate.EXPECT().
		Ingest(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event domain.InboundEvent, _ ports.InboundHandler) (domain.IngestResult, error) {
			assert.Equal(t, "evt_001", event.ProviderEventID)
			assert.Equal(t, "invoice.paid", event.Type)
			return domain.IngestProcessed, nil
		})

	router := setupInboundRouter(gate)
	w := postJSON(router, "/api/v1/inbound/billing", dto.InboundEventRequest{
		ID:   "evt_001",
		Type: "invoice.paid",
		Data: json.RawMessage(`{"amount": 100}`),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "processed", data["status"])
}

func TestReceive_DuplicateReturns200(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := mocks.NewMockIngestionGate(ctrl)
	gate.EXPECT().
		Ingest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.IngestDuplicate, nil)

	router := setupInboundRouter(gate)
	w := postJSON(router, "/api/v1/inbound/billing", dto.InboundEventRequest{
		ID:   "evt_001",
		Type: "invoice.paid",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "duplicate", data["status"])
}

func TestReceive_UnknownProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := setupInboundRouter(mocks.NewMockIngestionGate(ctrl))
	w := postJSON(router, "/api/v1/inbound/unknown", dto.InboundEventRequest{
		ID:   "evt_001",
		Type: "invoice.paid",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceive_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := setupInboundRouter(mocks.NewMockIngestionGate(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/inbound/billing", bytes.NewReader([]byte(`{"id": ""}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ING_002", envelope(t, w)["error_code"])
}

func TestReceive_HandlerFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := mocks.NewMockIngestionGate(ctrl)
	gate.EXPECT().
		Ingest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.IngestFailed, apperror.ErrInboundHandlerFailure(errors.New("downstream down")))

	router := setupInboundRouter(gate)
	w := postJSON(router, "/api/v1/inbound/billing", dto.InboundEventRequest{
		ID:   "evt_001",
		Type: "invoice.paid",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "ING_001", envelope(t, w)["error_code"])
}

// --- Delivery Handler Tests ---

func tenantMiddleware(tenantID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxTenantID, tenantID)
		c.Next()
	}
}

func sampleJob(tenantID uuid.UUID) domain.DeliveryJob {
	now := time.Now().UTC()
	return domain.DeliveryJob{
		ID:             uuid.New(),
		SubscriptionID: uuid.New(),
		EventID:        uuid.New(),
		EventType:      "user.created",
		TenantID:       tenantID,
		Payload:        []byte(`{}`),
		Attempts:       2,
		Status:         domain.DeliveryStatusSucceeded,
		NextAttemptAt:  now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestListDeliveries_FiltersByStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	job := sampleJob(tenantID)

	reporting := mocks.NewMockDeliveryReportingService(ctrl)
	reporting.EXPECT().
		ListDeliveries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ports.DeliveryJobListParams) ([]domain.DeliveryJob, error) {
			assert.Equal(t, tenantID, params.TenantID)
			require.NotNil(t, params.Status)
			assert.Equal(t, domain.DeliveryStatusSucceeded, *params.Status)
			assert.Equal(t, 2, params.Page)
			return []domain.DeliveryJob{job}, nil
		})

	router := gin.New()
	router.GET("/api/v1/deliveries", tenantMiddleware(tenantID), NewDeliveryHandler(reporting).ListDeliveries)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/deliveries?status=succeeded&page=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, job.ID.String(), first["id"])
	assert.Equal(t, "succeeded", first["status"])
}

func TestGetDelivery_WithAttemptHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	job := sampleJob(tenantID)
	status := 503
	attempts := []domain.DeliveryAttemptRecord{
		{ID: uuid.New(), JobID: job.ID, Attempt: 1, Outcome: domain.OutcomeServerError, HTTPStatus: &status, LatencyMS: 120, CreatedAt: job.CreatedAt},
		{ID: uuid.New(), JobID: job.ID, Attempt: 2, Outcome: domain.OutcomeSuccess, LatencyMS: 40, CreatedAt: job.CreatedAt},
	}

	reporting := mocks.NewMockDeliveryReportingService(ctrl)
	reporting.EXPECT().
		GetDelivery(gomock.Any(), tenantID, job.ID).
		Return(&job, attempts, nil)

	router := gin.New()
	router.GET("/api/v1/deliveries/:id", tenantMiddleware(tenantID), NewDeliveryHandler(reporting).GetDelivery)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/deliveries/"+job.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	history := data["attempt_history"].([]interface{})
	require.Len(t, history, 2)
	firstAttempt := history[0].(map[string]interface{})
	assert.Equal(t, "server_error", firstAttempt["outcome"])
	assert.Equal(t, float64(503), firstAttempt["http_status"])
}

func TestGetDelivery_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	reporting := mocks.NewMockDeliveryReportingService(ctrl)
	reporting.EXPECT().
		GetDelivery(gomock.Any(), tenantID, gomock.Any()).
		Return(nil, nil, apperror.ErrDeliveryNotFound())

	router := gin.New()
	router.GET("/api/v1/deliveries/:id", tenantMiddleware(tenantID), NewDeliveryHandler(reporting).GetDelivery)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/deliveries/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "DLV_001", envelope(t, w)["error_code"])
}

func TestGetDelivery_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := gin.New()
	router.GET("/api/v1/deliveries/:id", tenantMiddleware(uuid.New()), NewDeliveryHandler(mocks.NewMockDeliveryReportingService(ctrl)).GetDelivery)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/deliveries/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Dead Letter Handler Tests ---

func operatorMiddleware(actor string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxOperatorActor, actor)
		c.Next()
	}
}

func setupDeadLetterRouter(dlqSvc ports.DeadLetterService) *gin.Engine {
	h := NewDeadLetterHandler(dlqSvc)
	router := gin.New()
	admin := router.Group("/api/v1/admin/dead-letters", operatorMiddleware("alice"))
	admin.GET("", h.List)
	admin.GET("/:id", h.Get)
	admin.POST("/:id/resolve", h.Resolve)
	admin.POST("/:id/ignore", h.Ignore)
	admin.POST("/:id/retry", h.Retry)
	return router
}

func TestDeadLetterResolve_RecordsActorAndReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryID := uuid.New()
	dlqSvc := mocks.NewMockDeadLetterService(ctrl)
	dlqSvc.EXPECT().
		Resolve(gomock.Any(), entryID, "alice", "fixed endpoint config").
		Return(nil)

	router := setupDeadLetterRouter(dlqSvc)
	w := postJSON(router, "/api/v1/admin/dead-letters/"+entryID.String()+"/resolve", dto.ResolutionRequest{
		Reason: "fixed endpoint config",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeadLetterIgnore_NoBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryID := uuid.New()
	dlqSvc := mocks.NewMockDeadLetterService(ctrl)
	dlqSvc.EXPECT().
		Ignore(gomock.Any(), entryID, "alice", "").
		Return(nil)

	router := setupDeadLetterRouter(dlqSvc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/dead-letters/"+entryID.String()+"/ignore", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeadLetterResolve_AlreadyHandled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryID := uuid.New()
	dlqSvc := mocks.NewMockDeadLetterService(ctrl)
	dlqSvc.EXPECT().
		Resolve(gomock.Any(), entryID, "alice", gomock.Any()).
		Return(apperror.ErrDeadLetterAlreadyHandled())

	router := setupDeadLetterRouter(dlqSvc)
	w := postJSON(router, "/api/v1/admin/dead-letters/"+entryID.String()+"/resolve", dto.ResolutionRequest{
		Reason: "cleanup",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DLQ_002", envelope(t, w)["error_code"])
}

func TestDeadLetterRetry_MintsFreshJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryID := uuid.New()
	newJob := sampleJob(uuid.New())
	dlqSvc := mocks.NewMockDeadLetterService(ctrl)
	dlqSvc.EXPECT().
		Retry(gomock.Any(), entryID, "alice").
		Return(&newJob, nil)

	router := setupDeadLetterRouter(dlqSvc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/dead-letters/"+entryID.String()+"/retry", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, entryID.String(), data["dead_letter_id"])
	assert.Equal(t, newJob.ID.String(), data["new_job_id"])
}

func TestDeadLetterGet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dlqSvc := mocks.NewMockDeadLetterService(ctrl)
	dlqSvc.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrDeadLetterNotFound())

	router := setupDeadLetterRouter(dlqSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dead-letters/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "DLQ_001", envelope(t, w)["error_code"])
}

func TestDeadLetterList_FiltersByResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entry := domain.DeadLetterEntry{
		ID:             uuid.New(),
		JobID:          uuid.New(),
		SubscriptionID: uuid.New(),
		EventID:        uuid.New(),
		EventType:      "user.created",
		TenantID:       uuid.New(),
		Payload:        []byte(`{}`),
		Attempts:       8,
		Resolution:     domain.DeadLetterOpen,
		CreatedAt:      time.Now().UTC(),
	}

	dlqSvc := mocks.NewMockDeadLetterService(ctrl)
	dlqSvc.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ports.DeadLetterListParams) ([]domain.DeadLetterEntry, error) {
			require.NotNil(t, params.Resolution)
			assert.Equal(t, domain.DeadLetterOpen, *params.Resolution)
			return []domain.DeadLetterEntry{entry}, nil
		})

	router := setupDeadLetterRouter(dlqSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dead-letters?resolution=open", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, entry.ID.String(), first["id"])
	assert.Equal(t, "open", first["resolution"])
}

// --- Health Handler Tests ---

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Ping(ctx context.Context) error { return f.err }
func (f fakeChecker) Name() string                   { return f.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck(fakeChecker{name: "postgresql"}, fakeChecker{name: "redis"}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := envelope(t, w)
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_DegradedOnFailure(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck(
		fakeChecker{name: "postgresql"},
		fakeChecker{name: "redis", err: errors.New("connection refused")},
	))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := envelope(t, w)
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	redisDep := deps["redis"].(map[string]interface{})
	assert.Equal(t, "unhealthy", redisDep["status"])
}
