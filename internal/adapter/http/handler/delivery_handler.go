package handler

import (
	"strconv"
	"time"

	"event-relay/internal/adapter/http/dto"
	"event-relay/internal/adapter/http/middleware"
	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports"
	"event-relay/pkg/apperror"
	"event-relay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeliveryHandler exposes tenant-visible delivery history.
type DeliveryHandler struct {
	reportingSvc ports.DeliveryReportingService
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(reportingSvc ports.DeliveryReportingService) *DeliveryHandler {
	return &DeliveryHandler{reportingSvc: reportingSvc}
}

// ListDeliveries handles GET /api/v1/deliveries.
func (h *DeliveryHandler) ListDeliveries(c *gin.Context) {
	tenantID, ok := c.Get(middleware.CtxTenantID)
	if !ok {
		response.Error(c, apperror.Validation("missing tenant context"))
		return
	}

	params := ports.DeliveryJobListParams{
		TenantID: tenantID.(uuid.UUID),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 50),
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.DeliveryStatus(raw)
		params.Status = &status
	}

	jobs, err := h.reportingSvc.ListDeliveries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.DeliveryResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, toDeliveryResponse(&jobs[i]))
	}
	response.OK(c, items)
}

// GetDelivery handles GET /api/v1/deliveries/:id.
func (h *DeliveryHandler) GetDelivery(c *gin.Context) {
	tenantID, ok := c.Get(middleware.CtxTenantID)
	if !ok {
		response.Error(c, apperror.Validation("missing tenant context"))
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("malformed delivery id"))
		return
	}

	job, attempts, err := h.reportingSvc.GetDelivery(c.Request.Context(), tenantID.(uuid.UUID), jobID)
	if err != nil {
		response.Error(c, err)
		return
	}

	detail := dto.DeliveryDetailResponse{
		DeliveryResponse: toDeliveryResponse(job),
		AttemptHistory:   make([]dto.AttemptResponse, 0, len(attempts)),
	}
	for i := range attempts {
		detail.AttemptHistory = append(detail.AttemptHistory, toAttemptResponse(&attempts[i]))
	}
	response.OK(c, detail)
}

func toDeliveryResponse(job *domain.DeliveryJob) dto.DeliveryResponse {
	return dto.DeliveryResponse{
		ID:             job.ID.String(),
		SubscriptionID: job.SubscriptionID.String(),
		EventID:        job.EventID.String(),
		EventType:      job.EventType,
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		NextAttemptAt:  job.NextAttemptAt.Format(time.RFC3339),
		LastError:      job.LastError,
		CreatedAt:      job.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      job.UpdatedAt.Format(time.RFC3339),
	}
}

func toAttemptResponse(rec *domain.DeliveryAttemptRecord) dto.AttemptResponse {
	return dto.AttemptResponse{
		Attempt:    rec.Attempt,
		Outcome:    string(rec.Outcome),
		HTTPStatus: rec.HTTPStatus,
		LatencyMS:  rec.LatencyMS,
		Error:      rec.Error,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
}

// queryInt parses an integer query parameter with a fallback.
func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
