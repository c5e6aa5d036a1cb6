package handler

import (
	"context"
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

// DeadLetterHandler is the operator recovery surface over dead-lettered
// deliveries. OperatorAuth middleware guards every route and supplies the
// acting operator.
type DeadLetterHandler struct {
	dlqSvc ports.DeadLetterService
}

// NewDeadLetterHandler creates a new DeadLetterHandler.
func NewDeadLetterHandler(dlqSvc ports.DeadLetterService) *DeadLetterHandler {
	return &DeadLetterHandler{dlqSvc: dlqSvc}
}

// List handles GET /api/v1/admin/dead-letters.
func (h *DeadLetterHandler) List(c *gin.Context) {
	params := ports.DeadLetterListParams{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 50),
	}
	if raw := c.Query("tenant_id"); raw != "" {
		tenantID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("malformed tenant_id"))
			return
		}
		params.TenantID = &tenantID
	}
	if raw := c.Query("resolution"); raw != "" {
		resolution := domain.DeadLetterResolution(raw)
		params.Resolution = &resolution
	}

	entries, err := h.dlqSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.DeadLetterResponse, 0, len(entries))
	for i := range entries {
		items = append(items, toDeadLetterResponse(&entries[i]))
	}
	response.OK(c, items)
}

// Get handles GET /api/v1/admin/dead-letters/:id.
func (h *DeadLetterHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("malformed dead letter id"))
		return
	}

	entry, err := h.dlqSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toDeadLetterResponse(entry))
}

// Resolve handles POST /api/v1/admin/dead-letters/:id/resolve.
func (h *DeadLetterHandler) Resolve(c *gin.Context) {
	h.mark(c, h.dlqSvc.Resolve)
}

// Ignore handles POST /api/v1/admin/dead-letters/:id/ignore.
func (h *DeadLetterHandler) Ignore(c *gin.Context) {
	h.mark(c, h.dlqSvc.Ignore)
}

// Retry handles POST /api/v1/admin/dead-letters/:id/retry.
func (h *DeadLetterHandler) Retry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("malformed dead letter id"))
		return
	}

	job, err := h.dlqSvc.Retry(c.Request.Context(), id, operatorActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.RetryResponse{
		DeadLetterID: id.String(),
		NewJobID:     job.ID.String(),
	})
}

// mark factors the shared resolve/ignore flow: parse id, bind the
// optional reason, apply the action as the authenticated operator.
func (h *DeadLetterHandler) mark(c *gin.Context, action func(ctx context.Context, id uuid.UUID, actor, reason string) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("malformed dead letter id"))
		return
	}

	var req dto.ResolutionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		dto.SanitizeStruct(&req)
	}

	if err := action(c.Request.Context(), id, operatorActor(c), req.Reason); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": id.String()})
}

func toDeadLetterResponse(entry *domain.DeadLetterEntry) dto.DeadLetterResponse {
	resp := dto.DeadLetterResponse{
		ID:             entry.ID.String(),
		JobID:          entry.JobID.String(),
		SubscriptionID: entry.SubscriptionID.String(),
		EventID:        entry.EventID.String(),
		EventType:      entry.EventType,
		TenantID:       entry.TenantID.String(),
		Attempts:       entry.Attempts,
		LastError:      entry.LastError,
		Resolution:     string(entry.Resolution),
		ResolvedBy:     entry.ResolvedBy,
		Reason:         entry.Reason,
		CreatedAt:      entry.CreatedAt.Format(time.RFC3339),
	}
	if entry.ResolvedAt != nil {
		s := entry.ResolvedAt.Format(time.RFC3339)
		resp.ResolvedAt = &s
	}
	return resp
}

// operatorActor fetches the acting operator set by OperatorAuth.
func operatorActor(c *gin.Context) string {
	if actor, ok := c.Get(middleware.CtxOperatorActor); ok {
		if s, ok := actor.(string); ok {
			return s
		}
	}
	return "unknown"
}
