package handler

import (
	"errors"

	"event-relay/internal/adapter/http/dto"
	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports"
	"event-relay/pkg/apperror"
	"event-relay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EventHandler accepts internal event emissions and hands them to the
// dispatcher. It stands in for the business-logic collaborator that
// would normally emit events in-process.
type EventHandler struct {
	dispatcher ports.Dispatcher
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(dispatcher ports.Dispatcher) *EventHandler {
	return &EventHandler{dispatcher: dispatcher}
}

// EmitEvent handles POST /api/v1/events. Fan-out is synchronous (jobs are
// durably enqueued before the response), delivery is not.
func (h *EventHandler) EmitEvent(c *gin.Context) {
	var req dto.EmitEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, emitBindError(err, &req))
		return
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		response.Error(c, apperror.Validation("malformed tenant_id"))
		return
	}

	event := domain.NewEvent(req.Type, tenantID, req.Payload)
	enqueued, err := h.dispatcher.Dispatch(c.Request.Context(), event)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.Accepted(c, dto.EmitEventResponse{
		EventID:      event.ID.String(),
		JobsEnqueued: enqueued,
	})
}

// emitBindError distinguishes an unrecognized event type from other
// binding failures so callers get a code they can branch on.
func emitBindError(err error, req *dto.EmitEventRequest) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "event_type" {
				return apperror.ErrUnknownEventType(req.Type)
			}
		}
	}
	return apperror.Validation(err.Error())
}
