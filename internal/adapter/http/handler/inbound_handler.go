package handler

import (
	"event-relay/internal/adapter/http/dto"
	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports"
	"event-relay/pkg/apperror"
	"event-relay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// InboundHandler is the provider-facing webhook receiver. Signature
// verification already happened in middleware; this handler's job is to
// run the ingestion gate and map its result onto HTTP.
type InboundHandler struct {
	gate     ports.IngestionGate
	handlers map[string]ports.InboundHandler // provider name -> business handler
	log      zerolog.Logger
}

// NewInboundHandler creates a new InboundHandler. handlers maps a provider
// path segment to the business handler the gate protects.
func NewInboundHandler(gate ports.IngestionGate, handlers map[string]ports.InboundHandler, log zerolog.Logger) *InboundHandler {
	return &InboundHandler{gate: gate, handlers: handlers, log: log}
}

// Receive handles POST /api/v1/inbound/:provider.
//
// Duplicates return 200 with status "duplicate": the provider achieved its
// goal (the event is processed), so there is nothing for it to retry.
func (h *InboundHandler) Receive(c *gin.Context) {
	provider := c.Param("provider")
	business, ok := h.handlers[provider]
	if !ok {
		response.Error(c, apperror.Validation("unknown provider: "+provider))
		return
	}

	var req dto.InboundEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMalformedInboundEvent())
		return
	}

	event := domain.InboundEvent{
		ProviderEventID: req.ID,
		Type:            req.Type,
		Data:            req.Data,
	}

	result, err := h.gate.Ingest(c.Request.Context(), event, business)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.IngestResponse{Status: string(result)})
}
