package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is an immutable fact emitted by business logic. It is never
// mutated after creation; delivery jobs snapshot its payload.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"` // e.g. "user.created", "file.uploaded"
	TenantID  uuid.UUID       `json:"tenant_id"`
	Payload   json.RawMessage `json:"payload"`
	EmittedAt time.Time       `json:"emitted_at"`
}

// NewEvent creates an event stamped with the current time.
func NewEvent(eventType string, tenantID uuid.UUID, payload json.RawMessage) *Event {
	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		TenantID:  tenantID,
		Payload:   payload,
		EmittedAt: time.Now().UTC(),
	}
}

// InboundEvent is a provider-pushed event as received on the inbound
// endpoint, after signature verification.
type InboundEvent struct {
	ProviderEventID string          `json:"id"`
	Type            string          `json:"type"`
	Data            json.RawMessage `json:"data"`
}
