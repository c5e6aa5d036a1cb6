package dto

import "encoding/json"

// EmitEventRequest is the request body for internal event emission.
type EmitEventRequest struct {
	Type     string          `json:"type" binding:"required,max=100,event_type"`
	TenantID string          `json:"tenant_id" binding:"required,uuid"`
	Payload  json.RawMessage `json:"payload" binding:"required"`
}

// EmitEventResponse reports the fan-out result of one emitted event.
type EmitEventResponse struct {
	EventID      string `json:"event_id"`
	JobsEnqueued int    `json:"jobs_enqueued"`
}

// InboundEventRequest is the body a provider pushes to the inbound
// endpoint. The provider event id is the dedup key.
type InboundEventRequest struct {
	ID   string          `json:"id" binding:"required,max=255,safe_id"`
	Type string          `json:"type" binding:"required,max=100"`
	Data json.RawMessage `json:"data"`
}

// IngestResponse reports the dedup outcome of one inbound event.
type IngestResponse struct {
	Status string `json:"status"` // processed | duplicate
}

// DeliveryResponse is one delivery job in tenant-visible history.
type DeliveryResponse struct {
	ID             string  `json:"id"`
	SubscriptionID string  `json:"subscription_id"`
	EventID        string  `json:"event_id"`
	EventType      string  `json:"event_type"`
	Status         string  `json:"status"`
	Attempts       int     `json:"attempts"`
	NextAttemptAt  string  `json:"next_attempt_at"`
	LastError      *string `json:"last_error,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// AttemptResponse is one entry of a job's attempt history.
type AttemptResponse struct {
	Attempt    int     `json:"attempt"`
	Outcome    string  `json:"outcome"`
	HTTPStatus *int    `json:"http_status,omitempty"`
	LatencyMS  int64   `json:"latency_ms"`
	Error      *string `json:"error,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// DeliveryDetailResponse is one job with its full attempt history.
type DeliveryDetailResponse struct {
	DeliveryResponse
	AttemptHistory []AttemptResponse `json:"attempt_history"`
}

// DeadLetterResponse is one dead letter entry in the operator view.
type DeadLetterResponse struct {
	ID             string  `json:"id"`
	JobID          string  `json:"job_id"`
	SubscriptionID string  `json:"subscription_id"`
	EventID        string  `json:"event_id"`
	EventType      string  `json:"event_type"`
	TenantID       string  `json:"tenant_id"`
	Attempts       int     `json:"attempts"`
	LastError      *string `json:"last_error,omitempty"`
	Resolution     string  `json:"resolution"`
	ResolvedBy     *string `json:"resolved_by,omitempty"`
	ResolvedAt     *string `json:"resolved_at,omitempty"`
	Reason         *string `json:"reason,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// ResolutionRequest is the body for resolve/ignore actions.
type ResolutionRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// RetryResponse reports the fresh job minted by a dead letter retry.
type RetryResponse struct {
	DeadLetterID string `json:"dead_letter_id"`
	NewJobID     string `json:"new_job_id"`
}
