package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeadLetterResolution is the operator-facing state of a dead letter.
type DeadLetterResolution string

const (
	DeadLetterOpen     DeadLetterResolution = "open"
	DeadLetterRetried  DeadLetterResolution = "retried"
	DeadLetterResolved DeadLetterResolution = "resolved"
	DeadLetterIgnored  DeadLetterResolution = "ignored"
)

// DeadLetterEntry is the terminal record of a DeliveryJob that exhausted
// its retry budget. It snapshots the job so the attempt history stays
// intact even after an operator retries the delivery. Only an explicit
// operator action mutates the resolution fields.
type DeadLetterEntry struct {
	ID             uuid.UUID            `json:"id"`
	JobID          uuid.UUID            `json:"job_id"`
	SubscriptionID uuid.UUID            `json:"subscription_id"`
	EventID        uuid.UUID            `json:"event_id"`
	EventType      string               `json:"event_type"`
	TenantID       uuid.UUID            `json:"tenant_id"`
	Payload        []byte               `json:"payload"`
	Attempts       int                  `json:"attempts"`
	LastError      *string              `json:"last_error,omitempty"`
	Resolution     DeadLetterResolution `json:"resolution"`
	ResolvedBy     *string              `json:"resolved_by,omitempty"`
	ResolvedAt     *time.Time           `json:"resolved_at,omitempty"`
	Reason         *string              `json:"reason,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

// NewDeadLetterEntry snapshots an exhausted job into an open entry.
func NewDeadLetterEntry(job *DeliveryJob) *DeadLetterEntry {
	return &DeadLetterEntry{
		ID:             uuid.New(),
		JobID:          job.ID,
		SubscriptionID: job.SubscriptionID,
		EventID:        job.EventID,
		EventType:      job.EventType,
		TenantID:       job.TenantID,
		Payload:        job.Payload,
		Attempts:       job.Attempts,
		LastError:      job.LastError,
		Resolution:     DeadLetterOpen,
		CreatedAt:      time.Now().UTC(),
	}
}
