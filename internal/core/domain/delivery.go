package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the lifecycle state of a DeliveryJob.
// pending -> in_flight -> {retrying -> pending} | succeeded | exhausted |
// cancelled. A job is cancelled when its subscription was removed or
// deactivated before delivery; no attempt was made.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusInFlight  DeliveryStatus = "in_flight"
	DeliveryStatusRetrying  DeliveryStatus = "retrying"
	DeliveryStatusSucceeded DeliveryStatus = "succeeded"
	DeliveryStatusExhausted DeliveryStatus = "exhausted"
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
)

// OutcomeClass classifies the result of one delivery attempt.
type OutcomeClass string

const (
	OutcomeSuccess      OutcomeClass = "success"       // 2xx
	OutcomeClientError  OutcomeClass = "client_error"  // 4xx
	OutcomeServerError  OutcomeClass = "server_error"  // 5xx
	OutcomeTimeout      OutcomeClass = "timeout"       // attempt deadline exceeded
	OutcomeNetworkError OutcomeClass = "network_error" // DNS / connection failure
)

// ClassifyStatus maps an HTTP status code to an OutcomeClass.
func ClassifyStatus(code int) OutcomeClass {
	switch {
	case code >= 200 && code < 300:
		return OutcomeSuccess
	case code >= 400 && code < 500:
		return OutcomeClientError
	default:
		return OutcomeServerError
	}
}

// AttemptOutcome is the classified result of exactly one HTTP delivery
// attempt. HTTPStatus is zero when no response was received.
type AttemptOutcome struct {
	Class      OutcomeClass
	HTTPStatus int
	Latency    time.Duration
	Err        string
}

// Retryable reports whether the outcome class permits another attempt.
// 4xx is permanent except 429, which callers may retry up to the cap.
func (o AttemptOutcome) Retryable() bool {
	switch o.Class {
	case OutcomeServerError, OutcomeTimeout, OutcomeNetworkError:
		return true
	case OutcomeClientError:
		return o.HTTPStatus == 429
	default:
		return false
	}
}

// DeliveryJob is one obligation to deliver one Event to one Subscription.
// The payload is a snapshot taken at dispatch time; it never changes even
// if the source event record does.
type DeliveryJob struct {
	ID             uuid.UUID      `json:"id"`
	SubscriptionID uuid.UUID      `json:"subscription_id"`
	EventID        uuid.UUID      `json:"event_id"`
	EventType      string         `json:"event_type"`
	TenantID       uuid.UUID      `json:"tenant_id"`
	Payload        []byte         `json:"payload"`
	Attempts       int            `json:"attempts"`
	Status         DeliveryStatus `json:"status"`
	NextAttemptAt  time.Time      `json:"next_attempt_at"`
	LeasedAt       *time.Time     `json:"leased_at,omitempty"`
	LastError      *string        `json:"last_error,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewDeliveryJob creates a pending job due immediately.
func NewDeliveryJob(sub *Subscription, event *Event) *DeliveryJob {
	now := time.Now().UTC()
	return &DeliveryJob{
		ID:             uuid.New(),
		SubscriptionID: sub.ID,
		EventID:        event.ID,
		EventType:      event.Type,
		TenantID:       sub.TenantID,
		Payload:        []byte(event.Payload),
		Attempts:       0,
		Status:         DeliveryStatusPending,
		NextAttemptAt:  now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Terminal reports whether the job can no longer change state.
func (j *DeliveryJob) Terminal() bool {
	switch j.Status {
	case DeliveryStatusSucceeded, DeliveryStatusExhausted, DeliveryStatusCancelled:
		return true
	}
	return false
}

// DeliveryAttemptRecord is the append-only audit log of one execution of
// a DeliveryJob. Records are never mutated or deleted.
type DeliveryAttemptRecord struct {
	ID         uuid.UUID    `json:"id"`
	JobID      uuid.UUID    `json:"job_id"`
	Attempt    int          `json:"attempt"`
	Outcome    OutcomeClass `json:"outcome"`
	HTTPStatus *int         `json:"http_status,omitempty"`
	LatencyMS  int64        `json:"latency_ms"`
	Error      *string      `json:"error,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
