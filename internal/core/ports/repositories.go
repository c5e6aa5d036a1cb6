package ports

import (
	"context"
	"time"

	"event-relay/internal/core/domain"

	"github.com/google/uuid"
)

// SubscriptionRepository is the read-only view of the subscription CRUD
// layer consumed by the delivery pipeline.
type SubscriptionRepository interface {
	// GetActiveForEvent returns the active subscriptions of a tenant whose
	// event-type set contains eventType.
	GetActiveForEvent(ctx context.Context, eventType string, tenantID uuid.UUID) ([]domain.Subscription, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error)
	// GetSecretEnc returns the encrypted signing secret for a subscription.
	// Plaintext only ever exists transiently at the point of signing.
	GetSecretEnc(ctx context.Context, id uuid.UUID) (string, error)
}

// DeliveryJobListParams holds filter + pagination for tenant-visible
// delivery history.
type DeliveryJobListParams struct {
	TenantID uuid.UUID
	Status   *domain.DeliveryStatus
	Page     int
	PageSize int
}

// DeliveryJobRepository is the durable delivery queue.
type DeliveryJobRepository interface {
	// Enqueue inserts a pending job. Returns false without error when a
	// live job for the same (subscription, event) pair already exists, so
	// a retried dispatch never duplicates work.
	Enqueue(ctx context.Context, job *domain.DeliveryJob) (bool, error)

	// LeaseDue atomically claims up to limit jobs whose next attempt is
	// due, marking them in_flight. Jobs stuck in_flight longer than
	// leaseTimeout are considered orphaned and become claimable again.
	// Two concurrent callers never receive the same job.
	LeaseDue(ctx context.Context, limit int, leaseTimeout time.Duration) ([]domain.DeliveryJob, error)

	// Complete marks a leased job succeeded.
	Complete(ctx context.Context, jobID uuid.UUID) error

	// Reschedule returns a leased job to the queue with an updated attempt
	// count, due time and error summary.
	Reschedule(ctx context.Context, jobID uuid.UUID, attempts int, nextAttemptAt time.Time, lastError string) error

	// Exhaust marks a leased job terminally failed.
	Exhaust(ctx context.Context, jobID uuid.UUID, attempts int, lastError string) error

	// Cancel marks a leased job cancelled. Used when the subscription
	// disappeared or was deactivated before delivery; the tenant-visible
	// history must not report such a job as succeeded.
	Cancel(ctx context.Context, jobID uuid.UUID, reason string) error

	// RecordAttempt appends one attempt record. Records are write-once.
	RecordAttempt(ctx context.Context, rec *domain.DeliveryAttemptRecord) error

	GetByID(ctx context.Context, id uuid.UUID) (*domain.DeliveryJob, error)
	List(ctx context.Context, params DeliveryJobListParams) ([]domain.DeliveryJob, error)
	ListAttempts(ctx context.Context, jobID uuid.UUID) ([]domain.DeliveryAttemptRecord, error)
}

// DeadLetterListParams holds filter + pagination for the operator view.
type DeadLetterListParams struct {
	TenantID   *uuid.UUID
	Resolution *domain.DeadLetterResolution
	Page       int
	PageSize   int
}

// DeadLetterRepository stores terminal delivery failures awaiting
// operator action.
type DeadLetterRepository interface {
	Create(ctx context.Context, entry *domain.DeadLetterEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DeadLetterEntry, error)
	List(ctx context.Context, params DeadLetterListParams) ([]domain.DeadLetterEntry, error)

	// MarkResolution transitions an open entry to resolved/ignored/retried,
	// recording who acted and why. Returns false without error when the
	// entry was not open (already handled by another operator).
	MarkResolution(ctx context.Context, id uuid.UUID, resolution domain.DeadLetterResolution, actor, reason string, at time.Time) (bool, error)
}

// InboundLedgerRepository is the authoritative dedup ledger for
// provider-pushed events.
type InboundLedgerRepository interface {
	// Insert records a provider event id. Returns false without error when
	// the id was already recorded (uniqueness conflict).
	Insert(ctx context.Context, providerEventID string, processedAt time.Time) (bool, error)
}
