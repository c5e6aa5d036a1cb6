package ports

import (
	"context"
	"time"

	"event-relay/internal/core/domain"

	"github.com/google/uuid"
)

// EncryptionService handles AES-256-GCM encryption of secrets at rest.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing of webhook payloads and
// verification of inbound provider signatures. The signature binds both
// content and time: it is computed over "<timestamp>.<payload>".
type SignatureService interface {
	Sign(secret string, timestamp int64, payload []byte) string
	Verify(secret string, timestamp int64, payload []byte, signature string) bool
}

// Dispatcher fans an event out into delivery jobs.
type Dispatcher interface {
	// Dispatch enqueues one job per active matching subscription and
	// returns the number of jobs enqueued. Zero matches is not an error.
	Dispatch(ctx context.Context, event *domain.Event) (int, error)
}

// DeliveryExecutor performs exactly one delivery attempt and classifies
// the outcome. It never retries internally.
type DeliveryExecutor interface {
	Execute(ctx context.Context, job *domain.DeliveryJob, sub *domain.Subscription) domain.AttemptOutcome
}

// InboundHandler applies the business side effect of one provider event.
// The ingestion gate guarantees it runs at most once per provider event id.
type InboundHandler func(ctx context.Context, event domain.InboundEvent) error

// IngestionGate deduplicates provider-pushed events before their handlers
// run.
type IngestionGate interface {
	Ingest(ctx context.Context, event domain.InboundEvent, handler InboundHandler) (domain.IngestResult, error)
}

// DeadLetterService is the operator recovery surface. Authorization is
// enforced by the caller; the service records the acting operator on
// every resolution.
type DeadLetterService interface {
	List(ctx context.Context, params DeadLetterListParams) ([]domain.DeadLetterEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.DeadLetterEntry, error)
	Resolve(ctx context.Context, id uuid.UUID, actor, reason string) error
	Ignore(ctx context.Context, id uuid.UUID, actor, reason string) error
	// Retry re-enters the live pipeline with a fresh job (attempt count
	// zero). The entry's attempt history is never mutated.
	Retry(ctx context.Context, id uuid.UUID, actor string) (*domain.DeliveryJob, error)
}

// DeliveryReportingService exposes tenant-visible delivery history.
type DeliveryReportingService interface {
	ListDeliveries(ctx context.Context, params DeliveryJobListParams) ([]domain.DeliveryJob, error)
	GetDelivery(ctx context.Context, tenantID, jobID uuid.UUID) (*domain.DeliveryJob, []domain.DeliveryAttemptRecord, error)
}

// TokenService validates operator bearer tokens for the dead-letter
// admin API. It implements the require_operator collaborator.
type TokenService interface {
	Generate(actor string, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed operator token claims.
type TokenClaims struct {
	Actor string
	Role  string
}

// DedupCache is the fast-path inbound dedup check in front of the
// authoritative ledger. A cache miss or error always falls through to
// the ledger; the cache can only short-circuit known duplicates.
// Ids are marked only after the ledger holds them, so a cache hit is
// always backed by a committed ledger row.
type DedupCache interface {
	// Seen reports whether the id is a known ledger-committed duplicate.
	Seen(ctx context.Context, providerEventID string) (bool, error)

	// MarkSeen records a ledger-committed id for the dedup window.
	MarkSeen(ctx context.Context, providerEventID string, ttl time.Duration) error
}
