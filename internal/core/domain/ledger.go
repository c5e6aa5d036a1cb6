package domain

import "time"

// InboundEventLedgerEntry is the dedup record for provider-pushed events.
// Exactly one row exists per distinct provider event id; the unique
// constraint enforces this under concurrent redelivery. Rows are never
// updated.
type InboundEventLedgerEntry struct {
	ProviderEventID string    `json:"provider_event_id"`
	ProcessedAt     time.Time `json:"processed_at"`
}

// IngestResult is the outcome of passing a provider event through the
// ingestion gate.
type IngestResult string

const (
	// IngestProcessed means the ledger row was inserted and the handler ran.
	IngestProcessed IngestResult = "processed"
	// IngestDuplicate means the event id was already in the ledger; the
	// handler was not invoked. This is a normal short-circuit, not an error.
	IngestDuplicate IngestResult = "duplicate"
	// IngestFailed means the ledger row committed but the handler failed.
	// The event stays seen and requires manual replay, never automatic
	// re-ingestion.
	IngestFailed IngestResult = "failed"
)
