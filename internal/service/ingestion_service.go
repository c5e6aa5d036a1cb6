package service

import (
	"context"
	"time"

	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports"
	"event-relay/pkg/apperror"

	"github.com/rs/zerolog"
)

// IngestionService implements ports.IngestionGate. It makes inbound
// handler invocation idempotent under provider-side at-least-once
// redelivery: the ledger insert (unique on provider event id) commits in
// its own transaction boundary before the handler runs, so a handler
// failure never re-opens the door to reprocessing.
//
// An optional redis cache short-circuits known duplicates without a
// ledger round trip. The cache is a hint only; the ledger's unique
// constraint is the authority.
type IngestionService struct {
	ledger   ports.InboundLedgerRepository
	dedup    ports.DedupCache // nil disables the fast path
	dedupTTL time.Duration
	log      zerolog.Logger
}

// NewIngestionService creates a new IngestionService.
func NewIngestionService(
	ledger ports.InboundLedgerRepository,
	dedup ports.DedupCache,
	dedupTTL time.Duration,
	log zerolog.Logger,
) *IngestionService {
	return &IngestionService{
		ledger:   ledger,
		dedup:    dedup,
		dedupTTL: dedupTTL,
		log:      log,
	}
}

// Ingest records the provider event id and, if it is new, invokes handler.
// A duplicate id short-circuits with IngestDuplicate and never invokes the
// handler. If the handler fails after the ledger committed, the result is
// IngestFailed: the event stays seen and requires manual replay, never
// automatic re-ingestion, which could double partially-applied side
// effects.
func (s *IngestionService) Ingest(ctx context.Context, event domain.InboundEvent, handler ports.InboundHandler) (domain.IngestResult, error) {
	if s.dedup != nil {
		seen, err := s.dedup.Seen(ctx, event.ProviderEventID)
		if err != nil {
			// Degraded cache never blocks ingestion; the ledger decides.
			s.log.Warn().Err(err).
				Str("provider_event_id", event.ProviderEventID).
				Msg("ingest: dedup cache unavailable, falling through to ledger")
		} else if seen {
			s.log.Debug().
				Str("provider_event_id", event.ProviderEventID).
				Msg("ingest: duplicate short-circuited by cache")
			return domain.IngestDuplicate, nil
		}
	}

	inserted, err := s.ledger.Insert(ctx, event.ProviderEventID, time.Now().UTC())
	if err != nil {
		// The cache was not written, so a redelivery retries the insert.
		return "", apperror.ErrDatabaseError(err)
	}
	// The ledger holds the id either way; only now is the cache allowed
	// to answer for it.
	s.markSeen(ctx, event.ProviderEventID)
	if !inserted {
		s.log.Info().
			Str("provider_event_id", event.ProviderEventID).
			Msg("ingest: duplicate provider event, handler skipped")
		return domain.IngestDuplicate, nil
	}

	// Ledger write is committed; from here the event is seen forever.
	if err := handler(ctx, event); err != nil {
		s.log.Error().Err(err).
			Str("provider_event_id", event.ProviderEventID).
			Str("type", event.Type).
			Msg("ingest: handler failed after ledger commit, manual replay required")
		return domain.IngestFailed, apperror.ErrInboundHandlerFailure(err)
	}

	s.log.Info().
		Str("provider_event_id", event.ProviderEventID).
		Str("type", event.Type).
		Msg("ingest: provider event processed")

	return domain.IngestProcessed, nil
}

// markSeen populates the fast-path cache for an id the ledger holds.
// Failures are logged and swallowed; the next redelivery just pays the
// ledger round trip.
func (s *IngestionService) markSeen(ctx context.Context, providerEventID string) {
	if s.dedup == nil {
		return
	}
	if err := s.dedup.MarkSeen(ctx, providerEventID, s.dedupTTL); err != nil {
		s.log.Warn().Err(err).
			Str("provider_event_id", providerEventID).
			Msg("ingest: failed to mark dedup cache")
	}
}
