package postgres

import (
	"context"
	"fmt"
	"time"
)

// InboundLedgerRepo implements ports.InboundLedgerRepository. The primary
// key on provider_event_id is the authoritative dedup decision for
// inbound events; the redis cache in front of it is only a hint.
type InboundLedgerRepo struct {
	pool Pool
}

// NewInboundLedgerRepo creates a new InboundLedgerRepo.
func NewInboundLedgerRepo(pool Pool) *InboundLedgerRepo {
	return &InboundLedgerRepo{pool: pool}
}

// Insert records a provider event id. Returns false without error when
// the id was already recorded.
func (r *InboundLedgerRepo) Insert(ctx context.Context, providerEventID string, processedAt time.Time) (bool, error) {
	query := `INSERT INTO inbound_event_ledger (provider_event_id, processed_at)
		VALUES ($1, $2)
		ON CONFLICT (provider_event_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, providerEventID, processedAt)
	if err != nil {
		return false, fmt.Errorf("insert inbound ledger entry: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
