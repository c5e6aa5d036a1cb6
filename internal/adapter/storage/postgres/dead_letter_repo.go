package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DeadLetterRepo implements ports.DeadLetterRepository on PostgreSQL.
type DeadLetterRepo struct {
	pool Pool
}

// NewDeadLetterRepo creates a new DeadLetterRepo.
func NewDeadLetterRepo(pool Pool) *DeadLetterRepo {
	return &DeadLetterRepo{pool: pool}
}

const deadLetterColumns = `id, job_id, subscription_id, event_id, event_type, tenant_id, payload,
		attempts, last_error, resolution, resolved_by, resolved_at, reason, created_at`

// Create inserts an open dead letter entry.
func (r *DeadLetterRepo) Create(ctx context.Context, entry *domain.DeadLetterEntry) error {
	query := `INSERT INTO dead_letters (` + deadLetterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.JobID, entry.SubscriptionID, entry.EventID, entry.EventType,
		entry.TenantID, entry.Payload, entry.Attempts, entry.LastError,
		string(entry.Resolution), entry.ResolvedBy, entry.ResolvedAt, entry.Reason, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dead letter: %w", err)
	}
	return nil
}

// GetByID fetches one entry. Returns nil without error when absent.
func (r *DeadLetterRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DeadLetterEntry, error) {
	query := `SELECT ` + deadLetterColumns + ` FROM dead_letters WHERE id = $1`

	entry, err := scanDeadLetter(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dead letter: %w", err)
	}
	return entry, nil
}

// List fetches entries for the operator view, newest first.
func (r *DeadLetterRepo) List(ctx context.Context, params ports.DeadLetterListParams) ([]domain.DeadLetterEntry, error) {
	query := `SELECT ` + deadLetterColumns + ` FROM dead_letters WHERE 1=1`
	var args []any
	argIdx := 1

	if params.TenantID != nil {
		query += fmt.Sprintf(" AND tenant_id = $%d", argIdx)
		args = append(args, *params.TenantID)
		argIdx++
	}
	if params.Resolution != nil {
		query += fmt.Sprintf(" AND resolution = $%d", argIdx)
		args = append(args, string(*params.Resolution))
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, params.PageSize, (params.Page-1)*params.PageSize)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dead letters: %w", err)
	}
	defer rows.Close()

	var entries []domain.DeadLetterEntry
	for rows.Next() {
		entry, err := scanDeadLetter(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// MarkResolution transitions an open entry. The status guard in the WHERE
// clause makes concurrent operator actions race-safe: exactly one wins,
// the rest see zero rows affected.
func (r *DeadLetterRepo) MarkResolution(ctx context.Context, id uuid.UUID, resolution domain.DeadLetterResolution, actor, reason string, at time.Time) (bool, error) {
	query := `UPDATE dead_letters
		SET resolution = $1, resolved_by = $2, reason = $3, resolved_at = $4
		WHERE id = $5 AND resolution = 'open'`

	tag, err := r.pool.Exec(ctx, query, string(resolution), actor, reason, at, id)
	if err != nil {
		return false, fmt.Errorf("mark dead letter resolution: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanDeadLetter(row pgx.Row) (*domain.DeadLetterEntry, error) {
	var entry domain.DeadLetterEntry
	var resolution string
	if err := row.Scan(
		&entry.ID, &entry.JobID, &entry.SubscriptionID, &entry.EventID, &entry.EventType,
		&entry.TenantID, &entry.Payload, &entry.Attempts, &entry.LastError,
		&resolution, &entry.ResolvedBy, &entry.ResolvedAt, &entry.Reason, &entry.CreatedAt,
	); err != nil {
		return nil, err
	}
	entry.Resolution = domain.DeadLetterResolution(resolution)
	return &entry, nil
}
