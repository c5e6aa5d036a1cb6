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

// DeliveryJobRepo implements ports.DeliveryJobRepository on PostgreSQL.
// The table is the durable delivery queue: a partial unique index on
// (subscription_id, event_id) over live statuses makes Enqueue idempotent
// while still allowing an operator retry to insert a fresh job after the
// previous one exhausted.
type DeliveryJobRepo struct {
	pool Pool
}

// NewDeliveryJobRepo creates a new DeliveryJobRepo.
func NewDeliveryJobRepo(pool Pool) *DeliveryJobRepo {
	return &DeliveryJobRepo{pool: pool}
}

const jobColumns = `id, subscription_id, event_id, event_type, tenant_id, payload,
		attempts, status, next_attempt_at, leased_at, last_error, created_at, updated_at`

// Enqueue inserts a pending job. Returns false without error when a live
// job for the same (subscription, event) pair already exists.
func (r *DeliveryJobRepo) Enqueue(ctx context.Context, job *domain.DeliveryJob) (bool, error) {
	query := `INSERT INTO delivery_jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		job.ID, job.SubscriptionID, job.EventID, job.EventType, job.TenantID, job.Payload,
		job.Attempts, string(job.Status), job.NextAttemptAt, job.LeasedAt, job.LastError,
		job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert delivery job: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// LeaseDue atomically claims up to limit due jobs. FOR UPDATE SKIP LOCKED
// guarantees two concurrent workers never receive the same job. A job
// stuck in_flight past the lease cutoff belongs to a dead worker and is
// claimable again.
func (r *DeliveryJobRepo) LeaseDue(ctx context.Context, limit int, leaseTimeout time.Duration) ([]domain.DeliveryJob, error) {
	now := time.Now().UTC()
	leaseCutoff := now.Add(-leaseTimeout)

	query := `UPDATE delivery_jobs
		SET status = 'in_flight', leased_at = $1, updated_at = $1
		WHERE id IN (
			SELECT id FROM delivery_jobs
			WHERE (status IN ('pending', 'retrying') AND next_attempt_at <= $1)
			   OR (status = 'in_flight' AND leased_at <= $2)
			ORDER BY next_attempt_at
			LIMIT $3
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + jobColumns

	rows, err := r.pool.Query(ctx, query, now, leaseCutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("lease delivery jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.DeliveryJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// Complete marks a leased job succeeded and releases the lease.
func (r *DeliveryJobRepo) Complete(ctx context.Context, jobID uuid.UUID) error {
	query := `UPDATE delivery_jobs
		SET status = 'succeeded', leased_at = NULL, updated_at = $1
		WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, time.Now().UTC(), jobID)
	if err != nil {
		return fmt.Errorf("complete delivery job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delivery job not found: %s", jobID)
	}
	return nil
}

// Cancel marks a leased job cancelled, recording why.
func (r *DeliveryJobRepo) Cancel(ctx context.Context, jobID uuid.UUID, reason string) error {
	query := `UPDATE delivery_jobs
		SET status = 'cancelled', last_error = $1, leased_at = NULL, updated_at = $2
		WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, reason, time.Now().UTC(), jobID)
	if err != nil {
		return fmt.Errorf("cancel delivery job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delivery job not found: %s", jobID)
	}
	return nil
}

// Reschedule returns a leased job to the queue for a later attempt.
func (r *DeliveryJobRepo) Reschedule(ctx context.Context, jobID uuid.UUID, attempts int, nextAttemptAt time.Time, lastError string) error {
	query := `UPDATE delivery_jobs
		SET status = 'retrying', attempts = $1, next_attempt_at = $2, last_error = $3,
			leased_at = NULL, updated_at = $4
		WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query, attempts, nextAttemptAt, lastError, time.Now().UTC(), jobID)
	if err != nil {
		return fmt.Errorf("reschedule delivery job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delivery job not found: %s", jobID)
	}
	return nil
}

// Exhaust marks a leased job terminally failed.
func (r *DeliveryJobRepo) Exhaust(ctx context.Context, jobID uuid.UUID, attempts int, lastError string) error {
	query := `UPDATE delivery_jobs
		SET status = 'exhausted', attempts = $1, last_error = $2, leased_at = NULL, updated_at = $3
		WHERE id = $4`

	tag, err := r.pool.Exec(ctx, query, attempts, lastError, time.Now().UTC(), jobID)
	if err != nil {
		return fmt.Errorf("exhaust delivery job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delivery job not found: %s", jobID)
	}
	return nil
}

// RecordAttempt appends one attempt record. The table is append-only.
func (r *DeliveryJobRepo) RecordAttempt(ctx context.Context, rec *domain.DeliveryAttemptRecord) error {
	query := `INSERT INTO delivery_attempts (id, job_id, attempt, outcome, http_status, latency_ms, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.JobID, rec.Attempt, string(rec.Outcome),
		rec.HTTPStatus, rec.LatencyMS, rec.Error, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery attempt: %w", err)
	}
	return nil
}

// GetByID fetches one job. Returns nil without error when absent.
func (r *DeliveryJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DeliveryJob, error) {
	query := `SELECT ` + jobColumns + ` FROM delivery_jobs WHERE id = $1`

	job, err := scanJob(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery job: %w", err)
	}
	return job, nil
}

// List fetches a tenant's jobs with optional status filter and pagination.
func (r *DeliveryJobRepo) List(ctx context.Context, params ports.DeliveryJobListParams) ([]domain.DeliveryJob, error) {
	query := `SELECT ` + jobColumns + ` FROM delivery_jobs WHERE tenant_id = $1`
	args := []any{params.TenantID}
	argIdx := 2

	if params.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*params.Status))
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, params.PageSize, (params.Page-1)*params.PageSize)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list delivery jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.DeliveryJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// ListAttempts fetches a job's attempt records in attempt order.
func (r *DeliveryJobRepo) ListAttempts(ctx context.Context, jobID uuid.UUID) ([]domain.DeliveryAttemptRecord, error) {
	query := `SELECT id, job_id, attempt, outcome, http_status, latency_ms, error, created_at
		FROM delivery_attempts WHERE job_id = $1 ORDER BY attempt`

	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list delivery attempts: %w", err)
	}
	defer rows.Close()

	var recs []domain.DeliveryAttemptRecord
	for rows.Next() {
		var rec domain.DeliveryAttemptRecord
		var outcome string
		if err := rows.Scan(
			&rec.ID, &rec.JobID, &rec.Attempt, &outcome,
			&rec.HTTPStatus, &rec.LatencyMS, &rec.Error, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan delivery attempt: %w", err)
		}
		rec.Outcome = domain.OutcomeClass(outcome)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func scanJob(row pgx.Row) (*domain.DeliveryJob, error) {
	var job domain.DeliveryJob
	var status string
	if err := row.Scan(
		&job.ID, &job.SubscriptionID, &job.EventID, &job.EventType, &job.TenantID, &job.Payload,
		&job.Attempts, &status, &job.NextAttemptAt, &job.LeasedAt, &job.LastError,
		&job.CreatedAt, &job.UpdatedAt,
	); err != nil {
		return nil, err
	}
	job.Status = domain.DeliveryStatus(status)
	return &job, nil
}
