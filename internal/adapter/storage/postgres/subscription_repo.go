package postgres

import (
	"context"
	"errors"
	"fmt"

	"event-relay/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SubscriptionRepo implements ports.SubscriptionRepository. The delivery
// pipeline only reads subscriptions; writes belong to the subscription
// CRUD layer.
type SubscriptionRepo struct {
	pool Pool
}

// NewSubscriptionRepo creates a new SubscriptionRepo.
func NewSubscriptionRepo(pool Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

// GetActiveForEvent fetches a tenant's active subscriptions whose
// event-type set contains eventType.
func (r *SubscriptionRepo) GetActiveForEvent(ctx context.Context, eventType string, tenantID uuid.UUID) ([]domain.Subscription, error) {
	query := `SELECT id, tenant_id, target_url, secret_enc, event_types, active, created_at, updated_at
		FROM subscriptions
		WHERE tenant_id = $1 AND active = true AND $2 = ANY(event_types)
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, tenantID, eventType)
	if err != nil {
		return nil, fmt.Errorf("query subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		var s domain.Subscription
		if err := rows.Scan(
			&s.ID, &s.TenantID, &s.TargetURL, &s.SecretEnc,
			&s.EventTypes, &s.Active, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// GetByID fetches one subscription. Returns nil without error when the
// subscription does not exist.
func (r *SubscriptionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	query := `SELECT id, tenant_id, target_url, secret_enc, event_types, active, created_at, updated_at
		FROM subscriptions WHERE id = $1`

	s := &domain.Subscription{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.TenantID, &s.TargetURL, &s.SecretEnc,
		&s.EventTypes, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return s, nil
}

// GetSecretEnc fetches only the encrypted signing secret.
func (r *SubscriptionRepo) GetSecretEnc(ctx context.Context, id uuid.UUID) (string, error) {
	var secretEnc string
	err := r.pool.QueryRow(ctx, `SELECT secret_enc FROM subscriptions WHERE id = $1`, id).Scan(&secretEnc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("subscription not found: %s", id)
		}
		return "", fmt.Errorf("get subscription secret: %w", err)
	}
	return secretEnc, nil
}
