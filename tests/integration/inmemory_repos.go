package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory Subscription Repo ---

type inMemorySubscriptionRepo struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]*domain.Subscription
}

func newInMemorySubscriptionRepo() *inMemorySubscriptionRepo {
	return &inMemorySubscriptionRepo{subs: make(map[uuid.UUID]*domain.Subscription)}
}

func (r *inMemorySubscriptionRepo) add(sub *domain.Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.ID] = sub
}

func (r *inMemorySubscriptionRepo) deactivate(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sub, ok := r.subs[id]; ok {
		sub.Active = false
	}
}

func (r *inMemorySubscriptionRepo) GetActiveForEvent(ctx context.Context, eventType string, tenantID uuid.UUID) ([]domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Subscription
	for _, sub := range r.subs {
		if sub.TenantID == tenantID && sub.Active && sub.Matches(eventType) {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (r *inMemorySubscriptionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.subs[id]
	if !ok {
		return nil, nil
	}
	cp := *sub
	return &cp, nil
}

func (r *inMemorySubscriptionRepo) GetSecretEnc(ctx context.Context, id uuid.UUID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.subs[id]
	if !ok {
		return "", fmt.Errorf("subscription %s not found", id)
	}
	return sub.SecretEnc, nil
}

// --- In-Memory Delivery Job Repo ---

type inMemoryDeliveryJobRepo struct {
	mu       sync.Mutex
	jobs     map[uuid.UUID]*domain.DeliveryJob
	attempts []domain.DeliveryAttemptRecord
}

func newInMemoryDeliveryJobRepo() *inMemoryDeliveryJobRepo {
	return &inMemoryDeliveryJobRepo{jobs: make(map[uuid.UUID]*domain.DeliveryJob)}
}

func liveStatus(s domain.DeliveryStatus) bool {
	switch s {
	case domain.DeliveryStatusPending, domain.DeliveryStatusInFlight, domain.DeliveryStatusRetrying:
		return true
	}
	return false
}

func (r *inMemoryDeliveryJobRepo) Enqueue(ctx context.Context, job *domain.DeliveryJob) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.jobs {
		if existing.SubscriptionID == job.SubscriptionID &&
			existing.EventID == job.EventID &&
			liveStatus(existing.Status) {
			return false, nil
		}
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return true, nil
}

func (r *inMemoryDeliveryJobRepo) LeaseDue(ctx context.Context, limit int, leaseTimeout time.Duration) ([]domain.DeliveryJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	reclaimBefore := now.Add(-leaseTimeout)

	var due []*domain.DeliveryJob
	for _, job := range r.jobs {
		switch job.Status {
		case domain.DeliveryStatusPending, domain.DeliveryStatusRetrying:
			if !job.NextAttemptAt.After(now) {
				due = append(due, job)
			}
		case domain.DeliveryStatusInFlight:
			if job.LeasedAt != nil && !job.LeasedAt.After(reclaimBefore) {
				due = append(due, job)
			}
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].NextAttemptAt.Before(due[j].NextAttemptAt) })
	if len(due) > limit {
		due = due[:limit]
	}

	leased := make([]domain.DeliveryJob, 0, len(due))
	for _, job := range due {
		job.Status = domain.DeliveryStatusInFlight
		leaseTime := now
		job.LeasedAt = &leaseTime
		job.UpdatedAt = now
		leased = append(leased, *job)
	}
	return leased, nil
}

func (r *inMemoryDeliveryJobRepo) Complete(ctx context.Context, jobID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return fmt.Errorf("delivery job %s not found", jobID)
	}
	job.Status = domain.DeliveryStatusSucceeded
	job.LeasedAt = nil
	job.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryDeliveryJobRepo) Cancel(ctx context.Context, jobID uuid.UUID, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return fmt.Errorf("delivery job %s not found", jobID)
	}
	job.Status = domain.DeliveryStatusCancelled
	job.LastError = &reason
	job.LeasedAt = nil
	job.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryDeliveryJobRepo) Reschedule(ctx context.Context, jobID uuid.UUID, attempts int, nextAttemptAt time.Time, lastError string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return fmt.Errorf("delivery job %s not found", jobID)
	}
	job.Status = domain.DeliveryStatusRetrying
	job.Attempts = attempts
	job.NextAttemptAt = nextAttemptAt
	job.LastError = &lastError
	job.LeasedAt = nil
	job.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryDeliveryJobRepo) Exhaust(ctx context.Context, jobID uuid.UUID, attempts int, lastError string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return fmt.Errorf("delivery job %s not found", jobID)
	}
	job.Status = domain.DeliveryStatusExhausted
	job.Attempts = attempts
	job.LastError = &lastError
	job.LeasedAt = nil
	job.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryDeliveryJobRepo) RecordAttempt(ctx context.Context, rec *domain.DeliveryAttemptRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, *rec)
	return nil
}

func (r *inMemoryDeliveryJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DeliveryJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *job
	return &cp, nil
}

func (r *inMemoryDeliveryJobRepo) List(ctx context.Context, params ports.DeliveryJobListParams) ([]domain.DeliveryJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.DeliveryJob
	for _, job := range r.jobs {
		if job.TenantID != params.TenantID {
			continue
		}
		if params.Status != nil && job.Status != *params.Status {
			continue
		}
		out = append(out, *job)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryDeliveryJobRepo) ListAttempts(ctx context.Context, jobID uuid.UUID) ([]domain.DeliveryAttemptRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.DeliveryAttemptRecord
	for _, rec := range r.attempts {
		if rec.JobID == jobID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Attempt < out[j].Attempt })
	return out, nil
}

// --- In-Memory Dead Letter Repo ---

type inMemoryDeadLetterRepo struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*domain.DeadLetterEntry
}

func newInMemoryDeadLetterRepo() *inMemoryDeadLetterRepo {
	return &inMemoryDeadLetterRepo{entries: make(map[uuid.UUID]*domain.DeadLetterEntry)}
}

func (r *inMemoryDeadLetterRepo) Create(ctx context.Context, entry *domain.DeadLetterEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *inMemoryDeadLetterRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DeadLetterEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *entry
	return &cp, nil
}

func (r *inMemoryDeadLetterRepo) List(ctx context.Context, params ports.DeadLetterListParams) ([]domain.DeadLetterEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.DeadLetterEntry
	for _, entry := range r.entries {
		if params.TenantID != nil && entry.TenantID != *params.TenantID {
			continue
		}
		if params.Resolution != nil && entry.Resolution != *params.Resolution {
			continue
		}
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryDeadLetterRepo) MarkResolution(ctx context.Context, id uuid.UUID, resolution domain.DeadLetterResolution, actor, reason string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok || entry.Resolution != domain.DeadLetterOpen {
		return false, nil
	}
	entry.Resolution = resolution
	entry.ResolvedBy = &actor
	entry.ResolvedAt = &at
	if reason != "" {
		entry.Reason = &reason
	}
	return true, nil
}

// --- In-Memory Inbound Ledger Repo ---

type inMemoryInboundLedgerRepo struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

func newInMemoryInboundLedgerRepo() *inMemoryInboundLedgerRepo {
	return &inMemoryInboundLedgerRepo{seen: make(map[string]time.Time)}
}

func (r *inMemoryInboundLedgerRepo) Insert(ctx context.Context, providerEventID string, processedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seen[providerEventID]; ok {
		return false, nil
	}
	r.seen[providerEventID] = processedAt
	return true, nil
}
