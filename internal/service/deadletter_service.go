package service

import (
	"context"
	"time"

	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports"
	"event-relay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DeadLetterOpsService implements ports.DeadLetterService: the operator
// recovery workflow over dead-lettered deliveries. The service is
// authorization-agnostic (callers enforce the operator role) but it
// records who took every resolution action.
type DeadLetterOpsService struct {
	dlqRepo ports.DeadLetterRepository
	jobRepo ports.DeliveryJobRepository
	subRepo ports.SubscriptionRepository
	log     zerolog.Logger
}

// NewDeadLetterOpsService creates a new DeadLetterOpsService.
func NewDeadLetterOpsService(
	dlqRepo ports.DeadLetterRepository,
	jobRepo ports.DeliveryJobRepository,
	subRepo ports.SubscriptionRepository,
	log zerolog.Logger,
) *DeadLetterOpsService {
	return &DeadLetterOpsService{
		dlqRepo: dlqRepo,
		jobRepo: jobRepo,
		subRepo: subRepo,
		log:     log,
	}
}

// List returns dead letter entries matching the filter.
func (s *DeadLetterOpsService) List(ctx context.Context, params ports.DeadLetterListParams) ([]domain.DeadLetterEntry, error) {
	return s.dlqRepo.List(ctx, params)
}

// Get fetches one entry.
func (s *DeadLetterOpsService) Get(ctx context.Context, id uuid.UUID) (*domain.DeadLetterEntry, error) {
	entry, err := s.dlqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if entry == nil {
		return nil, apperror.ErrDeadLetterNotFound()
	}
	return entry, nil
}

// Resolve marks an open entry resolved.
func (s *DeadLetterOpsService) Resolve(ctx context.Context, id uuid.UUID, actor, reason string) error {
	return s.mark(ctx, id, domain.DeadLetterResolved, actor, reason)
}

// Ignore marks an open entry ignored.
func (s *DeadLetterOpsService) Ignore(ctx context.Context, id uuid.UUID, actor, reason string) error {
	return s.mark(ctx, id, domain.DeadLetterIgnored, actor, reason)
}

// Retry is the only path from a dead letter back into the live pipeline.
// It mints a fresh DeliveryJob with the attempt count reset to zero; the
// entry's snapshot and the original job's attempt records stay untouched.
func (s *DeadLetterOpsService) Retry(ctx context.Context, id uuid.UUID, actor string) (*domain.DeliveryJob, error) {
	entry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.Resolution != domain.DeadLetterOpen {
		return nil, apperror.ErrDeadLetterAlreadyHandled()
	}

	// Retrying against a removed or deactivated subscription would only
	// mint a job the workers immediately cancel.
	sub, err := s.subRepo.GetByID(ctx, entry.SubscriptionID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if sub == nil || !sub.Active {
		return nil, apperror.ErrSubscriptionNotFound()
	}

	now := time.Now().UTC()
	job := &domain.DeliveryJob{
		ID:             uuid.New(),
		SubscriptionID: entry.SubscriptionID,
		EventID:        entry.EventID,
		EventType:      entry.EventType,
		TenantID:       entry.TenantID,
		Payload:        entry.Payload,
		Attempts:       0,
		Status:         domain.DeliveryStatusPending,
		NextAttemptAt:  now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	inserted, err := s.jobRepo.Enqueue(ctx, job)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if !inserted {
		// A live job for this (subscription, event) already exists,
		// e.g. a concurrent operator retried first.
		return nil, apperror.ErrDeadLetterAlreadyHandled()
	}

	if err := s.mark(ctx, id, domain.DeadLetterRetried, actor, "retried as job "+job.ID.String()); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("dead_letter_id", id.String()).
		Str("new_job_id", job.ID.String()).
		Str("actor", actor).
		Msg("dead letter retried")

	return job, nil
}

func (s *DeadLetterOpsService) mark(ctx context.Context, id uuid.UUID, resolution domain.DeadLetterResolution, actor, reason string) error {
	updated, err := s.dlqRepo.MarkResolution(ctx, id, resolution, actor, reason, time.Now().UTC())
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !updated {
		entry, err := s.dlqRepo.GetByID(ctx, id)
		if err != nil {
			return apperror.ErrDatabaseError(err)
		}
		if entry == nil {
			return apperror.ErrDeadLetterNotFound()
		}
		return apperror.ErrDeadLetterAlreadyHandled()
	}

	s.log.Info().
		Str("dead_letter_id", id.String()).
		Str("resolution", string(resolution)).
		Str("actor", actor).
		Msg("dead letter resolution recorded")

	return nil
}
