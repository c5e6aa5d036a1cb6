package service

import (
	"context"
	"fmt"

	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports"

	"github.com/rs/zerolog"
)

// DispatcherService implements ports.Dispatcher. It fans an event out into
// one pending DeliveryJob per active matching subscription. Enqueueing is
// idempotent on (subscription, event), so a retried dispatch never creates
// duplicate work.
type DispatcherService struct {
	subRepo ports.SubscriptionRepository
	jobRepo ports.DeliveryJobRepository
	log     zerolog.Logger
}

// NewDispatcherService creates a new DispatcherService.
func NewDispatcherService(
	subRepo ports.SubscriptionRepository,
	jobRepo ports.DeliveryJobRepository,
	log zerolog.Logger,
) *DispatcherService {
	return &DispatcherService{
		subRepo: subRepo,
		jobRepo: jobRepo,
		log:     log,
	}
}

// Dispatch enqueues delivery jobs for every active subscription matching
// the event's type and returns the number of jobs enqueued. Zero matching
// subscriptions is a normal outcome, not an error.
func (s *DispatcherService) Dispatch(ctx context.Context, event *domain.Event) (int, error) {
	subs, err := s.subRepo.GetActiveForEvent(ctx, event.Type, event.TenantID)
	if err != nil {
		return 0, fmt.Errorf("looking up subscriptions for %s: %w", event.Type, err)
	}

	enqueued := 0
	for i := range subs {
		job := domain.NewDeliveryJob(&subs[i], event)
		inserted, err := s.jobRepo.Enqueue(ctx, job)
		if err != nil {
			// Enqueue is idempotent, so the caller can safely retry the
			// whole dispatch.
			return enqueued, fmt.Errorf("enqueueing job for subscription %s: %w", subs[i].ID, err)
		}
		if !inserted {
			s.log.Debug().
				Str("event_id", event.ID.String()).
				Str("subscription_id", subs[i].ID.String()).
				Msg("dispatch: job already enqueued, skipping")
			continue
		}
		enqueued++
	}

	s.log.Info().
		Str("event_id", event.ID.String()).
		Str("event_type", event.Type).
		Int("jobs_enqueued", enqueued).
		Int("subscriptions_matched", len(subs)).
		Msg("dispatch: event fanned out")

	return enqueued, nil
}
