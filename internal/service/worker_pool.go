package service

import (
	"context"
	"sync"
	"time"

	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports"

	"github.com/rs/zerolog"
)

// WorkerPoolConfig sizes the delivery worker pool.
type WorkerPoolConfig struct {
	Workers      int
	BatchSize    int
	PollInterval time.Duration
	LeaseTimeout time.Duration
}

// WorkerPool runs a fixed set of workers, each looping: lease a batch of
// due jobs, execute each, feed the outcome to the retry policy and apply
// its decision. Workers hold no state between iterations; the job store's
// atomic lease is the only coordination point, so a crashed worker leaves
// nothing to clean up (lease expiry reclaims its jobs).
type WorkerPool struct {
	jobRepo  ports.DeliveryJobRepository
	subRepo  ports.SubscriptionRepository
	dlqRepo  ports.DeadLetterRepository
	executor ports.DeliveryExecutor
	policy   *RetryPolicy
	cfg      WorkerPoolConfig
	log      zerolog.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewWorkerPool creates a worker pool.
func NewWorkerPool(
	jobRepo ports.DeliveryJobRepository,
	subRepo ports.SubscriptionRepository,
	dlqRepo ports.DeadLetterRepository,
	executor ports.DeliveryExecutor,
	policy *RetryPolicy,
	cfg WorkerPoolConfig,
	log zerolog.Logger,
) *WorkerPool {
	if cfg.Workers <= 0 {
		cfg.Workers = 8
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.LeaseTimeout <= 0 {
		cfg.LeaseTimeout = 2 * time.Minute
	}
	return &WorkerPool{
		jobRepo:  jobRepo,
		subRepo:  subRepo,
		dlqRepo:  dlqRepo,
		executor: executor,
		policy:   policy,
		cfg:      cfg,
		log:      log,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the workers. It returns immediately.
func (p *WorkerPool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true

	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.log.Info().
		Int("workers", p.cfg.Workers).
		Int("batch_size", p.cfg.BatchSize).
		Dur("poll_interval", p.cfg.PollInterval).
		Msg("worker pool started")
}

// Stop signals the workers and waits for in-flight attempts to finish.
func (p *WorkerPool) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopCh)
	p.mu.Unlock()

	p.wg.Wait()
	p.log.Info().Msg("worker pool stopped")
}

func (p *WorkerPool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		jobs, err := p.jobRepo.LeaseDue(ctx, p.cfg.BatchSize, p.cfg.LeaseTimeout)
		if err != nil {
			p.log.Error().Err(err).Int("worker", id).Msg("worker: lease failed")
			p.sleep()
			continue
		}
		if len(jobs) == 0 {
			p.sleep()
			continue
		}

		for i := range jobs {
			// One job's failure never aborts the batch.
			p.processJob(ctx, &jobs[i])
		}
	}
}

func (p *WorkerPool) sleep() {
	select {
	case <-p.stopCh:
	case <-time.After(p.cfg.PollInterval):
	}
}

// processJob drives one leased job through execute -> decide -> apply.
// Every failure path ends in a store transition or a log line; nothing
// propagates out of the loop.
func (p *WorkerPool) processJob(ctx context.Context, job *domain.DeliveryJob) {
	sub, err := p.subRepo.GetByID(ctx, job.SubscriptionID)
	if err != nil {
		p.log.Error().Err(err).Str("job_id", job.ID.String()).Msg("worker: subscription lookup failed")
		// Leave the job leased; lease expiry will make it due again.
		return
	}
	if sub == nil || !sub.Active {
		// The subscription was removed or deactivated after dispatch.
		// The job gets its own terminal state so the delivery history
		// never reports a success that did not happen.
		if err := p.jobRepo.Cancel(ctx, job.ID, "subscription removed or inactive"); err != nil {
			p.log.Error().Err(err).Str("job_id", job.ID.String()).Msg("worker: failed to cancel job")
			return
		}
		p.log.Info().
			Str("job_id", job.ID.String()).
			Str("subscription_id", job.SubscriptionID.String()).
			Msg("worker: subscription inactive, job cancelled")
		return
	}

	outcome := p.executor.Execute(ctx, job, sub)
	attempts := job.Attempts + 1
	decision := p.policy.Decide(attempts, outcome)

	switch decision.Action {
	case ActionSucceed:
		if err := p.jobRepo.Complete(ctx, job.ID); err != nil {
			p.log.Error().Err(err).Str("job_id", job.ID.String()).Msg("worker: failed to complete job")
			return
		}
		p.log.Info().
			Str("job_id", job.ID.String()).
			Int("attempts", attempts).
			Msg("worker: delivery succeeded")

	case ActionRetry:
		nextAt := time.Now().UTC().Add(decision.Delay)
		if err := p.jobRepo.Reschedule(ctx, job.ID, attempts, nextAt, outcome.Err); err != nil {
			p.log.Error().Err(err).Str("job_id", job.ID.String()).Msg("worker: failed to reschedule job")
			return
		}
		p.log.Warn().
			Str("job_id", job.ID.String()).
			Int("attempts", attempts).
			Str("outcome", string(outcome.Class)).
			Dur("retry_in", decision.Delay).
			Msg("worker: delivery failed, retry scheduled")

	case ActionExhaust:
		if err := p.jobRepo.Exhaust(ctx, job.ID, attempts, outcome.Err); err != nil {
			p.log.Error().Err(err).Str("job_id", job.ID.String()).Msg("worker: failed to exhaust job")
			return
		}
		exhausted := *job
		exhausted.Attempts = attempts
		exhausted.Status = domain.DeliveryStatusExhausted
		if outcome.Err != "" {
			msg := outcome.Err
			exhausted.LastError = &msg
		}
		entry := domain.NewDeadLetterEntry(&exhausted)
		if err := p.dlqRepo.Create(ctx, entry); err != nil {
			p.log.Error().Err(err).Str("job_id", job.ID.String()).Msg("worker: failed to create dead letter entry")
			return
		}
		// Dead-lettering is a deliberate, visible failure, not a silent drop.
		p.log.Error().
			Str("job_id", job.ID.String()).
			Str("dead_letter_id", entry.ID.String()).
			Int("attempts", attempts).
			Str("outcome", string(outcome.Class)).
			Msg("worker: delivery exhausted, dead-lettered")
	}
}
