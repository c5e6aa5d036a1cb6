package service

import (
	"math"
	"math/rand/v2"
	"time"

	"event-relay/internal/core/domain"
)

// RetryAction is what the worker pool must do with a job after an attempt.
type RetryAction int

const (
	// ActionSucceed completes the job. Terminal.
	ActionSucceed RetryAction = iota
	// ActionRetry reschedules the job after Decision.Delay.
	ActionRetry
	// ActionExhaust dead-letters the job. Terminal.
	ActionExhaust
)

// RetryDecision is the scheduler's verdict for one attempt outcome.
type RetryDecision struct {
	Action RetryAction
	Delay  time.Duration // set only for ActionRetry
}

// RetryPolicy decides whether and when a delivery job is retried. It is a
// pure function of the attempt count and outcome class: no I/O, safe for
// concurrent use.
//
// Non-429 client errors exhaust immediately regardless of attempt count:
// retrying a client fault wastes cycles and floods a misconfigured
// endpoint. Transient faults back off exponentially with additive jitter
// so many jobs hitting the same failing endpoint do not retry in lockstep.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	CapDelay    time.Duration

	jitter func() float64 // uniform [0,1); injectable for tests
}

// NewRetryPolicy creates a policy with the given budget.
func NewRetryPolicy(maxAttempts int, baseDelay, capDelay time.Duration) *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts: maxAttempts,
		BaseDelay:   baseDelay,
		CapDelay:    capDelay,
		jitter:      rand.Float64,
	}
}

// Decide maps the outcome of a job's latest attempt to an action.
// attempts is the number of attempts made so far, including this one.
func (p *RetryPolicy) Decide(attempts int, outcome domain.AttemptOutcome) RetryDecision {
	if outcome.Class == domain.OutcomeSuccess {
		return RetryDecision{Action: ActionSucceed}
	}
	if !outcome.Retryable() {
		return RetryDecision{Action: ActionExhaust}
	}
	if attempts >= p.MaxAttempts {
		return RetryDecision{Action: ActionExhaust}
	}
	return RetryDecision{Action: ActionRetry, Delay: p.backoff(attempts)}
}

// backoff returns min(cap, base * 2^attempts) plus jitter in [0, base/2).
func (p *RetryPolicy) backoff(attempts int) time.Duration {
	d := time.Duration(float64(p.BaseDelay) * math.Pow(2, float64(attempts)))
	if d <= 0 || d > p.CapDelay {
		d = p.CapDelay
	}
	jitter := time.Duration(p.jitter() * float64(p.BaseDelay) / 2)
	return d + jitter
}
