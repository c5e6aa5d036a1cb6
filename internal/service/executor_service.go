package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Headers attached to every outbound delivery so receivers can verify
// authenticity and dedup on their side.
const (
	HeaderSignature  = "X-Relay-Signature"
	HeaderTimestamp  = "X-Relay-Timestamp"
	HeaderDeliveryID = "X-Relay-Delivery-Id"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ExecutorService implements ports.DeliveryExecutor: it performs exactly
// one signed HTTP POST per call and classifies the result. Retry decisions
// belong to the RetryPolicy; the executor never retries internally.
type ExecutorService struct {
	jobRepo    ports.DeliveryJobRepository
	encSvc     ports.EncryptionService
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	timeout    time.Duration
	log        zerolog.Logger
}

// NewExecutorService creates a new ExecutorService.
func NewExecutorService(
	jobRepo ports.DeliveryJobRepository,
	encSvc ports.EncryptionService,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	timeout time.Duration,
	log zerolog.Logger,
) *ExecutorService {
	return &ExecutorService{
		jobRepo:    jobRepo,
		encSvc:     encSvc,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		timeout:    timeout,
		log:        log,
	}
}

// Execute performs one delivery attempt for job against sub's target URL
// and appends one DeliveryAttemptRecord. The returned outcome is always
// classified; infrastructure failures surface as network_error rather
// than propagating.
func (e *ExecutorService) Execute(ctx context.Context, job *domain.DeliveryJob, sub *domain.Subscription) domain.AttemptOutcome {
	attempt := job.Attempts + 1

	outcome := e.attempt(ctx, job, sub)

	rec := &domain.DeliveryAttemptRecord{
		ID:        uuid.New(),
		JobID:     job.ID,
		Attempt:   attempt,
		Outcome:   outcome.Class,
		LatencyMS: outcome.Latency.Milliseconds(),
		CreatedAt: time.Now().UTC(),
	}
	if outcome.HTTPStatus != 0 {
		status := outcome.HTTPStatus
		rec.HTTPStatus = &status
	}
	if outcome.Err != "" {
		msg := outcome.Err
		rec.Error = &msg
	}

	// The attempt record is an audit trail; failing to append it must not
	// turn a classified outcome into a pipeline failure.
	if err := e.jobRepo.RecordAttempt(ctx, rec); err != nil {
		e.log.Error().Err(err).
			Str("job_id", job.ID.String()).
			Int("attempt", attempt).
			Msg("executor: failed to record delivery attempt")
	}

	return outcome
}

func (e *ExecutorService) attempt(ctx context.Context, job *domain.DeliveryJob, sub *domain.Subscription) domain.AttemptOutcome {
	secret, err := e.encSvc.Decrypt(sub.SecretEnc)
	if err != nil {
		// Cannot sign without the secret. Surface as a network-class fault
		// so the scheduler retries; the secret may be fixed by rotation.
		return domain.AttemptOutcome{
			Class: domain.OutcomeNetworkError,
			Err:   "decrypting subscription secret",
		}
	}

	timestamp := time.Now().Unix()
	signature := e.sigSvc.Sign(secret, timestamp, job.Payload)

	attemptCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, sub.TargetURL, bytes.NewReader(job.Payload))
	if err != nil {
		return domain.AttemptOutcome{
			Class: domain.OutcomeNetworkError,
			Err:   fmt.Sprintf("building request: %v", err),
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderSignature, signature)
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(timestamp, 10))
	req.Header.Set(HeaderDeliveryID, job.ID.String())

	start := time.Now()
	resp, err := e.httpClient.Do(req)
	latency := time.Since(start)

	if err != nil {
		class := domain.OutcomeNetworkError
		if isTimeout(err) {
			class = domain.OutcomeTimeout
		}
		e.log.Warn().Err(err).
			Str("job_id", job.ID.String()).
			Str("outcome", string(class)).
			Dur("latency", latency).
			Msg("executor: delivery attempt failed")
		return domain.AttemptOutcome{Class: class, Latency: latency, Err: err.Error()}
	}
	defer resp.Body.Close()

	outcome := domain.AttemptOutcome{
		Class:      domain.ClassifyStatus(resp.StatusCode),
		HTTPStatus: resp.StatusCode,
		Latency:    latency,
	}
	if outcome.Class != domain.OutcomeSuccess {
		outcome.Err = fmt.Sprintf("endpoint returned %d", resp.StatusCode)
	}

	e.log.Debug().
		Str("job_id", job.ID.String()).
		Int("status", resp.StatusCode).
		Str("outcome", string(outcome.Class)).
		Dur("latency", latency).
		Msg("executor: delivery attempt completed")

	return outcome
}

// isTimeout distinguishes an expired attempt deadline from other network
// failures.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
