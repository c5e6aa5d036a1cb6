package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports/mocks"
	"event-relay/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDedupTTL = 24 * time.Hour

func inboundEvent(id string) domain.InboundEvent {
	return domain.InboundEvent{
		ProviderEventID: id,
		Type:            "charge.succeeded",
		Data:            []byte(`{"charge_id":"ch_1"}`),
	}
}

// countingHandler records invocations so tests can assert at-most-once.
type countingHandler struct {
	calls int
	err   error
}

func (h *countingHandler) handle(_ context.Context, _ domain.InboundEvent) error {
	h.calls++
	return h.err
}

func TestIngestion_NewEventRunsHandlerOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockInboundLedgerRepository(ctrl)
	svc := NewIngestionService(ledger, nil, testDedupTTL, logger.Nop())
	handler := &countingHandler{}

	ledger.EXPECT().Insert(gomock.Any(), "evt_001", gomock.Any()).Return(true, nil)

	result, err := svc.Ingest(context.Background(), inboundEvent("evt_001"), handler.handle)

	require.NoError(t, err)
	assert.Equal(t, domain.IngestProcessed, result)
	assert.Equal(t, 1, handler.calls)
}

func TestIngestion_DuplicateLedgerEntrySkipsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockInboundLedgerRepository(ctrl)
	svc := NewIngestionService(ledger, nil, testDedupTTL, logger.Nop())
	handler := &countingHandler{}

	ledger.EXPECT().Insert(gomock.Any(), "evt_001", gomock.Any()).Return(false, nil)

	result, err := svc.Ingest(context.Background(), inboundEvent("evt_001"), handler.handle)

	require.NoError(t, err)
	assert.Equal(t, domain.IngestDuplicate, result)
	assert.Equal(t, 0, handler.calls)
}

func TestIngestion_CacheHitShortCircuitsBeforeLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockInboundLedgerRepository(ctrl)
	dedup := mocks.NewMockDedupCache(ctrl)
	svc := NewIngestionService(ledger, dedup, testDedupTTL, logger.Nop())
	handler := &countingHandler{}

	dedup.EXPECT().Seen(gomock.Any(), "evt_001").Return(true, nil)
	// No ledger expectation: the cache answered.

	result, err := svc.Ingest(context.Background(), inboundEvent("evt_001"), handler.handle)

	require.NoError(t, err)
	assert.Equal(t, domain.IngestDuplicate, result)
	assert.Equal(t, 0, handler.calls)
}

func TestIngestion_CacheFailureFallsThroughToLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockInboundLedgerRepository(ctrl)
	dedup := mocks.NewMockDedupCache(ctrl)
	svc := NewIngestionService(ledger, dedup, testDedupTTL, logger.Nop())
	handler := &countingHandler{}

	dedup.EXPECT().Seen(gomock.Any(), "evt_001").
		Return(false, errors.New("redis: connection refused"))
	ledger.EXPECT().Insert(gomock.Any(), "evt_001", gomock.Any()).Return(true, nil)
	dedup.EXPECT().MarkSeen(gomock.Any(), "evt_001", testDedupTTL).Return(nil)

	result, err := svc.Ingest(context.Background(), inboundEvent("evt_001"), handler.handle)

	require.NoError(t, err)
	assert.Equal(t, domain.IngestProcessed, result)
	assert.Equal(t, 1, handler.calls)
}

func TestIngestion_CacheMarkedOnlyAfterLedgerCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockInboundLedgerRepository(ctrl)
	dedup := mocks.NewMockDedupCache(ctrl)
	svc := NewIngestionService(ledger, dedup, testDedupTTL, logger.Nop())
	handler := &countingHandler{}

	// A transient ledger failure must leave the cache untouched.
	dedup.EXPECT().Seen(gomock.Any(), "evt_001").Return(false, nil)
	ledger.EXPECT().Insert(gomock.Any(), "evt_001", gomock.Any()).
		Return(false, errors.New("connection reset by peer"))

	_, err := svc.Ingest(context.Background(), inboundEvent("evt_001"), handler.handle)
	assert.Equal(t, "SYS_001", appErrorCode(t, err))
	assert.Equal(t, 0, handler.calls)

	// The provider's redelivery reaches the ledger again and processes
	// normally; only now is the cache populated.
	dedup.EXPECT().Seen(gomock.Any(), "evt_001").Return(false, nil)
	ledger.EXPECT().Insert(gomock.Any(), "evt_001", gomock.Any()).Return(true, nil)
	dedup.EXPECT().MarkSeen(gomock.Any(), "evt_001", testDedupTTL).Return(nil)

	result, err := svc.Ingest(context.Background(), inboundEvent("evt_001"), handler.handle)

	require.NoError(t, err)
	assert.Equal(t, domain.IngestProcessed, result)
	assert.Equal(t, 1, handler.calls)
}

func TestIngestion_LedgerConflictBackfillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockInboundLedgerRepository(ctrl)
	dedup := mocks.NewMockDedupCache(ctrl)
	svc := NewIngestionService(ledger, dedup, testDedupTTL, logger.Nop())
	handler := &countingHandler{}

	// Cache miss but ledger conflict: another instance committed the id.
	// The cache is backfilled so the next redelivery short-circuits.
	dedup.EXPECT().Seen(gomock.Any(), "evt_001").Return(false, nil)
	ledger.EXPECT().Insert(gomock.Any(), "evt_001", gomock.Any()).Return(false, nil)
	dedup.EXPECT().MarkSeen(gomock.Any(), "evt_001", testDedupTTL).Return(nil)

	result, err := svc.Ingest(context.Background(), inboundEvent("evt_001"), handler.handle)

	require.NoError(t, err)
	assert.Equal(t, domain.IngestDuplicate, result)
	assert.Equal(t, 0, handler.calls)
}

func TestIngestion_MarkSeenFailureDoesNotFailIngest(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockInboundLedgerRepository(ctrl)
	dedup := mocks.NewMockDedupCache(ctrl)
	svc := NewIngestionService(ledger, dedup, testDedupTTL, logger.Nop())
	handler := &countingHandler{}

	dedup.EXPECT().Seen(gomock.Any(), "evt_001").Return(false, nil)
	ledger.EXPECT().Insert(gomock.Any(), "evt_001", gomock.Any()).Return(true, nil)
	dedup.EXPECT().MarkSeen(gomock.Any(), "evt_001", testDedupTTL).
		Return(errors.New("redis: connection refused"))

	result, err := svc.Ingest(context.Background(), inboundEvent("evt_001"), handler.handle)

	require.NoError(t, err)
	assert.Equal(t, domain.IngestProcessed, result)
	assert.Equal(t, 1, handler.calls)
}

func TestIngestion_HandlerFailureAfterLedgerCommitIsFailedNotRetriable(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockInboundLedgerRepository(ctrl)
	svc := NewIngestionService(ledger, nil, testDedupTTL, logger.Nop())
	handler := &countingHandler{err: errors.New("downstream write failed")}

	ledger.EXPECT().Insert(gomock.Any(), "evt_001", gomock.Any()).Return(true, nil)

	result, err := svc.Ingest(context.Background(), inboundEvent("evt_001"), handler.handle)

	assert.Equal(t, domain.IngestFailed, result)
	assert.Equal(t, "ING_001", appErrorCode(t, err))

	// A redelivery of the same id is a duplicate: the handler never runs
	// again automatically.
	ledger.EXPECT().Insert(gomock.Any(), "evt_001", gomock.Any()).Return(false, nil)

	result, err = svc.Ingest(context.Background(), inboundEvent("evt_001"), handler.handle)

	require.NoError(t, err)
	assert.Equal(t, domain.IngestDuplicate, result)
	assert.Equal(t, 1, handler.calls)
}

func TestIngestion_LedgerErrorBlocksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockInboundLedgerRepository(ctrl)
	svc := NewIngestionService(ledger, nil, testDedupTTL, logger.Nop())
	handler := &countingHandler{}

	ledger.EXPECT().Insert(gomock.Any(), "evt_001", gomock.Any()).
		Return(false, errors.New("connection refused"))

	_, err := svc.Ingest(context.Background(), inboundEvent("evt_001"), handler.handle)

	assert.Equal(t, "SYS_001", appErrorCode(t, err))
	assert.Equal(t, 0, handler.calls)
}
