package service

import (
	"context"

	"event-relay/internal/core/domain"
	"event-relay/internal/core/ports"
	"event-relay/pkg/apperror"

	"github.com/google/uuid"
)

// DeliveryHistoryService implements ports.DeliveryReportingService: the
// tenant-visible view of delivery jobs and their attempt records. A
// dead-lettered job is reported as exhausted, never as still in progress.
type DeliveryHistoryService struct {
	jobRepo ports.DeliveryJobRepository
}

// NewDeliveryHistoryService creates a new DeliveryHistoryService.
func NewDeliveryHistoryService(jobRepo ports.DeliveryJobRepository) *DeliveryHistoryService {
	return &DeliveryHistoryService{jobRepo: jobRepo}
}

// ListDeliveries returns a page of the tenant's delivery jobs.
func (s *DeliveryHistoryService) ListDeliveries(ctx context.Context, params ports.DeliveryJobListParams) ([]domain.DeliveryJob, error) {
	if params.PageSize <= 0 || params.PageSize > 100 {
		params.PageSize = 50
	}
	if params.Page <= 0 {
		params.Page = 1
	}
	return s.jobRepo.List(ctx, params)
}

// GetDelivery returns one job with its full attempt history. Tenants can
// only see their own jobs.
func (s *DeliveryHistoryService) GetDelivery(ctx context.Context, tenantID, jobID uuid.UUID) (*domain.DeliveryJob, []domain.DeliveryAttemptRecord, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(err)
	}
	if job == nil || job.TenantID != tenantID {
		return nil, nil, apperror.ErrDeliveryNotFound()
	}

	attempts, err := s.jobRepo.ListAttempts(ctx, jobID)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(err)
	}
	return job, attempts, nil
}
