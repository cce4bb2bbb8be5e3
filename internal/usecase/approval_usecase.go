package usecase

import (
	"context"
	"time"

	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/infrastructure/metrics"
)

// ApprovalUseCase runs the two-stage approval workflow gating customer
// and account activation. Reviews are terminal and applied in the same
// unit of work as the gated entity's own status change.
type ApprovalUseCase struct {
	txManager    TransactionManager
	approvalRepo ApprovalRepository
	idGen        IDGenerator
	activators   map[domain.EntityType]EntityActivator
	metrics      *metrics.Metrics
}

// NewApprovalUseCase creates a new ApprovalUseCase.
func NewApprovalUseCase(txManager TransactionManager, approvalRepo ApprovalRepository, idGen IDGenerator, metrics *metrics.Metrics) *ApprovalUseCase {
	return &ApprovalUseCase{
		txManager:    txManager,
		approvalRepo: approvalRepo,
		idGen:        idGen,
		activators:   make(map[domain.EntityType]EntityActivator),
		metrics:      metrics,
	}
}

// RegisterActivator wires the collaborator that owns an entity type's
// lifecycle. The workflow itself never touches entity internals.
func (uc *ApprovalUseCase) RegisterActivator(entityType domain.EntityType, activator EntityActivator) {
	uc.activators[entityType] = activator
}

// SubmitInput is the input for submitting an entity for review.
type SubmitInput struct {
	EntityType  domain.EntityType
	EntityID    string
	RequestType domain.RequestType
	BranchCode  string
	RequestedBy string
}

// Submit creates a PENDING approval request. At most one pending request
// may exist per (entityType, entityID); a partial unique index backs the
// same rule in the store.
func (uc *ApprovalUseCase) Submit(ctx context.Context, input SubmitInput) (*domain.ApprovalRequest, error) {
	pending, err := uc.approvalRepo.HasPending(ctx, input.EntityType, input.EntityID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.ErrDuplicatePendingRequest
	}

	req := &domain.ApprovalRequest{
		ID:          uc.idGen.Generate(),
		EntityType:  input.EntityType,
		EntityID:    input.EntityID,
		RequestType: input.RequestType,
		Status:      domain.ApprovalStatusPending,
		BranchCode:  input.BranchCode,
		RequestedBy: input.RequestedBy,
		RequestedAt: time.Now().UTC(),
	}

	if err := uc.approvalRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ApprovalsSubmitted.WithLabelValues(string(req.EntityType)).Inc()
	}

	return req, nil
}

// Approve marks a request approved and activates the gated entity.
func (uc *ApprovalUseCase) Approve(ctx context.Context, requestID, reviewedBy, notes string) error {
	return uc.review(ctx, requestID, reviewedBy, notes, domain.ApprovalStatusApproved)
}

// Reject marks a request rejected and signals the gated entity.
func (uc *ApprovalUseCase) Reject(ctx context.Context, requestID, reviewedBy, notes string) error {
	return uc.review(ctx, requestID, reviewedBy, notes, domain.ApprovalStatusRejected)
}

func (uc *ApprovalUseCase) review(ctx context.Context, requestID, reviewedBy, notes string, status domain.ApprovalStatus) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	req, err := uc.approvalRepo.GetByIDForUpdate(ctx, tx, requestID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	if status == domain.ApprovalStatusApproved {
		err = req.Approve(reviewedBy, notes, now)
	} else {
		err = req.Reject(reviewedBy, notes, now)
	}
	if err != nil {
		return err
	}

	if err := uc.approvalRepo.UpdateReview(ctx, tx, req); err != nil {
		return err
	}

	if activator, ok := uc.activators[req.EntityType]; ok {
		if status == domain.ApprovalStatusApproved {
			err = activator.Activate(ctx, tx, req.EntityID)
		} else {
			err = activator.Reject(ctx, tx, req.EntityID, notes)
		}
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.ApprovalsReviewed.WithLabelValues(string(req.EntityType), string(status)).Inc()
		uc.metrics.ApprovalLatency.Observe(now.Sub(req.RequestedAt).Seconds())
	}

	return nil
}

// GetRequest retrieves an approval request by id.
func (uc *ApprovalUseCase) GetRequest(ctx context.Context, id string) (*domain.ApprovalRequest, error) {
	return uc.approvalRepo.GetByID(ctx, id)
}

// ListPending lists pending requests for review dashboards.
func (uc *ApprovalUseCase) ListPending(ctx context.Context, filter ApprovalFilter) ([]*domain.ApprovalRequest, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	return uc.approvalRepo.ListPending(ctx, filter)
}
