package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	apperrors "finreview/internal/errors"
	"finreview/internal/model"
	"finreview/internal/repository"
	"finreview/internal/storage"
)

// ApprovalService governs the account approval state machine:
// unapproved without evidence -> unapproved pending review -> approved.
// Approval never reverts; there is no de-approval transition.
type ApprovalService interface {
	SubmitEvidence(ctx context.Context, userID uuid.UUID, body io.Reader, size int64, contentType string) (*model.User, error)
	ListPending(ctx context.Context) ([]model.User, error)
	Approve(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type approvalService struct {
	users    repository.UserRepository
	evidence storage.EvidenceStore
}

// NewApprovalService creates a new approval service.
func NewApprovalService(users repository.UserRepository, evidence storage.EvidenceStore) ApprovalService {
	return &approvalService{users: users, evidence: evidence}
}

// SubmitEvidence uploads an approval screenshot and records its reference on
// the account. Re-submission before approval overwrites the previous
// reference; already-approved accounts cannot resubmit.
func (s *approvalService) SubmitEvidence(ctx context.Context, userID uuid.UUID, body io.Reader, size int64, contentType string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsApproved {
		return nil, apperrors.ErrAlreadyApproved
	}

	key, err := s.evidence.Save(ctx, body, size, contentType)
	if err != nil {
		return nil, err
	}

	user.EvidenceKey = key
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListPending returns unapproved accounts awaiting admin review.
func (s *approvalService) ListPending(ctx context.Context) ([]model.User, error) {
	return s.users.ListPendingApproval(ctx)
}

// Approve flips an account to approved. Role enforcement happens at the
// gateway; this only validates the state transition.
func (s *approvalService) Approve(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsApproved {
		return nil, apperrors.ErrAlreadyApproved
	}
	if !user.HasEvidence() {
		return nil, apperrors.ErrEvidenceMissing
	}

	user.IsApproved = true
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
