package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"finreview/internal/model"
	"finreview/internal/repository"
)

// HelpfulService handles helpful votes on comments. Each mark and unmark
// triggers a synchronous helpful-count recompute on the comment.
type HelpfulService interface {
	Mark(ctx context.Context, commentID, userID uuid.UUID) (int64, error)
	Unmark(ctx context.Context, commentID, userID uuid.UUID) (int64, error)
}

type helpfulService struct {
	votes    repository.HelpfulRepository
	comments repository.CommentRepository
	recalc   *Recalculator
}

// NewHelpfulService creates a new helpful-vote service.
func NewHelpfulService(votes repository.HelpfulRepository, comments repository.CommentRepository, recalc *Recalculator) HelpfulService {
	return &helpfulService{
		votes:    votes,
		comments: comments,
		recalc:   recalc,
	}
}

// Mark records a helpful vote. The (comment, user) unique index rejects a
// second vote from the same user.
func (s *helpfulService) Mark(ctx context.Context, commentID, userID uuid.UUID) (int64, error) {
	if _, err := s.comments.FindByID(ctx, commentID); err != nil {
		return 0, err
	}

	vote := &model.HelpfulVote{
		ID:        uuid.New(),
		CommentID: commentID,
		UserID:    userID,
	}
	if err := s.votes.Create(ctx, vote); err != nil {
		return 0, err
	}

	count, err := s.recalc.CommentHelpfulCount(ctx, commentID)
	if err != nil {
		log.Printf("helpful count recompute failed for comment %s: %v", commentID, err)
		return 0, fmt.Errorf("%w: %v", ErrAggregateStale, err)
	}
	return count, nil
}

// Unmark removes a previously recorded vote.
func (s *helpfulService) Unmark(ctx context.Context, commentID, userID uuid.UUID) (int64, error) {
	if err := s.votes.Delete(ctx, commentID, userID); err != nil {
		return 0, err
	}

	count, err := s.recalc.CommentHelpfulCount(ctx, commentID)
	if err != nil {
		log.Printf("helpful count recompute failed for comment %s: %v", commentID, err)
		return 0, fmt.Errorf("%w: %v", ErrAggregateStale, err)
	}
	return count, nil
}
