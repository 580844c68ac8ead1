package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	apperrors "finreview/internal/errors"
	"finreview/internal/model"
	"finreview/internal/repository"
)

// CommentService handles comment mutations. Creates and deletes trigger a
// synchronous comment-count recompute on the parent thread, with the same
// degraded-success contract as reviews.
type CommentService interface {
	Create(ctx context.Context, threadID, authorID uuid.UUID, content string) (*model.Comment, int64, error)
	Delete(ctx context.Context, commentID uuid.UUID, actor *model.User) (int64, error)
	ListByThread(ctx context.Context, threadID uuid.UUID) ([]model.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	threads  repository.ThreadRepository
	recalc   *Recalculator
}

// NewCommentService creates a new comment service.
func NewCommentService(comments repository.CommentRepository, threads repository.ThreadRepository, recalc *Recalculator) CommentService {
	return &commentService{
		comments: comments,
		threads:  threads,
		recalc:   recalc,
	}
}

func (s *commentService) Create(ctx context.Context, threadID, authorID uuid.UUID, content string) (*model.Comment, int64, error) {
	if _, err := s.threads.FindByID(ctx, threadID); err != nil {
		return nil, 0, err
	}

	comment := &model.Comment{
		ID:       uuid.New(),
		ThreadID: threadID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, 0, err
	}

	count, err := s.recalc.ThreadCommentCount(ctx, threadID)
	if err != nil {
		log.Printf("comment count recompute failed for thread %s: %v", threadID, err)
		return comment, 0, fmt.Errorf("%w: %v", ErrAggregateStale, err)
	}
	return comment, count, nil
}

// Delete removes a comment. Only the author or an admin may delete it.
func (s *commentService) Delete(ctx context.Context, commentID uuid.UUID, actor *model.User) (int64, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if comment.AuthorID != actor.ID && !actor.IsAdmin() {
		return 0, apperrors.ErrForbidden
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return 0, err
	}

	count, err := s.recalc.ThreadCommentCount(ctx, comment.ThreadID)
	if err != nil {
		log.Printf("comment count recompute failed for thread %s: %v", comment.ThreadID, err)
		return 0, fmt.Errorf("%w: %v", ErrAggregateStale, err)
	}
	return count, nil
}

func (s *commentService) ListByThread(ctx context.Context, threadID uuid.UUID) ([]model.Comment, error) {
	return s.comments.ListByThread(ctx, threadID)
}
