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

// ReviewService handles review mutations. Every create and delete triggers a
// synchronous rating recompute for the affected institution. A recompute
// failure after the mutation committed is returned as ErrAggregateStale
// alongside the mutated entity; the caller reports degraded success instead
// of rolling back.
type ReviewService interface {
	Create(ctx context.Context, institutionID, userID uuid.UUID, title, text string, rating int) (*model.Review, *RatingSummary, error)
	Delete(ctx context.Context, reviewID uuid.UUID, actor *model.User) (*RatingSummary, error)
	ListByInstitution(ctx context.Context, institutionID uuid.UUID) ([]model.Review, error)
}

type reviewService struct {
	reviews      repository.ReviewRepository
	institutions repository.InstitutionRepository
	recalc       *Recalculator
}

// NewReviewService creates a new review service.
func NewReviewService(reviews repository.ReviewRepository, institutions repository.InstitutionRepository, recalc *Recalculator) ReviewService {
	return &reviewService{
		reviews:      reviews,
		institutions: institutions,
		recalc:       recalc,
	}
}

func (s *reviewService) Create(ctx context.Context, institutionID, userID uuid.UUID, title, text string, rating int) (*model.Review, *RatingSummary, error) {
	if _, err := s.institutions.FindByID(ctx, institutionID); err != nil {
		return nil, nil, err
	}

	review := &model.Review{
		ID:            uuid.New(),
		InstitutionID: institutionID,
		UserID:        userID,
		Title:         title,
		Text:          text,
		Rating:        rating,
	}

	// The (institution, user) unique index rejects a second review from the
	// same author.
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, nil, err
	}

	summary, err := s.recalc.InstitutionRating(ctx, institutionID)
	if err != nil {
		log.Printf("rating recompute failed for institution %s: %v", institutionID, err)
		return review, nil, fmt.Errorf("%w: %v", ErrAggregateStale, err)
	}
	return review, summary, nil
}

// Delete removes a review. Only the author or an admin may delete it.
func (s *reviewService) Delete(ctx context.Context, reviewID uuid.UUID, actor *model.User) (*RatingSummary, error) {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return nil, err
	}

	summary, err := s.recalc.InstitutionRating(ctx, review.InstitutionID)
	if err != nil {
		log.Printf("rating recompute failed for institution %s: %v", review.InstitutionID, err)
		return nil, fmt.Errorf("%w: %v", ErrAggregateStale, err)
	}
	return summary, nil
}

func (s *reviewService) ListByInstitution(ctx context.Context, institutionID uuid.UUID) ([]model.Review, error) {
	return s.reviews.ListByInstitution(ctx, institutionID)
}
