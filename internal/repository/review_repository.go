package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"finreview/internal/db"
	apperrors "finreview/internal/errors"
	"finreview/internal/model"
)

// RatingAggregate is the result of aggregating live reviews for one
// institution.
type RatingAggregate struct {
	AvgRating   float64 `gorm:"column:avg_rating"`
	ReviewCount int64   `gorm:"column:review_count"`
}

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	ListByInstitution(ctx context.Context, institutionID uuid.UUID) ([]model.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AggregateByInstitution(ctx context.Context, institutionID uuid.UUID) (*RatingAggregate, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository builds a GORM-backed repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if db.IsDuplicateEntry(err) {
			return apperrors.ErrDuplicateReview
		}
		return err
	}
	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByInstitution(ctx context.Context, institutionID uuid.UUID) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("institution_id = ?", institutionID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

// AggregateByInstitution computes the mean rating and count over live reviews
// in one query. Zero reviews yield a zero aggregate, not an error.
func (r *reviewRepository) AggregateByInstitution(ctx context.Context, institutionID uuid.UUID) (*RatingAggregate, error) {
	var agg RatingAggregate
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count").
		Where("institution_id = ?", institutionID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}
