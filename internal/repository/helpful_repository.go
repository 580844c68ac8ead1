package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"finreview/internal/db"
	apperrors "finreview/internal/errors"
	"finreview/internal/model"
)

// HelpfulRepository defines persistence operations for helpful votes.
type HelpfulRepository interface {
	Create(ctx context.Context, vote *model.HelpfulVote) error
	Delete(ctx context.Context, commentID, userID uuid.UUID) error
	CountByComment(ctx context.Context, commentID uuid.UUID) (int64, error)
}

type helpfulRepository struct {
	db *gorm.DB
}

// NewHelpfulRepository builds a GORM-backed repository.
func NewHelpfulRepository(db *gorm.DB) HelpfulRepository {
	return &helpfulRepository{db: db}
}

func (r *helpfulRepository) Create(ctx context.Context, vote *model.HelpfulVote) error {
	if err := r.db.WithContext(ctx).Create(vote).Error; err != nil {
		if db.IsDuplicateEntry(err) {
			return apperrors.ErrDuplicateVote
		}
		return err
	}
	return nil
}

func (r *helpfulRepository) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.HelpfulVote{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrVoteNotFound
	}
	return nil
}

func (r *helpfulRepository) CountByComment(ctx context.Context, commentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.HelpfulVote{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}
