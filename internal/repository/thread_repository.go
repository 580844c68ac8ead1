package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "finreview/internal/errors"
	"finreview/internal/model"
)

// ThreadRepository defines persistence operations for forum threads.
// UpdateCommentCount is only called by the aggregate recalculator.
type ThreadRepository interface {
	Create(ctx context.Context, thread *model.Thread) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Thread, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Thread, error)
	UpdateCommentCount(ctx context.Context, id uuid.UUID, count int64) error
}

type threadRepository struct {
	db *gorm.DB
}

// NewThreadRepository builds a GORM-backed repository.
func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepository{db: db}
}

func (r *threadRepository) Create(ctx context.Context, thread *model.Thread) error {
	return r.db.WithContext(ctx).Create(thread).Error
}

func (r *threadRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Thread, error) {
	var thread model.Thread
	if err := r.db.WithContext(ctx).First(&thread, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrThreadNotFound
		}
		return nil, err
	}
	return &thread, nil
}

func (r *threadRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Thread, error) {
	var threads []model.Thread
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&threads).Error
	if err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *threadRepository) UpdateCommentCount(ctx context.Context, id uuid.UUID, count int64) error {
	res := r.db.WithContext(ctx).Model(&model.Thread{}).
		Where("id = ?", id).
		Update("comment_count", count)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrThreadNotFound
	}
	return nil
}
