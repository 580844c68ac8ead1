package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finreview/internal/errors"
	"finreview/internal/model"
)

// InstitutionRepository defines persistence operations for financial
// institutions. UpdateRating is only called by the aggregate recalculator.
type InstitutionRepository interface {
	Create(ctx context.Context, institution *model.FinancialInstitution) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.FinancialInstitution, error)
	List(ctx context.Context) ([]model.FinancialInstitution, error)
	Update(ctx context.Context, institution *model.FinancialInstitution) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateRating(ctx context.Context, id uuid.UUID, avgRating decimal.Decimal, reviewCount int64) error
}

type institutionRepository struct {
	db *gorm.DB
}

// NewInstitutionRepository builds a GORM-backed repository.
func NewInstitutionRepository(db *gorm.DB) InstitutionRepository {
	return &institutionRepository{db: db}
}

func (r *institutionRepository) Create(ctx context.Context, institution *model.FinancialInstitution) error {
	return r.db.WithContext(ctx).Create(institution).Error
}

func (r *institutionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FinancialInstitution, error) {
	var institution model.FinancialInstitution
	if err := r.db.WithContext(ctx).First(&institution, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrInstitutionNotFound
		}
		return nil, err
	}
	return &institution, nil
}

func (r *institutionRepository) List(ctx context.Context) ([]model.FinancialInstitution, error) {
	var institutions []model.FinancialInstitution
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&institutions).Error; err != nil {
		return nil, err
	}
	return institutions, nil
}

func (r *institutionRepository) Update(ctx context.Context, institution *model.FinancialInstitution) error {
	return r.db.WithContext(ctx).Save(institution).Error
}

func (r *institutionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.FinancialInstitution{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrInstitutionNotFound
	}
	return nil
}

// UpdateRating writes the derived rating columns without touching the rest of
// the row.
func (r *institutionRepository) UpdateRating(ctx context.Context, id uuid.UUID, avgRating decimal.Decimal, reviewCount int64) error {
	res := r.db.WithContext(ctx).Model(&model.FinancialInstitution{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"avg_rating":   avgRating,
			"review_count": reviewCount,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrInstitutionNotFound
	}
	return nil
}
