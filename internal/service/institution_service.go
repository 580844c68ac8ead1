package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"finreview/internal/cache"
	"finreview/internal/model"
	"finreview/internal/repository"
)

const institutionCacheTTL = 5 * time.Minute

func institutionCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("institution:%s", id.String())
}

// InstitutionService exposes CRUD over financial institutions. Reads are
// cached; the derived rating columns are never writable through this service.
type InstitutionService interface {
	Create(ctx context.Context, institution *model.FinancialInstitution) (*model.FinancialInstitution, error)
	Get(ctx context.Context, id uuid.UUID) (*model.FinancialInstitution, error)
	List(ctx context.Context) ([]model.FinancialInstitution, error)
	Update(ctx context.Context, id uuid.UUID, fields InstitutionFields) (*model.FinancialInstitution, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InstitutionFields are the client-writable attributes of an institution.
type InstitutionFields struct {
	Name        string
	Type        model.InstitutionType
	Description string
	Location    string
	Website     string
	Logo        string
}

type institutionService struct {
	repo  repository.InstitutionRepository
	cache *cache.Client
}

// NewInstitutionService creates a new institution service.
func NewInstitutionService(repo repository.InstitutionRepository, cache *cache.Client) InstitutionService {
	return &institutionService{repo: repo, cache: cache}
}

func (s *institutionService) Create(ctx context.Context, institution *model.FinancialInstitution) (*model.FinancialInstitution, error) {
	if err := s.repo.Create(ctx, institution); err != nil {
		return nil, err
	}
	return institution, nil
}

// Get retrieves an institution by ID with caching.
func (s *institutionService) Get(ctx context.Context, id uuid.UUID) (*model.FinancialInstitution, error) {
	if data, _ := s.cache.Get(ctx, institutionCacheKey(id)); data != nil {
		var cached model.FinancialInstitution
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	institution, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(institution); err == nil {
		_ = s.cache.Set(ctx, institutionCacheKey(id), payload, institutionCacheTTL)
	}
	return institution, nil
}

func (s *institutionService) List(ctx context.Context) ([]model.FinancialInstitution, error) {
	return s.repo.List(ctx)
}

func (s *institutionService) Update(ctx context.Context, id uuid.UUID, fields InstitutionFields) (*model.FinancialInstitution, error) {
	institution, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	institution.Name = fields.Name
	institution.Type = fields.Type
	institution.Description = fields.Description
	institution.Location = fields.Location
	institution.Website = fields.Website
	if fields.Logo != "" {
		institution.Logo = fields.Logo
	}

	if err := s.repo.Update(ctx, institution); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, institutionCacheKey(id))
	return institution, nil
}

func (s *institutionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, institutionCacheKey(id))
	return nil
}
