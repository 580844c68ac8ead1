package service

import (
	"context"

	"github.com/google/uuid"

	"finreview/internal/model"
	"finreview/internal/repository"
)

// ThreadService handles forum threads.
type ThreadService interface {
	Create(ctx context.Context, categoryID, authorID uuid.UUID, title string) (*model.Thread, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Thread, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Thread, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}

type threadService struct {
	threads    repository.ThreadRepository
	categories repository.CategoryRepository
}

// NewThreadService creates a new thread service.
func NewThreadService(threads repository.ThreadRepository, categories repository.CategoryRepository) ThreadService {
	return &threadService{threads: threads, categories: categories}
}

func (s *threadService) Create(ctx context.Context, categoryID, authorID uuid.UUID, title string) (*model.Thread, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	thread := &model.Thread{
		ID:         uuid.New(),
		CategoryID: categoryID,
		AuthorID:   authorID,
		Title:      title,
	}
	if err := s.threads.Create(ctx, thread); err != nil {
		return nil, err
	}
	return thread, nil
}

func (s *threadService) Get(ctx context.Context, id uuid.UUID) (*model.Thread, error) {
	return s.threads.FindByID(ctx, id)
}

func (s *threadService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Thread, error) {
	return s.threads.ListByCategory(ctx, categoryID)
}

func (s *threadService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}
