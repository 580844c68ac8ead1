package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "finreview/internal/errors"
	"finreview/internal/model"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func TestThreadService_Create(t *testing.T) {
	categoryID := uuid.New()
	authorID := uuid.New()

	t.Run("create in existing category", func(t *testing.T) {
		mockThreads := new(MockThreadRepository)
		mockCategories := new(MockCategoryRepository)
		mockCategories.On("FindByID", mock.Anything, categoryID).Return(&model.Category{ID: categoryID}, nil)
		mockThreads.On("Create", mock.Anything, mock.AnythingOfType("*model.Thread")).Return(nil)

		svc := NewThreadService(mockThreads, mockCategories)
		thread, err := svc.Create(context.Background(), categoryID, authorID, "Best savings rates right now?")

		assert.NoError(t, err)
		assert.Equal(t, categoryID, thread.CategoryID)
		assert.Equal(t, authorID, thread.AuthorID)
		mockThreads.AssertExpectations(t)
		mockCategories.AssertExpectations(t)
	})

	t.Run("unknown category", func(t *testing.T) {
		mockThreads := new(MockThreadRepository)
		mockCategories := new(MockCategoryRepository)
		mockCategories.On("FindByID", mock.Anything, categoryID).Return(nil, apperrors.ErrCategoryNotFound)

		svc := NewThreadService(mockThreads, mockCategories)
		thread, err := svc.Create(context.Background(), categoryID, authorID, "orphan")

		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
		assert.Nil(t, thread)
		mockThreads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestThreadService_ListCategories(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockCategories.On("List", mock.Anything).Return([]model.Category{
		{ID: uuid.New(), Name: "General Discussion"},
		{ID: uuid.New(), Name: "Investing"},
	}, nil)

	svc := NewThreadService(new(MockThreadRepository), mockCategories)
	categories, err := svc.ListCategories(context.Background())

	assert.NoError(t, err)
	assert.Len(t, categories, 2)
}
