package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"finreview/internal/model"
	"finreview/internal/repository"
)

// MockReviewRepository is a mock implementation of ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByInstitution(ctx context.Context, institutionID uuid.UUID) ([]model.Review, error) {
	args := m.Called(ctx, institutionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) AggregateByInstitution(ctx context.Context, institutionID uuid.UUID) (*repository.RatingAggregate, error) {
	args := m.Called(ctx, institutionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RatingAggregate), args.Error(1)
}

// MockInstitutionRepository is a mock implementation of InstitutionRepository.
type MockInstitutionRepository struct {
	mock.Mock
}

func (m *MockInstitutionRepository) Create(ctx context.Context, institution *model.FinancialInstitution) error {
	args := m.Called(ctx, institution)
	return args.Error(0)
}

func (m *MockInstitutionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FinancialInstitution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FinancialInstitution), args.Error(1)
}

func (m *MockInstitutionRepository) List(ctx context.Context) ([]model.FinancialInstitution, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FinancialInstitution), args.Error(1)
}

func (m *MockInstitutionRepository) Update(ctx context.Context, institution *model.FinancialInstitution) error {
	args := m.Called(ctx, institution)
	return args.Error(0)
}

func (m *MockInstitutionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInstitutionRepository) UpdateRating(ctx context.Context, id uuid.UUID, avgRating decimal.Decimal, reviewCount int64) error {
	args := m.Called(ctx, id, avgRating, reviewCount)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByThread(ctx context.Context, threadID uuid.UUID) ([]model.Comment, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) CountByThread(ctx context.Context, threadID uuid.UUID) (int64, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) UpdateHelpfulCount(ctx context.Context, id uuid.UUID, count int64) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}

// MockThreadRepository is a mock implementation of ThreadRepository.
type MockThreadRepository struct {
	mock.Mock
}

func (m *MockThreadRepository) Create(ctx context.Context, thread *model.Thread) error {
	args := m.Called(ctx, thread)
	return args.Error(0)
}

func (m *MockThreadRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Thread, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Thread), args.Error(1)
}

func (m *MockThreadRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Thread, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Thread), args.Error(1)
}

func (m *MockThreadRepository) UpdateCommentCount(ctx context.Context, id uuid.UUID, count int64) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}

// MockHelpfulRepository is a mock implementation of HelpfulRepository.
type MockHelpfulRepository struct {
	mock.Mock
}

func (m *MockHelpfulRepository) Create(ctx context.Context, vote *model.HelpfulVote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockHelpfulRepository) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *MockHelpfulRepository) CountByComment(ctx context.Context, commentID uuid.UUID) (int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Error(1)
}

func decimalEq(want string) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString(want))
	})
}

func newTestRecalculator(
	reviews *MockReviewRepository,
	comments *MockCommentRepository,
	votes *MockHelpfulRepository,
	institutions *MockInstitutionRepository,
	threads *MockThreadRepository,
) *Recalculator {
	return NewRecalculator(reviews, comments, votes, institutions, threads, nil)
}

func TestRecalculator_InstitutionRating(t *testing.T) {
	institutionID := uuid.New()

	tests := []struct {
		name          string
		aggregate     *repository.RatingAggregate
		expectedAvg   string
		expectedCount int64
	}{
		{
			name:          "whole average from ratings 4, 5 and 3",
			aggregate:     &repository.RatingAggregate{AvgRating: 4.0, ReviewCount: 3},
			expectedAvg:   "4",
			expectedCount: 3,
		},
		{
			name:          "fractional average rounds to one decimal",
			aggregate:     &repository.RatingAggregate{AvgRating: 4.3333, ReviewCount: 3},
			expectedAvg:   "4.3",
			expectedCount: 3,
		},
		{
			name:          "half average survives rounding",
			aggregate:     &repository.RatingAggregate{AvgRating: 4.5, ReviewCount: 2},
			expectedAvg:   "4.5",
			expectedCount: 2,
		},
		{
			name:          "zero reviews yield zero summary",
			aggregate:     &repository.RatingAggregate{AvgRating: 0, ReviewCount: 0},
			expectedAvg:   "0",
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReviews := new(MockReviewRepository)
			mockInstitutions := new(MockInstitutionRepository)
			mockReviews.On("AggregateByInstitution", mock.Anything, institutionID).Return(tt.aggregate, nil)
			mockInstitutions.On("UpdateRating", mock.Anything, institutionID, decimalEq(tt.expectedAvg), tt.expectedCount).Return(nil)

			recalc := newTestRecalculator(mockReviews, new(MockCommentRepository), new(MockHelpfulRepository), mockInstitutions, new(MockThreadRepository))
			summary, err := recalc.InstitutionRating(context.Background(), institutionID)

			assert.NoError(t, err)
			assert.True(t, summary.AvgRating.Equal(decimal.RequireFromString(tt.expectedAvg)))
			assert.Equal(t, tt.expectedCount, summary.ReviewCount)
			mockReviews.AssertExpectations(t)
			mockInstitutions.AssertExpectations(t)
		})
	}
}

func TestRecalculator_InstitutionRating_AggregateError(t *testing.T) {
	institutionID := uuid.New()
	mockReviews := new(MockReviewRepository)
	mockReviews.On("AggregateByInstitution", mock.Anything, institutionID).Return(nil, assert.AnError)

	recalc := newTestRecalculator(mockReviews, new(MockCommentRepository), new(MockHelpfulRepository), new(MockInstitutionRepository), new(MockThreadRepository))
	summary, err := recalc.InstitutionRating(context.Background(), institutionID)

	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestRecalculator_InstitutionRating_WriteError(t *testing.T) {
	institutionID := uuid.New()
	mockReviews := new(MockReviewRepository)
	mockInstitutions := new(MockInstitutionRepository)
	mockReviews.On("AggregateByInstitution", mock.Anything, institutionID).Return(&repository.RatingAggregate{AvgRating: 4, ReviewCount: 1}, nil)
	mockInstitutions.On("UpdateRating", mock.Anything, institutionID, mock.Anything, int64(1)).Return(assert.AnError)

	recalc := newTestRecalculator(mockReviews, new(MockCommentRepository), new(MockHelpfulRepository), mockInstitutions, new(MockThreadRepository))
	summary, err := recalc.InstitutionRating(context.Background(), institutionID)

	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestRecalculator_ThreadCommentCount(t *testing.T) {
	threadID := uuid.New()
	mockComments := new(MockCommentRepository)
	mockThreads := new(MockThreadRepository)
	mockComments.On("CountByThread", mock.Anything, threadID).Return(int64(2), nil)
	mockThreads.On("UpdateCommentCount", mock.Anything, threadID, int64(2)).Return(nil)

	recalc := newTestRecalculator(new(MockReviewRepository), mockComments, new(MockHelpfulRepository), new(MockInstitutionRepository), mockThreads)
	count, err := recalc.ThreadCommentCount(context.Background(), threadID)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	mockComments.AssertExpectations(t)
	mockThreads.AssertExpectations(t)
}

func TestRecalculator_CommentHelpfulCount(t *testing.T) {
	commentID := uuid.New()
	mockVotes := new(MockHelpfulRepository)
	mockComments := new(MockCommentRepository)
	mockVotes.On("CountByComment", mock.Anything, commentID).Return(int64(5), nil)
	mockComments.On("UpdateHelpfulCount", mock.Anything, commentID, int64(5)).Return(nil)

	recalc := newTestRecalculator(new(MockReviewRepository), mockComments, mockVotes, new(MockInstitutionRepository), new(MockThreadRepository))
	count, err := recalc.CommentHelpfulCount(context.Background(), commentID)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	mockVotes.AssertExpectations(t)
	mockComments.AssertExpectations(t)
}
