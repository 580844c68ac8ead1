package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finreview/internal/cache"
	"finreview/internal/repository"
)

// ErrAggregateStale signals that a content mutation committed but the
// follow-up counter recompute failed. The mutation is not rolled back; the
// displayed counter may lag until the next recompute.
var ErrAggregateStale = errors.New("aggregate recompute failed, counters may be stale")

// RatingSummary is the recomputed rating state of one institution.
type RatingSummary struct {
	AvgRating   decimal.Decimal `json:"avg_rating"`
	ReviewCount int64           `json:"review_count"`
}

// Recalculator keeps denormalized counters equal to a deterministic
// aggregation over live source rows. Counters are always recomputed from the
// source table rather than incremented, so partial failures and concurrent
// writers cannot make them drift. Recomputation for a given target is
// serialized through a per-target mutex so two concurrent recomputes cannot
// write stale results out of order.
type Recalculator struct {
	reviews      repository.ReviewRepository
	comments     repository.CommentRepository
	votes        repository.HelpfulRepository
	institutions repository.InstitutionRepository
	threads      repository.ThreadRepository
	cache        *cache.Client

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRecalculator creates the aggregate recalculator.
func NewRecalculator(
	reviews repository.ReviewRepository,
	comments repository.CommentRepository,
	votes repository.HelpfulRepository,
	institutions repository.InstitutionRepository,
	threads repository.ThreadRepository,
	cache *cache.Client,
) *Recalculator {
	return &Recalculator{
		reviews:      reviews,
		comments:     comments,
		votes:        votes,
		institutions: institutions,
		threads:      threads,
		cache:        cache,
		locks:        make(map[string]*sync.Mutex),
	}
}

func (r *Recalculator) targetLock(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}

// InstitutionRating recomputes avg_rating and review_count for an institution
// from its live reviews. Zero reviews yield a zero summary.
func (r *Recalculator) InstitutionRating(ctx context.Context, institutionID uuid.UUID) (*RatingSummary, error) {
	l := r.targetLock("institution:" + institutionID.String())
	l.Lock()
	defer l.Unlock()

	agg, err := r.reviews.AggregateByInstitution(ctx, institutionID)
	if err != nil {
		return nil, err
	}

	avg := decimal.NewFromFloat(agg.AvgRating).Round(1)
	if err := r.institutions.UpdateRating(ctx, institutionID, avg, agg.ReviewCount); err != nil {
		return nil, err
	}

	// Drop the cached institution so the next read sees fresh counters.
	_ = r.cache.Delete(ctx, institutionCacheKey(institutionID))

	return &RatingSummary{AvgRating: avg, ReviewCount: agg.ReviewCount}, nil
}

// ThreadCommentCount recomputes comment_count for a thread from its live
// comments and returns the new count.
func (r *Recalculator) ThreadCommentCount(ctx context.Context, threadID uuid.UUID) (int64, error) {
	l := r.targetLock("thread:" + threadID.String())
	l.Lock()
	defer l.Unlock()

	count, err := r.comments.CountByThread(ctx, threadID)
	if err != nil {
		return 0, err
	}
	if err := r.threads.UpdateCommentCount(ctx, threadID, count); err != nil {
		return 0, err
	}
	return count, nil
}

// CommentHelpfulCount recomputes helpful_count for a comment from its live
// votes and returns the new count.
func (r *Recalculator) CommentHelpfulCount(ctx context.Context, commentID uuid.UUID) (int64, error) {
	l := r.targetLock("comment:" + commentID.String())
	l.Lock()
	defer l.Unlock()

	count, err := r.votes.CountByComment(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if err := r.comments.UpdateHelpfulCount(ctx, commentID, count); err != nil {
		return 0, err
	}
	return count, nil
}
