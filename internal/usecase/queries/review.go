package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	ListByVenue(ctx context.Context, venueID uuid.UUID, after *Keyset, limit int32) ([]*ReviewView, error)
}

type ReviewQueries interface {
	ListByVenue(ctx context.Context, venueID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByVenue(ctx context.Context, venueID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	after, err := cursor.Keyset()
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	rows, err := q.repo.ListByVenue(ctx, venueID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	page, next := trimPage(rows, limit, func(r *ReviewView) (time.Time, uuid.UUID) {
		return r.CreatedAt, r.ID
	})
	return page, next, nil
}
