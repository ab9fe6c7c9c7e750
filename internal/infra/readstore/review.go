package readstore

//go:generate go run go.uber.org/mock/mockgen -destination=../../../tests/mock/readstore/readstore.go -package=readstoremock groundio/internal/infra/readstore ReviewViewQueries,VenueViewQueries,BookingViewQueries

import (
	"context"

	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewViewQueries interface {
	ListReviewsByVenue(ctx context.Context, db db.DBTX, arg query.ListReviewsByVenueParams) ([]query.ReviewRow, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      db.DBTX
}

func NewReviewReadStore(queries ReviewViewQueries, db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) ListByVenue(ctx context.Context, venueID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ReviewView, error) {
	params := query.ListReviewsByVenueParams{
		VenueID: venueID,
		Limit:   limit,
	}
	if after != nil {
		params.LastCreatedAt = pgtype.Timestamptz{Time: after.CreatedAt, Valid: true}
		params.LastID = after.ID
	}

	rows, err := r.queries.ListReviewsByVenue(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venue reviews", err)
	}

	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewView{
			ID:        row.ID,
			UserID:    row.UserID,
			UserName:  row.UserName,
			VenueID:   row.VenueID,
			BookingID: row.BookingID,
			Rating:    row.Rating,
			Comment:   row.Comment,
			CreatedAt: row.CreatedAt,
		}
	}
	return result, nil
}
