package repository

//go:generate go run go.uber.org/mock/mockgen -destination=../../../tests/mock/repository/repository.go -package=repositorymock groundio/internal/infra/repository ReviewWriteQueries,BookingWriteQueries

import (
	"context"

	"groundio/internal/domain/review"
	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db db.DBTX, arg query.CreateReviewParams) error
	ReviewExistsForBooking(ctx context.Context, db db.DBTX, bookingID uuid.UUID) (bool, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      db.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db db.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	params := converter.ReviewToCreateParams(rev)
	if err := r.queries.CreateReview(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	ok, err := r.queries.ReviewExistsForBooking(ctx, r.db, bookingID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return ok, nil
}
