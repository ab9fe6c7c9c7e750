package repository

import (
	"context"
	"time"

	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/internal/pkg/pgconv"
	"groundio/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	GetIdempotencyKey(ctx context.Context, db db.DBTX, key, userID uuid.UUID) (query.IdempotencyKeyRow, error)
	TryInsertIdempotencyKey(ctx context.Context, db db.DBTX, arg query.TryInsertIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db db.DBTX, key, userID, bookingID uuid.UUID) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      db.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, key, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &shared.IdempotencyRecord{
		Key:             row.Key,
		UserID:          row.UserID,
		Endpoint:        row.Endpoint,
		RequestHash:     row.RequestHash,
		ResultBookingID: pgconv.UUIDPtrFromPgtype(row.ResultBookingID),
		ExpiresAt:       row.ExpiresAt,
	}, nil
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx db.DBTX, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	params := query.TryInsertIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}

	n, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("idempotency key already claimed", nil, infra.KindConflict)
	}

	return nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, tx db.DBTX, key, userID, bookingID uuid.UUID) error {
	if _, err := r.queries.CompleteIdempotencyKey(ctx, tx, key, userID, bookingID); err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}
