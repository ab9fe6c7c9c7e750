package repository

import (
	"context"

	"groundio/internal/domain/venue"
	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type VenueWriteQueries interface {
	GetVenueByIDForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (query.VenueRow, error)
	CreateVenue(ctx context.Context, db db.DBTX, r query.VenueRow) error
	UpdateVenue(ctx context.Context, db db.DBTX, r query.VenueRow) (int64, error)
	DeleteVenue(ctx context.Context, db db.DBTX, id uuid.UUID) (int64, error)
	RecalculateVenueRating(ctx context.Context, db db.DBTX, venueID uuid.UUID) (int64, error)
}

type VenueRepository struct {
	queries VenueWriteQueries
	db      db.DBTX
}

func NewVenueRepository(queries VenueWriteQueries, db db.DBTX) *VenueRepository {
	return &VenueRepository{
		queries: queries,
		db:      db,
	}
}

// FindByID locks the row for the rest of the transaction.
func (r *VenueRepository) FindByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error) {
	row, err := r.queries.GetVenueByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get venue", err)
	}
	v, err := converter.VenueFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt venue row", err, infra.KindDBFailure)
	}
	return v, nil
}

func (r *VenueRepository) Create(ctx context.Context, tx db.DBTX, v *venue.Venue) error {
	row, err := converter.VenueToRow(v)
	if err != nil {
		return infra.WrapRepoErr("failed to encode venue", err, infra.KindDBFailure)
	}
	if err := r.queries.CreateVenue(ctx, tx, row); err != nil {
		return infra.WrapRepoErr("failed to create venue", err)
	}
	return nil
}

func (r *VenueRepository) Update(ctx context.Context, tx db.DBTX, v *venue.Venue) error {
	row, err := converter.VenueToRow(v)
	if err != nil {
		return infra.WrapRepoErr("failed to encode venue", err, infra.KindDBFailure)
	}
	n, err := r.queries.UpdateVenue(ctx, tx, row)
	if err != nil {
		return infra.WrapRepoErr("failed to update venue", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VenueRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteVenue(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete venue", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VenueRepository) RecalculateRating(ctx context.Context, tx db.DBTX, venueID uuid.UUID) error {
	n, err := r.queries.RecalculateVenueRating(ctx, tx, venueID)
	if err != nil {
		return infra.WrapRepoErr("failed to recalculate venue rating", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}
