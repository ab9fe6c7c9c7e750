package readstore

import (
	"context"
	"log/slog"

	"groundio/internal/domain/venue"
	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/internal/infra/repository/converter"
	"groundio/internal/pkg/pgconv"
	"groundio/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VenueViewQueries interface {
	ListActiveVenues(ctx context.Context, db db.DBTX, category pgtype.Text) ([]query.VenueRow, error)
	GetVenueByID(ctx context.Context, db db.DBTX, id uuid.UUID) (query.VenueRow, error)
	ListVenuesByMerchant(ctx context.Context, db db.DBTX, merchantID uuid.UUID) ([]query.VenueRow, error)
}

type VenueReadStore struct {
	queries VenueViewQueries
	db      db.DBTX
}

func NewVenueReadStore(queries VenueViewQueries, db db.DBTX) *VenueReadStore {
	return &VenueReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VenueReadStore) ListActive(ctx context.Context, category *string) ([]*queries.VenueView, error) {
	rows, err := r.queries.ListActiveVenues(ctx, r.db, pgconv.StringPtrToPgtype(category))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active venues", err)
	}
	return toVenueViews(ctx, rows), nil
}

func (r *VenueReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VenueView, error) {
	row, err := r.queries.GetVenueByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get venue view by id", err)
	}
	return ToVenueView(row)
}

func (r *VenueReadStore) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*queries.VenueView, error) {
	rows, err := r.queries.ListVenuesByMerchant(ctx, r.db, merchantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list merchant venues", err)
	}
	return toVenueViews(ctx, rows), nil
}

// toVenueViews skips rows that no longer decode rather than failing the listing.
func toVenueViews(ctx context.Context, rows []query.VenueRow) []*queries.VenueView {
	out := make([]*queries.VenueView, 0, len(rows))
	for _, row := range rows {
		v, err := ToVenueView(row)
		if err != nil {
			slog.WarnContext(ctx, "skipping undecodable venue row", "venue_id", row.ID, "error", err.Error())
			continue
		}
		out = append(out, v)
	}
	return out
}

func ToVenueView(row query.VenueRow) (*queries.VenueView, error) {
	days, err := converter.DecodeAvailabilityJSON(row.Availability)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode venue availability", err, infra.KindDBFailure)
	}
	availability := make(map[string]queries.DayScheduleView, len(days))
	for name, d := range days {
		availability[name] = queries.DayScheduleView{Open: d.Open, Slots: d.Slots}
	}

	loc, err := converter.LocationFromRow(row.LocationKind, row.LocationText, row.LocationAddress, row.LocationCity)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode venue location", err, infra.KindDBFailure)
	}

	rating := pgconv.Float64PtrFromPgtype(row.Rating)
	display := venue.DisplayRatingFallback
	if rating != nil {
		display = *rating
	}

	images := row.Images
	if images == nil {
		images = []string{}
	}

	return &queries.VenueView{
		ID:         row.ID,
		MerchantID: row.MerchantID,
		Name:       row.Name,
		Category:   row.Category,
		Location: queries.LocationView{
			Kind:    row.LocationKind,
			Text:    loc.Text(),
			Address: loc.Address(),
			City:    loc.City(),
		},
		LocationDisplay: loc.Display(),
		PricePerHour:    row.PricePerHour,
		Rating:          rating,
		DisplayRating:   display,
		Images:          images,
		IsActive:        row.IsActive,
		Availability:    availability,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}
