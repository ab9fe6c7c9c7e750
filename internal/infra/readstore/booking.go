package readstore

import (
	"context"
	"sort"

	"groundio/internal/domain/booking"
	"groundio/internal/domain/slot"
	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/internal/pkg/pgconv"
	"groundio/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	ListHeldSlots(ctx context.Context, db db.DBTX, venueID uuid.UUID, date pgtype.Date) ([]string, error)
	GetBookingByID(ctx context.Context, db db.DBTX, id uuid.UUID) (query.BookingRow, error)
	ListBookingsByCustomer(ctx context.Context, db db.DBTX, arg query.ListBookingsByCustomerParams) ([]query.BookingRow, error)
	ListBookingsByVenue(ctx context.Context, db db.DBTX, venueID uuid.UUID, date pgtype.Date) ([]query.BookingRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      db.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db db.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) HeldSlots(ctx context.Context, venueID uuid.UUID, date booking.Date) ([]string, error) {
	held, err := r.queries.ListHeldSlots(ctx, r.db, venueID, pgconv.DateToPgtype(date.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list held slots", err)
	}
	return held, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, status *string, after *queries.Keyset, limit int32) ([]*queries.BookingView, error) {
	params := query.ListBookingsByCustomerParams{
		CustomerID: customerID,
		Status:     pgconv.StringPtrToPgtype(status),
		Limit:      limit,
	}
	if after != nil {
		params.LastCreatedAt = pgtype.Timestamptz{Time: after.CreatedAt, Valid: true}
		params.LastID = after.ID
	}

	rows, err := r.queries.ListBookingsByCustomer(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer bookings", err)
	}
	return toBookingViews(rows), nil
}

// ListByVenue orders by date, then by slot start hour.
func (r *BookingReadStore) ListByVenue(ctx context.Context, venueID uuid.UUID, date *booking.Date) ([]*queries.BookingView, error) {
	var day pgtype.Date
	if date != nil {
		day = pgconv.DateToPgtype(date.Time())
	}
	rows, err := r.queries.ListBookingsByVenue(ctx, r.db, venueID, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venue bookings", err)
	}

	views := toBookingViews(rows)
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Date != views[j].Date {
			return views[i].Date < views[j].Date
		}
		return slot.Label(views[i].TimeSlot).Hour() < slot.Label(views[j].TimeSlot).Hour()
	})
	return views, nil
}

func toBookingViews(rows []query.BookingRow) []*queries.BookingView {
	out := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		out[i] = toBookingView(row)
	}
	return out
}

func toBookingView(row query.BookingRow) *queries.BookingView {
	return &queries.BookingView{
		ID:              row.ID,
		VenueID:         pgconv.UUIDPtrFromPgtype(row.VenueID),
		VenueMerchantID: row.VenueMerchantID,
		VenueName:       row.VenueName,
		VenueLocation:   row.VenueLocation,
		VenueImage:      row.VenueImage,
		CustomerID:      row.CustomerID,
		CustomerName:    row.CustomerName,
		CustomerEmail:   row.CustomerEmail,
		Date:            booking.DateOf(pgconv.DateFromPgtype(row.BookingDate)).String(),
		TimeSlot:        row.TimeSlot,
		Price:           row.Price,
		Status:          row.Status,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
