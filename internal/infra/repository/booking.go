package repository

import (
	"context"
	"time"

	"groundio/internal/domain/booking"
	"groundio/internal/domain/slot"
	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/internal/infra/repository/converter"
	"groundio/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	GetBookingByID(ctx context.Context, db db.DBTX, id uuid.UUID) (query.BookingRow, error)
	ListHeldSlots(ctx context.Context, db db.DBTX, venueID uuid.UUID, date pgtype.Date) ([]string, error)
	CreateBooking(ctx context.Context, db db.DBTX, r query.BookingRow) error
	UpdateBookingStatus(ctx context.Context, db db.DBTX, id uuid.UUID, status string, at time.Time, from []string) (int64, error)
	CountUpcomingBookingsForVenue(ctx context.Context, db db.DBTX, venueID uuid.UUID, from pgtype.Date) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      db.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db db.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) HeldSlots(ctx context.Context, venueID uuid.UUID, date booking.Date) ([]slot.Label, error) {
	held, err := r.queries.ListHeldSlots(ctx, r.db, venueID, pgconv.DateToPgtype(date.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list held slots", err)
	}
	out := make([]slot.Label, len(held))
	for i, h := range held {
		out[i] = slot.Label(h)
	}
	return out, nil
}

// Create surfaces a lost race on the live-slot index as KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToRow(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking, from ...booking.Status) error {
	states := make([]string, len(from))
	for i, s := range from {
		states[i] = s.String()
	}
	n, err := r.queries.UpdateBookingStatus(ctx, tx, b.ID(), b.Status().String(), b.UpdatedAt(), states)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) CountUpcomingForVenue(ctx context.Context, tx db.DBTX, venueID uuid.UUID, from booking.Date) (int64, error) {
	n, err := r.queries.CountUpcomingBookingsForVenue(ctx, tx, venueID, pgconv.DateToPgtype(from.Time()))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count upcoming bookings", err)
	}
	return n, nil
}
