package query

import (
	"context"
	"time"

	"groundio/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRow struct {
	ID              uuid.UUID   `db:"id"`
	VenueID         pgtype.UUID `db:"venue_id"`
	VenueMerchantID uuid.UUID   `db:"venue_merchant_id"`
	VenueName       string      `db:"venue_name"`
	VenueLocation   string      `db:"venue_location"`
	VenueImage      string      `db:"venue_image"`
	CustomerID      uuid.UUID   `db:"customer_id"`
	CustomerName    string      `db:"customer_name"`
	CustomerEmail   string      `db:"customer_email"`
	BookingDate     pgtype.Date `db:"booking_date"`
	TimeSlot        string      `db:"time_slot"`
	Price           int64       `db:"price"`
	Status          string      `db:"status"`
	CreatedAt       time.Time   `db:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at"`
}

const bookingColumns = `id, venue_id, venue_merchant_id, venue_name, venue_location, venue_image,
	customer_id, customer_name, customer_email, booking_date, time_slot, price, status,
	created_at, updated_at`

const listHeldSlots = `SELECT time_slot
FROM bookings
WHERE venue_id = $1 AND booking_date = $2 AND status <> 'cancelled'`

func (q *Queries) ListHeldSlots(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID, date pgtype.Date) ([]string, error) {
	rows, err := dbtx.Query(ctx, listHeldSlots, venueID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

const getBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (BookingRow, error) {
	return collectOne[BookingRow](ctx, dbtx, getBookingByID, id)
}

type ListBookingsByCustomerParams struct {
	CustomerID    uuid.UUID
	Status        pgtype.Text
	LastCreatedAt pgtype.Timestamptz
	LastID        uuid.UUID
	Limit         int32
}

const listBookingsByCustomer = `SELECT ` + bookingColumns + `
FROM bookings
WHERE customer_id = $1
  AND ($2::text IS NULL OR status = $2)
  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $5`

func (q *Queries) ListBookingsByCustomer(ctx context.Context, dbtx db.DBTX, arg ListBookingsByCustomerParams) ([]BookingRow, error) {
	return collect[BookingRow](ctx, dbtx, listBookingsByCustomer,
		arg.CustomerID, arg.Status, arg.LastCreatedAt, arg.LastID, arg.Limit)
}

const listBookingsByVenue = `SELECT ` + bookingColumns + `
FROM bookings
WHERE venue_id = $1 AND ($2::date IS NULL OR booking_date = $2)
ORDER BY booking_date, created_at`

func (q *Queries) ListBookingsByVenue(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID, date pgtype.Date) ([]BookingRow, error) {
	return collect[BookingRow](ctx, dbtx, listBookingsByVenue, venueID, date)
}

const createBooking = `INSERT INTO bookings (
	id, venue_id, venue_merchant_id, venue_name, venue_location, venue_image,
	customer_id, customer_name, customer_email, booking_date, time_slot, price, status,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

func (q *Queries) CreateBooking(ctx context.Context, dbtx db.DBTX, r BookingRow) error {
	_, err := exec(ctx, dbtx, createBooking,
		r.ID, r.VenueID, r.VenueMerchantID, r.VenueName, r.VenueLocation, r.VenueImage,
		r.CustomerID, r.CustomerName, r.CustomerEmail, r.BookingDate, r.TimeSlot, r.Price, r.Status,
		r.CreatedAt, r.UpdatedAt)
	return err
}

const updateBookingStatus = `UPDATE bookings
SET status = $2, updated_at = $3
WHERE id = $1 AND status = ANY($4::text[])`

func (q *Queries) UpdateBookingStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status string, at time.Time, from []string) (int64, error) {
	return exec(ctx, dbtx, updateBookingStatus, id, status, at, from)
}

const countUpcomingBookingsForVenue = `SELECT count(*)
FROM bookings
WHERE venue_id = $1 AND booking_date >= $2 AND status IN ('pending', 'confirmed')`

func (q *Queries) CountUpcomingBookingsForVenue(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID, from pgtype.Date) (int64, error) {
	var n int64
	err := dbtx.QueryRow(ctx, countUpcomingBookingsForVenue, venueID, from).Scan(&n)
	return n, err
}
