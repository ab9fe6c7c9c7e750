package query

import (
	"context"
	"time"

	"groundio/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	UserName  string    `db:"user_name"`
	VenueID   uuid.UUID `db:"venue_id"`
	BookingID uuid.UUID `db:"booking_id"`
	Rating    int32     `db:"rating"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}

type CreateReviewParams struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	VenueID   uuid.UUID
	BookingID uuid.UUID
	Rating    int32
	Comment   string
	CreatedAt time.Time
}

const createReview = `INSERT INTO reviews (id, user_id, venue_id, booking_id, rating, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`

func (q *Queries) CreateReview(ctx context.Context, dbtx db.DBTX, arg CreateReviewParams) error {
	_, err := exec(ctx, dbtx, createReview,
		arg.ID, arg.UserID, arg.VenueID, arg.BookingID, arg.Rating, arg.Comment, arg.CreatedAt)
	return err
}

type ListReviewsByVenueParams struct {
	VenueID       uuid.UUID
	LastCreatedAt pgtype.Timestamptz
	LastID        uuid.UUID
	Limit         int32
}

const listReviewsByVenue = `SELECT r.id, r.user_id, u.display_name AS user_name, r.venue_id, r.booking_id,
	r.rating, r.comment, r.created_at
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.venue_id = $1
  AND ($2::timestamptz IS NULL OR (r.created_at, r.id) < ($2, $3::uuid))
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

func (q *Queries) ListReviewsByVenue(ctx context.Context, dbtx db.DBTX, arg ListReviewsByVenueParams) ([]ReviewRow, error) {
	return collect[ReviewRow](ctx, dbtx, listReviewsByVenue, arg.VenueID, arg.LastCreatedAt, arg.LastID, arg.Limit)
}

const reviewExistsForBooking = `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`

func (q *Queries) ReviewExistsForBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) (bool, error) {
	var ok bool
	err := dbtx.QueryRow(ctx, reviewExistsForBooking, bookingID).Scan(&ok)
	return ok, err
}
