package shared

import (
	"context"
	"time"

	"groundio/internal/domain/booking"
	"groundio/internal/domain/review"
	"groundio/internal/domain/slot"
	"groundio/internal/domain/user"
	"groundio/internal/domain/venue"
	"groundio/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Venues() VenueRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads rehydrates aggregates for the write side. Missing rows surface
// as infra.RepositoryError with KindNotFound.
type CommandReads interface {
	VenueByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error)
	HeldSlots(ctx context.Context, venueID uuid.UUID, date booking.Date) ([]slot.Label, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	// IdempotencyByKey returns nil when no live record exists.
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type VenueRepository interface {
	Create(ctx context.Context, tx db.DBTX, v *venue.Venue) error
	Update(ctx context.Context, tx db.DBTX, v *venue.Venue) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	RecalculateRating(ctx context.Context, tx db.DBTX, venueID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	// UpdateStatus moves a booking to b.Status() only while it is still in one of from.
	UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking, from ...booking.Status) error
	CountUpcomingForVenue(ctx context.Context, tx db.DBTX, venueID uuid.UUID, from booking.Date) (int64, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key; a live claim by another request yields KindConflict.
	TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	Complete(ctx context.Context, tx db.DBTX, key, userID, bookingID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx db.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, lastError string, retryAt time.Time, terminal bool) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error
	UpdateContact(ctx context.Context, tx db.DBTX, u *user.User) error
	UpsertBusinessProfile(ctx context.Context, tx db.DBTX, u *user.User) error
}
