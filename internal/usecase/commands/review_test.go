//go:build unit

package commands

import (
	"context"
	"testing"

	"groundio/internal/domain/booking"
	"groundio/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	newFixture := func(t *testing.T, status booking.Status) (*bookingFixture, ReviewCommands, uuid.UUID) {
		f := newBookingFixture(t)
		id := f.seed(t, "2025-05-30", status)
		return f, NewReviewCommands(f.uow, f.clock), id
	}

	t.Run("customer reviews a completed booking", func(t *testing.T) {
		f, cmds, bookingID := newFixture(t, booking.StatusCompleted)

		res, err := cmds.CreateReview(ctx, f.customer.ID(), CreateReviewInput{
			BookingID: bookingID,
			Rating:    5,
			Comment:   "Great turf, well lit at night.",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, res.ReviewID)
		assert.Equal(t, f.venue.ID(), res.VenueID)
		assert.Equal(t, res.ReviewID, f.uow.reviews[bookingID])
		assert.Equal(t, []uuid.UUID{f.venue.ID()}, f.uow.ratingUpdates, "rating must be recomputed with the insert")
		assert.Equal(t, []string{"lock venue", "insert review", "recalculate rating"}, f.uow.calls)
	})

	t.Run("second review for the same booking", func(t *testing.T) {
		f, cmds, bookingID := newFixture(t, booking.StatusCompleted)
		in := CreateReviewInput{BookingID: bookingID, Rating: 4, Comment: "Good"}

		_, err := cmds.CreateReview(ctx, f.customer.ID(), in)
		require.NoError(t, err)

		_, err = cmds.CreateReview(ctx, f.customer.ID(), in)
		assert.True(t, errs.Is(err, errs.ErrDuplicateReview), "got %v", err)
		assert.Len(t, f.uow.ratingUpdates, 1)
	})

	cases := []struct {
		name    string
		status  booking.Status
		author  func(f *bookingFixture) uuid.UUID
		in      func(id uuid.UUID) CreateReviewInput
		wantErr error
	}{
		{
			name:    "booking not completed",
			status:  booking.StatusConfirmed,
			author:  func(f *bookingFixture) uuid.UUID { return f.customer.ID() },
			in:      func(id uuid.UUID) CreateReviewInput { return CreateReviewInput{BookingID: id, Rating: 4, Comment: "ok"} },
			wantErr: errs.ErrReviewNotAllowed,
		},
		{
			name:    "someone else's booking",
			status:  booking.StatusCompleted,
			author:  func(*bookingFixture) uuid.UUID { return uuid.New() },
			in:      func(id uuid.UUID) CreateReviewInput { return CreateReviewInput{BookingID: id, Rating: 4, Comment: "ok"} },
			wantErr: errs.ErrReviewNotAllowed,
		},
		{
			name:    "rating out of range",
			status:  booking.StatusCompleted,
			author:  func(f *bookingFixture) uuid.UUID { return f.customer.ID() },
			in:      func(id uuid.UUID) CreateReviewInput { return CreateReviewInput{BookingID: id, Rating: 6, Comment: "ok"} },
			wantErr: errs.ErrDomainValidation,
		},
		{
			name:    "empty comment",
			status:  booking.StatusCompleted,
			author:  func(f *bookingFixture) uuid.UUID { return f.customer.ID() },
			in:      func(id uuid.UUID) CreateReviewInput { return CreateReviewInput{BookingID: id, Rating: 3, Comment: "  "} },
			wantErr: errs.ErrDomainValidation,
		},
		{
			name:    "unknown booking",
			status:  booking.StatusCompleted,
			author:  func(f *bookingFixture) uuid.UUID { return f.customer.ID() },
			in:      func(uuid.UUID) CreateReviewInput { return CreateReviewInput{BookingID: uuid.New(), Rating: 3, Comment: "ok"} },
			wantErr: errs.ErrBookingNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, cmds, bookingID := newFixture(t, tc.status)

			_, err := cmds.CreateReview(ctx, tc.author(f), tc.in(bookingID))
			assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
			assert.Empty(t, f.uow.reviews)
			assert.Empty(t, f.uow.ratingUpdates)
		})
	}

	t.Run("venue deleted since the booking", func(t *testing.T) {
		f, cmds, bookingID := newFixture(t, booking.StatusCompleted)
		row := f.uow.bookings[bookingID]
		row.VenueID = pgtype.UUID{}
		f.uow.bookings[bookingID] = row

		_, err := cmds.CreateReview(ctx, f.customer.ID(), CreateReviewInput{BookingID: bookingID, Rating: 4, Comment: "ok"})
		assert.True(t, errs.Is(err, errs.ErrReviewNotAllowed), "got %v", err)
	})

	t.Run("venue removed between booking read and lock", func(t *testing.T) {
		f, cmds, bookingID := newFixture(t, booking.StatusCompleted)
		delete(f.uow.venues, f.venue.ID())

		_, err := cmds.CreateReview(ctx, f.customer.ID(), CreateReviewInput{BookingID: bookingID, Rating: 4, Comment: "ok"})
		assert.True(t, errs.Is(err, errs.ErrReviewNotAllowed), "got %v", err)
		assert.Empty(t, f.uow.reviews)
	})
}
