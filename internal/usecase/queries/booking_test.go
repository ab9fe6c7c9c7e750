//go:build unit

package queries

import (
	"context"
	"testing"
	"time"

	"groundio/internal/domain/booking"
	"groundio/internal/domain/user"
	"groundio/internal/infra"
	"groundio/internal/pkg/errs"
	"groundio/internal/pkg/session"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingReadStore struct {
	mock.Mock
}

func (m *mockBookingReadStore) HeldSlots(ctx context.Context, venueID uuid.UUID, date booking.Date) ([]string, error) {
	args := m.Called(ctx, venueID, date)
	v, _ := args.Get(0).([]string)
	return v, args.Error(1)
}

func (m *mockBookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*BookingView)
	return v, args.Error(1)
}

func (m *mockBookingReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, status *string, after *Keyset, limit int32) ([]*BookingView, error) {
	args := m.Called(ctx, customerID, status, after, limit)
	v, _ := args.Get(0).([]*BookingView)
	return v, args.Error(1)
}

func (m *mockBookingReadStore) ListByVenue(ctx context.Context, venueID uuid.UUID, date *booking.Date) ([]*BookingView, error) {
	args := m.Called(ctx, venueID, date)
	v, _ := args.Get(0).([]*BookingView)
	return v, args.Error(1)
}

func TestListAvailableSlots(t *testing.T) {
	ctx := context.Background()
	v := venueView("Green Turf Arena", "Football", "Bengaluru")
	day, err := booking.ParseDate("2025-06-01")
	require.NoError(t, err)

	t.Run("fixed roster minus held slots", func(t *testing.T) {
		venues := new(mockVenueReadStore)
		bookings := new(mockBookingReadStore)
		venues.On("FindByID", ctx, v.ID).Return(v, nil)
		bookings.On("HeldSlots", ctx, v.ID, day).Return([]string{"10:00 AM", "08:00 PM"}, nil)

		got, err := NewBookingQueries(bookings, venues, booking.FixedRoster{}).ListAvailableSlots(ctx, v.ID, "2025-06-01")
		require.NoError(t, err)

		want := []string{
			"09:00 AM", "11:00 AM", "12:00 PM", "01:00 PM", "02:00 PM",
			"03:00 PM", "04:00 PM", "05:00 PM", "06:00 PM", "07:00 PM",
		}
		if diff := cmp.Diff(want, got.Available); diff != "" {
			t.Errorf("available mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, booking.PolicyFixed, got.Policy)
		require.Len(t, got.Slots, 12)
		assert.Equal(t, SlotView{Label: "10:00 AM", Available: false}, got.Slots[1])
		assert.Equal(t, SlotView{Label: "11:00 AM", Available: true}, got.Slots[2])
	})

	t.Run("weekly policy reads venue availability", func(t *testing.T) {
		weekly := venueView("Blue Court", "Badminton", "Pune")
		weekly.Availability = map[string]DayScheduleView{
			"sunday": {Open: true, Slots: []string{"06:00 PM", "07:00 PM", "bogus"}},
		}
		venues := new(mockVenueReadStore)
		bookings := new(mockBookingReadStore)
		venues.On("FindByID", ctx, weekly.ID).Return(weekly, nil)
		bookings.On("HeldSlots", ctx, weekly.ID, day).Return([]string{"07:00 PM"}, nil)

		got, err := NewBookingQueries(bookings, venues, booking.WeeklySchedule{}).ListAvailableSlots(ctx, weekly.ID, "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, []string{"06:00 PM"}, got.Available)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := NewBookingQueries(new(mockBookingReadStore), new(mockVenueReadStore), booking.FixedRoster{}).
			ListAvailableSlots(ctx, v.ID, "01/06/2025")
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("inactive venue", func(t *testing.T) {
		closed := venueView("Closed", "Tennis", "Pune")
		closed.IsActive = false
		venues := new(mockVenueReadStore)
		venues.On("FindByID", ctx, closed.ID).Return(closed, nil)

		_, err := NewBookingQueries(new(mockBookingReadStore), venues, booking.FixedRoster{}).
			ListAvailableSlots(ctx, closed.ID, "2025-06-01")
		assert.True(t, errs.Is(err, ErrVenueNotFound))
	})
}

func TestGetBooking(t *testing.T) {
	ctx := context.Background()
	view := &BookingView{ID: uuid.New(), CustomerID: uuid.New(), VenueMerchantID: uuid.New()}

	cases := []struct {
		name    string
		actor   uuid.UUID
		wantErr error
	}{
		{name: "customer", actor: view.CustomerID},
		{name: "venue merchant", actor: view.VenueMerchantID},
		{name: "stranger", actor: uuid.New(), wantErr: ErrBookingAccess},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bookings := new(mockBookingReadStore)
			bookings.On("FindByID", ctx, view.ID).Return(view, nil)

			got, err := NewBookingQueries(bookings, nil, booking.FixedRoster{}).
				GetBooking(ctx, view.ID, session.Principal{UserID: tc.actor, Role: user.RoleCustomer})
			if tc.wantErr != nil {
				assert.True(t, errs.Is(err, tc.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}

	t.Run("not found", func(t *testing.T) {
		bookings := new(mockBookingReadStore)
		id := uuid.New()
		bookings.On("FindByID", ctx, id).Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := NewBookingQueries(bookings, nil, booking.FixedRoster{}).GetBooking(ctx, id, session.Principal{UserID: uuid.New()})
		assert.True(t, errs.Is(err, ErrBookingNotFound))
	})
}

func TestListCustomerBookings(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := make([]*BookingView, 3)
	for i := range rows {
		rows[i] = &BookingView{ID: uuid.New(), CustomerID: customerID, CreatedAt: base.Add(-time.Duration(i) * time.Hour)}
	}

	t.Run("first page returns next cursor", func(t *testing.T) {
		bookings := new(mockBookingReadStore)
		bookings.On("ListByCustomer", ctx, customerID, (*string)(nil), (*Keyset)(nil), int32(3)).Return(rows, nil)

		page, next, err := NewBookingQueries(bookings, nil, booking.FixedRoster{}).
			ListCustomerBookings(ctx, customerID, BookingFilters{}, nil, 2)
		require.NoError(t, err)
		assert.Len(t, page, 2)
		require.NotNil(t, next)

		keyset, err := next.Keyset()
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, keyset.ID)
		assert.True(t, rows[1].CreatedAt.Equal(keyset.CreatedAt))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		bookings := new(mockBookingReadStore)
		bookings.On("ListByCustomer", ctx, customerID, mock.Anything, mock.Anything, int32(DefaultListLimit+1)).Return(rows, nil)

		page, next, err := NewBookingQueries(bookings, nil, booking.FixedRoster{}).
			ListCustomerBookings(ctx, customerID, BookingFilters{}, nil, 0)
		require.NoError(t, err)
		assert.Len(t, page, 3)
		assert.Nil(t, next)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		status := "refunded"
		_, _, err := NewBookingQueries(new(mockBookingReadStore), nil, booking.FixedRoster{}).
			ListCustomerBookings(ctx, customerID, BookingFilters{Status: &status}, nil, 10)
		assert.True(t, errs.Is(err, ErrInvalidFilter))
	})

	t.Run("garbage cursor", func(t *testing.T) {
		_, _, err := NewBookingQueries(new(mockBookingReadStore), nil, booking.FixedRoster{}).
			ListCustomerBookings(ctx, customerID, BookingFilters{}, &Cursor{After: "not-base64!"}, 10)
		assert.True(t, errs.Is(err, ErrInvalidCursor))
	})
}

func TestListVenueBookings(t *testing.T) {
	ctx := context.Background()
	v := venueView("Green Turf Arena", "Football", "Bengaluru")

	t.Run("owner with date filter", func(t *testing.T) {
		venues := new(mockVenueReadStore)
		bookings := new(mockBookingReadStore)
		venues.On("FindByID", ctx, v.ID).Return(v, nil)
		bookings.On("ListByVenue", ctx, v.ID, mock.MatchedBy(func(d *booking.Date) bool {
			return d != nil && d.String() == "2025-06-01"
		})).Return([]*BookingView{{ID: uuid.New()}}, nil)

		date := "2025-06-01"
		got, err := NewBookingQueries(bookings, venues, booking.FixedRoster{}).ListVenueBookings(ctx, v.ID, v.MerchantID, &date)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("other merchant", func(t *testing.T) {
		venues := new(mockVenueReadStore)
		venues.On("FindByID", ctx, v.ID).Return(v, nil)

		_, err := NewBookingQueries(new(mockBookingReadStore), venues, booking.FixedRoster{}).ListVenueBookings(ctx, v.ID, uuid.New(), nil)
		assert.True(t, errs.Is(err, ErrVenueAccess))
	})
}
