//go:build unit

package commands

import (
	"context"
	"testing"

	"groundio/internal/domain/booking"
	"groundio/internal/domain/user"
	"groundio/internal/domain/venue"
	"groundio/internal/infra/repository/converter"
	"groundio/internal/pkg/errs"
	"groundio/internal/pkg/session"
	"groundio/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingInvalidator struct {
	calls int
	err   error
}

func (c *countingInvalidator) Invalidate(context.Context) error {
	c.calls++
	return c.err
}

type venueFixture struct {
	*bookingFixture
	cache *countingInvalidator
	cmds  VenueCommands
	owner session.Principal
}

func newVenueFixture(t *testing.T) *venueFixture {
	t.Helper()
	bf := newBookingFixture(t)
	f := &venueFixture{
		bookingFixture: bf,
		cache:          &countingInvalidator{},
		owner:          session.Principal{UserID: bf.merchant.ID(), Role: user.RoleMerchant},
	}
	f.cmds = NewVenueCommands(bf.uow, f.cache, bf.live, bf.clock, ist)
	return f
}

func (f *venueFixture) stored(t *testing.T, id uuid.UUID) *venue.Venue {
	t.Helper()
	row, ok := f.uow.venues[id]
	require.True(t, ok, "venue %s not stored", id)
	v, err := converter.VenueFromRow(row)
	require.NoError(t, err)
	return v
}

func TestCreateVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("merchant creates an active venue", func(t *testing.T) {
		f := newVenueFixture(t)

		id, err := f.cmds.CreateVenue(ctx, f.owner, VenueInput{
			Name:              "Shuttle Hub",
			Category:          "badminton",
			Location:          LocationInput{Address: "12th Main", City: "Pune"},
			PricePerHourMinor: 350,
			Availability: map[string]DayScheduleInput{
				"monday": {Open: true, Slots: []string{"06:00 PM", "07:00 PM"}},
				"sunday": {Open: false},
			},
		})
		require.NoError(t, err)

		v := f.stored(t, id)
		assert.True(t, v.IsActive())
		assert.True(t, v.IsOwnedBy(f.merchant.ID()))
		assert.Equal(t, venue.CategoryBadminton, v.Category())
		assert.Equal(t, "12th Main, Pune", v.Location().Display())
		assert.Equal(t, 1, f.cache.calls)
		require.Len(t, f.live.events, 1)
		assert.Equal(t, shared.VenuesTopic, f.live.events[0].topic)
		assert.Equal(t, shared.EventVenueChanged, f.live.events[0].ev.Type)
	})

	t.Run("cache failure is not fatal", func(t *testing.T) {
		f := newVenueFixture(t)
		f.cache.err = assert.AnError

		_, err := f.cmds.CreateVenue(ctx, f.owner, VenueInput{
			Name:     "Open Ground",
			Category: "Cricket",
			Location: LocationInput{Text: "Near the lake, Pune"},
		})
		assert.NoError(t, err)
	})

	cases := []struct {
		name    string
		actor   func(f *venueFixture) session.Principal
		in      VenueInput
		wantErr error
	}{
		{
			name:    "customers cannot list venues",
			actor:   func(f *venueFixture) session.Principal { return session.Principal{UserID: f.customer.ID(), Role: user.RoleCustomer} },
			in:      VenueInput{Name: "X", Category: "Tennis", Location: LocationInput{City: "Pune"}},
			wantErr: errs.ErrMerchantOnly,
		},
		{
			name:    "unknown category",
			actor:   func(f *venueFixture) session.Principal { return f.owner },
			in:      VenueInput{Name: "X", Category: "Curling", Location: LocationInput{City: "Pune"}},
			wantErr: errs.ErrDomainValidation,
		},
		{
			name:  "unknown weekday",
			actor: func(f *venueFixture) session.Principal { return f.owner },
			in: VenueInput{
				Name: "X", Category: "Tennis", Location: LocationInput{City: "Pune"},
				Availability: map[string]DayScheduleInput{"funday": {Open: true}},
			},
			wantErr: errs.ErrDomainValidation,
		},
		{
			name:  "slot outside roster",
			actor: func(f *venueFixture) session.Principal { return f.owner },
			in: VenueInput{
				Name: "X", Category: "Tennis", Location: LocationInput{City: "Pune"},
				Availability: map[string]DayScheduleInput{"monday": {Open: true, Slots: []string{"09:30 AM"}}},
			},
			wantErr: errs.ErrDomainValidation,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newVenueFixture(t)
			before := len(f.uow.venues)

			_, err := f.cmds.CreateVenue(ctx, tc.actor(f), tc.in)
			assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
			assert.Len(t, f.uow.venues, before)
			assert.Zero(t, f.cache.calls)
		})
	}
}

func TestUpdateVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("patch touches only the given fields", func(t *testing.T) {
		f := newVenueFixture(t)
		price := int64(900)

		err := f.cmds.UpdateVenue(ctx, f.owner, f.venue.ID(), VenuePatch{PricePerHourMinor: &price})
		require.NoError(t, err)

		v := f.stored(t, f.venue.ID())
		assert.Equal(t, int64(900), v.PricePerHour().Minor())
		assert.Equal(t, "Green Turf Arena", v.Name().String())
		assert.Equal(t, venue.CategoryFootball, v.Category())
		assert.Equal(t, "https://cdn.example.com/turf.jpg", v.Images().Primary())
		assert.Equal(t, 1, f.cache.calls)
	})

	t.Run("empty images clears the gallery", func(t *testing.T) {
		f := newVenueFixture(t)
		name := "Green Turf Arena II"

		err := f.cmds.UpdateVenue(ctx, f.owner, f.venue.ID(), VenuePatch{Name: &name, Images: []string{}})
		require.NoError(t, err)

		v := f.stored(t, f.venue.ID())
		assert.Equal(t, name, v.Name().String())
		assert.Empty(t, v.Images().URIs())
	})

	t.Run("invalid patch leaves the venue untouched", func(t *testing.T) {
		f := newVenueFixture(t)
		price := int64(-1)

		err := f.cmds.UpdateVenue(ctx, f.owner, f.venue.ID(), VenuePatch{PricePerHourMinor: &price})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.Equal(t, int64(500), f.stored(t, f.venue.ID()).PricePerHour().Minor())
		assert.Zero(t, f.cache.calls)
	})

	t.Run("another merchant's venue", func(t *testing.T) {
		f := newVenueFixture(t)
		name := "Taken Over"

		err := f.cmds.UpdateVenue(ctx, session.Principal{UserID: uuid.New(), Role: user.RoleMerchant}, f.venue.ID(), VenuePatch{Name: &name})
		assert.True(t, errs.Is(err, errs.ErrNotVenueOwner))
	})

	t.Run("unknown venue", func(t *testing.T) {
		f := newVenueFixture(t)
		err := f.cmds.UpdateVenue(ctx, f.owner, uuid.New(), VenuePatch{})
		assert.True(t, errs.Is(err, errs.ErrVenueNotFound))
	})
}

func TestVenueActivation(t *testing.T) {
	ctx := context.Background()
	f := newVenueFixture(t)

	err := f.cmds.ActivateVenue(ctx, f.owner, f.venue.ID())
	assert.True(t, errs.Is(err, errs.ErrVenueUnchanged), "already active: %v", err)

	require.NoError(t, f.cmds.DeactivateVenue(ctx, f.owner, f.venue.ID()))
	assert.False(t, f.stored(t, f.venue.ID()).IsActive())

	err = f.cmds.DeactivateVenue(ctx, f.owner, f.venue.ID())
	assert.True(t, errs.Is(err, errs.ErrVenueUnchanged), "already inactive: %v", err)

	require.NoError(t, f.cmds.ActivateVenue(ctx, f.owner, f.venue.ID()))
	assert.True(t, f.stored(t, f.venue.ID()).IsActive())
	assert.Equal(t, 2, f.cache.calls)
}

func TestDeleteVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("upcoming bookings block deletion", func(t *testing.T) {
		f := newVenueFixture(t)
		f.seed(t, "2025-06-01", booking.StatusConfirmed)

		err := f.cmds.DeleteVenue(ctx, f.owner, f.venue.ID())
		assert.True(t, errs.Is(err, errs.ErrVenueHasActive), "got %v", err)
		assert.Contains(t, f.uow.venues, f.venue.ID())
	})

	t.Run("past and cancelled bookings do not block", func(t *testing.T) {
		f := newVenueFixture(t)
		f.seed(t, "2025-05-30", booking.StatusCompleted)
		f.seed(t, "2025-06-01", booking.StatusCancelled)

		require.NoError(t, f.cmds.DeleteVenue(ctx, f.owner, f.venue.ID()))
		assert.NotContains(t, f.uow.venues, f.venue.ID())
		require.Len(t, f.live.events, 1)
		assert.Equal(t, shared.EventVenueRemoved, f.live.events[0].ev.Type)
	})

	t.Run("customer", func(t *testing.T) {
		f := newVenueFixture(t)
		err := f.cmds.DeleteVenue(ctx, session.Principal{UserID: f.customer.ID(), Role: user.RoleCustomer}, f.venue.ID())
		assert.True(t, errs.Is(err, errs.ErrMerchantOnly))
	})
}
