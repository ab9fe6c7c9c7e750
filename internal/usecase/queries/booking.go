package queries

import (
	"context"
	"time"

	"groundio/internal/domain/booking"
	"groundio/internal/domain/slot"
	"groundio/internal/domain/venue"
	"groundio/internal/infra"
	"groundio/internal/pkg/session"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	HeldSlots(ctx context.Context, venueID uuid.UUID, date booking.Date) ([]string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, status *string, after *Keyset, limit int32) ([]*BookingView, error)
	ListByVenue(ctx context.Context, venueID uuid.UUID, date *booking.Date) ([]*BookingView, error)
}

type BookingFilters struct {
	Status *string
}

type BookingQueries interface {
	ListAvailableSlots(ctx context.Context, venueID uuid.UUID, date string) (*AvailabilityView, error)
	GetBooking(ctx context.Context, id uuid.UUID, actor session.Principal) (*BookingView, error)
	ListCustomerBookings(ctx context.Context, customerID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListVenueBookings(ctx context.Context, venueID, merchantID uuid.UUID, date *string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	venues   VenueReadStore
	policy   booking.SlotPolicy
}

func NewBookingQueries(bookings BookingReadStore, venues VenueReadStore, policy booking.SlotPolicy) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		venues:   venues,
		policy:   policy,
	}
}

func (q *bookingQueriesImpl) ListAvailableSlots(ctx context.Context, venueID uuid.UUID, date string) (*AvailabilityView, error) {
	day, err := booking.ParseDate(date)
	if err != nil {
		return nil, invalidFilter(err)
	}

	v, err := q.venues.FindByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if !v.IsActive {
		return nil, ErrVenueNotFound
	}

	held, err := q.bookings.HeldSlots(ctx, venueID, day)
	if err != nil {
		return nil, err
	}
	taken := make([]slot.Label, len(held))
	for i, h := range held {
		taken[i] = slot.Label(h)
	}

	schedule := ScheduleFromView(v.Availability)
	candidates := q.policy.Bookable(schedule, day)
	available := slot.Subtract(candidates, taken)

	view := &AvailabilityView{
		VenueID:   venueID,
		Date:      day.String(),
		Policy:    q.policy.Name(),
		Available: make([]string, len(available)),
		Slots:     make([]SlotView, 0, len(candidates)),
	}
	for i, l := range available {
		view.Available[i] = l.String()
	}
	for _, st := range slot.Statuses(candidates, taken, "") {
		view.Slots = append(view.Slots, SlotView{Label: st.Label.String(), Available: st.State == slot.StateAvailable})
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID, actor session.Principal) (*BookingView, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.CustomerID != actor.UserID && b.VenueMerchantID != actor.UserID {
		return nil, ErrBookingAccess
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListCustomerBookings(ctx context.Context, customerID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if filters.Status != nil {
		if _, err := booking.NewStatus(*filters.Status); err != nil {
			return nil, nil, invalidFilter(err)
		}
	}

	after, err := cursor.Keyset()
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	rows, err := q.bookings.ListByCustomer(ctx, customerID, filters.Status, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	page, next := trimPage(rows, limit, func(b *BookingView) (time.Time, uuid.UUID) {
		return b.CreatedAt, b.ID
	})
	return page, next, nil
}

func (q *bookingQueriesImpl) ListVenueBookings(ctx context.Context, venueID, merchantID uuid.UUID, date *string) ([]*BookingView, error) {
	v, err := q.venues.FindByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if v.MerchantID != merchantID {
		return nil, ErrVenueAccess
	}

	var day *booking.Date
	if date != nil && *date != "" {
		d, err := booking.ParseDate(*date)
		if err != nil {
			return nil, invalidFilter(err)
		}
		day = &d
	}
	return q.bookings.ListByVenue(ctx, venueID, day)
}

// ScheduleFromView rebuilds the weekly schedule of a venue view. Unknown
// weekdays or slots are dropped so a bad row never blocks availability.
func ScheduleFromView(days map[string]DayScheduleView) venue.WeeklySchedule {
	if len(days) == 0 {
		return venue.WeeklySchedule{}
	}
	out := make(map[time.Weekday]venue.DaySchedule, len(days))
	for name, d := range days {
		wd, err := venue.ParseWeekday(name)
		if err != nil {
			continue
		}
		labels := make([]slot.Label, 0, len(d.Slots))
		for _, s := range d.Slots {
			if l, err := slot.ParseLabel(s); err == nil {
				labels = append(labels, l)
			}
		}
		out[wd] = venue.DaySchedule{Open: d.Open, Slots: labels}
	}
	schedule, err := venue.NewWeeklySchedule(out)
	if err != nil {
		return venue.WeeklySchedule{}
	}
	return schedule
}
