package booking

import (
	"errors"
	"time"

	"groundio/internal/domain/slot"
	"groundio/internal/domain/venue"
	"groundio/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrVenueInactive     = errors.New("venue is not accepting bookings")
	ErrSlotInPast        = errors.New("time slot has already started")
	ErrSlotTaken         = errors.New("time slot is not available")
	ErrNotCancellable    = errors.New("booking is not cancellable in its current status")
	ErrDatePassed        = errors.New("booking date has passed")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNotYetDue         = errors.New("booking cannot be completed before its date")
)

// VenueSnapshot is the part of a venue a booking needs at submission time.
type VenueSnapshot struct {
	ID           uuid.UUID
	MerchantID   uuid.UUID
	Name         string
	Location     string
	Image        string
	PricePerHour venue.Money
	IsActive     bool
	Availability venue.WeeklySchedule
}

type CustomerSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type Services struct {
	Clock    clock.Clock
	Location *time.Location
	Policy   SlotPolicy
}

func (s *Services) today() Date {
	return DateOf(clock.Today(s.Clock, s.Location))
}

type Booking struct {
	id        uuid.UUID
	venue     VenueSnapshot
	customer  CustomerSnapshot
	date      Date
	timeSlot  slot.Label
	price     venue.Money
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking validates a slot selection against the venue and the labels
// already held for that day, and returns a pending booking priced at one hour.
func NewBooking(
	services *Services,
	v VenueSnapshot,
	customer CustomerSnapshot,
	date Date,
	label slot.Label,
	taken []slot.Label,
) (*Booking, error) {
	if !v.IsActive {
		return nil, ErrVenueInactive
	}
	if !label.IsValid() {
		return nil, slot.ErrInvalidLabel
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	now := services.Clock.Now()
	if date.Before(services.today()) || !label.StartOn(date.Time(), services.Location).After(now) {
		return nil, ErrSlotInPast
	}

	available := AvailableSlots(services.Policy, v.Availability, date, taken)
	if !containsLabel(available, label) {
		return nil, ErrSlotTaken
	}

	return &Booking{
		id:        uuid.New(),
		venue:     v,
		customer:  customer,
		date:      date,
		timeSlot:  label,
		price:     v.PricePerHour,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	v VenueSnapshot,
	customer CustomerSnapshot,
	date Date,
	timeSlot slot.Label,
	price venue.Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		venue:     v,
		customer:  customer,
		date:      date,
		timeSlot:  timeSlot,
		price:     price,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel is allowed from pending or confirmed while the booking date has not passed.
func (b *Booking) Cancel(services *Services) error {
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrNotCancellable
	}
	if b.date.Before(services.today()) {
		return ErrDatePassed
	}
	b.status = StatusCancelled
	b.updatedAt = services.Clock.Now()
	return nil
}

func (b *Booking) Confirm(services *Services) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	if b.date.Before(services.today()) {
		return ErrDatePassed
	}
	b.status = StatusConfirmed
	b.updatedAt = services.Clock.Now()
	return nil
}

func (b *Booking) Complete(services *Services) error {
	if !b.status.CanTransitionTo(StatusCompleted) {
		return ErrInvalidTransition
	}
	if services.today().Before(b.date) {
		return ErrNotYetDue
	}
	b.status = StatusCompleted
	b.updatedAt = services.Clock.Now()
	return nil
}

func (b *Booking) IsCustomer(userID uuid.UUID) bool {
	return b.customer.ID == userID
}

func (b *Booking) IsVenueMerchant(userID uuid.UUID) bool {
	return b.venue.MerchantID == userID
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) Venue() VenueSnapshot       { return b.venue }
func (b *Booking) Customer() CustomerSnapshot { return b.customer }
func (b *Booking) Date() Date                 { return b.date }
func (b *Booking) TimeSlot() slot.Label       { return b.timeSlot }
func (b *Booking) Price() venue.Money         { return b.price }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }

func containsLabel(labels []slot.Label, l slot.Label) bool {
	for _, x := range labels {
		if x == l {
			return true
		}
	}
	return false
}
