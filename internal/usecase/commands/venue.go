package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"groundio/internal/domain/booking"
	"groundio/internal/domain/slot"
	"groundio/internal/domain/venue"
	"groundio/internal/pkg/clock"
	"groundio/internal/pkg/errs"
	"groundio/internal/pkg/patch"
	"groundio/internal/pkg/session"
	"groundio/internal/usecase/shared"
)

type LocationInput struct {
	Text    string
	Address string
	City    string
}

type DayScheduleInput struct {
	Open  bool
	Slots []string
}

type VenueInput struct {
	Name              string
	Category          string
	Location          LocationInput
	PricePerHourMinor int64
	Images            []string
	// keyed by lowercase weekday name
	Availability map[string]DayScheduleInput
}

// VenuePatch leaves nil fields untouched. A non-nil empty Images clears the gallery.
type VenuePatch struct {
	Name              *string
	Category          *string
	PricePerHourMinor *int64
	Location          *LocationInput
	Images            []string
	Availability      map[string]DayScheduleInput
}

type VenueCommands interface {
	CreateVenue(ctx context.Context, actor session.Principal, in VenueInput) (uuid.UUID, error)
	UpdateVenue(ctx context.Context, actor session.Principal, venueID uuid.UUID, p VenuePatch) error
	ActivateVenue(ctx context.Context, actor session.Principal, venueID uuid.UUID) error
	DeactivateVenue(ctx context.Context, actor session.Principal, venueID uuid.UUID) error
	DeleteVenue(ctx context.Context, actor session.Principal, venueID uuid.UUID) error
}

type venueCommandsImpl struct {
	uow      shared.UnitOfWork
	cache    shared.VenueCacheInvalidator
	live     shared.LivePublisher
	clock    clock.Clock
	location *time.Location
}

func NewVenueCommands(
	uow shared.UnitOfWork,
	cache shared.VenueCacheInvalidator,
	live shared.LivePublisher,
	clk clock.Clock,
	location *time.Location,
) VenueCommands {
	return &venueCommandsImpl{
		uow:      uow,
		cache:    cache,
		live:     live,
		clock:    clk,
		location: location,
	}
}

func (c *venueCommandsImpl) CreateVenue(ctx context.Context, actor session.Principal, in VenueInput) (uuid.UUID, error) {
	if !actor.IsMerchant() {
		return uuid.Nil, errs.ErrMerchantOnly
	}
	details, err := detailsFromInput(in)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	v, err := venue.NewVenue(actor.UserID, details, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Venues().Create(ctx, tx.DB(), v)
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.afterWrite(ctx, shared.EventVenueChanged, v.ID())
	return v.ID(), nil
}

func (c *venueCommandsImpl) UpdateVenue(ctx context.Context, actor session.Principal, venueID uuid.UUID, p VenuePatch) error {
	err := c.withOwnedVenue(ctx, actor, venueID, func(ctx context.Context, tx shared.Tx, v *venue.Venue) error {
		details, err := applyPatch(v.Details(), p)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err = v.Revise(details, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return tx.Venues().Update(ctx, tx.DB(), v)
	})
	if err != nil {
		return err
	}
	c.afterWrite(ctx, shared.EventVenueChanged, venueID)
	return nil
}

func (c *venueCommandsImpl) ActivateVenue(ctx context.Context, actor session.Principal, venueID uuid.UUID) error {
	err := c.withOwnedVenue(ctx, actor, venueID, func(ctx context.Context, tx shared.Tx, v *venue.Venue) error {
		if err := v.Activate(c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrVenueUnchanged)
		}
		return tx.Venues().Update(ctx, tx.DB(), v)
	})
	if err != nil {
		return err
	}
	c.afterWrite(ctx, shared.EventVenueChanged, venueID)
	return nil
}

// DeactivateVenue hides the venue from listings; existing bookings are kept.
func (c *venueCommandsImpl) DeactivateVenue(ctx context.Context, actor session.Principal, venueID uuid.UUID) error {
	err := c.withOwnedVenue(ctx, actor, venueID, func(ctx context.Context, tx shared.Tx, v *venue.Venue) error {
		if err := v.Deactivate(c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrVenueUnchanged)
		}
		return tx.Venues().Update(ctx, tx.DB(), v)
	})
	if err != nil {
		return err
	}
	c.afterWrite(ctx, shared.EventVenueChanged, venueID)
	return nil
}

// DeleteVenue refuses while bookings from today onward still hold slots.
func (c *venueCommandsImpl) DeleteVenue(ctx context.Context, actor session.Principal, venueID uuid.UUID) error {
	err := c.withOwnedVenue(ctx, actor, venueID, func(ctx context.Context, tx shared.Tx, v *venue.Venue) error {
		today := booking.DateOf(clock.Today(c.clock, c.location))
		upcoming, err := tx.Bookings().CountUpcomingForVenue(ctx, tx.DB(), v.ID(), today)
		if err != nil {
			return err
		}
		if upcoming > 0 {
			return errs.ErrVenueHasActive
		}
		return tx.Venues().Delete(ctx, tx.DB(), v.ID())
	})
	if err != nil {
		return err
	}
	c.afterWrite(ctx, shared.EventVenueRemoved, venueID)
	return nil
}

func (c *venueCommandsImpl) withOwnedVenue(
	ctx context.Context,
	actor session.Principal,
	venueID uuid.UUID,
	fn func(ctx context.Context, tx shared.Tx, v *venue.Venue) error,
) error {
	if !actor.IsMerchant() {
		return errs.ErrMerchantOnly
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Reads().VenueByID(ctx, venueID)
		if err != nil {
			return markNotFound(err, errs.ErrVenueNotFound)
		}
		if !v.IsOwnedBy(actor.UserID) {
			return errs.ErrNotVenueOwner
		}
		return fn(ctx, tx, v)
	})
}

// afterWrite drops cached listings and notifies directory subscribers. Both are best effort.
func (c *venueCommandsImpl) afterWrite(ctx context.Context, kind string, venueID uuid.UUID) {
	if c.cache != nil {
		if err := c.cache.Invalidate(ctx); err != nil {
			slog.WarnContext(ctx, "failed to invalidate venue cache", "venue_id", venueID, "error", err.Error())
		}
	}
	if c.live != nil {
		ev := shared.LiveEvent{Type: kind, EntityID: venueID, VenueID: venueID, At: c.clock.Now()}
		if err := c.live.Publish(ctx, shared.VenuesTopic, ev); err != nil {
			slog.WarnContext(ctx, "failed to publish venue event", "venue_id", venueID, "error", err.Error())
		}
	}
}

// scalarFields mirrors the plain-valued part of venue.Details for copier.
type scalarFields struct {
	Name              string
	Category          string
	PricePerHourMinor int64
}

func applyPatch(current venue.Details, p VenuePatch) (venue.Details, error) {
	fields := scalarFields{
		Name:              current.Name,
		Category:          current.Category,
		PricePerHourMinor: current.PricePerHourMinor,
	}
	if err := copier.CopyWithOption(&fields, &p, copier.Option{IgnoreEmpty: true}); err != nil {
		return venue.Details{}, errs.Wrap(err, "failed to apply venue patch")
	}

	next := current
	next.Name = fields.Name
	next.Category = fields.Category
	next.PricePerHourMinor = fields.PricePerHourMinor
	next.Images = patch.CoalesceSlice(p.Images, current.Images)

	if p.Location != nil {
		loc, err := locationFromInput(*p.Location)
		if err != nil {
			return venue.Details{}, err
		}
		next.Location = loc
	}
	if p.Availability != nil {
		schedule, err := scheduleFromInput(p.Availability)
		if err != nil {
			return venue.Details{}, err
		}
		next.Availability = schedule
	}
	return next, nil
}

func detailsFromInput(in VenueInput) (venue.Details, error) {
	loc, err := locationFromInput(in.Location)
	if err != nil {
		return venue.Details{}, err
	}
	schedule, err := scheduleFromInput(in.Availability)
	if err != nil {
		return venue.Details{}, err
	}
	return venue.Details{
		Name:              in.Name,
		Category:          in.Category,
		Location:          loc,
		PricePerHourMinor: in.PricePerHourMinor,
		Images:            in.Images,
		Availability:      schedule,
	}, nil
}

// locationFromInput picks the free-text form when Text is set.
func locationFromInput(in LocationInput) (venue.Location, error) {
	if in.Text != "" {
		return venue.NewTextLocation(in.Text)
	}
	return venue.NewStructuredLocation(in.Address, in.City)
}

func scheduleFromInput(in map[string]DayScheduleInput) (venue.WeeklySchedule, error) {
	days := make(map[time.Weekday]venue.DaySchedule, len(in))
	for name, day := range in {
		wd, err := venue.ParseWeekday(name)
		if err != nil {
			return venue.WeeklySchedule{}, err
		}
		labels := make([]slot.Label, 0, len(day.Slots))
		for _, s := range day.Slots {
			l, err := slot.ParseLabel(s)
			if err != nil {
				return venue.WeeklySchedule{}, err
			}
			labels = append(labels, l)
		}
		days[wd] = venue.DaySchedule{Open: day.Open, Slots: labels}
	}
	return venue.NewWeeklySchedule(days)
}
