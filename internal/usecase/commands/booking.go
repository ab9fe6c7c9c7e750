package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"

	"groundio/internal/domain/booking"
	"groundio/internal/domain/slot"
	"groundio/internal/infra"
	"groundio/internal/pkg/errs"
	"groundio/internal/pkg/session"
	"groundio/internal/usecase/shared"
)

const submitBookingEndpoint = "POST /api/bookings"

type SubmitBookingInput struct {
	CustomerID     uuid.UUID
	VenueID        uuid.UUID
	Date           string
	TimeSlot       string
	IdempotencyKey *uuid.UUID
}

type SubmitBookingResult struct {
	BookingID  uuid.UUID
	IsReplayed bool
}

type BookingCommands interface {
	SubmitBooking(ctx context.Context, in SubmitBookingInput) (*SubmitBookingResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actor session.Principal) error
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID, actor session.Principal) error
	CompleteBooking(ctx context.Context, bookingID uuid.UUID, actor session.Principal) error
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	runtime BookingRuntime
	live    shared.LivePublisher
}

func NewBookingCommands(uow shared.UnitOfWork, runtime BookingRuntime, live shared.LivePublisher) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		runtime: runtime,
		live:    live,
	}
}

func (c *bookingCommandsImpl) SubmitBooking(ctx context.Context, in SubmitBookingInput) (*SubmitBookingResult, error) {
	label, err := slot.ParseLabel(in.TimeSlot)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	date, err := booking.ParseDate(in.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	requestHash := calculateRequestHash(in.VenueID, date, label)
	if in.IdempotencyKey != nil {
		replayed, rerr := c.replay(ctx, *in.IdempotencyKey, in.CustomerID, requestHash)
		if rerr != nil || replayed != nil {
			return replayed, rerr
		}
	}

	services := c.runtime.services()
	var created *booking.Booking
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.runtime.Clock.Now()
		if in.IdempotencyKey != nil {
			claimErr := tx.Idempotency().TryInsert(ctx, tx.DB(), *in.IdempotencyKey, in.CustomerID, submitBookingEndpoint, requestHash, now.Add(c.runtime.IdempotencyTTL))
			if claimErr != nil {
				if infra.IsKind(claimErr, infra.KindConflict) {
					return errs.Mark(claimErr, errs.ErrIdempotencyInProgress)
				}
				return claimErr
			}
		}

		v, derr := tx.Reads().VenueByID(ctx, in.VenueID)
		if derr != nil {
			return markNotFound(derr, errs.ErrVenueNotFound)
		}
		customer, derr := tx.Reads().UserByID(ctx, in.CustomerID)
		if derr != nil {
			return markNotFound(derr, errs.ErrProfileNotFound)
		}
		held, derr := tx.Reads().HeldSlots(ctx, in.VenueID, date)
		if derr != nil {
			return derr
		}

		snapshot := booking.VenueSnapshot{
			ID:           v.ID(),
			MerchantID:   v.MerchantID(),
			Name:         v.Name().String(),
			Location:     v.Location().Display(),
			Image:        v.Images().Primary(),
			PricePerHour: v.PricePerHour(),
			IsActive:     v.IsActive(),
			Availability: v.Availability(),
		}
		b, derr := booking.NewBooking(services, snapshot, booking.CustomerSnapshot{
			ID:    customer.ID(),
			Name:  customer.DisplayName().String(),
			Email: customer.Email().Value(),
		}, date, label, held)
		if derr != nil {
			return markBookingRule(derr)
		}

		if derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrSlotUnavailable)
			}
			return derr
		}
		if derr = enqueueBookingNotification(ctx, tx.DB(), tx.Notifications(), shared.NotificationBookingCreated, b, now); derr != nil {
			return derr
		}
		if in.IdempotencyKey != nil {
			if derr = tx.Idempotency().Complete(ctx, tx.DB(), *in.IdempotencyKey, in.CustomerID, b.ID()); derr != nil {
				return derr
			}
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	publishBookingEvent(ctx, c.live, shared.NotificationBookingCreated, created, created.CreatedAt())
	return &SubmitBookingResult{BookingID: created.ID()}, nil
}

// replay returns the stored result for a completed key, or nil when the key is unused.
func (c *bookingCommandsImpl) replay(ctx context.Context, key, userID uuid.UUID, requestHash string) (*SubmitBookingResult, error) {
	rec, err := c.uow.CommandReads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	if rec.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyMismatch
	}
	if rec.ResultBookingID == nil {
		return nil, errs.ErrIdempotencyInProgress
	}
	return &SubmitBookingResult{BookingID: *rec.ResultBookingID, IsReplayed: true}, nil
}

// CancelBooking is open to the customer and to the merchant owning the venue.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor session.Principal) error {
	return c.transition(ctx, bookingID, shared.NotificationBookingCancelled, func(b *booking.Booking) error {
		if !b.IsCustomer(actor.UserID) && !b.IsVenueMerchant(actor.UserID) {
			return errs.ErrNotBookingParty
		}
		return b.Cancel(c.runtime.services())
	})
}

func (c *bookingCommandsImpl) ConfirmBooking(ctx context.Context, bookingID uuid.UUID, actor session.Principal) error {
	return c.transition(ctx, bookingID, shared.NotificationBookingConfirmed, func(b *booking.Booking) error {
		if !b.IsVenueMerchant(actor.UserID) {
			return errs.ErrNotVenueOwner
		}
		return b.Confirm(c.runtime.services())
	})
}

func (c *bookingCommandsImpl) CompleteBooking(ctx context.Context, bookingID uuid.UUID, actor session.Principal) error {
	return c.transition(ctx, bookingID, shared.NotificationBookingCompleted, func(b *booking.Booking) error {
		if !b.IsVenueMerchant(actor.UserID) {
			return errs.ErrNotVenueOwner
		}
		return b.Complete(c.runtime.services())
	})
}

// transition loads the booking, applies change and persists it guarded by the
// status it was read in, so a concurrent writer turns into a conflict.
func (c *bookingCommandsImpl) transition(ctx context.Context, bookingID uuid.UUID, kind string, change func(b *booking.Booking) error) error {
	var updated *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return markNotFound(err, errs.ErrBookingNotFound)
		}
		prev := b.Status()
		if err = change(b); err != nil {
			return markBookingRule(err)
		}
		if err = tx.Bookings().UpdateStatus(ctx, tx.DB(), b, prev); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrInvalidTransition)
			}
			return err
		}
		if err = enqueueBookingNotification(ctx, tx.DB(), tx.Notifications(), kind, b, b.UpdatedAt()); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return err
	}

	publishBookingEvent(ctx, c.live, kind, updated, updated.UpdatedAt())
	return nil
}

func calculateRequestHash(venueID uuid.UUID, date booking.Date, label slot.Label) string {
	data, _ := json.Marshal(struct {
		VenueID  uuid.UUID `json:"venue_id"`
		Date     string    `json:"date"`
		TimeSlot string    `json:"time_slot"`
	}{venueID, date.String(), label.String()})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// markBookingRule maps booking rule violations onto the shared sentinels.
func markBookingRule(err error) error {
	switch {
	case errs.Is(err, slot.ErrInvalidLabel),
		errs.Is(err, booking.ErrInvalidDate),
		errs.Is(err, booking.ErrSlotInPast):
		return errs.Mark(err, errs.ErrDomainValidation)
	case errs.Is(err, booking.ErrSlotTaken):
		return errs.Mark(err, errs.ErrSlotUnavailable)
	case errs.Is(err, booking.ErrVenueInactive):
		return errs.Mark(err, errs.ErrVenueInactive)
	case errs.Is(err, booking.ErrNotCancellable):
		return errs.Mark(err, errs.ErrBookingNotCancellable)
	case errs.Is(err, booking.ErrDatePassed):
		return errs.Mark(err, errs.ErrBookingDatePassed)
	case errs.Is(err, booking.ErrInvalidTransition),
		errs.Is(err, booking.ErrNotYetDue):
		return errs.Mark(err, errs.ErrInvalidTransition)
	default:
		return err
	}
}

func markNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
