package commands

//go:generate go run go.uber.org/mock/mockgen -destination=../../../tests/mock/commands/commands.go -package=commandsmock groundio/internal/usecase/commands AuthCommands,BookingCommands,VenueCommands,ProfileCommands,ReviewCommands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"groundio/internal/domain/booking"
	"groundio/internal/infra/db"
	"groundio/internal/pkg/clock"
	"groundio/internal/pkg/errs"
	"groundio/internal/usecase/shared"
)

// BookingRuntime is the configuration-derived context every booking rule runs in.
type BookingRuntime struct {
	Clock          clock.Clock
	Location       *time.Location
	Policy         booking.SlotPolicy
	IdempotencyTTL time.Duration
}

func (r BookingRuntime) services() *booking.Services {
	return &booking.Services{
		Clock:    r.Clock,
		Location: r.Location,
		Policy:   r.Policy,
	}
}

type notificationWriter interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// enqueueBookingNotification writes the outbox row in the caller's transaction.
// The relay fills in the device token at send time.
func enqueueBookingNotification(ctx context.Context, tx db.DBTX, jobs notificationWriter, kind string, b *booking.Booking, now time.Time) error {
	v := b.Venue()
	payload, err := json.Marshal(shared.BookingNotification{
		BookingID:  b.ID(),
		VenueID:    v.ID,
		VenueName:  v.Name,
		CustomerID: b.Customer().ID,
		MerchantID: v.MerchantID,
		Date:       b.Date().String(),
		TimeSlot:   b.TimeSlot().String(),
		Status:     b.Status().String(),
		OccurredAt: now,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode booking notification")
	}
	return jobs.CreateJob(ctx, tx, kind, b.Customer().ID.String(), payload, now)
}

// publishBookingEvent fans a committed change out to the customer and venue feeds.
func publishBookingEvent(ctx context.Context, live shared.LivePublisher, kind string, b *booking.Booking, at time.Time) {
	if live == nil {
		return
	}
	ev := shared.LiveEvent{
		Type:     kind,
		EntityID: b.ID(),
		VenueID:  b.Venue().ID,
		Status:   b.Status().String(),
		Date:     b.Date().String(),
		TimeSlot: b.TimeSlot().String(),
		At:       at,
	}
	topics := []string{shared.CustomerBookingsTopic(b.Customer().ID)}
	if b.Venue().ID != uuid.Nil {
		topics = append(topics, shared.VenueBookingsTopic(b.Venue().ID))
	}
	for _, topic := range topics {
		if err := live.Publish(ctx, topic, ev); err != nil {
			slog.WarnContext(ctx, "failed to publish live booking event", "topic", topic, "booking_id", b.ID(), "error", err.Error())
		}
	}
}
