package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

// Notification kinds double as broker routing keys.
const (
	NotificationBookingCreated   = "booking.created"
	NotificationBookingConfirmed = "booking.confirmed"
	NotificationBookingCompleted = "booking.completed"
	NotificationBookingCancelled = "booking.cancelled"
)

// BookingNotification is the outbox payload relayed to the broker.
type BookingNotification struct {
	BookingID   uuid.UUID `json:"booking_id"`
	VenueID     uuid.UUID `json:"venue_id"`
	VenueName   string    `json:"venue_name"`
	CustomerID  uuid.UUID `json:"customer_id"`
	MerchantID  uuid.UUID `json:"merchant_id"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	Status      string    `json:"status"`
	DeviceToken string    `json:"device_token,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// LiveEvent is pushed to subscribers of the live booking and venue feeds.
type LiveEvent struct {
	Type     string    `json:"type"`
	EntityID uuid.UUID `json:"entity_id"`
	VenueID  uuid.UUID `json:"venue_id"`
	Status   string    `json:"status,omitempty"`
	Date     string    `json:"date,omitempty"`
	TimeSlot string    `json:"time_slot,omitempty"`
	At       time.Time `json:"at"`
}

const (
	EventVenueChanged = "venue.changed"
	EventVenueRemoved = "venue.removed"
)

// LivePublisher is best effort: callers publish after commit and only log failures.
type LivePublisher interface {
	Publish(ctx context.Context, topic string, ev LiveEvent) error
}

type LiveSubscription interface {
	Next(ctx context.Context) (LiveEvent, error)
	Close() error
}

// LiveSubscriber confirms the subscription before returning.
type LiveSubscriber interface {
	Subscribe(ctx context.Context, topics ...string) (LiveSubscription, error)
}

// VenueCacheInvalidator drops cached directory listings after a venue write.
type VenueCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

const VenuesTopic = "venues"

func CustomerBookingsTopic(customerID uuid.UUID) string {
	return "bookings:customer:" + customerID.String()
}

func VenueBookingsTopic(venueID uuid.UUID) string {
	return "bookings:venue:" + venueID.String()
}
