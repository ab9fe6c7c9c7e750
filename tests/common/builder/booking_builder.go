//go:build unit || e2e

package builder

import (
	"time"

	"groundio/internal/domain/booking"
	"groundio/internal/domain/slot"
	"groundio/internal/domain/venue"
	reqdto "groundio/internal/handler/dto/request"
	"groundio/internal/infra/query"
	"groundio/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID            uuid.UUID
	VenueID       uuid.UUID
	MerchantID    uuid.UUID
	VenueName     string
	VenueLocation string
	CustomerID    uuid.UUID
	CustomerName  string
	CustomerEmail string
	Date          string
	TimeSlot      string
	Price         int64
	Status        string
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		VenueID:       uuid.New(),
		MerchantID:    uuid.New(),
		VenueName:     "Green Turf Arena",
		VenueLocation: "80 Feet Road, Koramangala, Bengaluru",
		CustomerID:    uuid.New(),
		CustomerName:  "Asha Rao",
		CustomerEmail: "player@example.com",
		Date:          "2025-06-01",
		TimeSlot:      "10:00 AM",
		Price:         500,
		Status:        string(booking.StatusPending),
		CreatedAt:     time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain reconstructs a stored booking; it does not run submission rules.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	label, err := slot.ParseLabel(b.TimeSlot)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}
	price, err := venue.NewMoney(b.Price)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		b.ID,
		booking.VenueSnapshot{
			ID:           b.VenueID,
			MerchantID:   b.MerchantID,
			Name:         b.VenueName,
			Location:     b.VenueLocation,
			PricePerHour: price,
			IsActive:     true,
		},
		booking.CustomerSnapshot{ID: b.CustomerID, Name: b.CustomerName, Email: b.CustomerEmail},
		date, label, price, status, b.CreatedAt, b.CreatedAt,
	), nil
}

func (b *BookingBuilder) BuildInfra() query.BookingRow {
	date, _ := time.Parse(booking.DateLayout, b.Date)
	return query.BookingRow{
		ID:              b.ID,
		VenueID:         pgtype.UUID{Bytes: b.VenueID, Valid: true},
		VenueMerchantID: b.MerchantID,
		VenueName:       b.VenueName,
		VenueLocation:   b.VenueLocation,
		CustomerID:      b.CustomerID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		BookingDate:     pgtype.Date{Time: date, Valid: true},
		TimeSlot:        b.TimeSlot,
		Price:           b.Price,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	venueID := b.VenueID
	return &queries.BookingView{
		ID:              b.ID,
		VenueID:         &venueID,
		VenueMerchantID: b.MerchantID,
		VenueName:       b.VenueName,
		VenueLocation:   b.VenueLocation,
		CustomerID:      b.CustomerID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		Date:            b.Date,
		TimeSlot:        b.TimeSlot,
		Price:           b.Price,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSubmitRequestDTO() reqdto.SubmitBookingRequest {
	return reqdto.SubmitBookingRequest{
		VenueID:  b.VenueID,
		Date:     b.Date,
		TimeSlot: b.TimeSlot,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithVenueID(id uuid.UUID) *BookingBuilder {
	b.VenueID = id
	return b
}

func (b *BookingBuilder) WithMerchantID(id uuid.UUID) *BookingBuilder {
	b.MerchantID = id
	return b
}

func (b *BookingBuilder) WithCustomerID(id uuid.UUID) *BookingBuilder {
	b.CustomerID = id
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTimeSlot(label string) *BookingBuilder {
	b.TimeSlot = label
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = string(status)
	return b
}

func (b *BookingBuilder) WithCreatedAt(at time.Time) *BookingBuilder {
	b.CreatedAt = at
	return b
}
