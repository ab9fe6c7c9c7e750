package converter

import (
	"groundio/internal/domain/booking"
	"groundio/internal/domain/slot"
	"groundio/internal/domain/venue"
	"groundio/internal/infra/query"
	"groundio/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func BookingToRow(b *booking.Booking) query.BookingRow {
	v := b.Venue()
	c := b.Customer()
	venueID := v.ID
	return query.BookingRow{
		ID:              b.ID(),
		VenueID:         pgconv.UUIDPtrToPgtype(&venueID),
		VenueMerchantID: v.MerchantID,
		VenueName:       v.Name,
		VenueLocation:   v.Location,
		VenueImage:      v.Image,
		CustomerID:      c.ID,
		CustomerName:    c.Name,
		CustomerEmail:   c.Email,
		BookingDate:     pgconv.DateToPgtype(b.Date().Time()),
		TimeSlot:        b.TimeSlot().String(),
		Price:           b.Price().Minor(),
		Status:          b.Status().String(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

// BookingFromRow rebuilds the aggregate from its denormalized row. The venue
// snapshot carries only what was captured at submission time.
func BookingFromRow(r query.BookingRow) (*booking.Booking, error) {
	status, err := booking.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}
	label, err := slot.ParseLabel(r.TimeSlot)
	if err != nil {
		return nil, err
	}
	price, err := venue.NewMoney(r.Price)
	if err != nil {
		return nil, err
	}

	venueID := uuid.Nil
	if id := pgconv.UUIDPtrFromPgtype(r.VenueID); id != nil {
		venueID = *id
	}

	return booking.ReconstructBooking(
		r.ID,
		booking.VenueSnapshot{
			ID:           venueID,
			MerchantID:   r.VenueMerchantID,
			Name:         r.VenueName,
			Location:     r.VenueLocation,
			Image:        r.VenueImage,
			PricePerHour: price,
		},
		booking.CustomerSnapshot{ID: r.CustomerID, Name: r.CustomerName, Email: r.CustomerEmail},
		booking.DateOf(pgconv.DateFromPgtype(r.BookingDate)),
		label,
		price,
		status,
		r.CreatedAt,
		r.UpdatedAt,
	), nil
}
