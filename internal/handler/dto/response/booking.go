package response

import (
	"github.com/google/uuid"

	"groundio/internal/usecase/queries"
)

type BookingVenueResponse struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	Name     string     `json:"name"`
	Location string     `json:"location"`
	Image    string     `json:"image,omitempty"`
}

type BookingCustomerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type BookingResponse struct {
	ID        uuid.UUID               `json:"id"`
	Venue     BookingVenueResponse    `json:"venue"`
	Customer  BookingCustomerResponse `json:"customer"`
	Date      string                  `json:"date"`
	TimeSlot  string                  `json:"time_slot"`
	Price     int64                   `json:"price"`
	Status    string                  `json:"status"`
	CreatedAt int64                   `json:"created_at"`
	UpdatedAt int64                   `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID: v.ID,
		Venue: BookingVenueResponse{
			ID:       v.VenueID,
			Name:     v.VenueName,
			Location: v.VenueLocation,
			Image:    v.VenueImage,
		},
		Customer: BookingCustomerResponse{
			ID:    v.CustomerID,
			Name:  v.CustomerName,
			Email: v.CustomerEmail,
		},
		Date:      v.Date,
		TimeSlot:  v.TimeSlot,
		Price:     v.Price,
		Status:    v.Status,
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
}

func FromBookingList(items []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, v := range items {
		res[i] = FromBookingView(v)
	}
	return res
}

// BookingCreatedResponse is the reduced body sent when a stored booking cannot be read back.
type BookingCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type BookingListResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	NextCursor string             `json:"next_cursor,omitempty"`
}
