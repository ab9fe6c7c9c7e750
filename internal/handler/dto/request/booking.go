package request

import (
	"github.com/google/uuid"

	"groundio/internal/usecase/commands"
)

type SubmitBookingRequest struct {
	VenueID  uuid.UUID `json:"venue_id" binding:"required"`
	Date     string    `json:"date" binding:"required,datetime=2006-01-02"`
	TimeSlot string    `json:"time_slot" binding:"required"`
}

func (r *SubmitBookingRequest) ToInput(customerID uuid.UUID, idempotencyKey *uuid.UUID) commands.SubmitBookingInput {
	return commands.SubmitBookingInput{
		CustomerID:     customerID,
		VenueID:        r.VenueID,
		Date:           r.Date,
		TimeSlot:       r.TimeSlot,
		IdempotencyKey: idempotencyKey,
	}
}

type ListBookingsQuery struct {
	Status *string `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	Cursor string  `form:"cursor"`
	Limit  int     `form:"limit" binding:"omitempty,min=1,max=100"`
}

type VenueBookingsQuery struct {
	Date *string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type SlotsQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}
