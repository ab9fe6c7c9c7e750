package review

import (
	"groundio/internal/domain/booking"

	"github.com/google/uuid"
)

type EligibilityInput struct {
	UserID            uuid.UUID
	BookingCustomerID uuid.UUID
	BookingStatus     booking.Status
	AlreadyReviewed   bool
}

// CheckEligibility allows one review per completed booking, by its customer.
func CheckEligibility(in EligibilityInput) error {
	if in.UserID != in.BookingCustomerID {
		return ErrBookingNotEligible
	}
	if in.BookingStatus != booking.StatusCompleted {
		return ErrBookingNotEligible
	}
	if in.AlreadyReviewed {
		return ErrReviewAlreadyExists
	}
	return nil
}
