package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Venue errors
	ErrVenueNotFound  = errors.New("venue not found")
	ErrVenueInactive  = errors.New("venue inactive")
	ErrNotVenueOwner  = errors.New("venue belongs to another merchant")
	ErrMerchantOnly   = errors.New("merchant role required")
	ErrVenueHasActive = errors.New("venue has upcoming bookings")
	ErrVenueUnchanged = errors.New("venue already in requested state")

	// Booking errors
	ErrBookingNotFound       = errors.New("booking not found")
	ErrSlotUnavailable       = errors.New("time slot unavailable")
	ErrBookingNotCancellable = errors.New("booking cannot be cancelled")
	ErrInvalidTransition     = errors.New("invalid booking status transition")
	ErrNotBookingParty       = errors.New("booking belongs to another user")
	ErrBookingDatePassed     = errors.New("booking date has passed")

	// Review errors
	ErrReviewNotAllowed = errors.New("review not allowed")
	ErrDuplicateReview  = errors.New("booking already reviewed")

	// User errors
	ErrEmailTaken      = errors.New("email already registered")
	ErrProfileNotFound = errors.New("profile not found")

	// Idempotency errors
	ErrIdempotencyInProgress = errors.New("idempotency in progress")
	ErrIdempotencyMismatch   = errors.New("idempotency key reused with different request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
