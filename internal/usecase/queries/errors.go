package queries

import "groundio/internal/pkg/errs"

var (
	ErrVenueNotFound   = errs.ErrVenueNotFound
	ErrBookingNotFound = errs.ErrBookingNotFound
	ErrBookingAccess   = errs.ErrNotBookingParty
	ErrVenueAccess     = errs.ErrNotVenueOwner
	ErrInvalidCursor   = errs.Mark(errs.New("invalid cursor"), errs.ErrDomainValidation)
	ErrInvalidFilter   = errs.New("invalid filter")
	ErrUserNotFound    = errs.New("user not found")
	ErrUserInactive    = errs.New("user inactive")
)

// invalidFilter keeps the cause and marks it both as a filter error and as a validation failure.
func invalidFilter(err error) error {
	return errs.Mark(errs.Mark(err, ErrInvalidFilter), errs.ErrDomainValidation)
}
