package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"groundio/internal/pkg/errs"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	sentinel error
	status   int
	message  string
}

// ordered: the first sentinel the error is marked with wins
var domainMappings = []mapping{
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrVenueNotFound, http.StatusNotFound, "Venue not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrProfileNotFound, http.StatusNotFound, "Profile not found"},
	{errs.ErrMerchantOnly, http.StatusForbidden, "Merchant account required"},
	{errs.ErrNotVenueOwner, http.StatusForbidden, "Venue belongs to another merchant"},
	{errs.ErrNotBookingParty, http.StatusForbidden, "Booking belongs to another user"},
	{errs.ErrSlotUnavailable, http.StatusConflict, "Time slot unavailable"},
	{errs.ErrVenueInactive, http.StatusConflict, "Venue is not accepting bookings"},
	{errs.ErrBookingNotCancellable, http.StatusConflict, "Booking cannot be cancelled"},
	{errs.ErrBookingDatePassed, http.StatusConflict, "Booking date has passed"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Booking status cannot change"},
	{errs.ErrVenueHasActive, http.StatusConflict, "Venue has upcoming bookings"},
	{errs.ErrVenueUnchanged, http.StatusConflict, "Venue already in requested state"},
	{errs.ErrEmailTaken, http.StatusConflict, "Email already registered"},
	{errs.ErrDuplicateReview, http.StatusConflict, "Booking already reviewed"},
	{errs.ErrReviewNotAllowed, http.StatusUnprocessableEntity, "Booking is not eligible for review"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request with this idempotency key is in progress"},
	{errs.ErrIdempotencyMismatch, http.StatusConflict, "Idempotency key reused with a different request"},
}

// Classify maps a marked error onto a status and a client-safe message.
// Unknown errors become 500.
func Classify(err error) (int, string) {
	for _, m := range domainMappings {
		if errs.Is(err, m.sentinel) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithDomainError aborts with the classified status. The hint attached
// with errs.WithHint, if any, is returned as detail.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := Classify(err)
	var detail any
	if status < http.StatusInternalServerError {
		if hint := errs.Hint(err); hint != "" {
			detail = hint
		} else if status == http.StatusBadRequest {
			detail = rootMessage(err)
		}
	}
	AbortWithError(c, status, err, msg, detail)
}

// rootMessage is the innermost error text, which for validation failures is
// the domain rule that was broken.
func rootMessage(err error) string {
	return errs.Cause(err).Error()
}
