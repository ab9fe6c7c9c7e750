package api

import (
	"context"
	"log/slog"
	"net/http"

	reqdto "groundio/internal/handler/dto/request"
	resdto "groundio/internal/handler/dto/response"
	"groundio/internal/handler/httperr"
	"groundio/internal/handler/middleware"
	"groundio/internal/pkg/errs"
	"groundio/internal/pkg/session"
	"groundio/internal/usecase/commands"
	"groundio/internal/usecase/queries"
	"groundio/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

var errUnauthenticated = errs.New("missing principal")

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
	live shared.LiveSubscriber
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, live shared.LiveSubscriber) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, live: live}
}

// @Summary Submit booking
// @Description Book one slot at a venue. Replaying the same Idempotency-Key returns the original booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID identifying this submission"
// @Param request body reqdto.SubmitBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed submission"
// @Success 201 {object} resdto.BookingCreatedResponse "Stored, but the booking could not be read back"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
		return
	}

	var req reqdto.SubmitBookingRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", err.Error())
		return
	}

	result, err := h.cmds.SubmitBooking(c.Request.Context(), req.ToInput(principal.UserID, key))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.Header("Location", "/api/bookings/"+result.BookingID.String())
	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}

	// The booking is committed; a failed read-back must not look like a failed submit.
	view, err := h.q.GetBooking(c.Request.Context(), result.BookingID, principal)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "booking stored but read-back failed",
			"booking_id", result.BookingID.String(), "error", err.Error())
		c.JSON(status, resdto.BookingCreatedResponse{ID: result.BookingID})
		return
	}
	c.JSON(status, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description The caller's bookings, newest first, with keyset pagination
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending | confirmed | completed | cancelled"
// @Param limit query int false "Max items (default 20)"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	items, next, err := h.q.ListCustomerBookings(c.Request.Context(), principal.UserID,
		queries.BookingFilters{Status: q.Status}, cursorFrom(q.Cursor), queries.ValidateLimit(q.Limit))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	resp := resdto.BookingListResponse{Bookings: resdto.FromBookingList(items)}
	if next != nil {
		resp.NextCursor = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get booking
// @Description A booking visible to its customer or the venue's merchant
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetBooking(c.Request.Context(), id, principal)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a pending or confirmed booking before its date. The slot becomes available again.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.CancelBooking)
}

// @Summary Confirm booking
// @Description Merchant accepts a pending booking at one of their venues
// @Tags merchant
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /merchant/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.ConfirmBooking)
}

// @Summary Complete booking
// @Description Merchant marks a confirmed booking as played, on or after its date
// @Tags merchant
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /merchant/bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.cmds.CompleteBooking)
}

// @Summary Booking updates stream
// @Description Server-sent booking events for the caller's bookings
// @Tags bookings
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {object} shared.LiveEvent
// @Failure 401 {object} httperr.Response
// @Router /bookings/stream [get]
func (h *BookingHandler) Stream(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	h.stream(c, shared.CustomerBookingsTopic(principal.UserID))
}

func (h *BookingHandler) stream(c *gin.Context, topics ...string) {
	sub, err := h.live.Subscribe(c.Request.Context(), topics...)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Live updates unavailable", nil)
		return
	}
	defer func() { _ = sub.Close() }()

	streamEvents(c, sub.Next, func(ev shared.LiveEvent) string { return ev.Type })
}

type bookingTransition func(ctx context.Context, id uuid.UUID, actor session.Principal) error

func (h *BookingHandler) transition(c *gin.Context, change bookingTransition) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := change(c.Request.Context(), id, principal); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	view, err := h.q.GetBooking(c.Request.Context(), id, principal)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func idempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

func requirePrincipal(c *gin.Context) (session.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "User not authenticated", nil)
		return session.Principal{}, false
	}
	return principal, true
}
