package api

import (
	"context"
	"net/http"

	reqdto "groundio/internal/handler/dto/request"
	resdto "groundio/internal/handler/dto/response"
	"groundio/internal/handler/httperr"
	"groundio/internal/pkg/session"
	"groundio/internal/usecase/commands"
	"groundio/internal/usecase/queries"
	"groundio/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MerchantHandler serves the venue owner's console. Every route sits behind
// RequireRole(merchant); ownership of the addressed venue is checked per call.
type MerchantHandler struct {
	cmds     commands.VenueCommands
	venues   queries.VenueQueries
	bookings queries.BookingQueries
	live     shared.LiveSubscriber
}

func NewMerchantHandler(
	cmds commands.VenueCommands,
	venues queries.VenueQueries,
	bookings queries.BookingQueries,
	live shared.LiveSubscriber,
) *MerchantHandler {
	return &MerchantHandler{
		cmds:     cmds,
		venues:   venues,
		bookings: bookings,
		live:     live,
	}
}

// @Summary List my venues
// @Description All venues owned by the caller, active or not
// @Tags merchant
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.VenueListResponse
// @Failure 403 {object} httperr.Response
// @Router /merchant/venues [get]
func (h *MerchantHandler) ListVenues(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	views, err := h.venues.ListMerchantVenues(c.Request.Context(), principal.UserID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.VenueListResponse{
		Venues: resdto.FromVenueList(views),
		Count:  len(views),
	})
}

// @Summary Create venue
// @Description List a new venue owned by the caller
// @Tags merchant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVenueRequest true "Venue"
// @Success 201 {object} resdto.VenueResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /merchant/venues [post]
func (h *MerchantHandler) CreateVenue(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", err.Error())
		return
	}

	id, err := h.cmds.CreateVenue(c.Request.Context(), principal, req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	h.respondWithVenue(c, http.StatusCreated, principal, id)
}

// @Summary Update venue
// @Description Partially update a venue; omitted fields keep their value
// @Tags merchant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.UpdateVenueRequest true "Venue patch"
// @Success 200 {object} resdto.VenueResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /merchant/venues/{id} [patch]
func (h *MerchantHandler) UpdateVenue(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", err.Error())
		return
	}

	if err := h.cmds.UpdateVenue(c.Request.Context(), principal, id, req.ToPatch()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	h.respondWithVenue(c, http.StatusOK, principal, id)
}

// @Summary Activate venue
// @Tags merchant
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /merchant/venues/{id}/activate [post]
func (h *MerchantHandler) ActivateVenue(c *gin.Context) {
	h.toggle(c, h.cmds.ActivateVenue)
}

// @Summary Deactivate venue
// @Description Hide a venue from the directory and stop new bookings
// @Tags merchant
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /merchant/venues/{id}/deactivate [post]
func (h *MerchantHandler) DeactivateVenue(c *gin.Context) {
	h.toggle(c, h.cmds.DeactivateVenue)
}

// @Summary Delete venue
// @Description Remove a venue that has no upcoming bookings
// @Tags merchant
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /merchant/venues/{id} [delete]
func (h *MerchantHandler) DeleteVenue(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.DeleteVenue(c.Request.Context(), principal, id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Venue bookings
// @Description Bookings at one of the caller's venues, optionally for a single date
// @Tags merchant
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /merchant/venues/{id}/bookings [get]
func (h *MerchantHandler) VenueBookings(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.VenueBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	items, err := h.bookings.ListVenueBookings(c.Request.Context(), id, principal.UserID, q.Date)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.BookingListResponse{Bookings: resdto.FromBookingList(items)})
}

// @Summary Venue bookings stream
// @Description Server-sent booking events for one of the caller's venues
// @Tags merchant
// @Produce text/event-stream
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 200 {object} shared.LiveEvent
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /merchant/venues/{id}/bookings/stream [get]
func (h *MerchantHandler) VenueBookingsStream(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.ownedVenue(c.Request.Context(), principal, id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	sub, err := h.live.Subscribe(c.Request.Context(), shared.VenueBookingsTopic(id))
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Live updates unavailable", nil)
		return
	}
	defer func() { _ = sub.Close() }()

	streamEvents(c, sub.Next, func(ev shared.LiveEvent) string { return ev.Type })
}

type venueToggle func(ctx context.Context, actor session.Principal, venueID uuid.UUID) error

func (h *MerchantHandler) toggle(c *gin.Context, change venueToggle) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := change(c.Request.Context(), principal, id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	h.respondWithVenue(c, http.StatusOK, principal, id)
}

func (h *MerchantHandler) respondWithVenue(c *gin.Context, status int, principal session.Principal, id uuid.UUID) {
	view, err := h.ownedVenue(c.Request.Context(), principal, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load venue", nil)
		return
	}
	c.JSON(status, resdto.FromVenueView(view))
}

// ownedVenue looks the venue up among the merchant's own so inactive venues are visible too.
func (h *MerchantHandler) ownedVenue(ctx context.Context, principal session.Principal, id uuid.UUID) (*queries.VenueView, error) {
	views, err := h.venues.ListMerchantVenues(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, queries.ErrVenueNotFound
}
