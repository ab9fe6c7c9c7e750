package api

import (
	"net/http"

	reqdto "groundio/internal/handler/dto/request"
	resdto "groundio/internal/handler/dto/response"
	"groundio/internal/handler/httperr"
	"groundio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VenueHandler struct {
	venues   queries.VenueQueries
	bookings queries.BookingQueries
	reviews  queries.ReviewQueries
}

func NewVenueHandler(venues queries.VenueQueries, bookings queries.BookingQueries, reviews queries.ReviewQueries) *VenueHandler {
	return &VenueHandler{
		venues:   venues,
		bookings: bookings,
		reviews:  reviews,
	}
}

// @Summary List venues
// @Description Active venues narrowed by category and a case-insensitive search over name, location and category
// @Tags venues
// @Produce json
// @Param category query string false "Category (all when empty)"
// @Param q query string false "Search text"
// @Success 200 {object} resdto.VenueListResponse
// @Failure 400 {object} httperr.Response
// @Router /venues [get]
func (h *VenueHandler) List(c *gin.Context) {
	var q reqdto.ListVenuesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	views, err := h.venues.ListVenues(c.Request.Context(), q.Category, q.Query)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.VenueListResponse{
		Venues: resdto.FromVenueList(views),
		Count:  len(views),
	})
}

// @Summary Get venue
// @Description Venue detail including its weekly availability
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /venues/{id} [get]
func (h *VenueHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.venues.GetVenue(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueView(view))
}

// @Summary Available slots
// @Description Bookable slot labels for a venue on a date, in roster order
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /venues/{id}/slots [get]
func (h *VenueHandler) Slots(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	view, err := h.bookings.ListAvailableSlots(c.Request.Context(), id, q.Date)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary List venue reviews
// @Description Reviews for a venue, newest first, with keyset pagination
// @Tags reviews
// @Produce json
// @Param id path string true "Venue ID"
// @Param limit query int false "Max items (default 20)"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} httperr.Response
// @Router /venues/{id}/reviews [get]
func (h *VenueHandler) Reviews(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	items, next, err := h.reviews.ListByVenue(c.Request.Context(), id, cursorFrom(q.Cursor), queries.ValidateLimit(q.Limit))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewList(items, next))
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func cursorFrom(after string) *queries.Cursor {
	if after == "" {
		return nil
	}
	return &queries.Cursor{After: after}
}
