//go:build unit || e2e

package builder

import (
	"time"

	domreview "groundio/internal/domain/review"
	reqdto "groundio/internal/handler/dto/request"
	"groundio/internal/infra/query"
	"groundio/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID    uuid.UUID
	UserName  string
	VenueID   uuid.UUID
	BookingID uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		UserID:    uuid.New(),
		UserName:  "Asha Rao",
		VenueID:   uuid.New(),
		BookingID: uuid.New(),
		Rating:    5,
		Comment:   "Great turf, well lit at night",
		CreatedAt: time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.UserID, r.VenueID, r.BookingID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildInfra() query.ReviewRow {
	return query.ReviewRow{
		ID:        uuid.New(),
		UserID:    r.UserID,
		UserName:  r.UserName,
		VenueID:   r.VenueID,
		BookingID: r.BookingID,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        uuid.New(),
		UserID:    r.UserID,
		UserName:  r.UserName,
		VenueID:   r.VenueID,
		BookingID: r.BookingID,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithVenueID(venueID uuid.UUID) *ReviewBuilder {
	r.VenueID = venueID
	return r
}

func (r *ReviewBuilder) WithBookingID(bookingID uuid.UUID) *ReviewBuilder {
	r.BookingID = bookingID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithCreatedAt(createdAt time.Time) *ReviewBuilder {
	r.CreatedAt = createdAt
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Floodlights were off"
	return r
}
