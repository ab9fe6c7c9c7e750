package converter

import (
	"groundio/internal/domain/review"
	"groundio/internal/infra/query"
)

func ReviewToCreateParams(r *review.Review) query.CreateReviewParams {
	return query.CreateReviewParams{
		ID:        r.ID(),
		UserID:    r.UserID(),
		VenueID:   r.VenueID(),
		BookingID: r.BookingID(),
		Rating:    int32(r.Rating().Value()), // #nosec G115 -- rating is 1..5
		Comment:   r.Comment().String(),
		CreatedAt: r.CreatedAt(),
	}
}
