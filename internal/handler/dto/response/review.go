package response

import (
	"groundio/internal/usecase/queries"
)

type ReviewResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	VenueID   string `json:"venue_id"`
	BookingID string `json:"booking_id"`
	Rating    int32  `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"created_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:        v.ID.String(),
		UserID:    v.UserID.String(),
		UserName:  v.UserName,
		VenueID:   v.VenueID.String(),
		BookingID: v.BookingID.String(),
		Rating:    v.Rating,
		Comment:   v.Comment,
		CreatedAt: v.CreatedAt.Unix(),
	}
}

type ReviewListResponse struct {
	Reviews    []*ReviewResponse `json:"reviews"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

func FromReviewList(items []*queries.ReviewView, next *queries.Cursor) *ReviewListResponse {
	res := &ReviewListResponse{Reviews: make([]*ReviewResponse, len(items))}
	for i, it := range items {
		res.Reviews[i] = FromReviewView(it)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
