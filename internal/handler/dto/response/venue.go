package response

import (
	"github.com/google/uuid"

	"groundio/internal/usecase/queries"
)

type VenueResponse struct {
	ID              uuid.UUID                          `json:"id"`
	MerchantID      uuid.UUID                          `json:"merchant_id"`
	Name            string                             `json:"name"`
	Category        string                             `json:"category"`
	Location        queries.LocationView               `json:"location"`
	LocationDisplay string                             `json:"location_display"`
	PricePerHour    int64                              `json:"price_per_hour"`
	Rating          *float64                           `json:"rating,omitempty"`
	DisplayRating   float64                            `json:"display_rating"`
	PrimaryImage    string                             `json:"primary_image,omitempty"`
	Images          []string                           `json:"images"`
	IsActive        bool                               `json:"is_active"`
	Bookable        bool                               `json:"bookable"`
	Availability    map[string]queries.DayScheduleView `json:"availability,omitempty"`
	CreatedAt       int64                              `json:"created_at"`
}

func FromVenueView(v *queries.VenueView) *VenueResponse {
	images := v.Images
	if images == nil {
		images = []string{}
	}
	return &VenueResponse{
		ID:              v.ID,
		MerchantID:      v.MerchantID,
		Name:            v.Name,
		Category:        v.Category,
		Location:        v.Location,
		LocationDisplay: v.LocationDisplay,
		PricePerHour:    v.PricePerHour,
		Rating:          v.Rating,
		DisplayRating:   v.DisplayRating,
		PrimaryImage:    v.PrimaryImage(),
		Images:          images,
		IsActive:        v.IsActive,
		Bookable:        v.IsActive && !v.Catalog,
		Availability:    v.Availability,
		CreatedAt:       v.CreatedAt.Unix(),
	}
}

func FromVenueList(items []*queries.VenueView) []*VenueResponse {
	res := make([]*VenueResponse, len(items))
	for i, v := range items {
		res[i] = FromVenueView(v)
	}
	return res
}

type VenueListResponse struct {
	Venues []*VenueResponse `json:"venues"`
	Count  int              `json:"count"`
}

type AvailabilityResponse struct {
	VenueID   uuid.UUID          `json:"venue_id"`
	Date      string             `json:"date"`
	Policy    string             `json:"policy"`
	Available []string           `json:"available"`
	Slots     []queries.SlotView `json:"slots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		VenueID:   v.VenueID,
		Date:      v.Date,
		Policy:    v.Policy,
		Available: v.Available,
		Slots:     v.Slots,
	}
}
