//go:build unit || e2e

package builder

import (
	"time"

	"groundio/internal/domain/venue"
	reqdto "groundio/internal/handler/dto/request"
	"groundio/internal/infra/query"
	"groundio/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueBuilder struct {
	ID           uuid.UUID
	MerchantID   uuid.UUID
	Name         string
	Category     string
	Address      string
	City         string
	PricePerHour int64
	Rating       *float64
	Images       []string
	IsActive     bool
	CreatedAt    time.Time
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:           uuid.New(),
		MerchantID:   uuid.New(),
		Name:         "Green Turf Arena",
		Category:     string(venue.CategoryFootball),
		Address:      "80 Feet Road, Koramangala",
		City:         "Bengaluru",
		PricePerHour: 500,
		Images:       []string{"https://cdn.example.com/turf.jpg"},
		IsActive:     true,
		CreatedAt:    time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (v *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(v)
	return v
}

// Build methods
func (v *VenueBuilder) BuildDomain() (*venue.Venue, error) {
	loc, err := venue.NewStructuredLocation(v.Address, v.City)
	if err != nil {
		return nil, err
	}
	out, err := venue.NewVenue(v.MerchantID, venue.Details{
		Name:              v.Name,
		Category:          v.Category,
		Location:          loc,
		PricePerHourMinor: v.PricePerHour,
		Images:            v.Images,
	}, v.CreatedAt)
	if err != nil {
		return nil, err
	}
	if !v.IsActive {
		if err := out.Deactivate(v.CreatedAt); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (v *VenueBuilder) BuildInfra() query.VenueRow {
	row := query.VenueRow{
		ID:              v.ID,
		MerchantID:      v.MerchantID,
		Name:            v.Name,
		Category:        v.Category,
		LocationKind:    string(venue.LocationStructured),
		LocationAddress: v.Address,
		LocationCity:    v.City,
		PricePerHour:    v.PricePerHour,
		Images:          v.Images,
		Availability:    []byte(`{}`),
		IsActive:        v.IsActive,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.CreatedAt,
	}
	if v.Rating != nil {
		row.Rating.Float64 = *v.Rating
		row.Rating.Valid = true
	}
	return row
}

func (v *VenueBuilder) BuildView() *queries.VenueView {
	display := venue.DisplayRating(nil)
	if v.Rating != nil {
		display = *v.Rating
	}
	return &queries.VenueView{
		ID:         v.ID,
		MerchantID: v.MerchantID,
		Name:       v.Name,
		Category:   v.Category,
		Location: queries.LocationView{
			Kind:    string(venue.LocationStructured),
			Address: v.Address,
			City:    v.City,
		},
		LocationDisplay: v.Address + ", " + v.City,
		PricePerHour:    v.PricePerHour,
		Rating:          v.Rating,
		DisplayRating:   display,
		Images:          v.Images,
		IsActive:        v.IsActive,
		Availability:    map[string]queries.DayScheduleView{},
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.CreatedAt,
	}
}

func (v *VenueBuilder) BuildCreateRequestDTO() reqdto.CreateVenueRequest {
	return reqdto.CreateVenueRequest{
		Name:         v.Name,
		Category:     v.Category,
		Location:     reqdto.LocationRequest{Address: v.Address, City: v.City},
		PricePerHour: v.PricePerHour,
		Images:       v.Images,
	}
}

// Fluent builder methods
func (v *VenueBuilder) WithID(id uuid.UUID) *VenueBuilder {
	v.ID = id
	return v
}

func (v *VenueBuilder) WithMerchantID(id uuid.UUID) *VenueBuilder {
	v.MerchantID = id
	return v
}

func (v *VenueBuilder) WithName(name string) *VenueBuilder {
	v.Name = name
	return v
}

func (v *VenueBuilder) WithCategory(category string) *VenueBuilder {
	v.Category = category
	return v
}

func (v *VenueBuilder) WithCity(city string) *VenueBuilder {
	v.City = city
	return v
}

func (v *VenueBuilder) WithPrice(minor int64) *VenueBuilder {
	v.PricePerHour = minor
	return v
}

func (v *VenueBuilder) WithRating(r float64) *VenueBuilder {
	v.Rating = &r
	return v
}

func (v *VenueBuilder) AsInactive() *VenueBuilder {
	v.IsActive = false
	return v
}
