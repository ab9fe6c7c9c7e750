package request

import (
	"groundio/internal/usecase/commands"
)

type LocationRequest struct {
	Text    string `json:"text" binding:"omitempty,max=300"`
	Address string `json:"address" binding:"omitempty,max=300"`
	City    string `json:"city" binding:"omitempty,max=100"`
}

type DayScheduleRequest struct {
	Open  bool     `json:"open"`
	Slots []string `json:"slots"`
}

type CreateVenueRequest struct {
	Name         string                        `json:"name" binding:"required,max=120"`
	Category     string                        `json:"category" binding:"required"`
	Location     LocationRequest               `json:"location"`
	PricePerHour int64                         `json:"price_per_hour" binding:"min=0"`
	Images       []string                      `json:"images" binding:"omitempty,max=10,dive,url"`
	Availability map[string]DayScheduleRequest `json:"availability"`
}

func (r *CreateVenueRequest) ToInput() commands.VenueInput {
	return commands.VenueInput{
		Name:              r.Name,
		Category:          r.Category,
		Location:          commands.LocationInput(r.Location),
		PricePerHourMinor: r.PricePerHour,
		Images:            r.Images,
		Availability:      scheduleInput(r.Availability),
	}
}

type UpdateVenueRequest struct {
	Name         *string                       `json:"name" binding:"omitempty,max=120"`
	Category     *string                       `json:"category"`
	Location     *LocationRequest              `json:"location"`
	PricePerHour *int64                        `json:"price_per_hour" binding:"omitempty,min=0"`
	Images       []string                      `json:"images" binding:"omitempty,max=10,dive,url"`
	Availability map[string]DayScheduleRequest `json:"availability"`
}

func (r *UpdateVenueRequest) ToPatch() commands.VenuePatch {
	p := commands.VenuePatch{
		Name:              r.Name,
		Category:          r.Category,
		PricePerHourMinor: r.PricePerHour,
		Images:            r.Images,
	}
	if r.Location != nil {
		loc := commands.LocationInput(*r.Location)
		p.Location = &loc
	}
	if r.Availability != nil {
		p.Availability = scheduleInput(r.Availability)
	}
	return p
}

func scheduleInput(in map[string]DayScheduleRequest) map[string]commands.DayScheduleInput {
	if in == nil {
		return nil
	}
	out := make(map[string]commands.DayScheduleInput, len(in))
	for day, s := range in {
		out[day] = commands.DayScheduleInput{Open: s.Open, Slots: s.Slots}
	}
	return out
}

type ListVenuesQuery struct {
	Category string `form:"category"`
	Query    string `form:"q" binding:"max=100"`
}
