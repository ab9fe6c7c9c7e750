package converter

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"groundio/internal/domain/slot"
	"groundio/internal/domain/venue"
	"groundio/internal/infra/query"
	"groundio/internal/pkg/pgconv"
)

// DayJSON is the stored shape of one weekday in venues.availability.
type DayJSON struct {
	Open  bool     `json:"open"`
	Slots []string `json:"slots"`
}

func EncodeAvailability(ws venue.WeeklySchedule) ([]byte, error) {
	days := make(map[string]DayJSON)
	for wd, d := range ws.Days() {
		slots := make([]string, len(d.Slots))
		for i, l := range d.Slots {
			slots[i] = l.String()
		}
		days[strings.ToLower(wd.String())] = DayJSON{Open: d.Open, Slots: slots}
	}
	return json.Marshal(days)
}

func DecodeAvailabilityJSON(raw []byte) (map[string]DayJSON, error) {
	days := map[string]DayJSON{}
	if len(raw) == 0 {
		return days, nil
	}
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}
	return days, nil
}

func DecodeAvailability(raw []byte) (venue.WeeklySchedule, error) {
	days, err := DecodeAvailabilityJSON(raw)
	if err != nil {
		return venue.WeeklySchedule{}, err
	}
	out := make(map[time.Weekday]venue.DaySchedule, len(days))
	for name, d := range days {
		wd, err := venue.ParseWeekday(name)
		if err != nil {
			return venue.WeeklySchedule{}, err
		}
		labels := make([]slot.Label, len(d.Slots))
		for i, s := range d.Slots {
			labels[i] = slot.Label(s)
		}
		out[wd] = venue.DaySchedule{Open: d.Open, Slots: labels}
	}
	return venue.NewWeeklySchedule(out)
}

func VenueToRow(v *venue.Venue) (query.VenueRow, error) {
	availability, err := EncodeAvailability(v.Availability())
	if err != nil {
		return query.VenueRow{}, err
	}

	var rating *float64
	if r := v.Rating(); r != nil {
		value := r.Value()
		rating = &value
	}

	loc := v.Location()
	return query.VenueRow{
		ID:              v.ID(),
		MerchantID:      v.MerchantID(),
		Name:            v.Name().String(),
		Category:        v.Category().String(),
		LocationKind:    string(loc.Kind()),
		LocationText:    loc.Text(),
		LocationAddress: loc.Address(),
		LocationCity:    loc.City(),
		PricePerHour:    v.PricePerHour().Minor(),
		Rating:          pgconv.Float64PtrToPgtype(rating),
		Images:          v.Images().URIs(),
		Availability:    availability,
		IsActive:        v.IsActive(),
		CreatedAt:       v.CreatedAt(),
		UpdatedAt:       v.UpdatedAt(),
	}, nil
}

func LocationFromRow(kind, text, address, city string) (venue.Location, error) {
	if venue.LocationKind(kind) == venue.LocationStructured {
		return venue.NewStructuredLocation(address, city)
	}
	return venue.NewTextLocation(text)
}

func VenueFromRow(r query.VenueRow) (*venue.Venue, error) {
	name, err := venue.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	category, err := venue.NewCategory(r.Category)
	if err != nil {
		return nil, err
	}
	location, err := LocationFromRow(r.LocationKind, r.LocationText, r.LocationAddress, r.LocationCity)
	if err != nil {
		return nil, err
	}
	price, err := venue.NewMoney(r.PricePerHour)
	if err != nil {
		return nil, err
	}
	images, err := venue.NewImages(r.Images)
	if err != nil {
		return nil, err
	}
	availability, err := DecodeAvailability(r.Availability)
	if err != nil {
		return nil, err
	}

	var rating *venue.Rating
	if f := pgconv.Float64PtrFromPgtype(r.Rating); f != nil {
		rv, err := venue.NewRating(*f)
		if err != nil {
			return nil, err
		}
		rating = &rv
	}

	return venue.ReconstructVenue(
		r.ID, r.MerchantID, name, category, location, price, rating, images, availability,
		r.IsActive, r.CreatedAt, r.UpdatedAt,
	), nil
}
