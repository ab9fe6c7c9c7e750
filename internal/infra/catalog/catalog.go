// Package catalog embeds the static venue list served when the live directory
// has nothing to show.
package catalog

import (
	_ "embed"
	"fmt"
	"time"

	"groundio/internal/domain/venue"
	"groundio/internal/usecase/queries"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed venues.yaml
var defaultCatalog []byte

type entry struct {
	ID       uuid.UUID `yaml:"id"`
	Name     string    `yaml:"name"`
	Category string    `yaml:"category"`
	Location struct {
		Text    string `yaml:"text"`
		Address string `yaml:"address"`
		City    string `yaml:"city"`
	} `yaml:"location"`
	PricePerHour int64    `yaml:"price_per_hour"`
	Rating       *float64 `yaml:"rating"`
	Images       []string `yaml:"images"`
	Active       *bool    `yaml:"active"`
}

type file struct {
	Venues []entry `yaml:"venues"`
}

type Catalog struct {
	venues []*queries.VenueView
}

func Load() (*Catalog, error) {
	return Parse(defaultCatalog, time.Now())
}

// Parse validates every entry through the venue domain; the first invalid
// entry fails the whole catalog. loadedAt stamps the synthetic timestamps.
func Parse(data []byte, loadedAt time.Time) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse venue catalog: %w", err)
	}

	out := make([]*queries.VenueView, 0, len(f.Venues))
	for i, e := range f.Venues {
		v, err := e.toView(loadedAt)
		if err != nil {
			return nil, fmt.Errorf("venue catalog entry %d (%s): %w", i, e.Name, err)
		}
		out = append(out, v)
	}
	return &Catalog{venues: out}, nil
}

func (e entry) toView(at time.Time) (*queries.VenueView, error) {
	name, err := venue.NewName(e.Name)
	if err != nil {
		return nil, err
	}
	category, err := venue.NewCategory(e.Category)
	if err != nil {
		return nil, err
	}
	if _, err := venue.NewMoney(e.PricePerHour); err != nil {
		return nil, err
	}
	images, err := venue.NewImages(e.Images)
	if err != nil {
		return nil, err
	}

	var loc venue.Location
	if e.Location.Text != "" {
		loc, err = venue.NewTextLocation(e.Location.Text)
	} else {
		loc, err = venue.NewStructuredLocation(e.Location.Address, e.Location.City)
	}
	if err != nil {
		return nil, err
	}

	var rating *venue.Rating
	if e.Rating != nil {
		r, err := venue.NewRating(*e.Rating)
		if err != nil {
			return nil, err
		}
		rating = &r
	}

	id := e.ID
	if id == uuid.Nil {
		id = uuid.NewSHA1(uuid.NameSpaceURL, []byte("groundio:catalog:"+name.String()))
	}

	active := true
	if e.Active != nil {
		active = *e.Active
	}

	var ratingValue *float64
	if rating != nil {
		v := rating.Value()
		ratingValue = &v
	}

	return &queries.VenueView{
		ID:       id,
		Name:     name.String(),
		Category: category.String(),
		Location: queries.LocationView{
			Kind:    string(loc.Kind()),
			Text:    loc.Text(),
			Address: loc.Address(),
			City:    loc.City(),
		},
		LocationDisplay: loc.Display(),
		PricePerHour:    e.PricePerHour,
		Rating:          ratingValue,
		DisplayRating:   venue.DisplayRating(rating),
		Images:          images.URIs(),
		IsActive:        active,
		Catalog:         true,
		CreatedAt:       at,
		UpdatedAt:       at,
	}, nil
}

// Venues returns the catalog in file order. Callers must not mutate the entries.
func (c *Catalog) Venues() []*queries.VenueView {
	return c.venues
}
