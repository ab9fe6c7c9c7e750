package venue

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"groundio/internal/domain/slot"
)

var (
	ErrEmptyName       = errors.New("venue name cannot be empty")
	ErrNameTooLong     = errors.New("venue name is too long")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidRating   = errors.New("rating must be between 0 and 5")
	ErrEmptyLocation   = errors.New("venue location cannot be empty")
	ErrInvalidImageURI = errors.New("invalid image uri")
	ErrTooManyImages   = errors.New("too many images")
	ErrInvalidWeekday  = errors.New("invalid weekday")
	ErrInvalidSchedule = errors.New("invalid weekly schedule")
)

const (
	MaxNameLength = 120
	MaxImages     = 10

	// DisplayRatingFallback is shown for venues that have not been rated yet.
	DisplayRatingFallback = 4.5
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if len([]rune(s)) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Money is an amount in minor currency units.
type Money struct {
	minor int64
}

func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{minor: minor}, nil
}

func (m Money) Minor() int64 { return m.minor }

func (m Money) Multiply(n int64) Money {
	return Money{minor: m.minor * n}
}

type Rating struct {
	value float64
}

func NewRating(v float64) (Rating, error) {
	if math.IsNaN(v) || v < 0 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: math.Round(v*10) / 10}, nil
}

func (r Rating) Value() float64 { return r.value }

// DisplayRating returns the fallback for unrated venues.
func DisplayRating(r *Rating) float64 {
	if r == nil {
		return DisplayRatingFallback
	}
	return r.value
}

type LocationKind string

const (
	LocationText       LocationKind = "text"
	LocationStructured LocationKind = "structured"
)

// Location is either a free-text address or a structured address/city pair.
type Location struct {
	kind    LocationKind
	text    string
	address string
	city    string
}

func NewTextLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Location{}, ErrEmptyLocation
	}
	return Location{kind: LocationText, text: s}, nil
}

// NewStructuredLocation requires at least one of address or city.
func NewStructuredLocation(address, city string) (Location, error) {
	address, city = strings.TrimSpace(address), strings.TrimSpace(city)
	if address == "" && city == "" {
		return Location{}, ErrEmptyLocation
	}
	return Location{kind: LocationStructured, address: address, city: city}, nil
}

func (l Location) Kind() LocationKind { return l.kind }
func (l Location) Text() string       { return l.text }
func (l Location) Address() string    { return l.address }
func (l Location) City() string       { return l.city }
func (l Location) IsZero() bool       { return l.kind == "" }

// Display renders the location as the single line shown in listings.
func (l Location) Display() string {
	if l.kind == LocationText {
		return l.text
	}
	switch {
	case l.address == "":
		return l.city
	case l.city == "":
		return l.address
	default:
		return l.address + ", " + l.city
	}
}

type Images struct {
	uris []string
}

func NewImages(uris []string) (Images, error) {
	if len(uris) > MaxImages {
		return Images{}, ErrTooManyImages
	}
	out := make([]string, 0, len(uris))
	for _, raw := range uris {
		raw = strings.TrimSpace(raw)
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return Images{}, fmt.Errorf("%w: %q", ErrInvalidImageURI, raw)
		}
		out = append(out, raw)
	}
	return Images{uris: out}, nil
}

func (i Images) URIs() []string {
	out := make([]string, len(i.uris))
	copy(out, i.uris)
	return out
}

// Primary returns the first image, or "" when there are none.
func (i Images) Primary() string {
	if len(i.uris) == 0 {
		return ""
	}
	return i.uris[0]
}

type DaySchedule struct {
	Open  bool
	Slots []slot.Label
}

// WeeklySchedule is the per-weekday opening plan stored on a venue.
type WeeklySchedule struct {
	days map[time.Weekday]DaySchedule
}

func NewWeeklySchedule(days map[time.Weekday]DaySchedule) (WeeklySchedule, error) {
	out := make(map[time.Weekday]DaySchedule, len(days))
	for wd, day := range days {
		if wd < time.Sunday || wd > time.Saturday {
			return WeeklySchedule{}, ErrInvalidWeekday
		}
		for _, l := range day.Slots {
			if !l.IsValid() {
				return WeeklySchedule{}, fmt.Errorf("%w: %s has unknown slot %q", ErrInvalidSchedule, wd, l)
			}
		}
		slots := make([]slot.Label, len(day.Slots))
		copy(slots, day.Slots)
		out[wd] = DaySchedule{Open: day.Open, Slots: slots}
	}
	return WeeklySchedule{days: out}, nil
}

func (w WeeklySchedule) IsZero() bool {
	return len(w.days) == 0
}

// Day reports the schedule for wd; days that were never configured are closed.
func (w WeeklySchedule) Day(wd time.Weekday) DaySchedule {
	return w.days[wd]
}

func (w WeeklySchedule) Days() map[time.Weekday]DaySchedule {
	out := make(map[time.Weekday]DaySchedule, len(w.days))
	for wd, d := range w.days {
		out[wd] = d
	}
	return out
}

func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if s == strings.ToLower(wd.String()) {
			return wd, nil
		}
	}
	return 0, ErrInvalidWeekday
}
