// Package slot defines the hourly booking roster shared by every venue.
package slot

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var ErrInvalidLabel = errors.New("invalid time slot")

const (
	firstHour = 9
	lastHour  = 20
)

// Label is an hourly slot such as "09:00 AM" or "08:00 PM".
type Label string

var roster = buildRoster()

func buildRoster() []Label {
	labels := make([]Label, 0, lastHour-firstHour+1)
	for h := firstHour; h <= lastHour; h++ {
		labels = append(labels, labelForHour(h))
	}
	return labels
}

func labelForHour(h int) Label {
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return Label(fmt.Sprintf("%02d:00 %s", h12, suffix))
}

// Roster returns the full ordered label set. Callers may modify the result.
func Roster() []Label {
	return slices.Clone(roster)
}

func ParseLabel(s string) (Label, error) {
	l := Label(s)
	if !l.IsValid() {
		return "", ErrInvalidLabel
	}
	return l, nil
}

func (l Label) IsValid() bool {
	return slices.Contains(roster, l)
}

func (l Label) String() string {
	return string(l)
}

// Hour returns the 24h start hour, or -1 for labels outside the roster.
func (l Label) Hour() int {
	idx := slices.Index(roster, l)
	if idx < 0 {
		return -1
	}
	return firstHour + idx
}

// StartOn returns the wall-clock start of the slot on day in loc.
func (l Label) StartOn(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, l.Hour(), 0, 0, 0, loc)
}

// Subtract keeps the order of candidates and drops every label present in taken.
func Subtract(candidates, taken []Label) []Label {
	if len(taken) == 0 {
		return slices.Clone(candidates)
	}
	held := make(map[Label]struct{}, len(taken))
	for _, t := range taken {
		held[t] = struct{}{}
	}
	out := make([]Label, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := held[c]; !ok {
			out = append(out, c)
		}
	}
	return out
}

// Intersect keeps roster order and returns labels present in both lists.
func Intersect(a, b []Label) []Label {
	out := make([]Label, 0, len(a))
	for _, l := range a {
		if slices.Contains(b, l) {
			out = append(out, l)
		}
	}
	return out
}

type State string

const (
	StateAvailable   State = "available"
	StateUnavailable State = "unavailable"
	StateSelected    State = "selected"
)

type Status struct {
	Label Label
	State State
}

// Statuses reports every candidate with its derived state. selected may be empty.
func Statuses(candidates, taken []Label, selected Label) []Status {
	free := Subtract(candidates, taken)
	out := make([]Status, 0, len(candidates))
	for _, c := range candidates {
		state := StateUnavailable
		if slices.Contains(free, c) {
			state = StateAvailable
			if c == selected {
				state = StateSelected
			}
		}
		out = append(out, Status{Label: c, State: state})
	}
	return out
}
