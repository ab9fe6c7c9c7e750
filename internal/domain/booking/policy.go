package booking

import (
	"errors"

	"groundio/internal/domain/slot"
	"groundio/internal/domain/venue"
)

var ErrUnknownSlotPolicy = errors.New("unknown slot policy")

const (
	PolicyFixed  = "fixed"
	PolicyWeekly = "weekly"
)

// SlotPolicy decides which roster labels a venue offers on a given day.
type SlotPolicy interface {
	Bookable(schedule venue.WeeklySchedule, date Date) []slot.Label
	Name() string
}

// FixedRoster offers the full roster every day at every venue.
type FixedRoster struct{}

func (FixedRoster) Bookable(_ venue.WeeklySchedule, _ Date) []slot.Label {
	return slot.Roster()
}

func (FixedRoster) Name() string { return PolicyFixed }

// WeeklySchedule narrows the roster to the venue's opening plan for the weekday.
// Venues with no plan at all fall back to the full roster.
type WeeklySchedule struct{}

func (WeeklySchedule) Bookable(schedule venue.WeeklySchedule, date Date) []slot.Label {
	if schedule.IsZero() {
		return slot.Roster()
	}
	day := schedule.Day(date.Weekday())
	if !day.Open {
		return []slot.Label{}
	}
	return slot.Intersect(slot.Roster(), day.Slots)
}

func (WeeklySchedule) Name() string { return PolicyWeekly }

func NewSlotPolicy(name string) (SlotPolicy, error) {
	switch name {
	case "", PolicyFixed:
		return FixedRoster{}, nil
	case PolicyWeekly:
		return WeeklySchedule{}, nil
	default:
		return nil, ErrUnknownSlotPolicy
	}
}

// AvailableSlots is the policy's roster for the day minus labels already held.
func AvailableSlots(policy SlotPolicy, schedule venue.WeeklySchedule, date Date, taken []slot.Label) []slot.Label {
	return slot.Subtract(policy.Bookable(schedule, date), taken)
}
