//go:build unit

package slot_test

import (
	"testing"
	"time"

	"groundio/internal/domain/slot"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster(t *testing.T) {
	want := []slot.Label{
		"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
		"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
		"05:00 PM", "06:00 PM", "07:00 PM", "08:00 PM",
	}
	if diff := cmp.Diff(want, slot.Roster()); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}

	t.Run("returned slice is a copy", func(t *testing.T) {
		r := slot.Roster()
		r[0] = "mutated"
		assert.Equal(t, slot.Label("09:00 AM"), slot.Roster()[0])
	})
}

func TestParseLabel(t *testing.T) {
	cases := []struct {
		in    string
		hour  int
		errIs error
	}{
		{in: "09:00 AM", hour: 9},
		{in: "12:00 PM", hour: 12},
		{in: "08:00 PM", hour: 20},
		{in: "08:00 AM", errIs: slot.ErrInvalidLabel},
		{in: "09:00 PM", errIs: slot.ErrInvalidLabel},
		{in: "9:00 AM", errIs: slot.ErrInvalidLabel},
		{in: "", errIs: slot.ErrInvalidLabel},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			l, err := slot.ParseLabel(c.in)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.hour, l.Hour())
		})
	}
}

func TestStartOn(t *testing.T) {
	loc := time.FixedZone("IST", 19800)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	got := slot.Label("01:00 PM").StartOn(day, loc)

	assert.Equal(t, time.Date(2025, 6, 1, 13, 0, 0, 0, loc), got)
}

func TestSubtract(t *testing.T) {
	t.Run("removes taken labels preserving order", func(t *testing.T) {
		got := slot.Subtract(slot.Roster(), []slot.Label{"10:00 AM", "02:00 PM"})

		assert.Len(t, got, 10)
		assert.NotContains(t, got, slot.Label("10:00 AM"))
		assert.NotContains(t, got, slot.Label("02:00 PM"))
		assert.Equal(t, slot.Label("09:00 AM"), got[0])
		assert.Equal(t, slot.Label("11:00 AM"), got[1])
	})

	t.Run("nothing taken returns full roster", func(t *testing.T) {
		assert.Equal(t, slot.Roster(), slot.Subtract(slot.Roster(), nil))
	})

	t.Run("repeated calls are idempotent", func(t *testing.T) {
		taken := []slot.Label{"09:00 AM"}
		first := slot.Subtract(slot.Roster(), taken)
		second := slot.Subtract(slot.Roster(), taken)
		assert.Equal(t, first, second)
	})
}

func TestStatuses(t *testing.T) {
	candidates := []slot.Label{"09:00 AM", "10:00 AM", "11:00 AM"}

	got := slot.Statuses(candidates, []slot.Label{"10:00 AM"}, "11:00 AM")

	want := []slot.Status{
		{Label: "09:00 AM", State: slot.StateAvailable},
		{Label: "10:00 AM", State: slot.StateUnavailable},
		{Label: "11:00 AM", State: slot.StateSelected},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("statuses mismatch (-want +got):\n%s", diff)
	}
}
