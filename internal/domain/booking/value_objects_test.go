//go:build unit

package booking_test

import (
	"testing"

	"stagelink/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeRange(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
		errIs error
	}{
		{name: "typical evening range", start: 18, end: 20},
		{name: "full day", start: 0, end: 24},
		{name: "single hour", start: 23, end: 24},
		{name: "negative start", start: -1, end: 5, errIs: booking.ErrInvalidTimeRange},
		{name: "end past midnight", start: 20, end: 25, errIs: booking.ErrInvalidTimeRange},
		{name: "zero duration", start: 10, end: 10, errIs: booking.ErrInvalidTimeRange},
		{name: "inverted range", start: 20, end: 18, errIs: booking.ErrInvalidTimeRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := booking.NewTimeRange(tt.start, tt.end)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, tr.StartHour())
			assert.Equal(t, tt.end, tr.EndHour())
			assert.Equal(t, tt.end-tt.start, tr.DurationHours())
		})
	}
}

func TestTimeRangeString(t *testing.T) {
	tr, err := booking.NewTimeRange(9, 14)
	require.NoError(t, err)
	assert.Equal(t, "09:00-14:00", tr.String())
}

func TestTimeRangeOverlaps(t *testing.T) {
	mustRange := func(start, end int) booking.TimeRange {
		tr, err := booking.NewTimeRange(start, end)
		require.NoError(t, err)
		return tr
	}

	tests := []struct {
		name string
		a, b booking.TimeRange
		want bool
	}{
		{name: "identical ranges", a: mustRange(14, 18), b: mustRange(14, 18), want: true},
		{name: "partial overlap", a: mustRange(14, 18), b: mustRange(16, 20), want: true},
		{name: "containment", a: mustRange(10, 22), b: mustRange(14, 18), want: true},
		{name: "adjacent ranges do not overlap", a: mustRange(14, 18), b: mustRange(18, 20), want: false},
		{name: "disjoint ranges", a: mustRange(10, 12), b: mustRange(20, 22), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestNewContactInfo(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		contact, err := booking.NewContactInfo("  Warehouse Opening ", " Sam Porter ", " +31 20 555 0199 ")
		require.NoError(t, err)
		assert.Equal(t, "Warehouse Opening", contact.EventName())
		assert.Equal(t, "Sam Porter", contact.ContactName())
		assert.Equal(t, "+31 20 555 0199", contact.Phone())
	})

	t.Run("missing fields", func(t *testing.T) {
		tests := []struct {
			name      string
			eventName string
			contact   string
			phone     string
		}{
			{name: "empty event name", eventName: "", contact: "Sam", phone: "555"},
			{name: "empty contact name", eventName: "Event", contact: "", phone: "555"},
			{name: "empty phone", eventName: "Event", contact: "Sam", phone: ""},
			{name: "whitespace only", eventName: "   ", contact: "  ", phone: " "},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := booking.NewContactInfo(tt.eventName, tt.contact, tt.phone)
				assert.ErrorIs(t, err, booking.ErrMissingDetails)
			})
		}
	})
}
