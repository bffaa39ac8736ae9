//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"stagelink/internal/domain/calendar"
	"stagelink/internal/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDay(t *testing.T) {
	performerID := uuid.New()
	date := dateutil.New(2026, time.September, 12)

	t.Run("valid statuses", func(t *testing.T) {
		for _, status := range []calendar.DayStatus{
			calendar.StatusAvailable,
			calendar.StatusNotAvailable,
			calendar.StatusBooked,
		} {
			day, err := calendar.NewDay(performerID, date, status)
			require.NoError(t, err)
			assert.Equal(t, status, day.Status())
			assert.Equal(t, performerID, day.PerformerID())
			assert.True(t, day.Date().Equal(date))
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := calendar.NewDay(performerID, date, calendar.DayStatus("maybe"))
		assert.ErrorIs(t, err, calendar.ErrInvalidStatus)
	})

	t.Run("only available days are bookable", func(t *testing.T) {
		available, err := calendar.NewDay(performerID, date, calendar.StatusAvailable)
		require.NoError(t, err)
		assert.True(t, available.IsBookable())

		booked, err := calendar.NewDay(performerID, date, calendar.StatusBooked)
		require.NoError(t, err)
		assert.False(t, booked.IsBookable())
	})
}

func TestDayStatus(t *testing.T) {
	t.Run("default status is available", func(t *testing.T) {
		assert.Equal(t, calendar.StatusAvailable, calendar.DefaultStatus)
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, calendar.StatusAvailable.IsValid())
		assert.True(t, calendar.StatusNotAvailable.IsValid())
		assert.True(t, calendar.StatusBooked.IsValid())
		assert.False(t, calendar.DayStatus("").IsValid())
		assert.False(t, calendar.DayStatus("busy").IsValid())
	})
}

func TestDateRange(t *testing.T) {
	t.Run("inclusive on both ends", func(t *testing.T) {
		start := dateutil.New(2026, time.September, 10)
		end := dateutil.New(2026, time.September, 14)

		days, err := calendar.DateRange(start, end)
		require.NoError(t, err)
		require.Len(t, days, 5)
		assert.True(t, days[0].Equal(start))
		assert.True(t, days[4].Equal(end))
	})

	t.Run("single day range", func(t *testing.T) {
		d := dateutil.New(2026, time.September, 10)

		days, err := calendar.DateRange(d, d)
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.True(t, days[0].Equal(d))
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		start := dateutil.New(2026, time.September, 14)
		end := dateutil.New(2026, time.September, 10)

		_, err := calendar.DateRange(start, end)
		assert.ErrorIs(t, err, calendar.ErrInvalidDateRange)
	})
}

func TestWeekOf(t *testing.T) {
	t.Run("week starts on Monday", func(t *testing.T) {
		// 2026-09-12 is a Saturday.
		week := calendar.WeekOf(dateutil.New(2026, time.September, 12))

		require.Len(t, week, 7)
		assert.Equal(t, "2026-09-07", week[0].String())
		assert.Equal(t, time.Monday, week[0].Weekday())
		assert.Equal(t, "2026-09-13", week[6].String())
		assert.Equal(t, time.Sunday, week[6].Weekday())
	})

	t.Run("monday maps to its own week", func(t *testing.T) {
		monday := dateutil.New(2026, time.September, 7)
		week := calendar.WeekOf(monday)

		require.Len(t, week, 7)
		assert.True(t, week[0].Equal(monday))
	})

	t.Run("sunday belongs to the preceding monday", func(t *testing.T) {
		sunday := dateutil.New(2026, time.September, 13)
		week := calendar.WeekOf(sunday)

		assert.Equal(t, "2026-09-07", week[0].String())
		assert.True(t, week[6].Equal(sunday))
	})
}
