//go:build unit

package slot_test

import (
	"testing"
	"time"

	"stagelink/internal/domain/calendar"
	"stagelink/internal/domain/slot"
	"stagelink/internal/pkg/dateutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	date := dateutil.New(2026, time.September, 12)

	t.Run("available day produces the full slot set", func(t *testing.T) {
		got := slot.Generate(date, calendar.StatusAvailable)

		want := []slot.Slot{
			{Date: date, StartHour: 14, EndHour: 18, DurationHours: 4, Price: 379, TierLabel: "2-4 Hours"},
			{Date: date, StartHour: 18, EndHour: 20, DurationHours: 2, Price: 209, TierLabel: "1-2 Hours"},
			{Date: date, StartHour: 20, EndHour: 22, DurationHours: 2, Price: 209, TierLabel: "1-2 Hours"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("non-available days produce no slots", func(t *testing.T) {
		assert.Nil(t, slot.Generate(date, calendar.StatusNotAvailable))
		assert.Nil(t, slot.Generate(date, calendar.StatusBooked))
	})

	t.Run("generation is deterministic", func(t *testing.T) {
		first := slot.Generate(date, calendar.StatusAvailable)
		second := slot.Generate(date, calendar.StatusAvailable)
		assert.Equal(t, first, second)
	})

	t.Run("slots never overlap", func(t *testing.T) {
		slots := slot.Generate(date, calendar.StatusAvailable)
		require.NotEmpty(t, slots)

		for i := 0; i < len(slots); i++ {
			for j := i + 1; j < len(slots); j++ {
				overlap := slots[i].StartHour < slots[j].EndHour && slots[j].StartHour < slots[i].EndHour
				assert.False(t, overlap, "slot %d overlaps slot %d", i, j)
			}
		}
	})
}

func TestWindows(t *testing.T) {
	t.Run("returns a copy", func(t *testing.T) {
		first := slot.Windows()
		require.NotEmpty(t, first)
		first[0].StartHour = 0

		assert.Equal(t, 14, slot.Windows()[0].StartHour)
	})
}
