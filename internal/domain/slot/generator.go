package slot

import (
	"stagelink/internal/domain/calendar"
	"stagelink/internal/domain/pricing"
	"stagelink/internal/pkg/dateutil"
)

// Slot is a derived, priced, bookable time window within an available day.
// Slots are never persisted; they are regenerated on demand.
type Slot struct {
	Date          dateutil.Date
	StartHour     int
	EndHour       int
	DurationHours int
	Price         int64
	TierLabel     string
}

// Window is a fixed candidate booking window. The catalog below never
// overlaps, which keeps generated slots disjoint by construction.
type Window struct {
	StartHour int
	EndHour   int
}

var windows = []Window{
	{StartHour: 14, EndHour: 18},
	{StartHour: 18, EndHour: 20},
	{StartHour: 20, EndHour: 22},
}

func Windows() []Window {
	out := make([]Window, len(windows))
	copy(out, windows)
	return out
}

// Generate derives the bookable slots for one day. It is a pure function of
// (date, status, tier catalog): days that are not available produce no slots,
// and repeated calls yield identical output.
func Generate(date dateutil.Date, status calendar.DayStatus) []Slot {
	if status != calendar.StatusAvailable {
		return nil
	}

	slots := make([]Slot, 0, len(windows))
	for _, w := range windows {
		duration := w.EndHour - w.StartHour
		tier, ok := pricing.TierForDuration(duration)
		if !ok {
			continue
		}
		slots = append(slots, Slot{
			Date:          date,
			StartHour:     w.StartHour,
			EndHour:       w.EndHour,
			DurationHours: duration,
			Price:         tier.Price,
			TierLabel:     tier.Label,
		})
	}
	return slots
}
