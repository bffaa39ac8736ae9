package queries

import (
	"context"
	"fmt"

	"stagelink/internal/domain/calendar"
	"stagelink/internal/domain/slot"
	"stagelink/internal/pkg/dateutil"

	"github.com/google/uuid"
)

type AvailabilityReadStore interface {
	FindDays(ctx context.Context, performerID uuid.UUID) ([]AvailabilityDayView, error)
	FindDaysInRange(ctx context.Context, performerID uuid.UUID, start, end dateutil.Date) ([]AvailabilityDayView, error)
	// FindDay returns (nil, nil) for days without an explicit entry.
	FindDay(ctx context.Context, performerID uuid.UUID, date dateutil.Date) (*AvailabilityDayView, error)
}

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, performerID uuid.UUID) ([]AvailabilityDayView, error)
	GetDayStatus(ctx context.Context, performerID uuid.UUID, date dateutil.Date) (AvailabilityDayView, error)
	WeeklyOverview(ctx context.Context, performerID uuid.UUID, reference dateutil.Date) ([]AvailabilityDayView, error)
	SlotsForDay(ctx context.Context, performerID uuid.UUID, date dateutil.Date) ([]SlotView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, performerID uuid.UUID) ([]AvailabilityDayView, error) {
	return q.store.FindDays(ctx, performerID)
}

// GetDayStatus falls back to the calendar default for unset days: days
// without an entry are implicitly open.
func (q *availabilityQueriesImpl) GetDayStatus(ctx context.Context, performerID uuid.UUID, date dateutil.Date) (AvailabilityDayView, error) {
	view, err := q.store.FindDay(ctx, performerID, date)
	if err != nil {
		return AvailabilityDayView{}, err
	}
	if view == nil {
		return AvailabilityDayView{
			PerformerID: performerID,
			Date:        date,
			Status:      calendar.DefaultStatus.String(),
		}, nil
	}
	return *view, nil
}

// WeeklyOverview annotates all 7 days of the week containing reference,
// filling gaps with the default status. Pure read, no side effects.
func (q *availabilityQueriesImpl) WeeklyOverview(ctx context.Context, performerID uuid.UUID, reference dateutil.Date) ([]AvailabilityDayView, error) {
	week := calendar.WeekOf(reference)
	stored, err := q.store.FindDaysInRange(ctx, performerID, week[0], week[len(week)-1])
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]AvailabilityDayView, len(stored))
	for _, v := range stored {
		byDate[v.Date.String()] = v
	}

	out := make([]AvailabilityDayView, 0, len(week))
	for _, d := range week {
		if v, ok := byDate[d.String()]; ok {
			out = append(out, v)
			continue
		}
		out = append(out, AvailabilityDayView{
			PerformerID: performerID,
			Date:        d,
			Status:      calendar.DefaultStatus.String(),
		})
	}
	return out, nil
}

func (q *availabilityQueriesImpl) SlotsForDay(ctx context.Context, performerID uuid.UUID, date dateutil.Date) ([]SlotView, error) {
	day, err := q.GetDayStatus(ctx, performerID, date)
	if err != nil {
		return nil, err
	}

	generated := slot.Generate(date, calendar.DayStatus(day.Status))
	views := make([]SlotView, 0, len(generated))
	for _, s := range generated {
		views = append(views, SlotView{
			Date:          s.Date,
			Start:         fmt.Sprintf("%02d:00", s.StartHour),
			End:           fmt.Sprintf("%02d:00", s.EndHour),
			DurationHours: s.DurationHours,
			Price:         s.Price,
			TierLabel:     s.TierLabel,
		})
	}
	return views, nil
}
