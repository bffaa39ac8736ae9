package calendar

import (
	"errors"
	"time"

	"stagelink/internal/pkg/dateutil"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid day status")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

// Day is the single availability entry for one (performer, date) pair.
// Later writes overwrite earlier ones; entries are never physically removed.
type Day struct {
	performerID uuid.UUID
	date        dateutil.Date
	status      DayStatus
	updatedAt   time.Time
}

func NewDay(performerID uuid.UUID, date dateutil.Date, status DayStatus) (*Day, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Day{
		performerID: performerID,
		date:        date,
		status:      status,
	}, nil
}

func ReconstructDay(performerID uuid.UUID, date dateutil.Date, status DayStatus, updatedAt time.Time) *Day {
	return &Day{
		performerID: performerID,
		date:        date,
		status:      status,
		updatedAt:   updatedAt,
	}
}

func (d *Day) PerformerID() uuid.UUID { return d.performerID }
func (d *Day) Date() dateutil.Date    { return d.date }
func (d *Day) Status() DayStatus      { return d.status }
func (d *Day) UpdatedAt() time.Time   { return d.updatedAt }

func (d *Day) IsBookable() bool {
	return d.status == StatusAvailable
}

// DateRange expands [start, end] into individual days, rejecting inverted
// ranges before any caller-side write happens.
func DateRange(start, end dateutil.Date) ([]dateutil.Date, error) {
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}
	days := make([]dateutil.Date, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days, nil
}

// WeekOf returns the 7 dates of the Monday-based week containing reference.
func WeekOf(reference dateutil.Date) []dateutil.Date {
	monday := reference.StartOfWeek()
	week := make([]dateutil.Date, 7)
	for i := range week {
		week[i] = monday.AddDays(i)
	}
	return week
}
