package commands

import (
	"context"
	"log/slog"

	"stagelink/internal/domain/calendar"
	"stagelink/internal/pkg/dateutil"
	"stagelink/internal/pkg/errs"
	"stagelink/internal/usecase/queries"

	"github.com/google/uuid"
)

type DayInput struct {
	Date   dateutil.Date
	Status calendar.DayStatus
}

type AvailabilityCommands interface {
	SetDayStatus(ctx context.Context, performerID uuid.UUID, date dateutil.Date, status calendar.DayStatus) (*queries.AvailabilityDayView, error)
	// SetAvailability overwrites the listed day entries in one transaction.
	SetAvailability(ctx context.Context, performerID uuid.UUID, days []DayInput) error
	// BulkSetRange applies status to every date in [start, end] inclusive,
	// overwriting existing entries (booked days included, by policy).
	// Returns the number of days written.
	BulkSetRange(ctx context.Context, performerID uuid.UUID, start, end dateutil.Date, status calendar.DayStatus) (int, error)
}

type availabilityCommandsImpl struct {
	uow UnitOfWork
}

func NewAvailabilityCommands(uow UnitOfWork) AvailabilityCommands {
	return &availabilityCommandsImpl{uow: uow}
}

func (c *availabilityCommandsImpl) SetDayStatus(ctx context.Context, performerID uuid.UUID, date dateutil.Date, status calendar.DayStatus) (*queries.AvailabilityDayView, error) {
	day, err := calendar.NewDay(performerID, date, status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatus)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Calendar().UpsertDay(ctx, day)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.AvailabilityDayView{
		PerformerID: performerID,
		Date:        date,
		Status:      status.String(),
	}, nil
}

func (c *availabilityCommandsImpl) SetAvailability(ctx context.Context, performerID uuid.UUID, inputs []DayInput) error {
	days := make([]*calendar.Day, 0, len(inputs))
	for _, in := range inputs {
		day, err := calendar.NewDay(performerID, in.Date, in.Status)
		if err != nil {
			return errs.Mark(err, ErrInvalidStatus)
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return nil
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Calendar().UpsertDays(ctx, days)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *availabilityCommandsImpl) BulkSetRange(ctx context.Context, performerID uuid.UUID, start, end dateutil.Date, status calendar.DayStatus) (int, error) {
	// Validate everything before any write: an inverted range must not
	// apply partially.
	dates, err := calendar.DateRange(start, end)
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidDateRange)
	}

	days := make([]*calendar.Day, 0, len(dates))
	for _, d := range dates {
		day, err := calendar.NewDay(performerID, d, status)
		if err != nil {
			return 0, errs.Mark(err, ErrInvalidStatus)
		}
		days = append(days, day)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Calendar().UpsertDays(ctx, days)
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("bulk availability update",
		"performer_id", performerID.String(),
		"start", start.String(),
		"end", end.String(),
		"status", status.String(),
		"days", len(days))
	return len(days), nil
}
