package repository

import (
	"context"
	"errors"
	"time"

	"stagelink/internal/domain/calendar"
	"stagelink/internal/infra"
	"stagelink/internal/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AvailabilityRepository struct {
	db DBTX
}

func NewAvailabilityRepository(db DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

const upsertDayQuery = `
INSERT INTO availability_days (performer_id, day, status, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (performer_id, day)
DO UPDATE SET status = EXCLUDED.status, updated_at = now()`

func (r *AvailabilityRepository) UpsertDay(ctx context.Context, day *calendar.Day) error {
	_, err := r.db.Exec(ctx, upsertDayQuery,
		day.PerformerID(), day.Date().Time(), day.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to upsert availability day", err)
	}
	return nil
}

func (r *AvailabilityRepository) UpsertDays(ctx context.Context, days []*calendar.Day) error {
	for _, day := range days {
		if err := r.UpsertDay(ctx, day); err != nil {
			return err
		}
	}
	return nil
}

func (r *AvailabilityRepository) FindDay(ctx context.Context, performerID uuid.UUID, date dateutil.Date) (*calendar.Day, error) {
	var (
		status    string
		updatedAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT status, updated_at FROM availability_days WHERE performer_id = $1 AND day = $2`,
		performerID, date.Time()).Scan(&status, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find availability day", err)
	}
	return calendar.ReconstructDay(performerID, date, calendar.DayStatus(status), updatedAt), nil
}

// markBookedQuery is a compare-and-swap: the insert covers implicitly open
// days (no row yet), the conditional update covers explicitly available
// ones. Days already booked or closed leave zero rows affected.
const markBookedQuery = `
INSERT INTO availability_days (performer_id, day, status, updated_at)
VALUES ($1, $2, 'booked', $3)
ON CONFLICT (performer_id, day)
DO UPDATE SET status = 'booked', updated_at = $3
WHERE availability_days.status = 'available'`

func (r *AvailabilityRepository) MarkBooked(ctx context.Context, performerID uuid.UUID, date dateutil.Date, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, markBookedQuery, performerID, date.Time(), now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark day booked", err)
	}
	return tag.RowsAffected() > 0, nil
}
