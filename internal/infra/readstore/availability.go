package readstore

import (
	"context"
	"errors"
	"time"

	"stagelink/internal/infra"
	"stagelink/internal/pkg/dateutil"
	"stagelink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityReadStore struct {
	pool *pgxpool.Pool
}

func NewAvailabilityReadStore(pool *pgxpool.Pool) *AvailabilityReadStore {
	return &AvailabilityReadStore{pool: pool}
}

func (s *AvailabilityReadStore) FindDays(ctx context.Context, performerID uuid.UUID) ([]queries.AvailabilityDayView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT day, status FROM availability_days WHERE performer_id = $1 ORDER BY day`,
		performerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability days", err)
	}
	return scanDayViews(rows, performerID)
}

func (s *AvailabilityReadStore) FindDaysInRange(ctx context.Context, performerID uuid.UUID, start, end dateutil.Date) ([]queries.AvailabilityDayView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT day, status FROM availability_days
		 WHERE performer_id = $1 AND day BETWEEN $2 AND $3
		 ORDER BY day`,
		performerID, start.Time(), end.Time())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability days in range", err)
	}
	return scanDayViews(rows, performerID)
}

func (s *AvailabilityReadStore) FindDay(ctx context.Context, performerID uuid.UUID, date dateutil.Date) (*queries.AvailabilityDayView, error) {
	var status string
	err := s.pool.QueryRow(ctx,
		`SELECT status FROM availability_days WHERE performer_id = $1 AND day = $2`,
		performerID, date.Time()).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find availability day", err)
	}
	return &queries.AvailabilityDayView{
		PerformerID: performerID,
		Date:        date,
		Status:      status,
	}, nil
}

func scanDayViews(rows pgx.Rows, performerID uuid.UUID) ([]queries.AvailabilityDayView, error) {
	defer rows.Close()

	var views []queries.AvailabilityDayView
	for rows.Next() {
		var (
			day    time.Time
			status string
		)
		if err := rows.Scan(&day, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability day", err)
		}
		views = append(views, queries.AvailabilityDayView{
			PerformerID: performerID,
			Date:        dateutil.FromTime(day),
			Status:      status,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability days", err)
	}
	return views, nil
}
