package readstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stagelink/internal/infra"
	"stagelink/internal/pkg/dateutil"
	"stagelink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingViewColumns = `
id, performer_id, venue_id, event_type, day, start_hour, end_hour,
price, status, event_name, contact_name, phone, created_at, responded_at`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingRequestView, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+bookingViewColumns+` FROM booking_requests WHERE id = $1`, id)

	view, err := scanBookingView(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking request", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindByPerformerPaged(ctx context.Context, performerID uuid.UUID, limit, offset int32) ([]queries.BookingRequestView, int64, error) {
	var total int64
	err := s.pool.QueryRow(ctx,
		`SELECT count(*) FROM booking_requests WHERE performer_id = $1`,
		performerID).Scan(&total)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count booking requests", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+bookingViewColumns+`
		 FROM booking_requests
		 WHERE performer_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		performerID, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list booking requests", err)
	}
	defer rows.Close()

	var views []queries.BookingRequestView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan booking request", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read booking requests", err)
	}
	return views, total, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingRequestView, error) {
	var (
		v                  queries.BookingRequestView
		day                time.Time
		startHour, endHour int
	)
	err := row.Scan(&v.ID, &v.PerformerID, &v.VenueID, &v.EventType, &day,
		&startHour, &endHour, &v.Price, &v.Status,
		&v.EventName, &v.ContactName, &v.Phone, &v.CreatedAt, &v.RespondedAt)
	if err != nil {
		return nil, err
	}
	v.Date = dateutil.FromTime(day)
	v.TimeRange = fmt.Sprintf("%02d:00-%02d:00", startHour, endHour)
	return &v, nil
}
