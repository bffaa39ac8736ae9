package repository

import (
	"context"
	"errors"
	"time"

	"stagelink/internal/domain/booking"
	"stagelink/internal/infra"
	"stagelink/internal/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

const createRequestQuery = `
INSERT INTO booking_requests
  (id, performer_id, venue_id, event_type, day, start_hour, end_hour,
   price, status, event_name, contact_name, phone, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (r *BookingRepository) Create(ctx context.Context, req *booking.Request) error {
	_, err := r.db.Exec(ctx, createRequestQuery,
		req.ID(),
		req.PerformerID(),
		req.VenueID(),
		req.EventType(),
		req.Date().Time(),
		req.TimeRange().StartHour(),
		req.TimeRange().EndHour(),
		req.Price(),
		req.Status().String(),
		req.Contact().EventName(),
		req.Contact().ContactName(),
		req.Contact().Phone(),
		req.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking request", err)
	}
	return nil
}

const findForUpdateQuery = `
SELECT id, performer_id, venue_id, event_type, day, start_hour, end_hour,
       price, status, event_name, contact_name, phone, created_at, responded_at
FROM booking_requests
WHERE id = $1
FOR UPDATE`

// FindForUpdate locks the request row so concurrent responders serialize on
// it for the rest of the transaction.
func (r *BookingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Request, error) {
	req, err := scanRequest(r.db.QueryRow(ctx, findForUpdateQuery, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking request", err)
	}
	return req, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, req *booking.Request) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE booking_requests SET status = $2, responded_at = $3 WHERE id = $1`,
		req.ID(), req.Status().String(), req.RespondedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking request vanished during update", nil, infra.KindNotFound)
	}
	return nil
}

func scanRequest(row pgx.Row) (*booking.Request, error) {
	var (
		id, performerID, venueID             uuid.UUID
		eventType                            string
		day                                  time.Time
		startHour, endHour                   int
		price                                int64
		status, eventName, contactName, phone string
		createdAt                            time.Time
		respondedAt                          *time.Time
	)
	err := row.Scan(&id, &performerID, &venueID, &eventType, &day, &startHour, &endHour,
		&price, &status, &eventName, &contactName, &phone, &createdAt, &respondedAt)
	if err != nil {
		return nil, err
	}

	timeRange, err := booking.NewTimeRange(startHour, endHour)
	if err != nil {
		return nil, err
	}
	contact, err := booking.NewContactInfo(eventName, contactName, phone)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructRequest(
		id, performerID, venueID,
		eventType,
		dateutil.FromTime(day),
		timeRange,
		price,
		booking.Status(status),
		contact,
		createdAt,
		respondedAt,
	), nil
}
