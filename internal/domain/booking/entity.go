package booking

import (
	"errors"
	"time"

	"stagelink/internal/pkg/dateutil"

	"github.com/google/uuid"
)

var (
	ErrAlreadyResolved = errors.New("booking request already resolved")
	ErrInvalidDecision = errors.New("decision must be accepted or declined")
)

// Request is a venue's proposal to book a performer for a specific slot.
// Its status leaves pending exactly once, to exactly one terminal state.
type Request struct {
	id          uuid.UUID
	performerID uuid.UUID
	venueID     uuid.UUID
	eventType   string
	date        dateutil.Date
	timeRange   TimeRange
	price       int64
	status      Status
	contact     ContactInfo
	createdAt   time.Time
	respondedAt *time.Time
}

func NewRequest(
	performerID, venueID uuid.UUID,
	eventType string,
	date dateutil.Date,
	timeRange TimeRange,
	price int64,
	contact ContactInfo,
	now time.Time,
) *Request {
	return &Request{
		id:          uuid.New(),
		performerID: performerID,
		venueID:     venueID,
		eventType:   eventType,
		date:        date,
		timeRange:   timeRange,
		price:       price,
		status:      StatusPending,
		contact:     contact,
		createdAt:   now,
	}
}

func ReconstructRequest(
	id, performerID, venueID uuid.UUID,
	eventType string,
	date dateutil.Date,
	timeRange TimeRange,
	price int64,
	status Status,
	contact ContactInfo,
	createdAt time.Time,
	respondedAt *time.Time,
) *Request {
	return &Request{
		id:          id,
		performerID: performerID,
		venueID:     venueID,
		eventType:   eventType,
		date:        date,
		timeRange:   timeRange,
		price:       price,
		status:      status,
		contact:     contact,
		createdAt:   createdAt,
		respondedAt: respondedAt,
	}
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) PerformerID() uuid.UUID { return r.performerID }
func (r *Request) VenueID() uuid.UUID     { return r.venueID }
func (r *Request) EventType() string      { return r.eventType }
func (r *Request) Date() dateutil.Date    { return r.date }
func (r *Request) TimeRange() TimeRange   { return r.timeRange }
func (r *Request) Price() int64           { return r.price }
func (r *Request) Status() Status         { return r.status }
func (r *Request) Contact() ContactInfo   { return r.contact }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }
func (r *Request) RespondedAt() *time.Time {
	return r.respondedAt
}

func (r *Request) IsPending() bool {
	return r.status == StatusPending
}

// Respond moves the request to its terminal state. A request that already
// left pending cannot move again.
func (r *Request) Respond(decision Decision, now time.Time) error {
	if r.status.IsTerminal() {
		return ErrAlreadyResolved
	}
	switch decision {
	case DecisionAccepted:
		r.status = StatusAccepted
	case DecisionDeclined:
		r.status = StatusDeclined
	default:
		return ErrInvalidDecision
	}
	r.respondedAt = &now
	return nil
}
