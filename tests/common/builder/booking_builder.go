package builder

import (
	"time"

	"stagelink/internal/domain/booking"
	"stagelink/internal/pkg/dateutil"

	"github.com/google/uuid"
)

// BookingRequestBuilder assembles booking requests with sane defaults so
// tests only spell out what they care about.
type BookingRequestBuilder struct {
	id          uuid.UUID
	performerID uuid.UUID
	venueID     uuid.UUID
	eventType   string
	date        dateutil.Date
	startHour   int
	endHour     int
	price       int64
	status      booking.Status
	eventName   string
	contactName string
	phone       string
	createdAt   time.Time
	respondedAt *time.Time
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	return &BookingRequestBuilder{
		id:          uuid.New(),
		performerID: uuid.New(),
		venueID:     uuid.New(),
		eventType:   "club_night",
		date:        dateutil.New(2026, time.September, 12),
		startHour:   18,
		endHour:     20,
		price:       209,
		status:      booking.StatusPending,
		eventName:   "Warehouse Opening",
		contactName: "Sam Porter",
		phone:       "+31 20 555 0199",
		createdAt:   time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingRequestBuilder) WithID(id uuid.UUID) *BookingRequestBuilder {
	b.id = id
	return b
}

func (b *BookingRequestBuilder) WithPerformerID(id uuid.UUID) *BookingRequestBuilder {
	b.performerID = id
	return b
}

func (b *BookingRequestBuilder) WithDate(d dateutil.Date) *BookingRequestBuilder {
	b.date = d
	return b
}

func (b *BookingRequestBuilder) WithHours(start, end int) *BookingRequestBuilder {
	b.startHour = start
	b.endHour = end
	return b
}

func (b *BookingRequestBuilder) WithPrice(price int64) *BookingRequestBuilder {
	b.price = price
	return b
}

func (b *BookingRequestBuilder) WithStatus(status booking.Status) *BookingRequestBuilder {
	b.status = status
	return b
}

func (b *BookingRequestBuilder) BuildDomain() (*booking.Request, error) {
	timeRange, err := booking.NewTimeRange(b.startHour, b.endHour)
	if err != nil {
		return nil, err
	}
	contact, err := booking.NewContactInfo(b.eventName, b.contactName, b.phone)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructRequest(
		b.id, b.performerID, b.venueID,
		b.eventType, b.date, timeRange, b.price,
		b.status, contact, b.createdAt, b.respondedAt,
	), nil
}
