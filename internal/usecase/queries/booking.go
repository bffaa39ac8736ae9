package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingRequestView, error)
	// FindByPerformerPaged returns one page ordered by created_at descending
	// (id descending as tiebreak) plus the total row count.
	FindByPerformerPaged(ctx context.Context, performerID uuid.UUID, limit, offset int32) ([]BookingRequestView, int64, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingRequestView, error)
	ListByPerformer(ctx context.Context, performerID uuid.UUID, page, pageSize int) (*BookingRequestPage, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingRequestView, error) {
	return q.store.FindByID(ctx, id)
}

// ListByPerformer mirrors the "Recent Bookings" view contract: newest first,
// stable ordering, page/pageSize with a total.
func (q *bookingQueriesImpl) ListByPerformer(ctx context.Context, performerID uuid.UUID, page, pageSize int) (*BookingRequestPage, error) {
	page, pageSize = NormalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	items, total, err := q.store.FindByPerformerPaged(ctx, performerID, int32(pageSize), int32(offset))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []BookingRequestView{}
	}
	return &BookingRequestPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
