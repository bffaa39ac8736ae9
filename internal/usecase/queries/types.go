package queries

import (
	"time"

	"stagelink/internal/pkg/dateutil"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AvailabilityDayView struct {
	PerformerID uuid.UUID     `json:"performerId"`
	Date        dateutil.Date `json:"date"`
	Status      string        `json:"status"`
}

type SlotView struct {
	Date          dateutil.Date `json:"date"`
	Start         string        `json:"start"`
	End           string        `json:"end"`
	DurationHours int           `json:"durationHours"`
	Price         int64         `json:"price"`
	TierLabel     string        `json:"tierLabel"`
}

type BookingRequestView struct {
	ID          uuid.UUID     `json:"id"`
	PerformerID uuid.UUID     `json:"performerId"`
	VenueID     uuid.UUID     `json:"venueId"`
	EventType   string        `json:"eventType"`
	Date        dateutil.Date `json:"date"`
	TimeRange   string        `json:"timeRange"`
	Price       int64         `json:"price"`
	Status      string        `json:"status"`
	EventName   string        `json:"eventName"`
	ContactName string        `json:"contactName"`
	Phone       string        `json:"phone"`
	CreatedAt   time.Time     `json:"createdAt"`
	RespondedAt *time.Time    `json:"respondedAt,omitempty"`
}

type BookingRequestPage struct {
	Items    []BookingRequestView `json:"items"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}

type TransactionView struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

type WalletView struct {
	PerformerID  uuid.UUID         `json:"performerId"`
	Balance      int64             `json:"balance"`
	Transactions []TransactionView `json:"transactions"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizePage clamps paging inputs to sane bounds.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
