package response

import (
	"time"

	"stagelink/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingRequestResponse struct {
	ID          uuid.UUID  `json:"id"`
	PerformerID uuid.UUID  `json:"performerId"`
	VenueID     uuid.UUID  `json:"venueId"`
	EventType   string     `json:"eventType"`
	Date        string     `json:"date"`
	TimeRange   string     `json:"timeRange"`
	Price       int64      `json:"price"`
	Status      string     `json:"status"`
	EventName   string     `json:"eventName"`
	ContactName string     `json:"contactName"`
	Phone       string     `json:"phone"`
	CreatedAt   time.Time  `json:"createdAt"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
}

type BookingRequestPageResponse struct {
	Items    []BookingRequestResponse `json:"items"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"pageSize"`
}

func FromBookingRequestView(v *queries.BookingRequestView) *BookingRequestResponse {
	return &BookingRequestResponse{
		ID:          v.ID,
		PerformerID: v.PerformerID,
		VenueID:     v.VenueID,
		EventType:   v.EventType,
		Date:        v.Date.String(),
		TimeRange:   v.TimeRange,
		Price:       v.Price,
		Status:      v.Status,
		EventName:   v.EventName,
		ContactName: v.ContactName,
		Phone:       v.Phone,
		CreatedAt:   v.CreatedAt,
		RespondedAt: v.RespondedAt,
	}
}

func FromBookingRequestPage(p *queries.BookingRequestPage) *BookingRequestPageResponse {
	items := make([]BookingRequestResponse, len(p.Items))
	for i := range p.Items {
		items[i] = *FromBookingRequestView(&p.Items[i])
	}
	return &BookingRequestPageResponse{
		Items:    items,
		Total:    p.Total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}
