package response

import (
	"stagelink/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityDayResponse struct {
	PerformerID uuid.UUID `json:"performerId"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
}

type SlotResponse struct {
	Date          string `json:"date"`
	Start         string `json:"start"`
	End           string `json:"end"`
	DurationHours int    `json:"durationHours"`
	Price         int64  `json:"price"`
	TierLabel     string `json:"tierLabel"`
}

type BulkRangeResponse struct {
	DaysUpdated int `json:"daysUpdated"`
}

func FromAvailabilityDayView(v queries.AvailabilityDayView) AvailabilityDayResponse {
	return AvailabilityDayResponse{
		PerformerID: v.PerformerID,
		Date:        v.Date.String(),
		Status:      v.Status,
	}
}

func FromAvailabilityDayViews(vs []queries.AvailabilityDayView) []AvailabilityDayResponse {
	out := make([]AvailabilityDayResponse, len(vs))
	for i, v := range vs {
		out[i] = FromAvailabilityDayView(v)
	}
	return out
}

func FromSlotViews(vs []queries.SlotView) []SlotResponse {
	out := make([]SlotResponse, len(vs))
	for i, v := range vs {
		out[i] = SlotResponse{
			Date:          v.Date.String(),
			Start:         v.Start,
			End:           v.End,
			DurationHours: v.DurationHours,
			Price:         v.Price,
			TierLabel:     v.TierLabel,
		}
	}
	return out
}
