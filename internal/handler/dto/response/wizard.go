package response

import (
	"stagelink/internal/usecase/commands"

	"github.com/google/uuid"
)

type WizardTierResponse struct {
	Label       string `json:"label"`
	MinHours    int    `json:"minHours"`
	MaxHours    int    `json:"maxHours"`
	Price       int64  `json:"price"`
	Recommended bool   `json:"recommended"`
}

type WizardResponse struct {
	SessionID     uuid.UUID            `json:"sessionId"`
	PerformerID   uuid.UUID            `json:"performerId"`
	VenueID       uuid.UUID            `json:"venueId"`
	EventType     string               `json:"eventType"`
	Step          string               `json:"step"`
	Date          string               `json:"date,omitempty"`
	TimeRange     string               `json:"timeRange,omitempty"`
	TierLabel     string               `json:"tierLabel,omitempty"`
	Price         int64                `json:"price,omitempty"`
	SuitableTiers []WizardTierResponse `json:"suitableTiers,omitempty"`
}

func FromWizardView(v *commands.WizardView) *WizardResponse {
	resp := &WizardResponse{
		SessionID:   v.SessionID,
		PerformerID: v.PerformerID,
		VenueID:     v.VenueID,
		EventType:   v.EventType,
		Step:        v.Step,
		TimeRange:   v.TimeRange,
		TierLabel:   v.TierLabel,
		Price:       v.Price,
	}
	if v.Date != nil {
		resp.Date = v.Date.String()
	}
	for _, t := range v.SuitableTiers {
		resp.SuitableTiers = append(resp.SuitableTiers, WizardTierResponse{
			Label:       t.Label,
			MinHours:    t.MinHours,
			MaxHours:    t.MaxHours,
			Price:       t.Price,
			Recommended: t.Recommended,
		})
	}
	return resp
}
