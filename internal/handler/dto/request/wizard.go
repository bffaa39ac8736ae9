package request

import (
	"github.com/google/uuid"
)

type StartWizardRequest struct {
	PerformerID uuid.UUID `json:"performerId" binding:"required"`
	VenueID     uuid.UUID `json:"venueId" binding:"required"`
	EventType   string    `json:"eventType" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SelectTimeRequest struct {
	StartHour int `json:"startHour" binding:"min=0,max=23"`
	EndHour   int `json:"endHour" binding:"required,min=1,max=24"`
}

type SelectTierRequest struct {
	Label string `json:"label" binding:"required"`
}

type EnterDetailsRequest struct {
	EventName   string `json:"eventName" binding:"required"`
	ContactName string `json:"contactName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
}
