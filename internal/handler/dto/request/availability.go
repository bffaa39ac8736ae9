package request

import (
	"stagelink/internal/domain/calendar"
	"stagelink/internal/pkg/dateutil"
	"stagelink/internal/usecase/commands"
)

type DayEntry struct {
	Date   string `json:"date" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type SetDayStatusRequest struct {
	Date   string `json:"date" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type SetAvailabilityRequest struct {
	Days []DayEntry `json:"days" binding:"required,min=1,dive"`
}

type BulkRangeRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

func (r SetAvailabilityRequest) ToInputs() ([]commands.DayInput, error) {
	inputs := make([]commands.DayInput, 0, len(r.Days))
	for _, d := range r.Days {
		date, err := dateutil.Parse(d.Date)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, commands.DayInput{
			Date:   date,
			Status: calendar.DayStatus(d.Status),
		})
	}
	return inputs, nil
}
