package booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidTimeRange = errors.New("end hour must be after start hour")
	ErrMissingDetails   = errors.New("event name, contact name and phone are required")
)

// TimeRange is a same-day booking window expressed in whole hours.
type TimeRange struct {
	startHour int
	endHour   int
}

func NewTimeRange(startHour, endHour int) (TimeRange, error) {
	if startHour < 0 || endHour > 24 || endHour <= startHour {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{startHour: startHour, endHour: endHour}, nil
}

func (tr TimeRange) StartHour() int { return tr.startHour }
func (tr TimeRange) EndHour() int   { return tr.endHour }

func (tr TimeRange) DurationHours() int {
	return tr.endHour - tr.startHour
}

func (tr TimeRange) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", tr.startHour, tr.endHour)
}

// Overlaps treats ranges as half-open [start, end).
func (tr TimeRange) Overlaps(other TimeRange) bool {
	return tr.startHour < other.endHour && other.startHour < tr.endHour
}

// ContactInfo is the detail block a venue supplies before committing a
// booking request.
type ContactInfo struct {
	eventName   string
	contactName string
	phone       string
}

func NewContactInfo(eventName, contactName, phone string) (ContactInfo, error) {
	eventName = strings.TrimSpace(eventName)
	contactName = strings.TrimSpace(contactName)
	phone = strings.TrimSpace(phone)
	if eventName == "" || contactName == "" || phone == "" {
		return ContactInfo{}, ErrMissingDetails
	}
	return ContactInfo{
		eventName:   eventName,
		contactName: contactName,
		phone:       phone,
	}, nil
}

func (c ContactInfo) EventName() string   { return c.eventName }
func (c ContactInfo) ContactName() string { return c.contactName }
func (c ContactInfo) Phone() string       { return c.phone }
