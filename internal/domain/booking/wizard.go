package booking

import (
	"errors"
	"time"

	"stagelink/internal/domain/calendar"
	"stagelink/internal/domain/pricing"
	"stagelink/internal/pkg/dateutil"

	"github.com/google/uuid"
)

var (
	ErrWrongStep       = errors.New("operation not allowed in current wizard step")
	ErrDayNotAvailable = errors.New("selected date is not available")
	ErrTierNotSuitable = errors.New("pricing tier does not suit the selected duration")
	ErrWizardFinished  = errors.New("wizard already confirmed")
)

type WizardStep string

const (
	StepIdle           WizardStep = "idle"
	StepDateSelected   WizardStep = "date_selected"
	StepTimeSelected   WizardStep = "time_selected"
	StepTierSelected   WizardStep = "tier_selected"
	StepDetailsEntered WizardStep = "details_entered"
	StepConfirmed      WizardStep = "confirmed"
)

// Wizard drives a single caller's booking flow through an explicit step
// machine: idle -> date -> time -> tier -> details -> confirmed. Each
// transition has one guard; anything else is unrepresentable. Wizard state
// is caller-local and never touches the calendar or the request ledger
// until Confirm.
type Wizard struct {
	id          uuid.UUID
	performerID uuid.UUID
	venueID     uuid.UUID
	eventType   string

	step      WizardStep
	date      dateutil.Date
	timeRange TimeRange
	tier      pricing.Tier
	contact   ContactInfo
	createdAt time.Time
}

func NewWizard(performerID, venueID uuid.UUID, eventType string, now time.Time) *Wizard {
	return &Wizard{
		id:          uuid.New(),
		performerID: performerID,
		venueID:     venueID,
		eventType:   eventType,
		step:        StepIdle,
		createdAt:   now,
	}
}

func (w *Wizard) ID() uuid.UUID          { return w.id }
func (w *Wizard) PerformerID() uuid.UUID { return w.performerID }
func (w *Wizard) VenueID() uuid.UUID     { return w.venueID }
func (w *Wizard) EventType() string      { return w.eventType }
func (w *Wizard) Step() WizardStep       { return w.step }
func (w *Wizard) Date() dateutil.Date    { return w.date }
func (w *Wizard) TimeRange() TimeRange   { return w.timeRange }
func (w *Wizard) Tier() pricing.Tier     { return w.tier }
func (w *Wizard) Contact() ContactInfo   { return w.contact }
func (w *Wizard) CreatedAt() time.Time   { return w.createdAt }

// SelectDate admits only days the calendar reports as available; the wizard
// stays in idle on rejection so the caller can pick another date.
func (w *Wizard) SelectDate(date dateutil.Date, status calendar.DayStatus) error {
	if w.step != StepIdle {
		return ErrWrongStep
	}
	if status != calendar.StatusAvailable {
		return ErrDayNotAvailable
	}
	w.date = date
	w.step = StepDateSelected
	return nil
}

// SelectTime records the hour pair. dayStatus is re-checked because the day
// may have been booked since the date was selected.
func (w *Wizard) SelectTime(startHour, endHour int, dayStatus calendar.DayStatus) error {
	if w.step != StepDateSelected {
		return ErrWrongStep
	}
	if dayStatus == calendar.StatusBooked {
		return ErrDayNotAvailable
	}
	tr, err := NewTimeRange(startHour, endHour)
	if err != nil {
		return err
	}
	w.timeRange = tr
	w.step = StepTimeSelected
	return nil
}

// SuitableTiers lists the catalog tiers that fit the selected duration, in
// catalog order; the recommended tier keeps its flag for pre-highlighting.
func (w *Wizard) SuitableTiers() []pricing.Tier {
	if w.step != StepTimeSelected && w.step != StepTierSelected {
		return nil
	}
	return pricing.SuitableTiers(w.timeRange.DurationHours())
}

func (w *Wizard) SelectTier(label string) error {
	if w.step != StepTimeSelected {
		return ErrWrongStep
	}
	tier, err := pricing.TierByLabel(label)
	if err != nil {
		return err
	}
	if !tier.Suitable(w.timeRange.DurationHours()) {
		return ErrTierNotSuitable
	}
	w.tier = tier
	w.step = StepTierSelected
	return nil
}

func (w *Wizard) EnterDetails(contact ContactInfo) error {
	if w.step != StepTierSelected {
		return ErrWrongStep
	}
	w.contact = contact
	w.step = StepDetailsEntered
	return nil
}

// Confirm materializes exactly one pending request from the collected state.
// dayStatus is the availability read taken inside the committing
// transaction; a day gone unavailable fails the confirm while leaving the
// wizard on its details step for retry.
func (w *Wizard) Confirm(dayStatus calendar.DayStatus, now time.Time) (*Request, error) {
	if w.step == StepConfirmed {
		return nil, ErrWizardFinished
	}
	if w.step != StepDetailsEntered {
		return nil, ErrWrongStep
	}
	if dayStatus != calendar.StatusAvailable {
		return nil, ErrDayNotAvailable
	}
	req := NewRequest(
		w.performerID,
		w.venueID,
		w.eventType,
		w.date,
		w.timeRange,
		w.tier.Price,
		w.contact,
		now,
	)
	w.step = StepConfirmed
	return req, nil
}

// Back steps to the previous state, clearing what the abandoned step had
// captured. Going back from idle is a no-op.
func (w *Wizard) Back() error {
	switch w.step {
	case StepConfirmed:
		return ErrWizardFinished
	case StepDetailsEntered:
		w.contact = ContactInfo{}
		w.step = StepTierSelected
	case StepTierSelected:
		w.tier = pricing.Tier{}
		w.step = StepTimeSelected
	case StepTimeSelected:
		w.timeRange = TimeRange{}
		w.step = StepDateSelected
	case StepDateSelected:
		w.date = dateutil.Date{}
		w.step = StepIdle
	case StepIdle:
	}
	return nil
}

// Cancel discards all wizard-local state. It succeeds from any non-terminal
// step and has no side effects outside the wizard.
func (w *Wizard) Cancel() error {
	if w.step == StepConfirmed {
		return ErrWizardFinished
	}
	w.date = dateutil.Date{}
	w.timeRange = TimeRange{}
	w.tier = pricing.Tier{}
	w.contact = ContactInfo{}
	w.step = StepIdle
	return nil
}
