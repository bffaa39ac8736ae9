package commands

import (
	"context"
	"errors"
	"log/slog"

	"stagelink/internal/domain/booking"
	"stagelink/internal/domain/calendar"
	"stagelink/internal/domain/pricing"
	"stagelink/internal/pkg/clock"
	"stagelink/internal/pkg/dateutil"
	"stagelink/internal/pkg/errs"
	"stagelink/internal/usecase/queries"

	"github.com/google/uuid"
)

// WizardView is the caller-facing snapshot of one wizard session, including
// the tiers selectable at the current step (recommended tier flagged for
// pre-highlighting).
type WizardView struct {
	SessionID     uuid.UUID        `json:"sessionId"`
	PerformerID   uuid.UUID        `json:"performerId"`
	VenueID       uuid.UUID        `json:"venueId"`
	EventType     string           `json:"eventType"`
	Step          string           `json:"step"`
	Date          *dateutil.Date   `json:"date,omitempty"`
	TimeRange     string           `json:"timeRange,omitempty"`
	TierLabel     string           `json:"tierLabel,omitempty"`
	Price         int64            `json:"price,omitempty"`
	SuitableTiers []WizardTierView `json:"suitableTiers,omitempty"`
}

type WizardTierView struct {
	Label       string `json:"label"`
	MinHours    int    `json:"minHours"`
	MaxHours    int    `json:"maxHours"`
	Price       int64  `json:"price"`
	Recommended bool   `json:"recommended"`
}

type WizardCommands interface {
	Start(ctx context.Context, performerID, venueID uuid.UUID, eventType string) (*WizardView, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*WizardView, error)
	SelectDate(ctx context.Context, sessionID uuid.UUID, date dateutil.Date) (*WizardView, error)
	SelectTime(ctx context.Context, sessionID uuid.UUID, startHour, endHour int) (*WizardView, error)
	SelectTier(ctx context.Context, sessionID uuid.UUID, label string) (*WizardView, error)
	EnterDetails(ctx context.Context, sessionID uuid.UUID, eventName, contactName, phone string) (*WizardView, error)
	Back(ctx context.Context, sessionID uuid.UUID) (*WizardView, error)
	// Cancel discards the session; it never touches the calendar or the
	// request ledger.
	Cancel(ctx context.Context, sessionID uuid.UUID) error
	// Confirm creates exactly one pending booking request and discards the
	// session. On recoverable failures (upstream timeout, lost slot) the
	// session keeps its current step so the caller can retry.
	Confirm(ctx context.Context, sessionID uuid.UUID) (*queries.BookingRequestView, error)
}

type wizardCommandsImpl struct {
	sessions WizardSessionStore
	uow      UnitOfWork
	venues   VenueDirectory
	clock    clock.Clock
}

func NewWizardCommands(sessions WizardSessionStore, uow UnitOfWork, venues VenueDirectory, clock clock.Clock) WizardCommands {
	return &wizardCommandsImpl{
		sessions: sessions,
		uow:      uow,
		venues:   venues,
		clock:    clock,
	}
}

func (c *wizardCommandsImpl) Start(ctx context.Context, performerID, venueID uuid.UUID, eventType string) (*WizardView, error) {
	w := booking.NewWizard(performerID, venueID, eventType, c.clock.Now())
	c.sessions.Put(w)

	slog.Info("wizard session started",
		"session_id", w.ID().String(),
		"performer_id", performerID.String())
	return wizardView(w), nil
}

func (c *wizardCommandsImpl) Get(_ context.Context, sessionID uuid.UUID) (*WizardView, error) {
	w, ok := c.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return wizardView(w), nil
}

func (c *wizardCommandsImpl) SelectDate(ctx context.Context, sessionID uuid.UUID, date dateutil.Date) (*WizardView, error) {
	w, ok := c.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	status, err := c.dayStatus(ctx, w.PerformerID(), date)
	if err != nil {
		return nil, err
	}
	if err := w.SelectDate(date, status); err != nil {
		return nil, markWizardErr(err)
	}
	c.sessions.Put(w)
	return wizardView(w), nil
}

func (c *wizardCommandsImpl) SelectTime(ctx context.Context, sessionID uuid.UUID, startHour, endHour int) (*WizardView, error) {
	w, ok := c.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	status, err := c.dayStatus(ctx, w.PerformerID(), w.Date())
	if err != nil {
		return nil, err
	}
	if err := w.SelectTime(startHour, endHour, status); err != nil {
		return nil, markWizardErr(err)
	}
	c.sessions.Put(w)
	return wizardView(w), nil
}

func (c *wizardCommandsImpl) SelectTier(_ context.Context, sessionID uuid.UUID, label string) (*WizardView, error) {
	w, ok := c.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := w.SelectTier(label); err != nil {
		return nil, markWizardErr(err)
	}
	c.sessions.Put(w)
	return wizardView(w), nil
}

func (c *wizardCommandsImpl) EnterDetails(_ context.Context, sessionID uuid.UUID, eventName, contactName, phone string) (*WizardView, error) {
	w, ok := c.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	contact, err := booking.NewContactInfo(eventName, contactName, phone)
	if err != nil {
		return nil, errs.Mark(err, ErrMissingDetails)
	}
	if err := w.EnterDetails(contact); err != nil {
		return nil, markWizardErr(err)
	}
	c.sessions.Put(w)
	return wizardView(w), nil
}

func (c *wizardCommandsImpl) Back(_ context.Context, sessionID uuid.UUID) (*WizardView, error) {
	w, ok := c.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := w.Back(); err != nil {
		return nil, markWizardErr(err)
	}
	c.sessions.Put(w)
	return wizardView(w), nil
}

func (c *wizardCommandsImpl) Cancel(_ context.Context, sessionID uuid.UUID) error {
	w, ok := c.sessions.Get(sessionID)
	if !ok {
		return ErrSessionNotFound
	}
	if err := w.Cancel(); err != nil {
		return markWizardErr(err)
	}
	c.sessions.Delete(sessionID)

	slog.Info("wizard session canceled", "session_id", sessionID.String())
	return nil
}

func (c *wizardCommandsImpl) Confirm(ctx context.Context, sessionID uuid.UUID) (*queries.BookingRequestView, error) {
	w, ok := c.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	// Upstream verification first: a timeout here must leave the session
	// on its current step so the caller can retry without re-entering
	// anything.
	if err := c.venues.VerifyVenue(ctx, w.VenueID()); err != nil {
		return nil, errs.Mark(err, ErrUpstreamUnavailable)
	}

	var created *booking.Request
	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		status := calendar.DefaultStatus
		day, err := tx.Calendar().FindDay(ctx, w.PerformerID(), w.Date())
		if err != nil {
			return err
		}
		if day != nil {
			status = day.Status()
		}

		// Confirm against a copy so a failed create leaves the session on
		// its details step.
		candidate := *w
		req, err := candidate.Confirm(status, c.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.Bookings().Create(ctx, req); err != nil {
			return err
		}
		created = req
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrDayNotAvailable):
			return nil, errs.Mark(err, ErrSlotNoLongerAvailable)
		case errors.Is(err, booking.ErrWrongStep), errors.Is(err, booking.ErrWizardFinished):
			return nil, errs.Mark(err, ErrWizardStep)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	c.sessions.Delete(sessionID)

	slog.Info("booking request created",
		"request_id", created.ID().String(),
		"performer_id", created.PerformerID().String(),
		"date", created.Date().String())
	return bookingRequestView(created), nil
}

func (c *wizardCommandsImpl) dayStatus(ctx context.Context, performerID uuid.UUID, date dateutil.Date) (calendar.DayStatus, error) {
	status := calendar.DefaultStatus
	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		day, err := tx.Calendar().FindDay(ctx, performerID, date)
		if err != nil {
			return err
		}
		if day != nil {
			status = day.Status()
		}
		return nil
	})
	if err != nil {
		return status, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return status, nil
}

func markWizardErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrWrongStep), errors.Is(err, booking.ErrWizardFinished):
		return errs.Mark(err, ErrWizardStep)
	case errors.Is(err, booking.ErrDayNotAvailable):
		return errs.Mark(err, ErrDayNotAvailable)
	case errors.Is(err, booking.ErrTierNotSuitable):
		return errs.Mark(err, ErrTierNotSuitable)
	case errors.Is(err, booking.ErrInvalidTimeRange):
		return errs.Mark(err, ErrInvalidTimeRange)
	case errors.Is(err, booking.ErrMissingDetails):
		return errs.Mark(err, ErrMissingDetails)
	case errors.Is(err, pricing.ErrUnknownTier):
		return errs.Mark(err, ErrUnknownTier)
	default:
		return err
	}
}

func wizardView(w *booking.Wizard) *WizardView {
	view := &WizardView{
		SessionID:   w.ID(),
		PerformerID: w.PerformerID(),
		VenueID:     w.VenueID(),
		EventType:   w.EventType(),
		Step:        string(w.Step()),
	}

	if w.Step() != booking.StepIdle {
		d := w.Date()
		view.Date = &d
	}
	if w.Step() == booking.StepTimeSelected || w.Step() == booking.StepTierSelected || w.Step() == booking.StepDetailsEntered {
		view.TimeRange = w.TimeRange().String()
	}
	if w.Step() == booking.StepTierSelected || w.Step() == booking.StepDetailsEntered {
		view.TierLabel = w.Tier().Label
		view.Price = w.Tier().Price
	}

	for _, t := range w.SuitableTiers() {
		view.SuitableTiers = append(view.SuitableTiers, WizardTierView{
			Label:       t.Label,
			MinHours:    t.MinHours,
			MaxHours:    t.MaxHours,
			Price:       t.Price,
			Recommended: t.Recommended,
		})
	}
	return view
}
