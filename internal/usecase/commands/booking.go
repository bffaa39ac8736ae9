package commands

import (
	"context"
	"errors"
	"log/slog"

	"stagelink/internal/domain/booking"
	"stagelink/internal/infra"
	"stagelink/internal/pkg/clock"
	"stagelink/internal/pkg/errs"
	"stagelink/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingCommands interface {
	// Respond moves a pending request to accepted or declined. Accepting
	// marks the day booked atomically with the status write; exactly one of
	// two concurrent accepts for the same day wins.
	Respond(ctx context.Context, requestID uuid.UUID, decision booking.Decision) (*queries.BookingRequestView, error)
}

type bookingCommandsImpl struct {
	uow   UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow UnitOfWork, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clock}
}

func (c *bookingCommandsImpl) Respond(ctx context.Context, requestID uuid.UUID, decision booking.Decision) (*queries.BookingRequestView, error) {
	if !decision.IsValid() {
		return nil, errs.Mark(booking.ErrInvalidDecision, ErrInvalidTransition)
	}

	var responded *booking.Request
	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		req, err := tx.Bookings().FindForUpdate(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRequestNotFound)
			}
			return err
		}

		if err := req.Respond(decision, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Bookings().UpdateStatus(ctx, req); err != nil {
			return err
		}

		if decision == booking.DecisionAccepted {
			booked, err := tx.Calendar().MarkBooked(ctx, req.PerformerID(), req.Date(), c.clock.Now())
			if err != nil {
				return err
			}
			if !booked {
				// Lost the race or the day was closed; roll the whole
				// response back.
				return ErrSlotNoLongerAvailable
			}
		}

		responded = req
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) ||
			errors.Is(err, ErrInvalidTransition) ||
			errors.Is(err, ErrSlotNoLongerAvailable) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("booking request responded",
		"request_id", requestID.String(),
		"decision", string(decision))
	return bookingRequestView(responded), nil
}

func bookingRequestView(req *booking.Request) *queries.BookingRequestView {
	return &queries.BookingRequestView{
		ID:          req.ID(),
		PerformerID: req.PerformerID(),
		VenueID:     req.VenueID(),
		EventType:   req.EventType(),
		Date:        req.Date(),
		TimeRange:   req.TimeRange().String(),
		Price:       req.Price(),
		Status:      req.Status().String(),
		EventName:   req.Contact().EventName(),
		ContactName: req.Contact().ContactName(),
		Phone:       req.Contact().Phone(),
		CreatedAt:   req.CreatedAt(),
		RespondedAt: req.RespondedAt(),
	}
}
