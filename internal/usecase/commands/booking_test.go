//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stagelink/internal/domain/booking"
	"stagelink/internal/infra"
	"stagelink/internal/pkg/clock"
	"stagelink/internal/usecase/commands"
	"stagelink/tests/common/builder"
	commandsmock "stagelink/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingFixture struct {
	uow      *commandsmock.MockUnitOfWork
	tx       *commandsmock.MockTx
	bookings *commandsmock.MockBookingTxRepository
	calendar *commandsmock.MockAvailabilityTxRepository
	clock    *clock.MockClock
	cmd      commands.BookingCommands
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &bookingFixture{
		uow:      commandsmock.NewMockUnitOfWork(ctrl),
		tx:       commandsmock.NewMockTx(ctrl),
		bookings: commandsmock.NewMockBookingTxRepository(ctrl),
		calendar: commandsmock.NewMockAvailabilityTxRepository(ctrl),
		clock:    clock.NewMockClock(time.Date(2026, time.September, 2, 9, 0, 0, 0, time.UTC)),
	}
	f.cmd = commands.NewBookingCommands(f.uow, f.clock)
	return f
}

func (f *bookingFixture) expectTx() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, commands.Tx) error) error {
			return fn(ctx, f.tx)
		})
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Calendar().Return(f.calendar).AnyTimes()
}

func TestRespondAccept(t *testing.T) {
	t.Run("accept marks the day booked", func(t *testing.T) {
		f := newBookingFixture(t)
		req, err := builder.NewBookingRequestBuilder().BuildDomain()
		require.NoError(t, err)

		f.expectTx()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), req.ID()).Return(req, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), req).Return(nil)
		f.calendar.EXPECT().
			MarkBooked(gomock.Any(), req.PerformerID(), req.Date(), f.clock.Now()).
			Return(true, nil)

		view, err := f.cmd.Respond(context.Background(), req.ID(), booking.DecisionAccepted)
		require.NoError(t, err)
		assert.Equal(t, "accepted", view.Status)
		require.NotNil(t, view.RespondedAt)
		assert.Equal(t, f.clock.Now(), *view.RespondedAt)
	})

	t.Run("losing the day race rolls the response back", func(t *testing.T) {
		f := newBookingFixture(t)
		req, err := builder.NewBookingRequestBuilder().BuildDomain()
		require.NoError(t, err)

		f.expectTx()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), req.ID()).Return(req, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), req).Return(nil)
		f.calendar.EXPECT().
			MarkBooked(gomock.Any(), req.PerformerID(), req.Date(), gomock.Any()).
			Return(false, nil)

		_, err = f.cmd.Respond(context.Background(), req.ID(), booking.DecisionAccepted)
		assert.ErrorIs(t, err, commands.ErrSlotNoLongerAvailable)
	})
}

func TestRespondDecline(t *testing.T) {
	t.Run("decline never touches the calendar", func(t *testing.T) {
		f := newBookingFixture(t)
		req, err := builder.NewBookingRequestBuilder().BuildDomain()
		require.NoError(t, err)

		f.expectTx()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), req.ID()).Return(req, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), req).Return(nil)

		view, err := f.cmd.Respond(context.Background(), req.ID(), booking.DecisionDeclined)
		require.NoError(t, err)
		assert.Equal(t, "declined", view.Status)
	})
}

func TestRespondGuards(t *testing.T) {
	t.Run("unknown request", func(t *testing.T) {
		f := newBookingFixture(t)
		requestID := uuid.New()

		f.expectTx()
		f.bookings.EXPECT().
			FindForUpdate(gomock.Any(), requestID).
			Return(nil, infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound))

		_, err := f.cmd.Respond(context.Background(), requestID, booking.DecisionAccepted)
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})

	t.Run("already resolved request", func(t *testing.T) {
		f := newBookingFixture(t)
		req, err := builder.NewBookingRequestBuilder().WithStatus(booking.StatusAccepted).BuildDomain()
		require.NoError(t, err)

		f.expectTx()
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), req.ID()).Return(req, nil)

		_, err = f.cmd.Respond(context.Background(), req.ID(), booking.DecisionDeclined)
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("invalid decision never opens a transaction", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.cmd.Respond(context.Background(), uuid.New(), booking.Decision("maybe"))
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})
}
