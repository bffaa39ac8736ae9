package commands

import (
	"context"
	"time"

	"stagelink/internal/domain/booking"
	"stagelink/internal/domain/calendar"
	"stagelink/internal/domain/wallet"
	"stagelink/internal/pkg/dateutil"

	"github.com/google/uuid"
)

// UnitOfWork runs fn inside one database transaction; repositories obtained
// from Tx share that transaction. Retry policy for transient failures lives
// in the implementation.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Calendar() AvailabilityTxRepository
	Bookings() BookingTxRepository
	Wallets() WalletTxRepository
}

type AvailabilityTxRepository interface {
	UpsertDay(ctx context.Context, day *calendar.Day) error
	UpsertDays(ctx context.Context, days []*calendar.Day) error
	// FindDay returns (nil, nil) for unset days; callers treat those as the
	// calendar default.
	FindDay(ctx context.Context, performerID uuid.UUID, date dateutil.Date) (*calendar.Day, error)
	// MarkBooked is a compare-and-swap: it books the day only if the day is
	// currently available (explicitly or implicitly). A false return means
	// the race was lost or the day was closed.
	MarkBooked(ctx context.Context, performerID uuid.UUID, date dateutil.Date, now time.Time) (bool, error)
}

type BookingTxRepository interface {
	Create(ctx context.Context, req *booking.Request) error
	// FindForUpdate locks the request row for the duration of the
	// transaction so concurrent responders serialize.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Request, error)
	UpdateStatus(ctx context.Context, req *booking.Request) error
}

type WalletTxRepository interface {
	// FindAccountForUpdate locks (creating if absent) the performer's
	// account row, serializing balance read-modify-write per performer.
	FindAccountForUpdate(ctx context.Context, performerID uuid.UUID) (*wallet.Account, error)
	AppendTransaction(ctx context.Context, performerID uuid.UUID, tx wallet.Transaction) error
	SetBalance(ctx context.Context, performerID uuid.UUID, balance int64) error
}

// WizardSessionStore keeps per-caller wizard state. Sessions are never
// shared between callers, so the store needs no domain-level locking.
type WizardSessionStore interface {
	Put(w *booking.Wizard)
	Get(id uuid.UUID) (*booking.Wizard, bool)
	Delete(id uuid.UUID)
}

// VenueDirectory is the excluded external venue/profile service. Calls are
// bounded by a timeout and surface recoverable errors.
type VenueDirectory interface {
	VerifyVenue(ctx context.Context, venueID uuid.UUID) error
}
