package commands

import "stagelink/internal/pkg/errs"

// Error taxonomy for the scheduling subsystem. Everything here is
// per-request and recoverable by the caller; nothing is fatal to the
// process.
var (
	// Validation: rejected before any mutation.
	ErrInvalidDateRange = errs.New("start date must not be after end date")
	ErrInvalidStatus    = errs.New("invalid availability status")
	ErrInvalidTimeRange = errs.New("end hour must be after start hour")
	ErrMissingDetails   = errs.New("event name, contact name and phone are required")
	ErrTopUpOutOfRange  = errs.New("top-up amount out of allowed range")
	ErrUnknownTier      = errs.New("unknown pricing tier")

	// State machine guards: rejected with no partial effect.
	ErrInvalidTransition = errs.New("booking request is not pending")
	ErrWizardStep        = errs.New("operation not allowed in current wizard step")
	ErrDayNotAvailable   = errs.New("selected date is not available")
	ErrTierNotSuitable   = errs.New("pricing tier does not suit the selected duration")

	// Concurrency: the caller must re-fetch availability and retry.
	ErrSlotNoLongerAvailable = errs.New("slot no longer available")

	ErrInsufficientFunds   = errs.New("insufficient funds")
	ErrUpstreamUnavailable = errs.New("upstream service unavailable")

	ErrRequestNotFound = errs.New("booking request not found")
	ErrSessionNotFound = errs.New("wizard session not found")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
