package commands

import (
	"context"
	"errors"
	"log/slog"

	"stagelink/internal/domain/wallet"
	"stagelink/internal/pkg/clock"
	"stagelink/internal/pkg/errs"
	"stagelink/internal/usecase/queries"

	"github.com/google/uuid"
)

type WalletTransactionResult struct {
	NewBalance  int64                   `json:"newBalance"`
	Transaction *queries.TransactionView `json:"transaction"`
}

type WalletCommands interface {
	// TopUp credits the account. Bounds are validated before any write.
	TopUp(ctx context.Context, performerID uuid.UUID, amount int64) (*WalletTransactionResult, error)
	// ChargeBookingFee debits the tiered platform fee for a booking's
	// price. Prices below the first bracket charge nothing.
	ChargeBookingFee(ctx context.Context, performerID uuid.UUID, bookingPrice int64) (*WalletTransactionResult, error)
}

type walletCommandsImpl struct {
	uow   UnitOfWork
	clock clock.Clock
}

func NewWalletCommands(uow UnitOfWork, clock clock.Clock) WalletCommands {
	return &walletCommandsImpl{uow: uow, clock: clock}
}

func (c *walletCommandsImpl) TopUp(ctx context.Context, performerID uuid.UUID, amount int64) (*WalletTransactionResult, error) {
	// Reject before opening a transaction; nothing may be appended for an
	// out-of-range amount.
	if amount < wallet.MinTopUp || amount > wallet.MaxTopUp {
		return nil, errs.Mark(wallet.ErrTopUpOutOfRange, ErrTopUpOutOfRange)
	}

	result, err := c.mutateAccount(ctx, performerID, func(acc *wallet.Account) (wallet.Transaction, error) {
		return acc.TopUp(amount, c.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	slog.Info("wallet top-up",
		"performer_id", performerID.String(),
		"amount", amount,
		"balance", result.NewBalance)
	return result, nil
}

func (c *walletCommandsImpl) ChargeBookingFee(ctx context.Context, performerID uuid.UUID, bookingPrice int64) (*WalletTransactionResult, error) {
	fee := wallet.FeeForBookingPrice(bookingPrice)
	if fee == 0 {
		// No bracket applies; report the current balance with no new
		// transaction.
		var balance int64
		err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
			acc, err := tx.Wallets().FindAccountForUpdate(ctx, performerID)
			if err != nil {
				return err
			}
			balance = acc.Balance()
			return nil
		})
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return &WalletTransactionResult{NewBalance: balance}, nil
	}

	result, err := c.mutateAccount(ctx, performerID, func(acc *wallet.Account) (wallet.Transaction, error) {
		return acc.Debit(fee, wallet.FeeDescription(), c.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	slog.Info("platform fee charged",
		"performer_id", performerID.String(),
		"booking_price", bookingPrice,
		"fee", fee,
		"balance", result.NewBalance)
	return result, nil
}

// mutateAccount serializes the balance read-modify-write per performer: the
// account row stays locked for the duration of the transaction.
func (c *walletCommandsImpl) mutateAccount(ctx context.Context, performerID uuid.UUID, mutate func(acc *wallet.Account) (wallet.Transaction, error)) (*WalletTransactionResult, error) {
	var (
		appended wallet.Transaction
		balance  int64
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		acc, err := tx.Wallets().FindAccountForUpdate(ctx, performerID)
		if err != nil {
			return err
		}

		appended, err = mutate(acc)
		if err != nil {
			return err
		}

		if err := tx.Wallets().AppendTransaction(ctx, performerID, appended); err != nil {
			return err
		}
		if err := tx.Wallets().SetBalance(ctx, performerID, acc.Balance()); err != nil {
			return err
		}
		balance = acc.Balance()
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInsufficientFunds):
			return nil, errs.Mark(err, ErrInsufficientFunds)
		case errors.Is(err, wallet.ErrTopUpOutOfRange):
			return nil, errs.Mark(err, ErrTopUpOutOfRange)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return &WalletTransactionResult{
		NewBalance: balance,
		Transaction: &queries.TransactionView{
			ID:          appended.ID,
			Type:        string(appended.Type),
			Amount:      appended.Amount,
			Date:        appended.Date,
			Description: appended.Description,
		},
	}, nil
}
