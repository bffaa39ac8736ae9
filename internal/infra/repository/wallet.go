package repository

import (
	"context"
	"time"

	"stagelink/internal/domain/wallet"
	"stagelink/internal/infra"

	"github.com/google/uuid"
)

type WalletRepository struct {
	db DBTX
}

func NewWalletRepository(db DBTX) *WalletRepository {
	return &WalletRepository{db: db}
}

// FindAccountForUpdate creates the account row if the performer has never
// touched their wallet, then locks it. Balance read-modify-write for one
// performer serializes on this lock.
func (r *WalletRepository) FindAccountForUpdate(ctx context.Context, performerID uuid.UUID) (*wallet.Account, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO wallet_accounts (performer_id, balance) VALUES ($1, 0)
		 ON CONFLICT (performer_id) DO NOTHING`,
		performerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to ensure wallet account", err)
	}

	var balance int64
	err = r.db.QueryRow(ctx,
		`SELECT balance FROM wallet_accounts WHERE performer_id = $1 FOR UPDATE`,
		performerID).Scan(&balance)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock wallet account", err)
	}

	txs, err := r.findTransactions(ctx, performerID)
	if err != nil {
		return nil, err
	}
	return wallet.ReconstructAccount(performerID, balance, txs), nil
}

func (r *WalletRepository) findTransactions(ctx context.Context, performerID uuid.UUID) ([]wallet.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, type, amount, occurred_at, description
		 FROM wallet_transactions
		 WHERE performer_id = $1
		 ORDER BY occurred_at, id`,
		performerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wallet transactions", err)
	}
	defer rows.Close()

	var txs []wallet.Transaction
	for rows.Next() {
		var (
			tx     wallet.Transaction
			txType string
			date   time.Time
		)
		if err := rows.Scan(&tx.ID, &txType, &tx.Amount, &date, &tx.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan wallet transaction", err)
		}
		tx.Type = wallet.TransactionType(txType)
		tx.Date = date
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read wallet transactions", err)
	}
	return txs, nil
}

func (r *WalletRepository) AppendTransaction(ctx context.Context, performerID uuid.UUID, tx wallet.Transaction) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO wallet_transactions (id, performer_id, type, amount, occurred_at, description)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		tx.ID, performerID, string(tx.Type), tx.Amount, tx.Date, tx.Description)
	if err != nil {
		return infra.WrapRepoErr("failed to append wallet transaction", err)
	}
	return nil
}

func (r *WalletRepository) SetBalance(ctx context.Context, performerID uuid.UUID, balance int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE wallet_accounts SET balance = $2 WHERE performer_id = $1`,
		performerID, balance)
	if err != nil {
		return infra.WrapRepoErr("failed to update wallet balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("wallet account missing during balance update", nil, infra.KindNotFound)
	}
	return nil
}
