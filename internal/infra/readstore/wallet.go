package readstore

import (
	"context"
	"errors"

	"stagelink/internal/infra"
	"stagelink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WalletReadStore struct {
	pool *pgxpool.Pool
}

func NewWalletReadStore(pool *pgxpool.Pool) *WalletReadStore {
	return &WalletReadStore{pool: pool}
}

func (s *WalletReadStore) FindWallet(ctx context.Context, performerID uuid.UUID) (*queries.WalletView, error) {
	var balance int64
	err := s.pool.QueryRow(ctx,
		`SELECT balance FROM wallet_accounts WHERE performer_id = $1`,
		performerID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find wallet account", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, type, amount, occurred_at, description
		 FROM wallet_transactions
		 WHERE performer_id = $1
		 ORDER BY occurred_at, id`,
		performerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wallet transactions", err)
	}
	defer rows.Close()

	txs := []queries.TransactionView{}
	for rows.Next() {
		var tx queries.TransactionView
		if err := rows.Scan(&tx.ID, &tx.Type, &tx.Amount, &tx.Date, &tx.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan wallet transaction", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read wallet transactions", err)
	}

	return &queries.WalletView{
		PerformerID:  performerID,
		Balance:      balance,
		Transactions: txs,
	}, nil
}
