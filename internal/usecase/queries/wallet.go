package queries

import (
	"context"

	"github.com/google/uuid"
)

type WalletReadStore interface {
	// FindWallet returns (nil, nil) when the performer has no account yet.
	FindWallet(ctx context.Context, performerID uuid.UUID) (*WalletView, error)
}

type WalletQueries interface {
	GetWallet(ctx context.Context, performerID uuid.UUID) (*WalletView, error)
}

type walletQueriesImpl struct {
	store WalletReadStore
}

func NewWalletQueries(store WalletReadStore) WalletQueries {
	return &walletQueriesImpl{store: store}
}

// GetWallet treats a missing account as an empty one: performers get a
// zero-balance wallet lazily on first mutation.
func (q *walletQueriesImpl) GetWallet(ctx context.Context, performerID uuid.UUID) (*WalletView, error) {
	view, err := q.store.FindWallet(ctx, performerID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return &WalletView{
			PerformerID:  performerID,
			Balance:      0,
			Transactions: []TransactionView{},
		}, nil
	}
	return view, nil
}
