//go:build unit

package queries_test

import (
	"context"
	"testing"

	"stagelink/internal/usecase/queries"
	queriesmock "stagelink/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetWallet(t *testing.T) {
	performerID := uuid.New()

	t.Run("existing account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockWalletReadStore(ctrl)
		q := queries.NewWalletQueries(store)

		store.EXPECT().FindWallet(gomock.Any(), performerID).Return(&queries.WalletView{
			PerformerID:  performerID,
			Balance:      1200,
			Transactions: []queries.TransactionView{{Type: "credit", Amount: 1200}},
		}, nil)

		view, err := q.GetWallet(context.Background(), performerID)
		require.NoError(t, err)
		assert.Equal(t, int64(1200), view.Balance)
		assert.Len(t, view.Transactions, 1)
	})

	t.Run("missing account reads as an empty wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockWalletReadStore(ctrl)
		q := queries.NewWalletQueries(store)

		store.EXPECT().FindWallet(gomock.Any(), performerID).Return(nil, nil)

		view, err := q.GetWallet(context.Background(), performerID)
		require.NoError(t, err)
		assert.Equal(t, performerID, view.PerformerID)
		assert.Zero(t, view.Balance)
		require.NotNil(t, view.Transactions)
		assert.Empty(t, view.Transactions)
	})
}
