package response

import (
	"time"

	"stagelink/internal/usecase/commands"
	"stagelink/internal/usecase/queries"

	"github.com/google/uuid"
)

type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

type WalletResponse struct {
	PerformerID  uuid.UUID             `json:"performerId"`
	Balance      int64                 `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

type WalletMutationResponse struct {
	NewBalance  int64                `json:"newBalance"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

func FromWalletView(v *queries.WalletView) *WalletResponse {
	txs := make([]TransactionResponse, len(v.Transactions))
	for i, tx := range v.Transactions {
		txs[i] = fromTransactionView(tx)
	}
	return &WalletResponse{
		PerformerID:  v.PerformerID,
		Balance:      v.Balance,
		Transactions: txs,
	}
}

func FromWalletMutation(r *commands.WalletTransactionResult) *WalletMutationResponse {
	resp := &WalletMutationResponse{NewBalance: r.NewBalance}
	if r.Transaction != nil {
		tx := fromTransactionView(*r.Transaction)
		resp.Transaction = &tx
	}
	return resp
}

func fromTransactionView(v queries.TransactionView) TransactionResponse {
	return TransactionResponse{
		ID:          v.ID,
		Type:        v.Type,
		Amount:      v.Amount,
		Date:        v.Date,
		Description: v.Description,
	}
}
