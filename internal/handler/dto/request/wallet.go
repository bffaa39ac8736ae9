package request

// Wallet mutation actions.
const (
	WalletActionTopUp     = "topUp"
	WalletActionChargeFee = "chargeFee"
)

// WalletTransactionRequest covers both mutations: for topUp the amount is
// the credit, for chargeFee it is the booking price the fee derives from.
type WalletTransactionRequest struct {
	Action string `json:"action" binding:"required,oneof=topUp chargeFee"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}
