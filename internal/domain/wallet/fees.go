package wallet

// Platform fee brackets by booking price. Prices below the first bracket
// carry no fee (reference tier prices can sit under the fee floor).
//
//	[1000, 4000] -> 100
//	[4001, 7000] -> 200
//	[7001, inf)  -> 300
func FeeForBookingPrice(price int64) int64 {
	switch {
	case price < 1000:
		return 0
	case price <= 4000:
		return 100
	case price <= 7000:
		return 200
	default:
		return 300
	}
}

const feeDescription = "platform booking fee"

// FeeDescription labels platform fee debits in the transaction history.
func FeeDescription() string {
	return feeDescription
}
