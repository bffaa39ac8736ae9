//go:build unit

package wallet_test

import (
	"testing"

	"stagelink/internal/domain/wallet"

	"github.com/stretchr/testify/assert"
)

func TestFeeForBookingPrice(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		want  int64
	}{
		{name: "below fee floor", price: 999, want: 0},
		{name: "reference tier price carries no fee", price: 209, want: 0},
		{name: "first bracket lower bound", price: 1000, want: 100},
		{name: "first bracket upper bound", price: 4000, want: 100},
		{name: "second bracket lower bound", price: 4001, want: 200},
		{name: "second bracket upper bound", price: 7000, want: 200},
		{name: "top bracket", price: 7001, want: 300},
		{name: "large price", price: 50000, want: 300},
		{name: "zero price", price: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wallet.FeeForBookingPrice(tt.price))
		})
	}
}

func TestFeeDescription(t *testing.T) {
	assert.Equal(t, "platform booking fee", wallet.FeeDescription())
}
