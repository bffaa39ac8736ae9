//go:build unit

package pricing_test

import (
	"testing"

	"stagelink/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Run("catalog order and contents are stable", func(t *testing.T) {
		catalog := pricing.Catalog()
		require.Len(t, catalog, 4)

		assert.Equal(t, "1-2 Hours", catalog[0].Label)
		assert.Equal(t, int64(209), catalog[0].Price)
		assert.True(t, catalog[0].Recommended)

		assert.Equal(t, "2-4 Hours", catalog[1].Label)
		assert.Equal(t, int64(379), catalog[1].Price)

		assert.Equal(t, "4-8 Hours", catalog[2].Label)
		assert.Equal(t, int64(659), catalog[2].Price)

		assert.Equal(t, "Full Day", catalog[3].Label)
		assert.Equal(t, int64(1199), catalog[3].Price)
	})

	t.Run("catalog returns a copy", func(t *testing.T) {
		first := pricing.Catalog()
		first[0].Price = 1

		assert.Equal(t, int64(209), pricing.Catalog()[0].Price)
	})
}

func TestSuitable(t *testing.T) {
	tier, err := pricing.TierByLabel("2-4 Hours")
	require.NoError(t, err)

	tests := []struct {
		name     string
		duration int
		want     bool
	}{
		{name: "at lower bound is excluded", duration: 2, want: false},
		{name: "just above lower bound", duration: 3, want: true},
		{name: "at upper bound is included", duration: 4, want: true},
		{name: "above upper bound", duration: 5, want: false},
		{name: "zero duration", duration: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tier.Suitable(tt.duration))
		})
	}
}

func TestTierByLabel(t *testing.T) {
	t.Run("known label", func(t *testing.T) {
		tier, err := pricing.TierByLabel("Full Day")
		require.NoError(t, err)
		assert.Equal(t, int64(1199), tier.Price)
		assert.Equal(t, 8, tier.MinHours)
		assert.Equal(t, 24, tier.MaxHours)
	})

	t.Run("unknown label", func(t *testing.T) {
		_, err := pricing.TierByLabel("Happy Hour")
		assert.ErrorIs(t, err, pricing.ErrUnknownTier)
	})
}

func TestTierForDuration(t *testing.T) {
	tests := []struct {
		name      string
		duration  int
		wantLabel string
		wantOK    bool
	}{
		{name: "one hour", duration: 1, wantLabel: "1-2 Hours", wantOK: true},
		{name: "two hours stays in first tier", duration: 2, wantLabel: "1-2 Hours", wantOK: true},
		{name: "three hours", duration: 3, wantLabel: "2-4 Hours", wantOK: true},
		{name: "four hours stays in second tier", duration: 4, wantLabel: "2-4 Hours", wantOK: true},
		{name: "eight hours", duration: 8, wantLabel: "4-8 Hours", wantOK: true},
		{name: "full day upper bound", duration: 24, wantLabel: "Full Day", wantOK: true},
		{name: "zero hours matches nothing", duration: 0, wantOK: false},
		{name: "beyond a day matches nothing", duration: 25, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, ok := pricing.TierForDuration(tt.duration)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLabel, tier.Label)
			}
		})
	}
}

func TestSuitableTiers(t *testing.T) {
	t.Run("exactly one tier per bookable duration", func(t *testing.T) {
		for d := 1; d <= 24; d++ {
			assert.Len(t, pricing.SuitableTiers(d), 1, "duration %d", d)
		}
	})

	t.Run("no tiers outside catalog range", func(t *testing.T) {
		assert.Empty(t, pricing.SuitableTiers(0))
		assert.Empty(t, pricing.SuitableTiers(25))
	})
}

func TestRecommendedTier(t *testing.T) {
	t.Run("short duration gets the recommended tier", func(t *testing.T) {
		tier, ok := pricing.RecommendedTier(2)
		require.True(t, ok)
		assert.Equal(t, "1-2 Hours", tier.Label)
	})

	t.Run("no recommendation when flagged tier does not fit", func(t *testing.T) {
		_, ok := pricing.RecommendedTier(6)
		assert.False(t, ok)
	})
}
