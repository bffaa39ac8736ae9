package pricing

import "errors"

var ErrUnknownTier = errors.New("unknown pricing tier")

// Tier is one row of the static reference-price catalog. Prices are
// non-binding integer currency units used to align expectations; settlement
// happens outside this service.
type Tier struct {
	Label       string
	MinHours    int
	MaxHours    int
	Price       int64
	Recommended bool
}

// Suitable uses a half-open convention: MinHours < duration <= MaxHours.
// The boundary policy is fixed here and applied everywhere a tier is matched
// against a duration.
func (t Tier) Suitable(durationHours int) bool {
	return t.MinHours < durationHours && durationHours <= t.MaxHours
}

var catalog = []Tier{
	{Label: "1-2 Hours", MinHours: 0, MaxHours: 2, Price: 209, Recommended: true},
	{Label: "2-4 Hours", MinHours: 2, MaxHours: 4, Price: 379},
	{Label: "4-8 Hours", MinHours: 4, MaxHours: 8, Price: 659},
	{Label: "Full Day", MinHours: 8, MaxHours: 24, Price: 1199},
}

func Catalog() []Tier {
	out := make([]Tier, len(catalog))
	copy(out, catalog)
	return out
}

func TierByLabel(label string) (Tier, error) {
	for _, t := range catalog {
		if t.Label == label {
			return t, nil
		}
	}
	return Tier{}, ErrUnknownTier
}

// SuitableTiers preserves catalog order so the UI can render them stably.
func SuitableTiers(durationHours int) []Tier {
	var out []Tier
	for _, t := range catalog {
		if t.Suitable(durationHours) {
			out = append(out, t)
		}
	}
	return out
}

// TierForDuration resolves the reference price for a derived slot. The
// catalog's half-open ranges are contiguous, so at most one tier matches.
func TierForDuration(durationHours int) (Tier, bool) {
	for _, t := range catalog {
		if t.Suitable(durationHours) {
			return t, true
		}
	}
	return Tier{}, false
}

// RecommendedTier returns the flagged tier when it suits the duration, so
// the wizard can pre-highlight it.
func RecommendedTier(durationHours int) (Tier, bool) {
	for _, t := range catalog {
		if t.Recommended && t.Suitable(durationHours) {
			return t, true
		}
	}
	return Tier{}, false
}
