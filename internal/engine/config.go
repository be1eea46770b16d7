package engine

// Config contains the tunable thresholds of the comparison engine.
type Config struct {
	// SimilarityBand is the relative unit-price band for the general
	// substitutes query: a candidate qualifies when its unit price is
	// within this fraction of the reference's.
	SimilarityBand float64

	// SubstituteCutoff is the unit-price multiplier a basket substitution
	// suggestion must beat. 0.95 means at least 5% cheaper per unit.
	SubstituteCutoff float64

	// BestDiscountLimit caps the "best active discounts" listing.
	BestDiscountLimit int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	return &Config{
		SimilarityBand:    0.10,
		SubstituteCutoff:  0.95,
		BestDiscountLimit: 10,
	}
}
