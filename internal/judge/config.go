package judge

// Config holds every scoring weight and cut point the judge uses. The
// defaults are the production values; tests pin each one individually so
// a change here fails loudly.
type Config struct {
	// BaselineScore is the neutral starting point before any rule fires.
	BaselineScore int

	// Growth rules award round(pct/divisor) capped at the bonus, so the
	// full bonus kicks in at pct >= bonus*divisor (30% for both rules
	// with the defaults). Non-positive growth costs the flat penalty.
	RevenueStrongBonus     int
	RevenueMildDivisor     float64
	RevenueNegativePenalty int

	EPSStrongBonus     int
	EPSMildDivisor     float64
	EPSNegativePenalty int

	// 30-day return rule: +/- min(cap, max(1, round(|pct|))), so even a
	// near-flat move contributes at least one point in its direction.
	ReturnCap int

	// 52-week range position rule.
	RangeHighBand    float64 // above this, price is considered stretched
	RangeHighPenalty int
	RangeLowBand     float64 // below this, price offers relative value
	RangeLowBonus    int

	// P/E valuation rule. Tiers are checked top down; a negative or
	// missing P/E contributes nothing.
	PEExtremeThreshold  float64
	PEExtremePenalty    int
	PEHighThreshold     float64
	PEHighPenalty       int
	PEElevatedThreshold float64
	PEElevatedPenalty   int

	// Volatility proxy rule.
	VolHighThreshold     float64
	VolHighPenalty       int
	VolElevatedThreshold float64
	VolElevatedPenalty   int
	VolLowThreshold      float64
	VolLowBonus          int

	// Classifier cut points. BuyThreshold > baseline > SellThreshold.
	BuyThreshold  int
	SellThreshold int
}

func DefaultConfig() Config {
	return Config{
		BaselineScore: 50,

		RevenueStrongBonus:     15,
		RevenueMildDivisor:     2,
		RevenueNegativePenalty: 5,

		EPSStrongBonus:     10,
		EPSMildDivisor:     3,
		EPSNegativePenalty: 5,

		ReturnCap: 10,

		RangeHighBand:    0.8,
		RangeHighPenalty: 5,
		RangeLowBand:     0.2,
		RangeLowBonus:    5,

		PEExtremeThreshold:  80,
		PEExtremePenalty:    20,
		PEHighThreshold:     50,
		PEHighPenalty:       15,
		PEElevatedThreshold: 30,
		PEElevatedPenalty:   10,

		VolHighThreshold:     0.7,
		VolHighPenalty:       15,
		VolElevatedThreshold: 0.5,
		VolElevatedPenalty:   10,
		VolLowThreshold:      0.2,
		VolLowBonus:          5,

		BuyThreshold:  65,
		SellThreshold: 35,
	}
}
