package domain

// NotAvailable is the sentinel the market data layer uses for fields it
// could not retrieve. It is resolved into nil pointers exactly once, at
// the normalizer boundary.
const NotAvailable = "N/A"

// RawMetrics is the wire shape of a per-ticker metrics record as it
// arrives from the market data provider. Each field is either a finite
// number, the "N/A" marker, or absent (nil) - never assume a zero means
// anything.
type RawMetrics struct {
	Ticker              string `json:"ticker"`
	CurrentPrice        any    `json:"current_price"`
	PERatio             any    `json:"pe_ratio"`
	MarketCap           any    `json:"market_cap"`
	RevenueGrowthYoYPct any    `json:"revenue_growth_yoy_pct"`
	EPSGrowthPct        any    `json:"eps_growth_pct"`
	Return30DPct        any    `json:"return_30d_pct"`
	Range52WLow         any    `json:"range_52w_low"`
	Range52WHigh        any    `json:"range_52w_high"`
	Range52WPosition    any    `json:"range_52w_position"`
	VolatilityProxy     any    `json:"volatility_proxy"`
}

// QuantSnapshot holds normalized quantitative metrics for one ticker at
// evaluation time. A nil field means the metric had no value; zero is a
// real measurement.
type QuantSnapshot struct {
	Ticker              string   `json:"ticker"`
	CurrentPrice        *float64 `json:"current_price"`
	PERatio             *float64 `json:"pe_ratio"`
	MarketCap           *float64 `json:"market_cap"`
	RevenueGrowthYoYPct *float64 `json:"revenue_growth_yoy_pct"`
	EPSGrowthPct        *float64 `json:"eps_growth_pct"`
	Return30DPct        *float64 `json:"return_30d_pct"`
	Range52WLow         *float64 `json:"range_52w_low"`
	Range52WHigh        *float64 `json:"range_52w_high"`
	Range52WPosition    *float64 `json:"range_52w_position"`
	VolatilityProxy     *float64 `json:"volatility_proxy"`
	DataAvailable       bool     `json:"data_available"`
}
