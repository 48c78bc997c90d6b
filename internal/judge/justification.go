package judge

import (
	"fmt"

	"decisionengine/internal/domain"
)

// keyMetricCount is the denominator of the data completeness summary:
// price, P/E, revenue growth, EPS growth, 30d return, 52w position,
// volatility. Market cap and the raw 52w bounds are informational only.
const keyMetricCount = 7

// ConfidenceBasis composes the one-sentence summary of data
// completeness, volatility regime, and valuation certainty. It is
// informational only and never feeds back into scoring.
func (j Judge) ConfidenceBasis(snap domain.QuantSnapshot) string {
	present := 0
	for _, v := range []*float64{
		snap.CurrentPrice,
		snap.PERatio,
		snap.RevenueGrowthYoYPct,
		snap.EPSGrowthPct,
		snap.Return30DPct,
		snap.Range52WPosition,
		snap.VolatilityProxy,
	} {
		if v != nil {
			present++
		}
	}

	regime := "unknown"
	if snap.VolatilityProxy != nil {
		switch vol := *snap.VolatilityProxy; {
		case vol > j.cfg.VolElevatedThreshold:
			regime = "high"
		case vol < j.cfg.VolLowThreshold:
			regime = "low"
		default:
			regime = "medium"
		}
	}

	valuation := "P/E unavailable"
	if snap.PERatio != nil {
		valuation = "P/E available"
	}

	return fmt.Sprintf("Data completeness: %d/%d key metrics available. Volatility: %s. Valuation certainty: %s.",
		present, keyMetricCount, regime, valuation)
}

// Justify renders the rule outcomes into the ordered explanation lines
// carried by the verdict record.
func Justify(outcomes []domain.RuleOutcome) []string {
	lines := make([]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		lines = append(lines, outcome.Explanation)
	}
	return lines
}
