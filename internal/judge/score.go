package judge

import (
	"fmt"
	"math"

	"decisionengine/internal/domain"
)

// Judge is the deterministic scoring/verdict engine. It is a pure
// function of a QuantSnapshot - no state, no clock, no I/O.
type Judge struct {
	cfg Config
}

func New(cfg Config) Judge {
	return Judge{cfg: cfg}
}

func (j Judge) Config() Config {
	return j.cfg
}

const insufficientDataExplanation = "Insufficient market data; default verdict HOLD."

// Score applies the ordered rule set to the snapshot and returns the
// final score plus one outcome per fired rule. A rule fires only when
// its metric has a value. Intermediate sums may overshoot [0,100]; the
// clamp happens once at the end so deltas compose linearly.
func (j Judge) Score(snap domain.QuantSnapshot) (int, []domain.RuleOutcome) {
	if !snap.DataAvailable {
		return j.cfg.BaselineScore, []domain.RuleOutcome{{
			Rule:        "data_availability",
			Delta:       0,
			Explanation: insufficientDataExplanation,
		}}
	}

	score := j.cfg.BaselineScore
	outcomes := []domain.RuleOutcome{}

	// evaluation order is fixed: growth, momentum, range, valuation, risk
	for _, rule := range []func(domain.QuantSnapshot) *domain.RuleOutcome{
		j.revenueGrowthRule,
		j.epsGrowthRule,
		j.return30DRule,
		j.range52WRule,
		j.peRatioRule,
		j.volatilityRule,
	} {
		if outcome := rule(snap); outcome != nil {
			score += outcome.Delta
			outcomes = append(outcomes, *outcome)
		}
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	return score, outcomes
}

func (j Judge) revenueGrowthRule(snap domain.QuantSnapshot) *domain.RuleOutcome {
	if snap.RevenueGrowthYoYPct == nil {
		return nil
	}
	rev := *snap.RevenueGrowthYoYPct
	if rev > 0 {
		delta := growthDelta(rev, j.cfg.RevenueMildDivisor, j.cfg.RevenueStrongBonus)
		return &domain.RuleOutcome{
			Rule:        "revenue_growth",
			MetricValue: rev,
			Delta:       delta,
			Explanation: fmt.Sprintf("Revenue growth YoY +%.1f%% adds support (+%d pts).", rev, delta),
		}
	}
	return &domain.RuleOutcome{
		Rule:        "revenue_growth",
		MetricValue: rev,
		Delta:       -j.cfg.RevenueNegativePenalty,
		Explanation: fmt.Sprintf("Revenue growth YoY %.1f%% is not positive (-%d pts).", rev, j.cfg.RevenueNegativePenalty),
	}
}

func (j Judge) epsGrowthRule(snap domain.QuantSnapshot) *domain.RuleOutcome {
	if snap.EPSGrowthPct == nil {
		return nil
	}
	eps := *snap.EPSGrowthPct
	if eps > 0 {
		delta := growthDelta(eps, j.cfg.EPSMildDivisor, j.cfg.EPSStrongBonus)
		return &domain.RuleOutcome{
			Rule:        "eps_growth",
			MetricValue: eps,
			Delta:       delta,
			Explanation: fmt.Sprintf("EPS growth +%.1f%% adds support (+%d pts).", eps, delta),
		}
	}
	return &domain.RuleOutcome{
		Rule:        "eps_growth",
		MetricValue: eps,
		Delta:       -j.cfg.EPSNegativePenalty,
		Explanation: fmt.Sprintf("EPS growth %.1f%% not positive (-%d pts).", eps, j.cfg.EPSNegativePenalty),
	}
}

func (j Judge) return30DRule(snap domain.QuantSnapshot) *domain.RuleOutcome {
	if snap.Return30DPct == nil {
		return nil
	}
	ret := *snap.Return30DPct
	outcome := &domain.RuleOutcome{Rule: "return_30d", MetricValue: ret}
	switch {
	case ret > 0:
		outcome.Delta = returnDelta(ret, j.cfg.ReturnCap)
		outcome.Explanation = fmt.Sprintf("30-day return +%.2f%% adds support (+%d pts).", ret, outcome.Delta)
	case ret < 0:
		magnitude := returnDelta(-ret, j.cfg.ReturnCap)
		outcome.Delta = -magnitude
		outcome.Explanation = fmt.Sprintf("30-day return %.2f%% subtracts points (-%d pts).", ret, magnitude)
	default:
		outcome.Explanation = "30-day return is flat (0 pts)."
	}
	return outcome
}

func (j Judge) range52WRule(snap domain.QuantSnapshot) *domain.RuleOutcome {
	if snap.Range52WPosition == nil {
		return nil
	}
	pos := *snap.Range52WPosition
	outcome := &domain.RuleOutcome{Rule: "range_52w_position", MetricValue: pos}
	switch {
	case pos > j.cfg.RangeHighBand:
		outcome.Delta = -j.cfg.RangeHighPenalty
		outcome.Explanation = fmt.Sprintf("Price near 52w high (position %.2f); valuation stretched (-%d pts).", pos, j.cfg.RangeHighPenalty)
	case pos < j.cfg.RangeLowBand:
		outcome.Delta = j.cfg.RangeLowBonus
		outcome.Explanation = fmt.Sprintf("Price near 52w low (position %.2f); relative value (+%d pts).", pos, j.cfg.RangeLowBonus)
	default:
		outcome.Explanation = fmt.Sprintf("Price mid 52-week range (position %.2f); no adjustment (0 pts).", pos)
	}
	return outcome
}

func (j Judge) peRatioRule(snap domain.QuantSnapshot) *domain.RuleOutcome {
	// a negative or zero trailing P/E means no profits to anchor a
	// valuation on - treated as a missing value, not a penalty
	if snap.PERatio == nil || *snap.PERatio <= 0 {
		return nil
	}
	pe := *snap.PERatio
	outcome := &domain.RuleOutcome{Rule: "pe_ratio", MetricValue: pe}
	switch {
	case pe > j.cfg.PEExtremeThreshold:
		outcome.Delta = -j.cfg.PEExtremePenalty
		outcome.Explanation = fmt.Sprintf("Very high P/E (%.0f) significantly reduces score (-%d pts).", pe, j.cfg.PEExtremePenalty)
	case pe > j.cfg.PEHighThreshold:
		outcome.Delta = -j.cfg.PEHighPenalty
		outcome.Explanation = fmt.Sprintf("High P/E (%.0f) reduces score (-%d pts).", pe, j.cfg.PEHighPenalty)
	case pe > j.cfg.PEElevatedThreshold:
		outcome.Delta = -j.cfg.PEElevatedPenalty
		outcome.Explanation = fmt.Sprintf("Elevated P/E (%.0f) reduces score (-%d pts).", pe, j.cfg.PEElevatedPenalty)
	default:
		outcome.Explanation = fmt.Sprintf("P/E (%.0f) within normal range (0 pts).", pe)
	}
	return outcome
}

func (j Judge) volatilityRule(snap domain.QuantSnapshot) *domain.RuleOutcome {
	if snap.VolatilityProxy == nil {
		return nil
	}
	vol := *snap.VolatilityProxy
	outcome := &domain.RuleOutcome{Rule: "volatility", MetricValue: vol}
	switch {
	case vol > j.cfg.VolHighThreshold:
		outcome.Delta = -j.cfg.VolHighPenalty
		outcome.Explanation = fmt.Sprintf("High volatility (%.2f) reduces score (-%d pts).", vol, j.cfg.VolHighPenalty)
	case vol > j.cfg.VolElevatedThreshold:
		outcome.Delta = -j.cfg.VolElevatedPenalty
		outcome.Explanation = fmt.Sprintf("Elevated volatility (%.2f) reduces score (-%d pts).", vol, j.cfg.VolElevatedPenalty)
	case vol < j.cfg.VolLowThreshold:
		outcome.Delta = j.cfg.VolLowBonus
		outcome.Explanation = fmt.Sprintf("Low volatility (%.2f) adds stability (+%d pts).", vol, j.cfg.VolLowBonus)
	default:
		outcome.Explanation = fmt.Sprintf("Moderate volatility (%.2f); no adjustment (0 pts).", vol)
	}
	return outcome
}

// growthDelta maps a positive growth percentage to round(pct/divisor),
// floored at 1 and capped at the rule's full bonus.
func growthDelta(pct, divisor float64, cap int) int {
	delta := int(math.Round(pct / divisor))
	if delta < 1 {
		delta = 1
	}
	if delta > cap {
		delta = cap
	}
	return delta
}

// returnDelta maps a positive return magnitude to round(pct), floored at
// 1 so near-flat moves still register, and capped.
func returnDelta(pct float64, cap int) int {
	delta := int(math.Round(pct))
	if delta < 1 {
		delta = 1
	}
	if delta > cap {
		delta = cap
	}
	return delta
}
