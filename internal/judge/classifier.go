package judge

import "decisionengine/internal/domain"

// Classify maps a confidence score to a verdict tier. The missing-data
// override comes first and is absolute: without data the verdict is
// HOLD no matter what the score says.
func (j Judge) Classify(score int, dataAvailable bool) domain.Verdict {
	if !dataAvailable {
		return domain.VerdictHold
	}
	switch {
	case score >= j.cfg.BuyThreshold:
		return domain.VerdictBuy
	case score <= j.cfg.SellThreshold:
		return domain.VerdictSell
	default:
		return domain.VerdictHold
	}
}
