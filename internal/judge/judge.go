// Package judge implements the deterministic scoring/verdict engine: a
// fixed rule set over a normalized quantitative snapshot, a closed
// BUY/HOLD/SELL classification, and human-readable justifications.
// Given the same snapshot it always produces the same record.
package judge

import "decisionengine/internal/domain"

// Evaluate runs the full pipeline on a normalized snapshot and returns
// a fresh verdict record.
func (j Judge) Evaluate(snap domain.QuantSnapshot) domain.VerdictRecord {
	score, outcomes := j.Score(snap)
	return domain.VerdictRecord{
		Ticker:          snap.Ticker,
		Verdict:         j.Classify(score, snap.DataAvailable),
		ConfidenceScore: score,
		Justification:   Justify(outcomes),
		ConfidenceBasis: j.ConfidenceBasis(snap),
	}
}

// Degraded builds the record for a ticker whose market data could not
// be fetched at all: baseline score, forced HOLD.
func (j Judge) Degraded(ticker string) domain.VerdictRecord {
	return j.Evaluate(domain.QuantSnapshot{Ticker: ticker, DataAvailable: false})
}
