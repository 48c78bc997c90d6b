package domain

// Verdict is the discrete recommendation produced by the judge.
type Verdict string

const (
	VerdictBuy  Verdict = "BUY"
	VerdictHold Verdict = "HOLD"
	VerdictSell Verdict = "SELL"
)

// RuleOutcome records a single scoring rule firing: which rule, the
// metric value it saw, the signed delta it applied, and the rendered
// explanation shown to the user.
type RuleOutcome struct {
	Rule        string  `json:"rule"`
	MetricValue float64 `json:"metric_value"`
	Delta       int     `json:"delta"`
	Explanation string  `json:"explanation"`
}

// VerdictRecord is the final, immutable result of evaluating one ticker.
// Justification lines are in rule evaluation order.
type VerdictRecord struct {
	Ticker          string   `json:"ticker"`
	Verdict         Verdict  `json:"verdict"`
	ConfidenceScore int      `json:"confidence_score"`
	Justification   []string `json:"justification"`
	ConfidenceBasis string   `json:"confidence_basis"`
}

// AnalyzeResult is the single-ticker relay output. BearOutput and
// BullOutput are opaque narrative text - they are never judge input.
type AnalyzeResult struct {
	Ticker     string        `json:"ticker"`
	BearOutput string        `json:"bear_output"`
	BullOutput string        `json:"bull_output"`
	QuantData  QuantSnapshot `json:"quant_data"`
	Verdict    VerdictRecord `json:"verdict"`
}
