package judge

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"decisionengine/internal/domain"
)

// symbols are uppercase alphanumerics, optionally with a dot or dash
// share-class separator (BRK-B, BF.B)
var tickerPattern = regexp.MustCompile(`^[A-Z0-9]+([.-][A-Z0-9]+)*$`)

const maxTickerLen = 10

// ValidateTicker canonicalizes a symbol to uppercase and rejects empty
// or non-alphanumeric input with a ValidationError.
func ValidateTicker(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", domain.ValidationError{Reason: "ticker is required"}
	}
	if len(symbol) > maxTickerLen || !tickerPattern.MatchString(symbol) {
		return "", domain.ValidationError{Reason: fmt.Sprintf("malformed ticker symbol %q", symbol)}
	}
	return symbol, nil
}

// Normalize coerces a raw metrics record into a typed snapshot. Every
// field resolves to either a real number or nil - the "N/A" marker and
// unparseable values never travel past this boundary.
func Normalize(raw domain.RawMetrics) (domain.QuantSnapshot, error) {
	ticker, err := ValidateTicker(raw.Ticker)
	if err != nil {
		return domain.QuantSnapshot{}, err
	}

	snap := domain.QuantSnapshot{
		Ticker:              ticker,
		CurrentPrice:        numeric(raw.CurrentPrice),
		PERatio:             numeric(raw.PERatio),
		MarketCap:           numeric(raw.MarketCap),
		RevenueGrowthYoYPct: numeric(raw.RevenueGrowthYoYPct),
		EPSGrowthPct:        numeric(raw.EPSGrowthPct),
		Return30DPct:        numeric(raw.Return30DPct),
		Range52WLow:         numeric(raw.Range52WLow),
		Range52WHigh:        numeric(raw.Range52WHigh),
		Range52WPosition:    numeric(raw.Range52WPosition),
		VolatilityProxy:     numeric(raw.VolatilityProxy),
	}

	// scoring needs a price, a valuation anchor, and at least one
	// growth metric
	snap.DataAvailable = snap.CurrentPrice != nil &&
		snap.PERatio != nil &&
		(snap.RevenueGrowthYoYPct != nil || snap.EPSGrowthPct != nil)

	return snap, nil
}

// numeric resolves the number-or-marker ambiguity once. Anything that is
// not a finite number comes back nil.
func numeric(v any) *float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case string:
		if x == domain.NotAvailable {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
