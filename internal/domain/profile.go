package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is a named, user-owned grouping of tickers to batch-evaluate.
// Tickers are uppercase, case-insensitively deduplicated, and keep
// insertion order for display.
type Profile struct {
	ID        uuid.UUID `json:"id" badgerhold:"key"`
	Name      string    `json:"name"`
	Tickers   []string  `json:"tickers"`
	CreatedAt time.Time `json:"-"`
}

// AddTicker appends the symbol if it is not already present. The symbol
// is uppercased first so "aapl" and "AAPL" collapse to one entry.
func (p *Profile) AddTicker(symbol string) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" || p.HasTicker(symbol) {
		return
	}
	p.Tickers = append(p.Tickers, symbol)
}

// RemoveTicker drops the symbol, preserving the order of the rest.
func (p *Profile) RemoveTicker(symbol string) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	for i, t := range p.Tickers {
		if t == symbol {
			p.Tickers = append(p.Tickers[:i], p.Tickers[i+1:]...)
			return
		}
	}
}

func (p *Profile) HasTicker(symbol string) bool {
	for _, t := range p.Tickers {
		if t == symbol {
			return true
		}
	}
	return false
}

// TickerResult pairs a ticker with its verdict record, in profile order.
type TickerResult struct {
	Ticker  string        `json:"ticker"`
	Verdict VerdictRecord `json:"verdict"`
}

// WatchlistCheckResult is the batch evaluation output for one profile.
// Results and GoodToInvest both preserve the profile's ticker order.
type WatchlistCheckResult struct {
	ProfileID    uuid.UUID      `json:"profile_id"`
	ProfileName  string         `json:"profile_name"`
	Results      []TickerResult `json:"results"`
	GoodToInvest []string       `json:"good_to_invest"`
}
