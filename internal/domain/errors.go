package domain

import "fmt"

// ValidationError rejects malformed client input (ticker symbols,
// request bodies) before it reaches the judge.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// NotFoundError reports an unknown resource id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// UpstreamDataError wraps a market data fetch failure for one symbol.
// It is recovered locally by degrading the ticker to data_available=false,
// never propagated as a fatal error.
type UpstreamDataError struct {
	Symbol string
	Err    error
}

func (e UpstreamDataError) Error() string {
	return fmt.Sprintf("failed to fetch market data for %s: %v", e.Symbol, e.Err)
}

func (e UpstreamDataError) Unwrap() error {
	return e.Err
}
