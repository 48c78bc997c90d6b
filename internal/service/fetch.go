package service

import (
	"context"
	"time"

	"decisionengine/internal/domain"
	"decisionengine/internal/repository"
)

// fetchMetrics runs one market data fetch under an individual timeout.
// The underlying finance client does not take a context, so on expiry
// the in-flight call is abandoned and its eventual result discarded.
func fetchMetrics(ctx context.Context, repo repository.MarketDataRepository, symbol string, timeout time.Duration) (*domain.RawMetrics, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type fetchResult struct {
		metrics *domain.RawMetrics
		err     error
	}
	resultCh := make(chan fetchResult, 1)
	go func() {
		metrics, err := repo.FetchMetrics(ctx, symbol)
		resultCh <- fetchResult{metrics: metrics, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, domain.UpstreamDataError{Symbol: symbol, Err: ctx.Err()}
	case result := <-resultCh:
		return result.metrics, result.err
	}
}
