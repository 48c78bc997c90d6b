package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"decisionengine/internal/domain"
	"decisionengine/internal/judge"
	"decisionengine/internal/repository"
)

// maxConcurrentFetches caps the worker pool so a large watchlist does
// not hammer the upstream data provider.
const maxConcurrentFetches = 5

// WatchlistService applies the judge to every ticker in a profile and
// derives the good-to-invest subset.
type WatchlistService interface {
	CheckWatchlist(ctx context.Context, profileID uuid.UUID) (*domain.WatchlistCheckResult, error)
}

type watchlistServiceHandler struct {
	ProfileRepository    repository.ProfileRepository
	MarketDataRepository repository.MarketDataRepository
	Judge                judge.Judge
	FetchTimeout         time.Duration
	Logger               *zap.SugaredLogger
}

func NewWatchlistService(
	profileRepository repository.ProfileRepository,
	marketDataRepository repository.MarketDataRepository,
	j judge.Judge,
	fetchTimeout time.Duration,
	log *zap.SugaredLogger,
) WatchlistService {
	return &watchlistServiceHandler{
		ProfileRepository:    profileRepository,
		MarketDataRepository: marketDataRepository,
		Judge:                j,
		FetchTimeout:         fetchTimeout,
		Logger:               log,
	}
}

type watchlistWorkInput struct {
	index  int
	symbol string
}

func (h *watchlistServiceHandler) CheckWatchlist(ctx context.Context, profileID uuid.UUID) (*domain.WatchlistCheckResult, error) {
	profile, err := h.ProfileRepository.Get(profileID)
	if err != nil {
		return nil, err
	}

	// stable snapshot of the ticker set at batch start
	tickers := make([]string, len(profile.Tickers))
	copy(tickers, profile.Tickers)

	records := h.evaluateAll(ctx, tickers)

	out := &domain.WatchlistCheckResult{
		ProfileID:    profile.ID,
		ProfileName:  profile.Name,
		Results:      make([]domain.TickerResult, 0, len(tickers)),
		GoodToInvest: []string{},
	}
	for i, symbol := range tickers {
		out.Results = append(out.Results, domain.TickerResult{Ticker: symbol, Verdict: records[i]})
		if records[i].Verdict == domain.VerdictBuy {
			out.GoodToInvest = append(out.GoodToInvest, symbol)
		}
	}
	return out, nil
}

// evaluateAll fans the tickers out over a bounded worker pool. Results
// land in an index-addressed slice, so profile order survives without
// any sorting.
func (h *watchlistServiceHandler) evaluateAll(ctx context.Context, tickers []string) []domain.VerdictRecord {
	records := make([]domain.VerdictRecord, len(tickers))

	inputCh := make(chan watchlistWorkInput, len(tickers))
	for i, symbol := range tickers {
		inputCh <- watchlistWorkInput{index: i, symbol: symbol}
	}
	close(inputCh)

	numGoroutines := maxConcurrentFetches
	if len(tickers) < numGoroutines {
		numGoroutines = len(tickers)
	}

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for input := range inputCh {
				records[input.index] = h.evaluateTicker(ctx, input.symbol)
			}
		}()
	}
	wg.Wait()

	return records
}

// evaluateTicker always yields exactly one record: fetch or normalize
// failures degrade that ticker to HOLD and never abort the batch.
func (h *watchlistServiceHandler) evaluateTicker(ctx context.Context, symbol string) domain.VerdictRecord {
	raw, err := fetchMetrics(ctx, h.MarketDataRepository, symbol, h.FetchTimeout)
	if err != nil {
		h.Logger.Warnw("watchlist fetch failed, degrading to HOLD", "symbol", symbol, "error", err)
		return h.Judge.Degraded(symbol)
	}
	snap, err := judge.Normalize(*raw)
	if err != nil {
		h.Logger.Warnw("watchlist normalization failed, degrading to HOLD", "symbol", symbol, "error", err)
		return h.Judge.Degraded(symbol)
	}
	return h.Judge.Evaluate(snap)
}
