package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"decisionengine/internal/domain"
	"decisionengine/internal/judge"
	"decisionengine/internal/repository"
)

// AnalyzeService runs the single-ticker relay: fetch quant data,
// normalize, judge, and attach the bear/bull narrative for display.
type AnalyzeService interface {
	Analyze(ctx context.Context, ticker, thesis string) (*domain.AnalyzeResult, error)
}

type analyzeServiceHandler struct {
	MarketDataRepository repository.MarketDataRepository
	NarrativeRepository  repository.NarrativeRepository
	Judge                judge.Judge
	FetchTimeout         time.Duration
	Logger               *zap.SugaredLogger
}

func NewAnalyzeService(
	marketDataRepository repository.MarketDataRepository,
	narrativeRepository repository.NarrativeRepository,
	j judge.Judge,
	fetchTimeout time.Duration,
	log *zap.SugaredLogger,
) AnalyzeService {
	return &analyzeServiceHandler{
		MarketDataRepository: marketDataRepository,
		NarrativeRepository:  narrativeRepository,
		Judge:                j,
		FetchTimeout:         fetchTimeout,
		Logger:               log,
	}
}

func (h *analyzeServiceHandler) Analyze(ctx context.Context, ticker, thesis string) (*domain.AnalyzeResult, error) {
	symbol, err := judge.ValidateTicker(ticker)
	if err != nil {
		return nil, err
	}

	// fetch failures degrade to a data_available=false snapshot; the
	// judge then forces HOLD. Analyze never fails on upstream data.
	snap := domain.QuantSnapshot{Ticker: symbol}
	raw, err := fetchMetrics(ctx, h.MarketDataRepository, symbol, h.FetchTimeout)
	if err != nil {
		h.Logger.Warnw("market data fetch failed, degrading to HOLD", "symbol", symbol, "error", err)
	} else if normalized, normErr := judge.Normalize(*raw); normErr != nil {
		h.Logger.Warnw("market data normalization failed, degrading to HOLD", "symbol", symbol, "error", normErr)
	} else {
		snap = normalized
	}

	result := &domain.AnalyzeResult{
		Ticker:    symbol,
		QuantData: snap,
		Verdict:   h.Judge.Evaluate(snap),
	}

	quantJSON, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}
	bear, bull, err := h.NarrativeRepository.GenerateDebate(ctx, symbol, thesis, string(quantJSON))
	if err != nil {
		// narrative is display-only; its failure never touches the verdict
		h.Logger.Warnw("debate generation failed", "symbol", symbol, "error", err)
		bear, bull = "[debate unavailable]", "[debate unavailable]"
	}
	result.BearOutput = bear
	result.BullOutput = bull

	return result, nil
}
