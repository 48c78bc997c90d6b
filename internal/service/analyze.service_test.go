package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"decisionengine/internal/domain"
	"decisionengine/internal/judge"
	mock_repository "decisionengine/internal/repository/mocks"
)

func newAnalyzeHandlerForTests(t *testing.T) (*analyzeServiceHandler, *mock_repository.MockMarketDataRepository, *mock_repository.MockNarrativeRepository) {
	ctrl := gomock.NewController(t)
	marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
	narrativeRepository := mock_repository.NewMockNarrativeRepository(ctrl)

	handler := &analyzeServiceHandler{
		MarketDataRepository: marketDataRepository,
		NarrativeRepository:  narrativeRepository,
		Judge:                judge.New(judge.DefaultConfig()),
		FetchTimeout:         time.Second,
		Logger:               zap.NewNop().Sugar(),
	}
	return handler, marketDataRepository, narrativeRepository
}

func Test_Analyze(t *testing.T) {
	t.Run("happy path carries quant data and narratives", func(t *testing.T) {
		handler, marketDataRepository, narrativeRepository := newAnalyzeHandlerForTests(t)

		marketDataRepository.EXPECT().FetchMetrics(gomock.Any(), "AAPL").Return(strongMetrics("AAPL"), nil)
		narrativeRepository.EXPECT().
			GenerateDebate(gomock.Any(), "AAPL", "long-term hold", gomock.Any()).
			Return("bear case", "bull case", nil)

		result, err := handler.Analyze(context.Background(), "AAPL", "long-term hold")
		require.NoError(t, err)

		require.Equal(t, "AAPL", result.Ticker)
		require.Equal(t, "bear case", result.BearOutput)
		require.Equal(t, "bull case", result.BullOutput)
		require.True(t, result.QuantData.DataAvailable)
		require.Equal(t, domain.VerdictBuy, result.Verdict.Verdict)
	})

	t.Run("lowercase input is canonicalized before fetching", func(t *testing.T) {
		handler, marketDataRepository, narrativeRepository := newAnalyzeHandlerForTests(t)

		marketDataRepository.EXPECT().FetchMetrics(gomock.Any(), "MSFT").Return(strongMetrics("MSFT"), nil)
		narrativeRepository.EXPECT().
			GenerateDebate(gomock.Any(), "MSFT", "", gomock.Any()).
			Return("bear", "bull", nil)

		result, err := handler.Analyze(context.Background(), "msft", "")
		require.NoError(t, err)
		require.Equal(t, "MSFT", result.Ticker)
	})

	t.Run("invalid ticker fails validation without fetching", func(t *testing.T) {
		handler, _, _ := newAnalyzeHandlerForTests(t)

		_, err := handler.Analyze(context.Background(), "AAPL$", "")
		var validationErr domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("fetch failure degrades to HOLD instead of erroring", func(t *testing.T) {
		handler, marketDataRepository, narrativeRepository := newAnalyzeHandlerForTests(t)

		marketDataRepository.EXPECT().FetchMetrics(gomock.Any(), "ZZZZ").
			Return(nil, domain.UpstreamDataError{Symbol: "ZZZZ", Err: fmt.Errorf("quote not found")})
		narrativeRepository.EXPECT().
			GenerateDebate(gomock.Any(), "ZZZZ", "", gomock.Any()).
			Return("bear", "bull", nil)

		result, err := handler.Analyze(context.Background(), "ZZZZ", "")
		require.NoError(t, err)

		require.False(t, result.QuantData.DataAvailable)
		require.Equal(t, domain.VerdictHold, result.Verdict.Verdict)
		require.Equal(t, 50, result.Verdict.ConfidenceScore)
	})

	t.Run("narrative failure never touches the verdict", func(t *testing.T) {
		handler, marketDataRepository, narrativeRepository := newAnalyzeHandlerForTests(t)

		marketDataRepository.EXPECT().FetchMetrics(gomock.Any(), "AAPL").Return(strongMetrics("AAPL"), nil)
		narrativeRepository.EXPECT().
			GenerateDebate(gomock.Any(), "AAPL", "", gomock.Any()).
			Return("", "", fmt.Errorf("llm backend unavailable"))

		result, err := handler.Analyze(context.Background(), "AAPL", "")
		require.NoError(t, err)

		require.Equal(t, "[debate unavailable]", result.BearOutput)
		require.Equal(t, "[debate unavailable]", result.BullOutput)
		require.Equal(t, domain.VerdictBuy, result.Verdict.Verdict)
	})
}
