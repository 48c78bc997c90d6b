package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"decisionengine/internal/domain"
	mock_repository "decisionengine/internal/repository/mocks"
)

func Test_fetchMetrics_timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	marketDataRepository.EXPECT().FetchMetrics(gomock.Any(), "AAPL").
		DoAndReturn(func(ctx context.Context, symbol string) (*domain.RawMetrics, error) {
			<-release
			return &domain.RawMetrics{Ticker: symbol}, nil
		})

	start := time.Now()
	_, err := fetchMetrics(context.Background(), marketDataRepository, "AAPL", 20*time.Millisecond)
	require.Less(t, time.Since(start), time.Second)

	var upstreamErr domain.UpstreamDataError
	require.ErrorAs(t, err, &upstreamErr)
	require.Equal(t, "AAPL", upstreamErr.Symbol)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func Test_fetchMetrics_cancelledParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	marketDataRepository.EXPECT().FetchMetrics(gomock.Any(), "AAPL").
		DoAndReturn(func(ctx context.Context, symbol string) (*domain.RawMetrics, error) {
			<-release
			return &domain.RawMetrics{Ticker: symbol}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetchMetrics(ctx, marketDataRepository, "AAPL", time.Second)
	var upstreamErr domain.UpstreamDataError
	require.ErrorAs(t, err, &upstreamErr)
}
