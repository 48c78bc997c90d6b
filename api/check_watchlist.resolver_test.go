package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"decisionengine/internal/domain"
)

type stubWatchlistService struct {
	gotProfileID uuid.UUID
	result       *domain.WatchlistCheckResult
	err          error
}

func (s *stubWatchlistService) CheckWatchlist(_ context.Context, profileID uuid.UUID) (*domain.WatchlistCheckResult, error) {
	s.gotProfileID = profileID
	return s.result, s.err
}

func Test_checkWatchlist(t *testing.T) {
	t.Run("returns the batch result", func(t *testing.T) {
		profileID := uuid.New()
		stub := &stubWatchlistService{
			result: &domain.WatchlistCheckResult{
				ProfileID:   profileID,
				ProfileName: "tech",
				Results: []domain.TickerResult{
					{Ticker: "AAPL", Verdict: domain.VerdictRecord{Ticker: "AAPL", Verdict: domain.VerdictBuy, ConfidenceScore: 85}},
				},
				GoodToInvest: []string{"AAPL"},
			},
		}
		handler := ApiHandler{Logger: zap.NewNop().Sugar(), WatchlistService: stub}

		w := performRequest(handler.Router(), "POST", "/api/profiles/"+profileID.String()+"/check-watchlist", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, profileID, stub.gotProfileID)

		var got domain.WatchlistCheckResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Equal(t, []string{"AAPL"}, got.GoodToInvest)
	})

	t.Run("unknown profile maps to 404", func(t *testing.T) {
		profileID := uuid.New()
		stub := &stubWatchlistService{
			err: domain.NotFoundError{Resource: "profile", ID: profileID.String()},
		}
		handler := ApiHandler{Logger: zap.NewNop().Sugar(), WatchlistService: stub}

		w := performRequest(handler.Router(), "POST", "/api/profiles/"+profileID.String()+"/check-watchlist", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed profile id maps to 400", func(t *testing.T) {
		handler := ApiHandler{Logger: zap.NewNop().Sugar(), WatchlistService: &stubWatchlistService{}}

		w := performRequest(handler.Router(), "POST", "/api/profiles/oops/check-watchlist", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
