package cmd

import (
	"fmt"

	"decisionengine/api"
	"decisionengine/internal"
	"decisionengine/internal/judge"
	"decisionengine/internal/logger"
	"decisionengine/internal/repository"
	"decisionengine/internal/service"
)

// InitializeDependencies wires the full object graph. The returned
// cleanup closes the profile store and flushes the logger.
func InitializeDependencies() (*api.ApiHandler, *internal.Secrets, func(), error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	log := logger.New()

	store, err := repository.OpenProfileStore(secrets.DataDir)
	if err != nil {
		return nil, nil, nil, err
	}

	narrativeRepository, err := repository.NewNarrativeRepository(secrets.OpenAIApiKey, secrets.OpenAIModel)
	if err != nil {
		store.Close()
		return nil, nil, nil, err
	}

	profileRepository := repository.NewProfileRepository(store)
	marketDataRepository := repository.NewYahooMarketDataRepository()
	j := judge.New(judge.DefaultConfig())

	handler := &api.ApiHandler{
		Logger:            log,
		ProfileRepository: profileRepository,
		AnalyzeService: service.NewAnalyzeService(
			marketDataRepository,
			narrativeRepository,
			j,
			secrets.FetchTimeout,
			log,
		),
		WatchlistService: service.NewWatchlistService(
			profileRepository,
			marketDataRepository,
			j,
			secrets.FetchTimeout,
			log,
		),
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Errorw("failed to close profile store", "error", err)
		}
		_ = log.Sync()
	}

	return handler, secrets, cleanup, nil
}
