package internal

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Secrets carries all runtime configuration. Values come from the
// environment, with an optional .env file for local development.
type Secrets struct {
	OpenAIApiKey string
	OpenAIModel  string
	DataDir      string
	Port         int
	FetchTimeout time.Duration
}

func LoadSecrets() (*Secrets, error) {
	// missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	secrets := &Secrets{
		OpenAIApiKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  os.Getenv("RDE_OPENAI_MODEL"),
		DataDir:      envOrDefault("RDE_DATA_DIR", "data"),
		Port:         8000,
		FetchTimeout: 10 * time.Second,
	}

	if v := os.Getenv("RDE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RDE_PORT %q: %w", v, err)
		}
		secrets.Port = port
	}
	if v := os.Getenv("RDE_FETCH_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RDE_FETCH_TIMEOUT_SECONDS %q: %w", v, err)
		}
		secrets.FetchTimeout = time.Duration(seconds) * time.Second
	}

	return secrets, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
