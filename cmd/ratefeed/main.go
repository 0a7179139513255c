// Command ratefeed fetches the configured forex pairs from Yahoo Finance and
// records them through the pipeline API. It is meant to run from cron.
package main

import (
	"context"
	"net/http"
	"os"

	"minify/internal/config"
	"minify/internal/logger"
	"minify/internal/ratefeed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.InitWithLevel(cfg.Env, cfg.LogLevel)
	defer logger.Sync()
	log := logger.Named("ratefeed")

	if cfg.PipelineAPIKey == "" {
		log.Error("PIPELINE_API_KEY is required")
		os.Exit(1)
	}

	pairs, err := ratefeed.ParsePairs(cfg.ForexPairs)
	if err != nil {
		log.Errorw("invalid FOREX_PAIRS", "error", err)
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: cfg.ForexTimeout}
	feeder := ratefeed.NewFeeder(
		ratefeed.NewYahooFetcher(httpClient),
		ratefeed.NewClient(cfg.APIBaseURL, cfg.PipelineAPIKey, httpClient),
		pairs,
		log,
	)

	result, err := feeder.Run(context.Background())
	if err != nil {
		log.Errorw("ratefeed run failed", "error", err)
		os.Exit(1)
	}

	log.Infow("ratefeed run completed",
		"pairs", len(pairs),
		"fetched", result.Fetched,
		"recorded", result.Recorded,
		"errors", len(result.Errors),
		"duration", result.Duration.String(),
	)
	if len(result.Errors) > 0 {
		os.Exit(2)
	}
}
