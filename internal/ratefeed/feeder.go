package ratefeed

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// QuoteFetcher is satisfied by YahooFetcher.
type QuoteFetcher interface {
	FetchAll(ctx context.Context, pairs []Pair) ([]Quote, []FetchError)
}

// RateRecorder is satisfied by Client.
type RateRecorder interface {
	RecordRates(ctx context.Context, quotes []Quote) (int, error)
}

// RunResult contains the outcome of one feeder run.
type RunResult struct {
	Fetched  int
	Recorded int
	Errors   []FetchError
	Duration time.Duration
}

// Feeder runs one fetch-and-record cycle.
type Feeder struct {
	fetcher  QuoteFetcher
	recorder RateRecorder
	pairs    []Pair
	log      *zap.SugaredLogger
}

// NewFeeder creates a Feeder for the given pairs.
func NewFeeder(fetcher QuoteFetcher, recorder RateRecorder, pairs []Pair, log *zap.SugaredLogger) *Feeder {
	return &Feeder{fetcher: fetcher, recorder: recorder, pairs: pairs, log: log}
}

// Run fetches every pair and records whatever succeeded. It only returns an
// error when the recording call itself fails.
func (f *Feeder) Run(ctx context.Context) (*RunResult, error) {
	start := time.Now()
	result := &RunResult{}

	quotes, failed := f.fetcher.FetchAll(ctx, f.pairs)
	result.Fetched = len(quotes)
	result.Errors = failed
	for _, e := range failed {
		f.log.Warnw("forex fetch failed", "pair", e.Pair.String(), "error", e.Err.Error())
	}

	if len(quotes) == 0 {
		f.log.Info("no quotes fetched, nothing to record")
		result.Duration = time.Since(start)
		return result, nil
	}

	recorded, err := f.recorder.RecordRates(ctx, quotes)
	if err != nil {
		return nil, err
	}
	result.Recorded = recorded
	result.Duration = time.Since(start)
	return result, nil
}
