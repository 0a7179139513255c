// Package ratefeed fetches forex quotes from Yahoo Finance and pushes them
// to the minify pipeline API.
package ratefeed

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"minify/internal/models"
)

const (
	yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	yahooUA       = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"

	// maxParallelFetches bounds concurrent requests to Yahoo.
	maxParallelFetches = 4
)

// Pair is a currency pair such as USD/RUB: one unit of Base buys Rate units of Quote.
type Pair struct {
	Base  models.CurrencyCode
	Quote models.CurrencyCode
}

func (p Pair) String() string {
	return string(p.Base) + string(p.Quote)
}

// ticker returns the Yahoo symbol, e.g. "USDRUB=X".
func (p Pair) ticker() string {
	return p.String() + "=X"
}

// ParsePair parses a six-letter code like "USDRUB". Both currencies must be
// supported and distinct.
func ParsePair(s string) (Pair, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 6 {
		return Pair{}, errors.Errorf("invalid pair %q: expected six letters like USDRUB", s)
	}
	p := Pair{Base: models.CurrencyCode(s[:3]), Quote: models.CurrencyCode(s[3:])}
	if !p.Base.Valid() || !p.Quote.Valid() {
		return Pair{}, errors.Errorf("invalid pair %q: unsupported currency", s)
	}
	if p.Base == p.Quote {
		return Pair{}, errors.Errorf("invalid pair %q: currencies must differ", s)
	}
	return p, nil
}

// ParsePairs parses every entry of raw and fails on the first bad one.
func ParsePairs(raw []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(raw))
	for _, r := range raw {
		p, err := ParsePair(r)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// Quote is one fetched rate sample.
type Quote struct {
	Pair
	Rate decimal.Decimal
	At   time.Time
}

// FetchError records a pair that could not be fetched.
type FetchError struct {
	Pair Pair
	Err  error
}

func (e FetchError) Error() string {
	return e.Pair.String() + ": " + e.Err.Error()
}

// yahooChartResponse is the subset of the v8 chart payload we read.
type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				RegularMarketTime  int64   `json:"regularMarketTime"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// YahooFetcher reads forex quotes from the Yahoo Finance chart API.
type YahooFetcher struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
	now        func() time.Time
}

// NewYahooFetcher creates a fetcher using httpClient.
func NewYahooFetcher(httpClient *http.Client) *YahooFetcher {
	return &YahooFetcher{httpClient: httpClient, baseURL: yahooChartURL, now: time.Now}
}

// FetchAll fetches every pair concurrently. Pairs that fail are reported in
// the second return value; they never abort the others.
func (f *YahooFetcher) FetchAll(ctx context.Context, pairs []Pair) ([]Quote, []FetchError) {
	var (
		mu     sync.Mutex
		quotes = make([]Quote, 0, len(pairs))
		failed []FetchError
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFetches)
	for _, p := range pairs {
		p := p
		g.Go(func() error {
			q, err := f.Fetch(gctx, p)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed = append(failed, FetchError{Pair: p, Err: err})
				return nil
			}
			quotes = append(quotes, q)
			return nil
		})
	}
	_ = g.Wait()

	// Keep the configured order regardless of completion order.
	ordered := make([]Quote, 0, len(quotes))
	for _, p := range pairs {
		for _, q := range quotes {
			if q.Pair == p {
				ordered = append(ordered, q)
				break
			}
		}
	}
	return ordered, failed
}

// Fetch reads the latest market price of one pair.
func (f *YahooFetcher) Fetch(ctx context.Context, pair Pair) (Quote, error) {
	ticker := pair.ticker()
	url := f.baseURL + "/" + ticker + "?interval=1d&range=1d"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return Quote{}, errors.Wrap(err, "building forex request")
	}
	req.Header.Set("User-Agent", yahooUA)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return Quote{}, errors.Wrapf(err, "forex request for %s", ticker)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, errors.Errorf("forex request for %s: unexpected status %d", ticker, resp.StatusCode)
	}

	var chart yahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return Quote{}, errors.Wrapf(err, "decoding forex response for %s", ticker)
	}
	if chart.Chart.Error != nil {
		return Quote{}, errors.Errorf("forex chart error for %s: %s: %s", ticker, chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return Quote{}, errors.Errorf("no forex results for %s", ticker)
	}

	meta := chart.Chart.Result[0].Meta
	if meta.RegularMarketPrice <= 0 {
		return Quote{}, errors.Errorf("invalid forex rate for %s: %f", ticker, meta.RegularMarketPrice)
	}

	at := f.now().UTC()
	if meta.RegularMarketTime > 0 {
		at = time.Unix(meta.RegularMarketTime, 0).UTC()
	}
	return Quote{
		Pair: pair,
		Rate: decimal.NewFromFloat(meta.RegularMarketPrice),
		At:   at,
	}, nil
}
