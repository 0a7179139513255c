package ratefeed

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"minify/internal/models"
)

const ingestPath = "/api/v1/pipeline/exchange-rates"

// RateEntry is one sample in the ingest request body.
type RateEntry struct {
	BaseCurrency  models.CurrencyCode `json:"base_currency"`
	QuoteCurrency models.CurrencyCode `json:"quote_currency"`
	Rate          decimal.Decimal     `json:"rate"`
	Date          string              `json:"date"` // RFC3339
	Source        string              `json:"source,omitempty"`
}

// Client talks to the minify pipeline API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a pipeline API client.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// RecordRates submits quotes and returns how many the API stored.
func (c *Client) RecordRates(ctx context.Context, quotes []Quote) (int, error) {
	entries := make([]RateEntry, len(quotes))
	for i, q := range quotes {
		entries[i] = RateEntry{
			BaseCurrency:  q.Base,
			QuoteCurrency: q.Quote,
			Rate:          q.Rate,
			Date:          q.At.UTC().Format(time.RFC3339),
			Source:        "yahoo",
		}
	}

	body, err := json.Marshal(struct {
		Rates []RateEntry `json:"rates"`
	}{Rates: entries})
	if err != nil {
		return 0, errors.Wrap(err, "marshaling rates")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ingestPath, bytes.NewReader(body))
	if err != nil {
		return 0, errors.Wrap(err, "creating request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "recording rates")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, errors.Errorf("recording rates: unexpected status %d", resp.StatusCode)
	}

	var result struct {
		RatesRecorded int `json:"rates_recorded"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, errors.Wrap(err, "decoding rates response")
	}
	return result.RatesRecorded, nil
}
