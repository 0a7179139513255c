package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "minify/internal/errors"
	"minify/internal/events"
	"minify/internal/models"
	"minify/internal/pagination"
	"minify/internal/services"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func setupExchangeRateRouter(handler *ExchangeRateHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/exchange-rates", handler.GetExchangeRates)
	auth.GET("/exchange-rates/latest", handler.GetLatestRate)
	auth.POST("/admin/exchange-rates", handler.CreateExchangeRates)
	r.POST("/pipeline/exchange-rates", handler.IngestExchangeRates)
	return r
}

func newExchangeRateFixture(t *testing.T, rateSvc *mockRateService, pub events.Publisher) (*gin.Engine, *trackingSessions) {
	t.Helper()
	sessions := newTestSessions(t, &mockTransactionService{}, &mockSubscriptionService{}, &mockCategoryService{}, rateSvc)
	handler := NewExchangeRateHandler(rateSvc, &mockAuditService{}, sessions, pub)
	return setupExchangeRateRouter(handler), sessions
}

func TestExchangeRateHandler_GetExchangeRates(t *testing.T) {
	t.Run("passes the pair filter", func(t *testing.T) {
		var got services.ExchangeRateFilter
		rateSvc := &mockRateService{}
		rateSvc.getRatesFn = func(filter services.ExchangeRateFilter, page pagination.PageRequest) (*pagination.PageResponse[models.ExchangeRate], error) {
			got = filter
			resp := pagination.NewPageResponse([]models.ExchangeRate{usdRate()}, page.Page, page.PageSize, 1)
			return &resp, nil
		}
		r, _ := newExchangeRateFixture(t, rateSvc, nil)

		rec := doRequest(r, "GET", "/exchange-rates?base=USD&quote=RUB", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Base == nil || *got.Base != models.CurrencyUSD || got.Quote == nil || *got.Quote != models.CurrencyRUB {
			t.Errorf("unexpected filter %+v", got)
		}
	})

	t.Run("returns 400 on unsupported currency", func(t *testing.T) {
		r, _ := newExchangeRateFixture(t, &mockRateService{}, nil)

		rec := doRequest(r, "GET", "/exchange-rates?base=BTC", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNSUPPORTED_CURRENCY")
	})
}

func TestExchangeRateHandler_GetLatestRate(t *testing.T) {
	t.Run("returns the newest sample", func(t *testing.T) {
		rateSvc := &mockRateService{
			latestFn: func(base, quote models.CurrencyCode) (*models.ExchangeRate, error) {
				rate := usdRate()
				return &rate, nil
			},
		}
		r, _ := newExchangeRateFixture(t, rateSvc, nil)

		rec := doRequest(r, "GET", "/exchange-rates/latest?base=USD&quote=RUB", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		rate := parseJSON(t, rec)["exchange_rate"].(map[string]interface{})
		if !amountOf(t, rate["rate"]).Equal(decimal.RequireFromString("92.5")) {
			t.Errorf("expected 92.5, got %v", rate["rate"])
		}
	})

	t.Run("returns 400 without both currencies", func(t *testing.T) {
		r, _ := newExchangeRateFixture(t, &mockRateService{}, nil)

		rec := doRequest(r, "GET", "/exchange-rates/latest?base=USD", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 for an unknown pair", func(t *testing.T) {
		rateSvc := &mockRateService{
			latestFn: func(_, _ models.CurrencyCode) (*models.ExchangeRate, error) {
				return nil, apperrors.ErrNotFound
			},
		}
		r, _ := newExchangeRateFixture(t, rateSvc, nil)

		rec := doRequest(r, "GET", "/exchange-rates/latest?base=EUR&quote=CNY", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestExchangeRateHandler_CreateExchangeRates(t *testing.T) {
	t.Run("records, flushes sessions and publishes", func(t *testing.T) {
		var got []services.ExchangeRateInput
		rateSvc := &mockRateService{}
		rateSvc.recordRateFn = func(samples []services.ExchangeRateInput) ([]models.ExchangeRate, error) {
			got = samples
			return []models.ExchangeRate{usdRate()}, nil
		}
		pub := &recordingPublisher{}
		r, sessions := newExchangeRateFixture(t, rateSvc, pub)

		rec := doRequest(r, "POST", "/admin/exchange-rates",
			`{"rates":[{"base_currency":"USD","quote_currency":"RUB","rate":"92.5","date":"2024-03-01","source":"manual"}]}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(got) != 1 || !got[0].Rate.Equal(decimal.RequireFromString("92.5")) || got[0].Source != "manual" {
			t.Fatalf("unexpected samples %+v", got)
		}
		if !got[0].Date.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected date %v", got[0].Date)
		}
		if sessions.flushed != 1 {
			t.Errorf("expected one flush, got %d", sessions.flushed)
		}
		if len(pub.events) != 1 || pub.events[0].Kind != events.RatesIngested {
			t.Errorf("expected one rates.ingested event, got %v", pub.events)
		}
	})

	t.Run("returns 400 on an empty batch", func(t *testing.T) {
		r, sessions := newExchangeRateFixture(t, &mockRateService{}, nil)

		rec := doRequest(r, "POST", "/admin/exchange-rates", `{"rates":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if sessions.flushed != 0 {
			t.Error("rejected batch must not flush sessions")
		}
	})

	t.Run("returns 400 on a non-positive rate", func(t *testing.T) {
		r, _ := newExchangeRateFixture(t, &mockRateService{}, nil)

		rec := doRequest(r, "POST", "/admin/exchange-rates",
			`{"rates":[{"base_currency":"USD","quote_currency":"RUB","rate":"0"}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_RATE")
	})
}

func TestExchangeRateHandler_IngestExchangeRates(t *testing.T) {
	t.Run("reports the recorded count", func(t *testing.T) {
		r, _ := newExchangeRateFixture(t, &mockRateService{}, nil)

		rec := doRequest(r, "POST", "/pipeline/exchange-rates",
			`{"rates":[{"base_currency":"USD","quote_currency":"RUB","rate":"92.5"},{"base_currency":"EUR","quote_currency":"RUB","rate":"100.1"}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if n := parseJSON(t, rec)["rates_recorded"].(float64); n != 2 {
			t.Errorf("expected 2 recorded, got %v", n)
		}
	})

	t.Run("broker failure does not fail the request", func(t *testing.T) {
		pub := &recordingPublisher{err: errors.New("broker down")}
		r, _ := newExchangeRateFixture(t, &mockRateService{}, pub)

		rec := doRequest(r, "POST", "/pipeline/exchange-rates",
			`{"rates":[{"base_currency":"USD","quote_currency":"RUB","rate":"92.5"}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
