package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "minify/internal/errors"
	"minify/internal/events"
	"minify/internal/logger"
	"minify/internal/models"
	"minify/internal/services"
)

// ExchangeRateHandler serves the shared rate table. Rates are global, so
// every write flushes all cached dashboards.
type ExchangeRateHandler struct {
	rateService  services.ExchangeRateServicer
	auditService services.AuditServicer
	sessions     Sessions
	publisher    events.Publisher
}

// NewExchangeRateHandler creates a new ExchangeRateHandler.
func NewExchangeRateHandler(rateService services.ExchangeRateServicer, auditService services.AuditServicer, sessions Sessions, publisher events.Publisher) *ExchangeRateHandler {
	return &ExchangeRateHandler{
		rateService:  rateService,
		auditService: auditService,
		sessions:     sessions,
		publisher:    publisher,
	}
}

// RateEntry is one submitted rate sample: 1 base = rate quote.
type RateEntry struct {
	BaseCurrency  models.CurrencyCode `json:"base_currency" binding:"required,iso4217"`
	QuoteCurrency models.CurrencyCode `json:"quote_currency" binding:"required,iso4217"`
	Rate          decimal.Decimal     `json:"rate" swaggertype:"number"`
	Date          string              `json:"date"`
	Source        string              `json:"source" binding:"max=50"`
}

// RecordRatesRequest is the batch payload shared by the admin and pipeline endpoints.
type RecordRatesRequest struct {
	Rates []RateEntry `json:"rates" binding:"required,min=1,max=500,dive"`
}

// GetExchangeRates lists stored samples
// @Summary     List exchange rates
// @Description Paginated samples, newest first, optionally for one pair
// @Tags        exchange-rates
// @Produce     json
// @Security    BearerAuth
// @Param       base      query string false "Base currency"
// @Param       quote     query string false "Quote currency"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.ExchangeRate]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /exchange-rates [get]
func (h *ExchangeRateHandler) GetExchangeRates(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var filter services.ExchangeRateFilter
	if v := c.Query("base"); v != "" {
		code := models.CurrencyCode(v)
		if !code.Valid() {
			respondWithError(c, apperrors.ErrUnsupportedCurrency)
			return
		}
		filter.Base = &code
	}
	if v := c.Query("quote"); v != "" {
		code := models.CurrencyCode(v)
		if !code.Valid() {
			respondWithError(c, apperrors.ErrUnsupportedCurrency)
			return
		}
		filter.Quote = &code
	}

	result, err := h.rateService.GetExchangeRates(c.Request.Context(), filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetLatestRate returns the newest sample of one pair
// @Summary     Latest exchange rate
// @Tags        exchange-rates
// @Produce     json
// @Security    BearerAuth
// @Param       base  query string true "Base currency"
// @Param       quote query string true "Quote currency"
// @Success     200 {object} models.ExchangeRate
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No rate for the pair"
// @Router      /exchange-rates/latest [get]
func (h *ExchangeRateHandler) GetLatestRate(c *gin.Context) {
	base := models.CurrencyCode(c.Query("base"))
	quote := models.CurrencyCode(c.Query("quote"))
	if base == "" || quote == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "base and quote are required"))
		return
	}

	rate, err := h.rateService.LatestRate(c.Request.Context(), base, quote)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exchange_rate": rate})
}

// CreateExchangeRates records samples submitted by an administrator
// @Summary     Record exchange rates
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RecordRatesRequest true "Rate samples"
// @Success     201 {array}  models.ExchangeRate
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Router      /admin/exchange-rates [post]
func (h *ExchangeRateHandler) CreateExchangeRates(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rates, err := h.record(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXCHANGE_RATES", "exchange_rate", rates[0].ID, c.ClientIP(),
		map[string]interface{}{"count": len(rates)})
	c.JSON(http.StatusCreated, gin.H{"exchange_rates": rates})
}

// IngestExchangeRates records samples pushed by the rate feed
// @Summary     Ingest exchange rates
// @Description Machine endpoint authenticated with X-API-Key
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body RecordRatesRequest true "Rate samples"
// @Success     200 {object} map[string]int
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Pipeline not configured"
// @Router      /pipeline/exchange-rates [post]
func (h *ExchangeRateHandler) IngestExchangeRates(c *gin.Context) {
	rates, err := h.record(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rates_recorded": len(rates)})
}

func (h *ExchangeRateHandler) record(c *gin.Context) ([]models.ExchangeRate, error) {
	var req RecordRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, bindError(err)
	}

	samples := make([]services.ExchangeRateInput, 0, len(req.Rates))
	for i, r := range req.Rates {
		in := services.ExchangeRateInput{
			Base:   r.BaseCurrency,
			Quote:  r.QuoteCurrency,
			Rate:   r.Rate,
			Source: r.Source,
		}
		if r.Date != "" {
			d, err := parseFlexibleTime(r.Date, time.UTC)
			if err != nil {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "rate "+strconv.Itoa(i)+": "+err.Error())
			}
			in.Date = d
		}
		samples = append(samples, in)
	}

	rates, err := h.rateService.RecordRates(c.Request.Context(), samples)
	if err != nil {
		return nil, err
	}

	h.sessions.Flush()
	h.announce(c.Request.Context(), rates)
	return rates, nil
}

func (h *ExchangeRateHandler) announce(ctx context.Context, rates []models.ExchangeRate) {
	logger.Get().Infow("exchange rates recorded", "count", len(rates))
	e := events.New(events.RatesIngested, "", "").With("count", strconv.Itoa(len(rates)))
	events.PublishQuietly(ctx, h.publisher, e)
}
