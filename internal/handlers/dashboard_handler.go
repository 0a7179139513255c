package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "minify/internal/errors"
	"minify/internal/finance"
	"minify/internal/models"
)

const (
	defaultForecastMonths = 2
	maxForecastMonths     = 24
)

// DashboardHandler exposes the per-user dashboard state.
type DashboardHandler struct {
	sessions Sessions
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(sessions Sessions) *DashboardHandler {
	return &DashboardHandler{sessions: sessions}
}

// SetMonthRequest selects the month the summaries cover.
type SetMonthRequest struct {
	Month string `json:"month" binding:"required,year_month" example:"2024-03"`
}

// SetCurrencyRequest selects the display currency.
type SetCurrencyRequest struct {
	Currency models.CurrencyCode `json:"currency" binding:"required,iso4217" example:"USD"`
}

// ConvertRequest is an amount to express in the selected currency.
type ConvertRequest struct {
	Amount   decimal.Decimal     `json:"amount" swaggertype:"number"`
	Currency models.CurrencyCode `json:"currency" binding:"required,iso4217"`
}

// ChatRequest is a prompt for the spending assistant.
type ChatRequest struct {
	Prompt string `json:"prompt" binding:"max=2000"`
}

// GetDashboard returns the full dashboard state
// @Summary     Get dashboard
// @Description Snapshot of the caller's dashboard: collections, selected month and currency, and derived summaries
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} dashboard.View
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	_, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, store.Snapshot())
}

// GetSummary returns only the derived summaries
// @Summary     Get dashboard summary
// @Description Daily and category totals for the selected month in the selected currency
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} dashboard.Summary
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	_, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, store.Summary())
}

// Reload refetches every collection from storage
// @Summary     Reload dashboard
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} dashboard.Summary
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/reload [post]
func (h *DashboardHandler) Reload(c *gin.Context) {
	_, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if err := store.Load(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, store.Summary())
}

// SetMonth changes the selected month
// @Summary     Select month
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetMonthRequest true "Month in YYYY-MM format"
// @Success     200 {object} dashboard.Summary
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/month [put]
func (h *DashboardHandler) SetMonth(c *gin.Context) {
	_, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	month, err := finance.ParseMonth(req.Month)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := store.SetMonth(c.Request.Context(), month); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, store.Summary())
}

// SetCurrency changes the display currency
// @Summary     Select currency
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetCurrencyRequest true "Currency code"
// @Success     200 {object} dashboard.Summary
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/currency [put]
func (h *DashboardHandler) SetCurrency(c *gin.Context) {
	_, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	if err := store.SetCurrency(c.Request.Context(), req.Currency); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, store.Summary())
}

// Forecast projects subscription charges
// @Summary     Subscription forecast
// @Description Every subscription charge from the selected month through the given number of further months, in the selected currency
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Months beyond the selected one (default 2, max 24)"
// @Success     200 {array} finance.ForecastItem
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/forecast [get]
func (h *DashboardHandler) Forecast(c *gin.Context) {
	_, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := defaultForecastMonths
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > maxForecastMonths {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be between 0 and 24"))
			return
		}
		months = n
	}

	c.JSON(http.StatusOK, gin.H{"forecast": store.Forecast(months)})
}

// Convert expresses an amount in the selected currency
// @Summary     Convert amount
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ConvertRequest true "Amount and its currency"
// @Success     200 {object} finance.Conversion
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/convert [post]
func (h *DashboardHandler) Convert(c *gin.Context) {
	_, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	conv := store.Convert(models.NewMoney(req.Amount, req.Currency))
	c.JSON(http.StatusOK, gin.H{
		"money":       conv.Money,
		"source":      conv.Source,
		"rate":        conv.Rate,
		"approximate": conv.Approximate(),
	})
}

// ListPresets returns the quick-entry presets
// @Summary     List presets
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} refdata.Preset
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/presets [get]
func (h *DashboardHandler) ListPresets(c *gin.Context) {
	_, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"presets": store.Presets()})
}

// ApplyPreset records a transaction from a preset
// @Summary     Apply preset
// @Description Create a transaction dated now from the preset template
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Preset ID"
// @Success     201 {object} models.Transaction
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Preset not found"
// @Router      /dashboard/presets/{id}/apply [post]
func (h *DashboardHandler) ApplyPreset(c *gin.Context) {
	_, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := store.ApplyPreset(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": tx, "summary": store.Summary()})
}

// GetChat returns the assistant conversation
// @Summary     Chat history
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.ChatMessage
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/chat [get]
func (h *DashboardHandler) GetChat(c *gin.Context) {
	_, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": store.ChatHistory()})
}

// SendChat sends a prompt to the spending assistant
// @Summary     Send chat prompt
// @Description Appends the prompt and a spending digest for the selected month
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChatRequest true "Prompt"
// @Success     201 {array} models.ChatMessage
// @Failure     400 {object} ErrorResponse "Empty prompt"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/chat [post]
func (h *DashboardHandler) SendChat(c *gin.Context) {
	_, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	msgs, err := store.SendChatPrompt(c.Request.Context(), req.Prompt)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"messages": msgs})
}
