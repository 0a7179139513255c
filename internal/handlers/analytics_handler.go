package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "minify/internal/errors"
	"minify/internal/services"
)

// AnalyticsHandler serves totals computed in the database. Unlike the
// dashboard, these are grouped per currency and never converted.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
	loc              *time.Location
}

// NewAnalyticsHandler creates a new AnalyticsHandler. Month and date bounds
// are resolved in loc; nil means UTC.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer, loc *time.Location) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, loc: loc}
}

// GetDailyTotals returns income and expense per day
// @Summary     Daily totals
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "YYYY-MM (default current month)"
// @Param       from  query string false "Start date, inclusive"
// @Param       to    query string false "End date, inclusive"
// @Success     200 {array}  services.DailyTotal
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/daily [get]
func (h *AnalyticsHandler) GetDailyTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	from, to, err := dateRange(c, h.loc)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if to.Before(from) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must not be before from"))
		return
	}

	totals, err := h.analyticsService.DailyTotals(c.Request.Context(), userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "totals": totals})
}

// GetCategoryTotals returns the expense sum per category
// @Summary     Category totals
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "YYYY-MM (default current month)"
// @Param       from  query string false "Start date, inclusive"
// @Param       to    query string false "End date, inclusive"
// @Success     200 {array}  services.CategoryTotal
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/category-sum [get]
func (h *AnalyticsHandler) GetCategoryTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	from, to, err := dateRange(c, h.loc)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if to.Before(from) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must not be before from"))
		return
	}

	totals, err := h.analyticsService.CategoryTotals(c.Request.Context(), userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "totals": totals})
}

// GetSubscriptionsOverview summarizes recurring costs
// @Summary     Subscriptions overview
// @Description Active and paused counts plus the normalized monthly cost per currency
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.SubscriptionsOverview
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/subscriptions-overview [get]
func (h *AnalyticsHandler) GetSubscriptionsOverview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	overview, err := h.analyticsService.SubscriptionsOverview(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overview": overview})
}
