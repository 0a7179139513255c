package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "minify/internal/errors"
	"minify/internal/finance"
	"minify/internal/models"
	"minify/internal/services"
)

const (
	defaultOccurrences = 6
	maxOccurrences     = 60
)

// SubscriptionHandler handles subscription-related requests.
type SubscriptionHandler struct {
	subscriptionService services.SubscriptionServicer
	auditService        services.AuditServicer
	sessions            Sessions
	loc                 *time.Location
}

// NewSubscriptionHandler creates a new SubscriptionHandler. Payment dates
// given as YYYY-MM-DD are read in loc; nil means UTC.
func NewSubscriptionHandler(subscriptionService services.SubscriptionServicer, auditService services.AuditServicer, sessions Sessions, loc *time.Location) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService, auditService: auditService, sessions: sessions, loc: loc}
}

// CreateSubscriptionRequest represents the request payload for creating a subscription
type CreateSubscriptionRequest struct {
	Name               string                    `json:"name" binding:"required,max=200"`
	CategoryID         *string                   `json:"category_id" binding:"omitempty,uuid"`
	Merchant           string                    `json:"merchant" binding:"max=200"`
	NextPaymentDate    string                    `json:"next_payment_date" binding:"required"`
	Cadence            models.Cadence            `json:"cadence" binding:"required,cadence"`
	Amount             decimal.Decimal           `json:"amount" swaggertype:"number"`
	Currency           models.CurrencyCode       `json:"currency" binding:"required,iso4217"`
	Status             models.SubscriptionStatus `json:"status" binding:"omitempty,subscription_status"`
	Tags               []string                  `json:"tags" binding:"max=20,dive,max=50"`
	ReminderDaysBefore *int                      `json:"reminder_days_before" binding:"omitempty,min=0,max=60"`
	Notes              string                    `json:"notes" binding:"max=1000"`
}

// UpdateSubscriptionRequest lists the mutable fields; omitted fields are kept.
type UpdateSubscriptionRequest struct {
	Name               *string                    `json:"name" binding:"omitempty,max=200"`
	CategoryID         *string                    `json:"category_id"`
	Merchant           *string                    `json:"merchant" binding:"omitempty,max=200"`
	NextPaymentDate    *string                    `json:"next_payment_date"`
	Cadence            *models.Cadence            `json:"cadence" binding:"omitempty,cadence"`
	Amount             *decimal.Decimal           `json:"amount" swaggertype:"number"`
	Currency           *models.CurrencyCode       `json:"currency" binding:"omitempty,iso4217"`
	Status             *models.SubscriptionStatus `json:"status" binding:"omitempty,subscription_status"`
	Tags               *[]string                  `json:"tags" binding:"omitempty,max=20"`
	ReminderDaysBefore *int                       `json:"reminder_days_before" binding:"omitempty,min=0,max=60"`
	Notes              *string                    `json:"notes" binding:"omitempty,max=1000"`
}

// CreateSubscription handles the creation of a subscription
// @Summary     Create a subscription
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSubscriptionRequest true "Subscription details"
// @Success     201 {object} models.Subscription "Subscription created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	userID, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	next, err := parseFlexibleTime(req.NextPaymentDate, h.loc)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sub, err := store.CreateSubscription(c.Request.Context(), services.SubscriptionDraft{
		Name:               req.Name,
		CategoryID:         req.CategoryID,
		Merchant:           req.Merchant,
		NextPaymentDate:    next,
		Cadence:            req.Cadence,
		Amount:             models.NewMoney(req.Amount, req.Currency),
		Status:             req.Status,
		Tags:               req.Tags,
		ReminderDaysBefore: req.ReminderDaysBefore,
		Notes:              req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_SUBSCRIPTION", "subscription", sub.ID, c.ClientIP(),
		map[string]interface{}{"name": sub.Name, "cadence": sub.Cadence})

	c.JSON(http.StatusCreated, gin.H{"subscription": sub, "summary": store.Summary()})
}

// GetUserSubscriptions lists the caller's subscriptions
// @Summary     List subscriptions
// @Description Paginated subscriptions ordered by next payment date
// @Tags        subscriptions
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       sort      query string false "next_payment_date, amount or name; prefix - for descending"
// @Param       status    query string false "active or paused"
// @Param       cadence   query string false "weekly, monthly, quarterly or yearly"
// @Success     200 {object} pagination.PageResponse[models.Subscription]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /subscriptions [get]
func (h *SubscriptionHandler) GetUserSubscriptions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var filter services.SubscriptionFilter
	if v := c.Query("status"); v != "" {
		s := models.SubscriptionStatus(v)
		filter.Status = &s
	}
	if v := c.Query("cadence"); v != "" {
		cd := models.Cadence(v)
		if !cd.Valid() {
			respondWithError(c, apperrors.ErrInvalidCadence)
			return
		}
		filter.Cadence = &cd
	}

	result, err := h.subscriptionService.GetUserSubscriptions(c.Request.Context(), userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSubscriptionByID returns one subscription
// @Summary     Get a subscription
// @Tags        subscriptions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Subscription ID"
// @Success     200 {object} models.Subscription
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Router      /subscriptions/{id} [get]
func (h *SubscriptionHandler) GetSubscriptionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	sub, err := h.subscriptionService.GetSubscriptionByID(c.Request.Context(), userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

// GetOccurrences lists upcoming charge dates of one subscription
// @Summary     Subscription occurrences
// @Description The next count charge dates starting at the anchor date
// @Tags        subscriptions
// @Produce     json
// @Security    BearerAuth
// @Param       id    path  string true  "Subscription ID"
// @Param       count query int    false "Number of dates (default 6, max 60)"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Router      /subscriptions/{id}/forecast [get]
func (h *SubscriptionHandler) GetOccurrences(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	count := defaultOccurrences
	if raw := c.Query("count"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 || n > maxOccurrences {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "count must be between 1 and 60"))
			return
		}
		count = n
	}

	sub, err := h.subscriptionService.GetSubscriptionByID(c.Request.Context(), userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscription_id": sub.ID,
		"cadence":         sub.Cadence,
		"dates":           finance.Occurrences(*sub, count),
	})
}

// UpdateSubscription patches a subscription
// @Summary     Update a subscription
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                    true "Subscription ID"
// @Param       request body UpdateSubscriptionRequest true "Fields to change"
// @Success     200 {object} models.Subscription
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Router      /subscriptions/{id} [patch]
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	userID, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	patch, err := req.toPatch(h.loc)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sub, err := store.UpdateSubscription(c.Request.Context(), id, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SUBSCRIPTION", "subscription", sub.ID, c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"subscription": sub, "summary": store.Summary()})
}

// ToggleSubscription flips a subscription between active and paused
// @Summary     Toggle subscription status
// @Tags        subscriptions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Subscription ID"
// @Success     200 {object} models.Subscription
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Router      /subscriptions/{id}/toggle [post]
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	userID, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	sub, err := store.ToggleSubscriptionStatus(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "TOGGLE_SUBSCRIPTION", "subscription", sub.ID, c.ClientIP(),
		map[string]interface{}{"status": sub.Status})
	c.JSON(http.StatusOK, gin.H{"subscription": sub, "summary": store.Summary()})
}

// DeleteSubscription removes a subscription
// @Summary     Delete a subscription
// @Tags        subscriptions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Subscription ID"
// @Success     200 {object} dashboard.Summary
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Router      /subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	userID, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := store.DeleteSubscription(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_SUBSCRIPTION", "subscription", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted", "summary": store.Summary()})
}

func (r UpdateSubscriptionRequest) toPatch(loc *time.Location) (services.SubscriptionPatch, error) {
	patch := services.SubscriptionPatch{
		Name:               r.Name,
		CategoryID:         r.CategoryID,
		Merchant:           r.Merchant,
		Cadence:            r.Cadence,
		Status:             r.Status,
		Tags:               r.Tags,
		ReminderDaysBefore: r.ReminderDaysBefore,
		Notes:              r.Notes,
	}
	if r.NextPaymentDate != nil {
		d, err := parseFlexibleTime(*r.NextPaymentDate, loc)
		if err != nil {
			return patch, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		patch.NextPaymentDate = &d
	}
	if (r.Amount == nil) != (r.Currency == nil) {
		return patch, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount and currency must be sent together")
	}
	if r.Amount != nil {
		m := models.NewMoney(*r.Amount, *r.Currency)
		patch.Amount = &m
	}
	return patch, nil
}
