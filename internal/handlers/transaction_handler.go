package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "minify/internal/errors"
	"minify/internal/models"
	"minify/internal/services"
)

// TransactionHandler handles transaction-related requests. Reads go to
// storage directly; mutations go through the caller's dashboard store so
// its summaries stay current.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
	sessions           Sessions
	loc                *time.Location
}

// NewTransactionHandler creates a new TransactionHandler. Plain dates in
// requests and filters are read in loc; nil means UTC.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer, sessions Sessions, loc *time.Location) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService, sessions: sessions, loc: loc}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	CategoryID  *string                `json:"category_id" binding:"omitempty,uuid"`
	Category    string                 `json:"category" binding:"max=100"`
	Merchant    string                 `json:"merchant" binding:"max=200"`
	Tags        []string               `json:"tags" binding:"max=20,dive,max=50"`
	Date        *string                `json:"date"`
	Description string                 `json:"description" binding:"max=500"`
	Amount      decimal.Decimal        `json:"amount" swaggertype:"number"`
	Currency    models.CurrencyCode    `json:"currency" binding:"required,iso4217"`
	Note        string                 `json:"note" binding:"max=1000"`
}

// UpdateTransactionRequest lists the mutable fields; omitted fields are kept.
// Amount and currency must be sent together.
type UpdateTransactionRequest struct {
	Type        *models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
	CategoryID  *string                 `json:"category_id"`
	Merchant    *string                 `json:"merchant" binding:"omitempty,max=200"`
	Tags        *[]string               `json:"tags" binding:"omitempty,max=20"`
	Date        *string                 `json:"date"`
	Description *string                 `json:"description" binding:"omitempty,max=500"`
	Amount      *decimal.Decimal        `json:"amount" swaggertype:"number"`
	Currency    *models.CurrencyCode    `json:"currency" binding:"omitempty,iso4217"`
	Note        *string                 `json:"note" binding:"omitempty,max=1000"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income, expense or transfer. The date defaults to now.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, store, err := userSession(c, h.sessions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	date := time.Now()
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date, h.loc)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		date = parsed
	}

	tx, err := store.CreateTransaction(c.Request.Context(), services.TransactionDraft{
		Type:         req.Type,
		CategoryID:   req.CategoryID,
		CategoryName: req.Category,
		Merchant:     req.Merchant,
		Tags:         req.Tags,
		Date:         date,
		Description:  req.Description,
		Amount:       models.NewMoney(req.Amount, req.Currency),
		Note:         req.Note,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSACTION", "transaction", tx.ID, c.ClientIP(),
		map[string]interface{}{"type": req.Type, "amount": req.Amount.String(), "currency": req.Currency})

	c.JSON(http.StatusCreated, gin.H{"transaction": tx, "summary": store.Summary()})
}

// GetUserTransactions lists the caller's transactions
// @Summary     List transactions
// @Description Paginated transactions, newest first, with optional filters
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Param       sort        query string false "date, amount, merchant or created; prefix - for descending (default -date)"
// @Param       from_date   query string false "Filter by start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date     query string false "Filter by end date (RFC3339 or YYYY-MM-DD)"
// @Param       type        query string false "income, expense or transfer"
// @Param       category_id query string false "Filter by category ID"
// @Param       merchant    query string false "Filter by merchant"
// @Param       currency    query string false "Filter by currency"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
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

	filter, err := transactionFilter(c, h.loc)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetUserTransactions(c.Request.Context(), userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetTransactionByID returns one transaction
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
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

	tx, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// UpdateTransaction patches a transaction
// @Summary     Update a transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to change"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
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

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	patch, err := req.toPatch(h.loc)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := store.UpdateTransaction(c.Request.Context(), id, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_TRANSACTION", "transaction", tx.ID, c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"transaction": tx, "summary": store.Summary()})
}

// DeleteTransaction removes a transaction
// @Summary     Delete a transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} dashboard.Summary
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
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

	if err := store.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TRANSACTION", "transaction", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted", "summary": store.Summary()})
}

func (r UpdateTransactionRequest) toPatch(loc *time.Location) (services.TransactionPatch, error) {
	patch := services.TransactionPatch{
		Type:        r.Type,
		CategoryID:  r.CategoryID,
		Merchant:    r.Merchant,
		Tags:        r.Tags,
		Description: r.Description,
		Note:        r.Note,
	}
	if r.Date != nil {
		d, err := parseFlexibleTime(*r.Date, loc)
		if err != nil {
			return patch, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		patch.Date = &d
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

func transactionFilter(c *gin.Context, loc *time.Location) (services.TransactionFilter, error) {
	var filter services.TransactionFilter
	var err error
	if filter.FromDate, err = optionalTime(c, "from_date", loc); err != nil {
		return filter, err
	}
	if filter.ToDate, err = optionalTime(c, "to_date", loc); err != nil {
		return filter, err
	}
	if v := c.Query("type"); v != "" {
		t := models.TransactionType(v)
		filter.Type = &t
	}
	if v := c.Query("category_id"); v != "" {
		filter.CategoryID = &v
	}
	if v := c.Query("merchant"); v != "" {
		filter.Merchant = &v
	}
	if v := c.Query("currency"); v != "" {
		cur := models.CurrencyCode(v)
		if !cur.Valid() {
			return filter, apperrors.ErrUnsupportedCurrency
		}
		filter.Currency = &cur
	}
	return filter, nil
}
