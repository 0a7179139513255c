package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "minify/internal/errors"
	"minify/internal/finance"
	"minify/internal/models"
	"minify/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction stores a new transaction for a user. The category
// display name is derived from the category table unless given explicitly.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, draft TransactionDraft) (*models.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	// Default date to now if not provided
	if draft.Date.IsZero() {
		draft.Date = time.Now()
	}

	db := s.db.WithContext(ctx)
	categories, err := s.categoriesFor(db, userID, draft.CategoryID)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:       userID,
		Type:         draft.Type,
		CategoryID:   draft.CategoryID,
		CategoryName: draft.CategoryName,
		Merchant:     draft.Merchant,
		Tags:         draft.Tags,
		Date:         draft.Date,
		Description:  draft.Description,
		Amount:       draft.Amount,
		Note:         draft.Note,
	}
	transaction.CategoryName = finance.TransactionCategoryName(*transaction, categories)

	if err := db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

var transactionSorts = pagination.SortSpec{
	Columns: map[string]string{
		"date":     "date",
		"amount":   "amount",
		"merchant": "merchant",
		"created":  "created_at",
	},
	Default: "-date",
}

// GetUserTransactions retrieves a paginated, filtered list of transactions for a user.
func (s *transactionService) GetUserTransactions(ctx context.Context, userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()
	order, sortKey, err := transactionSorts.Resolve(page.Sort)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	base := s.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order(order).
		Order("id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems).
		WithQuery(sortKey, filter.Applied())
	return &result, nil
}

// ListAllTransactions returns every matching transaction, newest first.
func (s *transactionService) ListAllTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]models.Transaction, error) {
	q := applyTransactionFilters(s.db.WithContext(ctx).Where("user_id = ?", userID), filter)

	var transactions []models.Transaction
	if err := q.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Merchant != nil {
		q = q.Where("merchant = ?", *f.Merchant)
	}
	if f.Currency != nil {
		q = q.Where("currency = ?", *f.Currency)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error) {
	return s.findTransaction(s.db.WithContext(ctx), userID, transactionID)
}

func (s *transactionService) findTransaction(db *gorm.DB, userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a patch and re-derives the category name.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, patch TransactionPatch) (*models.Transaction, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var result *models.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transaction, err := s.findTransaction(tx, userID, transactionID)
		if err != nil {
			return err
		}

		patch.Apply(transaction)
		switch {
		case patch.CategoryName != nil && *patch.CategoryName != "":
			transaction.CategoryName = *patch.CategoryName
		case patch.CategoryID != nil:
			categories, err := s.categoriesFor(tx, userID, transaction.CategoryID)
			if err != nil {
				return err
			}
			transaction.CategoryName = ""
			transaction.CategoryName = finance.TransactionCategoryName(*transaction, categories)
		}

		if err := tx.Save(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteTransaction soft-deletes a transaction owned by the user.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	db := s.db.WithContext(ctx)
	transaction, err := s.findTransaction(db, userID, transactionID)
	if err != nil {
		return err
	}
	if err := db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// categoriesFor loads the referenced category, verifying ownership. It
// returns nil when no category is referenced.
func (s *transactionService) categoriesFor(db *gorm.DB, userID string, categoryID *string) ([]models.Category, error) {
	if categoryID == nil || *categoryID == "" {
		return nil, nil
	}
	var category models.Category
	if err := db.Where("id = ? AND user_id = ?", *categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return []models.Category{category}, nil
}
