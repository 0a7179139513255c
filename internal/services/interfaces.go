package services

import (
	"context"
	"time"

	"minify/internal/models"
	"minify/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, email, password, fullName string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(ctx context.Context, email, password string) (*models.User, error)
	StoreRefreshTokenHash(ctx context.Context, userID, tokenHash string) error
	GetRefreshTokenHash(ctx context.Context, userID string) (string, error)
	ListUsers(ctx context.Context, filter UserFilter, page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	UpdateUser(ctx context.Context, userID string, patch UserPatch) (*models.User, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(ctx context.Context, userID string, input CategoryInput) (*models.Category, error)
	GetUserCategories(ctx context.Context, userID string, kind *models.CategoryKind, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	ListAllCategories(ctx context.Context, userID string) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*models.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, patch CategoryPatch) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
	SeedDefaults(ctx context.Context, userID string, defaults []CategoryInput) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
	Merchant   *string
	Currency   *models.CurrencyCode
}

// Applied lists the set filters by query parameter name.
func (f TransactionFilter) Applied() map[string]string {
	out := map[string]string{}
	if f.FromDate != nil {
		out["from_date"] = f.FromDate.Format(time.RFC3339)
	}
	if f.ToDate != nil {
		out["to_date"] = f.ToDate.Format(time.RFC3339)
	}
	if f.Type != nil {
		out["type"] = string(*f.Type)
	}
	if f.CategoryID != nil {
		out["category_id"] = *f.CategoryID
	}
	if f.Merchant != nil {
		out["merchant"] = *f.Merchant
	}
	if f.Currency != nil {
		out["currency"] = string(*f.Currency)
	}
	return out
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, userID string, draft TransactionDraft) (*models.Transaction, error)
	GetUserTransactions(ctx context.Context, userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	ListAllTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]models.Transaction, error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, patch TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// SubscriptionFilter holds optional filter parameters for listing subscriptions.
type SubscriptionFilter struct {
	Status  *models.SubscriptionStatus
	Cadence *models.Cadence
}

// Applied lists the set filters by query parameter name.
func (f SubscriptionFilter) Applied() map[string]string {
	out := map[string]string{}
	if f.Status != nil {
		out["status"] = string(*f.Status)
	}
	if f.Cadence != nil {
		out["cadence"] = string(*f.Cadence)
	}
	return out
}

// SubscriptionServicer defines the contract for subscription-related business logic.
type SubscriptionServicer interface {
	CreateSubscription(ctx context.Context, userID string, draft SubscriptionDraft) (*models.Subscription, error)
	GetUserSubscriptions(ctx context.Context, userID string, page pagination.PageRequest, filter SubscriptionFilter) (*pagination.PageResponse[models.Subscription], error)
	ListAllSubscriptions(ctx context.Context, userID string) ([]models.Subscription, error)
	GetSubscriptionByID(ctx context.Context, userID, subscriptionID string) (*models.Subscription, error)
	UpdateSubscription(ctx context.Context, userID, subscriptionID string, patch SubscriptionPatch) (*models.Subscription, error)
	DeleteSubscription(ctx context.Context, userID, subscriptionID string) error
}

// ExchangeRateFilter narrows a rate listing to one currency pair.
type ExchangeRateFilter struct {
	Base  *models.CurrencyCode
	Quote *models.CurrencyCode
}

// ExchangeRateServicer defines the contract for exchange rate storage.
// Rates are global reference data, not owned by a user.
type ExchangeRateServicer interface {
	ListExchangeRates(ctx context.Context) ([]models.ExchangeRate, error)
	GetExchangeRates(ctx context.Context, filter ExchangeRateFilter, page pagination.PageRequest) (*pagination.PageResponse[models.ExchangeRate], error)
	LatestRate(ctx context.Context, base, quote models.CurrencyCode) (*models.ExchangeRate, error)
	RecordRates(ctx context.Context, samples []ExchangeRateInput) ([]models.ExchangeRate, error)
	SeedIfEmpty(ctx context.Context, samples []ExchangeRateInput) (int, error)
}

// AnalyticsServicer computes server-side totals straight from storage.
type AnalyticsServicer interface {
	DailyTotals(ctx context.Context, userID string, from, to time.Time) ([]DailyTotal, error)
	CategoryTotals(ctx context.Context, userID string, from, to time.Time) ([]CategoryTotal, error)
	SubscriptionsOverview(ctx context.Context, userID string) (*SubscriptionsOverview, error)
}

// ChatServicer stores the assistant conversation.
type ChatServicer interface {
	ListChatMessages(ctx context.Context, userID string) ([]models.ChatMessage, error)
	AddChatMessages(ctx context.Context, userID string, messages []models.ChatMessage) ([]models.ChatMessage, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
