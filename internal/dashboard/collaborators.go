package dashboard

import (
	"context"
	"time"

	"minify/internal/events"
	"minify/internal/models"
	"minify/internal/refdata"
	"minify/internal/services"
)

// TransactionStore persists transactions. services.TransactionServicer satisfies it.
type TransactionStore interface {
	ListAllTransactions(ctx context.Context, userID string, filter services.TransactionFilter) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, userID string, draft services.TransactionDraft) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, patch services.TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// SubscriptionStore persists subscriptions. services.SubscriptionServicer satisfies it.
type SubscriptionStore interface {
	ListAllSubscriptions(ctx context.Context, userID string) ([]models.Subscription, error)
	CreateSubscription(ctx context.Context, userID string, draft services.SubscriptionDraft) (*models.Subscription, error)
	UpdateSubscription(ctx context.Context, userID, subscriptionID string, patch services.SubscriptionPatch) (*models.Subscription, error)
	DeleteSubscription(ctx context.Context, userID, subscriptionID string) error
}

// CategorySource supplies the category reference table. The store never mutates it.
type CategorySource interface {
	ListAllCategories(ctx context.Context, userID string) ([]models.Category, error)
}

// RateSource supplies exchange rate samples.
type RateSource interface {
	ListExchangeRates(ctx context.Context) ([]models.ExchangeRate, error)
}

// ChatStore persists the assistant conversation. services.ChatServicer satisfies it.
type ChatStore interface {
	ListChatMessages(ctx context.Context, userID string) ([]models.ChatMessage, error)
	AddChatMessages(ctx context.Context, userID string, messages []models.ChatMessage) ([]models.ChatMessage, error)
}

// Deps wires a Store to its collaborators. Chat, Events, Location and Now
// are optional; without Chat the conversation lives only as long as the store.
type Deps struct {
	Transactions  TransactionStore
	Subscriptions SubscriptionStore
	Categories    CategorySource
	Rates         RateSource
	Chat          ChatStore
	Presets       []refdata.Preset
	Events        events.Publisher
	Location      *time.Location
	Now           func() time.Time
}
