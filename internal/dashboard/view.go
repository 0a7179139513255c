package dashboard

import (
	"time"

	"minify/internal/finance"
	"minify/internal/models"
	"minify/internal/refdata"
)

// View is a deep copy of a Store's state. Mutating it never affects the store.
type View struct {
	UserID            string                    `json:"user_id"`
	Month             finance.Month             `json:"selected_month"`
	Currency          models.CurrencyCode       `json:"selected_currency"`
	Transactions      []models.Transaction      `json:"transactions"`
	Subscriptions     []models.Subscription     `json:"subscriptions"`
	Categories        []models.Category         `json:"categories"`
	ExchangeRates     []models.ExchangeRate     `json:"exchange_rates"`
	Presets           []refdata.Preset          `json:"presets"`
	ChatHistory       []models.ChatMessage      `json:"chat_history"`
	DailySummaries    []finance.DailySummary    `json:"daily_summaries"`
	CategorySummaries []finance.CategorySummary `json:"category_summaries"`
	Approximate       bool                      `json:"approximate"`
	LoadedAt          time.Time                 `json:"loaded_at"`
}

// Summary is the derived part of a View.
type Summary struct {
	Month             finance.Month             `json:"selected_month"`
	Currency          models.CurrencyCode       `json:"selected_currency"`
	DailySummaries    []finance.DailySummary    `json:"daily_summaries"`
	CategorySummaries []finance.CategorySummary `json:"category_summaries"`
	Approximate       bool                      `json:"approximate"`
}

func cloneTransactions(in []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(in))
	for i, tx := range in {
		out[i] = cloneTransaction(tx)
	}
	return out
}

func cloneTransaction(tx models.Transaction) models.Transaction {
	tx.CategoryID = cloneString(tx.CategoryID)
	tx.Tags = cloneTags(tx.Tags)
	return tx
}

func cloneSubscriptions(in []models.Subscription) []models.Subscription {
	out := make([]models.Subscription, len(in))
	for i, sub := range in {
		out[i] = cloneSubscription(sub)
	}
	return out
}

func cloneSubscription(sub models.Subscription) models.Subscription {
	sub.CategoryID = cloneString(sub.CategoryID)
	sub.Tags = cloneTags(sub.Tags)
	if sub.ReminderDaysBefore != nil {
		days := *sub.ReminderDaysBefore
		sub.ReminderDaysBefore = &days
	}
	return sub
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	return append([]string(nil), tags...)
}

func cloneSlice[T any](in []T) []T {
	return append(make([]T, 0, len(in)), in...)
}
