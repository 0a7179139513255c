package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "minify/internal/errors"
	"minify/internal/models"
)

// DailyTotal is the sum of one day's transactions in a single currency.
// Amounts are stored without conversion, so currencies are never mixed.
type DailyTotal struct {
	Date     string              `json:"date"`
	Currency models.CurrencyCode `json:"currency"`
	Income   decimal.Decimal     `json:"income"`
	Expense  decimal.Decimal     `json:"expense"`
	Count    int                 `json:"count"`
}

// CategoryTotal is the sum of transactions under one category label.
type CategoryTotal struct {
	Category string              `json:"category"`
	Currency models.CurrencyCode `json:"currency"`
	Total    decimal.Decimal     `json:"total"`
	Count    int64               `json:"count"`
}

// SubscriptionsOverview summarizes the recurring commitments of a user.
type SubscriptionsOverview struct {
	Active  int                                     `json:"active"`
	Paused  int                                     `json:"paused"`
	Monthly map[models.CurrencyCode]decimal.Decimal `json:"monthly_cost"`
	Items   []SubscriptionOverviewItem              `json:"items"`
}

// SubscriptionOverviewItem is the trimmed subscription view used by the overview.
type SubscriptionOverviewItem struct {
	ID              string                    `json:"id"`
	Name            string                    `json:"name"`
	Amount          decimal.Decimal           `json:"amount"`
	Currency        models.CurrencyCode       `json:"currency"`
	Cadence         models.Cadence            `json:"cadence"`
	Status          models.SubscriptionStatus `json:"status"`
	NextPaymentDate time.Time                 `json:"next_payment_date"`
}

// monthlyFactor normalizes one charge of each cadence to a monthly cost.
var monthlyFactor = map[models.Cadence]decimal.Decimal{
	models.CadenceWeekly:    decimal.NewFromInt(52).Div(decimal.NewFromInt(12)),
	models.CadenceMonthly:   decimal.NewFromInt(1),
	models.CadenceQuarterly: decimal.NewFromInt(1).Div(decimal.NewFromInt(3)),
	models.CadenceYearly:    decimal.NewFromInt(1).Div(decimal.NewFromInt(12)),
}

// analyticsService computes totals straight from storage, bypassing the
// per-session dashboard state.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

// DailyTotals buckets transactions in [from, to] by calendar day (UTC) and currency.
// Transfers are counted but do not contribute to income or expense.
func (s *analyticsService) DailyTotals(ctx context.Context, userID string, from, to time.Time) ([]DailyTotal, error) {
	if to.Before(from) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must not be after to")
	}

	var txs []models.Transaction
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&txs).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	type key struct {
		day      string
		currency models.CurrencyCode
	}
	buckets := make(map[key]*DailyTotal)
	var order []key
	for _, tx := range txs {
		k := key{day: tx.Date.UTC().Format("2006-01-02"), currency: tx.Amount.Currency}
		b, ok := buckets[k]
		if !ok {
			b = &DailyTotal{Date: k.day, Currency: k.currency, Income: decimal.Zero, Expense: decimal.Zero}
			buckets[k] = b
			order = append(order, k)
		}
		b.Count++
		switch tx.Type {
		case models.TransactionTypeIncome:
			b.Income = b.Income.Add(tx.Amount.Amount)
		case models.TransactionTypeExpense:
			b.Expense = b.Expense.Add(tx.Amount.Amount)
		}
	}

	totals := make([]DailyTotal, 0, len(order))
	for _, k := range order {
		totals = append(totals, *buckets[k])
	}
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Date != totals[j].Date {
			return totals[i].Date < totals[j].Date
		}
		return totals[i].Currency < totals[j].Currency
	})
	return totals, nil
}

// CategoryTotals groups expense transactions in [from, to] by category label
// and currency, largest first.
func (s *analyticsService) CategoryTotals(ctx context.Context, userID string, from, to time.Time) ([]CategoryTotal, error) {
	if to.Before(from) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must not be after to")
	}

	var rows []struct {
		CategoryName string
		Currency     models.CurrencyCode
		Total        decimal.Decimal
		Count        int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("category_name, currency, SUM(amount) AS total, COUNT(*) AS count").
		Where("user_id = ? AND type = ? AND date >= ? AND date <= ?", userID, models.TransactionTypeExpense, from, to).
		Group("category_name, currency").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := make([]CategoryTotal, 0, len(rows))
	for _, r := range rows {
		totals = append(totals, CategoryTotal{
			Category: r.CategoryName,
			Currency: r.Currency,
			Total:    r.Total.Round(2),
			Count:    r.Count,
		})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals, nil
}

// SubscriptionsOverview counts subscriptions by status and sums the monthly
// cost of active ones per currency.
func (s *analyticsService) SubscriptionsOverview(ctx context.Context, userID string) (*SubscriptionsOverview, error) {
	var subs []models.Subscription
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("next_payment_date ASC").
		Find(&subs).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	overview := &SubscriptionsOverview{
		Monthly: make(map[models.CurrencyCode]decimal.Decimal),
		Items:   make([]SubscriptionOverviewItem, 0, len(subs)),
	}
	for _, sub := range subs {
		overview.Items = append(overview.Items, SubscriptionOverviewItem{
			ID:              sub.ID,
			Name:            sub.Name,
			Amount:          sub.Amount.Amount,
			Currency:        sub.Amount.Currency,
			Cadence:         sub.Cadence,
			Status:          sub.Status,
			NextPaymentDate: sub.NextPaymentDate,
		})
		if sub.Status != models.SubscriptionStatusActive {
			overview.Paused++
			continue
		}
		overview.Active++
		factor, ok := monthlyFactor[sub.Cadence]
		if !ok {
			continue
		}
		cur := overview.Monthly[sub.Amount.Currency]
		overview.Monthly[sub.Amount.Currency] = cur.Add(sub.Amount.Amount.Mul(factor))
	}
	for cur, total := range overview.Monthly {
		overview.Monthly[cur] = total.Round(2)
	}
	return overview, nil
}
