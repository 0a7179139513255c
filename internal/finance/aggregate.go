package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"minify/internal/models"
)

const (
	// UnspecifiedCategory labels transactions whose category cannot be resolved.
	UnspecifiedCategory = "Unspecified"
	// SubscriptionsCategory labels subscriptions whose category cannot be resolved.
	SubscriptionsCategory = "Subscriptions"
)

// DailySummary is the total for one calendar day of the selected month.
type DailySummary struct {
	Date  time.Time    `json:"date"`
	Total models.Money `json:"total"`
}

// CategorySummary is the total for one category in the selected month.
type CategorySummary struct {
	Category string       `json:"category"`
	Total    models.Money `json:"total"`
}

// AggregationInput is a read-only snapshot of everything Recompute needs.
// Location defines calendar-day boundaries and defaults to UTC.
type AggregationInput struct {
	Transactions  []models.Transaction
	Subscriptions []models.Subscription
	Month         Month
	Currency      models.CurrencyCode
	Rates         []models.ExchangeRate
	Categories    []models.Category
	Location      *time.Location
}

// Aggregation holds the derived summaries for one month. Approximate is
// set when at least one contributing amount had no exchange rate.
type Aggregation struct {
	Daily       []DailySummary    `json:"daily_summaries"`
	Categories  []CategorySummary `json:"category_summaries"`
	Approximate bool              `json:"approximate"`
}

// Recompute builds the daily and category summaries for in.Month.
//
// Daily totals cover every day of the month, zero days included, and count
// transactions plus active subscriptions due that day. Category totals are
// sparse, ordered by first appearance, and count transactions plus every
// subscription due in the month whatever its status.
func Recompute(in AggregationInput) Aggregation {
	loc := location(in.Location)
	days := in.Month.Days()
	start := in.Month.Start(loc)
	approximate := false

	convert := func(m models.Money) decimal.Decimal {
		c := Convert(m, in.Currency, in.Rates)
		if c.Approximate() {
			approximate = true
		}
		return c.Money.Amount
	}

	buckets := make([]decimal.Decimal, days)
	for i := range buckets {
		buckets[i] = decimal.Zero
	}
	addToDay := func(t time.Time, amount decimal.Decimal) {
		idx := t.In(loc).Day() - 1
		buckets[idx] = buckets[idx].Add(amount)
	}

	totals := newCategoryTotals()
	for i := range in.Transactions {
		tx := &in.Transactions[i]
		if !in.Month.Contains(tx.Date, loc) {
			continue
		}
		amount := convert(tx.Amount)
		addToDay(tx.Date, amount)
		totals.add(TransactionCategoryName(*tx, in.Categories), amount)
	}
	for i := range in.Subscriptions {
		sub := &in.Subscriptions[i]
		if !in.Month.Contains(sub.NextPaymentDate, loc) {
			continue
		}
		amount := convert(sub.Amount)
		if sub.Status == models.SubscriptionStatusActive {
			addToDay(sub.NextPaymentDate, amount)
		}
		totals.add(SubscriptionCategoryName(*sub, in.Categories), amount)
	}

	daily := make([]DailySummary, days)
	for i := 0; i < days; i++ {
		daily[i] = DailySummary{
			Date:  start.AddDate(0, 0, i),
			Total: models.NewMoney(buckets[i].Round(2), in.Currency),
		}
	}

	return Aggregation{
		Daily:       daily,
		Categories:  totals.summaries(in.Currency),
		Approximate: approximate,
	}
}

// TransactionCategoryName resolves the display name of a transaction's
// category: the denormalized name, then the category table, then
// UnspecifiedCategory.
func TransactionCategoryName(tx models.Transaction, categories []models.Category) string {
	if tx.CategoryName != "" {
		return tx.CategoryName
	}
	if name, ok := CategoryName(categories, tx.CategoryID); ok {
		return name
	}
	return UnspecifiedCategory
}

// SubscriptionCategoryName resolves a subscription's category strictly
// through the category table, falling back to SubscriptionsCategory.
func SubscriptionCategoryName(sub models.Subscription, categories []models.Category) string {
	if name, ok := CategoryName(categories, sub.CategoryID); ok {
		return name
	}
	return SubscriptionsCategory
}

// CategoryName looks up a category by id.
func CategoryName(categories []models.Category, id *string) (string, bool) {
	if id == nil || *id == "" {
		return "", false
	}
	for i := range categories {
		if categories[i].ID == *id {
			return categories[i].Name, true
		}
	}
	return "", false
}

// categoryTotals is an insertion-ordered running sum. Each addition is
// rounded to two decimals.
type categoryTotals struct {
	order  []string
	totals map[string]decimal.Decimal
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{totals: make(map[string]decimal.Decimal)}
}

func (c *categoryTotals) add(name string, amount decimal.Decimal) {
	prev, ok := c.totals[name]
	if !ok {
		c.order = append(c.order, name)
		prev = decimal.Zero
	}
	c.totals[name] = prev.Add(amount).Round(2)
}

func (c *categoryTotals) summaries(currency models.CurrencyCode) []CategorySummary {
	out := make([]CategorySummary, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, CategorySummary{
			Category: name,
			Total:    models.NewMoney(c.totals[name], currency),
		})
	}
	return out
}
