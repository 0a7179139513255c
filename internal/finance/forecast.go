package finance

import (
	"fmt"
	"sort"
	"time"

	"minify/internal/models"
)

// ForecastStatus marks a projected occurrence.
type ForecastStatus string

const (
	ForecastScheduled ForecastStatus = "scheduled"
	ForecastSkipped   ForecastStatus = "skipped"
	ForecastPaused    ForecastStatus = "paused"
)

// ForecastItem is one projected charge. Items are recomputed on demand and
// never stored.
type ForecastItem struct {
	ID             string         `json:"id"`
	SubscriptionID string         `json:"subscription_id"`
	Name           string         `json:"name"`
	ScheduledDate  time.Time      `json:"scheduled_date"`
	Amount         models.Money   `json:"amount"`
	Status         ForecastStatus `json:"status"`
	Approximate    bool           `json:"approximate,omitempty"`
}

// ForecastID derives the stable id of an occurrence.
func ForecastID(subscriptionID string, at time.Time) string {
	return fmt.Sprintf("forecast-%s-%d", subscriptionID, at.UnixMilli())
}

// Forecast enumerates every occurrence of each subscription between the
// first day of month and the last day of month+monthsAhead, inclusive.
// Anchors before the horizon are stepped forward silently. Paused
// subscriptions are projected with status paused. The result is sorted by
// date; same-date items keep subscription order. Subscriptions with an
// unknown cadence are left out. A negative monthsAhead is treated as zero.
func Forecast(
	subscriptions []models.Subscription,
	month Month,
	monthsAhead int,
	currency models.CurrencyCode,
	rates []models.ExchangeRate,
	loc *time.Location,
) []ForecastItem {
	if monthsAhead < 0 {
		monthsAhead = 0
	}
	start := month.Start(loc)
	end := month.AddMonths(monthsAhead).End(loc)

	items := make([]ForecastItem, 0)
	for i := range subscriptions {
		sub := &subscriptions[i]
		if !sub.Cadence.Valid() {
			continue
		}

		status := ForecastPaused
		if sub.Status == models.SubscriptionStatusActive {
			status = ForecastScheduled
		}
		converted := Convert(sub.Amount, currency, rates)

		cursor := sub.NextPaymentDate
		for cursor.Before(start) {
			cursor = Step(cursor, sub.Cadence)
		}
		for cursor.Before(end) {
			items = append(items, ForecastItem{
				ID:             ForecastID(sub.ID, cursor),
				SubscriptionID: sub.ID,
				Name:           sub.Name,
				ScheduledDate:  cursor,
				Amount:         converted.Money,
				Status:         status,
				Approximate:    converted.Approximate(),
			})
			cursor = Step(cursor, sub.Cadence)
		}
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].ScheduledDate.Before(items[b].ScheduledDate)
	})
	return items
}
