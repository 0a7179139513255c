package finance

import (
	"time"

	"minify/internal/models"
)

type stepFunc func(time.Time) time.Time

var steppers = map[models.Cadence]stepFunc{
	models.CadenceWeekly:    func(t time.Time) time.Time { return t.AddDate(0, 0, 7) },
	models.CadenceMonthly:   func(t time.Time) time.Time { return addMonths(t, 1) },
	models.CadenceQuarterly: func(t time.Time) time.Time { return addMonths(t, 3) },
	models.CadenceYearly:    func(t time.Time) time.Time { return addMonths(t, 12) },
}

// Step advances date by one cadence period. Month-based cadences keep the
// day of month, clamped to the last day of a shorter target month. An
// unknown cadence returns date unchanged.
func Step(date time.Time, cadence models.Cadence) time.Time {
	step, ok := steppers[cadence]
	if !ok {
		return date
	}
	return step(date)
}

// Occurrences returns the next count charge dates of sub, starting at its
// anchor. It returns nil for an unknown cadence.
func Occurrences(sub models.Subscription, count int) []time.Time {
	if count <= 0 || !sub.Cadence.Valid() {
		return nil
	}
	dates := make([]time.Time, 0, count)
	cursor := sub.NextPaymentDate
	for i := 0; i < count; i++ {
		dates = append(dates, cursor)
		cursor = Step(cursor, sub.Cadence)
	}
	return dates
}

// addMonths moves t by n calendar months without the overflow time.AddDate
// applies (Jan 31 + 1 month is Feb 28/29, not Mar 2/3).
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
