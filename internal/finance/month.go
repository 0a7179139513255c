// Package finance holds the pure money engine: currency conversion, cadence
// stepping, monthly aggregation and subscription forecasting. Nothing in
// this package performs I/O or mutates its inputs.
package finance

import (
	"encoding/json"
	"fmt"
	"time"
)

// Month identifies a calendar month independent of time zone.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month t falls in when observed in loc.
func MonthOf(t time.Time, loc *time.Location) Month {
	y, m, _ := t.In(location(loc)).Date()
	return Month{Year: y, Month: m}
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Start returns midnight of the first day of the month in loc.
func (m Month) Start(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, location(loc))
}

// End returns the exclusive upper bound: midnight of the next month's first day.
func (m Month) End(loc *time.Location) time.Time {
	return m.AddMonths(1).Start(loc)
}

// Days returns the number of calendar days in the month.
func (m Month) Days() int {
	return daysIn(m.Year, m.Month)
}

// AddMonths shifts the month by n (which may be negative).
func (m Month) AddMonths(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether t falls inside the month when observed in loc.
func (m Month) Contains(t time.Time, loc *time.Location) bool {
	return MonthOf(t, loc) == m
}

// IsZero reports whether the month is unset.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Month) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
