package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"minify/internal/models"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name    string
		from    time.Time
		cadence models.Cadence
		want    time.Time
	}{
		{"weekly", date(2024, time.January, 29), models.CadenceWeekly, date(2024, time.February, 5)},
		{"monthly", date(2024, time.January, 15), models.CadenceMonthly, date(2024, time.February, 15)},
		{"monthly clamps to leap day", date(2024, time.January, 31), models.CadenceMonthly, date(2024, time.February, 29)},
		{"monthly clamps to short month", date(2023, time.January, 31), models.CadenceMonthly, date(2023, time.February, 28)},
		{"monthly across year", date(2023, time.December, 10), models.CadenceMonthly, date(2024, time.January, 10)},
		{"quarterly", date(2024, time.January, 15), models.CadenceQuarterly, date(2024, time.April, 15)},
		{"quarterly clamps", date(2023, time.November, 30), models.CadenceQuarterly, date(2024, time.February, 29)},
		{"yearly", date(2024, time.March, 1), models.CadenceYearly, date(2025, time.March, 1)},
		{"yearly from leap day", date(2024, time.February, 29), models.CadenceYearly, date(2025, time.February, 28)},
		{"unknown cadence is a no-op", date(2024, time.March, 1), models.Cadence("fortnightly"), date(2024, time.March, 1)},
		{"empty cadence is a no-op", date(2024, time.March, 1), models.Cadence(""), date(2024, time.March, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.want.Equal(Step(tt.from, tt.cadence)), "got %s", Step(tt.from, tt.cadence))
		})
	}
}

func TestStepKeepsClockAndZone(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	from := time.Date(2024, time.January, 31, 9, 30, 0, 0, msk)
	got := Step(from, models.CadenceMonthly)
	require.Equal(t, time.Date(2024, time.February, 29, 9, 30, 0, 0, msk), got)
	require.Equal(t, msk, got.Location())
}

func TestOccurrences(t *testing.T) {
	sub := models.Subscription{
		NextPaymentDate: date(2024, time.January, 15),
		Cadence:         models.CadenceMonthly,
	}

	got := Occurrences(sub, 6)
	require.Len(t, got, 6)
	require.True(t, got[0].Equal(date(2024, time.January, 15)))
	require.True(t, got[5].Equal(date(2024, time.June, 15)))

	require.Nil(t, Occurrences(sub, 0))

	sub.Cadence = "daily"
	require.Nil(t, Occurrences(sub, 3))
}
