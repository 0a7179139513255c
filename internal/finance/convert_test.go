package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"minify/internal/models"
)

func TestConvert(t *testing.T) {
	rates := []models.ExchangeRate{
		rate(models.CurrencyUSD, models.CurrencyRUB, date(2024, time.January, 1), "92.3"),
		rate(models.CurrencyUSD, models.CurrencyRUB, date(2024, time.February, 1), "92.5"),
		rate(models.CurrencyEUR, models.CurrencyRUB, date(2024, time.February, 1), "98.1"),
	}

	t.Run("identity keeps amount untouched", func(t *testing.T) {
		in := money("12.345", models.CurrencyUSD)
		got := Convert(in, models.CurrencyUSD, rates)
		require.Equal(t, SourceIdentity, got.Source)
		require.True(t, got.Money.Equal(in))
		require.False(t, got.Approximate())
	})

	t.Run("identity with no rates at all", func(t *testing.T) {
		in := money("7.777", models.CurrencyGBP)
		got := Convert(in, models.CurrencyGBP, nil)
		require.True(t, got.Money.Equal(in))
	})

	t.Run("direct uses most recent sample", func(t *testing.T) {
		got := Convert(money("10", models.CurrencyUSD), models.CurrencyRUB, rates)
		require.Equal(t, SourceDirect, got.Source)
		require.Equal(t, models.CurrencyRUB, got.Money.Currency)
		requireAmount(t, "925", got.Money)
		require.Equal(t, "92.5", got.Rate.String())
	})

	t.Run("inverse divides by the reverse pair", func(t *testing.T) {
		got := Convert(money("981", models.CurrencyRUB), models.CurrencyEUR, rates)
		require.Equal(t, SourceInverse, got.Source)
		require.Equal(t, models.CurrencyEUR, got.Money.Currency)
		requireAmount(t, "10", got.Money)
		require.True(t, got.Rate.Mul(decimal.RequireFromString("98.1")).Round(8).Equal(decimal.NewFromInt(1)))
	})

	t.Run("inverse rounds to two decimals", func(t *testing.T) {
		got := Convert(money("100", models.CurrencyRUB), models.CurrencyUSD, rates)
		require.Equal(t, SourceInverse, got.Source)
		requireAmount(t, "1.08", got.Money)
	})

	t.Run("missing rate falls back to identity multiplier", func(t *testing.T) {
		got := Convert(money("10.129", models.CurrencyGBP), models.CurrencyCNY, rates)
		require.Equal(t, SourceFallback, got.Source)
		require.True(t, got.Approximate())
		require.Equal(t, "1", got.Rate.String())
		require.Equal(t, models.CurrencyCNY, got.Money.Currency)
		requireAmount(t, "10.13", got.Money)
	})

	t.Run("direct wins over inverse", func(t *testing.T) {
		both := append([]models.ExchangeRate{
			rate(models.CurrencyRUB, models.CurrencyUSD, date(2024, time.March, 1), "0.5"),
		}, rates...)
		got := Convert(money("2", models.CurrencyRUB), models.CurrencyUSD, both)
		require.Equal(t, SourceDirect, got.Source)
		requireAmount(t, "1", got.Money)
	})

	t.Run("date tie keeps first sample", func(t *testing.T) {
		tied := []models.ExchangeRate{
			rate(models.CurrencyUSD, models.CurrencyEUR, date(2024, time.May, 1), "0.90"),
			rate(models.CurrencyUSD, models.CurrencyEUR, date(2024, time.May, 1), "0.95"),
		}
		got := Convert(money("100", models.CurrencyUSD), models.CurrencyEUR, tied)
		requireAmount(t, "90", got.Money)
	})

	t.Run("non-positive samples are ignored", func(t *testing.T) {
		broken := []models.ExchangeRate{
			rate(models.CurrencyEUR, models.CurrencyUSD, date(2024, time.May, 2), "0"),
			rate(models.CurrencyEUR, models.CurrencyUSD, date(2024, time.May, 1), "1.1"),
		}
		got := Convert(money("10", models.CurrencyEUR), models.CurrencyUSD, broken)
		requireAmount(t, "11", got.Money)

		got = Convert(money("10", models.CurrencyUSD), models.CurrencyEUR, broken[:1])
		require.Equal(t, SourceFallback, got.Source)
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		before := append([]models.ExchangeRate(nil), rates...)
		Convert(money("1", models.CurrencyUSD), models.CurrencyRUB, rates)
		require.Equal(t, before, rates)
	})
}

func TestLatestRate(t *testing.T) {
	rates := []models.ExchangeRate{
		rate(models.CurrencyEUR, models.CurrencyRUB, date(2024, time.January, 1), "100"),
	}

	r, src := LatestRate(rates, models.CurrencyEUR, models.CurrencyRUB)
	require.Equal(t, SourceDirect, src)
	require.Equal(t, "100", r.String())

	r, src = LatestRate(rates, models.CurrencyRUB, models.CurrencyEUR)
	require.Equal(t, SourceInverse, src)
	require.Equal(t, "0.01", r.String())

	r, src = LatestRate(rates, models.CurrencyRUB, models.CurrencyRUB)
	require.Equal(t, SourceIdentity, src)
	require.Equal(t, "1", r.String())

	_, src = LatestRate(rates, models.CurrencyGBP, models.CurrencyRUB)
	require.Equal(t, SourceFallback, src)
}
