package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"minify/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func money(amount string, currency models.CurrencyCode) models.Money {
	return models.NewMoney(decimal.RequireFromString(amount), currency)
}

func rate(base, quote models.CurrencyCode, on time.Time, value string) models.ExchangeRate {
	return models.ExchangeRate{
		BaseCurrency:  base,
		QuoteCurrency: quote,
		Date:          on,
		Rate:          decimal.RequireFromString(value),
	}
}

func strPtr(s string) *string { return &s }

func requireAmount(t *testing.T, want string, got models.Money) {
	t.Helper()
	require.Truef(t, decimal.RequireFromString(want).Equal(got.Amount),
		"amount = %s, want %s", got.Amount.String(), want)
}
