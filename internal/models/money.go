package models

import "github.com/shopspring/decimal"

// CurrencyCode is an ISO 4217 code from the supported set.
type CurrencyCode string

const (
	CurrencyRUB CurrencyCode = "RUB"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyCNY CurrencyCode = "CNY"
)

// SupportedCurrencies lists every currency the application accepts.
var SupportedCurrencies = []CurrencyCode{
	CurrencyRUB,
	CurrencyUSD,
	CurrencyEUR,
	CurrencyGBP,
	CurrencyCNY,
}

// Valid reports whether c belongs to the supported set.
func (c CurrencyCode) Valid() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

// Money is an amount tagged with its currency. Amounts keep full precision;
// rounding to two decimals happens only where a conversion is reported.
type Money struct {
	Amount   decimal.Decimal `gorm:"column:amount;type:numeric(20,4);not null" json:"amount"`
	Currency CurrencyCode    `gorm:"column:currency;type:varchar(3);not null" json:"currency"`
}

// NewMoney builds a Money value.
func NewMoney(amount decimal.Decimal, currency CurrencyCode) Money {
	return Money{Amount: amount, Currency: currency}
}

// Equal reports whether both amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}
