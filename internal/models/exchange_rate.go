package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one observed sample: 1 unit of BaseCurrency equals Rate
// units of QuoteCurrency as of Date. Samples are append-only.
type ExchangeRate struct {
	Base
	BaseCurrency  CurrencyCode    `gorm:"column:base_currency;type:varchar(3);not null;index:idx_exchange_rates_pair" json:"base"`
	QuoteCurrency CurrencyCode    `gorm:"column:quote_currency;type:varchar(3);not null;index:idx_exchange_rates_pair" json:"quote"`
	Date          time.Time       `gorm:"not null" json:"date"`
	Rate          decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"rate"`
	Source        string          `json:"source,omitempty"`
}
