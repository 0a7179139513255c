package finance

import (
	"github.com/shopspring/decimal"

	"minify/internal/models"
)

// ConversionSource says which rate, if any, produced a conversion.
type ConversionSource string

const (
	SourceIdentity ConversionSource = "identity"
	SourceDirect   ConversionSource = "direct"
	SourceInverse  ConversionSource = "inverse"
	// SourceFallback means no rate was known in either direction and the
	// amount was re-tagged with the target currency unchanged.
	SourceFallback ConversionSource = "fallback"
)

// Conversion is the result of Convert. Rate is the multiplier that was
// applied: 1 for identity and fallback, the reciprocal sample for inverse.
type Conversion struct {
	Money  models.Money     `json:"money"`
	Source ConversionSource `json:"source"`
	Rate   decimal.Decimal  `json:"rate" swaggertype:"number"`
}

// Approximate reports whether the amount was re-tagged without a rate.
func (c Conversion) Approximate() bool {
	return c.Source == SourceFallback
}

// Convert expresses amount in target using the most recent matching sample.
// A same-currency conversion returns amount untouched. Otherwise the direct
// pair is preferred, then the inverse pair, then an identity multiplier;
// all three round the result to two decimals. Convert never fails.
func Convert(amount models.Money, target models.CurrencyCode, rates []models.ExchangeRate) Conversion {
	rate, source := LatestRate(rates, amount.Currency, target)
	if source == SourceIdentity {
		return Conversion{Money: amount, Source: source, Rate: rate}
	}

	converted := amount.Amount
	switch source {
	case SourceDirect:
		converted = amount.Amount.Mul(rate)
	case SourceInverse:
		// rate is a rounded reciprocal; divide by the stored sample.
		reverse, _ := latestRate(rates, target, amount.Currency)
		converted = amount.Amount.Div(reverse)
	}

	return Conversion{
		Money:  models.NewMoney(converted.Round(2), target),
		Source: source,
		Rate:   rate,
	}
}

// LatestRate returns the multiplier that turns base into quote, and how it
// was derived. It mirrors Convert's lookup order.
func LatestRate(rates []models.ExchangeRate, base, quote models.CurrencyCode) (decimal.Decimal, ConversionSource) {
	if base == quote {
		return decimal.NewFromInt(1), SourceIdentity
	}
	if rate, ok := latestRate(rates, base, quote); ok {
		return rate, SourceDirect
	}
	if rate, ok := latestRate(rates, quote, base); ok {
		return decimal.NewFromInt(1).Div(rate), SourceInverse
	}
	return decimal.NewFromInt(1), SourceFallback
}

// latestRate picks the sample with the greatest date for the pair. On equal
// dates the earlier sample in the slice wins. Non-positive rates are ignored.
func latestRate(rates []models.ExchangeRate, base, quote models.CurrencyCode) (decimal.Decimal, bool) {
	var best *models.ExchangeRate
	for i := range rates {
		r := &rates[i]
		if r.BaseCurrency != base || r.QuoteCurrency != quote || !r.Rate.IsPositive() {
			continue
		}
		if best == nil || r.Date.After(best.Date) {
			best = r
		}
	}
	if best == nil {
		return decimal.Decimal{}, false
	}
	return best.Rate, true
}
