package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "minify/internal/errors"
	"minify/internal/models"
)

// TransactionDraft carries the fields of a new transaction. CategoryName is
// optional; when empty it is derived from CategoryID.
type TransactionDraft struct {
	Type         models.TransactionType
	CategoryID   *string
	CategoryName string
	Merchant     string
	Tags         []string
	Date         time.Time
	Description  string
	Amount       models.Money
	Note         string
}

// Validate checks the draft before it reaches storage.
func (d TransactionDraft) Validate() error {
	if !validTransactionType(d.Type) {
		return apperrors.ErrInvalidTransactionType
	}
	return validateMoney(d.Amount)
}

// TransactionPatch lists the mutable fields of a transaction. Nil fields are
// left unchanged.
type TransactionPatch struct {
	Type         *models.TransactionType
	CategoryID   *string
	CategoryName *string
	Merchant     *string
	Tags         *[]string
	Date         *time.Time
	Description  *string
	Amount       *models.Money
	Note         *string
}

// Validate checks every field that is set.
func (p TransactionPatch) Validate() error {
	if p.Type != nil && !validTransactionType(*p.Type) {
		return apperrors.ErrInvalidTransactionType
	}
	if p.Amount != nil {
		if err := validateMoney(*p.Amount); err != nil {
			return err
		}
	}
	if p.Date != nil && p.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date must not be empty")
	}
	return nil
}

// Apply merges the patch into tx. The category name is not touched; callers
// re-derive it.
func (p TransactionPatch) Apply(tx *models.Transaction) {
	if p.Type != nil {
		tx.Type = *p.Type
	}
	if p.CategoryID != nil {
		if *p.CategoryID == "" {
			tx.CategoryID = nil
		} else {
			id := *p.CategoryID
			tx.CategoryID = &id
		}
	}
	if p.Merchant != nil {
		tx.Merchant = *p.Merchant
	}
	if p.Tags != nil {
		tx.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Date != nil {
		tx.Date = *p.Date
	}
	if p.Description != nil {
		tx.Description = *p.Description
	}
	if p.Amount != nil {
		tx.Amount = *p.Amount
	}
	if p.Note != nil {
		tx.Note = *p.Note
	}
}

// SubscriptionDraft carries the fields of a new subscription.
type SubscriptionDraft struct {
	Name               string
	CategoryID         *string
	Merchant           string
	NextPaymentDate    time.Time
	Cadence            models.Cadence
	Amount             models.Money
	Status             models.SubscriptionStatus
	Tags               []string
	ReminderDaysBefore *int
	Notes              string
}

// Validate checks the draft before it reaches storage.
func (d SubscriptionDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "subscription name is required")
	}
	if d.NextPaymentDate.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "next payment date is required")
	}
	if !d.Cadence.Valid() {
		return apperrors.ErrInvalidCadence
	}
	if d.Status != "" && !validSubscriptionStatus(d.Status) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be active or paused")
	}
	if d.ReminderDaysBefore != nil && *d.ReminderDaysBefore < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "reminder days must not be negative")
	}
	return validateMoney(d.Amount)
}

// SubscriptionPatch lists the mutable fields of a subscription.
type SubscriptionPatch struct {
	Name               *string
	CategoryID         *string
	Merchant           *string
	NextPaymentDate    *time.Time
	Cadence            *models.Cadence
	Amount             *models.Money
	Status             *models.SubscriptionStatus
	Tags               *[]string
	ReminderDaysBefore *int
	Notes              *string
}

// Validate checks every field that is set.
func (p SubscriptionPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "subscription name must not be empty")
	}
	if p.NextPaymentDate != nil && p.NextPaymentDate.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "next payment date must not be empty")
	}
	if p.Cadence != nil && !p.Cadence.Valid() {
		return apperrors.ErrInvalidCadence
	}
	if p.Status != nil && !validSubscriptionStatus(*p.Status) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be active or paused")
	}
	if p.ReminderDaysBefore != nil && *p.ReminderDaysBefore < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "reminder days must not be negative")
	}
	if p.Amount != nil {
		return validateMoney(*p.Amount)
	}
	return nil
}

// Apply merges the patch into sub.
func (p SubscriptionPatch) Apply(sub *models.Subscription) {
	if p.Name != nil {
		sub.Name = strings.TrimSpace(*p.Name)
	}
	if p.CategoryID != nil {
		if *p.CategoryID == "" {
			sub.CategoryID = nil
		} else {
			id := *p.CategoryID
			sub.CategoryID = &id
		}
	}
	if p.Merchant != nil {
		sub.Merchant = *p.Merchant
	}
	if p.NextPaymentDate != nil {
		sub.NextPaymentDate = *p.NextPaymentDate
	}
	if p.Cadence != nil {
		sub.Cadence = *p.Cadence
	}
	if p.Amount != nil {
		sub.Amount = *p.Amount
	}
	if p.Status != nil {
		sub.Status = *p.Status
	}
	if p.Tags != nil {
		sub.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.ReminderDaysBefore != nil {
		days := *p.ReminderDaysBefore
		sub.ReminderDaysBefore = &days
	}
	if p.Notes != nil {
		sub.Notes = *p.Notes
	}
}

// CategoryInput carries the fields of a new category.
type CategoryInput struct {
	Name        string
	Kind        models.CategoryKind
	Description string
	Icon        string
	Color       string
}

// CategoryPatch lists the mutable fields of a category.
type CategoryPatch struct {
	Name        *string
	Kind        *models.CategoryKind
	Description *string
	Icon        *string
	Color       *string
}

// ExchangeRateInput is one rate sample submitted for storage.
type ExchangeRateInput struct {
	Base   models.CurrencyCode
	Quote  models.CurrencyCode
	Date   time.Time
	Rate   decimal.Decimal
	Source string
}

// Validate rejects unsupported currencies, identical pairs and rates that
// are not positive or do not fit the stored precision.
func (in ExchangeRateInput) Validate() error {
	if !in.Base.Valid() || !in.Quote.Valid() {
		return apperrors.ErrUnsupportedCurrency
	}
	if in.Base == in.Quote {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "base and quote currencies must differ")
	}
	if !in.Rate.IsPositive() {
		return apperrors.ErrInvalidRate
	}
	if !fitsScale(in.Rate, rateScale) {
		return apperrors.WithMessage(apperrors.ErrInvalidRate, "rate allows at most 8 decimal places")
	}
	if in.Rate.GreaterThanOrEqual(maxRate) {
		return apperrors.WithMessage(apperrors.ErrInvalidRate, "rate is too large")
	}
	return nil
}

// UserFilter narrows the admin user listing.
type UserFilter struct {
	Role   *models.UserRole
	Status *models.UserStatus
	Query  string
}

// UserPatch lists the fields an admin or the user may change.
type UserPatch struct {
	FullName     *string
	Role         *models.UserRole
	Status       *models.UserStatus
	BaseCurrency *models.CurrencyCode
}

// Storage precision: amounts are NUMERIC(20,4), rates NUMERIC(20,8).
const (
	amountScale = 4
	rateScale   = 8
)

var (
	maxAmount = decimal.New(1, 20-amountScale)
	maxRate   = decimal.New(1, 20-rateScale)
)

func validateMoney(m models.Money) error {
	if !m.Currency.Valid() {
		return apperrors.ErrUnsupportedCurrency
	}
	if !m.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !fitsScale(m.Amount, amountScale) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount allows at most 4 decimal places")
	}
	if m.Amount.GreaterThanOrEqual(maxAmount) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is too large")
	}
	return nil
}

func fitsScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}

func validTransactionType(t models.TransactionType) bool {
	switch t {
	case models.TransactionTypeIncome, models.TransactionTypeExpense, models.TransactionTypeTransfer:
		return true
	}
	return false
}

func validSubscriptionStatus(s models.SubscriptionStatus) bool {
	return s == models.SubscriptionStatusActive || s == models.SubscriptionStatusPaused
}
