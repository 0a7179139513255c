// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"minify/internal/finance"
	"minify/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterWith(v)
	}
}

// RegisterWith registers the custom tags on v.
func RegisterWith(v *validator.Validate) {
	_ = v.RegisterValidation("iso4217", validateISO4217)
	_ = v.RegisterValidation("hex_color", validateHexColor)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("category_kind", validateCategoryKind)
	_ = v.RegisterValidation("cadence", validateCadence)
	_ = v.RegisterValidation("subscription_status", validateSubscriptionStatus)
	_ = v.RegisterValidation("user_role", validateUserRole)
	_ = v.RegisterValidation("user_status", validateUserStatus)
	_ = v.RegisterValidation("year_month", validateYearMonth)
}

// validateISO4217 accepts only the currencies the application supports.
func validateISO4217(fl validator.FieldLevel) bool {
	return models.CurrencyCode(fl.Field().String()).Valid()
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch models.TransactionType(fl.Field().String()) {
	case models.TransactionTypeIncome, models.TransactionTypeExpense, models.TransactionTypeTransfer:
		return true
	}
	return false
}

func validateCategoryKind(fl validator.FieldLevel) bool {
	switch models.CategoryKind(fl.Field().String()) {
	case models.CategoryKindIncome, models.CategoryKindExpense, models.CategoryKindTransfer:
		return true
	}
	return false
}

func validateCadence(fl validator.FieldLevel) bool {
	return models.Cadence(fl.Field().String()).Valid()
}

func validateSubscriptionStatus(fl validator.FieldLevel) bool {
	switch models.SubscriptionStatus(fl.Field().String()) {
	case models.SubscriptionStatusActive, models.SubscriptionStatusPaused:
		return true
	}
	return false
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch models.UserRole(fl.Field().String()) {
	case models.UserRoleUser, models.UserRoleAdmin:
		return true
	}
	return false
}

func validateUserStatus(fl validator.FieldLevel) bool {
	switch models.UserStatus(fl.Field().String()) {
	case models.UserStatusActive, models.UserStatusPending, models.UserStatusSuspended:
		return true
	}
	return false
}

// validateYearMonth accepts "YYYY-MM".
func validateYearMonth(fl validator.FieldLevel) bool {
	_, err := finance.ParseMonth(fl.Field().String())
	return err == nil
}
