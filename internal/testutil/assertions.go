package testutil

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "minify/internal/errors"
	"minify/internal/models"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertDecimal compares got with a decimal literal numerically, so "10"
// and "10.0000" as read back from NUMERIC columns are equal.
func AssertDecimal(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()

	expected, err := decimal.NewFromString(want)
	if err != nil {
		t.Fatalf("invalid expected decimal %q: %v", want, err)
	}
	if !got.Equal(expected) {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

// AssertMoney checks both the amount and the currency of m.
func AssertMoney(t *testing.T, m models.Money, amount string, currency models.CurrencyCode) {
	t.Helper()

	if m.Currency != currency {
		t.Errorf("expected currency %s, got %s", currency, m.Currency)
	}
	AssertDecimal(t, m.Amount, amount)
}
