package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"minify/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates an active user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        email,
		Password:     string(hash),
		FullName:     "Test User",
		Role:         models.UserRoleUser,
		Status:       models.UserStatusActive,
		BaseCurrency: models.CurrencyRUB,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category of the given kind.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, kind models.CategoryKind) *models.Category {
	t.Helper()
	return CreateTestCategoryNamed(t, db, userID, fmt.Sprintf("Test Category %d", nextID()), kind)
}

// CreateTestCategoryNamed creates a category with a fixed name.
func CreateTestCategoryNamed(t *testing.T, db *gorm.DB, userID, name string, kind models.CategoryKind) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Kind:   kind,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction dated now. Amount is a decimal string.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, amount string, currency models.CurrencyCode) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, userID, txType, amount, currency, time.Now().UTC())
}

// CreateTestTransactionAt creates a transaction on the given date.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, amount string, currency models.CurrencyCode, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:       userID,
		Type:         txType,
		CategoryName: "Unspecified",
		Date:         date,
		Amount:       models.NewMoney(decimal.RequireFromString(amount), currency),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestSubscription creates an active monthly subscription due on next.
func CreateTestSubscription(t *testing.T, db *gorm.DB, userID string, amount string, currency models.CurrencyCode, next time.Time) *models.Subscription {
	t.Helper()

	sub := &models.Subscription{
		UserID:          userID,
		Name:            fmt.Sprintf("Test Subscription %d", nextID()),
		NextPaymentDate: next,
		Cadence:         models.CadenceMonthly,
		Amount:          models.NewMoney(decimal.RequireFromString(amount), currency),
		Status:          models.SubscriptionStatusActive,
	}
	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("failed to create test subscription: %v", err)
	}
	return sub
}

// CreateTestExchangeRate records one rate sample.
func CreateTestExchangeRate(t *testing.T, db *gorm.DB, base, quote models.CurrencyCode, rate string, date time.Time) *models.ExchangeRate {
	t.Helper()

	sample := &models.ExchangeRate{
		BaseCurrency:  base,
		QuoteCurrency: quote,
		Date:          date,
		Rate:          decimal.RequireFromString(rate),
		Source:        "test",
	}
	if err := db.Create(sample).Error; err != nil {
		t.Fatalf("failed to create test exchange rate: %v", err)
	}
	return sample
}
