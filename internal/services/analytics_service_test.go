package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"minify/internal/models"
	"minify/internal/testutil"
)

func TestDailyTotals(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAnalyticsService(db)
	user := testutil.CreateTestUser(t, db)

	day := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	testutil.CreateTestTransactionAt(t, db, user.ID, models.TransactionTypeExpense, "40", models.CurrencyRUB, day)
	testutil.CreateTestTransactionAt(t, db, user.ID, models.TransactionTypeExpense, "30", models.CurrencyRUB, day.Add(2*time.Hour))
	testutil.CreateTestTransactionAt(t, db, user.ID, models.TransactionTypeIncome, "100", models.CurrencyUSD, day)
	testutil.CreateTestTransactionAt(t, db, user.ID, models.TransactionTypeExpense, "5", models.CurrencyRUB, day.AddDate(0, 1, 0))

	totals, err := svc.DailyTotals(ctx, user.ID, day.AddDate(0, 0, -1), day.AddDate(0, 0, 7))
	testutil.AssertNoError(t, err)

	if len(totals) != 2 {
		t.Fatalf("expected RUB and USD buckets, got %+v", totals)
	}
	if totals[0].Currency != models.CurrencyRUB || !totals[0].Expense.Equal(decimal.NewFromInt(70)) || totals[0].Count != 2 {
		t.Errorf("unexpected RUB bucket %+v", totals[0])
	}
	if totals[1].Currency != models.CurrencyUSD || !totals[1].Income.Equal(decimal.NewFromInt(100)) {
		t.Errorf("unexpected USD bucket %+v", totals[1])
	}

	_, err = svc.DailyTotals(ctx, user.ID, day, day.AddDate(0, 0, -1))
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestCategoryTotals(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAnalyticsService(db)
	txSvc := NewTransactionService(db)
	user := testutil.CreateTestUser(t, db)

	day := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	for _, d := range []struct {
		name   string
		amount string
	}{{"Food", "40"}, {"Food", "30"}, {"Transport", "90"}} {
		_, err := txSvc.CreateTransaction(ctx, user.ID, TransactionDraft{
			Type:         models.TransactionTypeExpense,
			CategoryName: d.name,
			Date:         day,
			Amount:       rub(d.amount),
		})
		testutil.AssertNoError(t, err)
	}

	totals, err := svc.CategoryTotals(ctx, user.ID, day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
	testutil.AssertNoError(t, err)

	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %+v", totals)
	}
	if totals[0].Category != "Transport" || !totals[0].Total.Equal(decimal.NewFromInt(90)) {
		t.Errorf("expected Transport 90 first, got %+v", totals[0])
	}
	if totals[1].Category != "Food" || !totals[1].Total.Equal(decimal.NewFromInt(70)) || totals[1].Count != 2 {
		t.Errorf("expected Food 70 second, got %+v", totals[1])
	}
}

func TestSubscriptionsOverview(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAnalyticsService(db)
	subSvc := NewSubscriptionService(db)
	user := testutil.CreateTestUser(t, db)

	next := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	testutil.CreateTestSubscription(t, db, user.ID, "300", models.CurrencyRUB, next)
	_, err := subSvc.CreateSubscription(ctx, user.ID, SubscriptionDraft{
		Name: "Cloud", NextPaymentDate: next, Cadence: models.CadenceYearly, Amount: rub("1200"),
	})
	testutil.AssertNoError(t, err)
	_, err = subSvc.CreateSubscription(ctx, user.ID, SubscriptionDraft{
		Name: "Paused", NextPaymentDate: next, Cadence: models.CadenceMonthly, Amount: rub("999"),
		Status: models.SubscriptionStatusPaused,
	})
	testutil.AssertNoError(t, err)

	overview, err := svc.SubscriptionsOverview(ctx, user.ID)
	testutil.AssertNoError(t, err)

	if overview.Active != 2 || overview.Paused != 1 {
		t.Errorf("expected 2 active and 1 paused, got %d/%d", overview.Active, overview.Paused)
	}
	if got := overview.Monthly[models.CurrencyRUB]; !got.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected monthly 400 RUB, got %s", got)
	}
	if len(overview.Items) != 3 {
		t.Errorf("expected 3 items, got %d", len(overview.Items))
	}
}
