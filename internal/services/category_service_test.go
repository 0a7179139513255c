package services

import (
	"context"
	"testing"

	"minify/internal/models"
	"minify/internal/pagination"
	"minify/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		cat, err := svc.CreateCategory(ctx, user.ID, CategoryInput{Name: " Food ", Kind: models.CategoryKindExpense, Color: "#ff8800"})
		testutil.AssertNoError(t, err)
		if cat.Name != "Food" {
			t.Errorf("expected trimmed name, got %q", cat.Name)
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(ctx, user.ID, CategoryInput{Name: "Food", Kind: models.CategoryKindExpense})
		testutil.AssertNoError(t, err)
		_, err = svc.CreateCategory(ctx, user.ID, CategoryInput{Name: "Food", Kind: models.CategoryKindIncome})
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("same_name_other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(ctx, alice.ID, CategoryInput{Name: "Food", Kind: models.CategoryKindExpense})
		testutil.AssertNoError(t, err)
		_, err = svc.CreateCategory(ctx, bob.ID, CategoryInput{Name: "Food", Kind: models.CategoryKindExpense})
		testutil.AssertNoError(t, err)
	})

	t.Run("invalid_kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(ctx, user.ID, CategoryInput{Name: "Food", Kind: "savings"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListAndUpdateCategories(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)

	food := testutil.CreateTestCategoryNamed(t, db, user.ID, "Food", models.CategoryKindExpense)
	testutil.CreateTestCategoryNamed(t, db, user.ID, "Salary", models.CategoryKindIncome)

	kind := models.CategoryKindIncome
	page, err := svc.GetUserCategories(ctx, user.ID, &kind, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 1 || page.Data[0].Name != "Salary" {
		t.Fatalf("expected only Salary, got %+v", page.Data)
	}

	name := "Groceries"
	updated, err := svc.UpdateCategory(ctx, user.ID, food.ID, CategoryPatch{Name: &name})
	testutil.AssertNoError(t, err)
	if updated.Name != "Groceries" {
		t.Errorf("expected Groceries, got %q", updated.Name)
	}

	clash := "Salary"
	_, err = svc.UpdateCategory(ctx, user.ID, food.ID, CategoryPatch{Name: &clash})
	testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("in_use_by_subscription", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryKindExpense)
		sub := testutil.CreateTestSubscription(t, db, user.ID, "100", models.CurrencyRUB, testDate())
		if err := db.Model(sub).Update("category_id", cat.ID).Error; err != nil {
			t.Fatalf("link: %v", err)
		}

		err := svc.DeleteCategory(ctx, user.ID, cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_IN_USE")
	})

	t.Run("unused", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryKindExpense)

		testutil.AssertNoError(t, svc.DeleteCategory(ctx, user.ID, cat.ID))
		_, err := svc.GetCategoryByID(ctx, user.ID, cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)

	defaults := []CategoryInput{
		{Name: "Salary", Kind: models.CategoryKindIncome},
		{Name: "Food", Kind: models.CategoryKindExpense},
	}
	testutil.AssertNoError(t, svc.SeedDefaults(ctx, user.ID, defaults))
	testutil.AssertNoError(t, svc.SeedDefaults(ctx, user.ID, defaults))

	all, err := svc.ListAllCategories(ctx, user.ID)
	testutil.AssertNoError(t, err)
	if len(all) != 2 {
		t.Errorf("expected seeding to run once, got %d categories", len(all))
	}
}
