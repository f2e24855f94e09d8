package testutil_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/errors"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/models"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"users", "expenses", "income"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestUser(t, first)

	var count int64
	if err := second.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected an empty second database, found %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, "12.50", "Food", "2024-01-05")
	var stored models.Expense
	if err := db.First(&stored, expense.ID).Error; err != nil {
		t.Fatalf("failed to reload expense: %v", err)
	}
	testutil.AssertDecimal(t, "12.5", stored.Amount)
	if stored.Category != "Food" {
		t.Errorf("expected category Food, got %s", stored.Category)
	}

	income := testutil.CreateTestIncome(t, db, user.ID, "5000", "Salary", "2024-01-01")
	if income.Source != "Salary" {
		t.Errorf("expected source Salary, got %s", income.Source)
	}
	if !income.Amount.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected amount 5000, got %s", income.Amount)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrTransactionNotFound, "custom message")
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
