package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/models"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username and email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithUsername(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		Email:        username + "@test.com",
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates an expense with the given decimal amount, category and date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, amount, category, date string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Entry: models.Entry{
			UserID: userID,
			Amount: decimal.RequireFromString(amount),
			Note:   fmt.Sprintf("expense %d", nextID()),
			Date:   date,
		},
		Category: category,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome creates an income record with the given decimal amount, source and date.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID uint, amount, source, date string) *models.Income {
	t.Helper()

	income := &models.Income{
		Entry: models.Entry{
			UserID: userID,
			Amount: decimal.RequireFromString(amount),
			Note:   fmt.Sprintf("income %d", nextID()),
			Date:   date,
		},
		Source: source,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}
