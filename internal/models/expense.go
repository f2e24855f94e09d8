package models

import "github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"

// Expense is a single spending record. Category is one of
// ledger.ExpenseCategories.
type Expense struct {
	Entry
	Category string `gorm:"not null" json:"category"`
}

// TableName overrides the table name used by GORM.
func (Expense) TableName() string { return "expenses" }

// ToTransaction converts the row to its kind-agnostic view.
func (e Expense) ToTransaction() ledger.Transaction {
	return e.transaction(ledger.KindExpense, e.Category)
}
