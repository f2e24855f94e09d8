package models

import "github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"

// Income is a single earning record with a free-text source.
type Income struct {
	Entry
	Source string `gorm:"not null" json:"source"`
}

// TableName keeps the singular table name of the schema.
func (Income) TableName() string { return "income" }

// ToTransaction converts the row to its kind-agnostic view.
func (i Income) ToTransaction() ledger.Transaction {
	return i.transaction(ledger.KindIncome, i.Source)
}
