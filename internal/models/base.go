package models

import (
	"github.com/shopspring/decimal"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
)

// Entry contains the columns shared by the expenses and income tables.
type Entry struct {
	ID     uint            `gorm:"primaryKey" json:"id"`
	UserID uint            `gorm:"not null;index" json:"user_id"`
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Note   string          `gorm:"not null;default:''" json:"note"`
	Date   string          `gorm:"type:varchar(10);not null;index" json:"date"`
}

func (e Entry) transaction(kind ledger.Kind, label string) ledger.Transaction {
	return ledger.Transaction{
		ID:     e.ID,
		UserID: e.UserID,
		Kind:   kind,
		Amount: e.Amount,
		Label:  label,
		Note:   e.Note,
		Date:   e.Date,
	}
}

// Record is satisfied by the models that back a ledger kind.
type Record interface {
	Expense | Income
	ToTransaction() ledger.Transaction
}
