// Package ledger holds the in-memory view of a user's expense and income
// records together with the pure filtering and aggregation functions the
// dashboard, history views and reports are built from.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the fixed, lexicographically sortable date format used by
// every record.
const DateLayout = "2006-01-02"

// MaxAmount is the largest amount a decimal(12,2) column can hold.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// Kind identifies which collection a transaction belongs to.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	return k == KindExpense || k == KindIncome
}

// LabelColumn returns the name of the column holding the record's label.
func (k Kind) LabelColumn() string {
	if k == KindIncome {
		return "source"
	}
	return "category"
}

// ExpenseCategories is the closed set of expense labels.
var ExpenseCategories = []string{"Food", "Shopping", "Transport", "Others"}

// IsExpenseCategory reports whether label is one of ExpenseCategories.
func IsExpenseCategory(label string) bool {
	for _, c := range ExpenseCategories {
		if c == label {
			return true
		}
	}
	return false
}

// Transaction is the kind-agnostic view of an expense or income record.
// Label is the expense category or the income source.
type Transaction struct {
	ID     uint            `json:"id"`
	UserID uint            `json:"user_id"`
	Kind   Kind            `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Label  string          `json:"label"`
	Note   string          `json:"note"`
	Date   string          `json:"date"`
}

// ValidDate reports whether s is a real calendar date written as YYYY-MM-DD.
// The round trip rejects non-padded forms such as 2024-1-5.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(DateLayout) == s
}

// MonthKey returns the YYYY-MM prefix of a record date.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// CurrentMonthKey returns the month key for now.
func CurrentMonthKey(now time.Time) string {
	return now.Format("2006-01")
}
