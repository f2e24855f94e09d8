package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(username, password string) (*models.User, error)
}

// LedgerServicer defines the contract for expense and income records.
// Every operation is scoped to the owning user.
type LedgerServicer interface {
	AddTransaction(kind ledger.Kind, userID uint, amount decimal.Decimal, label, note, date string) (uint, error)
	ListTransactions(kind ledger.Kind, userID uint) ([]ledger.Transaction, error)
	GetTransaction(kind ledger.Kind, userID, id uint) (*ledger.Transaction, error)
	UpdateTransaction(kind ledger.Kind, userID, id uint, amount decimal.Decimal, label, note, date string) (*ledger.Transaction, error)
	DeleteTransaction(kind ledger.Kind, userID, id uint) error
}

// Summary holds the dashboard figures for a user.
type Summary struct {
	TotalIncome         decimal.Decimal `json:"total_income"`
	TotalExpense        decimal.Decimal `json:"total_expense"`
	Balance             decimal.Decimal `json:"balance"`
	ExpenseCount        int             `json:"expense_count"`
	IncomeCount         int             `json:"income_count"`
	CurrentMonth        string          `json:"current_month"`
	CurrentMonthExpense decimal.Decimal `json:"current_month_expense"`
}

// Breakdown holds the chart data of the reports view over a filtered range.
type Breakdown struct {
	From              string                 `json:"from"`
	To                string                 `json:"to"`
	ExpenseByCategory []ledger.CategoryTotal `json:"expense_by_category"`
	IncomeBySource    []ledger.CategoryTotal `json:"income_by_source"`
	ExpenseTrend      []ledger.MonthTotal    `json:"expense_trend"`
	IncomeTrend       []ledger.MonthTotal    `json:"income_trend"`
}

// Statement is a printable listing of a user's records over a range,
// newest first. A statement restricted to one kind leaves the other list
// empty.
type Statement struct {
	Username     string
	From         string
	To           string
	Expenses     []ledger.Transaction
	Income       []ledger.Transaction
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// ReportServicer defines the contract for aggregated views of a user's ledger.
type ReportServicer interface {
	GetSummary(userID uint) (*Summary, error)
	GetBreakdown(userID uint, filter ledger.Filter) (*Breakdown, error)
	GetStatement(userID uint, filter ledger.Filter, kind ledger.Kind) (*Statement, error)
}

// Answer is the advisor's reply to a question.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Mode     string `json:"mode"`
	Rule     string `json:"rule,omitempty"`
	Degraded bool   `json:"degraded"`
}

// AdvisorServicer defines the contract for the finance advisor.
type AdvisorServicer interface {
	Ask(ctx context.Context, userID uint, question string) (*Answer, error)
}
