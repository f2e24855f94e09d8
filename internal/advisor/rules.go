// Package advisor answers free-text questions about a user's finances,
// either from an ordered list of keyword rules or through a local
// text-generation server.
package advisor

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
)

// FallbackRule names the answer given when no rule matches.
const FallbackRule = "fallback"

// Snapshot is the financial data a question is answered from.
type Snapshot struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	Expenses     []ledger.Transaction
	Now          time.Time
}

// NewSnapshot builds a Snapshot from a user's expense and income records.
func NewSnapshot(expenses, income []ledger.Transaction, now time.Time) Snapshot {
	totalIncome := ledger.TotalAmount(income)
	totalExpense := ledger.TotalAmount(expenses)
	return Snapshot{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      ledger.Balance(totalIncome, totalExpense),
		Expenses:     expenses,
		Now:          now,
	}
}

// Rule pairs a predicate over the lowercased question with the answer it
// produces.
type Rule struct {
	Name    string
	Match   func(question string) bool
	Respond func(s Snapshot) string
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func containsAny(q string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}

// DefaultRules returns the built-in rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "total_income",
			Match: func(q string) bool {
				return strings.Contains(q, "total") && strings.Contains(q, "income")
			},
			Respond: func(s Snapshot) string {
				return fmt.Sprintf("Your total income is %s.", money(s.TotalIncome))
			},
		},
		{
			Name: "total_expense",
			Match: func(q string) bool {
				return (strings.Contains(q, "total") && strings.Contains(q, "expense")) ||
					strings.Contains(q, "how much did i spend")
			},
			Respond: func(s Snapshot) string {
				return fmt.Sprintf("Your total expense is %s.", money(s.TotalExpense))
			},
		},
		{
			Name: "top_category",
			Match: func(q string) bool {
				return containsAny(q, "top category", "most spent", "biggest")
			},
			Respond: func(s Snapshot) string {
				top, err := ledger.TopCategory(s.Expenses)
				if err != nil {
					return "No expenses yet."
				}
				return fmt.Sprintf("Your top category: %s (%s).", top.Label, money(top.Total))
			},
		},
		{
			Name:  "average",
			Match: func(q string) bool { return strings.Contains(q, "average") },
			Respond: func(s Snapshot) string {
				return fmt.Sprintf("Average expense per entry: %s.", money(ledger.AverageAmount(s.Expenses)))
			},
		},
		{
			Name:  "month",
			Match: func(q string) bool { return strings.Contains(q, "month") },
			Respond: func(s Snapshot) string {
				month := ledger.CurrentMonthKey(s.Now)
				return fmt.Sprintf("In %s, you spent %s.", month, money(ledger.PeriodTotal(s.Expenses, month)))
			},
		},
		{
			Name:  "tips",
			Match: func(q string) bool { return containsAny(q, "tip", "save", "savings") },
			Respond: func(Snapshot) string {
				return strings.Join([]string{
					"- Track all expenses honestly.",
					"- Set monthly category-wise budgets.",
					"- Review subscriptions and cancel unused ones.",
					"- Try to boost savings this month by spending less in 1-2 top categories!",
				}, "\n")
			},
		},
		{
			Name:  "balance",
			Match: func(q string) bool { return containsAny(q, "balance", "left") },
			Respond: func(s Snapshot) string {
				return fmt.Sprintf("Current balance (income - expense): %s.", money(s.Balance))
			},
		},
	}
}

// FallbackAnswer suggests questions the rules understand.
const FallbackAnswer = "Try: 'Total income?', 'Total expense?', 'Top category?', 'Any savings tips?'"

// Engine evaluates rules in order and answers with the first match.
type Engine struct {
	rules []Rule
}

// NewEngine creates an Engine over rules. A nil slice uses DefaultRules.
func NewEngine(rules []Rule) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Engine{rules: rules}
}

// Answer returns the name of the matching rule and its response.
func (e *Engine) Answer(question string, s Snapshot) (string, string) {
	q := strings.ToLower(question)
	for _, r := range e.rules {
		if r.Match(q) {
			return r.Name, r.Respond(s)
		}
	}
	return FallbackRule, FallbackAnswer
}
