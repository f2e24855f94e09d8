package advisor

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
)

func tx(kind ledger.Kind, amount, label, date string) ledger.Transaction {
	return ledger.Transaction{Kind: kind, Amount: decimal.RequireFromString(amount), Label: label, Date: date}
}

func testSnapshot() Snapshot {
	expenses := []ledger.Transaction{
		tx(ledger.KindExpense, "100", "Food", "2024-01-05"),
		tx(ledger.KindExpense, "50", "Shopping", "2024-01-20"),
		tx(ledger.KindExpense, "30", "Food", "2024-02-01"),
	}
	income := []ledger.Transaction{
		tx(ledger.KindIncome, "1000", "Salary", "2024-01-01"),
	}
	return NewSnapshot(expenses, income, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
}

func TestNewSnapshot(t *testing.T) {
	s := testSnapshot()
	assert.Equal(t, "1000.00", money(s.TotalIncome))
	assert.Equal(t, "180.00", money(s.TotalExpense))
	assert.Equal(t, "820.00", money(s.Balance))
}

func TestEngineAnswer(t *testing.T) {
	engine := NewEngine(nil)
	s := testSnapshot()

	tests := []struct {
		question string
		rule     string
		answer   string
	}{
		{"What is my total income?", "total_income", "Your total income is 1000.00."},
		{"Total expense please", "total_expense", "Your total expense is 180.00."},
		{"How much did I spend this month?", "total_expense", "Your total expense is 180.00."},
		{"What is my top category?", "top_category", "Your top category: Food (130.00)."},
		{"Where did I spend the BIGGEST amount?", "top_category", "Your top category: Food (130.00)."},
		{"average?", "average", "Average expense per entry: 60.00."},
		{"Spending this month", "month", "In 2024-02, you spent 30.00."},
		{"What is my balance?", "balance", "Current balance (income - expense): 820.00."},
		{"How much is left?", "balance", "Current balance (income - expense): 820.00."},
		{"hello", FallbackRule, FallbackAnswer},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			rule, answer := engine.Answer(tt.question, s)
			assert.Equal(t, tt.rule, rule)
			assert.Equal(t, tt.answer, answer)
		})
	}
}

func TestEngineAnswer_Tips(t *testing.T) {
	rule, answer := NewEngine(nil).Answer("Any tips to save money?", testSnapshot())
	assert.Equal(t, "tips", rule)
	assert.Contains(t, answer, "Set monthly category-wise budgets.")
}

func TestEngineAnswer_FirstMatchWins(t *testing.T) {
	// "total income" would also mention a month, but income is checked first.
	rule, _ := NewEngine(nil).Answer("total income this month", testSnapshot())
	assert.Equal(t, "total_income", rule)
}

func TestEngineAnswer_NoExpenses(t *testing.T) {
	s := NewSnapshot(nil, nil, time.Now())

	_, answer := NewEngine(nil).Answer("top category", s)
	assert.Equal(t, "No expenses yet.", answer)

	_, answer = NewEngine(nil).Answer("average", s)
	assert.Equal(t, "Average expense per entry: 0.00.", answer)
}

func TestEngineAnswer_CustomRules(t *testing.T) {
	engine := NewEngine([]Rule{{
		Name:    "greeting",
		Match:   func(q string) bool { return q == "hi" },
		Respond: func(Snapshot) string { return "hello" },
	}})

	rule, answer := engine.Answer("HI", Snapshot{})
	assert.Equal(t, "greeting", rule)
	assert.Equal(t, "hello", answer)

	rule, _ = engine.Answer("total income", Snapshot{})
	assert.Equal(t, FallbackRule, rule)
}
