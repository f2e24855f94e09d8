package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/services"
)

func tx(id uint, kind ledger.Kind, amount, label, date string) ledger.Transaction {
	return ledger.Transaction{ID: id, Kind: kind, Amount: decimal.RequireFromString(amount), Label: label, Date: date}
}

func TestWriteStatement(t *testing.T) {
	st := &services.Statement{
		Username: "alice",
		From:     "2024-01-01",
		To:       "2024-01-31",
		Expenses: []ledger.Transaction{
			tx(2, ledger.KindExpense, "20", "Transport", "2024-01-20"),
			tx(1, ledger.KindExpense, "10", "Food", "2024-01-05"),
		},
		Income:       []ledger.Transaction{tx(1, ledger.KindIncome, "500", "Salary", "2024-01-01")},
		TotalIncome:  decimal.NewFromInt(500),
		TotalExpense: decimal.NewFromInt(30),
		Balance:      decimal.NewFromInt(470),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, st, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWriteStatement_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, &services.Statement{Username: "nobody"}, time.Now()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteStatement_ManyRows(t *testing.T) {
	st := &services.Statement{Username: "bulk"}
	for i := 0; i < maxRows+20; i++ {
		st.Expenses = append(st.Expenses, tx(uint(i+1), ledger.KindExpense, "1", "Food", "2024-01-01"))
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, st, time.Now()))
}

func TestMergeRows(t *testing.T) {
	rows := mergeRows(&services.Statement{
		Expenses: []ledger.Transaction{tx(1, ledger.KindExpense, "1", "Food", "2024-01-05")},
		Income:   []ledger.Transaction{tx(1, ledger.KindIncome, "1", "Salary", "2024-01-10")},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, ledger.KindIncome, rows[0].Kind)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "statement-2024-01-01-to-2024-01-31.pdf", Filename("2024-01-01", "2024-01-31"))
	assert.Equal(t, "statement.pdf", Filename("", ""))
}

func TestTrimTo(t *testing.T) {
	assert.Equal(t, "short", trimTo("  short ", 10))
	assert.Equal(t, "abcdefg...", trimTo("abcdefghijklmnop", 10))
}
