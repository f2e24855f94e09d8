package ledger

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrEmptySequence is returned by aggregations that have no answer for an
// empty input.
var ErrEmptySequence = errors.New("ledger: empty transaction sequence")

// CategoryTotal is the summed amount for a single category or source label.
type CategoryTotal struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// MonthTotal is the summed amount for a single YYYY-MM month key.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// TotalAmount sums the amounts in seq. It is zero for an empty sequence.
func TotalAmount(seq []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range seq {
		total = total.Add(t.Amount)
	}
	return total
}

// AverageAmount returns the arithmetic mean of the amounts in seq, or zero
// for an empty sequence.
func AverageAmount(seq []Transaction) decimal.Decimal {
	if len(seq) == 0 {
		return decimal.Zero
	}
	return TotalAmount(seq).Div(decimal.NewFromInt(int64(len(seq))))
}

// CategoryTotals groups seq by label and returns every label with its sum,
// largest first. Equal totals are ordered by label.
func CategoryTotals(seq []Transaction) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, t := range seq {
		sums[t.Label] = sums[t.Label].Add(t.Amount)
	}

	out := make([]CategoryTotal, 0, len(sums))
	for label, total := range sums {
		out = append(out, CategoryTotal{Label: label, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// TopCategory returns the label with the largest summed amount. Ties go to
// the alphabetically first label. It returns ErrEmptySequence when seq is
// empty.
func TopCategory(seq []Transaction) (CategoryTotal, error) {
	totals := CategoryTotals(seq)
	if len(totals) == 0 {
		return CategoryTotal{}, ErrEmptySequence
	}
	return totals[0], nil
}

// MonthlyTrend groups seq by month key and returns the sums in
// chronological order.
func MonthlyTrend(seq []Transaction) []MonthTotal {
	sums := make(map[string]decimal.Decimal)
	for _, t := range seq {
		key := MonthKey(t.Date)
		sums[key] = sums[key].Add(t.Amount)
	}

	out := make([]MonthTotal, 0, len(sums))
	for month, total := range sums {
		out = append(out, MonthTotal{Month: month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// PeriodTotal sums the records of seq dated within monthKey (YYYY-MM).
func PeriodTotal(seq []Transaction, monthKey string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range seq {
		if MonthKey(t.Date) == monthKey {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Balance is income minus expense. It may be negative.
func Balance(incomeTotal, expenseTotal decimal.Decimal) decimal.Decimal {
	return incomeTotal.Sub(expenseTotal)
}
