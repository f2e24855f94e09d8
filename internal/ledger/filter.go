package ledger

import (
	"sort"
	"strings"
)

// Filter selects a date range and an optional case-insensitive search term.
// An empty From or To leaves that side of the range open. A blank Search
// disables substring matching entirely.
type Filter struct {
	From   string
	To     string
	Search string
}

// Matches reports whether t passes the filter.
func (f Filter) Matches(t Transaction) bool {
	if f.From != "" && t.Date < f.From {
		return false
	}
	if f.To != "" && t.Date > f.To {
		return false
	}
	if strings.TrimSpace(f.Search) == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(t.Note), term) ||
		strings.Contains(strings.ToLower(t.Label), term)
}

// Apply returns the records of seq that match f, preserving their order.
// seq is not modified.
func Apply(seq []Transaction, f Filter) []Transaction {
	out := make([]Transaction, 0, len(seq))
	for _, t := range seq {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// SortByDateDesc orders seq newest first, in place. Records sharing a date
// are ordered by id descending so the latest entry comes first.
func SortByDateDesc(seq []Transaction) {
	sort.SliceStable(seq, func(i, j int) bool {
		if seq[i].Date != seq[j].Date {
			return seq[i].Date > seq[j].Date
		}
		return seq[i].ID > seq[j].ID
	})
}

// DateBounds returns the earliest and latest dates in seq, or empty strings
// when seq is empty. History views use them as the default filter range.
func DateBounds(seq []Transaction) (earliest, latest string) {
	for i, t := range seq {
		if i == 0 || t.Date < earliest {
			earliest = t.Date
		}
		if i == 0 || t.Date > latest {
			latest = t.Date
		}
	}
	return earliest, latest
}
