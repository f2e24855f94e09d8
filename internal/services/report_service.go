package services

import (
	"time"

	apperrors "github.com/Divyanshusamdani/Expense-Tracker/internal/errors"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
)

// reportService builds aggregated views from the ledger.
type reportService struct {
	ledger LedgerServicer
	users  UserServicer
	now    func() time.Time
}

// NewReportService creates a new ReportServicer.
func NewReportService(ledgerService LedgerServicer, userService UserServicer) ReportServicer {
	return &reportService{ledger: ledgerService, users: userService, now: time.Now}
}

// load returns every expense and income record of userID.
func (s *reportService) load(userID uint) ([]ledger.Transaction, []ledger.Transaction, error) {
	expenses, err := s.ledger.ListTransactions(ledger.KindExpense, userID)
	if err != nil {
		return nil, nil, err
	}
	income, err := s.ledger.ListTransactions(ledger.KindIncome, userID)
	if err != nil {
		return nil, nil, err
	}
	return expenses, income, nil
}

// GetSummary returns the dashboard figures across all of a user's records.
func (s *reportService) GetSummary(userID uint) (*Summary, error) {
	expenses, income, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	totalIncome := ledger.TotalAmount(income)
	totalExpense := ledger.TotalAmount(expenses)
	month := ledger.CurrentMonthKey(s.now())

	return &Summary{
		TotalIncome:         totalIncome,
		TotalExpense:        totalExpense,
		Balance:             ledger.Balance(totalIncome, totalExpense),
		ExpenseCount:        len(expenses),
		IncomeCount:         len(income),
		CurrentMonth:        month,
		CurrentMonthExpense: ledger.PeriodTotal(expenses, month),
	}, nil
}

// GetBreakdown returns category and monthly totals for the records that
// match filter.
func (s *reportService) GetBreakdown(userID uint, filter ledger.Filter) (*Breakdown, error) {
	expenses, income, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	expenses = ledger.Apply(expenses, filter)
	income = ledger.Apply(income, filter)

	return &Breakdown{
		From:              filter.From,
		To:                filter.To,
		ExpenseByCategory: ledger.CategoryTotals(expenses),
		IncomeBySource:    ledger.CategoryTotals(income),
		ExpenseTrend:      ledger.MonthlyTrend(expenses),
		IncomeTrend:       ledger.MonthlyTrend(income),
	}, nil
}

// GetStatement returns the filtered records of a user for printing. An
// empty kind includes both kinds. An open range is reported as the span of
// the matching records.
func (s *reportService) GetStatement(userID uint, filter ledger.Filter, kind ledger.Kind) (*Statement, error) {
	if kind != "" && !kind.Valid() {
		return nil, apperrors.ErrInvalidKind
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	expenses, income, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	expenses = ledger.Apply(expenses, filter)
	income = ledger.Apply(income, filter)
	switch kind {
	case ledger.KindExpense:
		income = nil
	case ledger.KindIncome:
		expenses = nil
	}
	ledger.SortByDateDesc(expenses)
	ledger.SortByDateDesc(income)

	from, to := ledger.DateBounds(append(append([]ledger.Transaction{}, expenses...), income...))
	if filter.From != "" {
		from = filter.From
	}
	if filter.To != "" {
		to = filter.To
	}

	totalIncome := ledger.TotalAmount(income)
	totalExpense := ledger.TotalAmount(expenses)
	return &Statement{
		Username:     user.Username,
		From:         from,
		To:           to,
		Expenses:     expenses,
		Income:       income,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      ledger.Balance(totalIncome, totalExpense),
	}, nil
}
