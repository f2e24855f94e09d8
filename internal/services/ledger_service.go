package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/Divyanshusamdani/Expense-Tracker/internal/errors"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/models"
)

// ledgerService handles expense and income records.
type ledgerService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return &ledgerService{db: db, now: time.Now}
}

// fields holds a validated set of replaceable record fields.
type fields struct {
	amount decimal.Decimal
	label  string
	note   string
	date   string
}

// validate checks the replaceable fields of a record of kind. An empty date
// defaults to today.
func (s *ledgerService) validate(kind ledger.Kind, amount decimal.Decimal, label, note, date string) (fields, error) {
	if !kind.Valid() {
		return fields{}, apperrors.ErrInvalidKind
	}
	if !amount.IsPositive() {
		return fields{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if amount.GreaterThan(ledger.MaxAmount) {
		return fields{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not exceed "+ledger.MaxAmount.StringFixed(2))
	}
	if !amount.Equal(amount.Round(2)) {
		return fields{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must have at most two decimal places")
	}

	label = strings.TrimSpace(label)
	if kind == ledger.KindExpense && !ledger.IsExpenseCategory(label) {
		return fields{}, apperrors.ErrInvalidCategory
	}
	if kind == ledger.KindIncome && label == "" {
		return fields{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "source is required")
	}

	date = strings.TrimSpace(date)
	if date == "" {
		date = s.now().Format(ledger.DateLayout)
	} else if !ledger.ValidDate(date) {
		return fields{}, apperrors.ErrInvalidDate
	}

	return fields{amount: amount, label: label, note: note, date: date}, nil
}

// AddTransaction stores a new record for userID and returns its id.
func (s *ledgerService) AddTransaction(kind ledger.Kind, userID uint, amount decimal.Decimal, label, note, date string) (uint, error) {
	f, err := s.validate(kind, amount, label, note, date)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return 0, apperrors.ErrUserNotFound
	}

	entry := models.Entry{UserID: userID, Amount: f.amount, Note: f.note, Date: f.date}
	switch kind {
	case ledger.KindExpense:
		expense := &models.Expense{Entry: entry, Category: f.label}
		if err := s.db.Create(expense).Error; err != nil {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return expense.ID, nil
	default:
		income := &models.Income{Entry: entry, Source: f.label}
		if err := s.db.Create(income).Error; err != nil {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return income.ID, nil
	}
}

// ListTransactions returns every record of kind owned by userID in
// insertion order.
func (s *ledgerService) ListTransactions(kind ledger.Kind, userID uint) ([]ledger.Transaction, error) {
	switch kind {
	case ledger.KindExpense:
		return listRecords[models.Expense](s.db, userID)
	case ledger.KindIncome:
		return listRecords[models.Income](s.db, userID)
	default:
		return nil, apperrors.ErrInvalidKind
	}
}

// GetTransaction returns a single record owned by userID.
func (s *ledgerService) GetTransaction(kind ledger.Kind, userID, id uint) (*ledger.Transaction, error) {
	switch kind {
	case ledger.KindExpense:
		return findRecord[models.Expense](s.db, userID, id)
	case ledger.KindIncome:
		return findRecord[models.Income](s.db, userID, id)
	default:
		return nil, apperrors.ErrInvalidKind
	}
}

// UpdateTransaction replaces every field of a record except its id and
// owner. Updating a record that does not exist, or belongs to another
// user, returns ErrTransactionNotFound.
func (s *ledgerService) UpdateTransaction(kind ledger.Kind, userID, id uint, amount decimal.Decimal, label, note, date string) (*ledger.Transaction, error) {
	f, err := s.validate(kind, amount, label, note, date)
	if err != nil {
		return nil, err
	}

	result := s.db.Model(modelFor(kind)).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"amount":           f.amount,
			kind.LabelColumn(): f.label,
			"note":             f.note,
			"date":             f.date,
		})
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrTransactionNotFound
	}

	return s.GetTransaction(kind, userID, id)
}

// DeleteTransaction removes a record owned by userID. Deleting a missing
// record is a no-op.
func (s *ledgerService) DeleteTransaction(kind ledger.Kind, userID, id uint) error {
	if !kind.Valid() {
		return apperrors.ErrInvalidKind
	}
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(modelFor(kind)).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// modelFor returns an empty model of the table backing kind.
func modelFor(kind ledger.Kind) any {
	if kind == ledger.KindIncome {
		return &models.Income{}
	}
	return &models.Expense{}
}

func listRecords[T models.Record](db *gorm.DB, userID uint) ([]ledger.Transaction, error) {
	var rows []T
	if err := db.Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	out := make([]ledger.Transaction, len(rows))
	for i, row := range rows {
		out[i] = row.ToTransaction()
	}
	return out, nil
}

func findRecord[T models.Record](db *gorm.DB, userID, id uint) (*ledger.Transaction, error) {
	var row T
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	t := row.ToTransaction()
	return &t, nil
}
