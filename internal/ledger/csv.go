package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

// CSVHeader returns the export header for kind. It mirrors the columns of
// the kind's table.
func CSVHeader(kind Kind) []string {
	return []string{"id", "user_id", "amount", kind.LabelColumn(), "note", "date"}
}

// WriteCSV writes seq as comma-separated values with a header row.
func WriteCSV(w io.Writer, kind Kind, seq []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader(kind)); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, t := range seq {
		record := []string{
			strconv.FormatUint(uint64(t.ID), 10),
			strconv.FormatUint(uint64(t.UserID), 10),
			t.Amount.String(),
			t.Label,
			t.Note,
			t.Date,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record %d: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses output of WriteCSV. The kind is taken from the label
// column of the header.
func ReadCSV(r io.Reader) (Kind, []Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 6

	header, err := cr.Read()
	if err != nil {
		return "", nil, fmt.Errorf("reading csv header: %w", err)
	}

	var kind Kind
	switch header[3] {
	case KindExpense.LabelColumn():
		kind = KindExpense
	case KindIncome.LabelColumn():
		kind = KindIncome
	default:
		return "", nil, fmt.Errorf("unknown label column %q", header[3])
	}

	var out []Transaction
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, fmt.Errorf("reading csv record: %w", err)
		}

		id, err := strconv.ParseUint(record[0], 10, 64)
		if err != nil {
			return "", nil, fmt.Errorf("parsing id %q: %w", record[0], err)
		}
		userID, err := strconv.ParseUint(record[1], 10, 64)
		if err != nil {
			return "", nil, fmt.Errorf("parsing user_id %q: %w", record[1], err)
		}
		amount, err := decimal.NewFromString(record[2])
		if err != nil {
			return "", nil, fmt.Errorf("parsing amount %q: %w", record[2], err)
		}

		out = append(out, Transaction{
			ID:     uint(id),
			UserID: uint(userID),
			Kind:   kind,
			Amount: amount,
			Label:  record[3],
			Note:   record[4],
			Date:   record[5],
		})
	}
	return kind, out, nil
}
