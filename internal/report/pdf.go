// Package report renders printable statements.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/services"
)

const (
	maxRows    = 500
	pageBreakY = 270.0
	noteWidth  = 60
)

var columnWidths = []float64{22, 24, 32, 70, 34}

// Filename returns the download name of a statement covering from..to.
func Filename(from, to string) string {
	if from == "" || to == "" {
		return "statement.pdf"
	}
	return fmt.Sprintf("statement-%s-to-%s.pdf", from, to)
}

// WriteStatement renders st as an A4 PDF to w. Expenses and income are
// merged into one table, newest first.
func WriteStatement(w io.Writer, st *services.Statement, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Expense Tracker Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	period := "all records"
	if st.From != "" || st.To != "" {
		period = st.From + " to " + st.To
	}
	pdf.Cell(0, 6, "Period: "+period)
	pdf.Ln(5)
	pdf.Cell(0, 6, tr("User: "+st.Username))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := 182.0 / 3
	pdf.CellFormat(sumW, 10, "Income", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW, 10, "Expense", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW, 10, "Balance", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW, 10, st.TotalIncome.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW, 10, st.TotalExpense.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW, 10, st.Balance.StringFixed(2), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		for i, title := range []string{"TYPE", "DATE", "LABEL", "NOTE", "AMOUNT"} {
			align := "C"
			if i == 4 {
				align = "R"
			}
			ln := 0
			if i == len(columnWidths)-1 {
				ln = 1
			}
			pdf.CellFormat(columnWidths[i], 8, title, "1", ln, align, true, 0, "")
		}
		pdf.SetFont("Helvetica", "", 9)
	}
	header()

	rows := mergeRows(st)
	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 8, "No records in this period", "1", 1, "C", false, 0, "")
	}
	for i, t := range rows {
		if i >= maxRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, fmt.Sprintf("%d more records not shown", len(rows)-maxRows), "1", 1, "C", false, 0, "")
			break
		}
		if pdf.GetY() > pageBreakY {
			pdf.AddPage()
			header()
		}

		amount := t.Amount.StringFixed(2)
		if t.Kind == ledger.KindExpense {
			amount = "-" + amount
		}
		pdf.CellFormat(columnWidths[0], 8, strings.ToUpper(string(t.Kind)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(columnWidths[1], 8, t.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(columnWidths[2], 8, tr(trimTo(t.Label, 20)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidths[3], 8, tr(trimTo(t.Note, noteWidth)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidths[4], 8, amount, "1", 1, "R", false, 0, "")
	}

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Generated "+generatedAt.Format(time.RFC3339), "", 0, "C", false, 0, "")

	return pdf.Output(w)
}

// mergeRows interleaves both lists newest first.
func mergeRows(st *services.Statement) []ledger.Transaction {
	rows := make([]ledger.Transaction, 0, len(st.Expenses)+len(st.Income))
	rows = append(rows, st.Expenses...)
	rows = append(rows, st.Income...)
	ledger.SortByDateDesc(rows)
	return rows
}

func trimTo(s string, max int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
