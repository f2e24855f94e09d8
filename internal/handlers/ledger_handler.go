package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/Divyanshusamdani/Expense-Tracker/internal/errors"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/pagination"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/services"
)

// LedgerHandler serves the records of one kind. The router mounts one
// handler for expenses and one for income.
type LedgerHandler struct {
	kind          ledger.Kind
	ledgerService services.LedgerServicer
}

// NewLedgerHandler creates a new LedgerHandler for kind.
func NewLedgerHandler(kind ledger.Kind, ledgerService services.LedgerServicer) *LedgerHandler {
	return &LedgerHandler{kind: kind, ledgerService: ledgerService}
}

// ExpenseRequest represents the create and update payload for an expense.
type ExpenseRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required,gt=0,lte=9999999999.99"`
	Category string          `json:"category" binding:"required,expense_category"`
	Note     string          `json:"note" binding:"max=500"`
	Date     string          `json:"date" binding:"omitempty,calendar_date"`
}

// IncomeRequest represents the create and update payload for income.
type IncomeRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0,lte=9999999999.99"`
	Source string          `json:"source" binding:"required,max=100"`
	Note   string          `json:"note" binding:"max=500"`
	Date   string          `json:"date" binding:"omitempty,calendar_date"`
}

// HistoryQuery holds the filter and page of a history request.
type HistoryQuery struct {
	From string `form:"from" binding:"omitempty,calendar_date"`
	To   string `form:"to" binding:"omitempty,calendar_date"`
	Q    string `form:"q" binding:"max=100"`
	pagination.PageRequest
}

// Filter returns the query as a ledger filter.
func (q HistoryQuery) Filter() ledger.Filter {
	return ledger.Filter{From: q.From, To: q.To, Search: q.Q}
}

// HistoryResponse is one page of a filtered history view. TotalAmount sums
// the whole filtered view, not just the page.
type HistoryResponse struct {
	pagination.PageResponse[map[string]any]
	From        string          `json:"from"`
	To          string          `json:"to"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// transactionJSON renders t with its label under the kind's column name.
func transactionJSON(t ledger.Transaction) map[string]any {
	return map[string]any{
		"id":                 t.ID,
		"user_id":            t.UserID,
		"amount":             t.Amount,
		t.Kind.LabelColumn(): t.Label,
		"note":               t.Note,
		"date":               t.Date,
	}
}

// bindRecord parses the create/update payload of the handler's kind.
func (h *LedgerHandler) bindRecord(c *gin.Context) (amount decimal.Decimal, label, note, date string, err error) {
	if h.kind == ledger.KindExpense {
		var req ExpenseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return decimal.Zero, "", "", "", bindingError(err)
		}
		return req.Amount, req.Category, req.Note, req.Date, nil
	}

	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return decimal.Zero, "", "", "", bindingError(err)
	}
	return req.Amount, req.Source, req.Note, req.Date, nil
}

// filteredView loads the user's records and applies the query filter,
// newest first.
func (h *LedgerHandler) filteredView(c *gin.Context) ([]ledger.Transaction, *HistoryQuery, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, nil, err
	}

	var query HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return nil, nil, bindingError(err)
	}
	if query.From != "" && query.To != "" && query.From > query.To {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must not be after to")
	}

	all, err := h.ledgerService.ListTransactions(h.kind, userID)
	if err != nil {
		return nil, nil, err
	}

	view := ledger.Apply(all, query.Filter())
	ledger.SortByDateDesc(view)
	return view, &query, nil
}

// Create adds a record
// @Summary     Add a record
// @Description Add an expense (category) or income (source) record. An empty date means today.
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Record data (IncomeRequest for /income)"
// @Success     201 {object} map[string]interface{} "Created record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
// @Router      /income [post]
func (h *LedgerHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	amount, label, note, date, err := h.bindRecord(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := h.ledgerService.AddTransaction(h.kind, userID, amount, label, note, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	t, err := h.ledgerService.GetTransaction(h.kind, userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transactionJSON(*t)})
}

// List returns the filtered history
// @Summary     List records
// @Description List records newest first, filtered by an inclusive date range and a case-insensitive search over note and label
// @Tags        ledger
// @Produce     json
// @Security    BearerAuth
// @Param       from      query string false "Earliest date (YYYY-MM-DD)"
// @Param       to        query string false "Latest date (YYYY-MM-DD)"
// @Param       q         query string false "Search term"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} HistoryResponse "Filtered records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
// @Router      /income [get]
func (h *LedgerHandler) List(c *gin.Context) {
	view, query, err := h.filteredView(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	earliest, latest := ledger.DateBounds(view)
	from, to := query.From, query.To
	if from == "" {
		from = earliest
	}
	if to == "" {
		to = latest
	}

	rows := make([]map[string]any, len(view))
	for i, t := range view {
		rows[i] = transactionJSON(t)
	}

	c.JSON(http.StatusOK, HistoryResponse{
		PageResponse: pagination.Slice(rows, query.PageRequest),
		From:         from,
		To:           to,
		TotalAmount:  ledger.TotalAmount(view),
	})
}

// Get returns a single record
// @Summary     Get a record
// @Tags        ledger
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Record ID"
// @Success     200 {object} map[string]interface{} "Record"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Router      /expenses/{id} [get]
// @Router      /income/{id} [get]
func (h *LedgerHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	t, err := h.ledgerService.GetTransaction(h.kind, userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transactionJSON(*t)})
}

// Update replaces a record
// @Summary     Update a record
// @Description Replace every field of a record except its id and owner
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int            true "Record ID"
// @Param       request body ExpenseRequest true "Record data (IncomeRequest for /income)"
// @Success     200 {object} map[string]interface{} "Updated record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Router      /expenses/{id} [put]
// @Router      /income/{id} [put]
func (h *LedgerHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	amount, label, note, date, err := h.bindRecord(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	t, err := h.ledgerService.UpdateTransaction(h.kind, userID, id, amount, label, note, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transactionJSON(*t)})
}

// Delete removes a record
// @Summary     Delete a record
// @Description Delete a record. Deleting a record that does not exist succeeds.
// @Tags        ledger
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Record ID"
// @Success     200 {object} MessageResponse "Record deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Router      /expenses/{id} [delete]
// @Router      /income/{id} [delete]
func (h *LedgerHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ledgerService.DeleteTransaction(h.kind, userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Record deleted successfully"})
}

// Export downloads the filtered history as CSV
// @Summary     Export records as CSV
// @Description Download the filtered history with the table's columns as header
// @Tags        ledger
// @Produce     text/csv
// @Security    BearerAuth
// @Param       from query string false "Earliest date (YYYY-MM-DD)"
// @Param       to   query string false "Latest date (YYYY-MM-DD)"
// @Param       q    query string false "Search term"
// @Success     200 {string} string "CSV file"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /expenses/export [get]
// @Router      /income/export [get]
func (h *LedgerHandler) Export(c *gin.Context) {
	view, _, err := h.filteredView(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := ledger.WriteCSV(&buf, h.kind, view); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, h.tableName()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *LedgerHandler) tableName() string {
	if h.kind == ledger.KindIncome {
		return "income"
	}
	return "expenses"
}
