package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Divyanshusamdani/Expense-Tracker/internal/errors"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/report"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/services"
)

// ReportHandler handles dashboard and report requests
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ReportQuery holds the range and search of a report request.
type ReportQuery struct {
	From string `form:"from" binding:"omitempty,calendar_date"`
	To   string `form:"to" binding:"omitempty,calendar_date"`
	Q    string `form:"q" binding:"max=100"`
	Kind string `form:"kind" binding:"omitempty,transaction_kind"`
}

func bindReportQuery(c *gin.Context) (*ReportQuery, error) {
	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return nil, bindingError(err)
	}
	if query.From != "" && query.To != "" && query.From > query.To {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must not be after to")
	}
	return &query, nil
}

// GetSummary returns the dashboard figures
// @Summary     Dashboard summary
// @Description Total income, total expense, balance, record counts and the current month's spending
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Summary "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.GetSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetBreakdown returns chart data
// @Summary     Category and monthly breakdown
// @Description Expense totals by category, income totals by source and monthly trends over a filtered range
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Earliest date (YYYY-MM-DD)"
// @Param       to   query string false "Latest date (YYYY-MM-DD)"
// @Param       q    query string false "Search term"
// @Success     200 {object} services.Breakdown "Breakdown"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/breakdown [get]
func (h *ReportHandler) GetBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	query, err := bindReportQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.reportService.GetBreakdown(userID, ledger.Filter{From: query.From, To: query.To, Search: query.Q})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// GetStatement downloads a PDF statement
// @Summary     PDF statement
// @Description Download the filtered records and totals as a PDF
// @Tags        reports
// @Produce     application/pdf
// @Security    BearerAuth
// @Param       from query string false "Earliest date (YYYY-MM-DD)"
// @Param       to   query string false "Latest date (YYYY-MM-DD)"
// @Param       q    query string false "Search term"
// @Param       kind query string false "Restrict to expense or income"
// @Success     200 {file} file "PDF statement"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/statement [get]
func (h *ReportHandler) GetStatement(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	query, err := bindReportQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := ledger.Filter{From: query.From, To: query.To, Search: query.Q}
	statement, err := h.reportService.GetStatement(userID, filter, ledger.Kind(query.Kind))
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteStatement(&buf, statement, time.Now()); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.Filename(statement.From, statement.To)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
