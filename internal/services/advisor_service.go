package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/advisor"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/config"
	apperrors "github.com/Divyanshusamdani/Expense-Tracker/internal/errors"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/logger"
)

// advisorService answers questions from the rule engine, or from a
// text-generation server when one is configured.
type advisorService struct {
	ledger    LedgerServicer
	engine    *advisor.Engine
	generator advisor.Generator
	now       func() time.Time
}

// NewAdvisorService creates a new AdvisorServicer. A nil generator answers
// every question from the rule engine.
func NewAdvisorService(ledgerService LedgerServicer, generator advisor.Generator) AdvisorServicer {
	return &advisorService{
		ledger:    ledgerService,
		engine:    advisor.NewEngine(nil),
		generator: generator,
		now:       time.Now,
	}
}

// Ask answers question from the user's ledger. A failing generator does not
// fail the request; the answer is marked degraded and carries the reason.
func (s *advisorService) Ask(ctx context.Context, userID uint, question string) (*Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "question is required")
	}

	expenses, err := s.ledger.ListTransactions(ledger.KindExpense, userID)
	if err != nil {
		return nil, err
	}
	income, err := s.ledger.ListTransactions(ledger.KindIncome, userID)
	if err != nil {
		return nil, err
	}
	snapshot := advisor.NewSnapshot(expenses, income, s.now())

	if s.generator == nil {
		rule, text := s.engine.Answer(question, snapshot)
		return &Answer{Question: question, Answer: text, Mode: config.AdvisorModeRules, Rule: rule}, nil
	}

	text, err := s.generator.Generate(ctx, advisor.BuildPrompt(question, snapshot))
	if err != nil {
		reason := err
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Internal != nil {
			reason = appErr.Internal
		}
		logger.Get().Warnw("advisor generation failed", "user_id", userID, "error", reason)
		return &Answer{
			Question: question,
			Answer:   apperrors.ErrAdvisorUnavailable.Message + ": " + reason.Error(),
			Mode:     config.AdvisorModeLLM,
			Degraded: true,
		}, nil
	}
	return &Answer{Question: question, Answer: text, Mode: config.AdvisorModeLLM}, nil
}
