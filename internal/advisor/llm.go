package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/Divyanshusamdani/Expense-Tracker/internal/errors"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// LLMClient talks to an Ollama-compatible text-generation server.
type LLMClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewLLMClient creates a client for the server at baseURL. The timeout of
// httpClient bounds every call.
func NewLLMClient(baseURL, model string, httpClient *http.Client) *LLMClient {
	return &LLMClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: httpClient,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// Generate sends prompt to /api/generate and returns the response text.
// Failures are returned as ErrAdvisorUnavailable wrapping the cause.
func (c *LLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := c.generate(ctx, prompt)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrAdvisorUnavailable, err)
	}
	return text, nil
}

func (c *LLMClient) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: c.model, Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("marshaling generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling model server: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("calling model server: unexpected status %d", resp.StatusCode)
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding generate response: %w", err)
	}
	return strings.TrimSpace(result.Response), nil
}

// BuildPrompt embeds the user's totals and question into a single prompt.
func BuildPrompt(question string, s Snapshot) string {
	var b strings.Builder
	b.WriteString("You are a concise personal finance assistant.\n")
	fmt.Fprintf(&b, "Total income: %s\n", money(s.TotalIncome))
	fmt.Fprintf(&b, "Total expense: %s\n", money(s.TotalExpense))
	fmt.Fprintf(&b, "Balance: %s\n", money(s.Balance))
	if top, err := ledger.TopCategory(s.Expenses); err == nil {
		fmt.Fprintf(&b, "Top expense category: %s (%s)\n", top.Label, money(top.Total))
	}
	fmt.Fprintf(&b, "Question: %s\n", strings.TrimSpace(question))
	b.WriteString("Answer in a few sentences.")
	return b.String()
}

