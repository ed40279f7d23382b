package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"loan-prepay/config"
	"loan-prepay/domain"
)

// AdvisorService writes a short explanation of a refinance recommendation.
// It asks an OpenAI-compatible chat endpoint when an API key is configured
// and falls back to a fixed template otherwise or on any failure.
type AdvisorService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
	logger     *zap.Logger
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

const advisorSystemPrompt = "You are a loan advisor. You explain prepayment and refinance " +
	"decisions in plain language, quote the numbers you are given exactly and never invent new ones."

func NewAdvisorService(cfg config.AdvisorConfig, logger *zap.Logger) *AdvisorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisorService{
		apiKey:  cfg.APIKey,
		apiURL:  cfg.URL,
		model:   cfg.Model,
		enabled: cfg.APIKey != "",
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// ExplainRefinance explains why result.BestOption was chosen.
func (s *AdvisorService) ExplainRefinance(
	ctx context.Context,
	input domain.RefinanceInput,
	result domain.RefinanceResult,
) string {
	if !s.enabled {
		return s.fallbackRefinanceExplanation(input, result)
	}

	prompt := fmt.Sprintf(`Explain this loan decision in 3-4 sentences.

CURRENT LOAN:
- Outstanding principal: %.2f
- Current annual rate: %.2f%%
- EMI: %.2f for %d more months

OPTIONS (total cost from today):
%s
RECOMMENDED: %s, saving %.2f compared with staying on the current loan.

Say why the recommended option wins and what the borrower gives up with the alternatives.`,
		result.OutstandingPrincipal, input.AnnualRate, result.EMI, result.RemainingTenure,
		formatOptions(result), optionName(result.BestOption), result.MaxSavings)

	explanation, err := s.callLLM(ctx, prompt)
	if err != nil {
		s.logger.Warn("advisor call failed, using template", zap.Error(err))
		return s.fallbackRefinanceExplanation(input, result)
	}
	return explanation
}

func (s *AdvisorService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: s.model,
		Messages: []Message{
			{Role: "system", Content: advisorSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}
	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return strings.TrimSpace(openAIResp.Choices[0].Message.Content), nil
}

func formatOptions(result domain.RefinanceResult) string {
	var b strings.Builder
	for _, o := range []domain.RefinanceOption{result.Stay, result.PrepayOnly, result.RefinanceOnly, result.PrepayAndRefinance} {
		fmt.Fprintf(&b, "- %s: EMI %.2f for %d months, total %.2f (%s)\n",
			optionName(o.Label), o.EMI, o.TenureMonths, o.TotalCost, o.Outcome.Status)
	}
	return b.String()
}

func optionName(label string) string {
	switch label {
	case "A":
		return "Prepay only"
	case "B":
		return "Refinance only"
	case "C":
		return "Prepay and refinance"
	}
	return "Stay with the current loan"
}

func (s *AdvisorService) fallbackRefinanceExplanation(
	input domain.RefinanceInput,
	result domain.RefinanceResult,
) string {
	switch result.BestOption {
	case "A":
		return fmt.Sprintf("Prepaying %.2f at your current rate of %.2f%% clears the loan in %d months instead of %d and saves %.2f. Refinancing does not beat that.",
			input.Prepayment, input.AnnualRate, result.PrepayOnly.TenureMonths, result.RemainingTenure, result.MaxSavings)
	case "B":
		return fmt.Sprintf("Refinancing at %.2f%% brings your EMI to %.2f over %d months and saves %.2f in total, including the %.2f refinance cost.",
			input.NewAnnualRate, result.RefinanceOnly.EMI, result.RefinanceOnly.TenureMonths, result.MaxSavings, input.RefinanceCost)
	case "C":
		return fmt.Sprintf("Prepaying %.2f and then refinancing at %.2f%% gives an EMI of %.2f over %d months and saves %.2f, more than either step alone.",
			input.Prepayment, input.NewAnnualRate, result.PrepayAndRefinance.EMI, result.PrepayAndRefinance.TenureMonths, result.MaxSavings)
	default:
		return fmt.Sprintf("Staying on your current loan at an EMI of %.2f for %d months is the cheapest choice; none of the alternatives lowers the total cost.",
			result.EMI, result.RemainingTenure)
	}
}
