package adapters

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/smartspend/backend/internal/application/adapter"
)

// GeminiService implements the adapter.InsightService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateInsight produces a short natural-language spending insight from the
// aggregated dashboard figures.
func (s *GeminiService) GenerateInsight(ctx context.Context, request *adapter.InsightRequest) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	insight, err := s.parseResponse(resp)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return insight, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.InsightRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance assistant. Given a user's monthly spending snapshot, write ONE short insight (at most two sentences) about their spending health.

RULES:
- Be concrete: reference the largest spending category or the runway figure.
- Be encouraging but honest. No greetings, no emojis, no bullet points.
- Respond with plain text only.

SNAPSHOT:
`)

	sb.WriteString(fmt.Sprintf("- Current balance: %s\n", request.Balance.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Daily burn rate: %s\n", request.BurnRate.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Days of runway: %s\n", request.DaysLeft.StringFixed(2)))

	sb.WriteString("- Spending this month by category:\n")
	categories := make([]string, 0, len(request.CategoryTotals))
	for category := range request.CategoryTotals {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", category, request.CategoryTotals[category].StringFixed(2)))
	}

	return sb.String()
}

// parseResponse extracts the insight text from the Gemini response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	textContent = strings.TrimSpace(textContent)
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return textContent, nil
}

// Ensure implementation satisfies the interface.
var _ adapter.InsightService = (*GeminiService)(nil)
