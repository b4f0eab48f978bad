package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"

	"brandintel/internal/dataset"
	"brandintel/internal/repository"
)

// SimulatorService generates simulated AI-assistant interactions to build or
// extend the dataset. Responses wrap brand names in **bold** markers so the
// markup extraction strategy can recover them.
type SimulatorService struct {
	repo   *repository.DatasetRepo
	client *openai.Client
}

func NewSimulatorService(repo *repository.DatasetRepo, apiKey string) *SimulatorService {
	return &SimulatorService{
		repo:   repo,
		client: openai.NewClient(apiKey),
	}
}

// GeneratePrompts asks the model for prompts a user in the given country would
// most likely type when shopping the category.
func (s *SimulatorService) GeneratePrompts(ctx context.Context, category, country string) ([]string, error) {
	systemPrompt := `
You are given a product or service category and a country. Produce the 5 prompts a
consumer in that country is most likely to type into an AI assistant when deciding
what to buy or use in that category.

Output Format - Strict JSON Array:
Return only a JSON array of strings - no markdown, no explanations, no extra text.
Example:

["Prompt 1", "Prompt 2", "Prompt 3", "Prompt 4", "Prompt 5"]

Rules:
- Prompts must ask for recommendations, comparisons, or "best of" lists in the category.
- Do not name any specific brand in the prompts.
- Always return exactly 5 prompts - no more, no less.
`

	userPrompt := "Category: " + category + "\nCountry: " + country

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []openai.ChatCompletionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens: 200,
	})
	if err != nil {
		return nil, fmt.Errorf("openai error: %w", err)
	}

	content := resp.Choices[0].Message.Content
	var prompts []string
	if err := json.Unmarshal([]byte(content), &prompts); err != nil {
		return nil, fmt.Errorf("invalid json from model: %w", err)
	}

	return prompts, nil
}

// SimulateResponse produces one simulated assistant answer for the prompt, in
// the voice of the named AI platform, for the given country.
func (s *SimulatorService) SimulateResponse(ctx context.Context, prompt, country, platform string) (string, error) {
	systemPrompt := `
You simulate the answer an AI assistant gives to a consumer recommendation prompt.

Follow these rules strictly:

1. Answer in the context of the country provided, like a professional analyst
   summarizing for a general audience.
2. Recommend 2-5 real brands relevant to the prompt and wrap every brand name in
   double asterisks, e.g. **Acme**. Only brand names get this markup.
3. Back important claims with a citation in parentheses, e.g. (source: Reuters).
4. Keep the answer under 200 words. Return only the answer text.
`

	userPrompt := fmt.Sprintf("Platform: %s\nCountry: %s\nPrompt: %s", platform, country, prompt)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []openai.ChatCompletionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens: 400,
	})
	if err != nil {
		return "", fmt.Errorf("openai error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("openai returned empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// SimulateRecords generates one full response record per prompt.
func (s *SimulatorService) SimulateRecords(ctx context.Context, category, country, platform, criteria string, prompts []string) ([]dataset.ResponseRecord, error) {
	day := time.Now().UTC().Truncate(24 * time.Hour)

	var records []dataset.ResponseRecord
	for _, p := range prompts {
		text, err := s.SimulateResponse(ctx, p, country, platform)
		if err != nil {
			return nil, err
		}
		records = append(records, dataset.ResponseRecord{
			ID:       uuid.NewString(),
			Date:     day,
			Category: category,
			Country:  country,
			Platform: platform,
			Criteria: criteria,
			Prompt:   p,
			Response: text,
		})
	}
	return records, nil
}

// StoreRecords persists generated records when Postgres is configured.
func (s *SimulatorService) StoreRecords(ctx context.Context, records []dataset.ResponseRecord) error {
	if s.repo == nil {
		return errors.New("dataset persistence is not configured")
	}
	return s.repo.StoreRecords(ctx, records)
}
