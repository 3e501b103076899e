package generation

import (
	"alcyxob/workout-vibe/internal/domain"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

const (
	openAIAPIURL       = "https://api.openai.com/v1/chat/completions"
	openAIDefaultModel = "gpt-4-turbo"
)

// openAIGenerator implements Generator over the OpenAI chat completions API.
type openAIGenerator struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func newOpenAIGenerator(apiKey, model string, httpClient *http.Client) *openAIGenerator {
	if model == "" {
		model = openAIDefaultModel
	}
	return &openAIGenerator{apiKey: apiKey, model: model, httpClient: httpClient}
}

type openAIRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature,omitempty"`
	MaxTokens      int           `json:"max_tokens,omitempty"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (g *openAIGenerator) Generate(ctx context.Context, input Input, exemplars []Exemplar) (domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan

	if g.apiKey == "" {
		return plan, fmt.Errorf("%w: OpenAI API key is not configured", ErrUnavailable)
	}

	messages, err := buildMessages(input, exemplars)
	if err != nil {
		return plan, err
	}

	reqBody := openAIRequest{
		Model:       g.model,
		Messages:    append([]chatMessage{{Role: "system", Content: systemPrompt}}, messages...),
		Temperature: 0.7,
		MaxTokens:   4096,
		ResponseFormat: &struct {
			Type string `json:"type"`
		}{Type: "json_object"},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return plan, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIAPIURL, bytes.NewReader(jsonData))
	if err != nil {
		return plan, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return plan, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return plan, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return plan, fmt.Errorf("%w: openai returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var apiResp openAIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return plan, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if apiResp.Error != nil {
		return plan, fmt.Errorf("%w: %s", ErrUnavailable, apiResp.Error.Message)
	}
	if len(apiResp.Choices) == 0 {
		return plan, fmt.Errorf("%w: empty completion", ErrInvalidPlan)
	}

	return parsePlan(apiResp.Choices[0].Message.Content)
}
