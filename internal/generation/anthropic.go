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
	anthropicAPIURL       = "https://api.anthropic.com/v1/messages"
	anthropicAPIVersion   = "2023-06-01"
	anthropicDefaultModel = "claude-3-sonnet-20240229"
)

// anthropicGenerator implements Generator over the Anthropic messages API.
type anthropicGenerator struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func newAnthropicGenerator(apiKey, model string, httpClient *http.Client) *anthropicGenerator {
	if model == "" {
		model = anthropicDefaultModel
	}
	return &anthropicGenerator{apiKey: apiKey, model: model, httpClient: httpClient}
}

type anthropicRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system,omitempty"`
	Messages  []chatMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *anthropicGenerator) Generate(ctx context.Context, input Input, exemplars []Exemplar) (domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan

	if g.apiKey == "" {
		return plan, fmt.Errorf("%w: Anthropic API key is not configured", ErrUnavailable)
	}

	messages, err := buildMessages(input, exemplars)
	if err != nil {
		return plan, err
	}

	reqBody := anthropicRequest{
		Model:     g.model,
		MaxTokens: 4096,
		System:    systemPrompt,
		Messages:  messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return plan, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicAPIURL, bytes.NewReader(jsonData))
	if err != nil {
		return plan, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", g.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicAPIVersion)
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
		return plan, fmt.Errorf("%w: anthropic returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return plan, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if apiResp.Error != nil {
		return plan, fmt.Errorf("%w: %s", ErrUnavailable, apiResp.Error.Message)
	}
	if len(apiResp.Content) == 0 || apiResp.Content[0].Text == "" {
		return plan, fmt.Errorf("%w: empty completion", ErrInvalidPlan)
	}

	return parsePlan(apiResp.Content[0].Text)
}
