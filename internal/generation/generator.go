// Package generation wraps the external text-generation capability behind a
// single interface: given a structured prompt and a fixed exemplar set,
// return a workout plan matching the declared shape, or fail. Provider
// choice (OpenAI or Anthropic) is configuration resolved at construction.
package generation

import (
	"alcyxob/workout-vibe/internal/config"
	"alcyxob/workout-vibe/internal/domain"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// --- Error Definitions ---
var (
	// ErrUnavailable means the generation capability could not be reached or
	// refused the call (missing credential, transport failure). Never retried
	// here; retry policy belongs to the caller's boundary.
	ErrUnavailable = errors.New("generation capability unavailable")

	// ErrInvalidPlan means generation succeeded transport-wise but the result
	// does not match the declared plan shape. Never auto-repaired: inventing
	// plan content would break the user's trust in what was generated.
	ErrInvalidPlan = errors.New("generated plan is invalid")
)

// Input is the structured generation request: the user's free-text
// description, the equipment available at the selected gym, and the
// candidate exercises the generator should choose from.
type Input struct {
	Description string
	Equipment   []domain.EquipmentItem
	Candidates  []domain.Exercise
}

// Exemplar is one fixed (request, plan) pair attached to every generation
// call to condition the output format and style.
type Exemplar struct {
	Request domain.WorkoutRequest
	Plan    domain.WorkoutPlan
}

// Generator is the single polymorphic generation capability.
type Generator interface {
	Generate(ctx context.Context, input Input, exemplars []Exemplar) (domain.WorkoutPlan, error)
}

const defaultGenerationTimeout = 60 * time.Second

// New creates a Generator for the configured provider.
func New(cfg config.GenerationConfig) (Generator, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultGenerationTimeout
	}
	httpClient := &http.Client{Timeout: timeout}

	switch strings.ToLower(cfg.Provider) {
	case "openai", "":
		return newOpenAIGenerator(cfg.APIKey, cfg.Model, httpClient), nil
	case "anthropic", "claude":
		return newAnthropicGenerator(cfg.APIKey, cfg.Model, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown generation provider %q", cfg.Provider)
	}
}
