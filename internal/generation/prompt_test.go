package generation

import (
	"context"
	"strings"
	"testing"

	"alcyxob/workout-vibe/internal/config"
	"alcyxob/workout-vibe/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generationConfig(provider string) config.GenerationConfig {
	return config.GenerationConfig{Provider: provider}
}

func TestParsePlan(t *testing.T) {
	raw := `{"title":"Leg Day","description":"Lower body.","exercises":[{"name":"Squat","muscle_group":"Legs","equipment":"Barbell","sets":3,"reps":"8"}],"sets_and_reps":["3x8"]}`

	plan, err := parsePlan(raw)
	require.NoError(t, err)
	assert.Equal(t, "Leg Day", plan.Title)
	require.Len(t, plan.Exercises, 1)
	assert.Equal(t, domain.Reps("8"), plan.Exercises[0].Reps)
}

func TestParsePlanStripsCodeFences(t *testing.T) {
	raw := "Here is your plan:\n```json\n" +
		`{"title":"Leg Day","description":"Lower body.","exercises":[],"sets_and_reps":[]}` +
		"\n```\nEnjoy!"

	plan, err := parsePlan(raw)
	require.NoError(t, err)
	assert.Equal(t, "Leg Day", plan.Title)
}

// Generators disagree on whether reps is a string or a number; both decode.
func TestParsePlanNumericReps(t *testing.T) {
	raw := `{"title":"T","description":"D","exercises":[{"name":"Squat","sets":3,"reps":12}],"sets_and_reps":["3x12"]}`

	plan, err := parsePlan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Exercises, 1)
	assert.Equal(t, domain.Reps("12"), plan.Exercises[0].Reps)
}

func TestParsePlanRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "no json here", "{broken", `{"title": }`} {
		_, err := parsePlan(raw)
		assert.ErrorIs(t, err, ErrInvalidPlan, "raw=%q", raw)
	}
}

func TestBuildMessagesRendersExemplarsAsTurns(t *testing.T) {
	exemplars := []Exemplar{
		{
			Request: domain.WorkoutRequest{Description: "full body with dumbbells"},
			Plan:    domain.WorkoutPlan{Title: "Full Body", Description: "D", SetsAndReps: []string{"3x12"}},
		},
		{
			Request: domain.WorkoutRequest{Description: "chest and triceps"},
			Plan:    domain.WorkoutPlan{Title: "Chest Day", Description: "D", SetsAndReps: []string{"4x8"}},
		},
	}
	input := Input{
		Description: "leg day",
		Equipment:   []domain.EquipmentItem{{Name: "Barbell", Category: "Free Weights", Quantity: 2}},
		Candidates:  []domain.Exercise{{ID: 7, Name: "Squat", MuscleGroup: "Legs", Equipment: "Barbell"}},
	}

	messages, err := buildMessages(input, exemplars)
	require.NoError(t, err)

	// Two turns per exemplar plus the live request.
	require.Len(t, messages, 5)
	assert.Equal(t, "user", messages[0].Role)
	assert.Equal(t, "assistant", messages[1].Role)
	assert.Contains(t, messages[1].Content, `"Full Body"`)
	assert.Equal(t, "user", messages[4].Role)

	// Candidate lines keep the catalog passage format.
	assert.Contains(t, messages[4].Content,
		"Exercise ID: 7, Name: Squat, Muscle Group: Legs, Equipment: Barbell")
	assert.Contains(t, messages[4].Content, "Barbell (Free Weights), quantity 2")
}

func TestRenderRequestWithoutEquipment(t *testing.T) {
	text := renderRequest("leg day", nil, nil)
	assert.True(t, strings.HasPrefix(text, "Workout request: leg day"))
	assert.Contains(t, text, "(no equipment list provided)")
	assert.NotContains(t, text, "Candidate exercises")
}

func TestNewSelectsProvider(t *testing.T) {
	gen, err := New(generationConfig("openai"))
	require.NoError(t, err)
	assert.IsType(t, &openAIGenerator{}, gen)

	gen, err = New(generationConfig(""))
	require.NoError(t, err)
	assert.IsType(t, &openAIGenerator{}, gen)

	gen, err = New(generationConfig("anthropic"))
	require.NoError(t, err)
	assert.IsType(t, &anthropicGenerator{}, gen)

	gen, err = New(generationConfig("claude"))
	require.NoError(t, err)
	assert.IsType(t, &anthropicGenerator{}, gen)

	_, err = New(generationConfig("bard"))
	assert.Error(t, err)
}

func TestGenerateWithoutAPIKey(t *testing.T) {
	for _, provider := range []string{"openai", "anthropic"} {
		gen, err := New(generationConfig(provider))
		require.NoError(t, err)

		_, err = gen.Generate(context.Background(), Input{Description: "leg day"}, nil)
		assert.ErrorIs(t, err, ErrUnavailable, "provider=%s", provider)
	}
}
