package generation

import (
	"alcyxob/workout-vibe/internal/domain"
	"encoding/json"
	"fmt"
	"strings"
)

// chatMessage is one turn of a provider conversation. Both providers use
// the same role/content structure.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// systemPrompt declares the output contract. The generator must answer
// with a single JSON object matching the WorkoutPlan shape.
const systemPrompt = `You are a workout planning assistant. Given a workout request, the equipment available at the user's gym, and a list of candidate exercises, design a workout plan.

Respond with a single JSON object and nothing else, matching exactly this shape:
{
  "title": "string",
  "description": "string",
  "exercises": [{"name": "string", "muscle_group": "string", "equipment": "string", "sets": 3, "reps": "8-12"}],
  "sets_and_reps": ["string"],
  "rest_times": ["string"],
  "notes": "string"
}

Prefer exercises from the candidate list and only use equipment the gym actually has.`

// buildMessages renders the exemplar pairs as prior conversation turns
// followed by the real request. Exemplars teach the shape; the model is
// expected to imitate the assistant turns.
func buildMessages(input Input, exemplars []Exemplar) ([]chatMessage, error) {
	messages := make([]chatMessage, 0, 2*len(exemplars)+1)

	for _, ex := range exemplars {
		planJSON, err := json.Marshal(ex.Plan)
		if err != nil {
			return nil, fmt.Errorf("marshal exemplar plan: %w", err)
		}
		messages = append(messages,
			chatMessage{Role: "user", Content: renderRequest(ex.Request.Description, ex.Request.GymEquipment, nil)},
			chatMessage{Role: "assistant", Content: string(planJSON)},
		)
	}

	messages = append(messages, chatMessage{
		Role:    "user",
		Content: renderRequest(input.Description, input.Equipment, input.Candidates),
	})
	return messages, nil
}

// renderRequest formats one workout request as prompt text. Candidate
// lines keep the catalog passage format so exemplar and live turns look
// alike to the model.
func renderRequest(description string, equipment []domain.EquipmentItem, candidates []domain.Exercise) string {
	var sb strings.Builder

	sb.WriteString("Workout request: ")
	sb.WriteString(description)
	sb.WriteString("\n\nAvailable gym equipment:\n")
	if len(equipment) == 0 {
		sb.WriteString("- (no equipment list provided)\n")
	}
	for _, item := range equipment {
		fmt.Fprintf(&sb, "- %s (%s), quantity %d\n", item.Name, item.Category, item.Quantity)
	}

	if len(candidates) > 0 {
		sb.WriteString("\nCandidate exercises:\n")
		for _, ex := range candidates {
			fmt.Fprintf(&sb, "Exercise ID: %d, Name: %s, Muscle Group: %s, Equipment: %s\n",
				ex.ID, ex.Name, ex.MuscleGroup, ex.Equipment)
		}
	}

	return sb.String()
}

// parsePlan decodes a provider completion into a WorkoutPlan. Models wrap
// JSON in code fences or prose often enough that we cut down to the
// outermost object before unmarshalling.
func parsePlan(raw string) (domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return plan, fmt.Errorf("%w: no JSON object in response", ErrInvalidPlan)
	}

	if err := json.Unmarshal([]byte(raw[start:end+1]), &plan); err != nil {
		return plan, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	return plan, nil
}
