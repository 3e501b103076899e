package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMuscleGroups(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single group",
			text: "I want to train my chest today",
			want: []string{"Chest"},
		},
		{
			name: "multiple groups follow vocabulary order",
			text: "legs then chest then back please",
			want: []string{"Chest", "Back", "Legs"},
		},
		{
			name: "case insensitive",
			text: "SHOULDERS and TRICEPS",
			want: []string{"Shoulders", "Triceps"},
		},
		{
			name: "substring match without word boundary",
			text: "training with firearms",
			want: []string{"Arms"},
		},
		{
			name: "no groups mentioned",
			text: "quick dumbbell workout",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractMuscleGroups(tc.text))
		})
	}
}

func TestExtractEquipment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single term",
			text: "quick dumbbell workout with dumbbells",
			want: []string{"Dumbbells"},
		},
		{
			name: "singular form matches plural vocabulary entry",
			text: "quick dumbbell workout",
			want: []string{"Dumbbells"},
		},
		{
			name: "multi-word term",
			text: "I only have a resistance band at home",
			want: []string{"Resistance Band"},
		},
		{
			name: "smith machine also matches machine",
			text: "smith machine session",
			want: []string{"Machine", "Smith Machine"},
		},
		{
			name: "no equipment mentioned",
			text: "a hard leg day",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractEquipment(tc.text))
		})
	}
}

// Extraction must not mutate anything and must be stable across calls with
// the same input.
func TestExtractTermsIsPure(t *testing.T) {
	text := "chest and back with a barbell"
	first := ExtractMuscleGroups(text)
	second := ExtractMuscleGroups(text)
	assert.Equal(t, first, second)
}
