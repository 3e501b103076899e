package service

import (
	"testing"

	"alcyxob/workout-vibe/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCandidatesFiltersByEquipment(t *testing.T) {
	catalog := []domain.Exercise{
		{ID: 1, Name: "Dumbbell Squat", MuscleGroup: "Legs", Equipment: "Dumbbells"},
		{ID: 2, Name: "Bench Press", MuscleGroup: "Chest", Equipment: "Barbell"},
	}

	got := SelectCandidates("quick dumbbell workout", catalog)

	require.Len(t, got, 1)
	assert.Equal(t, "Dumbbell Squat", got[0].Name)
}

func TestSelectCandidatesOrSemantics(t *testing.T) {
	catalog := []domain.Exercise{
		{ID: 1, Name: "Bench Press", MuscleGroup: "Chest", Equipment: "Barbell"},
		{ID: 2, Name: "Dumbbell Squat", MuscleGroup: "Legs", Equipment: "Dumbbells"},
		{ID: 3, Name: "Leg Press", MuscleGroup: "Legs", Equipment: "Machine"},
		{ID: 4, Name: "Pull-up", MuscleGroup: "Back", Equipment: "Bodyweight"},
	}

	// "chest" matches group Chest; "dumbbells" matches equipment Dumbbells.
	// Either match qualifies an exercise.
	got := SelectCandidates("chest work with dumbbells", catalog)

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
}

func TestSelectCandidatesPreservesCatalogOrderAndDedups(t *testing.T) {
	catalog := []domain.Exercise{
		{ID: 5, Name: "Dumbbell Bench Press", MuscleGroup: "Chest", Equipment: "Dumbbells"},
		{ID: 3, Name: "Bench Press", MuscleGroup: "Chest", Equipment: "Barbell"},
		{ID: 3, Name: "Bench Press", MuscleGroup: "Chest", Equipment: "Barbell"},
	}

	// ID 5 matches on both group and equipment but must appear once, and
	// results keep catalog order even when ids are not sorted.
	got := SelectCandidates("chest day with dumbbells", catalog)

	require.Len(t, got, 2)
	assert.Equal(t, []int{5, 3}, []int{got[0].ID, got[1].ID})
}

func TestSelectCandidatesExactMatchOnDimensions(t *testing.T) {
	catalog := []domain.Exercise{
		{ID: 1, Name: "Smith Squat", MuscleGroup: "Legs", Equipment: "Smith Machine"},
		{ID: 2, Name: "Leg Extension", MuscleGroup: "Legs", Equipment: "Machine"},
	}

	// "machine" extracts only the Machine term. Equipment comparison is
	// exact, so the Smith Machine exercise does not pass even though its
	// value contains "Machine".
	got := SelectCandidates("machine work", catalog)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestSelectCandidatesDiverseFallback(t *testing.T) {
	catalog := []domain.Exercise{
		{ID: 1, Name: "Bench Press", MuscleGroup: "Chest", Equipment: "Barbell"},
		{ID: 2, Name: "Incline Press", MuscleGroup: "Chest", Equipment: "Barbell"},
		{ID: 3, Name: "Fly", MuscleGroup: "Chest", Equipment: "Dumbbells"},
		{ID: 4, Name: "Dips", MuscleGroup: "Chest", Equipment: "Bodyweight"},
		{ID: 5, Name: "Deadlift", MuscleGroup: "Back", Equipment: "Barbell"},
		{ID: 6, Name: "Squat", MuscleGroup: "Legs", Equipment: "Barbell"},
		{ID: 7, Name: "Lunge", MuscleGroup: "Legs", Equipment: "Dumbbells"},
	}

	// Description mentions neither a group nor equipment, so the selector
	// falls back to a diverse cross-group subset: at most 3 per group, in
	// first-appearance group order.
	got := SelectCandidates("something for tomorrow morning", catalog)

	ids := make([]int, len(got))
	for i, ex := range got {
		ids[i] = ex.ID
	}
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, ids)
}

func TestSelectCandidatesEmptyCatalog(t *testing.T) {
	assert.Empty(t, SelectCandidates("chest day", nil))
	assert.Empty(t, SelectCandidates("anything at all", nil))
}
