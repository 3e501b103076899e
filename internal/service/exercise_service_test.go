package service

import (
	"context"
	"testing"

	"alcyxob/workout-vibe/internal/domain"
	"alcyxob/workout-vibe/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalogPopulatesEmptyStore(t *testing.T) {
	repo := &fakeExerciseRepo{}
	svc := NewExerciseService(repo)

	inserted, err := svc.SeedCatalog(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, len(seed.Exercises()), inserted)
	assert.Len(t, repo.exercises, inserted)
}

func TestSeedCatalogSkipsPopulatedStore(t *testing.T) {
	repo := &fakeExerciseRepo{exercises: []domain.Exercise{
		{ID: 99, Name: "Custom Exercise", MuscleGroup: "Legs", Equipment: "Barbell"},
	}}
	svc := NewExerciseService(repo)

	inserted, err := svc.SeedCatalog(context.Background(), false)
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.Len(t, repo.exercises, 1)
}

func TestSeedCatalogForceReseeds(t *testing.T) {
	repo := &fakeExerciseRepo{exercises: []domain.Exercise{
		{ID: 99, Name: "Custom Exercise", MuscleGroup: "Legs", Equipment: "Barbell"},
	}}
	svc := NewExerciseService(repo)

	inserted, err := svc.SeedCatalog(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, len(seed.Exercises()), inserted)

	// The custom entry is gone; only the built-in catalog remains.
	assert.Len(t, repo.exercises, inserted)
	assert.Equal(t, 1, repo.exercises[0].ID)
}

// The catalog ids must be stable across seedings: exemplar and candidate
// passages reference exercises by id.
func TestSeedExercisesHaveStableSequentialIDs(t *testing.T) {
	exercises := seed.Exercises()
	require.NotEmpty(t, exercises)

	for i, ex := range exercises {
		assert.Equal(t, i+1, ex.ID)
		assert.NotEmpty(t, ex.Name)
		assert.NotEmpty(t, ex.MuscleGroup)
		assert.NotEmpty(t, ex.Equipment)
	}
}
