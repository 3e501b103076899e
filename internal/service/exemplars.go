package service

import (
	"alcyxob/workout-vibe/internal/domain"
	"alcyxob/workout-vibe/internal/generation"
)

// ExemplarVersion identifies the current exemplar set. Bump when the pairs
// change so regressions in generated plan shape can be traced to it.
const ExemplarVersion = 2

// Exemplars returns the fixed (request, plan) pairs attached to every
// generation call. The two pairs span distinct intents, a quick full-body
// session and a hypertrophy split, to bias the generator toward varied
// plan shapes. Each plan conforms exactly to the WorkoutPlan shape: the
// exemplars ARE the contract the generator is asked to imitate.
func Exemplars() []generation.Exemplar {
	return []generation.Exemplar{
		{
			Request: domain.WorkoutRequest{
				Description: "I want a quick full body workout with dumbbells",
				GymEquipment: []domain.EquipmentItem{
					{Name: "Dumbbells", Category: "Free Weights", Quantity: 10},
					{Name: "Bench", Category: "Free Weights", Quantity: 2},
				},
			},
			Plan: domain.WorkoutPlan{
				Title:       "Quick Full Body Dumbbell Workout",
				Description: "A time-efficient full body workout using only dumbbells, perfect for building strength and endurance.",
				Exercises: []domain.PlannedExercise{
					{Name: "Dumbbell Squat", MuscleGroup: "Legs", Equipment: "Dumbbells", Sets: 3, Reps: "12"},
					{Name: "Dumbbell Bench Press", MuscleGroup: "Chest", Equipment: "Dumbbells", Sets: 3, Reps: "12"},
					{Name: "Dumbbell Row", MuscleGroup: "Back", Equipment: "Dumbbells", Sets: 3, Reps: "12"},
					{Name: "Lateral Raise", MuscleGroup: "Shoulders", Equipment: "Dumbbells", Sets: 3, Reps: "12"},
					{Name: "Bicep Curl", MuscleGroup: "Arms", Equipment: "Dumbbells", Sets: 3, Reps: "12"},
					{Name: "Overhead Tricep Extension", MuscleGroup: "Arms", Equipment: "Dumbbells", Sets: 3, Reps: "12"},
				},
				SetsAndReps: []string{"3 sets of 12 reps for each exercise"},
				RestTimes:   []string{"60 seconds between sets", "90 seconds between exercises"},
				Notes:       "Start with a 5-minute warm-up. Use a weight that challenges you by the last rep. Focus on proper form rather than heavy weight.",
			},
		},
		{
			Request: domain.WorkoutRequest{
				Description: "Help me design a chest and triceps workout for hypertrophy",
				GymEquipment: []domain.EquipmentItem{
					{Name: "Barbell", Category: "Free Weights", Quantity: 4},
					{Name: "Bench", Category: "Free Weights", Quantity: 3},
					{Name: "Dumbbells", Category: "Free Weights", Quantity: 10},
					{Name: "Cable Machine", Category: "Machines", Quantity: 2},
					{Name: "Chest Press Machine", Category: "Machines", Quantity: 1},
				},
			},
			Plan: domain.WorkoutPlan{
				Title:       "Chest and Triceps Hypertrophy Workout",
				Description: "A targeted workout for chest and triceps with emphasis on muscular growth (hypertrophy).",
				Exercises: []domain.PlannedExercise{
					{Name: "Bench Press", MuscleGroup: "Chest", Equipment: "Barbell", Sets: 4, Reps: "8-12"},
					{Name: "Incline Bench Press", MuscleGroup: "Chest", Equipment: "Barbell", Sets: 4, Reps: "8-12"},
					{Name: "Dumbbell Fly", MuscleGroup: "Chest", Equipment: "Dumbbells", Sets: 3, Reps: "10-15"},
					{Name: "Cable Crossover", MuscleGroup: "Chest", Equipment: "Cable Machine", Sets: 3, Reps: "12-15"},
					{Name: "Skull Crusher", MuscleGroup: "Arms", Equipment: "EZ Bar", Sets: 4, Reps: "8-12"},
					{Name: "Tricep Extension", MuscleGroup: "Arms", Equipment: "Cable Machine", Sets: 3, Reps: "12-15"},
					{Name: "Close-Grip Bench Press", MuscleGroup: "Arms", Equipment: "Barbell", Sets: 3, Reps: "8-12"},
				},
				SetsAndReps: []string{
					"4 sets of 8-12 reps for compound movements",
					"3 sets of 10-15 reps for isolation exercises",
				},
				RestTimes: []string{
					"90-120 seconds between sets for compound exercises",
					"60 seconds between sets for isolation exercises",
				},
				Notes: "For hypertrophy, aim for moderate weight with higher volume. Focus on the mind-muscle connection and consider techniques like drop sets or supersets for advanced stimulus.",
			},
		},
	}
}
