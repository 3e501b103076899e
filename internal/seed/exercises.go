// Package seed holds the built-in exercise catalog used to bootstrap a
// fresh installation. The catalog is reference data: ids are assigned once
// here and stay stable across reseeds.
package seed

import "alcyxob/workout-vibe/internal/domain"

type seedExercise struct {
	name        string
	muscleGroup string
	equipment   string
}

var catalog = []seedExercise{
	// Chest
	{"Bench Press", "Chest", "Barbell"},
	{"Incline Bench Press", "Chest", "Barbell"},
	{"Decline Bench Press", "Chest", "Barbell"},
	{"Dumbbell Fly", "Chest", "Dumbbells"},
	{"Push-Up", "Chest", "Bodyweight"},
	{"Cable Crossover", "Chest", "Cable Machine"},
	{"Chest Dip", "Chest", "Parallel Bars"},
	{"Landmine Press", "Chest", "Barbell"},
	{"Machine Chest Press", "Chest", "Machine"},
	{"Svend Press", "Chest", "Weight Plate"},

	// Back
	{"Deadlift", "Back", "Barbell"},
	{"Pull-Up", "Back", "Bodyweight"},
	{"Bent Over Row", "Back", "Barbell"},
	{"Lat Pulldown", "Back", "Cable Machine"},
	{"T-Bar Row", "Back", "T-Bar"},
	{"Single-Arm Dumbbell Row", "Back", "Dumbbell"},
	{"Seated Cable Row", "Back", "Cable Machine"},
	{"Face Pull", "Back", "Cable Machine"},
	{"Hyperextension", "Back", "Hyperextension Bench"},
	{"Rack Pull", "Back", "Barbell"},

	// Legs
	{"Squat", "Legs", "Barbell"},
	{"Leg Press", "Legs", "Machine"},
	{"Lunge", "Legs", "Dumbbells"},
	{"Romanian Deadlift", "Legs", "Barbell"},
	{"Leg Extension", "Legs", "Machine"},
	{"Leg Curl", "Legs", "Machine"},
	{"Calf Raise", "Legs", "Machine"},
	{"Hack Squat", "Legs", "Machine"},
	{"Bulgarian Split Squat", "Legs", "Dumbbells"},
	{"Glute Bridge", "Legs", "Barbell"},

	// Shoulders
	{"Overhead Press", "Shoulders", "Barbell"},
	{"Lateral Raise", "Shoulders", "Dumbbells"},
	{"Front Raise", "Shoulders", "Dumbbells"},
	{"Reverse Fly", "Shoulders", "Dumbbells"},
	{"Arnold Press", "Shoulders", "Dumbbells"},
	{"Upright Row", "Shoulders", "Barbell"},
	{"Face Pull", "Shoulders", "Cable Machine"},
	{"Shoulder Press", "Shoulders", "Machine"},
	{"Push Press", "Shoulders", "Barbell"},
	{"Shrug", "Shoulders", "Dumbbells"},

	// Arms
	{"Bicep Curl", "Arms", "Barbell"},
	{"Hammer Curl", "Arms", "Dumbbells"},
	{"Tricep Extension", "Arms", "Cable Machine"},
	{"Skull Crusher", "Arms", "EZ Bar"},
	{"Concentration Curl", "Arms", "Dumbbell"},
	{"Close-Grip Bench Press", "Arms", "Barbell"},
	{"Tricep Dip", "Arms", "Parallel Bars"},
	{"Preacher Curl", "Arms", "EZ Bar"},
	{"Cable Curl", "Arms", "Cable Machine"},
	{"Overhead Tricep Extension", "Arms", "Dumbbell"},

	// Core
	{"Crunch", "Core", "Bodyweight"},
	{"Plank", "Core", "Bodyweight"},
	{"Russian Twist", "Core", "Weight Plate"},
	{"Leg Raise", "Core", "Bodyweight"},
	{"Ab Rollout", "Core", "Ab Wheel"},
	{"Mountain Climber", "Core", "Bodyweight"},
	{"Bicycle Crunch", "Core", "Bodyweight"},
	{"Side Plank", "Core", "Bodyweight"},
	{"Cable Woodchopper", "Core", "Cable Machine"},
	{"Hanging Leg Raise", "Core", "Pull-Up Bar"},
}

// Exercises returns the seed catalog with ids assigned in catalog order,
// starting at 1.
func Exercises() []domain.Exercise {
	exercises := make([]domain.Exercise, len(catalog))
	for i, e := range catalog {
		exercises[i] = domain.Exercise{
			ID:          i + 1,
			Name:        e.name,
			MuscleGroup: e.muscleGroup,
			Equipment:   e.equipment,
		}
	}
	return exercises
}
