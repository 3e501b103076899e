// internal/domain/exercise.go
package domain

// Exercise represents a single catalog entry in the exercise library.
// The catalog is reference data: it is seeded once and never mutated by
// the generation pipeline. IDs are stable integers assigned at seed time.
type Exercise struct {
	ID          int    `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	MuscleGroup string `bson:"muscleGroup" json:"muscle_group"` // e.g., "Chest", "Legs", "Back"
	Equipment   string `bson:"equipment,omitempty" json:"equipment,omitempty"`
}
