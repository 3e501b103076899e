// internal/domain/workout.go
package domain

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutRequest is the ephemeral input to plan synthesis. It is built per
// invocation and never persisted.
type WorkoutRequest struct {
	Description  string          `json:"description"`
	GymEquipment []EquipmentItem `json:"gym_equipment,omitempty"`
}

// Reps accepts both a bare number and a range string ("8-12") from the
// generator. Stored and rendered as a string either way.
type Reps string

func (r *Reps) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Reps(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = Reps(n.String())
	return nil
}

// PlannedExercise is one exercise slot inside a generated plan.
type PlannedExercise struct {
	Name        string `bson:"name" json:"name"`
	MuscleGroup string `bson:"muscleGroup,omitempty" json:"muscle_group,omitempty"`
	Equipment   string `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Sets        int    `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps        Reps   `bson:"reps,omitempty" json:"reps,omitempty"`
}

// WorkoutPlan is the structured output of plan synthesis. It is held
// transiently until the caller confirms persistence, at which point an
// immutable copy is embedded in a WorkoutRecord.
type WorkoutPlan struct {
	Title       string            `bson:"title" json:"title"`
	Description string            `bson:"description" json:"description"`
	Exercises   []PlannedExercise `bson:"exercises" json:"exercises"`
	SetsAndReps []string          `bson:"setsAndReps" json:"sets_and_reps"`
	RestTimes   []string          `bson:"restTimes,omitempty" json:"rest_times,omitempty"`
	Notes       string            `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutRecord is a persisted, confirmed plan. The embedded plan is a
// snapshot: later catalog changes must not alter historical records.
// Records are never updated after creation.
type WorkoutRecord struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Date        time.Time           `bson:"date" json:"date"` // assigned at persistence time
	GymID       *primitive.ObjectID `bson:"gymId,omitempty" json:"gymId,omitempty"`
	Plan        WorkoutPlan         `bson:"plan" json:"plan"`
}

// SetLogEntry is one completed-set execution event tied to a workout
// record. Entries are append-only.
type SetLogEntry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutID    primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	ExerciseName string             `bson:"exerciseName" json:"exerciseName"`
	SetNumber    int                `bson:"setNumber" json:"setNumber"`
	Reps         *int               `bson:"reps,omitempty" json:"reps,omitempty"`
	Weight       *float64           `bson:"weight,omitempty" json:"weight,omitempty"`
	RestTime     *int               `bson:"restTime,omitempty" json:"restTime,omitempty"` // seconds
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
}
