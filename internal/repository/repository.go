package repository

import (
	"alcyxob/workout-vibe/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrInsertFailed = RepositoryError("insert failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseRepository is the read-mostly accessor over the exercise catalog.
// Write access exists only for seeding.
type ExerciseRepository interface {
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	GetByMuscleGroup(ctx context.Context, muscleGroup string) ([]domain.Exercise, error)
	GetByEquipment(ctx context.Context, equipment string) ([]domain.Exercise, error)
	Search(ctx context.Context, query string) ([]domain.Exercise, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, exercises []domain.Exercise) error
	DeleteAll(ctx context.Context) error
}

// GymRepository defines the interface for interacting with gym data.
type GymRepository interface {
	Create(ctx context.Context, gym *domain.Gym) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Gym, error)
	GetAll(ctx context.Context) ([]domain.Gym, error)
}

// WorkoutRepository persists confirmed workout plans and their per-set
// execution logs. Records are insert-only; LogSet must verify that the
// referenced workout exists before appending.
type WorkoutRepository interface {
	Save(ctx context.Context, record *domain.WorkoutRecord) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutRecord, error)
	Recent(ctx context.Context, limit int64) ([]domain.WorkoutRecord, error)
	LogSet(ctx context.Context, entry *domain.SetLogEntry) (primitive.ObjectID, error)
	LogsByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.SetLogEntry, error)
}
