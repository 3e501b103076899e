package service

import (
	"alcyxob/workout-vibe/internal/domain"
	"alcyxob/workout-vibe/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrInvalidSetNumber = errors.New("set number must be at least 1")
	ErrValidationFailed = errors.New("workout validation failed")
)

const defaultRecentLimit = 10

// SetLogInput carries one completed set. Optional measurements are
// pointers so "not recorded" stays distinct from zero.
type SetLogInput struct {
	ExerciseName string
	SetNumber    int
	Reps         *int
	Weight       *float64
	RestTime     *int
	Notes        string
}

// WorkoutService persists confirmed plans and their execution logs.
type WorkoutService interface {
	SaveWorkout(ctx context.Context, plan *domain.WorkoutPlan, gymID *primitive.ObjectID) (primitive.ObjectID, error)
	GetWorkout(ctx context.Context, workoutID primitive.ObjectID) (*domain.WorkoutRecord, error)
	RecentWorkouts(ctx context.Context, limit int64) ([]domain.WorkoutRecord, error)
	LogSet(ctx context.Context, workoutID primitive.ObjectID, input SetLogInput) (primitive.ObjectID, error)
	WorkoutLogs(ctx context.Context, workoutID primitive.ObjectID) ([]domain.SetLogEntry, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
	}
}

// SaveWorkout stores an immutable snapshot of a confirmed plan and
// returns the new record's id. The record's date is assigned by the
// repository at persistence time.
func (s *workoutService) SaveWorkout(ctx context.Context, plan *domain.WorkoutPlan, gymID *primitive.ObjectID) (primitive.ObjectID, error) {
	if plan == nil {
		return primitive.NilObjectID, ErrValidationFailed
	}
	if err := ValidatePlan(plan); err != nil {
		return primitive.NilObjectID, err
	}

	record := &domain.WorkoutRecord{
		Title:       plan.Title,
		Description: plan.Description,
		GymID:       gymID,
		Plan:        *plan, // snapshot, not a live reference
	}
	return s.workoutRepo.Save(ctx, record)
}

// GetWorkout retrieves a single workout record.
func (s *workoutService) GetWorkout(ctx context.Context, workoutID primitive.ObjectID) (*domain.WorkoutRecord, error) {
	record, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return record, nil
}

// RecentWorkouts retrieves up to limit records, newest first.
func (s *workoutService) RecentWorkouts(ctx context.Context, limit int64) ([]domain.WorkoutRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.workoutRepo.Recent(ctx, limit)
}

// LogSet appends one set log entry for an existing workout. Referential
// integrity is enforced by the repository; an unknown workout id maps to
// ErrWorkoutNotFound and no entry is created.
func (s *workoutService) LogSet(ctx context.Context, workoutID primitive.ObjectID, input SetLogInput) (primitive.ObjectID, error) {
	if input.ExerciseName == "" {
		return primitive.NilObjectID, ErrValidationFailed
	}
	if input.SetNumber < 1 {
		return primitive.NilObjectID, ErrInvalidSetNumber
	}

	entry := &domain.SetLogEntry{
		WorkoutID:    workoutID,
		ExerciseName: input.ExerciseName,
		SetNumber:    input.SetNumber,
		Reps:         input.Reps,
		Weight:       input.Weight,
		RestTime:     input.RestTime,
		Notes:        input.Notes,
	}

	logID, err := s.workoutRepo.LogSet(ctx, entry)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return primitive.NilObjectID, ErrWorkoutNotFound
		}
		return primitive.NilObjectID, err
	}
	return logID, nil
}

// WorkoutLogs retrieves all set logs for a workout ordered by
// (exercise name, set number) ascending.
func (s *workoutService) WorkoutLogs(ctx context.Context, workoutID primitive.ObjectID) ([]domain.SetLogEntry, error) {
	if _, err := s.GetWorkout(ctx, workoutID); err != nil {
		return nil, err
	}
	return s.workoutRepo.LogsByWorkoutID(ctx, workoutID)
}
