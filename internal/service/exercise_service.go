package service

import (
	"alcyxob/workout-vibe/internal/domain"
	"alcyxob/workout-vibe/internal/repository"
	"alcyxob/workout-vibe/internal/seed"
	"context"
)

// ExerciseService exposes the read-only exercise catalog plus the one-time
// seeding operation.
type ExerciseService interface {
	AllExercises(ctx context.Context) ([]domain.Exercise, error)
	ExercisesByMuscleGroup(ctx context.Context, muscleGroup string) ([]domain.Exercise, error)
	ExercisesByEquipment(ctx context.Context, equipment string) ([]domain.Exercise, error)
	SearchExercises(ctx context.Context, query string) ([]domain.Exercise, error)
	SeedCatalog(ctx context.Context, force bool) (int, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

func (s *exerciseService) AllExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetAll(ctx)
}

func (s *exerciseService) ExercisesByMuscleGroup(ctx context.Context, muscleGroup string) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetByMuscleGroup(ctx, muscleGroup)
}

func (s *exerciseService) ExercisesByEquipment(ctx context.Context, equipment string) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetByEquipment(ctx, equipment)
}

func (s *exerciseService) SearchExercises(ctx context.Context, query string) ([]domain.Exercise, error) {
	return s.exerciseRepo.Search(ctx, query)
}

// SeedCatalog loads the built-in exercise catalog. A populated catalog is
// left alone unless force is set, in which case it is wiped and reseeded
// with the same stable ids. Returns the number of exercises inserted.
func (s *exerciseService) SeedCatalog(ctx context.Context, force bool) (int, error) {
	count, err := s.exerciseRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		if !force {
			return 0, nil
		}
		if err := s.exerciseRepo.DeleteAll(ctx); err != nil {
			return 0, err
		}
	}

	exercises := seed.Exercises()
	if err := s.exerciseRepo.InsertMany(ctx, exercises); err != nil {
		return 0, err
	}
	return len(exercises), nil
}
