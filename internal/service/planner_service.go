package service

import (
	"alcyxob/workout-vibe/internal/domain"
	"alcyxob/workout-vibe/internal/generation"
	"alcyxob/workout-vibe/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
)

// --- Error Definitions ---
var (
	ErrEmptyDescription = errors.New("workout description is required")
)

// PlannerService turns a free-text request plus a gym's equipment list
// into a validated workout plan.
type PlannerService interface {
	Synthesize(ctx context.Context, description string, equipment []domain.EquipmentItem) (*domain.WorkoutPlan, error)
}

// plannerService implements the PlannerService interface.
type plannerService struct {
	exerciseRepo repository.ExerciseRepository
	generator    generation.Generator
}

// NewPlannerService creates a new instance of plannerService.
func NewPlannerService(exerciseRepo repository.ExerciseRepository, generator generation.Generator) PlannerService {
	return &plannerService{
		exerciseRepo: exerciseRepo,
		generator:    generator,
	}
}

// Synthesize runs the full pipeline for one request: select candidates
// from the catalog, submit the generation input with the exemplar set,
// validate the result. No state survives a failure; a retry is a fresh
// call through all steps.
func (s *plannerService) Synthesize(ctx context.Context, description string, equipment []domain.EquipmentItem) (*domain.WorkoutPlan, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	catalog, err := s.exerciseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	input := generation.Input{
		Description: description,
		Equipment:   equipment,
		Candidates:  SelectCandidates(description, catalog),
	}

	// The only call with non-trivial latency in the pipeline. Issued once,
	// never retried here; generation failures propagate undecorated.
	plan, err := s.generator.Generate(ctx, input, Exemplars())
	if err != nil {
		return nil, err
	}

	if err := ValidatePlan(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// ValidatePlan checks a generated plan against the declared shape. A
// violation is reported naming the offending field, never coerced away.
// rest_times stays optional: the two generator variants disagree on it.
func ValidatePlan(plan *domain.WorkoutPlan) error {
	if strings.TrimSpace(plan.Title) == "" {
		return fmt.Errorf("%w: missing title", generation.ErrInvalidPlan)
	}
	if strings.TrimSpace(plan.Description) == "" {
		return fmt.Errorf("%w: missing description", generation.ErrInvalidPlan)
	}
	if len(plan.Exercises) == 0 {
		return fmt.Errorf("%w: empty exercise list", generation.ErrInvalidPlan)
	}
	for i, ex := range plan.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return fmt.Errorf("%w: exercise %d has no name", generation.ErrInvalidPlan, i)
		}
	}
	if len(plan.SetsAndReps) == 0 {
		return fmt.Errorf("%w: missing sets_and_reps", generation.ErrInvalidPlan)
	}
	return nil
}
