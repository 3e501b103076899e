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
	ErrGymNotFound      = errors.New("gym not found")
	ErrGymNameRequired  = errors.New("gym name is required")
	ErrEquipmentInvalid = errors.New("equipment item requires a name and a category")
)

// GymService manages gyms and their equipment inventories. The pipeline
// only reads equipment; writes come from onboarding.
type GymService interface {
	CreateGym(ctx context.Context, name, location, description string, equipment []domain.EquipmentItem) (*domain.Gym, error)
	GetGym(ctx context.Context, gymID primitive.ObjectID) (*domain.Gym, error)
	ListGyms(ctx context.Context) ([]domain.Gym, error)
	GymEquipment(ctx context.Context, gymID primitive.ObjectID) ([]domain.EquipmentItem, error)
}

// gymService implements the GymService interface.
type gymService struct {
	gymRepo repository.GymRepository
}

// NewGymService creates a new instance of gymService.
func NewGymService(gymRepo repository.GymRepository) GymService {
	return &gymService{
		gymRepo: gymRepo,
	}
}

// CreateGym registers a new gym with its equipment inventory. Quantities
// default to 1.
func (s *gymService) CreateGym(ctx context.Context, name, location, description string, equipment []domain.EquipmentItem) (*domain.Gym, error) {
	if name == "" {
		return nil, ErrGymNameRequired
	}
	for i := range equipment {
		if equipment[i].Name == "" || equipment[i].Category == "" {
			return nil, ErrEquipmentInvalid
		}
		if equipment[i].Quantity < 1 {
			equipment[i].Quantity = 1
		}
	}

	gym := &domain.Gym{
		Name:        name,
		Location:    location,
		Description: description,
		Equipment:   equipment,
	}

	gymID, err := s.gymRepo.Create(ctx, gym)
	if err != nil {
		return nil, err
	}
	gym.ID = gymID
	return gym, nil
}

// GetGym retrieves a single gym with its inventory.
func (s *gymService) GetGym(ctx context.Context, gymID primitive.ObjectID) (*domain.Gym, error) {
	gym, err := s.gymRepo.GetByID(ctx, gymID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}
	return gym, nil
}

// ListGyms retrieves all gyms.
func (s *gymService) ListGyms(ctx context.Context) ([]domain.Gym, error) {
	return s.gymRepo.GetAll(ctx)
}

// GymEquipment returns the equipment list consumed by plan synthesis.
func (s *gymService) GymEquipment(ctx context.Context, gymID primitive.ObjectID) ([]domain.EquipmentItem, error) {
	gym, err := s.GetGym(ctx, gymID)
	if err != nil {
		return nil, err
	}
	return gym.Equipment, nil
}
