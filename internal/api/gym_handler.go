package api

import (
	"alcyxob/workout-vibe/internal/domain"
	"alcyxob/workout-vibe/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GymHandler holds the gym service dependency.
type GymHandler struct {
	gymService service.GymService
}

// NewGymHandler creates a new GymHandler.
func NewGymHandler(gymService service.GymService) *GymHandler {
	return &GymHandler{gymService: gymService}
}

// --- DTOs ---

// EquipmentItemRequest defines one equipment entry in a gym creation request.
type EquipmentItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

// CreateGymRequest defines the expected JSON for registering a gym.
type CreateGymRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Location    string                 `json:"location"`
	Description string                 `json:"description"`
	Equipment   []EquipmentItemRequest `json:"equipment"`
}

// GymResponse is the DTO for returning gym details.
type GymResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Location    string                 `json:"location,omitempty"`
	Description string                 `json:"description,omitempty"`
	Equipment   []domain.EquipmentItem `json:"equipment,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// GymDetailResponse adds the equipment grouped by category for display.
type GymDetailResponse struct {
	GymResponse
	EquipmentByCategory map[string][]domain.EquipmentItem `json:"equipmentByCategory,omitempty"`
}

// MapGymToResponse converts a domain.Gym to GymResponse DTO.
func MapGymToResponse(gym *domain.Gym) GymResponse {
	if gym == nil {
		return GymResponse{}
	}
	return GymResponse{
		ID:          gym.ID.Hex(),
		Name:        gym.Name,
		Location:    gym.Location,
		Description: gym.Description,
		Equipment:   gym.Equipment,
		CreatedAt:   gym.CreatedAt,
	}
}

// --- Handler Methods ---

// CreateGym registers a new gym together with its equipment inventory.
func (h *GymHandler) CreateGym(c *gin.Context) {
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	equipment := make([]domain.EquipmentItem, len(req.Equipment))
	for i, item := range req.Equipment {
		equipment[i] = domain.EquipmentItem{
			Name:        item.Name,
			Category:    item.Category,
			Quantity:    item.Quantity,
			Description: item.Description,
		}
	}

	gym, err := h.gymService.CreateGym(c.Request.Context(), req.Name, req.Location, req.Description, equipment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGymNameRequired), errors.Is(err, service.ErrEquipmentInvalid):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create gym.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapGymToResponse(gym))
}

// ListGyms returns all registered gyms.
func (h *GymHandler) ListGyms(c *gin.Context) {
	gyms, err := h.gymService.ListGyms(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list gyms.")
		return
	}

	responses := make([]GymResponse, len(gyms))
	for i := range gyms {
		responses[i] = MapGymToResponse(&gyms[i])
	}
	c.JSON(http.StatusOK, responses)
}

// GetGym returns one gym with its equipment grouped by category.
func (h *GymHandler) GetGym(c *gin.Context) {
	gymID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	gym, err := h.gymService.GetGym(c.Request.Context(), gymID)
	if err != nil {
		if errors.Is(err, service.ErrGymNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch gym.")
		}
		return
	}

	byCategory := make(map[string][]domain.EquipmentItem)
	for _, item := range gym.Equipment {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	c.JSON(http.StatusOK, GymDetailResponse{
		GymResponse:         MapGymToResponse(gym),
		EquipmentByCategory: byCategory,
	})
}
