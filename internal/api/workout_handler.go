package api

import (
	"alcyxob/workout-vibe/internal/domain"
	"alcyxob/workout-vibe/internal/generation"
	"alcyxob/workout-vibe/internal/service"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler holds the planner, workout and gym service dependencies.
type WorkoutHandler struct {
	plannerService service.PlannerService
	workoutService service.WorkoutService
	gymService     service.GymService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(
	plannerService service.PlannerService,
	workoutService service.WorkoutService,
	gymService service.GymService,
) *WorkoutHandler {
	return &WorkoutHandler{
		plannerService: plannerService,
		workoutService: workoutService,
		gymService:     gymService,
	}
}

// --- DTOs ---

// GenerateWorkoutRequest defines the expected JSON for plan generation.
// GymID is optional; without it the plan is generated with no equipment
// constraint.
type GenerateWorkoutRequest struct {
	Description string `json:"description" binding:"required"`
	GymID       string `json:"gymId"`
}

// SaveWorkoutRequest defines the expected JSON for confirming a plan.
type SaveWorkoutRequest struct {
	Plan  domain.WorkoutPlan `json:"plan" binding:"required"`
	GymID string             `json:"gymId"`
}

// LogSetRequest defines the expected JSON for logging one completed set.
type LogSetRequest struct {
	ExerciseName string   `json:"exercise_name" binding:"required"`
	SetNumber    int      `json:"set_number" binding:"required,min=1"`
	Reps         *int     `json:"reps"`
	Weight       *float64 `json:"weight"`
	RestTime     *int     `json:"rest_time"`
	Notes        string   `json:"notes"`
}

// WorkoutResponse is the DTO for returning a workout record.
type WorkoutResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Date        time.Time          `json:"date"`
	GymID       string             `json:"gymId,omitempty"`
	Plan        domain.WorkoutPlan `json:"plan"`
}

// MapWorkoutToResponse converts a domain.WorkoutRecord to WorkoutResponse DTO.
func MapWorkoutToResponse(record *domain.WorkoutRecord) WorkoutResponse {
	if record == nil {
		return WorkoutResponse{}
	}
	resp := WorkoutResponse{
		ID:          record.ID.Hex(),
		Title:       record.Title,
		Description: record.Description,
		Date:        record.Date,
		Plan:        record.Plan,
	}
	if record.GymID != nil {
		resp.GymID = record.GymID.Hex()
	}
	return resp
}

// --- Handler Methods ---

// GenerateWorkout runs the synthesis pipeline and returns the plan without
// persisting it. The caller confirms via SaveWorkout.
func (h *WorkoutHandler) GenerateWorkout(c *gin.Context) {
	var req GenerateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	var equipment []domain.EquipmentItem
	if req.GymID != "" {
		gymID, err := primitive.ObjectIDFromHex(req.GymID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid gymId format.")
			return
		}
		equipment, err = h.gymService.GymEquipment(c.Request.Context(), gymID)
		if err != nil {
			if errors.Is(err, service.ErrGymNotFound) {
				abortWithError(c, http.StatusNotFound, err.Error())
			} else {
				abortWithError(c, http.StatusInternalServerError, "Failed to fetch gym equipment.")
			}
			return
		}
	}

	plan, err := h.plannerService.Synthesize(c.Request.Context(), req.Description, equipment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyDescription):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, generation.ErrUnavailable):
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		case errors.Is(err, generation.ErrInvalidPlan):
			abortWithError(c, http.StatusBadGateway, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate workout plan.")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// SaveWorkout persists a confirmed plan and returns the new record id.
func (h *WorkoutHandler) SaveWorkout(c *gin.Context) {
	var req SaveWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	var gymID *primitive.ObjectID
	if req.GymID != "" {
		id, err := primitive.ObjectIDFromHex(req.GymID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid gymId format.")
			return
		}
		gymID = &id
	}

	workoutID, err := h.workoutService.SaveWorkout(c.Request.Context(), &req.Plan, gymID)
	if err != nil {
		if errors.Is(err, generation.ErrInvalidPlan) || errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save workout.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": workoutID.Hex()})
}

// GetWorkout returns one workout record.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workoutID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.workoutService.GetWorkout(c.Request.Context(), workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout.")
		}
		return
	}

	c.JSON(http.StatusOK, MapWorkoutToResponse(record))
}

// RecentWorkouts returns the most recent workout records, newest first.
// The limit query parameter truncates; there is no pagination token.
func (h *WorkoutHandler) RecentWorkouts(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	records, err := h.workoutService.RecentWorkouts(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch workouts.")
		return
	}

	responses := make([]WorkoutResponse, len(records))
	for i := range records {
		responses[i] = MapWorkoutToResponse(&records[i])
	}
	c.JSON(http.StatusOK, responses)
}

// LogSet appends one completed-set entry to an existing workout.
func (h *WorkoutHandler) LogSet(c *gin.Context) {
	workoutID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req LogSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	logID, err := h.workoutService.LogSet(c.Request.Context(), workoutID, service.SetLogInput{
		ExerciseName: req.ExerciseName,
		SetNumber:    req.SetNumber,
		Reps:         req.Reps,
		Weight:       req.Weight,
		RestTime:     req.RestTime,
		Notes:        req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidSetNumber), errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to log set.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "log_id": logID.Hex()})
}

// WorkoutLogs returns all set logs for a workout ordered by
// (exercise name, set number).
func (h *WorkoutHandler) WorkoutLogs(c *gin.Context) {
	workoutID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	logs, err := h.workoutService.WorkoutLogs(c.Request.Context(), workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout logs.")
		}
		return
	}
	if logs == nil {
		logs = []domain.SetLogEntry{}
	}
	c.JSON(http.StatusOK, logs)
}

// WorkoutSummary returns a workout together with its logs grouped by
// exercise name, preserving the (exercise name, set number) order within
// each group.
func (h *WorkoutHandler) WorkoutSummary(c *gin.Context) {
	workoutID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.workoutService.GetWorkout(c.Request.Context(), workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout.")
		}
		return
	}

	logs, err := h.workoutService.WorkoutLogs(c.Request.Context(), workoutID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout logs.")
		return
	}

	logsByExercise := make(map[string][]domain.SetLogEntry)
	for _, entry := range logs {
		logsByExercise[entry.ExerciseName] = append(logsByExercise[entry.ExerciseName], entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"workout":        MapWorkoutToResponse(record),
		"logsByExercise": logsByExercise,
	})
}
