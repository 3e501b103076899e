package api

import (
	"alcyxob/workout-vibe/internal/domain"
	"alcyxob/workout-vibe/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise catalog service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ListExercises returns catalog entries, optionally filtered. Query
// parameters: muscle_group and equipment filter exactly, q searches by
// case-insensitive substring. Filters are applied one at a time; exact
// filters win over search.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		exercises []domain.Exercise
		err       error
	)
	switch {
	case c.Query("muscle_group") != "":
		exercises, err = h.exerciseService.ExercisesByMuscleGroup(ctx, c.Query("muscle_group"))
	case c.Query("equipment") != "":
		exercises, err = h.exerciseService.ExercisesByEquipment(ctx, c.Query("equipment"))
	case c.Query("q") != "":
		exercises, err = h.exerciseService.SearchExercises(ctx, c.Query("q"))
	default:
		exercises, err = h.exerciseService.AllExercises(ctx)
	}

	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch exercises.")
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}
