package api

import (
	"alcyxob/workout-vibe/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	plannerService service.PlannerService,
	workoutService service.WorkoutService,
	gymService service.GymService,
	exerciseService service.ExerciseService,
) {
	workoutHandler := NewWorkoutHandler(plannerService, workoutService, gymService)
	gymHandler := NewGymHandler(gymService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		// --- Exercise Catalog Routes ---
		apiV1.GET("/exercises", exerciseHandler.ListExercises)

		// --- Gym Routes ---
		gymGroup := apiV1.Group("/gyms")
		{
			gymGroup.POST("", gymHandler.CreateGym)
			gymGroup.GET("", gymHandler.ListGyms)
			gymGroup.GET("/:id", gymHandler.GetGym)
		}

		// --- Workout Routes ---
		workoutGroup := apiV1.Group("/workouts")
		{
			// POST /api/v1/workouts/generate - synthesize a plan (not persisted)
			workoutGroup.POST("/generate", workoutHandler.GenerateWorkout)
			// POST /api/v1/workouts - confirm and persist a generated plan
			workoutGroup.POST("", workoutHandler.SaveWorkout)
			workoutGroup.GET("", workoutHandler.RecentWorkouts)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			// Execution tracking
			workoutGroup.POST("/:id/logs", workoutHandler.LogSet)
			workoutGroup.GET("/:id/logs", workoutHandler.WorkoutLogs)
			workoutGroup.GET("/:id/summary", workoutHandler.WorkoutSummary)
		}
	}
}
