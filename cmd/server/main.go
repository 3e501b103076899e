package main

import (
	"alcyxob/workout-vibe/internal/api"
	"alcyxob/workout-vibe/internal/config"
	"alcyxob/workout-vibe/internal/generation"
	"alcyxob/workout-vibe/internal/repository/mongo"
	"alcyxob/workout-vibe/internal/service"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Workout Vibe Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureGymIndexes(ctx, appDB.Collection("gyms"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureWorkoutLogIndexes(ctx, appDB.Collection("workout_logs"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Generation Capability ---
	log.Printf("Initializing generation provider %q...", cfg.Generation.Provider)
	generator, err := generation.New(cfg.Generation)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize generation provider: %v", err)
	}
	if cfg.Generation.APIKey == "" {
		log.Println("WARN: No generation API key configured; plan generation will be unavailable.")
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	gymRepo := mongo.NewMongoGymRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	exerciseService := service.NewExerciseService(exerciseRepo)
	gymService := service.NewGymService(gymRepo)
	plannerService := service.NewPlannerService(exerciseRepo, generator)
	workoutService := service.NewWorkoutService(workoutRepo)

	// --- Seed Catalog If Empty ---
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	inserted, err := exerciseService.SeedCatalog(seedCtx, false)
	seedCancel()
	if err != nil {
		log.Printf("ERROR: Failed to seed exercise catalog: %v", err)
	} else if inserted > 0 {
		log.Printf("Seeded exercise catalog with %d exercises.", inserted)
	}

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, plannerService, workoutService, gymService, exerciseService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute, // generation calls can be slow
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
