// Command seed loads the built-in exercise catalog into the database.
package main

import (
	"alcyxob/workout-vibe/internal/config"
	"alcyxob/workout-vibe/internal/repository/mongo"
	"alcyxob/workout-vibe/internal/service"
	"context"
	"log"
	"time"

	"github.com/alecthomas/kong"
)

var cli struct {
	Force      bool   `help:"Wipe and reseed even if the catalog is already populated."`
	ConfigPath string `default:"." help:"Directory containing config.yaml."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("seed"),
		kong.Description("Seed the exercise catalog with the built-in exercise library."))

	cfg, err := config.LoadConfig(cli.ConfigPath)
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()

	exerciseRepo := mongo.NewMongoExerciseRepository(dbClient.Database(cfg.Database.Name))
	exerciseService := service.NewExerciseService(exerciseRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	inserted, err := exerciseService.SeedCatalog(ctx, cli.Force)
	if err != nil {
		log.Fatalf("FATAL: Seeding failed: %v", err)
	}
	if inserted == 0 {
		log.Println("Catalog already populated; nothing to do. Use --force to reseed.")
		return
	}
	log.Printf("Database seeded successfully. Total exercises added: %d", inserted)
}
