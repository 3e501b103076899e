// Command onboard registers a new gym and its equipment inventory through
// an interactive prompt flow.
package main

import (
	"alcyxob/workout-vibe/internal/config"
	"alcyxob/workout-vibe/internal/domain"
	"alcyxob/workout-vibe/internal/repository/mongo"
	"alcyxob/workout-vibe/internal/service"
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
)

var cli struct {
	SaveJSON   string `name:"save-json" help:"Also write the gym information to a JSON file."`
	ConfigPath string `default:"." help:"Directory containing config.yaml."`
}

type gymInput struct {
	Name        string                 `json:"name"`
	Location    string                 `json:"location,omitempty"`
	Description string                 `json:"description,omitempty"`
	Equipment   []domain.EquipmentItem `json:"equipment"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("onboard"),
		kong.Description("Onboard a new gym by describing its available equipment."))

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

	gymRepo := mongo.NewMongoGymRepository(dbClient.Database(cfg.Database.Name))
	gymService := service.NewGymService(gymRepo)

	input := interactiveOnboarding(bufio.NewReader(os.Stdin))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	gym, err := gymService.CreateGym(ctx, input.Name, input.Location, input.Description, input.Equipment)
	if err != nil {
		log.Fatalf("FATAL: Could not save gym: %v", err)
	}

	displayGymSummary(gym)

	if cli.SaveJSON != "" {
		if err := saveToJSON(input, cli.SaveJSON); err != nil {
			log.Fatalf("FATAL: Could not write JSON file: %v", err)
		}
		fmt.Printf("\nGym information saved to %s\n", cli.SaveJSON)
	}

	fmt.Println("\nOnboarding complete! Your gym has been added to the database.")
}

// interactiveOnboarding walks the operator through gym details and
// equipment entry, category by category.
func interactiveOnboarding(in *bufio.Reader) gymInput {
	fmt.Println("\n=== GYM ONBOARDING ===")

	var input gymInput
	input.Name = prompt(in, "Gym Name: ")
	input.Location = prompt(in, "Location (optional, press Enter to skip): ")
	input.Description = prompt(in, "Brief Description (optional, press Enter to skip): ")

	fmt.Println("\nNow let's add equipment to your gym.")
	fmt.Println("You'll be asked to add equipment by category.")
	fmt.Println("Common categories include: Cardio, Free Weights, Machines, Functional, etc.")

	for {
		fmt.Println("\n--- Add Equipment Category ---")
		category := prompt(in, "Equipment Category (e.g., Cardio, Free Weights, Machines): ")

		for {
			item := domain.EquipmentItem{Category: category, Quantity: 1}
			item.Name = prompt(in, fmt.Sprintf("Equipment Name in %s category: ", category))

			if qty := prompt(in, "Quantity (default is 1, press Enter for default): "); qty != "" {
				if n, err := strconv.Atoi(qty); err == nil && n > 0 {
					item.Quantity = n
				}
			}
			item.Description = prompt(in, "Description (optional, press Enter to skip): ")

			input.Equipment = append(input.Equipment, item)

			if !yes(prompt(in, fmt.Sprintf("Add more equipment to %s? (y/n): ", category))) {
				break
			}
		}

		if !yes(prompt(in, "Add another equipment category? (y/n): ")) {
			break
		}
	}

	return input
}

// displayGymSummary prints the saved gym and its equipment grouped by
// category.
func displayGymSummary(gym *domain.Gym) {
	line := strings.Repeat("=", 60)

	fmt.Printf("\n%s\n", line)
	fmt.Printf("GYM: %s\n", gym.Name)
	if gym.Location != "" {
		fmt.Printf("Location: %s\n", gym.Location)
	}
	if gym.Description != "" {
		fmt.Printf("Description: %s\n", gym.Description)
	}
	fmt.Println(line)

	if len(gym.Equipment) == 0 {
		fmt.Println("\nNo equipment recorded for this gym yet.")
		fmt.Printf("\n%s\n", line)
		return
	}

	var categories []string
	byCategory := make(map[string][]domain.EquipmentItem)
	for _, item := range gym.Equipment {
		if _, ok := byCategory[item.Category]; !ok {
			categories = append(categories, item.Category)
		}
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	fmt.Println("\nEQUIPMENT AVAILABLE:")
	for _, category := range categories {
		fmt.Printf("\n%s:\n", strings.ToUpper(category))
		for _, item := range byCategory[category] {
			qty := ""
			if item.Quantity > 1 {
				qty = fmt.Sprintf(" (x%d)", item.Quantity)
			}
			fmt.Printf("  - %s%s\n", item.Name, qty)
			if item.Description != "" {
				fmt.Printf("    %s\n", item.Description)
			}
		}
	}

	fmt.Printf("\n%s\n", line)
}

func saveToJSON(input gymInput, filename string) error {
	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	text, _ := in.ReadString('\n')
	return strings.TrimSpace(text)
}

func yes(answer string) bool {
	return strings.EqualFold(answer, "y")
}
