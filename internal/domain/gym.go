// internal/domain/gym.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EquipmentItem is one piece (or set) of equipment available at a gym.
type EquipmentItem struct {
	Name        string `bson:"name" json:"name"`
	Category    string `bson:"category" json:"category"` // e.g., "Cardio", "Free Weights", "Machines"
	Quantity    int    `bson:"quantity" json:"quantity"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Gym represents a gym and its equipment inventory. Equipment is embedded:
// the inventory is small, read as a unit, and only ever written together
// with its gym.
type Gym struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Equipment   []EquipmentItem    `bson:"equipment,omitempty" json:"equipment,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
