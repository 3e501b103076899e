package mongo

import (
	"alcyxob/workout-vibe/internal/domain"
	"alcyxob/workout-vibe/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const gymCollectionName = "gyms"

// mongoGymRepository implements repository.GymRepository
type mongoGymRepository struct {
	collection *mongo.Collection
}

// NewMongoGymRepository creates a new gym repository backed by MongoDB.
func NewMongoGymRepository(db *mongo.Database) repository.GymRepository {
	return &mongoGymRepository{
		collection: db.Collection(gymCollectionName),
	}
}

// Create inserts a new gym with its embedded equipment inventory.
func (r *mongoGymRepository) Create(ctx context.Context, gym *domain.Gym) (primitive.ObjectID, error) {
	if gym.Name == "" {
		return primitive.NilObjectID, errors.New("gym name is required")
	}

	gym.ID = primitive.NewObjectID()
	gym.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, gym)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves a gym by its ID.
func (r *mongoGymRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Gym, error) {
	var gym domain.Gym
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&gym)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &gym, nil
}

// GetAll retrieves all gyms sorted by name.
func (r *mongoGymRepository) GetAll(ctx context.Context) ([]domain.Gym, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var gyms []domain.Gym
	if err = cursor.All(ctx, &gyms); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return gyms, nil
}

// EnsureGymIndexes creates necessary indexes for the gyms collection.
func EnsureGymIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
