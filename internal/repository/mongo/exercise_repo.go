package mongo

import (
	"alcyxob/workout-vibe/internal/domain"
	"alcyxob/workout-vibe/internal/repository"
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new exercise catalog repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// GetAll retrieves the whole catalog in id order. Catalog order is the
// order downstream selection preserves, so the sort must be stable.
func (r *mongoExerciseRepository) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	return r.find(ctx, bson.M{})
}

// GetByMuscleGroup retrieves exercises for an exact muscle group value.
func (r *mongoExerciseRepository) GetByMuscleGroup(ctx context.Context, muscleGroup string) ([]domain.Exercise, error) {
	return r.find(ctx, bson.M{"muscleGroup": muscleGroup})
}

// GetByEquipment retrieves exercises for an exact equipment value.
func (r *mongoExerciseRepository) GetByEquipment(ctx context.Context, equipment string) ([]domain.Exercise, error) {
	return r.find(ctx, bson.M{"equipment": equipment})
}

// Search matches query as a case-insensitive substring of name, muscle
// group or equipment.
func (r *mongoExerciseRepository) Search(ctx context.Context, query string) ([]domain.Exercise, error) {
	pattern := primitiveRegex(query)
	filter := bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"muscleGroup": pattern},
		bson.M{"equipment": pattern},
	}}
	return r.find(ctx, filter)
}

func (r *mongoExerciseRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// InsertMany seeds the catalog. Exercises carry their own stable integer ids.
func (r *mongoExerciseRepository) InsertMany(ctx context.Context, exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	docs := make([]interface{}, len(exercises))
	for i, ex := range exercises {
		docs[i] = ex
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// DeleteAll wipes the catalog. Used only by forced reseeding.
func (r *mongoExerciseRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}

func (r *mongoExerciseRepository) find(ctx context.Context, filter bson.M) ([]domain.Exercise, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []domain.Exercise
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

// primitiveRegex builds a case-insensitive substring matcher with the
// query treated as a literal, not a pattern.
func primitiveRegex(query string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "muscleGroup", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "equipment", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
