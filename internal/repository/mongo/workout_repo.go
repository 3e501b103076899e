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

const (
	workoutCollectionName    = "workouts"
	workoutLogCollectionName = "workout_logs"
)

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	workouts *mongo.Collection
	logs     *mongo.Collection
}

// NewMongoWorkoutRepository creates a new workout repository backed by MongoDB.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		workouts: db.Collection(workoutCollectionName),
		logs:     db.Collection(workoutLogCollectionName),
	}
}

// Save inserts a new workout record. The record's date is stamped here:
// persistence time is the record's date, regardless of when the plan was
// generated. Save never overwrites an existing record.
func (r *mongoWorkoutRepository) Save(ctx context.Context, record *domain.WorkoutRecord) (primitive.ObjectID, error) {
	if record.Title == "" {
		return primitive.NilObjectID, errors.New("workout title is required")
	}

	record.ID = primitive.NewObjectID()
	record.Date = time.Now().UTC()

	result, err := r.workouts.InsertOne(ctx, record)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves a workout record by its ID.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutRecord, error) {
	var record domain.WorkoutRecord
	filter := bson.M{"_id": id}

	err := r.workouts.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Recent retrieves the most recent workout records, newest first.
func (r *mongoWorkoutRepository) Recent(ctx context.Context, limit int64) ([]domain.WorkoutRecord, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.workouts.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []domain.WorkoutRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// LogSet appends one set log entry. The referential check against the
// workouts collection is this repository's responsibility: an entry must
// never be created for a workout that does not exist.
func (r *mongoWorkoutRepository) LogSet(ctx context.Context, entry *domain.SetLogEntry) (primitive.ObjectID, error) {
	count, err := r.workouts.CountDocuments(ctx, bson.M{"_id": entry.WorkoutID})
	if err != nil {
		return primitive.NilObjectID, err
	}
	if count == 0 {
		return primitive.NilObjectID, repository.ErrNotFound
	}

	entry.ID = primitive.NewObjectID()
	entry.Timestamp = time.Now().UTC()

	result, err := r.logs.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// LogsByWorkoutID retrieves all set logs for a workout ordered by
// (exercise name, set number) ascending, independent of insertion order.
func (r *mongoWorkoutRepository) LogsByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.SetLogEntry, error) {
	filter := bson.M{"workoutId": workoutID}
	findOptions := options.Find().SetSort(bson.D{
		{Key: "exerciseName", Value: 1},
		{Key: "setNumber", Value: 1},
	})

	cursor, err := r.logs.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.SetLogEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureWorkoutIndexes creates necessary indexes for the workouts collection.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}

// EnsureWorkoutLogIndexes creates necessary indexes for the workout_logs collection.
func EnsureWorkoutLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "workoutId", Value: 1},
				{Key: "exerciseName", Value: 1},
				{Key: "setNumber", Value: 1},
			},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
