package database

import (
	"context"
	"fmt"
	"time"

	"pickem-pool-go/logging"
	"pickem-pool-go/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSubmissionRepository is the Mongo-backed pick store: an append-only
// log of accepted submissions. No update or delete in normal operation.
type MongoSubmissionRepository struct {
	collection *mongo.Collection
	logger     *logging.Logger
}

func NewMongoSubmissionRepository(db *MongoDB) *MongoSubmissionRepository {
	collection := db.GetCollection("submissions")
	logger := logging.WithPrefix("mongo_submission_repo")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Compound indexes for the two query shapes: per-user-week history
	// during validation and per-week scans during scoring
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "username", Value: 1},
				{Key: "week", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "week", Value: 1},
			},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Errorf("Failed to create submission indexes: %v", err)
	}

	return &MongoSubmissionRepository{
		collection: collection,
		logger:     logger,
	}
}

// AppendSubmission inserts an accepted submission.
func (r *MongoSubmissionRepository) AppendSubmission(ctx context.Context, submission *models.PickSubmission) error {
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, submission)
	if err != nil {
		return fmt.Errorf("failed to append submission: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		submission.ID = oid
		r.logger.Debugf("Appended submission %s for user %s week %d", oid.Hex(), submission.Username, submission.Week)
	}
	return nil
}

// ListSubmissions returns submissions matching the optional filters, in
// insertion order. An empty username or a week of 0 means no filter.
func (r *MongoSubmissionRepository) ListSubmissions(ctx context.Context, username string, week int) ([]models.PickSubmission, error) {
	filter := bson.M{}
	if username != "" {
		filter["username"] = username
	}
	if week != 0 {
		filter["week"] = week
	}

	// _id order preserves append order for ObjectID keys
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var submissions []models.PickSubmission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("failed to decode submissions: %w", err)
	}

	return submissions, nil
}

// Count returns the total number of stored submissions.
func (r *MongoSubmissionRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
