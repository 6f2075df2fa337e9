package database

import (
	"context"
	"fmt"
	"time"

	"pickem-pool-go/logging"
	"pickem-pool-go/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoGameRepository is the Mongo-backed game catalog. The collection is
// written by the external odds-fetch process; this repository only reads,
// apart from UpsertGame which exists for seeding and tests.
type MongoGameRepository struct {
	collection *mongo.Collection
	logger     *logging.Logger
}

func NewMongoGameRepository(db *MongoDB) *MongoGameRepository {
	collection := db.GetCollection("games")
	logger := logging.WithPrefix("mongo_game_repo")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Week index for the per-week listing; game IDs are the _id key already
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "week", Value: 1}},
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Errorf("Failed to create index on games collection: %v", err)
	}

	return &MongoGameRepository{
		collection: collection,
		logger:     logger,
	}
}

// GetGame returns the game with the given ID, or nil when the catalog does
// not know it.
func (r *MongoGameRepository) GetGame(ctx context.Context, gameID string) (*models.Game, error) {
	var game models.Game
	err := r.collection.FindOne(ctx, bson.M{"_id": gameID}).Decode(&game)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find game %s: %w", gameID, err)
	}
	return &game, nil
}

// ListGames returns all games for a week, ordered by kickoff time.
func (r *MongoGameRepository) ListGames(ctx context.Context, week int) ([]models.Game, error) {
	opts := options.Find().SetSort(bson.D{{Key: "kickoff", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"week": week}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find games for week %d: %w", week, err)
	}
	defer cursor.Close(ctx)

	var games []models.Game
	if err := cursor.All(ctx, &games); err != nil {
		return nil, fmt.Errorf("failed to decode games: %w", err)
	}

	return games, nil
}

// UpsertGame writes a game record. Used by seeding scripts and tests; the
// running service never mutates the catalog.
func (r *MongoGameRepository) UpsertGame(ctx context.Context, game *models.Game) error {
	filter := bson.M{"_id": game.ID}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.collection.ReplaceOne(ctx, filter, game, opts); err != nil {
		return fmt.Errorf("failed to upsert game %s: %w", game.ID, err)
	}

	return nil
}

// Count returns the total number of catalog entries.
func (r *MongoGameRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
