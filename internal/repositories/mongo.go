package repositories

import (
	"context"

	"github.com/sbilibin2017/bigstack/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	PersonsCollection   = "persons"
	ProfilesCollection  = "profiles"
	QuestionsCollection = "questions"
)

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
// It is idempotent and safe to call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		PersonsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ProfilesCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		QuestionsCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: -1}}},
		},
	}

	for collection, idx := range indexes {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, idx)
		logger.Log.Infow("ensure indexes",
			"collection", collection,
			"result", names,
			"error", err,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// logOperation logs a single collection operation in the same shape for every repository.
func logOperation(collection, op string, filter any, err error) {
	logger.Log.Infow("mongo",
		"collection", collection,
		"op", op,
		"filter", filter,
		"error", err,
	)
}
