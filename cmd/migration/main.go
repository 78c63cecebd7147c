package main

import (
	"context"
	"internistika-service/internal/app/config"
	"internistika-service/internal/app/drivers/database"
	"internistika-service/internal/pkg/constvars"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the indexes the API relies on. Safe to run repeatedly, Mongo
// ignores index specs that already exist.
func main() {
	driverConfig := config.NewDriverConfig()

	client := database.NewMongoDB(driverConfig)
	db := client.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, db.Collection(constvars.MongoCollectionDoctors), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionVisits), []mongo.IndexModel{
		{Keys: bson.D{{Key: "doctor", Value: 1}}},
		{Keys: bson.D{{Key: "patient", Value: 1}}},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionAppointments), []mongo.IndexModel{
		{Keys: bson.D{{Key: "doctor", Value: 1}, {Key: "markedAsDone", Value: 1}}},
		{Keys: bson.D{{Key: "patient", Value: 1}}},
	})

	if err := client.Disconnect(ctx); err != nil {
		logrus.Fatalf("Error disconnecting from MongoDB: %v", err)
	}

	logrus.Println("Migration finished")
}

func createIndexes(ctx context.Context, collection *mongo.Collection, indexes []mongo.IndexModel) {
	names, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logrus.Fatalf("Error creating indexes on %s: %v", collection.Name(), err)
	}
	logrus.Printf("Created indexes on %s: %v", collection.Name(), names)
}
