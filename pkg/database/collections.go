package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createVehiclesIndexes()
	createTelemetryIndexes()
	createSummariesIndexes()
}

func createVehiclesIndexes() {
	vehiclesCollection := GetCollection("vehicles")
	vehiclesIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := vehiclesCollection.Indexes().CreateMany(context.Background(), vehiclesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createTelemetryIndexes() {
	telemetryCollection := GetCollection("vehicle_telemetry")
	telemetryIndex := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "vehicleid", Value: 1},
				{Key: "recordedat", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "location.coordinates", Value: "2d"}},
		},
	}

	opts := options.CreateIndexes()
	_, err := telemetryCollection.Indexes().CreateMany(context.Background(), telemetryIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createSummariesIndexes() {
	// Unique on the summary identity so re-runs replace rather than duplicate
	summariesCollection := GetCollection("daily_vehicle_summaries")
	summariesIndex := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "vehicleid", Value: 1},
				{Key: "summarydate", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}

	opts := options.CreateIndexes()
	_, err := summariesCollection.Indexes().CreateMany(context.Background(), summariesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
