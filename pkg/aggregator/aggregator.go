package aggregator

import (
	"context"
	"time"

	"github.com/fleettrack/fleettrack/pkg/aggregator/calculator"
	"github.com/fleettrack/fleettrack/pkg/database"
	"github.com/fleettrack/fleettrack/pkg/fleet"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DailyAggregator struct {
	SummaryDate time.Time
	Thresholds  calculator.Thresholds
}

type runTotals struct {
	Vehicles   int
	Points     int
	Violations int
	Failures   int
}

func (t *runTotals) Add(summary fleet.DailyVehicleSummary) {
	t.Vehicles += 1
	t.Points += summary.TotalPoints
	t.Violations += summary.SpeedingViolations + summary.CriticalViolations
}

// Perform processes every active vehicle for the target date, one at a time.
// Only a single vehicle's day of telemetry is ever held in memory.
func (a *DailyAggregator) Perform() error {
	log.Info().Msgf("Daily aggregation job for %s", a.SummaryDate.Format("2006-01-02"))

	vehicles, err := a.getActiveVehicles()
	if err != nil {
		return err
	}

	log.Info().Msgf("Found %d active vehicles", len(vehicles))

	totals := runTotals{}

	for _, vehicle := range vehicles {
		points, err := a.fetchDailyTelemetry(vehicle.PrimaryIdentifier)
		if err != nil {
			log.Error().Err(err).Int("vehicle", vehicle.PrimaryIdentifier).Msg("Failed to fetch telemetry, skipping vehicle")
			totals.Failures += 1
			continue
		}

		summary := calculator.DailySummary(vehicle.PrimaryIdentifier, a.SummaryDate, points, a.Thresholds)

		err = upsertSummary(summary)
		if err != nil {
			log.Error().Err(err).Int("vehicle", vehicle.PrimaryIdentifier).Msg("Failed to upsert summary, skipping vehicle")
			totals.Failures += 1
			continue
		}

		totals.Add(summary)

		log.Info().Msgf("Vehicle #%d: %d points, %.2f km, max %.2f km/h, %d speeding + %d critical violations",
			vehicle.PrimaryIdentifier, summary.TotalPoints, summary.TotalDistanceKM, summary.MaxSpeed,
			summary.SpeedingViolations, summary.CriticalViolations)
	}

	log.Info().
		Int("vehicles", totals.Vehicles).
		Int("points", totals.Points).
		Int("violations", totals.Violations).
		Int("failures", totals.Failures).
		Msg("Daily aggregation complete")

	return nil
}

func (a *DailyAggregator) getActiveVehicles() ([]fleet.Vehicle, error) {
	vehiclesCollection := database.GetCollection("vehicles")

	opts := options.Find().SetSort(bson.D{{Key: "primaryidentifier", Value: 1}})
	cursor, err := vehiclesCollection.Find(context.Background(), bson.M{"status": fleet.VehicleStatusActive}, opts)
	if err != nil {
		return nil, err
	}

	var vehicles []fleet.Vehicle
	err = cursor.All(context.Background(), &vehicles)

	return vehicles, err
}

func (a *DailyAggregator) fetchDailyTelemetry(vehicleID int) ([]fleet.TelemetryPoint, error) {
	telemetryCollection := database.GetCollection("vehicle_telemetry")

	dayStart := a.SummaryDate
	dayEnd := dayStart.AddDate(0, 0, 1)

	searchQuery := bson.M{
		"vehicleid": vehicleID,
		"recordedat": bson.M{
			"$gte": dayStart,
			"$lt":  dayEnd,
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "recordedat", Value: 1}})
	cursor, err := telemetryCollection.Find(context.Background(), searchQuery, opts)
	if err != nil {
		return nil, err
	}

	var points []fleet.TelemetryPoint
	err = cursor.All(context.Background(), &points)

	return points, err
}

func upsertSummary(summary fleet.DailyVehicleSummary) error {
	summariesCollection := database.GetCollection("daily_vehicle_summaries")

	summary.ModificationDateTime = time.Now()

	opts := options.Update().SetUpsert(true)
	_, err := summariesCollection.UpdateOne(context.Background(), summaryFilter(summary), bson.M{"$set": summary}, opts)

	return err
}

func summaryFilter(summary fleet.DailyVehicleSummary) bson.M {
	return bson.M{
		"vehicleid":   summary.VehicleID,
		"summarydate": summary.SummaryDate,
	}
}
