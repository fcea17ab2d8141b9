package calculator

import (
	"math"
	"time"

	"github.com/fleettrack/fleettrack/pkg/fleet"
	"github.com/montanaflynn/stats"
)

// Thresholds are domain policy values, not derived constants, and vary per
// jurisdiction.
type Thresholds struct {
	// Consecutive points further apart than this are treated as a GPS jump
	// and excluded from the distance total.
	GPSJumpKM float64

	// Speed limits for the two violation tiers (km/h).
	SpeedingKMH float64
	CriticalKMH float64

	// Gaps between consecutive points at or above this are treated as a stop
	// or signal loss and excluded from driving time.
	DrivingGap time.Duration
}

var DefaultThresholds = Thresholds{
	GPSJumpKM:   50,
	SpeedingKMH: 80,
	CriticalKMH: 120,
	DrivingGap:  5 * time.Minute,
}

// DailySummary reduces one vehicle's time-ordered points for a single day
// into a summary record. Points must be sorted ascending by RecordedAt.
// An empty point set still produces a (zeroed) summary so every active
// vehicle gets a row for every day.
func DailySummary(vehicleID int, summaryDate time.Time, points []fleet.TelemetryPoint, thresholds Thresholds) fleet.DailyVehicleSummary {
	summary := fleet.DailyVehicleSummary{
		VehicleID:   vehicleID,
		SummaryDate: summaryDate,
	}

	if len(points) == 0 {
		return summary
	}

	totalDistance := 0.0
	speeds := []float64{}
	drivingSeconds := 0.0

	for index, point := range points {
		speeds = append(speeds, point.Speed)

		if index > 0 {
			previous := points[index-1]

			distance := previous.Location.DistanceFrom(&point.Location)
			if distance < thresholds.GPSJumpKM {
				totalDistance += distance
			}

			// Driving time only accumulates whilst the engine is on, and a
			// long gap means the vehicle was stopped or lost signal
			if point.EngineStatus {
				gap := point.RecordedAt.Sub(previous.RecordedAt)
				if gap < thresholds.DrivingGap {
					drivingSeconds += gap.Seconds()
				}
			}
		}

		if point.Speed > thresholds.CriticalKMH {
			summary.CriticalViolations += 1
		} else if point.Speed > thresholds.SpeedingKMH {
			summary.SpeedingViolations += 1
		}

		// Moving with the engine off suggests towing or unauthorised movement
		if !point.EngineStatus && point.Speed > 0 {
			summary.EngineOffMoving += 1
		}
	}

	speedsData := stats.Float64Data(speeds)
	avgSpeed, _ := speedsData.Mean()
	maxSpeed, _ := speedsData.Max()

	summary.TotalDistanceKM = roundTo2(totalDistance)
	summary.AvgSpeed = roundTo2(avgSpeed)
	summary.MaxSpeed = roundTo2(maxSpeed)
	summary.TotalPoints = len(points)
	summary.TotalDrivingMinutes = roundTo2(drivingSeconds / 60)

	return summary
}

func roundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}
