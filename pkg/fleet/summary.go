package fleet

import "time"

// DailyVehicleSummary holds the derived operational metrics for one vehicle
// over one calendar day. Identified by (VehicleID, SummaryDate) - recomputing
// a day fully replaces any previous record for that key.
type DailyVehicleSummary struct {
	VehicleID   int
	SummaryDate time.Time

	TotalDistanceKM float64
	AvgSpeed        float64
	MaxSpeed        float64

	TotalPoints int

	SpeedingViolations int
	CriticalViolations int
	EngineOffMoving    int

	TotalDrivingMinutes float64

	ModificationDateTime time.Time
}
