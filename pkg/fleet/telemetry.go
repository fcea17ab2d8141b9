package fleet

import "time"

// TelemetryPoint is a single GPS/engine sample reported by a vehicle.
type TelemetryPoint struct {
	VehicleID int

	RecordedAt time.Time

	Location Location

	Speed        float64 // km/h
	EngineStatus bool
}
