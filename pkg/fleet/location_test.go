package fleet

import (
	"math"
	"testing"
)

func TestDistanceFromSamePoint(t *testing.T) {
	location := Location{Type: "Point", Coordinates: []float64{106.0, 10.0}}

	distance := location.DistanceFrom(&location)
	if distance != 0 {
		t.Errorf("expected 0, got %f", distance)
	}
}

func TestDistanceFromSymmetry(t *testing.T) {
	hanoi := Location{Type: "Point", Coordinates: []float64{105.8342, 21.0278}}
	saigon := Location{Type: "Point", Coordinates: []float64{106.6297, 10.8231}}

	there := hanoi.DistanceFrom(&saigon)
	back := saigon.DistanceFrom(&hanoi)

	if math.Abs(there-back) > 1e-9 {
		t.Errorf("expected symmetric distances, got %f and %f", there, back)
	}

	if there <= 0 || math.IsNaN(there) || math.IsInf(there, 0) {
		t.Errorf("expected a positive finite distance, got %f", there)
	}
}

func TestDistanceFromEquatorialDegree(t *testing.T) {
	origin := Location{Type: "Point", Coordinates: []float64{0, 0}}
	oneDegreeNorth := Location{Type: "Point", Coordinates: []float64{0, 1}}

	// 1 degree of latitude at the equator is ~111km
	distance := origin.DistanceFrom(&oneDegreeNorth)
	expected := 111.19

	if math.Abs(distance-expected)/expected > 0.01 {
		t.Errorf("expected ~%f km, got %f km", expected, distance)
	}
}
