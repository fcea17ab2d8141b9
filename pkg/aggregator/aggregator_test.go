package aggregator

import (
	"testing"
	"time"

	"github.com/fleettrack/fleettrack/pkg/fleet"
)

func TestSummaryFilterIdentity(t *testing.T) {
	summary := fleet.DailyVehicleSummary{
		VehicleID:       7,
		SummaryDate:     time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC),
		TotalDistanceKM: 42.5,
		TotalPoints:     100,
	}

	filter := summaryFilter(summary)

	// The upsert is keyed on the summary identity and nothing else,
	// otherwise re-runs would insert rather than replace
	if len(filter) != 2 {
		t.Errorf("expected filter on exactly 2 fields, got %d", len(filter))
	}
	if filter["vehicleid"] != 7 {
		t.Errorf("expected vehicleid 7, got %v", filter["vehicleid"])
	}
	if filter["summarydate"] != summary.SummaryDate {
		t.Errorf("expected summarydate %v, got %v", summary.SummaryDate, filter["summarydate"])
	}
}

func TestRunTotalsAdd(t *testing.T) {
	totals := runTotals{}

	totals.Add(fleet.DailyVehicleSummary{
		TotalPoints:        120,
		SpeedingViolations: 3,
		CriticalViolations: 1,
	})
	totals.Add(fleet.DailyVehicleSummary{
		TotalPoints:        80,
		SpeedingViolations: 0,
		CriticalViolations: 2,
	})

	if totals.Vehicles != 2 {
		t.Errorf("expected 2 vehicles, got %d", totals.Vehicles)
	}
	if totals.Points != 200 {
		t.Errorf("expected 200 points, got %d", totals.Points)
	}
	if totals.Violations != 6 {
		t.Errorf("expected 6 violations, got %d", totals.Violations)
	}
}

func TestParseTargetDate(t *testing.T) {
	targetDate, err := parseTargetDate("2026-02-17")
	if err != nil {
		t.Fatal(err)
	}

	expected := time.Date(2026, 2, 17, 0, 0, 0, 0, time.Local)
	if !targetDate.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, targetDate)
	}
}

func TestParseTargetDateMalformed(t *testing.T) {
	_, err := parseTargetDate("17/02/2026")
	if err == nil {
		t.Error("expected an error for a malformed date")
	}
}

func TestParseTargetDateDefaultsToYesterday(t *testing.T) {
	targetDate, err := parseTargetDate("")
	if err != nil {
		t.Fatal(err)
	}

	now := time.Now()
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, -1)

	if !targetDate.Equal(yesterday) {
		t.Errorf("expected %v, got %v", yesterday, targetDate)
	}
}
