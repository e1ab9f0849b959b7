package survey

import (
	"testing"

	"github.com/bmtsurvey/backend/internal/models"
)

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.TotalSurveys != 0 || stats.TotalPatients != 0 || stats.FacilitiesCount != 0 || stats.AvgPatientsPerFacility != 0 {
		t.Fatalf("expected all-zero stats, got %+v", stats)
	}
}

func TestComputeStatsSameFacility(t *testing.T) {
	records := []models.SurveyRecord{
		{FacilityName: "A", MonthlyBMTPatients: 10},
		{FacilityName: "A", MonthlyBMTPatients: 20},
	}
	stats := ComputeStats(records)
	if stats.TotalSurveys != 2 {
		t.Fatalf("expected 2 surveys, got %d", stats.TotalSurveys)
	}
	if stats.FacilitiesCount != 1 {
		t.Fatalf("expected 1 facility, got %d", stats.FacilitiesCount)
	}
	if stats.TotalPatients != 30 {
		t.Fatalf("expected 30 patients, got %d", stats.TotalPatients)
	}
	if stats.AvgPatientsPerFacility != 30 {
		t.Fatalf("expected avg 30, got %d", stats.AvgPatientsPerFacility)
	}
}

func TestComputeStatsRoundsAverage(t *testing.T) {
	records := []models.SurveyRecord{
		{FacilityName: "A", MonthlyBMTPatients: 10},
		{FacilityName: "B", MonthlyBMTPatients: 15},
	}
	stats := ComputeStats(records)
	if stats.AvgPatientsPerFacility != 13 {
		t.Fatalf("expected 25/2 rounded to 13, got %d", stats.AvgPatientsPerFacility)
	}
}

func TestComputeStatsEmptyFacilityNameIsDistinct(t *testing.T) {
	records := []models.SurveyRecord{
		{FacilityName: "", MonthlyBMTPatients: 5},
		{FacilityName: "", MonthlyBMTPatients: 5},
		{FacilityName: "A", MonthlyBMTPatients: 10},
	}
	stats := ComputeStats(records)
	if stats.FacilitiesCount != 2 {
		t.Fatalf("expected empty name to count once, got %d facilities", stats.FacilitiesCount)
	}
	if stats.AvgPatientsPerFacility != 10 {
		t.Fatalf("expected avg 10, got %d", stats.AvgPatientsPerFacility)
	}
}
