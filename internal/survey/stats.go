package survey

import (
	"math"

	"github.com/bmtsurvey/backend/internal/models"
)

// ComputeStats derives the dashboard summary from the fetched record set.
// Distinct facilities follow set semantics: an empty facility name still
// counts as one distinct value.
func ComputeStats(records []models.SurveyRecord) models.DashboardStats {
	totalPatients := 0
	facilities := map[string]struct{}{}
	for _, r := range records {
		totalPatients += r.MonthlyBMTPatients
		facilities[r.FacilityName] = struct{}{}
	}

	avg := 0
	if len(facilities) > 0 {
		avg = int(math.Round(float64(totalPatients) / float64(len(facilities))))
	}

	return models.DashboardStats{
		TotalSurveys:           len(records),
		TotalPatients:          totalPatients,
		FacilitiesCount:        len(facilities),
		AvgPatientsPerFacility: avg,
	}
}
