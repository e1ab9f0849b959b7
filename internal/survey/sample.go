package survey

import (
	"encoding/json"
	"time"
)

const SampleFilename = "survey_sample.json"

// SampleJSON renders a one-element array with an illustrative submission,
// used as a reference download for field reps. It never touches the store.
func SampleJSON(now time.Time) ([]byte, error) {
	sample := map[string]any{
		"salesperson_name":     "John Doe",
		"physician_name":       "Dr. Sarah Johnson",
		"facility_name":        "City Medical Center",
		"facility_type":        "hospital",
		"city":                 "Mumbai",
		"state":                "maharashtra",
		"monthly_bmt_patients": 25,
		"annual_bmt_patients":  300,
		"submission_date":      now.UTC().Format(time.RFC3339),
	}
	return json.MarshalIndent([]map[string]any{sample}, "", "  ")
}
