package models

import "time"

// SurveyRecord is one submitted questionnaire. Optional numeric fields are
// pointers: nil means the respondent left the field blank.
type SurveyRecord struct {
	ID             string    `json:"id,omitempty"`
	SubmissionDate time.Time `json:"submission_date"`
	CreatedAt      time.Time `json:"created_at"`

	SalespersonName    string `json:"salesperson_name"`
	SalespersonContact string `json:"salesperson_contact,omitempty"`
	SalespersonEmail   string `json:"salesperson_email,omitempty"`
	Territory          string `json:"territory,omitempty"`

	PhysicianName           string `json:"physician_name"`
	PhysicianSpecialization string `json:"physician_specialization,omitempty"`
	FacilityName            string `json:"facility_name"`
	FacilityType            string `json:"facility_type"`
	City                    string `json:"city"`
	State                   string `json:"state"`
	FacilityContact         string `json:"facility_contact,omitempty"`
	FacilityEmail           string `json:"facility_email,omitempty"`

	MonthlyBMTPatients   int      `json:"monthly_bmt_patients"`
	AnnualBMTPatients    int      `json:"annual_bmt_patients"`
	AutologousPercentage *float64 `json:"autologous_percentage"`
	AllogeneicPercentage *float64 `json:"allogeneic_percentage"`
	AveragePatientAge    *float64 `json:"average_patient_age"`
	PediatricPercentage  *float64 `json:"pediatric_percentage"`

	ALLPatients             *int `json:"all_patients"`
	AMLPatients             *int `json:"aml_patients"`
	CLLPatients             *int `json:"cll_patients"`
	CMLPatients             *int `json:"cml_patients"`
	MultipleMyelomaPatients *int `json:"multiple_myeloma_patients"`
	LymphomaPatients        *int `json:"lymphoma_patients"`
	AplasticAnemiaPatients  *int `json:"aplastic_anemia_patients"`
	OtherBloodDisorders     *int `json:"other_blood_disorders"`
	SolidTumorPatients      *int `json:"solid_tumor_patients"`

	TreatmentProtocols string `json:"treatment_protocols,omitempty"`
	Challenges         string `json:"challenges,omitempty"`
	NewTherapyInterest string `json:"new_therapy_interest,omitempty"`
	AdditionalNotes    string `json:"additional_notes,omitempty"`
}

// DashboardStats is derived from the fetched record set on every dashboard
// load; it is never persisted.
type DashboardStats struct {
	TotalSurveys           int `json:"total_surveys"`
	TotalPatients          int `json:"total_patients"`
	FacilitiesCount        int `json:"facilities_count"`
	AvgPatientsPerFacility int `json:"avg_patients_per_facility"`
}
