package survey

import (
	"testing"
)

func validSubmission() Submission {
	return Submission{
		SalespersonName:    "Jane",
		PhysicianName:      "Dr. X",
		FacilityName:       "Clinic A",
		FacilityType:       "clinic",
		City:               "Pune",
		State:              "maharashtra",
		MonthlyBMTPatients: "10",
		AnnualBMTPatients:  "120",
	}
}

func TestNormalizeValidSubmission(t *testing.T) {
	v := NewValidator()
	rec, errs := Normalize(v, validSubmission())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if rec.SalespersonName != "Jane" || rec.FacilityName != "Clinic A" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.MonthlyBMTPatients != 10 || rec.AnnualBMTPatients != 120 {
		t.Fatalf("expected parsed patient counts, got %d and %d", rec.MonthlyBMTPatients, rec.AnnualBMTPatients)
	}
	if rec.AutologousPercentage != nil || rec.ALLPatients != nil {
		t.Fatalf("expected blank optional numerics to be nil")
	}
}

func TestNormalizeMissingRequiredFields(t *testing.T) {
	v := NewValidator()
	_, errs := Normalize(v, Submission{})
	if len(errs) == 0 {
		t.Fatal("expected field errors for empty submission")
	}
	want := []string{
		"salesperson_name", "physician_name", "facility_name", "facility_type",
		"city", "state", "monthly_bmt_patients", "annual_bmt_patients",
	}
	got := map[string]string{}
	for _, fe := range errs {
		got[fe.Field] = fe.Message
	}
	for _, name := range want {
		if _, ok := got[name]; !ok {
			t.Fatalf("expected error for %s, got %v", name, errs)
		}
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %d: %v", len(want), len(errs), errs)
	}
	if got["monthly_bmt_patients"] != "Monthly BMT Patients is required" {
		t.Fatalf("unexpected message: %q", got["monthly_bmt_patients"])
	}
}

func TestNormalizeRejectsNonNumericInput(t *testing.T) {
	v := NewValidator()
	sub := validSubmission()
	sub.MonthlyBMTPatients = "abc"
	_, errs := Normalize(v, sub)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Field != "monthly_bmt_patients" || errs[0].Message != "Must be a valid number" {
		t.Fatalf("unexpected error: %+v", errs[0])
	}
}

func TestNormalizeRejectsNegativeNumbers(t *testing.T) {
	v := NewValidator()
	sub := validSubmission()
	sub.AMLPatients = "-3"
	_, errs := Normalize(v, sub)
	if len(errs) != 1 || errs[0].Field != "aml_patients" {
		t.Fatalf("expected aml_patients error, got %v", errs)
	}
	if errs[0].Message != "Must be a positive number" {
		t.Fatalf("unexpected message: %q", errs[0].Message)
	}
}

func TestNormalizeOptionalNumerics(t *testing.T) {
	v := NewValidator()
	sub := validSubmission()
	sub.AutologousPercentage = "62.5"
	sub.ALLPatients = "4"
	rec, errs := Normalize(v, sub)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if rec.AutologousPercentage == nil || *rec.AutologousPercentage != 62.5 {
		t.Fatalf("expected autologous 62.5, got %v", rec.AutologousPercentage)
	}
	if rec.ALLPatients == nil || *rec.ALLPatients != 4 {
		t.Fatalf("expected ALL patients 4, got %v", rec.ALLPatients)
	}
}

func TestNormalizeEmailRule(t *testing.T) {
	v := NewValidator()

	sub := validSubmission()
	sub.SalespersonEmail = "not-an-email"
	_, errs := Normalize(v, sub)
	if len(errs) != 1 || errs[0].Field != "salesperson_email" {
		t.Fatalf("expected salesperson_email error, got %v", errs)
	}
	if errs[0].Message != "Invalid email address" {
		t.Fatalf("unexpected message: %q", errs[0].Message)
	}

	sub.SalespersonEmail = "jane@clinic-a.example"
	if _, errs := Normalize(v, sub); len(errs) != 0 {
		t.Fatalf("expected valid email to pass, got %v", errs)
	}
}

func TestNormalizeRejectsUnknownEnumValues(t *testing.T) {
	v := NewValidator()
	sub := validSubmission()
	sub.FacilityType = "pharmacy"
	_, errs := Normalize(v, sub)
	if len(errs) != 1 || errs[0].Field != "facility_type" {
		t.Fatalf("expected facility_type error, got %v", errs)
	}
	if errs[0].Message != "Invalid Facility Type" {
		t.Fatalf("unexpected message: %q", errs[0].Message)
	}
}

func TestNormalizeReturnsZeroRecordOnFailure(t *testing.T) {
	v := NewValidator()
	sub := validSubmission()
	sub.AnnualBMTPatients = "12x"
	rec, errs := Normalize(v, sub)
	if len(errs) == 0 {
		t.Fatal("expected errors")
	}
	if rec.SalespersonName != "" || rec.MonthlyBMTPatients != 0 {
		t.Fatalf("expected zero record alongside errors, got %+v", rec)
	}
}
