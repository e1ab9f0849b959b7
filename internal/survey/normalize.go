package survey

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bmtsurvey/backend/internal/models"
)

// Basic local@domain shape; anything stricter rejects addresses the field
// reps actually submit.
var emailPattern = regexp.MustCompile(`^\S+@\S+$`)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

// Submission is the raw form payload. Every field arrives as text; nothing
// is trusted until Normalize has turned it into a SurveyRecord.
type Submission struct {
	SalespersonName    string `json:"salesperson_name" validate:"required"`
	SalespersonContact string `json:"salesperson_contact"`
	SalespersonEmail   string `json:"salesperson_email" validate:"omitempty,contact_email"`
	Territory          string `json:"territory"`

	PhysicianName           string `json:"physician_name" validate:"required"`
	PhysicianSpecialization string `json:"physician_specialization"`
	FacilityName            string `json:"facility_name" validate:"required"`
	FacilityType            string `json:"facility_type" validate:"required,oneof=hospital clinic medical_center cancer_center research_institute"`
	City                    string `json:"city" validate:"required"`
	State                   string `json:"state" validate:"required,oneof=maharashtra karnataka tamil_nadu gujarat delhi west_bengal rajasthan uttar_pradesh"`
	FacilityContact         string `json:"facility_contact"`
	FacilityEmail           string `json:"facility_email" validate:"omitempty,contact_email"`

	MonthlyBMTPatients   string `json:"monthly_bmt_patients" validate:"required"`
	AnnualBMTPatients    string `json:"annual_bmt_patients" validate:"required"`
	AutologousPercentage string `json:"autologous_percentage"`
	AllogeneicPercentage string `json:"allogeneic_percentage"`
	AveragePatientAge    string `json:"average_patient_age"`
	PediatricPercentage  string `json:"pediatric_percentage"`

	ALLPatients             string `json:"all_patients"`
	AMLPatients             string `json:"aml_patients"`
	CLLPatients             string `json:"cll_patients"`
	CMLPatients             string `json:"cml_patients"`
	MultipleMyelomaPatients string `json:"multiple_myeloma_patients"`
	LymphomaPatients        string `json:"lymphoma_patients"`
	AplasticAnemiaPatients  string `json:"aplastic_anemia_patients"`
	OtherBloodDisorders     string `json:"other_blood_disorders"`
	SolidTumorPatients      string `json:"solid_tumor_patients"`

	TreatmentProtocols string `json:"treatment_protocols"`
	Challenges         string `json:"challenges"`
	NewTherapyInterest string `json:"new_therapy_interest"`
	AdditionalNotes    string `json:"additional_notes"`
}

// NewValidator builds the validator used for submissions: field errors are
// keyed by json name and email fields use the survey's relaxed pattern.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// Normalize converts a raw submission into a SurveyRecord. It is total:
// either the record is valid or the returned error list is non-empty, and
// nothing invalid survives into the record. Non-numeric input in a numeric
// field is rejected here rather than coerced later; blank optional numerics
// become nil.
func Normalize(v *validator.Validate, sub Submission) (models.SurveyRecord, FieldErrors) {
	var errs FieldErrors
	if err := v.Struct(sub); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, FieldError{Field: fe.Field(), Message: ruleMessage(fe)})
			}
		} else {
			errs = append(errs, FieldError{Field: "submission", Message: "Invalid submission payload"})
		}
	}

	p := parser{errs: &errs}
	rec := models.SurveyRecord{
		SalespersonName:    sub.SalespersonName,
		SalespersonContact: sub.SalespersonContact,
		SalespersonEmail:   sub.SalespersonEmail,
		Territory:          sub.Territory,

		PhysicianName:           sub.PhysicianName,
		PhysicianSpecialization: sub.PhysicianSpecialization,
		FacilityName:            sub.FacilityName,
		FacilityType:            sub.FacilityType,
		City:                    sub.City,
		State:                   sub.State,
		FacilityContact:         sub.FacilityContact,
		FacilityEmail:           sub.FacilityEmail,

		MonthlyBMTPatients:   p.intVal("monthly_bmt_patients", sub.MonthlyBMTPatients),
		AnnualBMTPatients:    p.intVal("annual_bmt_patients", sub.AnnualBMTPatients),
		AutologousPercentage: p.floatPtr("autologous_percentage", sub.AutologousPercentage),
		AllogeneicPercentage: p.floatPtr("allogeneic_percentage", sub.AllogeneicPercentage),
		AveragePatientAge:    p.floatPtr("average_patient_age", sub.AveragePatientAge),
		PediatricPercentage:  p.floatPtr("pediatric_percentage", sub.PediatricPercentage),

		ALLPatients:             p.intPtr("all_patients", sub.ALLPatients),
		AMLPatients:             p.intPtr("aml_patients", sub.AMLPatients),
		CLLPatients:             p.intPtr("cll_patients", sub.CLLPatients),
		CMLPatients:             p.intPtr("cml_patients", sub.CMLPatients),
		MultipleMyelomaPatients: p.intPtr("multiple_myeloma_patients", sub.MultipleMyelomaPatients),
		LymphomaPatients:        p.intPtr("lymphoma_patients", sub.LymphomaPatients),
		AplasticAnemiaPatients:  p.intPtr("aplastic_anemia_patients", sub.AplasticAnemiaPatients),
		OtherBloodDisorders:     p.intPtr("other_blood_disorders", sub.OtherBloodDisorders),
		SolidTumorPatients:      p.intPtr("solid_tumor_patients", sub.SolidTumorPatients),

		TreatmentProtocols: sub.TreatmentProtocols,
		Challenges:         sub.Challenges,
		NewTherapyInterest: sub.NewTherapyInterest,
		AdditionalNotes:    sub.AdditionalNotes,
	}

	if len(errs) > 0 {
		return models.SurveyRecord{}, errs
	}
	return rec, nil
}

func ruleMessage(fe validator.FieldError) string {
	label := Label(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "contact_email":
		return "Invalid email address"
	case "oneof":
		return "Invalid " + label
	default:
		return label + " is invalid"
	}
}

// parser accumulates numeric-field errors while Normalize assembles the
// record. Empty input is left to the required tag, so nothing is reported
// twice for the same field.
type parser struct {
	errs *FieldErrors
}

func (p parser) add(name, msg string) {
	*p.errs = append(*p.errs, FieldError{Field: name, Message: msg})
}

func (p parser) intVal(name, raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.add(name, "Must be a valid number")
		return 0
	}
	if n < 0 {
		p.add(name, "Must be a positive number")
		return 0
	}
	return n
}

func (p parser) intPtr(name, raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.add(name, "Must be a valid number")
		return nil
	}
	if n < 0 {
		p.add(name, "Must be a positive number")
		return nil
	}
	return &n
}

func (p parser) floatPtr(name, raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.add(name, "Must be a valid number")
		return nil
	}
	if f < 0 {
		p.add(name, "Must be a positive number")
		return nil
	}
	return &f
}
