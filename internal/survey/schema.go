package survey

// Field kinds. They decide how raw input is parsed and how cell values are
// rendered on export.
const (
	KindText     = "text"
	KindEmail    = "email"
	KindSelect   = "select"
	KindInt      = "int"
	KindFloat    = "float"
	KindTextArea = "textarea"
)

// Field describes one survey question: its wire name, the human label used
// in validation messages and spreadsheet headers, and its constraints.
type Field struct {
	Name     string
	Label    string
	Kind     string
	Required bool
	Options  []string
}

var FacilityTypes = []string{"hospital", "clinic", "medical_center", "cancer_center", "research_institute"}

var States = []string{"maharashtra", "karnataka", "tamil_nadu", "gujarat", "delhi", "west_bengal", "rajasthan", "uttar_pradesh"}

// Fields is the survey schema in questionnaire order.
var Fields = []Field{
	{Name: "salesperson_name", Label: "Salesperson Name", Kind: KindText, Required: true},
	{Name: "salesperson_contact", Label: "Salesperson Contact", Kind: KindText},
	{Name: "salesperson_email", Label: "Salesperson Email", Kind: KindEmail},
	{Name: "territory", Label: "Territory", Kind: KindText},

	{Name: "physician_name", Label: "Physician Name", Kind: KindText, Required: true},
	{Name: "physician_specialization", Label: "Physician Specialization", Kind: KindText},
	{Name: "facility_name", Label: "Facility Name", Kind: KindText, Required: true},
	{Name: "facility_type", Label: "Facility Type", Kind: KindSelect, Required: true, Options: FacilityTypes},
	{Name: "city", Label: "City", Kind: KindText, Required: true},
	{Name: "state", Label: "State", Kind: KindSelect, Required: true, Options: States},
	{Name: "facility_contact", Label: "Facility Contact", Kind: KindText},
	{Name: "facility_email", Label: "Facility Email", Kind: KindEmail},

	{Name: "monthly_bmt_patients", Label: "Monthly BMT Patients", Kind: KindInt, Required: true},
	{Name: "annual_bmt_patients", Label: "Annual BMT Patients", Kind: KindInt, Required: true},
	{Name: "autologous_percentage", Label: "Autologous BMT %", Kind: KindFloat},
	{Name: "allogeneic_percentage", Label: "Allogeneic BMT %", Kind: KindFloat},
	{Name: "average_patient_age", Label: "Average Patient Age", Kind: KindFloat},
	{Name: "pediatric_percentage", Label: "Pediatric Patients %", Kind: KindFloat},

	{Name: "all_patients", Label: "ALL Patients", Kind: KindInt},
	{Name: "aml_patients", Label: "AML Patients", Kind: KindInt},
	{Name: "cll_patients", Label: "CLL Patients", Kind: KindInt},
	{Name: "cml_patients", Label: "CML Patients", Kind: KindInt},
	{Name: "multiple_myeloma_patients", Label: "Multiple Myeloma", Kind: KindInt},
	{Name: "lymphoma_patients", Label: "Lymphoma", Kind: KindInt},
	{Name: "aplastic_anemia_patients", Label: "Aplastic Anemia", Kind: KindInt},
	{Name: "other_blood_disorders", Label: "Other Blood Disorders", Kind: KindInt},
	{Name: "solid_tumor_patients", Label: "Solid Tumors", Kind: KindInt},

	{Name: "treatment_protocols", Label: "Treatment Protocols", Kind: KindTextArea},
	{Name: "challenges", Label: "Challenges", Kind: KindTextArea},
	{Name: "new_therapy_interest", Label: "New Therapy Interest", Kind: KindTextArea},
	{Name: "additional_notes", Label: "Additional Notes", Kind: KindTextArea},
}

var labelsByName = func() map[string]string {
	m := make(map[string]string, len(Fields))
	for _, f := range Fields {
		m[f.Name] = f.Label
	}
	return m
}()

// Label returns the human label for a field name, or the name itself when
// the field is unknown.
func Label(name string) string {
	if l, ok := labelsByName[name]; ok {
		return l
	}
	return name
}
