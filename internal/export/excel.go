package export

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bmtsurvey/backend/internal/models"
	"github.com/bmtsurvey/backend/internal/survey"
)

const SheetName = "BMT Survey Data"

const maxColWidth = 50

var ErrNoData = errors.New("no survey data to export")

// Filename returns the dated download name, e.g.
// BMT_Survey_Data_2026-08-29.xlsx.
func Filename(t time.Time) string {
	return fmt.Sprintf("BMT_Survey_Data_%s.xlsx", t.Format("2006-01-02"))
}

// Headers is the export column order: submission date first, then every
// survey field in questionnaire order.
func Headers() []string {
	out := make([]string, 0, len(survey.Fields)+1)
	out = append(out, "Submission Date")
	for _, f := range survey.Fields {
		out = append(out, f.Label)
	}
	return out
}

// Workbook builds the single-sheet spreadsheet for the given records. Each
// column is sized to the longer of its header and its longest stringified
// cell, capped at 50 character widths. Empty input is an error; the caller
// decides how to surface it.
func Workbook(records []models.SurveyRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(SheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	headers := Headers()
	widths := make([]int, len(headers))
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("set header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("style header %s: %w", cell, err)
		}
		widths[col] = len(header)
	}

	for rowIdx, rec := range records {
		row := rowIdx + 2
		for col, value := range rowValues(rec) {
			if l := len(cellString(value)); l > widths[col] {
				widths[col] = l
			}
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("cell name row %d col %d: %w", row, col+1, err)
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	for col, w := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("column name: %w", err)
		}
		width := w + 2
		if width > maxColWidth {
			width = maxColWidth
		}
		if err := f.SetColWidth(SheetName, name, name, float64(width)); err != nil {
			f.Close()
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// rowValues returns one cell per export column. nil means an absent
// optional numeric, rendered as an empty cell.
func rowValues(r models.SurveyRecord) []any {
	out := make([]any, 0, len(survey.Fields)+1)
	out = append(out, r.SubmissionDate.Format("2006-01-02"))
	for _, f := range survey.Fields {
		out = append(out, fieldValue(r, f.Name))
	}
	return out
}

func fieldValue(r models.SurveyRecord, name string) any {
	switch name {
	case "salesperson_name":
		return r.SalespersonName
	case "salesperson_contact":
		return r.SalespersonContact
	case "salesperson_email":
		return r.SalespersonEmail
	case "territory":
		return r.Territory
	case "physician_name":
		return r.PhysicianName
	case "physician_specialization":
		return r.PhysicianSpecialization
	case "facility_name":
		return r.FacilityName
	case "facility_type":
		return r.FacilityType
	case "city":
		return r.City
	case "state":
		return r.State
	case "facility_contact":
		return r.FacilityContact
	case "facility_email":
		return r.FacilityEmail
	case "monthly_bmt_patients":
		return r.MonthlyBMTPatients
	case "annual_bmt_patients":
		return r.AnnualBMTPatients
	case "autologous_percentage":
		return floatCell(r.AutologousPercentage)
	case "allogeneic_percentage":
		return floatCell(r.AllogeneicPercentage)
	case "average_patient_age":
		return floatCell(r.AveragePatientAge)
	case "pediatric_percentage":
		return floatCell(r.PediatricPercentage)
	case "all_patients":
		return intCell(r.ALLPatients)
	case "aml_patients":
		return intCell(r.AMLPatients)
	case "cll_patients":
		return intCell(r.CLLPatients)
	case "cml_patients":
		return intCell(r.CMLPatients)
	case "multiple_myeloma_patients":
		return intCell(r.MultipleMyelomaPatients)
	case "lymphoma_patients":
		return intCell(r.LymphomaPatients)
	case "aplastic_anemia_patients":
		return intCell(r.AplasticAnemiaPatients)
	case "other_blood_disorders":
		return intCell(r.OtherBloodDisorders)
	case "solid_tumor_patients":
		return intCell(r.SolidTumorPatients)
	case "treatment_protocols":
		return r.TreatmentProtocols
	case "challenges":
		return r.Challenges
	case "new_therapy_interest":
		return r.NewTherapyInterest
	case "additional_notes":
		return r.AdditionalNotes
	}
	return nil
}

func intCell(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatCell(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
