package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bmtsurvey/backend/internal/models"
	"github.com/bmtsurvey/backend/internal/survey"
)

func testRecord(facility string, monthly int) models.SurveyRecord {
	return models.SurveyRecord{
		ID:                 "rec-" + facility,
		SubmissionDate:     time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
		CreatedAt:          time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
		SalespersonName:    "Jane",
		PhysicianName:      "Dr. X",
		FacilityName:       facility,
		FacilityType:       "clinic",
		City:               "Pune",
		State:              "maharashtra",
		MonthlyBMTPatients: monthly,
		AnnualBMTPatients:  monthly * 12,
	}
}

func TestWorkbookEmptyInput(t *testing.T) {
	if _, err := Workbook(nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestWorkbookRowsAndHeaders(t *testing.T) {
	b, err := Workbook([]models.SurveyRecord{testRecord("A", 10), testRecord("B", 20)})
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 data rows, got %d", len(rows))
	}

	headers := Headers()
	if len(headers) != len(survey.Fields)+1 {
		t.Fatalf("expected %d headers, got %d", len(survey.Fields)+1, len(headers))
	}
	if rows[0][0] != "Submission Date" || rows[0][1] != "Salesperson Name" {
		t.Fatalf("unexpected leading headers: %v", rows[0][:2])
	}
	if rows[1][0] != "2026-08-29" {
		t.Fatalf("expected date cell, got %q", rows[1][0])
	}
}

func TestWorkbookColumnWidthCap(t *testing.T) {
	rec := testRecord("A", 10)
	rec.AdditionalNotes = strings.Repeat("x", 120)
	b, err := Workbook([]models.SurveyRecord{rec})
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	lastCol, err := excelize.ColumnNumberToName(len(Headers()))
	if err != nil {
		t.Fatalf("column name: %v", err)
	}
	w, err := f.GetColWidth(SheetName, lastCol)
	if err != nil {
		t.Fatalf("get col width: %v", err)
	}
	if w != maxColWidth {
		t.Fatalf("expected notes column capped at %d, got %v", maxColWidth, w)
	}

	// A short column sizes to its header plus padding.
	w, err = f.GetColWidth(SheetName, "A")
	if err != nil {
		t.Fatalf("get col width: %v", err)
	}
	if w != float64(len("Submission Date")+2) {
		t.Fatalf("unexpected width for submission date column: %v", w)
	}
}

func TestFilename(t *testing.T) {
	got := Filename(time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC))
	if got != "BMT_Survey_Data_2026-08-29.xlsx" {
		t.Fatalf("unexpected filename: %q", got)
	}
}
