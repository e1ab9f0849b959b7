package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/bmtsurvey/backend/internal/export"
	"github.com/bmtsurvey/backend/internal/models"
	"github.com/bmtsurvey/backend/internal/survey"
)

// SurveyStore is the remote-store seam. *db.Store satisfies it in
// production; tests inject a fake so no live database is needed.
type SurveyStore interface {
	Ping(ctx context.Context) error
	InsertSurvey(ctx context.Context, rec models.SurveyRecord) (string, error)
	ListSurveys(ctx context.Context) ([]models.SurveyRecord, error)
}

type Handler struct {
	Store     SurveyStore
	Validator *validator.Validate
	Logger    zerolog.Logger
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Submit a survey
// @Description Validate and persist one BMT market survey response
// @Tags surveys
// @Accept json
// @Produce json
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/surveys [post]
func (h *Handler) SurveyCreate(c *gin.Context) {
	var sub survey.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}

	rec, ferrs := survey.Normalize(h.Validator, sub)
	if len(ferrs) > 0 {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", ferrs)
		return
	}

	// Both timestamps are stamped once, here; the store assigns the id.
	now := time.Now().UTC()
	rec.SubmissionDate = now
	rec.CreatedAt = now

	id, err := h.Store.InsertSurvey(c.Request.Context(), rec)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to insert survey")
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to submit survey. Please try again.", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Survey submitted successfully!"})
}

// @Summary List surveys with dashboard stats
// @Tags surveys
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/surveys [get]
func (h *Handler) SurveysList(c *gin.Context) {
	records, err := h.Store.ListSurveys(c.Request.Context())
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to list surveys")
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to fetch survey data", err.Error())
		return
	}

	stats := survey.ComputeStats(records)
	if records == nil {
		records = []models.SurveyRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"items": records, "stats": stats})
}

// @Summary Export surveys to a spreadsheet
// @Tags surveys
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 400 {object} map[string]any
// @Router /api/surveys/export [get]
func (h *Handler) SurveysExport(c *gin.Context) {
	records, err := h.Store.ListSurveys(c.Request.Context())
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to list surveys for export")
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to fetch survey data", err.Error())
		return
	}
	if len(records) == 0 {
		writeError(c, http.StatusBadRequest, "EXPORT_NO_DATA", "No data to export", nil)
		return
	}

	b, err := export.Workbook(records)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to build export workbook")
		writeError(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to export survey data", err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(time.Now())))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b)
}

// @Summary Download a sample survey record
// @Tags surveys
// @Produce json
// @Success 200 {file} binary
// @Router /api/surveys/sample [get]
func (h *Handler) SampleExport(c *gin.Context) {
	b, err := survey.SampleJSON(time.Now())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to build sample", err.Error())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", survey.SampleFilename))
	c.Data(http.StatusOK, "application/json", b)
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
