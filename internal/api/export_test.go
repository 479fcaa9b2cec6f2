package api

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renalplate/backend/internal/catalog"
	"github.com/renalplate/backend/internal/mocks"
	"github.com/renalplate/backend/internal/model"
	"github.com/renalplate/backend/internal/session"
)

func TestPlanCSVExport(t *testing.T) {
	router, _ := setupTestRouter(t)

	performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food": "grilled chicken breast", "category": catalog.CategoryProteins, "portion": 100,
	})

	w := performRequest(router, "GET", "/api/v1/export/plan.csv", nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "diet_plan_")

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "grilled chicken breast", records[1][0])
}

func TestPlanPDFDegradesWithoutFont(t *testing.T) {
	router, _ := setupTestRouter(t)

	performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food": "apple", "category": catalog.CategoryFruits, "portion": 100,
	})

	// The test router's exporter points at a missing font file
	w := performRequest(router, "GET", "/api/v1/export/plan.pdf", nil)
	assert.Equal(t, 503, w.Code)

	// CSV export is unaffected by the degraded PDF path
	w = performRequest(router, "GET", "/api/v1/export/plan.csv", nil)
	assert.Equal(t, 200, w.Code)
}

func TestLogCSVExport(t *testing.T) {
	router, db := setupTestRouter(t)

	require.NoError(t, db.Create(&model.MealLog{
		UserID:   model.GuestUserID,
		Date:     "2026-08-31",
		Foods:    model.SelectedFoodList{},
		Protein:  33.7,
		Calories: 295,
	}).Error)

	w := performRequest(router, "GET", "/api/v1/export/log.csv?period=daily&date=2026-08-31", nil)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "meal_log_daily_")

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2026-08-31", records[1][0])
	assert.Equal(t, "33.7", records[1][1])
}

func TestLogExportBadDate(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, "GET", "/api/v1/export/log.csv?date=bad", nil)
	assert.Equal(t, 400, w.Code)
}

func TestPDFExportWithRenderer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := session.NewManager()

	exporter := new(mocks.MockExporter)
	exporter.On("SelectionPDF", mock.Anything).Return([]byte("%PDF-1.4 fake"), nil)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewPlanHandler(sessions).RegisterRoutes(v1)
	NewExportHandler(sessions, new(mocks.MockMealLogService), exporter).RegisterRoutes(v1)

	performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food": "apple", "category": catalog.CategoryFruits, "portion": 100,
	})

	w := performRequest(router, "GET", "/api/v1/export/plan.pdf", nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".pdf")
	assert.Contains(t, w.Body.String(), "%PDF")
	exporter.AssertExpectations(t)
}
