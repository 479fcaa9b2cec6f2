package api

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renalplate/backend/internal/catalog"
	"github.com/renalplate/backend/internal/mocks"
	"github.com/renalplate/backend/internal/model"
	"github.com/renalplate/backend/internal/service"
	"github.com/renalplate/backend/internal/session"
)

func TestSaveLogRoundTrip(t *testing.T) {
	router, _ := setupTestRouter(t)

	performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food": "grilled chicken breast", "category": catalog.CategoryProteins, "portion": 100,
	})
	performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food": "white rice", "category": catalog.CategoryGrains, "portion": 100,
	})

	w := performRequest(router, "POST", "/api/v1/log", nil)
	assert.Equal(t, 201, w.Code)

	var saved SaveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Greater(t, saved.ID, int64(0))
	assert.Equal(t, time.Now().Format(service.DateLayout), saved.Date)

	// Selection is cleared after a successful save
	w = performRequest(router, "GET", "/api/v1/plan", nil)
	var plan PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Empty(t, plan.Foods)

	// Querying the saved date returns the same totals and foods
	w = performRequest(router, "GET", "/api/v1/log?period=daily&date="+saved.Date, nil)
	assert.Equal(t, 200, w.Code)

	var resp LogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 1)
	entry := resp.Entries[0]
	assert.InDelta(t, 33.7, entry.Totals.Protein, 1e-9)
	assert.InDelta(t, 255, entry.Totals.Potassium, 1e-9)
	assert.Len(t, entry.Foods, 2)
	assert.Equal(t, "grilled chicken breast", entry.Foods[0].Food)
	require.Len(t, resp.Trend, 1)
	assert.InDelta(t, 2.55, resp.Trend[0].Potassium, 1e-9)
}

func TestSaveLogEmptySelection(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, "POST", "/api/v1/log", nil)
	assert.Equal(t, 400, w.Code)
}

func TestQueryLogEntriesSortedByDate(t *testing.T) {
	router, db := setupTestRouter(t)

	// Seed out of order; the handler re-sorts for display
	for _, date := range []string{"2026-08-20", "2026-08-03", "2026-08-11"} {
		require.NoError(t, db.Create(&model.MealLog{
			UserID: model.GuestUserID,
			Date:   date,
			Foods:  model.SelectedFoodList{},
		}).Error)
	}

	w := performRequest(router, "GET", "/api/v1/log?period=monthly&date=2026-08-15", nil)
	assert.Equal(t, 200, w.Code)

	var resp LogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 3)
	assert.Equal(t, "2026-08-03", resp.Entries[0].Date)
	assert.Equal(t, "2026-08-11", resp.Entries[1].Date)
	assert.Equal(t, "2026-08-20", resp.Entries[2].Date)
	assert.Equal(t, "2026-08-01", resp.Start)
	assert.Equal(t, "2026-08-31", resp.End)
}

func TestQueryLogWeeklyWindow(t *testing.T) {
	router, db := setupTestRouter(t)

	require.NoError(t, db.Create(&model.MealLog{UserID: model.GuestUserID, Date: "2026-08-31", Foods: model.SelectedFoodList{}}).Error)
	require.NoError(t, db.Create(&model.MealLog{UserID: model.GuestUserID, Date: "2026-09-06", Foods: model.SelectedFoodList{}}).Error)
	require.NoError(t, db.Create(&model.MealLog{UserID: model.GuestUserID, Date: "2026-09-07", Foods: model.SelectedFoodList{}}).Error)

	// 2026-09-02 is a Wednesday; its week is Mon 08-31 .. Sun 09-06
	w := performRequest(router, "GET", "/api/v1/log?period=weekly&date=2026-09-02", nil)
	assert.Equal(t, 200, w.Code)

	var resp LogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Entries, 2)
	assert.Equal(t, "2026-08-31", resp.Start)
	assert.Equal(t, "2026-09-06", resp.End)
}

func TestQueryLogBadParams(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, "GET", "/api/v1/log?date=31/08/2026", nil)
	assert.Equal(t, 400, w.Code)

	w = performRequest(router, "GET", "/api/v1/log?period=yearly", nil)
	assert.Equal(t, 400, w.Code)
}

func TestSharePlan(t *testing.T) {
	router, db := setupTestRouter(t)

	performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food": "apple", "category": catalog.CategoryFruits, "portion": 100,
	})

	w := performRequest(router, "POST", "/api/v1/share", nil)
	assert.Equal(t, 201, w.Code)

	var resp ShareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "https://renalplate.app/share/"+resp.ID, resp.URL)

	var plan model.SharedPlan
	require.NoError(t, db.First(&plan, "id = ?", resp.ID).Error)
	assert.Len(t, plan.Foods, 1)

	// Sharing does not clear the selection
	w = performRequest(router, "GET", "/api/v1/plan", nil)
	var planResp PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &planResp))
	assert.Len(t, planResp.Foods, 1)
}

func TestSharePlanEmptySelection(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, "POST", "/api/v1/share", nil)
	assert.Equal(t, 400, w.Code)
}

func TestSaveLogPersistenceFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := session.NewManager()
	logService := new(mocks.MockMealLogService)
	logService.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), fmt.Errorf("%w: disk full", service.ErrPersistence))

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewPlanHandler(sessions).RegisterRoutes(v1)
	NewLogHandler(sessions, logService).RegisterRoutes(v1)

	performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food": "apple", "category": catalog.CategoryFruits, "portion": 100,
	})

	w := performRequest(router, "POST", "/api/v1/log", nil)
	assert.Equal(t, 500, w.Code)

	// A failed save leaves the selection intact
	w = performRequest(router, "GET", "/api/v1/plan", nil)
	var plan PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Len(t, plan.Foods, 1)
	logService.AssertExpectations(t)
}
