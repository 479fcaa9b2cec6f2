package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalplate/backend/internal/catalog"
)

func TestAddFood(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food":     "grilled chicken breast",
		"category": catalog.CategoryProteins,
		"portion":  100,
	})
	assert.Equal(t, 201, w.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, 31.0, entry["protein"])
	assert.Equal(t, 1.0, entry["portion"])
}

func TestAddFoodInvalidPortion(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, portion := range []float64{-5, 0, 501} {
		w := performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
			"food":     "apple",
			"category": catalog.CategoryFruits,
			"portion":  portion,
		})
		assert.Equal(t, 400, w.Code, "portion %g", portion)
		assert.Contains(t, w.Body.String(), "invalid portion", "portion %g", portion)
	}

	// An omitted portion is a zero portion, rejected the same way
	w := performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food":     "apple",
		"category": catalog.CategoryFruits,
	})
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "invalid portion")

	// Selection stays untouched after failed adds
	w = performRequest(router, "GET", "/api/v1/plan", nil)
	var plan PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Empty(t, plan.Foods)
}

func TestAddFoodUnknown(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food":     "pizza",
		"category": catalog.CategoryGrains,
		"portion":  100,
	})
	assert.Equal(t, 404, w.Code)
}

func TestAddFoodValidatesBody(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food": "apple",
	})
	assert.Equal(t, 400, w.Code)
}

func TestGetPlanSummary(t *testing.T) {
	router, _ := setupTestRouter(t)

	performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food": "grilled chicken breast", "category": catalog.CategoryProteins, "portion": 100,
	})
	performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food": "white rice", "category": catalog.CategoryGrains, "portion": 100,
	})

	w := performRequest(router, "GET", "/api/v1/plan", nil)
	assert.Equal(t, 200, w.Code)

	var plan PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Len(t, plan.Foods, 2)
	assert.InDelta(t, 33.7, plan.Totals.Protein, 1e-9)
	assert.InDelta(t, 255, plan.Totals.Potassium, 1e-9)
	assert.InDelta(t, 253, plan.Totals.Phosphorus, 1e-9)
	assert.InDelta(t, 295, plan.Totals.Calories, 1e-9)
	assert.InDelta(t, 33.7/60*100, plan.PercentOfDRI["protein"], 1e-9)
	assert.Empty(t, plan.Warnings)
	assert.Len(t, plan.Chart, 4)
}

func TestRemoveFood(t *testing.T) {
	router, _ := setupTestRouter(t)

	performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food": "apple", "category": catalog.CategoryFruits, "portion": 100,
	})
	performRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food": "apple", "category": catalog.CategoryFruits, "portion": 50,
	})

	w := performRequest(router, "DELETE", "/api/v1/plan/foods", map[string]interface{}{
		"food": "apple", "category": catalog.CategoryFruits,
	})
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"removed": 2}`, w.Body.String())

	w = performRequest(router, "DELETE", "/api/v1/plan/foods", map[string]interface{}{
		"food": "apple", "category": catalog.CategoryFruits,
	})
	assert.Equal(t, 404, w.Code)
}

func TestLoadTemplate(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, "POST", "/api/v1/plan/template", map[string]interface{}{
		"name": "standard dialysis day",
	})
	assert.Equal(t, 200, w.Code)

	w = performRequest(router, "GET", "/api/v1/plan", nil)
	var plan PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Len(t, plan.Foods, 9)

	w = performRequest(router, "POST", "/api/v1/plan/template", map[string]interface{}{
		"name": "feast day",
	})
	assert.Equal(t, 404, w.Code)
}

func TestClearPlan(t *testing.T) {
	router, _ := setupTestRouter(t)

	performRequest(router, "POST", "/api/v1/plan/template", map[string]interface{}{
		"name": "low calorie day",
	})
	w := performRequest(router, "DELETE", "/api/v1/plan", nil)
	assert.Equal(t, 200, w.Code)

	w = performRequest(router, "GET", "/api/v1/plan", nil)
	var plan PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Empty(t, plan.Foods)
}

func TestPlanSessionsAreIsolated(t *testing.T) {
	router, _ := setupTestRouter(t)

	performSessionRequest(router, "POST", "/api/v1/plan/foods", map[string]interface{}{
		"food": "apple", "category": catalog.CategoryFruits, "portion": 100,
	}, "session-a")

	w := performSessionRequest(router, "GET", "/api/v1/plan", nil, "session-b")
	var plan PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Empty(t, plan.Foods)

	w = performSessionRequest(router, "GET", "/api/v1/plan", nil, "session-a")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Len(t, plan.Foods, 1)
}
