package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/renalplate/backend/internal/model"
	"github.com/renalplate/backend/internal/service"
	"github.com/renalplate/backend/internal/session"
)

// setupTestRouter wires the full handler set against an in-memory store.
// The exporter gets a nonexistent font path, so PDF rendering degrades the
// way it does when the font asset is absent.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.MealLog{}, &model.SharedPlan{}))

	sessions := session.NewManager()
	logService := service.NewMealLogService(db, "https://renalplate.app/share")
	exporter := service.NewExporter("testdata-missing-font.ttf")

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewCatalogHandler().RegisterRoutes(v1)
	NewPlanHandler(sessions).RegisterRoutes(v1)
	NewLogHandler(sessions, logService).RegisterRoutes(v1)
	NewExportHandler(sessions, logService, exporter).RegisterRoutes(v1)

	return router, db
}

// performRequest performs an HTTP request against the test router.
func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	router.ServeHTTP(w, req)
	return w
}

// performSessionRequest is performRequest with an explicit session id.
func performSessionRequest(router *gin.Engine, method, path string, body interface{}, sessionID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(SessionHeader, sessionID)

	router.ServeHTTP(w, req)
	return w
}
