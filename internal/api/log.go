package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/renalplate/backend/internal/logger"
	"github.com/renalplate/backend/internal/model"
	"github.com/renalplate/backend/internal/service"
	"github.com/renalplate/backend/internal/session"
)

// LogHandler persists finalized selections and serves the tracking view
type LogHandler struct {
	sessions *session.Manager
	logs     service.IMealLogService
}

// NewLogHandler creates a new LogHandler
func NewLogHandler(sessions *session.Manager, logs service.IMealLogService) *LogHandler {
	return &LogHandler{sessions: sessions, logs: logs}
}

// RegisterRoutes registers the log and share routes
func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/log", h.SaveLog)
	router.GET("/log", h.QueryLog)
	router.POST("/share", h.SharePlan)
}

// SaveLog snapshots the session's selection as today's meal log row and
// clears the selection on success.
func (h *LogHandler) SaveLog(c *gin.Context) {
	sel := h.sessions.Get(sessionID(c))
	foods := sel.Foods()
	if len(foods) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no foods selected"})
		return
	}

	date := time.Now().Format(service.DateLayout)
	id, err := h.logs.Save(c.Request.Context(), foods, sel.Totals(), date, model.GuestUserID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	sel.Clear()

	logger.Info("saved meal plan", zap.Int64("id", id), zap.String("date", date))
	c.JSON(http.StatusCreated, SaveResponse{ID: id, Date: date})
}

// QueryLog returns the logged days for a period around a date. The store
// returns rows in undefined order; entries are re-sorted by date here.
func (h *LogHandler) QueryLog(c *gin.Context) {
	logs, period, start, end, ok := h.fetchLogs(c)
	if !ok {
		return
	}

	resp := LogResponse{
		Period:  string(period),
		Start:   start,
		End:     end,
		Entries: []LogEntry{},
		Trend:   []TrendPoint{},
	}
	for _, l := range logs {
		resp.Entries = append(resp.Entries, LogEntry{
			ID:     l.ID,
			Date:   l.Date,
			Totals: l.Totals(),
			Foods:  l.Foods,
		})
		resp.Trend = append(resp.Trend, TrendPoint{
			Date:       l.Date,
			Protein:    l.Protein,
			Potassium:  l.Potassium / 100,
			Phosphorus: l.Phosphorus / 100,
			Calories:   l.Calories / 100,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// SharePlan persists the selection under a fresh token and returns the
// shareable reference. No retrieval route is served here.
func (h *LogHandler) SharePlan(c *gin.Context) {
	sel := h.sessions.Get(sessionID(c))
	foods := sel.Foods()
	if len(foods) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no foods selected"})
		return
	}

	id, url, err := h.logs.Share(c.Request.Context(), foods, model.GuestUserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	logger.Info("shared meal plan", zap.String("share_id", id))
	c.JSON(http.StatusCreated, ShareResponse{ID: id, URL: url})
}

// fetchLogs resolves the period/date query params, computes the window and
// loads the matching rows sorted by date.
func (h *LogHandler) fetchLogs(c *gin.Context) (logs []model.MealLog, period service.Period, start, end string, ok bool) {
	period = service.Period(c.DefaultQuery("period", string(service.PeriodDaily)))

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(service.DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return nil, period, "", "", false
		}
		date = parsed
	}

	start, end, err := service.PeriodRange(period, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, period, "", "", false
	}

	logs, err = h.logs.QueryRange(c.Request.Context(), model.GuestUserID, start, end)
	if err != nil {
		abortWithError(c, err)
		return nil, period, "", "", false
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date < logs[j].Date })
	return logs, period, start, end, true
}
