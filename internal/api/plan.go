package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/renalplate/backend/internal/logger"
	"github.com/renalplate/backend/internal/service"
	"github.com/renalplate/backend/internal/session"
)

// PlanHandler manages the working selection and the diet plan view
type PlanHandler struct {
	sessions *session.Manager
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(sessions *session.Manager) *PlanHandler {
	return &PlanHandler{sessions: sessions}
}

// RegisterRoutes registers the plan routes
func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plan := router.Group("/plan")
	{
		plan.GET("", h.GetPlan)
		plan.POST("/foods", h.AddFood)
		plan.DELETE("/foods", h.RemoveFood)
		plan.POST("/template", h.LoadTemplate)
		plan.DELETE("", h.ClearPlan)
	}
}

// AddFood adds one manual entry to the session's selection.
func (h *PlanHandler) AddFood(c *gin.Context) {
	var req AddFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel := h.sessions.Get(sessionID(c))
	entry, err := sel.Add(req.Food, req.Category, req.Portion)
	if err != nil {
		abortWithError(c, err)
		return
	}

	logger.Info("added food to selection",
		zap.String("food", req.Food),
		zap.String("category", req.Category),
		zap.Float64("grams", req.Portion),
	)
	c.JSON(http.StatusCreated, entry)
}

// RemoveFood removes every selection entry matching the (food, category)
// pair in one pass.
func (h *PlanHandler) RemoveFood(c *gin.Context) {
	var req RemoveFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel := h.sessions.Get(sessionID(c))
	removed := sel.Remove(req.Food, req.Category)
	if removed == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not in selection"})
		return
	}

	logger.Info("removed food from selection", zap.String("food", req.Food))
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// LoadTemplate replaces the selection with the named template's expansion.
func (h *PlanHandler) LoadTemplate(c *gin.Context) {
	var req LoadTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel := h.sessions.Get(sessionID(c))
	if err := sel.LoadTemplate(req.Name); err != nil {
		abortWithError(c, err)
		return
	}

	logger.Info("loaded meal template", zap.String("template", req.Name))
	c.JSON(http.StatusOK, gin.H{
		"message": "template loaded",
		"foods":   sel.Foods(),
	})
}

// ClearPlan empties the selection.
func (h *PlanHandler) ClearPlan(c *gin.Context) {
	h.sessions.Get(sessionID(c)).Clear()
	c.JSON(http.StatusOK, gin.H{"message": "selection cleared"})
}

// GetPlan returns the full plan view: foods, totals, percent-of-DRI,
// guidance, over-limit warnings and chart data.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	sel := h.sessions.Get(sessionID(c))
	c.JSON(http.StatusOK, buildPlanResponse(sel))
}

func buildPlanResponse(sel *service.Selection) PlanResponse {
	totals := sel.Totals()
	recs := service.Recommendations(totals)
	if recs == nil {
		recs = []string{}
	}
	warnings := service.OverLimitWarnings(totals)
	if warnings == nil {
		warnings = []service.OverLimitWarning{}
	}
	return PlanResponse{
		Foods:           sel.Foods(),
		Totals:          totals,
		PercentOfDRI:    service.PercentOfDRI(totals),
		Recommendations: recs,
		Warnings:        warnings,
		Chart: []ChartPoint{
			{Label: "protein", Value: totals.Protein},
			{Label: "potassium", Value: totals.Potassium / 100},
			{Label: "phosphorus", Value: totals.Phosphorus / 100},
			{Label: "calories", Value: totals.Calories / 100},
		},
	}
}
