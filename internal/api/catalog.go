package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/renalplate/backend/internal/catalog"
	"github.com/renalplate/backend/internal/model"
)

// CatalogHandler serves the static food catalog and meal templates
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/catalog", h.ListFoods)
	router.GET("/catalog/tags", h.ListTags)
	router.GET("/templates", h.ListTemplates)
}

// ListFoods returns catalog entries, optionally filtered by dietary tags
// (comma-separated, all must match) and a name substring.
func (h *CatalogHandler) ListFoods(c *gin.Context) {
	var tags []string
	if raw := c.Query("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	items := catalog.Filter(tags, c.Query("q"))
	if items == nil {
		items = []model.FoodItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": catalog.Categories(),
		"foods":      items,
	})
}

// ListTags returns the sorted set of dietary tags in the catalog.
func (h *CatalogHandler) ListTags(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tags": catalog.AllTags()})
}

// ListTemplates returns the meal plan templates.
func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": catalog.Templates()})
}
