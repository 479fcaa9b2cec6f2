package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/renalplate/backend/config"
	"github.com/renalplate/backend/internal/api"
	"github.com/renalplate/backend/internal/database"
	"github.com/renalplate/backend/internal/middleware"
	"github.com/renalplate/backend/internal/service"
	"github.com/renalplate/backend/internal/session"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New creates a server wired with the planner's handlers.
func New(cfg *config.Config, db *gorm.DB) *Server {
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	sessions := session.NewManager()
	logService := service.NewMealLogService(db, cfg.ShareBaseURL)
	exporter := service.NewExporter(cfg.FontPath)

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.POST("/session", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"session_id": sessions.New()})
	})

	api.NewCatalogHandler().RegisterRoutes(v1)
	api.NewPlanHandler(sessions).RegisterRoutes(v1)
	api.NewLogHandler(sessions, logService).RegisterRoutes(v1)
	api.NewExportHandler(sessions, logService, exporter).RegisterRoutes(v1)

	return &Server{
		router: router,
		db:     db,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start starts the server
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
