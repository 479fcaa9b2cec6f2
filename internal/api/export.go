package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/renalplate/backend/internal/service"
	"github.com/renalplate/backend/internal/session"
)

const (
	csvContentType = "text/csv"
	pdfContentType = "application/pdf"
)

// ExportHandler renders the current plan or the meal log as CSV or PDF.
// The two formats are independent: a missing PDF font leaves CSV working.
type ExportHandler struct {
	sessions *session.Manager
	logs     service.IMealLogService
	exporter service.IExporter
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(sessions *session.Manager, logs service.IMealLogService, exporter service.IExporter) *ExportHandler {
	return &ExportHandler{sessions: sessions, logs: logs, exporter: exporter}
}

// RegisterRoutes registers the export routes
func (h *ExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	export := router.Group("/export")
	{
		export.GET("/plan.csv", h.PlanCSV)
		export.GET("/plan.pdf", h.PlanPDF)
		export.GET("/log.csv", h.LogCSV)
		export.GET("/log.pdf", h.LogPDF)
	}
}

// PlanCSV downloads the current selection as delimited text.
func (h *ExportHandler) PlanCSV(c *gin.Context) {
	sel := h.sessions.Get(sessionID(c))
	data, err := h.exporter.SelectionCSV(sel.Foods())
	if err != nil {
		abortWithError(c, err)
		return
	}
	sendAttachment(c, csvContentType, exportFilename("diet_plan", "csv"), data)
}

// PlanPDF downloads the current selection as a paginated document.
func (h *ExportHandler) PlanPDF(c *gin.Context) {
	sel := h.sessions.Get(sessionID(c))
	data, err := h.exporter.SelectionPDF(sel.Foods())
	if err != nil {
		abortWithError(c, err)
		return
	}
	sendAttachment(c, pdfContentType, exportFilename("diet_plan", "pdf"), data)
}

// LogCSV downloads the period's meal log summary as delimited text.
func (h *ExportHandler) LogCSV(c *gin.Context) {
	logHandler := LogHandler{sessions: h.sessions, logs: h.logs}
	logs, period, _, _, ok := logHandler.fetchLogs(c)
	if !ok {
		return
	}
	data, err := h.exporter.LogCSV(logs)
	if err != nil {
		abortWithError(c, err)
		return
	}
	sendAttachment(c, csvContentType, exportFilename("meal_log_"+string(period), "csv"), data)
}

// LogPDF downloads the period's meal log as a paginated document.
func (h *ExportHandler) LogPDF(c *gin.Context) {
	logHandler := LogHandler{sessions: h.sessions, logs: h.logs}
	logs, period, _, _, ok := logHandler.fetchLogs(c)
	if !ok {
		return
	}
	data, err := h.exporter.LogPDF(logs)
	if err != nil {
		abortWithError(c, err)
		return
	}
	sendAttachment(c, pdfContentType, exportFilename("meal_log_"+string(period), "pdf"), data)
}

func exportFilename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102_150405"), ext)
}

func sendAttachment(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
