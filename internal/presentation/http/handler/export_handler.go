package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/liupeizhou/coffee-pos/internal/application/service"
	"github.com/liupeizhou/coffee-pos/internal/presentation/http/dto/request"
	"github.com/liupeizhou/coffee-pos/internal/presentation/http/dto/response"
)

// ExportHandler handles spreadsheet export HTTP requests
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Daily handles exporting the one-day workbook
func (h *ExportHandler) Daily(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, "date is required")
		return
	}

	path, err := h.exportService.ExportDaily(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily report exported successfully", gin.H{"file": path})
}

// Monthly handles exporting the calendar-month workbook
func (h *ExportHandler) Monthly(c *gin.Context) {
	var req request.ExportMonthlyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	path, err := h.exportService.ExportMonthly(c.Request.Context(), req.Year, req.Month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly report exported successfully", gin.H{"file": path})
}
