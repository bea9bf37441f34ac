package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/liupeizhou/coffee-pos/internal/application/service"
	"github.com/liupeizhou/coffee-pos/internal/presentation/http/dto/response"
)

// AdminHandler handles administrative maintenance HTTP requests
type AdminHandler struct {
	maintenanceService *service.MaintenanceService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(maintenanceService *service.MaintenanceService) *AdminHandler {
	return &AdminHandler{maintenanceService: maintenanceService}
}

// ClearData handles wiping all transactional data. Staff accounts, the
// catalog and settings are preserved.
func (h *AdminHandler) ClearData(c *gin.Context) {
	if err := h.maintenanceService.ClearAllData(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "All transactional data cleared successfully", nil)
}
