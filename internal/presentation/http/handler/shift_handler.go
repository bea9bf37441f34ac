package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/liupeizhou/coffee-pos/internal/application/service"
	"github.com/liupeizhou/coffee-pos/internal/presentation/http/dto/request"
	"github.com/liupeizhou/coffee-pos/internal/presentation/http/dto/response"
)

// ShiftHandler handles shift tracking HTTP requests
type ShiftHandler struct {
	shiftService *service.ShiftService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// Start handles opening a shift for the authenticated staff member
func (h *ShiftHandler) Start(c *gin.Context) {
	var req request.StartShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	staffID := GetStaffID(c)
	if staffID == 0 {
		response.Unauthorized(c, "Staff not authenticated")
		return
	}

	shift, err := h.shiftService.StartShift(c.Request.Context(), &service.StartShiftInput{
		StaffID:     staffID,
		OpeningCash: req.OpeningCash,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Shift started successfully", shift)
}

// End handles completing a shift
func (h *ShiftHandler) End(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid shift ID")
		return
	}

	var req request.EndShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shift, err := h.shiftService.EndShift(c.Request.Context(), &service.EndShiftInput{
		ID:          id,
		ClosingCash: req.ClosingCash,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shift ended successfully", shift)
}

// List handles listing recent shifts
func (h *ShiftHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	shifts, err := h.shiftService.ListShifts(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shifts retrieved successfully", shifts)
}

// Get handles fetching one shift
func (h *ShiftHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid shift ID")
		return
	}

	shift, err := h.shiftService.GetShift(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shift retrieved successfully", shift)
}

// GetCurrent handles fetching the caller's active shift, null when none
func (h *ShiftHandler) GetCurrent(c *gin.Context) {
	staffID := GetStaffID(c)
	if staffID == 0 {
		response.Unauthorized(c, "Staff not authenticated")
		return
	}

	shift, err := h.shiftService.GetCurrentShift(c.Request.Context(), staffID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Current shift retrieved successfully", shift)
}

// GetActive handles fetching the register's active shift, null when none
func (h *ShiftHandler) GetActive(c *gin.Context) {
	shift, err := h.shiftService.GetActiveShift(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Active shift retrieved successfully", shift)
}

// Recompute handles refreshing a shift's cached totals from the ledger
func (h *ShiftHandler) Recompute(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid shift ID")
		return
	}

	shift, err := h.shiftService.RecomputeTotals(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shift totals recomputed successfully", shift)
}
