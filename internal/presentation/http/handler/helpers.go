package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetStaffID extracts the staff ID from the Gin context, 0 when absent
func GetStaffID(c *gin.Context) uint {
	staffIDVal, exists := c.Get("staff_id")
	if !exists {
		return 0
	}
	staffID, ok := staffIDVal.(uint)
	if !ok {
		return 0
	}
	return staffID
}

// GetStaffRole extracts the staff role from the Gin context
func GetStaffRole(c *gin.Context) string {
	role, exists := c.Get("staff_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the caller has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetStaffRole(c) == "admin"
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
