package request

// CreateStaffRequest represents a create staff request
type CreateStaffRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,min=1,max=50"`
	Name       string `json:"name" binding:"required,min=1,max=255"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required"`
}

// UpdateStaffRequest represents an update staff request. Password is
// optional; when omitted the stored credential is kept.
type UpdateStaffRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Password *string `json:"password"`
	Role     string  `json:"role" binding:"required"`
	IsActive *bool   `json:"is_active"`
}
