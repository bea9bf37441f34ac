package enum

// StaffRole is the access level of a staff account
type StaffRole string

const (
	StaffRoleAdmin StaffRole = "admin"
	StaffRoleStaff StaffRole = "staff"
)

// IsValid reports whether the role is a known value
func (r StaffRole) IsValid() bool {
	return r == StaffRoleAdmin || r == StaffRoleStaff
}
