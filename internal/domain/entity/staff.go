package entity

import (
	"time"

	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
)

// Staff is an employee account on the register
type Staff struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	EmployeeID string         `gorm:"size:50;not null;unique" json:"employee_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Password   string         `gorm:"size:255;not null" json:"-"`
	Role       enum.StaffRole `gorm:"size:50;default:'staff'" json:"role"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`

	Shifts []Shift `gorm:"foreignKey:StaffID" json:"-"`
}

// TableName returns the table name for the Staff model
func (Staff) TableName() string {
	return "staff"
}
