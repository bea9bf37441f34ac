package entity

import "time"

// Setting is one key/value row of shop configuration. Values are stored as
// plain strings; non-string values round-trip through JSON encoding.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"size:255;not null;unique" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}

// Well-known settings keys consumed by the rest of the system
const (
	SettingShopName       = "shop_name"
	SettingMemberDiscount = "member_discount"
	SettingPaymentMethods = "payment_methods"
)
