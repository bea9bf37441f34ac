package entity

import (
	"time"

	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
)

// Category groups products on the register screen
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;unique" json:"name"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// Product is a sellable catalog item
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	Image       *string   `gorm:"size:255" json:"image,omitempty"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`

	Category     *Category            `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Options      []ProductOption      `gorm:"foreignKey:ProductID" json:"options,omitempty"`
	Preparations []ProductPreparation `gorm:"foreignKey:ProductID" json:"preparations,omitempty"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// ProductOption is a priced variant choice for a product, e.g. size 大杯 +3.
// A product may carry any number of options per type; picking exactly one per
// type is the register's job, not the model's.
type ProductOption struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ProductID     uint            `gorm:"not null;index" json:"product_id"`
	OptionType    enum.OptionType `gorm:"size:50;not null" json:"option_type"`
	OptionName    string          `gorm:"size:255;not null" json:"option_name"`
	PriceModifier float64         `gorm:"default:0" json:"price_modifier"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName returns the table name for the ProductOption model
func (ProductOption) TableName() string {
	return "product_options"
}

// ProductPreparation is a brew/prep style choice, same shape as an option but
// a separate concept
type ProductPreparation struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	ProductID       uint    `gorm:"not null;index" json:"product_id"`
	PreparationName string  `gorm:"size:255;not null" json:"preparation_name"`
	PriceModifier   float64 `gorm:"default:0" json:"price_modifier"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName returns the table name for the ProductPreparation model
func (ProductPreparation) TableName() string {
	return "product_preparations"
}
