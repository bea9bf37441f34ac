package request

// CreateCategoryRequest represents a create category request
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	SortOrder int    `json:"sort_order"`
}

// UpdateCategoryRequest represents an update category request
type UpdateCategoryRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	SortOrder int    `json:"sort_order"`
}

// CreateProductRequest represents a create product request
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
}

// UpdateProductRequest represents an update product request
type UpdateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	IsAvailable *bool   `json:"is_available"`
}

// CreateProductOptionRequest represents a create product option request
type CreateProductOptionRequest struct {
	ProductID     uint    `json:"product_id" binding:"required"`
	OptionType    string  `json:"option_type" binding:"required"`
	OptionName    string  `json:"option_name" binding:"required,min=1,max=255"`
	PriceModifier float64 `json:"price_modifier"`
}

// UpdateProductOptionRequest represents an update product option request
type UpdateProductOptionRequest struct {
	OptionType    string  `json:"option_type" binding:"required"`
	OptionName    string  `json:"option_name" binding:"required,min=1,max=255"`
	PriceModifier float64 `json:"price_modifier"`
}

// CreateProductPreparationRequest represents a create preparation request
type CreateProductPreparationRequest struct {
	ProductID       uint    `json:"product_id" binding:"required"`
	PreparationName string  `json:"preparation_name" binding:"required,min=1,max=255"`
	PriceModifier   float64 `json:"price_modifier"`
}

// UpdateProductPreparationRequest represents an update preparation request
type UpdateProductPreparationRequest struct {
	PreparationName string  `json:"preparation_name" binding:"required,min=1,max=255"`
	PriceModifier   float64 `json:"price_modifier"`
}
