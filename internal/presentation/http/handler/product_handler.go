package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/liupeizhou/coffee-pos/internal/application/service"
	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
	"github.com/liupeizhou/coffee-pos/internal/presentation/http/dto/request"
	"github.com/liupeizhou/coffee-pos/internal/presentation/http/dto/response"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService     *service.ProductService
	optionService      *service.ProductOptionService
	preparationService *service.ProductPreparationService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService, optionService *service.ProductOptionService, preparationService *service.ProductPreparationService) *ProductHandler {
	return &ProductHandler{
		productService:     productService,
		optionService:      optionService,
		preparationService: preparationService,
	}
}

// List handles listing all products in display order
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved successfully", products)
}

// Get handles fetching one product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), &service.UpdateProductInput{
		ID:          id,
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		IsAvailable: isAvailable,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product with its options and preparations
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

// ListOptions handles listing product options, all or for one product
func (h *ProductHandler) ListOptions(c *gin.Context) {
	var productID uint
	if raw := c.Query("product_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid product ID")
			return
		}
		productID = uint(parsed)
	}

	options, err := h.optionService.ListOptions(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product options retrieved successfully", options)
}

// CreateOption handles creating a product option
func (h *ProductHandler) CreateOption(c *gin.Context) {
	var req request.CreateProductOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	option, err := h.optionService.CreateOption(c.Request.Context(), &service.CreateProductOptionInput{
		ProductID:     req.ProductID,
		OptionType:    enum.OptionType(req.OptionType),
		OptionName:    req.OptionName,
		PriceModifier: req.PriceModifier,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product option created successfully", option)
}

// UpdateOption handles updating a product option
func (h *ProductHandler) UpdateOption(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid option ID")
		return
	}

	var req request.UpdateProductOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	option, err := h.optionService.UpdateOption(c.Request.Context(), &service.UpdateProductOptionInput{
		ID:            id,
		OptionType:    enum.OptionType(req.OptionType),
		OptionName:    req.OptionName,
		PriceModifier: req.PriceModifier,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product option updated successfully", option)
}

// DeleteOption handles deleting a product option
func (h *ProductHandler) DeleteOption(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid option ID")
		return
	}

	if err := h.optionService.DeleteOption(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product option deleted successfully", nil)
}

// ListPreparations handles listing preparations for one product
func (h *ProductHandler) ListPreparations(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	preparations, err := h.preparationService.ListPreparations(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product preparations retrieved successfully", preparations)
}

// CreatePreparation handles creating a product preparation
func (h *ProductHandler) CreatePreparation(c *gin.Context) {
	var req request.CreateProductPreparationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	preparation, err := h.preparationService.CreatePreparation(c.Request.Context(), &service.CreateProductPreparationInput{
		ProductID:       req.ProductID,
		PreparationName: req.PreparationName,
		PriceModifier:   req.PriceModifier,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product preparation created successfully", preparation)
}

// UpdatePreparation handles updating a product preparation
func (h *ProductHandler) UpdatePreparation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid preparation ID")
		return
	}

	var req request.UpdateProductPreparationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	preparation, err := h.preparationService.UpdatePreparation(c.Request.Context(), &service.UpdateProductPreparationInput{
		ID:              id,
		PreparationName: req.PreparationName,
		PriceModifier:   req.PriceModifier,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product preparation updated successfully", preparation)
}

// DeletePreparation handles deleting a product preparation
func (h *ProductHandler) DeletePreparation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid preparation ID")
		return
	}

	if err := h.preparationService.DeletePreparation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product preparation deleted successfully", nil)
}
