package service

import (
	"context"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
	"github.com/liupeizhou/coffee-pos/internal/domain/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name        string
	CategoryID  uint
	Price       float64
	Image       *string
	Description *string
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	product := &entity.Product{
		Name:        input.Name,
		CategoryID:  input.CategoryID,
		Price:       input.Price,
		Image:       input.Image,
		Description: input.Description,
		IsAvailable: true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists all products with category names, in display order
func (s *ProductService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.List(ctx)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID          uint
	Name        string
	CategoryID  uint
	Price       float64
	Image       *string
	Description *string
	IsAvailable bool
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.CategoryID != product.CategoryID {
		category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	product.Name = input.Name
	product.CategoryID = input.CategoryID
	product.Price = input.Price
	product.Image = input.Image
	product.Description = input.Description
	product.IsAvailable = input.IsAvailable
	product.Category = nil

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product and its options and preparations
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	return s.productRepo.DeleteCascade(ctx, id)
}

// ProductOptionService handles product option operations
type ProductOptionService struct {
	optionRepo  repository.ProductOptionRepository
	productRepo repository.ProductRepository
}

// NewProductOptionService creates a new product option service
func NewProductOptionService(optionRepo repository.ProductOptionRepository, productRepo repository.ProductRepository) *ProductOptionService {
	return &ProductOptionService{
		optionRepo:  optionRepo,
		productRepo: productRepo,
	}
}

// CreateProductOptionInput represents the create product option input
type CreateProductOptionInput struct {
	ProductID     uint
	OptionType    enum.OptionType
	OptionName    string
	PriceModifier float64
}

// CreateOption creates a new product option
func (s *ProductOptionService) CreateOption(ctx context.Context, input *CreateProductOptionInput) (*entity.ProductOption, error) {
	if !input.OptionType.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid option type")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	option := &entity.ProductOption{
		ProductID:     input.ProductID,
		OptionType:    input.OptionType,
		OptionName:    input.OptionName,
		PriceModifier: input.PriceModifier,
	}

	if err := s.optionRepo.Create(ctx, option); err != nil {
		return nil, err
	}

	return option, nil
}

// ListOptions lists options for one product, or all options when productID is 0
func (s *ProductOptionService) ListOptions(ctx context.Context, productID uint) ([]entity.ProductOption, error) {
	if productID == 0 {
		return s.optionRepo.ListAll(ctx)
	}
	return s.optionRepo.ListByProduct(ctx, productID)
}

// UpdateProductOptionInput represents the update product option input
type UpdateProductOptionInput struct {
	ID            uint
	OptionType    enum.OptionType
	OptionName    string
	PriceModifier float64
}

// UpdateOption updates a product option
func (s *ProductOptionService) UpdateOption(ctx context.Context, input *UpdateProductOptionInput) (*entity.ProductOption, error) {
	if !input.OptionType.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid option type")
	}

	option, err := s.optionRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, apperror.NewNotFoundError("Product option")
	}

	option.OptionType = input.OptionType
	option.OptionName = input.OptionName
	option.PriceModifier = input.PriceModifier

	if err := s.optionRepo.Update(ctx, option); err != nil {
		return nil, err
	}

	return option, nil
}

// DeleteOption deletes a product option
func (s *ProductOptionService) DeleteOption(ctx context.Context, id uint) error {
	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if option == nil {
		return apperror.NewNotFoundError("Product option")
	}

	return s.optionRepo.Delete(ctx, id)
}

// ProductPreparationService handles product preparation operations
type ProductPreparationService struct {
	preparationRepo repository.ProductPreparationRepository
	productRepo     repository.ProductRepository
}

// NewProductPreparationService creates a new product preparation service
func NewProductPreparationService(preparationRepo repository.ProductPreparationRepository, productRepo repository.ProductRepository) *ProductPreparationService {
	return &ProductPreparationService{
		preparationRepo: preparationRepo,
		productRepo:     productRepo,
	}
}

// CreateProductPreparationInput represents the create preparation input
type CreateProductPreparationInput struct {
	ProductID       uint
	PreparationName string
	PriceModifier   float64
}

// CreatePreparation creates a new product preparation
func (s *ProductPreparationService) CreatePreparation(ctx context.Context, input *CreateProductPreparationInput) (*entity.ProductPreparation, error) {
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	preparation := &entity.ProductPreparation{
		ProductID:       input.ProductID,
		PreparationName: input.PreparationName,
		PriceModifier:   input.PriceModifier,
	}

	if err := s.preparationRepo.Create(ctx, preparation); err != nil {
		return nil, err
	}

	return preparation, nil
}

// ListPreparations lists preparations for one product
func (s *ProductPreparationService) ListPreparations(ctx context.Context, productID uint) ([]entity.ProductPreparation, error) {
	return s.preparationRepo.ListByProduct(ctx, productID)
}

// UpdateProductPreparationInput represents the update preparation input
type UpdateProductPreparationInput struct {
	ID              uint
	PreparationName string
	PriceModifier   float64
}

// UpdatePreparation updates a product preparation
func (s *ProductPreparationService) UpdatePreparation(ctx context.Context, input *UpdateProductPreparationInput) (*entity.ProductPreparation, error) {
	preparation, err := s.preparationRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if preparation == nil {
		return nil, apperror.NewNotFoundError("Product preparation")
	}

	preparation.PreparationName = input.PreparationName
	preparation.PriceModifier = input.PriceModifier

	if err := s.preparationRepo.Update(ctx, preparation); err != nil {
		return nil, err
	}

	return preparation, nil
}

// DeletePreparation deletes a product preparation
func (s *ProductPreparationService) DeletePreparation(ctx context.Context, id uint) error {
	preparation, err := s.preparationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if preparation == nil {
		return apperror.NewNotFoundError("Product preparation")
	}

	return s.preparationRepo.Delete(ctx, id)
}
