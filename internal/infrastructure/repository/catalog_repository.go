package repository

import (
	"context"
	"errors"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	domainRepo "github.com/liupeizhou/coffee-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domainRepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.WithContext(ctx).Order("sort_order").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// DeleteCascade removes the category, its products and their options and
// preparations atomically. The legacy register issued these deletes as
// separate statements, which could strand products on a crash.
func (r *categoryRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var productIDs []uint
		if err := tx.Model(&entity.Product{}).Where("category_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
			return err
		}

		if len(productIDs) > 0 {
			if err := tx.Delete(&entity.ProductOption{}, "product_id IN ?", productIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&entity.ProductPreparation{}, "product_id IN ?", productIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&entity.Product{}, "category_id = ?", id).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&entity.Category{}, "id = ?", id).Error
	})
}

func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Category{}).Count(&count).Error
	return count, err
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Order("categories.sort_order, products.id").
		Find(&products).Error
	return products, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// DeleteCascade removes the product together with its options and
// preparations.
func (r *productRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.ProductOption{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.ProductPreparation{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Product{}, "id = ?", id).Error
	})
}

type productOptionRepository struct {
	db *gorm.DB
}

// NewProductOptionRepository creates a new product option repository
func NewProductOptionRepository(db *gorm.DB) domainRepo.ProductOptionRepository {
	return &productOptionRepository{db: db}
}

func (r *productOptionRepository) Create(ctx context.Context, option *entity.ProductOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

func (r *productOptionRepository) GetByID(ctx context.Context, id uint) (*entity.ProductOption, error) {
	var option entity.ProductOption
	err := r.db.WithContext(ctx).First(&option, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &option, err
}

func (r *productOptionRepository) ListByProduct(ctx context.Context, productID uint) ([]entity.ProductOption, error) {
	var options []entity.ProductOption
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&options).Error
	return options, err
}

func (r *productOptionRepository) ListAll(ctx context.Context) ([]entity.ProductOption, error) {
	var options []entity.ProductOption
	err := r.db.WithContext(ctx).Order("product_id, option_type").Find(&options).Error
	return options, err
}

func (r *productOptionRepository) Update(ctx context.Context, option *entity.ProductOption) error {
	return r.db.WithContext(ctx).Save(option).Error
}

func (r *productOptionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.ProductOption{}, "id = ?", id).Error
}

type productPreparationRepository struct {
	db *gorm.DB
}

// NewProductPreparationRepository creates a new product preparation repository
func NewProductPreparationRepository(db *gorm.DB) domainRepo.ProductPreparationRepository {
	return &productPreparationRepository{db: db}
}

func (r *productPreparationRepository) Create(ctx context.Context, preparation *entity.ProductPreparation) error {
	return r.db.WithContext(ctx).Create(preparation).Error
}

func (r *productPreparationRepository) GetByID(ctx context.Context, id uint) (*entity.ProductPreparation, error) {
	var preparation entity.ProductPreparation
	err := r.db.WithContext(ctx).First(&preparation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &preparation, err
}

func (r *productPreparationRepository) ListByProduct(ctx context.Context, productID uint) ([]entity.ProductPreparation, error) {
	var preparations []entity.ProductPreparation
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&preparations).Error
	return preparations, err
}

func (r *productPreparationRepository) Update(ctx context.Context, preparation *entity.ProductPreparation) error {
	return r.db.WithContext(ctx).Save(preparation).Error
}

func (r *productPreparationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.ProductPreparation{}, "id = ?", id).Error
}
