package repository

import (
	"context"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
)

// CategoryRepository defines category persistence operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	// DeleteCascade removes the category together with its products and their
	// options/preparations in one transaction.
	DeleteCascade(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// ProductRepository defines product persistence operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	// List returns all products with their category preloaded, ordered by
	// category sort order then product id.
	List(ctx context.Context) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// DeleteCascade removes the product and its options/preparations in one
	// transaction.
	DeleteCascade(ctx context.Context, id uint) error
}

// ProductOptionRepository defines product option persistence operations
type ProductOptionRepository interface {
	Create(ctx context.Context, option *entity.ProductOption) error
	GetByID(ctx context.Context, id uint) (*entity.ProductOption, error)
	ListByProduct(ctx context.Context, productID uint) ([]entity.ProductOption, error)
	ListAll(ctx context.Context) ([]entity.ProductOption, error)
	Update(ctx context.Context, option *entity.ProductOption) error
	Delete(ctx context.Context, id uint) error
}

// ProductPreparationRepository defines product preparation persistence operations
type ProductPreparationRepository interface {
	Create(ctx context.Context, preparation *entity.ProductPreparation) error
	GetByID(ctx context.Context, id uint) (*entity.ProductPreparation, error)
	ListByProduct(ctx context.Context, productID uint) ([]entity.ProductPreparation, error)
	Update(ctx context.Context, preparation *entity.ProductPreparation) error
	Delete(ctx context.Context, id uint) error
}
