package service

import (
	"context"
	"testing"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
	"github.com/liupeizhou/coffee-pos/internal/infrastructure/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory_RejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, &CreateCategoryInput{Name: "咖啡", SortOrder: 1})
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, &CreateCategoryInput{Name: "咖啡", SortOrder: 2})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestDeleteCategory_CascadesToProducts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, &CreateCategoryInput{Name: "咖啡", SortOrder: 1})
	require.NoError(t, err)

	product := &entity.Product{Name: "美式咖啡", CategoryID: category.ID, Price: 15, IsAvailable: true}
	require.NoError(t, db.Create(product).Error)
	require.NoError(t, db.Create(&entity.ProductOption{
		ProductID:  product.ID,
		OptionType: enum.OptionTypeSize,
		OptionName: "大杯",
	}).Error)
	require.NoError(t, db.Create(&entity.ProductPreparation{
		ProductID:       product.ID,
		PreparationName: "加浓",
	}).Error)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID))

	var products, options, preparations int64
	require.NoError(t, db.Model(&entity.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&entity.ProductOption{}).Count(&options).Error)
	require.NoError(t, db.Model(&entity.ProductPreparation{}).Count(&preparations).Error)
	assert.Zero(t, products)
	assert.Zero(t, options)
	assert.Zero(t, preparations)
}

func TestDeleteCategory_UnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	err := svc.DeleteCategory(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
