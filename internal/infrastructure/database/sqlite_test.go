package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestSeedDefaultData(t *testing.T) {
	db := openTestDB(t)
	verifier := utils.NewBcryptVerifier()

	require.NoError(t, SeedDefaultData(db, verifier))

	var categories, products, staff, settings int64
	require.NoError(t, db.Model(&entity.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&entity.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&entity.Staff{}).Count(&staff).Error)
	require.NoError(t, db.Model(&entity.Setting{}).Count(&settings).Error)

	assert.EqualValues(t, 4, categories)
	assert.EqualValues(t, 22, products)
	assert.EqualValues(t, 3, staff)
	assert.EqualValues(t, 3, settings)

	// Seeded passwords are stored hashed, never plaintext.
	var admin entity.Staff
	require.NoError(t, db.First(&admin, "employee_id = ?", "001").Error)
	assert.NotEqual(t, "admin123", admin.Password)
	assert.True(t, verifier.Verify("admin123", admin.Password))

	// Drinks carry size and temperature options, pastries do not.
	var drink entity.Product
	require.NoError(t, db.First(&drink, "name = ?", "美式咖啡").Error)
	var drinkOptions int64
	require.NoError(t, db.Model(&entity.ProductOption{}).Where("product_id = ?", drink.ID).Count(&drinkOptions).Error)
	assert.EqualValues(t, 5, drinkOptions)

	var pastry entity.Product
	require.NoError(t, db.First(&pastry, "name = ? AND category_id <> ?", "提拉米苏", drink.CategoryID).Error)
	var pastryOptions int64
	require.NoError(t, db.Model(&entity.ProductOption{}).Where("product_id = ?", pastry.ID).Count(&pastryOptions).Error)
	assert.Zero(t, pastryOptions)
}

func TestSeedDefaultData_Idempotent(t *testing.T) {
	db := openTestDB(t)
	verifier := utils.NewBcryptVerifier()

	require.NoError(t, SeedDefaultData(db, verifier))
	require.NoError(t, SeedDefaultData(db, verifier))

	var products, staff int64
	require.NoError(t, db.Model(&entity.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&entity.Staff{}).Count(&staff).Error)
	assert.EqualValues(t, 22, products)
	assert.EqualValues(t, 3, staff)
}
