package database

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/liupeizhou/coffee-pos/internal/config"
	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
	"github.com/liupeizhou/coffee-pos/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens (and creates on first run) the local SQLite database file
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single register, single logical client: one connection is enough and
	// sidesteps SQLite writer contention.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.Printf("Successfully opened SQLite database at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog entities
		&entity.Category{},
		&entity.Product{},
		&entity.ProductOption{},
		&entity.ProductPreparation{},

		// Ledger entities
		&entity.Order{},
		&entity.OrderItem{},

		// Staff and shifts
		&entity.Staff{},
		&entity.Shift{},

		// System entities
		&entity.Setting{},
		&entity.DailySummary{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the default catalog, settings and staff accounts when
// the corresponding tables are empty. Safe to call on every startup.
func SeedDefaultData(db *gorm.DB, verifier utils.CredentialVerifier) error {
	var categoryCount int64
	if err := db.Model(&entity.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		if err := seedCatalog(db); err != nil {
			return err
		}
		if err := seedSettings(db); err != nil {
			return err
		}
	}

	var staffCount int64
	if err := db.Model(&entity.Staff{}).Count(&staffCount).Error; err != nil {
		return err
	}
	if staffCount == 0 {
		if err := seedStaff(db, verifier); err != nil {
			return err
		}
	}

	return nil
}

func seedCatalog(db *gorm.DB) error {
	log.Println("Seeding default catalog...")

	categories := []entity.Category{
		{Name: "咖啡", SortOrder: 1},
		{Name: "茶饮", SortOrder: 2},
		{Name: "糕点", SortOrder: 3},
		{Name: "配料", SortOrder: 4},
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	type seedProduct struct {
		name     string
		category int
		price    float64
		desc     string
	}
	seedProducts := []seedProduct{
		// Coffee
		{"美式咖啡", 0, 25, "经典美式咖啡"},
		{"拿铁", 0, 30, "牛奶咖啡"},
		{"摩卡", 0, 32, "巧克力咖啡"},
		{"卡布奇诺", 0, 30, "绵密奶泡咖啡"},
		{"焦糖玛奇朵", 0, 35, "焦糖风味咖啡"},
		{"馥芮白", 0, 33, "星巴克经典"},
		{"冷萃咖啡", 0, 28, "冷萃冰咖啡"},

		// Tea
		{"原味奶茶", 1, 22, "经典奶茶"},
		{"柠檬茶", 1, 18, "鲜柠檬茶"},
		{"蜜桃乌龙", 1, 25, "水蜜桃乌龙茶"},
		{"芝士奶盖", 1, 28, "芝士奶盖茶"},
		{"杨枝甘露", 1, 26, "芒果西柚饮品"},

		// Pastries
		{"原味司康", 2, 15, "英式司康"},
		{"蓝莓马芬", 2, 18, "蓝莓马芬蛋糕"},
		{"芝士蛋糕", 2, 25, "纽约芝士蛋糕"},
		{"提拉米苏", 2, 28, "经典提拉米苏"},
		{"牛角面包", 2, 15, "法式牛角包"},

		// Toppings
		{"珍珠", 3, 3, "黑糖珍珠"},
		{"椰果", 3, 3, "椰果粒"},
		{"芝士奶盖", 3, 5, "芝士奶盖"},
		{"焦糖酱", 3, 3, "焦糖酱"},
		{"榛子酱", 3, 4, "榛子酱"},
	}

	for _, sp := range seedProducts {
		desc := sp.desc
		product := entity.Product{
			Name:        sp.name,
			CategoryID:  categories[sp.category].ID,
			Price:       sp.price,
			Description: &desc,
			IsAvailable: true,
		}
		if err := db.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", sp.name, err)
		}

		// Drinks get size and temperature options
		if sp.category <= 1 {
			options := []entity.ProductOption{
				{ProductID: product.ID, OptionType: enum.OptionTypeSize, OptionName: "大杯", PriceModifier: 3},
				{ProductID: product.ID, OptionType: enum.OptionTypeSize, OptionName: "中杯", PriceModifier: 0},
				{ProductID: product.ID, OptionType: enum.OptionTypeSize, OptionName: "小杯", PriceModifier: -3},
				{ProductID: product.ID, OptionType: enum.OptionTypeTemperature, OptionName: "热", PriceModifier: 0},
				{ProductID: product.ID, OptionType: enum.OptionTypeTemperature, OptionName: "冷", PriceModifier: 0},
			}
			if err := db.Create(&options).Error; err != nil {
				return fmt.Errorf("failed to seed options for %s: %w", sp.name, err)
			}
		}
	}

	log.Println("Default catalog seeded successfully")
	return nil
}

func seedSettings(db *gorm.DB) error {
	defaults := map[string]string{
		entity.SettingShopName:       "咖啡店",
		entity.SettingMemberDiscount: "10",
		entity.SettingPaymentMethods: `["现金","支付宝","微信","银行卡"]`,
	}

	for key, value := range defaults {
		setting := entity.Setting{Key: key, Value: value}
		if err := db.Where("key = ?", key).FirstOrCreate(&setting).Error; err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", key, err)
		}
	}
	return nil
}

func seedStaff(db *gorm.DB, verifier utils.CredentialVerifier) error {
	log.Println("Seeding default staff...")

	type seedAccount struct {
		employeeID string
		name       string
		password   string
		role       enum.StaffRole
	}
	accounts := []seedAccount{
		{"001", "管理员", "admin123", enum.StaffRoleAdmin},
		{"002", "张三", "123456", enum.StaffRoleStaff},
		{"003", "李四", "123456", enum.StaffRoleStaff},
	}

	for _, a := range accounts {
		hashed, err := verifier.Hash(a.password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", a.employeeID, err)
		}
		staff := entity.Staff{
			EmployeeID: a.employeeID,
			Name:       a.name,
			Password:   hashed,
			Role:       a.role,
			IsActive:   true,
		}
		if err := db.Create(&staff).Error; err != nil {
			return fmt.Errorf("failed to seed staff %s: %w", a.employeeID, err)
		}
	}

	log.Println("Default staff seeded successfully")
	return nil
}
