package repository

import (
	"context"
	"errors"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	domainRepo "github.com/liupeizhou/coffee-pos/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetAll(ctx context.Context) ([]entity.Setting, error) {
	var settings []entity.Setting
	err := r.db.WithContext(ctx).Find(&settings).Error
	return settings, err
}

func (r *settingsRepository) Get(ctx context.Context, key string) (*entity.Setting, error) {
	var setting entity.Setting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &setting, err
}

func (r *settingsRepository) Upsert(ctx context.Context, key, value string) error {
	setting := entity.Setting{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
}

type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *gorm.DB) domainRepo.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

// ClearTransactionalData wipes the ledger, shifts and summaries. Staff,
// catalog and settings are kept so the register stays usable.
func (r *maintenanceRepository) ClearTransactionalData(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM order_items").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM orders").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM shifts").Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM daily_summary").Error
	})
}
