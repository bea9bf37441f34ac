package repository

import (
	"context"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
)

// SettingsRepository defines key/value settings persistence operations
type SettingsRepository interface {
	GetAll(ctx context.Context) ([]entity.Setting, error)
	Get(ctx context.Context, key string) (*entity.Setting, error)
	// Upsert writes one key, replacing any existing value.
	Upsert(ctx context.Context, key, value string) error
}

// MaintenanceRepository defines destructive store-wide operations
type MaintenanceRepository interface {
	// ClearTransactionalData deletes order items, orders, shifts and daily
	// summaries in one transaction. Staff, catalog and settings survive.
	ClearTransactionalData(ctx context.Context) error
}
