package service

import (
	"context"

	"github.com/liupeizhou/coffee-pos/internal/domain/repository"
)

// MaintenanceService handles destructive store-wide operations
type MaintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository) *MaintenanceService {
	return &MaintenanceService{maintenanceRepo: maintenanceRepo}
}

// ClearAllData wipes orders, order items, shifts and daily summaries in one
// transaction. Staff accounts, the catalog and settings are preserved.
func (s *MaintenanceService) ClearAllData(ctx context.Context) error {
	return s.maintenanceRepo.ClearTransactionalData(ctx)
}
