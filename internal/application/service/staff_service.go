package service

import (
	"context"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
	"github.com/liupeizhou/coffee-pos/internal/domain/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
	"github.com/liupeizhou/coffee-pos/pkg/utils"
)

// StaffService handles staff account management
type StaffService struct {
	staffRepo repository.StaffRepository
	verifier  utils.CredentialVerifier
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repository.StaffRepository, verifier utils.CredentialVerifier) *StaffService {
	return &StaffService{
		staffRepo: staffRepo,
		verifier:  verifier,
	}
}

// CreateStaffInput represents the create staff input
type CreateStaffInput struct {
	EmployeeID string
	Name       string
	Password   string
	Role       enum.StaffRole
}

// CreateStaff creates a new staff account
func (s *StaffService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.Staff, error) {
	if !input.Role.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid staff role")
	}

	existing, err := s.staffRepo.GetByEmployeeID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Staff with this employee id already exists")
	}

	hashed, err := s.verifier.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	staff := &entity.Staff{
		EmployeeID: input.EmployeeID,
		Name:       input.Name,
		Password:   hashed,
		Role:       input.Role,
		IsActive:   true,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// GetStaff retrieves a staff account by ID
func (s *StaffService) GetStaff(ctx context.Context, id uint) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff")
	}
	return staff, nil
}

// ListStaff lists all staff accounts
func (s *StaffService) ListStaff(ctx context.Context) ([]entity.Staff, error) {
	return s.staffRepo.List(ctx)
}

// UpdateStaffInput represents the update staff input. A nil Password leaves
// the stored credential unchanged.
type UpdateStaffInput struct {
	ID       uint
	Name     string
	Password *string
	Role     enum.StaffRole
	IsActive bool
}

// UpdateStaff updates a staff account
func (s *StaffService) UpdateStaff(ctx context.Context, input *UpdateStaffInput) (*entity.Staff, error) {
	if !input.Role.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid staff role")
	}

	staff, err := s.staffRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff")
	}

	staff.Name = input.Name
	staff.Role = input.Role
	staff.IsActive = input.IsActive

	if input.Password != nil && *input.Password != "" {
		hashed, err := s.verifier.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		staff.Password = hashed
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// DeleteStaff deletes a staff account
func (s *StaffService) DeleteStaff(ctx context.Context, id uint) error {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if staff == nil {
		return apperror.NewNotFoundError("Staff")
	}

	return s.staffRepo.Delete(ctx, id)
}
