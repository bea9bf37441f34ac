package service

import (
	"context"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
	"github.com/liupeizhou/coffee-pos/pkg/utils"
)

// AuthService handles staff authentication
type AuthService struct {
	staffRepo  repository.StaffRepository
	shiftRepo  repository.ShiftRepository
	jwtManager *utils.JWTManager
	verifier   utils.CredentialVerifier
}

// NewAuthService creates a new auth service
func NewAuthService(staffRepo repository.StaffRepository, shiftRepo repository.ShiftRepository, jwtManager *utils.JWTManager, verifier utils.CredentialVerifier) *AuthService {
	return &AuthService{
		staffRepo:  staffRepo,
		shiftRepo:  shiftRepo,
		jwtManager: jwtManager,
		verifier:   verifier,
	}
}

// LoginResult represents the login response payload
type LoginResult struct {
	Staff        *entity.Staff `json:"staff"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}

// Login authenticates by employee id and password. A wrong id, wrong
// password or deactivated account all yield the same credential error.
func (s *AuthService) Login(ctx context.Context, employeeID, password string) (*LoginResult, error) {
	staff, err := s.staffRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if staff == nil || !staff.IsActive {
		return nil, apperror.ErrInvalidCredentials
	}

	if !s.verifier.Verify(password, staff.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(staff.ID, staff.EmployeeID, staff.Name, string(staff.Role))
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(staff.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Staff:        staff,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a fresh token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error) {
	staffID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil || !staff.IsActive {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(staff.ID, staff.EmployeeID, staff.Name, string(staff.Role))
	if err != nil {
		return nil, err
	}
	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(staff.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Staff:        staff,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout ends the session. A staff member with an active shift must end the
// shift first so the register never loses an open cash drawer.
func (s *AuthService) Logout(ctx context.Context, staffID uint) error {
	active, err := s.shiftRepo.GetActiveForStaff(ctx, staffID)
	if err != nil {
		return err
	}
	if active != nil {
		return apperror.NewConflictError("End the active shift before logging out")
	}
	return nil
}
