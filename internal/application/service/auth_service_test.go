package service

import (
	"context"
	"testing"
	"time"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
	"github.com/liupeizhou/coffee-pos/internal/infrastructure/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
	"github.com/liupeizhou/coffee-pos/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	verifier := utils.NewBcryptVerifier()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(repository.NewStaffRepository(db), repository.NewShiftRepository(db), jwtManager, verifier)

	hashed, err := verifier.Hash("admin123")
	require.NoError(t, err)
	staff := &entity.Staff{EmployeeID: "001", Name: "管理员", Password: hashed, Role: enum.StaffRoleAdmin, IsActive: true}
	require.NoError(t, db.Create(staff).Error)

	return svc, db
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newAuthService(t)

	result, err := svc.Login(context.Background(), "001", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "001", result.Staff.EmployeeID)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "001", "wrong")
	require.Error(t, err)
	assert.Equal(t, apperror.ErrInvalidCredentials, apperror.GetAppError(err))
}

func TestLogin_UnknownAndInactiveLookTheSame(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	_, unknownErr := svc.Login(ctx, "999", "admin123")
	require.Error(t, unknownErr)

	require.NoError(t, db.Model(&entity.Staff{}).Where("employee_id = ?", "001").Update("is_active", false).Error)
	_, inactiveErr := svc.Login(ctx, "001", "admin123")
	require.Error(t, inactiveErr)

	assert.Equal(t, apperror.GetAppError(unknownErr), apperror.GetAppError(inactiveErr))
}

func TestLogin_LegacyPlaintextRow(t *testing.T) {
	svc, db := newAuthService(t)

	staff := &entity.Staff{EmployeeID: "002", Name: "张三", Password: "123456", Role: enum.StaffRoleStaff, IsActive: true}
	require.NoError(t, db.Create(staff).Error)

	result, err := svc.Login(context.Background(), "002", "123456")
	require.NoError(t, err)
	assert.Equal(t, "张三", result.Staff.Name)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, "001", "admin123")
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(ctx, "not-a-token")
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}

func TestLogout_BlockedByActiveShift(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	var staff entity.Staff
	require.NoError(t, db.First(&staff, "employee_id = ?", "001").Error)

	shift := &entity.Shift{
		ShiftDate: "2024-05-10",
		ShiftType: enum.ShiftTypeMidday,
		StaffID:   staff.ID,
		StartTime: time.Now(),
		Status:    enum.ShiftStatusActive,
	}
	require.NoError(t, db.Create(shift).Error)

	err := svc.Logout(ctx, staff.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	require.NoError(t, db.Model(shift).Update("status", enum.ShiftStatusCompleted).Error)
	require.NoError(t, svc.Logout(ctx, staff.ID))
}
