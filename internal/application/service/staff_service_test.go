package service

import (
	"context"
	"testing"

	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
	"github.com/liupeizhou/coffee-pos/internal/infrastructure/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
	"github.com/liupeizhou/coffee-pos/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaffService(t *testing.T) *StaffService {
	t.Helper()
	db := newTestDB(t)
	return NewStaffService(repository.NewStaffRepository(db), utils.NewBcryptVerifier())
}

func TestCreateStaff_HashesPassword(t *testing.T) {
	svc := newStaffService(t)
	ctx := context.Background()

	staff, err := svc.CreateStaff(ctx, &CreateStaffInput{
		EmployeeID: "004",
		Name:       "王五",
		Password:   "secret6",
		Role:       enum.StaffRoleStaff,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret6", staff.Password)
	assert.True(t, staff.IsActive)
}

func TestCreateStaff_RejectsDuplicateEmployeeID(t *testing.T) {
	svc := newStaffService(t)
	ctx := context.Background()

	_, err := svc.CreateStaff(ctx, &CreateStaffInput{EmployeeID: "004", Name: "王五", Password: "secret6", Role: enum.StaffRoleStaff})
	require.NoError(t, err)

	_, err = svc.CreateStaff(ctx, &CreateStaffInput{EmployeeID: "004", Name: "赵六", Password: "secret6", Role: enum.StaffRoleStaff})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateStaff_RejectsUnknownRole(t *testing.T) {
	svc := newStaffService(t)

	_, err := svc.CreateStaff(context.Background(), &CreateStaffInput{
		EmployeeID: "004",
		Name:       "王五",
		Password:   "secret6",
		Role:       enum.StaffRole("manager"),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateStaff_PasswordOptional(t *testing.T) {
	svc := newStaffService(t)
	ctx := context.Background()

	created, err := svc.CreateStaff(ctx, &CreateStaffInput{EmployeeID: "004", Name: "王五", Password: "secret6", Role: enum.StaffRoleStaff})
	require.NoError(t, err)
	originalHash := created.Password

	// No password in the update: the credential is untouched.
	updated, err := svc.UpdateStaff(ctx, &UpdateStaffInput{
		ID:       created.ID,
		Name:     "王五五",
		Role:     enum.StaffRoleAdmin,
		IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "王五五", updated.Name)
	assert.Equal(t, enum.StaffRoleAdmin, updated.Role)
	assert.Equal(t, originalHash, updated.Password)

	newPassword := "newsecret"
	updated, err = svc.UpdateStaff(ctx, &UpdateStaffInput{
		ID:       created.ID,
		Name:     "王五五",
		Password: &newPassword,
		Role:     enum.StaffRoleAdmin,
		IsActive: true,
	})
	require.NoError(t, err)
	assert.NotEqual(t, originalHash, updated.Password)
}

func TestDeleteStaff_Unknown(t *testing.T) {
	svc := newStaffService(t)

	err := svc.DeleteStaff(context.Background(), 77)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
