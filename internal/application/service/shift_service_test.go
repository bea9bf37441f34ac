package service

import (
	"context"
	"testing"
	"time"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
	"github.com/liupeizhou/coffee-pos/internal/infrastructure/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newShiftService(t *testing.T) (*ShiftService, *gorm.DB, *entity.Staff) {
	t.Helper()

	db := newTestDB(t)
	staff := &entity.Staff{EmployeeID: "002", Name: "张三", Password: "123456", Role: enum.StaffRoleStaff, IsActive: true}
	require.NoError(t, db.Create(staff).Error)

	svc := NewShiftService(repository.NewShiftRepository(db), repository.NewStaffRepository(db))
	return svc, db, staff
}

func TestStartShift_DerivesDateAndType(t *testing.T) {
	svc, _, staff := newShiftService(t)
	svc.now = func() time.Time { return time.Date(2024, 5, 10, 14, 30, 0, 0, time.Local) }

	shift, err := svc.StartShift(context.Background(), &StartShiftInput{StaffID: staff.ID, OpeningCash: 200})
	require.NoError(t, err)

	assert.Equal(t, "2024-05-10", shift.ShiftDate)
	assert.Equal(t, enum.ShiftTypeMidday, shift.ShiftType)
	assert.Equal(t, enum.ShiftStatusActive, shift.Status)
	assert.Equal(t, 200.0, shift.OpeningCash)
	assert.Zero(t, shift.TotalOrders)
}

func TestStartShift_RejectsSecondActiveShift(t *testing.T) {
	svc, _, staff := newShiftService(t)
	ctx := context.Background()

	_, err := svc.StartShift(ctx, &StartShiftInput{StaffID: staff.ID})
	require.NoError(t, err)

	_, err = svc.StartShift(ctx, &StartShiftInput{StaffID: staff.ID})
	require.Error(t, err)
	assert.Equal(t, apperror.ErrShiftActive, apperror.GetAppError(err))
}

func TestStartShift_UnknownStaff(t *testing.T) {
	svc, _, _ := newShiftService(t)

	_, err := svc.StartShift(context.Background(), &StartShiftInput{StaffID: 999})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestEndShift_CompletesOnce(t *testing.T) {
	svc, _, staff := newShiftService(t)
	ctx := context.Background()

	shift, err := svc.StartShift(ctx, &StartShiftInput{StaffID: staff.ID, OpeningCash: 100})
	require.NoError(t, err)

	notes := "缺5元"
	ended, err := svc.EndShift(ctx, &EndShiftInput{ID: shift.ID, ClosingCash: 95, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, enum.ShiftStatusCompleted, ended.Status)
	require.NotNil(t, ended.EndTime)
	require.NotNil(t, ended.ClosingCash)
	assert.Equal(t, 95.0, *ended.ClosingCash)

	// Completed is terminal.
	_, err = svc.EndShift(ctx, &EndShiftInput{ID: shift.ID, ClosingCash: 95})
	require.Error(t, err)
	assert.Equal(t, apperror.ErrShiftCompleted, apperror.GetAppError(err))

	// The staff member can start a fresh shift afterwards.
	_, err = svc.StartShift(ctx, &StartShiftInput{StaffID: staff.ID})
	require.NoError(t, err)
}

func TestGetCurrentShift_NilWhenNone(t *testing.T) {
	svc, _, staff := newShiftService(t)

	shift, err := svc.GetCurrentShift(context.Background(), staff.ID)
	require.NoError(t, err)
	assert.Nil(t, shift)
}
