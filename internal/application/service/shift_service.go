package service

import (
	"context"
	"time"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
	"github.com/liupeizhou/coffee-pos/internal/domain/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
)

const defaultShiftLimit = 50

// ShiftService handles the shift state machine: no-shift → active →
// completed. Completed is terminal; a new work period starts a fresh shift.
type ShiftService struct {
	shiftRepo repository.ShiftRepository
	staffRepo repository.StaffRepository
	now       func() time.Time
}

// NewShiftService creates a new shift service
func NewShiftService(shiftRepo repository.ShiftRepository, staffRepo repository.StaffRepository) *ShiftService {
	return &ShiftService{
		shiftRepo: shiftRepo,
		staffRepo: staffRepo,
		now:       time.Now,
	}
}

// StartShiftInput represents the start shift input
type StartShiftInput struct {
	StaffID     uint
	OpeningCash float64
}

// StartShift opens a work period for a staff member. At most one active
// shift per staff member is allowed; the legacy register left this to UI
// discipline, here it is enforced.
func (s *ShiftService) StartShift(ctx context.Context, input *StartShiftInput) (*entity.Shift, error) {
	staff, err := s.staffRepo.GetByID(ctx, input.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff")
	}

	active, err := s.shiftRepo.GetActiveForStaff(ctx, input.StaffID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperror.ErrShiftActive
	}

	now := s.now()
	shift := &entity.Shift{
		ShiftDate:   now.Format("2006-01-02"),
		ShiftType:   enum.ShiftTypeForHour(now.Hour()),
		StaffID:     input.StaffID,
		StartTime:   now,
		OpeningCash: input.OpeningCash,
		Status:      enum.ShiftStatusActive,
	}

	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, err
	}

	// Fold in any orders already carrying this shift id (parity with the
	// legacy register, which recomputed immediately after insert).
	if err := s.shiftRepo.RecomputeTotals(ctx, shift.ID); err != nil {
		return nil, err
	}

	return s.shiftRepo.GetByID(ctx, shift.ID)
}

// EndShiftInput represents the end shift input
type EndShiftInput struct {
	ID          uint
	ClosingCash float64
	Notes       *string
}

// EndShift completes a shift. Closing cash is recorded as reported; any
// discrepancy against the ledger is a human reconciliation step.
func (s *ShiftService) EndShift(ctx context.Context, input *EndShiftInput) (*entity.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("Shift")
	}
	if shift.Status == enum.ShiftStatusCompleted {
		return nil, apperror.ErrShiftCompleted
	}

	now := s.now()
	shift.EndTime = &now
	shift.ClosingCash = &input.ClosingCash
	shift.Status = enum.ShiftStatusCompleted
	shift.Notes = input.Notes
	shift.Staff = nil

	if err := s.shiftRepo.Update(ctx, shift); err != nil {
		return nil, err
	}

	return s.shiftRepo.GetByID(ctx, input.ID)
}

// RecomputeTotals refreshes the shift's cached order count and sales total
// from the ledger. Idempotent.
func (s *ShiftService) RecomputeTotals(ctx context.Context, shiftID uint) (*entity.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("Shift")
	}

	if err := s.shiftRepo.RecomputeTotals(ctx, shiftID); err != nil {
		return nil, err
	}

	return s.shiftRepo.GetByID(ctx, shiftID)
}

// ListShifts returns the most recent shifts, newest first
func (s *ShiftService) ListShifts(ctx context.Context, limit int) ([]entity.Shift, error) {
	if limit <= 0 {
		limit = defaultShiftLimit
	}
	return s.shiftRepo.List(ctx, limit)
}

// GetShift retrieves a shift by ID
func (s *ShiftService) GetShift(ctx context.Context, id uint) (*entity.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("Shift")
	}
	return shift, nil
}

// GetCurrentShift returns the staff member's active shift, nil when none
func (s *ShiftService) GetCurrentShift(ctx context.Context, staffID uint) (*entity.Shift, error) {
	return s.shiftRepo.GetActiveForStaff(ctx, staffID)
}

// GetActiveShift returns the most recently started active shift of any staff
func (s *ShiftService) GetActiveShift(ctx context.Context) (*entity.Shift, error) {
	return s.shiftRepo.GetActive(ctx)
}
