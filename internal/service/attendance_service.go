package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hopedeeds/internal/errors"
	"hopedeeds/internal/model"
	"hopedeeds/internal/repository"
)

// AttendanceEdit carries the optional fields of an admin attendance edit.
type AttendanceEdit struct {
	CheckIn  *time.Time
	CheckOut *time.Time
}

// AttendanceService manages the check-in/check-out lifecycle for
// authenticated volunteers. Per user there is at most one open session;
// a new check-in auto-closes any prior one.
type AttendanceService interface {
	CheckIn(ctx context.Context, userID, orgID, shiftID uuid.UUID) (*model.Attendance, error)
	CheckOut(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	ListForUser(ctx context.Context, targetUserID, orgID uuid.UUID) ([]model.Attendance, error)
	ListForShift(ctx context.Context, shiftID, orgID uuid.UUID) ([]model.Attendance, error)
	AdminEdit(ctx context.Context, id uuid.UUID, edit AttendanceEdit) (*model.Attendance, error)
}

type attendanceService struct {
	attRepo    repository.AttendanceRepository
	shiftRepo  repository.ShiftRepository
	signupRepo repository.SignupRepository
	userRepo   repository.UserRepository
	now        func() time.Time
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(
	attRepo repository.AttendanceRepository,
	shiftRepo repository.ShiftRepository,
	signupRepo repository.SignupRepository,
	userRepo repository.UserRepository,
) AttendanceService {
	return &attendanceService{
		attRepo:    attRepo,
		shiftRepo:  shiftRepo,
		signupRepo: signupRepo,
		userRepo:   userRepo,
		now:        time.Now,
	}
}

func (s *attendanceService) CheckIn(ctx context.Context, userID, orgID, shiftID uuid.UUID) (*model.Attendance, error) {
	shift, err := s.shiftRepo.FindByIDInOrg(ctx, shiftID, orgID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("find shift: %w", err)
	}

	signedUp, err := s.signupRepo.ExistsByShiftAndUser(ctx, shift.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("check signup: %w", err)
	}
	if !signedUp {
		return nil, errors.ErrNotSignedUp
	}

	now := s.now()

	open, err := s.attRepo.FindOpenByUser(ctx, userID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find open session: %w", err)
	}
	if open != nil {
		// Unlike the kiosk path this always appends an hour record, even
		// for a zero amount.
		hour := &model.VolunteerHour{
			UserID:      userID,
			Amount:      elapsedHours(open.CheckIn, now),
			Description: fmt.Sprintf("Auto-checkout from shift %s", open.ShiftID),
		}
		if err := s.attRepo.CloseAndLogHours(ctx, open.ID, now, hour); err != nil {
			return nil, fmt.Errorf("auto checkout: %w", err)
		}
	}

	att := &model.Attendance{
		UserID:  userID,
		ShiftID: shift.ID,
		CheckIn: now,
	}
	if err := s.attRepo.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("create attendance: %w", err)
	}
	return att, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	open, err := s.attRepo.FindOpenByUser(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return decimal.Zero, errors.ErrNotCheckedIn
		}
		return decimal.Zero, fmt.Errorf("find open session: %w", err)
	}

	now := s.now()
	hours := elapsedHours(open.CheckIn, now)
	hour := &model.VolunteerHour{
		UserID:      userID,
		Amount:      hours,
		Description: fmt.Sprintf("Shift %s attendance", open.ShiftID),
	}
	if err := s.attRepo.CloseAndLogHours(ctx, open.ID, now, hour); err != nil {
		return decimal.Zero, fmt.Errorf("checkout: %w", err)
	}
	return hours, nil
}

func (s *attendanceService) ListForUser(ctx context.Context, targetUserID, orgID uuid.UUID) ([]model.Attendance, error) {
	user, err := s.userRepo.FindByIDInOrg(ctx, targetUserID, orgID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return s.attRepo.ListByUser(ctx, user.ID)
}

func (s *attendanceService) ListForShift(ctx context.Context, shiftID, orgID uuid.UUID) ([]model.Attendance, error) {
	if _, err := s.shiftRepo.FindByIDInOrg(ctx, shiftID, orgID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("find shift: %w", err)
	}
	return s.attRepo.ListByShift(ctx, shiftID)
}

func (s *attendanceService) AdminEdit(ctx context.Context, id uuid.UUID, edit AttendanceEdit) (*model.Attendance, error) {
	att, err := s.attRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("find attendance: %w", err)
	}

	if edit.CheckIn != nil {
		att.CheckIn = *edit.CheckIn
	}
	if edit.CheckOut != nil {
		att.CheckOut = edit.CheckOut
	}

	if err := s.attRepo.Update(ctx, att); err != nil {
		return nil, fmt.Errorf("update attendance: %w", err)
	}
	return att, nil
}
