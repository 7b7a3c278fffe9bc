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

// KioskCheckInResult is the check-in response envelope for the front desk.
type KioskCheckInResult struct {
	User       model.UserSummary  `json:"user"`
	Shift      model.ShiftSummary `json:"shift"`
	Attendance *model.Attendance  `json:"attendance"`
}

// KioskCheckOutResult is the checkout response envelope for the front desk.
type KioskCheckOutResult struct {
	User          model.UserSummary    `json:"user"`
	Shift         model.ShiftSummary   `json:"shift"`
	Attendance    *model.Attendance    `json:"attendance"`
	HoursAdded    decimal.Decimal      `json:"hoursAdded"`
	VolunteerHour *model.VolunteerHour `json:"volunteerHour"`
}

// KioskService is the contactless variant of the attendance engine: an
// admin or manager operates it on behalf of a volunteer identified by
// email or phone rather than a credential.
type KioskService interface {
	// CheckIn checks the volunteer into the shift currently in progress
	// that they signed up for, displacing any open session on another
	// shift.
	CheckIn(ctx context.Context, orgID uuid.UUID, emailOrPhone string) (*KioskCheckInResult, error)
	CheckOut(ctx context.Context, orgID uuid.UUID, emailOrPhone string) (*KioskCheckOutResult, error)
	// CurrentRoster lists everyone currently checked in across the
	// organization, longest-checked-in first.
	CurrentRoster(ctx context.Context, orgID uuid.UUID) ([]model.Attendance, error)
}

type kioskService struct {
	userRepo  repository.UserRepository
	shiftRepo repository.ShiftRepository
	attRepo   repository.AttendanceRepository
	now       func() time.Time
}

// NewKioskService creates a new kiosk service.
func NewKioskService(
	userRepo repository.UserRepository,
	shiftRepo repository.ShiftRepository,
	attRepo repository.AttendanceRepository,
) KioskService {
	return &kioskService{
		userRepo:  userRepo,
		shiftRepo: shiftRepo,
		attRepo:   attRepo,
		now:       time.Now,
	}
}

func (s *kioskService) findVolunteer(ctx context.Context, orgID uuid.UUID, emailOrPhone string) (*model.User, error) {
	user, err := s.userRepo.FindByContact(ctx, orgID, emailOrPhone)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrVolunteerNotInOrg
		}
		return nil, fmt.Errorf("find volunteer: %w", err)
	}
	return user, nil
}

func (s *kioskService) CheckIn(ctx context.Context, orgID uuid.UUID, emailOrPhone string) (*KioskCheckInResult, error) {
	user, err := s.findVolunteer(ctx, orgID, emailOrPhone)
	if err != nil {
		return nil, err
	}

	now := s.now()

	active, err := s.shiftRepo.FindActiveForUser(ctx, orgID, user.ID, now)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNoActiveShift
		}
		return nil, fmt.Errorf("find active shift: %w", err)
	}

	if _, err := s.attRepo.FindOpenByUserAndShift(ctx, user.ID, active.ID); err == nil {
		return nil, errors.ErrAlreadyCheckedIn
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find open session: %w", err)
	}

	// Any remaining open session is on a different shift; displace it.
	// The kiosk only logs hours for a positive amount.
	other, err := s.attRepo.FindOpenByUserInOrg(ctx, user.ID, orgID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find open session: %w", err)
	}
	if other != nil {
		hours := elapsedHours(other.CheckIn, now)
		var hour *model.VolunteerHour
		if hours.IsPositive() {
			hour = &model.VolunteerHour{
				UserID:      user.ID,
				Amount:      hours,
				Description: fmt.Sprintf("Auto checkout from shift %s (%s)", other.ShiftID, opportunityTitle(other.Shift)),
			}
		}
		if err := s.attRepo.CloseAndLogHours(ctx, other.ID, now, hour); err != nil {
			return nil, fmt.Errorf("auto checkout: %w", err)
		}
	}

	att := &model.Attendance{
		UserID:  user.ID,
		ShiftID: active.ID,
		CheckIn: now,
	}
	if err := s.attRepo.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("create attendance: %w", err)
	}

	return &KioskCheckInResult{
		User: user.Summary(),
		Shift: model.ShiftSummary{
			ID:               active.ID,
			StartTime:        active.StartTime,
			EndTime:          active.EndTime,
			OpportunityTitle: opportunityTitle(active),
		},
		Attendance: att,
	}, nil
}

func (s *kioskService) CheckOut(ctx context.Context, orgID uuid.UUID, emailOrPhone string) (*KioskCheckOutResult, error) {
	user, err := s.findVolunteer(ctx, orgID, emailOrPhone)
	if err != nil {
		return nil, err
	}

	open, err := s.attRepo.FindOpenByUserInOrg(ctx, user.ID, orgID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrKioskNotCheckedIn
		}
		return nil, fmt.Errorf("find open session: %w", err)
	}

	now := s.now()
	hours := elapsedHours(open.CheckIn, now)
	var hour *model.VolunteerHour
	if hours.IsPositive() {
		hour = &model.VolunteerHour{
			UserID:      user.ID,
			Amount:      hours,
			Description: fmt.Sprintf("Kiosk checkout from shift %s (%s)", open.ShiftID, opportunityTitle(open.Shift)),
		}
	}
	if err := s.attRepo.CloseAndLogHours(ctx, open.ID, now, hour); err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	open.CheckOut = &now

	result := &KioskCheckOutResult{
		User:          user.Summary(),
		Attendance:    open,
		HoursAdded:    hours,
		VolunteerHour: hour,
	}
	if open.Shift != nil {
		result.Shift = model.ShiftSummary{
			ID:               open.Shift.ID,
			StartTime:        open.Shift.StartTime,
			EndTime:          open.Shift.EndTime,
			OpportunityTitle: opportunityTitle(open.Shift),
		}
	}
	return result, nil
}

func (s *kioskService) CurrentRoster(ctx context.Context, orgID uuid.UUID) ([]model.Attendance, error) {
	return s.attRepo.ListOpenByOrg(ctx, orgID)
}

func opportunityTitle(shift *model.Shift) string {
	if shift == nil || shift.Opportunity == nil {
		return ""
	}
	return shift.Opportunity.Title
}
