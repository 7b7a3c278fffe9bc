package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hopedeeds/internal/errors"
	"hopedeeds/internal/model"
	"hopedeeds/internal/repository"
)

// ShiftUpdate carries the optional fields of a shift edit; nil means
// "leave unchanged".
type ShiftUpdate struct {
	StartTime *time.Time
	EndTime   *time.Time
	Capacity  *int
}

// ShiftService handles shift CRUD and the signup engine.
type ShiftService interface {
	Create(ctx context.Context, orgID, opportunityID uuid.UUID, start, end time.Time, capacity *int) (*model.Shift, error)
	Get(ctx context.Context, id, orgID uuid.UUID) (*model.Shift, error)
	Update(ctx context.Context, id, orgID uuid.UUID, upd ShiftUpdate) (*model.Shift, error)
	Delete(ctx context.Context, id, orgID uuid.UUID) error
	// Signup registers the volunteer for the shift after the gating,
	// capacity and overlap checks. The unique (shift, user) index is the
	// authoritative guard against a concurrent duplicate.
	Signup(ctx context.Context, shiftID, userID, orgID uuid.UUID) (*model.ShiftSignup, error)
	CancelSignup(ctx context.Context, shiftID, userID uuid.UUID) error
	ListSignups(ctx context.Context, shiftID, orgID uuid.UUID) ([]model.ShiftSignup, error)
}

type shiftService struct {
	shiftRepo  repository.ShiftRepository
	oppRepo    repository.OpportunityRepository
	signupRepo repository.SignupRepository
	userRepo   repository.UserRepository
}

// NewShiftService creates a new shift service.
func NewShiftService(
	shiftRepo repository.ShiftRepository,
	oppRepo repository.OpportunityRepository,
	signupRepo repository.SignupRepository,
	userRepo repository.UserRepository,
) ShiftService {
	return &shiftService{
		shiftRepo:  shiftRepo,
		oppRepo:    oppRepo,
		signupRepo: signupRepo,
		userRepo:   userRepo,
	}
}

func (s *shiftService) Create(ctx context.Context, orgID, opportunityID uuid.UUID, start, end time.Time, capacity *int) (*model.Shift, error) {
	if _, err := s.oppRepo.FindByIDInOrg(ctx, opportunityID, orgID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("find opportunity: %w", err)
	}

	if !start.Before(end) {
		return nil, errors.ErrShiftTimesInverted
	}

	capValue := model.DefaultShiftCapacity
	if capacity != nil {
		if *capacity < 1 {
			return nil, errors.ErrInvalidCapacity
		}
		capValue = *capacity
	}

	shift := &model.Shift{
		OpportunityID: opportunityID,
		StartTime:     start,
		EndTime:       end,
		Capacity:      capValue,
	}
	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, fmt.Errorf("create shift: %w", err)
	}
	return shift, nil
}

func (s *shiftService) Get(ctx context.Context, id, orgID uuid.UUID) (*model.Shift, error) {
	shift, err := s.shiftRepo.FindByIDInOrgWithOpportunity(ctx, id, orgID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("find shift: %w", err)
	}

	count, err := s.signupRepo.CountByShift(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count signups: %w", err)
	}
	shift.SignupCount = count
	return shift, nil
}

func (s *shiftService) Update(ctx context.Context, id, orgID uuid.UUID, upd ShiftUpdate) (*model.Shift, error) {
	shift, err := s.shiftRepo.FindByIDInOrg(ctx, id, orgID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("find shift: %w", err)
	}

	if upd.StartTime != nil {
		shift.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		shift.EndTime = *upd.EndTime
	}
	if !shift.StartTime.Before(shift.EndTime) {
		return nil, errors.ErrShiftTimesInverted
	}

	if upd.Capacity != nil {
		if *upd.Capacity < 1 {
			return nil, errors.ErrInvalidCapacity
		}
		count, err := s.signupRepo.CountByShift(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("count signups: %w", err)
		}
		if int64(*upd.Capacity) < count {
			return nil, errors.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Capacity (%d) cannot be less than current signups (%d)", *upd.Capacity, count),
				"VALIDATION_ERROR")
		}
		shift.Capacity = *upd.Capacity
	}

	if err := s.shiftRepo.Update(ctx, shift); err != nil {
		return nil, fmt.Errorf("update shift: %w", err)
	}
	return shift, nil
}

func (s *shiftService) Delete(ctx context.Context, id, orgID uuid.UUID) error {
	if _, err := s.shiftRepo.FindByIDInOrg(ctx, id, orgID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrShiftNotFound
		}
		return fmt.Errorf("find shift: %w", err)
	}

	if err := s.shiftRepo.DeleteWithSignups(ctx, id); err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	return nil
}

func (s *shiftService) Signup(ctx context.Context, shiftID, userID, orgID uuid.UUID) (*model.ShiftSignup, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !user.HasBackgroundCheck || !user.HasAttendedOrientation {
		return nil, errors.ErrGatingIncomplete
	}

	shift, err := s.shiftRepo.FindByIDInOrg(ctx, shiftID, orgID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("find shift: %w", err)
	}

	count, err := s.signupRepo.CountByShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("count signups: %w", err)
	}
	if count >= int64(shift.Capacity) {
		return nil, errors.ErrShiftFull
	}

	existing, err := s.signupRepo.ListByUserInOrg(ctx, userID, orgID)
	if err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}
	for i := range existing {
		// The same shift overlaps itself; report the duplicate, not the overlap.
		if existing[i].ShiftID == shiftID {
			return nil, errors.ErrAlreadySignedUp
		}
		if existing[i].Shift != nil && existing[i].Shift.Overlaps(shift.StartTime, shift.EndTime) {
			return nil, errors.ErrOverlappingShift
		}
	}

	signup := &model.ShiftSignup{
		ShiftID: shiftID,
		UserID:  userID,
	}
	if err := s.signupRepo.Create(ctx, signup); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrAlreadySignedUp
		}
		return nil, fmt.Errorf("create signup: %w", err)
	}
	return signup, nil
}

func (s *shiftService) CancelSignup(ctx context.Context, shiftID, userID uuid.UUID) error {
	// Deleting a non-existent signup is a no-op, matching the idempotent
	// cancel contract.
	return s.signupRepo.DeleteByShiftAndUser(ctx, shiftID, userID)
}

func (s *shiftService) ListSignups(ctx context.Context, shiftID, orgID uuid.UUID) ([]model.ShiftSignup, error) {
	if _, err := s.shiftRepo.FindByIDInOrg(ctx, shiftID, orgID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("find shift: %w", err)
	}
	return s.signupRepo.ListByShift(ctx, shiftID)
}
