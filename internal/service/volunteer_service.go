package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hopedeeds/internal/errors"
	"hopedeeds/internal/model"
	"hopedeeds/internal/repository"
)

// VolunteerUpdate carries the optional fields of a volunteer edit; nil
// means "leave unchanged".
type VolunteerUpdate struct {
	Name  *string
	Email *string
	Phone *string
	Role  *model.Role
}

// VolunteerService handles roster administration: profiles, gating flags
// and the manual volunteer-hour log.
type VolunteerService interface {
	List(ctx context.Context, orgID uuid.UUID) ([]model.User, error)
	Get(ctx context.Context, id, orgID uuid.UUID) (*model.User, error)
	// Update edits profile fields. Only admins may change roles.
	Update(ctx context.Context, id, orgID uuid.UUID, callerRole model.Role, upd VolunteerUpdate) (*model.User, error)
	ApproveBackgroundCheck(ctx context.Context, id, orgID uuid.UUID) (*model.User, error)
	ApproveOrientation(ctx context.Context, id, orgID uuid.UUID) (*model.User, error)
	Deactivate(ctx context.Context, id, orgID uuid.UUID) error
	ListHours(ctx context.Context, id, orgID uuid.UUID) ([]model.VolunteerHour, error)
	AddHours(ctx context.Context, id, orgID uuid.UUID, amount decimal.Decimal, description string) (*model.VolunteerHour, error)
	DeleteHour(ctx context.Context, id, hourID, orgID uuid.UUID) error
}

type volunteerService struct {
	userRepo repository.UserRepository
	hourRepo repository.HourRepository
}

// NewVolunteerService creates a new volunteer service.
func NewVolunteerService(userRepo repository.UserRepository, hourRepo repository.HourRepository) VolunteerService {
	return &volunteerService{
		userRepo: userRepo,
		hourRepo: hourRepo,
	}
}

func (s *volunteerService) findInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByIDInOrg(ctx, id, orgID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("find volunteer: %w", err)
	}
	return user, nil
}

func (s *volunteerService) List(ctx context.Context, orgID uuid.UUID) ([]model.User, error) {
	return s.userRepo.ListByOrg(ctx, orgID)
}

func (s *volunteerService) Get(ctx context.Context, id, orgID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByIDInOrgWithSignups(ctx, id, orgID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("find volunteer: %w", err)
	}
	return user, nil
}

func (s *volunteerService) Update(ctx context.Context, id, orgID uuid.UUID, callerRole model.Role, upd VolunteerUpdate) (*model.User, error) {
	user, err := s.findInOrg(ctx, id, orgID)
	if err != nil {
		return nil, err
	}

	if upd.Role != nil {
		if callerRole != model.RoleAdmin {
			return nil, errors.NewHTTPError(http.StatusForbidden, "Only admin can change roles", "FORBIDDEN")
		}
		if !upd.Role.Valid() {
			return nil, errors.Validation("invalid role")
		}
		user.Role = *upd.Role
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrEmailInUse
		}
		return nil, fmt.Errorf("update volunteer: %w", err)
	}
	return user, nil
}

func (s *volunteerService) ApproveBackgroundCheck(ctx context.Context, id, orgID uuid.UUID) (*model.User, error) {
	user, err := s.findInOrg(ctx, id, orgID)
	if err != nil {
		return nil, err
	}
	user.HasBackgroundCheck = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update volunteer: %w", err)
	}
	return user, nil
}

func (s *volunteerService) ApproveOrientation(ctx context.Context, id, orgID uuid.UUID) (*model.User, error) {
	user, err := s.findInOrg(ctx, id, orgID)
	if err != nil {
		return nil, err
	}
	user.HasAttendedOrientation = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update volunteer: %w", err)
	}
	return user, nil
}

func (s *volunteerService) Deactivate(ctx context.Context, id, orgID uuid.UUID) error {
	user, err := s.findInOrg(ctx, id, orgID)
	if err != nil {
		return err
	}
	user.Role = model.RoleInactive
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update volunteer: %w", err)
	}
	return nil
}

func (s *volunteerService) ListHours(ctx context.Context, id, orgID uuid.UUID) ([]model.VolunteerHour, error) {
	user, err := s.findInOrg(ctx, id, orgID)
	if err != nil {
		return nil, err
	}
	return s.hourRepo.ListByUser(ctx, user.ID)
}

func (s *volunteerService) AddHours(ctx context.Context, id, orgID uuid.UUID, amount decimal.Decimal, description string) (*model.VolunteerHour, error) {
	if !amount.IsPositive() {
		return nil, errors.Validation("Hours must be positive")
	}

	user, err := s.findInOrg(ctx, id, orgID)
	if err != nil {
		return nil, err
	}

	hour := &model.VolunteerHour{
		UserID:      user.ID,
		Amount:      amount.Round(2),
		Description: description,
	}
	if err := s.hourRepo.Create(ctx, hour); err != nil {
		return nil, fmt.Errorf("create hour record: %w", err)
	}
	return hour, nil
}

func (s *volunteerService) DeleteHour(ctx context.Context, id, hourID, orgID uuid.UUID) error {
	user, err := s.findInOrg(ctx, id, orgID)
	if err != nil {
		return err
	}
	return s.hourRepo.DeleteByIDForUser(ctx, hourID, user.ID)
}
