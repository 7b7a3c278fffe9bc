package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hopedeeds/internal/auth"
	"hopedeeds/internal/errors"
	"hopedeeds/internal/model"
	"hopedeeds/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login and identity lookup.
type AuthService interface {
	// RegisterOrganization creates a new tenant and its founding admin user
	// in one transaction and returns a signed token for the admin.
	RegisterOrganization(ctx context.Context, name, email, password string) (token string, org *model.Organization, user *model.User, err error)
	// RegisterVolunteer self-registers a volunteer into an existing
	// organization.
	RegisterVolunteer(ctx context.Context, name, email, phone, password string, orgID uuid.UUID) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, org *model.Organization, err error)
	Me(ctx context.Context, userID uuid.UUID) (*model.User, *model.Organization, error)
}

type authService struct {
	userRepo   repository.UserRepository
	orgRepo    repository.OrganizationRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		jwtService: jwtService,
	}
}

func (s *authService) hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *authService) checkEmailFree(ctx context.Context, email string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return errors.ErrEmailInUse
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check email: %w", err)
	}
	return nil
}

func (s *authService) RegisterOrganization(ctx context.Context, name, email, password string) (string, *model.Organization, *model.User, error) {
	if err := s.checkEmailFree(ctx, email); err != nil {
		return "", nil, nil, err
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return "", nil, nil, err
	}

	org := &model.Organization{
		Name:         name,
		ContactEmail: email,
	}
	// The founding user administers the org; the signup gating flags do not
	// apply to admins, so both are set.
	admin := &model.User{
		Name:                   name,
		Email:                  email,
		PasswordHash:           hash,
		Role:                   model.RoleAdmin,
		HasBackgroundCheck:     true,
		HasAttendedOrientation: true,
	}

	if err := s.orgRepo.CreateWithAdmin(ctx, org, admin); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return "", nil, nil, errors.ErrEmailInUse
		}
		return "", nil, nil, fmt.Errorf("create organization: %w", err)
	}

	token, err := s.jwtService.GenerateToken(admin)
	if err != nil {
		return "", nil, nil, fmt.Errorf("generate token: %w", err)
	}
	return token, org, admin, nil
}

func (s *authService) RegisterVolunteer(ctx context.Context, name, email, phone, password string, orgID uuid.UUID) (string, *model.User, error) {
	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, errors.ErrOrganizationNotFound
		}
		return "", nil, fmt.Errorf("find organization: %w", err)
	}

	if err := s.checkEmailFree(ctx, email); err != nil {
		return "", nil, err
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user := &model.User{
		Name:           name,
		Email:          email,
		Phone:          phone,
		PasswordHash:   hash,
		Role:           model.RoleVolunteer,
		OrganizationID: orgID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return "", nil, errors.ErrEmailInUse
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, *model.Organization, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, nil, errors.ErrInvalidCredentials
	}

	org, err := s.orgRepo.FindByID(ctx, user.OrganizationID)
	if err != nil {
		return "", nil, nil, fmt.Errorf("find organization: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, org, nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*model.User, *model.Organization, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, errors.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("find user: %w", err)
	}

	org, err := s.orgRepo.FindByID(ctx, user.OrganizationID)
	if err != nil {
		return nil, nil, fmt.Errorf("find organization: %w", err)
	}
	return user, org, nil
}
