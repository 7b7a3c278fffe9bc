package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hopedeeds/internal/errors"
	"hopedeeds/internal/model"
	"hopedeeds/internal/repository"
)

// OrganizationService handles tenant records themselves.
type OrganizationService interface {
	Create(ctx context.Context, name, contactEmail, contactPhone string) (*model.Organization, error)
	// Get returns the organization with its member roster. Callers may only
	// read their own organization unless they are admins.
	Get(ctx context.Context, id, callerOrgID uuid.UUID, callerRole model.Role) (*model.Organization, error)
}

type organizationService struct {
	orgRepo repository.OrganizationRepository
}

// NewOrganizationService creates a new organization service.
func NewOrganizationService(orgRepo repository.OrganizationRepository) OrganizationService {
	return &organizationService{orgRepo: orgRepo}
}

func (s *organizationService) Create(ctx context.Context, name, contactEmail, contactPhone string) (*model.Organization, error) {
	org := &model.Organization{
		Name:         name,
		ContactEmail: contactEmail,
		ContactPhone: contactPhone,
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("create organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) Get(ctx context.Context, id, callerOrgID uuid.UUID, callerRole model.Role) (*model.Organization, error) {
	org, err := s.orgRepo.FindByIDWithUsers(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("find organization: %w", err)
	}

	if callerOrgID != org.ID && callerRole != model.RoleAdmin {
		return nil, errors.ErrForbidden
	}
	return org, nil
}
