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

// OpportunityUpdate carries the optional fields of an opportunity edit;
// nil means "leave unchanged".
type OpportunityUpdate struct {
	Title       *string
	Description *string
	Location    *string
}

// OpportunityService handles opportunity CRUD scoped to an organization.
type OpportunityService interface {
	Create(ctx context.Context, orgID uuid.UUID, title, description, location string) (*model.Opportunity, error)
	List(ctx context.Context, orgID uuid.UUID) ([]model.Opportunity, error)
	Get(ctx context.Context, id, orgID uuid.UUID) (*model.Opportunity, error)
	Update(ctx context.Context, id, orgID uuid.UUID, upd OpportunityUpdate) (*model.Opportunity, error)
	// Delete removes the opportunity and cascades to its shifts and their
	// signups in one ordered transaction.
	Delete(ctx context.Context, id, orgID uuid.UUID) error
}

type opportunityService struct {
	oppRepo    repository.OpportunityRepository
	shiftRepo  repository.ShiftRepository
	signupRepo repository.SignupRepository
}

// NewOpportunityService creates a new opportunity service.
func NewOpportunityService(
	oppRepo repository.OpportunityRepository,
	shiftRepo repository.ShiftRepository,
	signupRepo repository.SignupRepository,
) OpportunityService {
	return &opportunityService{
		oppRepo:    oppRepo,
		shiftRepo:  shiftRepo,
		signupRepo: signupRepo,
	}
}

func (s *opportunityService) Create(ctx context.Context, orgID uuid.UUID, title, description, location string) (*model.Opportunity, error) {
	opp := &model.Opportunity{
		Title:          title,
		Description:    description,
		Location:       location,
		OrganizationID: orgID,
	}
	if err := s.oppRepo.Create(ctx, opp); err != nil {
		return nil, fmt.Errorf("create opportunity: %w", err)
	}
	return opp, nil
}

func (s *opportunityService) List(ctx context.Context, orgID uuid.UUID) ([]model.Opportunity, error) {
	opps, err := s.oppRepo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}

	ids := make([]uuid.UUID, len(opps))
	for i := range opps {
		ids[i] = opps[i].ID
	}
	counts, err := s.shiftRepo.CountByOpportunityIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count shifts: %w", err)
	}
	for i := range opps {
		opps[i].ShiftCount = counts[opps[i].ID]
	}
	return opps, nil
}

func (s *opportunityService) Get(ctx context.Context, id, orgID uuid.UUID) (*model.Opportunity, error) {
	opp, err := s.oppRepo.FindByIDInOrgWithShifts(ctx, id, orgID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("find opportunity: %w", err)
	}

	ids := make([]uuid.UUID, len(opp.Shifts))
	for i := range opp.Shifts {
		ids[i] = opp.Shifts[i].ID
	}
	counts, err := s.signupRepo.CountByShiftIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count signups: %w", err)
	}
	for i := range opp.Shifts {
		opp.Shifts[i].SignupCount = counts[opp.Shifts[i].ID]
	}
	return opp, nil
}

func (s *opportunityService) Update(ctx context.Context, id, orgID uuid.UUID, upd OpportunityUpdate) (*model.Opportunity, error) {
	opp, err := s.oppRepo.FindByIDInOrg(ctx, id, orgID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("find opportunity: %w", err)
	}

	if upd.Title != nil {
		opp.Title = *upd.Title
	}
	if upd.Description != nil {
		opp.Description = *upd.Description
	}
	if upd.Location != nil {
		opp.Location = *upd.Location
	}

	if err := s.oppRepo.Update(ctx, opp); err != nil {
		return nil, fmt.Errorf("update opportunity: %w", err)
	}
	return opp, nil
}

func (s *opportunityService) Delete(ctx context.Context, id, orgID uuid.UUID) error {
	if _, err := s.oppRepo.FindByIDInOrg(ctx, id, orgID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrOpportunityNotFound
		}
		return fmt.Errorf("find opportunity: %w", err)
	}

	if err := s.oppRepo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete opportunity: %w", err)
	}
	return nil
}
