package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hopedeeds/internal/model"
)

// OpportunityRepository defines opportunity persistence operations.
type OpportunityRepository interface {
	Create(ctx context.Context, opp *model.Opportunity) error
	Update(ctx context.Context, opp *model.Opportunity) error
	FindByIDInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Opportunity, error)
	FindByIDInOrgWithShifts(ctx context.Context, id, orgID uuid.UUID) (*model.Opportunity, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]model.Opportunity, error)
	CountByOrg(ctx context.Context, orgID uuid.UUID) (int64, error)
	// DeleteCascade removes the opportunity together with its shifts and
	// their signups in one transaction, children first.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type opportunityRepository struct {
	db *gorm.DB
}

// NewOpportunityRepository creates a new opportunity repository.
func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) Create(ctx context.Context, opp *model.Opportunity) error {
	return r.db.WithContext(ctx).Create(opp).Error
}

func (r *opportunityRepository) Update(ctx context.Context, opp *model.Opportunity) error {
	return r.db.WithContext(ctx).Save(opp).Error
}

func (r *opportunityRepository) FindByIDInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Opportunity, error) {
	var opp model.Opportunity
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&opp).Error; err != nil {
		return nil, err
	}
	return &opp, nil
}

func (r *opportunityRepository) FindByIDInOrgWithShifts(ctx context.Context, id, orgID uuid.UUID) (*model.Opportunity, error) {
	var opp model.Opportunity
	if err := r.db.WithContext(ctx).
		Preload("Shifts", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time asc")
		}).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&opp).Error; err != nil {
		return nil, err
	}
	return &opp, nil
}

func (r *opportunityRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]model.Opportunity, error) {
	var opps []model.Opportunity
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at desc").
		Find(&opps).Error; err != nil {
		return nil, err
	}
	return opps, nil
}

func (r *opportunityRepository) CountByOrg(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Opportunity{}).
		Where("organization_id = ?", orgID).
		Count(&n).Error
	return n, err
}

func (r *opportunityRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shiftIDs := tx.Model(&model.Shift{}).Select("id").Where("opportunity_id = ?", id)
		if err := tx.Where("shift_id IN (?)", shiftIDs).Delete(&model.ShiftSignup{}).Error; err != nil {
			return err
		}
		if err := tx.Where("opportunity_id = ?", id).Delete(&model.Shift{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Opportunity{}).Error
	})
}
