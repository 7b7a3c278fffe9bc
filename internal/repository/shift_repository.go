package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hopedeeds/internal/model"
)

// ShiftRepository defines shift persistence operations. Organization
// scoping goes through the owning opportunity.
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	Update(ctx context.Context, shift *model.Shift) error
	FindByIDInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Shift, error)
	FindByIDInOrgWithOpportunity(ctx context.Context, id, orgID uuid.UUID) (*model.Shift, error)
	// FindActiveForUser returns the earliest-starting shift in the
	// organization that is in progress at now and that the user has signed
	// up for.
	FindActiveForUser(ctx context.Context, orgID, userID uuid.UUID, now time.Time) (*model.Shift, error)
	ListUpcoming(ctx context.Context, orgID uuid.UUID, now time.Time, limit int) ([]model.Shift, error)
	CountByOpportunityIDs(ctx context.Context, opportunityIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CountByOrg(ctx context.Context, orgID uuid.UUID) (int64, error)
	CountUpcoming(ctx context.Context, orgID uuid.UUID, now time.Time) (int64, error)
	// DeleteWithSignups removes the shift and its signups in one
	// transaction, signups first.
	DeleteWithSignups(ctx context.Context, id uuid.UUID) error
}

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository.
func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) orgScoped(ctx context.Context, orgID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Shift{}).
		Joins("JOIN opportunities ON opportunities.id = shifts.opportunity_id").
		Where("opportunities.organization_id = ?", orgID)
}

func (r *shiftRepository) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepository) Update(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

func (r *shiftRepository) FindByIDInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Shift, error) {
	var shift model.Shift
	if err := r.orgScoped(ctx, orgID).
		Where("shifts.id = ?", id).
		First(&shift).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) FindByIDInOrgWithOpportunity(ctx context.Context, id, orgID uuid.UUID) (*model.Shift, error) {
	var shift model.Shift
	if err := r.orgScoped(ctx, orgID).
		Preload("Opportunity").
		Where("shifts.id = ?", id).
		First(&shift).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) FindActiveForUser(ctx context.Context, orgID, userID uuid.UUID, now time.Time) (*model.Shift, error) {
	var shift model.Shift
	if err := r.orgScoped(ctx, orgID).
		Preload("Opportunity").
		Joins("JOIN shift_signups ON shift_signups.shift_id = shifts.id").
		Where("shift_signups.user_id = ?", userID).
		Where("shifts.start_time <= ? AND shifts.end_time >= ?", now, now).
		Order("shifts.start_time asc").
		First(&shift).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) ListUpcoming(ctx context.Context, orgID uuid.UUID, now time.Time, limit int) ([]model.Shift, error) {
	var shifts []model.Shift
	if err := r.orgScoped(ctx, orgID).
		Preload("Opportunity").
		Where("shifts.start_time >= ?", now).
		Order("shifts.start_time asc").
		Limit(limit).
		Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepository) CountByOpportunityIDs(ctx context.Context, opportunityIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(opportunityIDs))
	if len(opportunityIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		OpportunityID uuid.UUID
		N             int64
	}
	if err := r.db.WithContext(ctx).Model(&model.Shift{}).
		Select("opportunity_id, COUNT(*) as n").
		Where("opportunity_id IN ?", opportunityIDs).
		Group("opportunity_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.OpportunityID] = row.N
	}
	return counts, nil
}

func (r *shiftRepository) CountByOrg(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var n int64
	err := r.orgScoped(ctx, orgID).Count(&n).Error
	return n, err
}

func (r *shiftRepository) CountUpcoming(ctx context.Context, orgID uuid.UUID, now time.Time) (int64, error) {
	var n int64
	err := r.orgScoped(ctx, orgID).
		Where("shifts.start_time >= ?", now).
		Count(&n).Error
	return n, err
}

func (r *shiftRepository) DeleteWithSignups(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shift_id = ?", id).Delete(&model.ShiftSignup{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Shift{}).Error
	})
}
