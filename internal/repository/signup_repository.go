package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hopedeeds/internal/model"
)

// SignupRepository defines shift-signup persistence operations.
type SignupRepository interface {
	// Create inserts a signup. A concurrent duplicate surfaces as
	// gorm.ErrDuplicatedKey via the (shift_id, user_id) unique index.
	Create(ctx context.Context, signup *model.ShiftSignup) error
	DeleteByShiftAndUser(ctx context.Context, shiftID, userID uuid.UUID) error
	ListByShift(ctx context.Context, shiftID uuid.UUID) ([]model.ShiftSignup, error)
	// ListByUserInOrg returns the user's signups whose shift belongs to the
	// organization, with the shift loaded for overlap checks.
	ListByUserInOrg(ctx context.Context, userID, orgID uuid.UUID) ([]model.ShiftSignup, error)
	CountByShift(ctx context.Context, shiftID uuid.UUID) (int64, error)
	CountByShiftIDs(ctx context.Context, shiftIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	ExistsByShiftAndUser(ctx context.Context, shiftID, userID uuid.UUID) (bool, error)
}

type signupRepository struct {
	db *gorm.DB
}

// NewSignupRepository creates a new signup repository.
func NewSignupRepository(db *gorm.DB) SignupRepository {
	return &signupRepository{db: db}
}

func (r *signupRepository) Create(ctx context.Context, signup *model.ShiftSignup) error {
	return r.db.WithContext(ctx).Create(signup).Error
}

func (r *signupRepository) DeleteByShiftAndUser(ctx context.Context, shiftID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("shift_id = ? AND user_id = ?", shiftID, userID).
		Delete(&model.ShiftSignup{}).Error
}

func (r *signupRepository) ListByShift(ctx context.Context, shiftID uuid.UUID) ([]model.ShiftSignup, error) {
	var signups []model.ShiftSignup
	if err := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "has_background_check", "has_attended_orientation", "organization_id", "role")
		}).
		Where("shift_id = ?", shiftID).
		Order("created_at asc").
		Find(&signups).Error; err != nil {
		return nil, err
	}
	return signups, nil
}

func (r *signupRepository) ListByUserInOrg(ctx context.Context, userID, orgID uuid.UUID) ([]model.ShiftSignup, error) {
	var signups []model.ShiftSignup
	if err := r.db.WithContext(ctx).
		Preload("Shift").
		Joins("JOIN shifts ON shifts.id = shift_signups.shift_id").
		Joins("JOIN opportunities ON opportunities.id = shifts.opportunity_id").
		Where("shift_signups.user_id = ? AND opportunities.organization_id = ?", userID, orgID).
		Find(&signups).Error; err != nil {
		return nil, err
	}
	return signups, nil
}

func (r *signupRepository) CountByShift(ctx context.Context, shiftID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ShiftSignup{}).
		Where("shift_id = ?", shiftID).
		Count(&n).Error
	return n, err
}

func (r *signupRepository) CountByShiftIDs(ctx context.Context, shiftIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(shiftIDs))
	if len(shiftIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ShiftID uuid.UUID
		N       int64
	}
	if err := r.db.WithContext(ctx).Model(&model.ShiftSignup{}).
		Select("shift_id, COUNT(*) as n").
		Where("shift_id IN ?", shiftIDs).
		Group("shift_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ShiftID] = row.N
	}
	return counts, nil
}

func (r *signupRepository) ExistsByShiftAndUser(ctx context.Context, shiftID, userID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ShiftSignup{}).
		Where("shift_id = ? AND user_id = ?", shiftID, userID).
		Count(&n).Error
	return n > 0, err
}
