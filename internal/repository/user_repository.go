package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hopedeeds/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByIDInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.User, error)
	FindByIDInOrgWithSignups(ctx context.Context, id, orgID uuid.UUID) (*model.User, error)
	// FindByContact resolves a user in the organization whose email or phone
	// equals the given value. First match wins; duplicate phone values are
	// not disambiguated.
	FindByContact(ctx context.Context, orgID uuid.UUID, emailOrPhone string) (*model.User, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]model.User, error)
	ListPendingByOrg(ctx context.Context, orgID uuid.UUID) ([]model.User, error)
	CountVolunteers(ctx context.Context, orgID uuid.UUID) (int64, error)
	CountActiveVolunteers(ctx context.Context, orgID uuid.UUID) (int64, error)
	CountPendingBackground(ctx context.Context, orgID uuid.UUID) (int64, error)
	CountPendingOrientation(ctx context.Context, orgID uuid.UUID) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDInOrgWithSignups(ctx context.Context, id, orgID uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("ShiftSignups.Shift").
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByContact(ctx context.Context, orgID uuid.UUID, emailOrPhone string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND (email = ? OR phone = ?)", orgID, emailOrPhone, emailOrPhone).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name asc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ListPendingByOrg(ctx context.Context, orgID uuid.UUID) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND role = ? AND (has_background_check = ? OR has_attended_orientation = ?)",
			orgID, model.RoleVolunteer, false, false).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) CountVolunteers(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("organization_id = ? AND role = ?", orgID, model.RoleVolunteer).
		Count(&n).Error
	return n, err
}

func (r *userRepository) CountActiveVolunteers(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("organization_id = ? AND role = ? AND has_background_check = ? AND has_attended_orientation = ?",
			orgID, model.RoleVolunteer, true, true).
		Count(&n).Error
	return n, err
}

func (r *userRepository) CountPendingBackground(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("organization_id = ? AND role = ? AND has_background_check = ?",
			orgID, model.RoleVolunteer, false).
		Count(&n).Error
	return n, err
}

func (r *userRepository) CountPendingOrientation(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("organization_id = ? AND role = ? AND has_background_check = ? AND has_attended_orientation = ?",
			orgID, model.RoleVolunteer, true, false).
		Count(&n).Error
	return n, err
}
