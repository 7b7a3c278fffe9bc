package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hopedeeds/internal/model"
)

// OrganizationRepository defines organization persistence operations.
type OrganizationRepository interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindByIDWithUsers(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	// CreateWithAdmin creates an organization and its first admin user in a
	// single transaction; neither row exists unless both commit.
	CreateWithAdmin(ctx context.Context, org *model.Organization, admin *model.User) error
}

type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository.
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, org *model.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *organizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) FindByIDWithUsers(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).
		Preload("Users", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "role", "organization_id")
		}).
		Where("id = ?", id).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) CreateWithAdmin(ctx context.Context, org *model.Organization, admin *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		admin.OrganizationID = org.ID
		return tx.Create(admin).Error
	})
}
