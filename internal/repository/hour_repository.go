package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hopedeeds/internal/model"
)

// HourRepository defines volunteer-hour persistence operations. Entries are
// append-only: there is no update path.
type HourRepository interface {
	Create(ctx context.Context, hour *model.VolunteerHour) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.VolunteerHour, error)
	DeleteByIDForUser(ctx context.Context, hourID, userID uuid.UUID) error
	SumByOrg(ctx context.Context, orgID uuid.UUID) (decimal.Decimal, error)
	SumByOrgSince(ctx context.Context, orgID uuid.UUID, since time.Time) (decimal.Decimal, error)
}

type hourRepository struct {
	db *gorm.DB
}

// NewHourRepository creates a new volunteer-hour repository.
func NewHourRepository(db *gorm.DB) HourRepository {
	return &hourRepository{db: db}
}

func (r *hourRepository) Create(ctx context.Context, hour *model.VolunteerHour) error {
	return r.db.WithContext(ctx).Create(hour).Error
}

func (r *hourRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.VolunteerHour, error) {
	var hours []model.VolunteerHour
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *hourRepository) DeleteByIDForUser(ctx context.Context, hourID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", hourID, userID).
		Delete(&model.VolunteerHour{}).Error
}

func (r *hourRepository) sumQuery(ctx context.Context, orgID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.VolunteerHour{}).
		Joins("JOIN users ON users.id = volunteer_hours.user_id").
		Where("users.organization_id = ?", orgID)
}

func (r *hourRepository) SumByOrg(ctx context.Context, orgID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.sumQuery(ctx, orgID).
		Select("COALESCE(SUM(volunteer_hours.amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *hourRepository) SumByOrgSince(ctx context.Context, orgID uuid.UUID, since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.sumQuery(ctx, orgID).
		Where("volunteer_hours.created_at >= ?", since).
		Select("COALESCE(SUM(volunteer_hours.amount), 0)").
		Scan(&total).Error
	return total, err
}
