package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hopedeeds/internal/model"
)

// AttendanceRepository defines attendance persistence operations.
type AttendanceRepository interface {
	Create(ctx context.Context, att *model.Attendance) error
	Update(ctx context.Context, att *model.Attendance) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Attendance, error)
	// FindOpenByUser returns the user's open session across all shifts.
	FindOpenByUser(ctx context.Context, userID uuid.UUID) (*model.Attendance, error)
	// FindOpenByUserInOrg is the kiosk variant: only sessions whose shift
	// belongs to the organization are visible, with shift and opportunity
	// loaded for the response envelope.
	FindOpenByUserInOrg(ctx context.Context, userID, orgID uuid.UUID) (*model.Attendance, error)
	FindOpenByUserAndShift(ctx context.Context, userID, shiftID uuid.UUID) (*model.Attendance, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Attendance, error)
	ListByShift(ctx context.Context, shiftID uuid.UUID) ([]model.Attendance, error)
	ListOpenByOrg(ctx context.Context, orgID uuid.UUID) ([]model.Attendance, error)
	ListRecentByOrg(ctx context.Context, orgID uuid.UUID, limit int) ([]model.Attendance, error)
	// CloseAndLogHours sets checkOut on the session and, when hour is
	// non-nil, appends the volunteer-hour record in the same transaction.
	// Readers never observe a closed session without its logged hours.
	CloseAndLogHours(ctx context.Context, attendanceID uuid.UUID, checkOut time.Time, hour *model.VolunteerHour) error
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) orgScoped(ctx context.Context, orgID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Attendance{}).
		Joins("JOIN shifts ON shifts.id = attendances.shift_id").
		Joins("JOIN opportunities ON opportunities.id = shifts.opportunity_id").
		Where("opportunities.organization_id = ?", orgID)
}

func (r *attendanceRepository) Create(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepository) Update(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}

func (r *attendanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Attendance, error) {
	var att model.Attendance
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&att).Error; err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) FindOpenByUser(ctx context.Context, userID uuid.UUID) (*model.Attendance, error) {
	var att model.Attendance
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND check_out IS NULL", userID).
		First(&att).Error; err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) FindOpenByUserInOrg(ctx context.Context, userID, orgID uuid.UUID) (*model.Attendance, error) {
	var att model.Attendance
	if err := r.orgScoped(ctx, orgID).
		Preload("Shift.Opportunity").
		Where("attendances.user_id = ? AND attendances.check_out IS NULL", userID).
		First(&att).Error; err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) FindOpenByUserAndShift(ctx context.Context, userID, shiftID uuid.UUID) (*model.Attendance, error) {
	var att model.Attendance
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND shift_id = ? AND check_out IS NULL", userID, shiftID).
		First(&att).Error; err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Attendance, error) {
	var records []model.Attendance
	if err := r.db.WithContext(ctx).
		Preload("Shift").
		Where("user_id = ?", userID).
		Order("check_in desc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) ListByShift(ctx context.Context, shiftID uuid.UUID) ([]model.Attendance, error) {
	var records []model.Attendance
	if err := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "organization_id", "role")
		}).
		Where("shift_id = ?", shiftID).
		Order("check_in asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) ListOpenByOrg(ctx context.Context, orgID uuid.UUID) ([]model.Attendance, error) {
	var records []model.Attendance
	if err := r.orgScoped(ctx, orgID).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "phone", "organization_id", "role")
		}).
		Preload("Shift.Opportunity").
		Where("attendances.check_out IS NULL").
		Order("attendances.check_in asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) ListRecentByOrg(ctx context.Context, orgID uuid.UUID, limit int) ([]model.Attendance, error) {
	var records []model.Attendance
	if err := r.orgScoped(ctx, orgID).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "organization_id", "role")
		}).
		Preload("Shift.Opportunity").
		Order("attendances.check_in desc").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) CloseAndLogHours(ctx context.Context, attendanceID uuid.UUID, checkOut time.Time, hour *model.VolunteerHour) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Attendance{}).
			Where("id = ?", attendanceID).
			Update("check_out", checkOut).Error; err != nil {
			return err
		}
		if hour != nil {
			return tx.Create(hour).Error
		}
		return nil
	})
}
