package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"hopedeeds/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDInOrgWithSignups(ctx context.Context, id, orgID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByContact(ctx context.Context, orgID uuid.UUID, emailOrPhone string) (*model.User, error) {
	args := m.Called(ctx, orgID, emailOrPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]model.User, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) ListPendingByOrg(ctx context.Context, orgID uuid.UUID) ([]model.User, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) CountVolunteers(ctx context.Context, orgID uuid.UUID) (int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountActiveVolunteers(ctx context.Context, orgID uuid.UUID) (int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountPendingBackground(ctx context.Context, orgID uuid.UUID) (int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountPendingOrientation(ctx context.Context, orgID uuid.UUID) (int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrganizationRepository is a mock implementation of OrganizationRepository.
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindByIDWithUsers(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) CreateWithAdmin(ctx context.Context, org *model.Organization, admin *model.User) error {
	args := m.Called(ctx, org, admin)
	return args.Error(0)
}

// MockOpportunityRepository is a mock implementation of OpportunityRepository.
type MockOpportunityRepository struct {
	mock.Mock
}

func (m *MockOpportunityRepository) Create(ctx context.Context, opp *model.Opportunity) error {
	args := m.Called(ctx, opp)
	return args.Error(0)
}

func (m *MockOpportunityRepository) Update(ctx context.Context, opp *model.Opportunity) error {
	args := m.Called(ctx, opp)
	return args.Error(0)
}

func (m *MockOpportunityRepository) FindByIDInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Opportunity, error) {
	args := m.Called(ctx, id, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) FindByIDInOrgWithShifts(ctx context.Context, id, orgID uuid.UUID) (*model.Opportunity, error) {
	args := m.Called(ctx, id, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]model.Opportunity, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) CountByOrg(ctx context.Context, orgID uuid.UUID) (int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOpportunityRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockShiftRepository is a mock implementation of ShiftRepository.
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) Create(ctx context.Context, shift *model.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) Update(ctx context.Context, shift *model.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) FindByIDInOrg(ctx context.Context, id, orgID uuid.UUID) (*model.Shift, error) {
	args := m.Called(ctx, id, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindByIDInOrgWithOpportunity(ctx context.Context, id, orgID uuid.UUID) (*model.Shift, error) {
	args := m.Called(ctx, id, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindActiveForUser(ctx context.Context, orgID, userID uuid.UUID, now time.Time) (*model.Shift, error) {
	args := m.Called(ctx, orgID, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListUpcoming(ctx context.Context, orgID uuid.UUID, now time.Time, limit int) ([]model.Shift, error) {
	args := m.Called(ctx, orgID, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Shift), args.Error(1)
}

func (m *MockShiftRepository) CountByOpportunityIDs(ctx context.Context, opportunityIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, opportunityIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockShiftRepository) CountByOrg(ctx context.Context, orgID uuid.UUID) (int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShiftRepository) CountUpcoming(ctx context.Context, orgID uuid.UUID, now time.Time) (int64, error) {
	args := m.Called(ctx, orgID, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShiftRepository) DeleteWithSignups(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSignupRepository is a mock implementation of SignupRepository.
type MockSignupRepository struct {
	mock.Mock
}

func (m *MockSignupRepository) Create(ctx context.Context, signup *model.ShiftSignup) error {
	args := m.Called(ctx, signup)
	return args.Error(0)
}

func (m *MockSignupRepository) DeleteByShiftAndUser(ctx context.Context, shiftID, userID uuid.UUID) error {
	args := m.Called(ctx, shiftID, userID)
	return args.Error(0)
}

func (m *MockSignupRepository) ListByShift(ctx context.Context, shiftID uuid.UUID) ([]model.ShiftSignup, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShiftSignup), args.Error(1)
}

func (m *MockSignupRepository) ListByUserInOrg(ctx context.Context, userID, orgID uuid.UUID) ([]model.ShiftSignup, error) {
	args := m.Called(ctx, userID, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShiftSignup), args.Error(1)
}

func (m *MockSignupRepository) CountByShift(ctx context.Context, shiftID uuid.UUID) (int64, error) {
	args := m.Called(ctx, shiftID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSignupRepository) CountByShiftIDs(ctx context.Context, shiftIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, shiftIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockSignupRepository) ExistsByShiftAndUser(ctx context.Context, shiftID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, shiftID, userID)
	return args.Bool(0), args.Error(1)
}

// MockAttendanceRepository is a mock implementation of AttendanceRepository.
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Create(ctx context.Context, att *model.Attendance) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}

func (m *MockAttendanceRepository) Update(ctx context.Context, att *model.Attendance) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}

func (m *MockAttendanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Attendance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) FindOpenByUser(ctx context.Context, userID uuid.UUID) (*model.Attendance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) FindOpenByUserInOrg(ctx context.Context, userID, orgID uuid.UUID) (*model.Attendance, error) {
	args := m.Called(ctx, userID, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) FindOpenByUserAndShift(ctx context.Context, userID, shiftID uuid.UUID) (*model.Attendance, error) {
	args := m.Called(ctx, userID, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Attendance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) ListByShift(ctx context.Context, shiftID uuid.UUID) ([]model.Attendance, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) ListOpenByOrg(ctx context.Context, orgID uuid.UUID) ([]model.Attendance, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) ListRecentByOrg(ctx context.Context, orgID uuid.UUID, limit int) ([]model.Attendance, error) {
	args := m.Called(ctx, orgID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) CloseAndLogHours(ctx context.Context, attendanceID uuid.UUID, checkOut time.Time, hour *model.VolunteerHour) error {
	args := m.Called(ctx, attendanceID, checkOut, hour)
	return args.Error(0)
}

// MockHourRepository is a mock implementation of HourRepository.
type MockHourRepository struct {
	mock.Mock
}

func (m *MockHourRepository) Create(ctx context.Context, hour *model.VolunteerHour) error {
	args := m.Called(ctx, hour)
	return args.Error(0)
}

func (m *MockHourRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.VolunteerHour, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VolunteerHour), args.Error(1)
}

func (m *MockHourRepository) DeleteByIDForUser(ctx context.Context, hourID, userID uuid.UUID) error {
	args := m.Called(ctx, hourID, userID)
	return args.Error(0)
}

func (m *MockHourRepository) SumByOrg(ctx context.Context, orgID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockHourRepository) SumByOrgSince(ctx context.Context, orgID uuid.UUID, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, orgID, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
